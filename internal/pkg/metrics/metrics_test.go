package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return New(prometheus.NewRegistry())
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordAssigned(3)
	m.RecordAssigned(0)
	m.RecordMentorChange()
	m.RecordMentorChangeConflict()
	m.RecordMentorChangeConflict()

	assert.Equal(t, float64(3), testutil.ToFloat64(m.StudentsAssignedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MentorChangesTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.MentorChangeConflicts))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordAssigned(1)
		m.RecordMentorChange()
		m.RecordMentorChangeConflict()
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestMetrics(t)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/students/:mentorId", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/students/a", "/students/b", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/students/:mentorId", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}
