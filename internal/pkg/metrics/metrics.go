// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mentorhub"

// Metrics holds every collector the service records. A nil *Metrics is valid
// and records nothing, so callers never need to check whether metrics are enabled.
type Metrics struct {
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	StudentsAssignedTotal prometheus.Counter
	MentorChangesTotal    prometheus.Counter
	MentorChangeConflicts prometheus.Counter
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		StudentsAssignedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_assigned_total",
			Help:      "Students assigned to a mentor by bulk assignment",
		}),

		MentorChangesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mentor_changes_total",
			Help:      "Successful mentor changes",
		}),

		MentorChangeConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mentor_change_conflicts_total",
			Help:      "Mentor changes that lost a compare-and-set race",
		}),
	}
}

// RecordAssigned adds n newly assigned students
func (m *Metrics) RecordAssigned(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.StudentsAssignedTotal.Add(float64(n))
}

// RecordMentorChange counts one successful mentor change
func (m *Metrics) RecordMentorChange() {
	if m == nil {
		return
	}
	m.MentorChangesTotal.Inc()
}

// RecordMentorChangeConflict counts one lost compare-and-set attempt
func (m *Metrics) RecordMentorChangeConflict() {
	if m == nil {
		return
	}
	m.MentorChangeConflicts.Inc()
}

// Middleware records request count and latency per matched route.
// Unmatched requests are labelled "unmatched" to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
