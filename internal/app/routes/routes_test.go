package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/controllers"
	"github.com/yigit/mentorhub/internal/app/repositories"
	"github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/middleware"
	"github.com/yigit/mentorhub/internal/pkg/validation"
)

type alwaysUp struct{}

func (alwaysUp) Ping(context.Context) error { return nil }

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.RegisterRules()

	repos := repositories.NewMemoryRepositories(repositories.NewMemoryStore())
	svc := services.NewRelationshipService(repos)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())
	SetupRouter(r,
		controllers.NewMentorController(svc),
		controllers.NewStudentController(svc),
		controllers.NewHealthController("memory", alwaysUp{}, nil),
	)
	return r
}

func call(t *testing.T, r http.Handler, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestMentorStudentLifecycle(t *testing.T) {
	r := newRouter(t)

	code, body := call(t, r, http.MethodPost, "/create-mentor", map[string]string{"name": "Alice", "expertise": "ML"})
	require.Equal(t, http.StatusOK, code)
	aliceID := body["mentor"].(map[string]interface{})["id"].(string)

	code, body = call(t, r, http.MethodPost, "/create-student", map[string]string{"name": "Bob", "course": "CS"})
	require.Equal(t, http.StatusOK, code)
	bob := body["student"].(map[string]interface{})
	bobID := bob["id"].(string)
	assert.Nil(t, bob["currentMentor"])
	assert.Nil(t, bob["previousMentor"])

	code, body = call(t, r, http.MethodGet, "/previous-mentor/"+bobID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "No previous mentor assigned", body["message"])
	assert.Equal(t, bobID, body["studentId"])

	code, body = call(t, r, http.MethodPost, "/assign-students-to-mentor", map[string]interface{}{
		"mentorId":   aliceID,
		"studentIds": []string{bobID},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["matchedCount"])

	// assigning again matches nothing
	code, _ = call(t, r, http.MethodPost, "/assign-students-to-mentor", map[string]interface{}{
		"mentorId":   aliceID,
		"studentIds": []string{bobID},
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = call(t, r, http.MethodGet, "/students/"+aliceID, nil)
	require.Equal(t, http.StatusOK, code)
	students := body["students"].([]interface{})
	require.Len(t, students, 1)
	listed := students[0].(map[string]interface{})
	assert.Equal(t, "Bob", listed["name"])
	assert.Equal(t, "Alice", listed["currentMentor"].(map[string]interface{})["name"])

	code, body = call(t, r, http.MethodPost, "/create-mentor", map[string]string{"name": "Carl", "expertise": "NLP"})
	require.Equal(t, http.StatusOK, code)
	carlID := body["mentor"].(map[string]interface{})["id"].(string)

	code, body = call(t, r, http.MethodPost, "/change-mentor", map[string]string{"studentId": bobID, "newMentorId": carlID})
	require.Equal(t, http.StatusOK, code)
	changed := body["student"].(map[string]interface{})
	assert.Equal(t, carlID, changed["currentMentor"])
	assert.Equal(t, aliceID, changed["previousMentor"])

	code, body = call(t, r, http.MethodGet, "/previous-mentor/"+bobID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Alice", body["previousMentor"].(map[string]interface{})["name"])

	code, body = call(t, r, http.MethodGet, "/students/"+aliceID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["students"])
}

func TestNotFoundPaths(t *testing.T) {
	r := newRouter(t)

	code, _ := call(t, r, http.MethodPost, "/assign-students-to-mentor", map[string]interface{}{
		"mentorId":   "missing",
		"studentIds": []string{"s1"},
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, r, http.MethodPost, "/change-mentor", map[string]string{"studentId": "missing", "newMentorId": "m1"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = call(t, r, http.MethodGet, "/previous-mentor/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body := call(t, r, http.MethodGet, "/students/missing", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{}, body["students"])
}

func TestHealthRoutes(t *testing.T) {
	r := newRouter(t)

	code, body := call(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	code, _ = call(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, code)
}
