package bootstrap

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/config"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("MENTORHUB_DB_DRIVER", "memory")
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestSetupDatabase_Memory(t *testing.T) {
	cfg := memoryConfig(t)
	ctx := context.Background()

	store, err := SetupDatabase(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, store.Driver)
	assert.NotNil(t, store.Repos.Mentors)
	assert.NoError(t, store.Ping(ctx))
	assert.NoError(t, store.Close(ctx))
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Database.Driver = "cassandra"

	_, err := OpenStore(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestSetupCache_Disabled(t *testing.T) {
	cfg := memoryConfig(t)

	c, err := SetupCache(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestRouterWiring(t *testing.T) {
	cfg := memoryConfig(t)
	store, err := SetupDatabase(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	deps := BuildDependencies(cfg, store, nil, zerolog.Nop())
	require.NotNil(t, deps.Metrics)
	router := SetupRouter(cfg, deps, zerolog.Nop())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-mentor", bytes.NewBufferString(`{"name":"Alice","expertise":"ML"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, cfg.Metrics.Path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mentorhub_http_requests_total{method="POST",route="/create-mentor",status="200"} 1`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterWiring_PanicsAreCounted(t *testing.T) {
	cfg := memoryConfig(t)
	store, err := SetupDatabase(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	deps := BuildDependencies(cfg, store, nil, zerolog.Nop())
	router := SetupRouter(cfg, deps, zerolog.Nop())
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, cfg.Metrics.Path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mentorhub_http_requests_total{method="GET",route="/boom",status="500"} 1`)
}

func TestRouterWiring_MetricsDisabled(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Metrics.Enabled = false
	store, err := SetupDatabase(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	deps := BuildDependencies(cfg, store, nil, zerolog.Nop())
	assert.Nil(t, deps.Metrics)
	router := SetupRouter(cfg, deps, zerolog.Nop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, cfg.Metrics.Path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
