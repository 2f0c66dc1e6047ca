package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthRouter(h *HealthController) *gin.Engine {
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/ping", h.Ping)
	return r
}

func TestHealthController(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("unreachable") })

	t.Run("healthy without cache", func(t *testing.T) {
		w, body := doJSON(t, healthRouter(NewHealthController("memory", up, nil)), http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "memory", body["database"])
		assert.NotContains(t, body, "cache")
	})

	t.Run("cache down stays healthy", func(t *testing.T) {
		w, body := doJSON(t, healthRouter(NewHealthController("mongo", up, down)), http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "down", body["cache"])
	})

	t.Run("store down", func(t *testing.T) {
		w, body := doJSON(t, healthRouter(NewHealthController("postgres", down, nil)), http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unavailable", body["status"])
	})

	t.Run("ping", func(t *testing.T) {
		w, body := doJSON(t, healthRouter(NewHealthController("memory", up, nil)), http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", body["message"])
	})
}
