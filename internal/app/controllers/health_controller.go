package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/pkg/logger"
)

// Pinger is anything whose reachability can be checked
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports store and cache reachability
type HealthController struct {
	driver string
	store  Pinger
	cache  Pinger
}

// NewHealthController creates a HealthController. cache may be nil when caching is disabled.
func NewHealthController(driver string, store, cache Pinger) *HealthController {
	return &HealthController{driver: driver, store: store, cache: cache}
}

// Health checks the store (and cache, when configured)
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Failure 503 {object} dto.HealthResponse "Store unreachable"
// @Router /health [get]
func (h *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: h.driver}
	status := http.StatusOK

	if err := h.store.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("driver", h.driver).Msg("Health check: store unreachable")
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	// a cache outage degrades latency, not correctness
	if h.cache != nil {
		resp.Cache = "up"
		if err := h.cache.Ping(pingCtx); err != nil {
			logger.Warn().Err(err).Msg("Health check: cache unreachable")
			resp.Cache = "down"
		}
	}

	ctx.JSON(status, resp)
}

// Ping is a liveness probe
func (h *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}
