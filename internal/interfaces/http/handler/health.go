package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/playbase/backend/internal/infrastructure/persistence"
	"github.com/playbase/backend/internal/interfaces/http/dto"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db      *persistence.Database
	redis   *redis.Client
	logger  *zap.Logger
	appName string
	version string
}

// NewHealthHandler creates a health handler
func NewHealthHandler(db *persistence.Database, redisClient *redis.Client, logger *zap.Logger, appName, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redisClient,
		logger:  logger,
		appName: appName,
		version: version,
	}
}

// Live handles GET /healthz
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"status":  "ok",
		"app":     h.appName,
		"version": h.version,
	}))
}

// Ready handles GET /readyz. Reports each dependency separately so a
// degraded instance is visible before it is pulled from rotation.
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	if err := h.db.Ping(); err != nil {
		h.logger.Warn("database health check failed", zap.Error(err))
		checks["database"] = "down"
		healthy = false
	} else {
		checks["database"] = "up"
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			h.logger.Warn("redis health check failed", zap.Error(err))
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "up"
		}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	c.JSON(status, dto.NewSuccessResponse(gin.H{
		"status": overall,
		"checks": checks,
	}))
}
