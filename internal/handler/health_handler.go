package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learn-track/server/pkg/db"
	"github.com/learn-track/server/pkg/redis"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	pool  *pgxpool.Pool
	redis *redis.Client
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(pool *pgxpool.Pool, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		pool:  pool,
		redis: redisClient,
	}
}

// Check 健康检查，任一依赖不可用时返回503
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	status := gin.H{"status": "ok"}
	healthy := true

	latency, err := db.Health(ctx, h.pool)
	if err != nil {
		healthy = false
		status["postgres"] = gin.H{"healthy": false, "error": err.Error()}
	} else {
		status["postgres"] = gin.H{"healthy": true, "response_time_ms": latency.Milliseconds()}
	}

	start := time.Now()
	if err := h.redis.Ping(ctx); err != nil {
		healthy = false
		status["redis"] = gin.H{"healthy": false, "error": err.Error()}
	} else {
		status["redis"] = gin.H{"healthy": true, "response_time_ms": time.Since(start).Milliseconds()}
	}

	if !healthy {
		status["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
