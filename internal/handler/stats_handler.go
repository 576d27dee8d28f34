package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/learn-track/server/internal/service"
	"github.com/learn-track/server/pkg/httputil"
)

// StatsHandler 学习统计处理器
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// GetStats 获取用户学习统计快照
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID := httputil.GetUserID(c)

	snapshot, err := h.service.ComputeStats(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, snapshot)
}
