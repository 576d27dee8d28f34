package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/learn-track/server/internal/domain"
	"github.com/learn-track/server/internal/repository"
	"github.com/learn-track/server/internal/service"
	apperrors "github.com/learn-track/server/pkg/errors"
	"github.com/learn-track/server/pkg/httputil"
)

// VideoHandler 观看记录处理器
type VideoHandler struct {
	service *service.VideoService
}

// NewVideoHandler 创建观看记录处理器
func NewVideoHandler(service *service.VideoService) *VideoHandler {
	return &VideoHandler{
		service: service,
	}
}

// RecordWatch 记录一次观看
func (h *VideoHandler) RecordWatch(c *gin.Context) {
	userID := httputil.GetUserID(c)

	var req struct {
		VideoID      string   `json:"video_id" binding:"required"`
		Title        string   `json:"title" binding:"required"`
		ChannelName  string   `json:"channel_name"`
		ChannelID    string   `json:"channel_id"`
		ThumbnailURL string   `json:"thumbnail_url"`
		Category     string   `json:"category"`
		Tags         []string `json:"tags"`
		Duration     int      `json:"duration"`
		WatchTime    int      `json:"watch_time"`
		IsCompleted  bool     `json:"is_completed"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	video, err := h.service.RecordWatch(c.Request.Context(), userID, service.WatchObservation{
		VideoID:      req.VideoID,
		Title:        req.Title,
		ChannelName:  req.ChannelName,
		ChannelID:    req.ChannelID,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Tags:         req.Tags,
		Duration:     req.Duration,
		WatchTime:    req.WatchTime,
		IsCompleted:  req.IsCompleted,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, video)
}

// ListVideos 获取观看记录列表
func (h *VideoHandler) ListVideos(c *gin.Context) {
	userID := httputil.GetUserID(c)

	var query struct {
		Limit    int    `form:"limit"`
		Offset   int    `form:"offset"`
		Category string `form:"category"`
		Search   string `form:"search"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.ErrorResponse(c, apperrors.ErrInvalidInput.WithError(err))
		return
	}

	filter := repository.ListFilter{
		Limit:    query.Limit,
		Offset:   query.Offset,
		Category: query.Category,
		Search:   query.Search,
	}
	videos, total, err := h.service.ListVideos(c.Request.Context(), userID, &filter)
	if err != nil {
		handleError(c, err)
		return
	}
	if videos == nil {
		videos = []*domain.Video{}
	}

	httputil.PaginatedResponse(c, videos, filter.Limit, filter.Offset, total)
}

// GetVideo 获取观看记录详情
func (h *VideoHandler) GetVideo(c *gin.Context) {
	userID := httputil.GetUserID(c)
	videoID := c.Param("id")

	video, err := h.service.GetVideo(c.Request.Context(), userID, videoID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, video)
}

// UpdateVideo 部分更新观看记录
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID := httputil.GetUserID(c)
	videoID := c.Param("id")

	var update domain.VideoUpdate
	if err := httputil.BindAndValidate(c, &update); err != nil {
		httputil.ErrorResponse(c, err)
		return
	}

	video, err := h.service.UpdateVideo(c.Request.Context(), userID, videoID, &update)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, video)
}

// DeleteVideo 删除观看记录
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID := httputil.GetUserID(c)
	videoID := c.Param("id")

	if err := h.service.DeleteVideo(c.Request.Context(), userID, videoID); err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, gin.H{"deleted": true})
}
