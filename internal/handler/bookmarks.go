package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gonggo/internal/models"
	"gonggo/internal/repository"
	"gonggo/internal/service"
)

type BookmarkHandler struct {
	Store  repository.Repository
	Query  *service.NoticeQueryService
	Logger *zap.Logger
}

func (h *BookmarkHandler) Register(r *gin.Engine) {
	group := r.Group("/api/bookmarks")
	group.GET("", h.listBookmarks)
	group.POST("", h.createBookmark)
	group.DELETE("/:id", h.deleteBookmark)
}

// @Summary List bookmarked notices
// @Tags bookmarks
// @Param sort query string false "newest|popular|deadline"
// @Param page query int false "1-based page"
// @Param pageSize query int false "items per page"
// @Success 200 {object} apiResponse
// @Router /api/bookmarks [get]
func (h *BookmarkHandler) listBookmarks(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	result, err := h.Query.ListNotices(c.Request.Context(), service.ListNoticesParams{
		Sort:           strings.TrimSpace(c.Query("sort")),
		Page:           intQuery(c, "page", 1),
		PageSize:       intQuery(c, "pageSize", 0),
		BookmarkedOnly: true,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list bookmarks failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, result, paginationMeta(result.Page, result.PageSize, result.Total))
}

type createBookmarkRequest struct {
	NoticeID string `json:"noticeId"`
}

// @Summary Bookmark a notice
// @Tags bookmarks
// @Param body body createBookmarkRequest true "notice id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/bookmarks [post]
func (h *BookmarkHandler) createBookmark(c *gin.Context) {
	if h.Store == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	noticeID := strings.TrimSpace(req.NoticeID)
	if noticeID == "" {
		Error(c, http.StatusBadRequest, "noticeId is required", nil)
		return
	}
	ctx := c.Request.Context()
	notice, err := h.Store.GetNoticeByID(ctx, noticeID)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if notice == nil {
		Error(c, http.StatusNotFound, "notice not found", nil)
		return
	}
	// at most one bookmark per notice; repeating the call returns the
	// existing row instead of failing
	existing, err := h.Store.GetBookmarkByNoticeID(ctx, noticeID)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if existing != nil {
		Ok(c, existing, nil)
		return
	}
	bookmark := &models.Bookmark{NoticeID: noticeID}
	if err := h.Store.CreateBookmark(ctx, bookmark); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("create bookmark failed", zap.String("notice_id", noticeID), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, bookmark, nil)
}

// @Summary Remove bookmark
// @Tags bookmarks
// @Param id path int true "bookmark id"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/bookmarks/{id} [delete]
func (h *BookmarkHandler) deleteBookmark(c *gin.Context) {
	if h.Store == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid bookmark id", nil)
		return
	}
	if err := h.Store.DeleteBookmark(c.Request.Context(), id); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("delete bookmark failed", zap.Uint("id", id), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
