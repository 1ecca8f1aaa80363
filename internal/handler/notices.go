package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gonggo/internal/service"
)

type NoticeHandler struct {
	Query  *service.NoticeQueryService
	Logger *zap.Logger
}

func (h *NoticeHandler) Register(r *gin.Engine) {
	group := r.Group("/api/notices")
	group.GET("", h.listNotices)
	group.GET("/:id", h.getNotice)
}

// @Summary List notices
// @Tags notices
// @Param q query string false "substring match on title/summary"
// @Param lcategory query string false "category (exact match)"
// @Param jrsdInsttNm query string false "organization (substring match)"
// @Param tags query string false "comma-separated tag names, all required"
// @Param sort query string false "newest|popular|deadline"
// @Param page query int false "1-based page"
// @Param pageSize query int false "items per page"
// @Param start query string false "period window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "period window end (RFC3339 or YYYY-MM-DD)"
// @Param bookmarked query bool false "only bookmarked notices"
// @Success 200 {object} apiResponse
// @Router /api/notices [get]
func (h *NoticeHandler) listNotices(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	params := service.ListNoticesParams{
		Query:          strings.TrimSpace(c.Query("q")),
		Category:       strings.TrimSpace(c.Query("lcategory")),
		Organization:   strings.TrimSpace(c.Query("jrsdInsttNm")),
		Tags:           csvQuery(c, "tags"),
		Sort:           strings.TrimSpace(c.Query("sort")),
		Page:           intQuery(c, "page", 1),
		PageSize:       intQuery(c, "pageSize", 0),
		Start:          timeQueryPtr(c, "start"),
		End:            timeQueryPtr(c, "end"),
		BookmarkedOnly: boolQuery(c, "bookmarked"),
	}
	result, err := h.Query.ListNotices(c.Request.Context(), params)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list notices failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, result, paginationMeta(result.Page, result.PageSize, result.Total))
}

// @Summary Get notice detail
// @Tags notices
// @Param id path string true "notice id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/notices/{id} [get]
func (h *NoticeHandler) getNotice(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "id is required", nil)
		return
	}
	detail, err := h.Query.GetNoticeDetail(c.Request.Context(), id)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("get notice failed", zap.String("id", id), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if detail == nil {
		Error(c, http.StatusNotFound, "notice not found", nil)
		return
	}
	Ok(c, detail, nil)
}
