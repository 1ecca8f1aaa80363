package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gonggo/internal/service"
)

type ImportHandler struct {
	Service  *service.ImportService
	Defaults service.ImportOptions
	Logger   *zap.Logger
}

func (h *ImportHandler) Register(r *gin.Engine) {
	group := r.Group("/api/import")
	group.POST("", h.runImport)
	group.GET("/state", h.listState)
}

type importRequest struct {
	SearchLclasID string `json:"searchLclasId"`
	Hashtags      string `json:"hashtags"`
	Pages         int    `json:"pages"`
	PageUnit      int    `json:"pageUnit"`
}

// @Summary Run announcement import
// @Tags import
// @Param body body importRequest false "overrides for the configured defaults"
// @Param pages query int false "pages to fetch (sequential)"
// @Param pageUnit query int false "records per page"
// @Param searchLclasId query string false "category filter forwarded upstream"
// @Param hashtags query string false "hashtag filter forwarded upstream"
// @Success 200 {object} apiResponse
// @Router /api/import [post]
func (h *ImportHandler) runImport(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	opts := h.Defaults
	// body overrides first, then query params; both are optional
	var req importRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			Error(c, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	if req.Pages > 0 {
		opts.Pages = req.Pages
	}
	if req.PageUnit > 0 {
		opts.PageUnit = req.PageUnit
	}
	if lclas := strings.TrimSpace(req.SearchLclasID); lclas != "" {
		opts.SearchLclasID = lclas
	}
	if hashtags := strings.TrimSpace(req.Hashtags); hashtags != "" {
		opts.Hashtags = hashtags
	}
	if pages := intQuery(c, "pages", 0); pages > 0 {
		opts.Pages = pages
	}
	if unit := intQuery(c, "pageUnit", 0); unit > 0 {
		opts.PageUnit = unit
	}
	if lclas := strings.TrimSpace(c.Query("searchLclasId")); lclas != "" {
		opts.SearchLclasID = lclas
	}
	if hashtags := strings.TrimSpace(c.Query("hashtags")); hashtags != "" {
		opts.Hashtags = hashtags
	}

	result, err := h.Service.Run(c.Request.Context(), opts)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("import failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, result, nil)
}

// @Summary List import sync states
// @Tags import
// @Success 200 {object} apiResponse
// @Router /api/import/state [get]
func (h *ImportHandler) listState(c *gin.Context) {
	if h.Service == nil || h.Service.Store == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	states, err := h.Service.Store.ListSyncStates(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list sync state failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, states, nil)
}
