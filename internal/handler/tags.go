package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gonggo/internal/normalize"
	"gonggo/internal/repository"
)

type TagHandler struct {
	Store  repository.Repository
	Logger *zap.Logger
}

func (h *TagHandler) Register(r *gin.Engine) {
	group := r.Group("/api/tags")
	group.GET("", h.listTags)
	group.POST("", h.createTag)
	group.DELETE("/:id", h.deleteTag)
}

// @Summary List tags
// @Tags tags
// @Success 200 {object} apiResponse
// @Router /api/tags [get]
func (h *TagHandler) listTags(c *gin.Context) {
	if h.Store == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	tags, err := h.Store.ListTags(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list tags failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, tags, nil)
}

type createTagRequest struct {
	Name string `json:"name"`
}

// @Summary Create tag
// @Tags tags
// @Param body body createTagRequest true "tag name (normalized before storing)"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/tags [post]
func (h *TagHandler) createTag(c *gin.Context) {
	if h.Store == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	name := normalize.TagName(req.Name)
	if name == "" {
		Error(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	tag, err := h.Store.UpsertTag(c.Request.Context(), name)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("create tag failed", zap.String("name", name), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, tag, nil)
}

// @Summary Delete tag
// @Tags tags
// @Param id path int true "tag id"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/tags/{id} [delete]
func (h *TagHandler) deleteTag(c *gin.Context) {
	if h.Store == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		Error(c, http.StatusBadRequest, "invalid tag id", nil)
		return
	}
	if err := h.Store.DeleteTag(c.Request.Context(), id); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("delete tag failed", zap.Uint("id", id), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
