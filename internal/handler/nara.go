package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gonggo/internal/client/nara"
)

type NaraHandler struct {
	Client *nara.Client
	Logger *zap.Logger
}

// passthroughParams are the upstream bid-search filters forwarded verbatim.
// Anything outside this list is dropped.
var passthroughParams = []string{
	"bidNtceNm",
	"ntceInsttNm",
	"ntceInsttCd",
	"dminsttNm",
	"dminsttCd",
	"bidNtceNo",
	"bidNtceOrd",
	"refNo",
	"prtcptLmtRgnCd",
	"indstrytyCd",
}

func (h *NaraHandler) Register(r *gin.Engine) {
	r.GET("/api/nara", h.searchBids)
}

// @Summary Search bid notices
// @Tags nara
// @Param page query int false "1-based page"
// @Param pageSize query int false "rows per page"
// @Param inqryDiv query string false "inquiry division (default 1)"
// @Param start query string false "window start, YYYYMMDDHHmm datetime"
// @Param end query string false "window end, YYYYMMDDHHmm datetime"
// @Param bidNtceNm query string false "bid notice name filter"
// @Param ntceInsttNm query string false "notifying institution name"
// @Param dminsttNm query string false "demanding institution name"
// @Param bidNtceNo query string false "bid notice number"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /api/nara [get]
func (h *NaraHandler) searchBids(c *gin.Context) {
	if h.Client == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}

	start := strings.TrimSpace(c.Query("start"))
	end := strings.TrimSpace(c.Query("end"))
	startParam := nara.FormatDateParam(start)
	endParam := nara.FormatDateParam(end)
	if start != "" && startParam == "" {
		Error(c, http.StatusBadRequest, "start must be a YYYYMMDDHHmm datetime", nil)
		return
	}
	if end != "" && endParam == "" {
		Error(c, http.StatusBadRequest, "end must be a YYYYMMDDHHmm datetime", nil)
		return
	}

	extra := url.Values{}
	for _, key := range passthroughParams {
		if val := strings.TrimSpace(c.Query(key)); val != "" {
			extra.Set(key, val)
		}
	}

	inqryDiv := strings.TrimSpace(c.Query("inqryDiv"))
	if inqryDiv == "" {
		inqryDiv = "1"
	}

	result, err := h.Client.Search(c.Request.Context(), nara.SearchParams{
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "pageSize", 10),
		InqryDiv: inqryDiv,
		Start:    startParam,
		End:      endParam,
		Extra:    extra,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("nara search failed", zap.Error(err))
		}
		var resultErr *nara.ResultError
		if errors.As(err, &resultErr) {
			Error(c, http.StatusBadGateway, resultErr.Error(), map[string]any{"upstream_code": resultErr.Code})
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, result, paginationMeta(result.Page, result.PageSize, result.Total))
}
