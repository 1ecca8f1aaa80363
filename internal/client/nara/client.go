// Package nara is a client for the 나라장터 (g2b) bid-listing open API.
package nara

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Body)
}

// ResultError is an upstream application-level failure: HTTP 200 with a
// non-"00" result code in the response header.
type ResultError struct {
	Code string
	Msg  string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("nara result %s: %s", e.Code, e.Msg)
}

func NewClient(httpClient *http.Client, host, apiKey string) *Client {
	host = strings.TrimRight(host, "/")
	return &Client{
		host:       host,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type SearchParams struct {
	Page     int
	PageSize int
	InqryDiv string
	// Start and End are 12-digit YYYYMMDDHHmm datetimes; see FormatDateParam.
	Start string
	End   string
	// Extra carries whitelisted upstream passthrough parameters.
	Extra url.Values
}

type SearchResult struct {
	Items    []Bid  `json:"items"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	InqryDiv string `json:"inqryDiv"`
}

// Search runs one bid-listing query. Unlike the announcement feed this API is
// queried interactively per user request, so there is no retry layer; errors
// surface straight to the handler.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	query := url.Values{}
	query.Set("ServiceKey", c.apiKey)
	query.Set("type", "json")
	query.Set("numOfRows", strconv.Itoa(params.PageSize))
	query.Set("pageNo", strconv.Itoa(params.Page))
	query.Set("inqryDiv", params.InqryDiv)
	query.Set("inqryBgnDt", params.Start)
	query.Set("inqryEndDt", params.End)
	for key, vals := range params.Extra {
		for _, val := range vals {
			if val != "" {
				query.Set(key, val)
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if code, msg, ok := headerError(body); ok {
			return nil, &ResultError{Code: code, Msg: msg}
		}
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("invalid response shape: %w", err)
	}
	if env.Response == nil || env.Response.Header.ResultCode == "" {
		return nil, fmt.Errorf("invalid response shape")
	}
	if env.Response.Header.ResultCode != "00" {
		return nil, &ResultError{
			Code: env.Response.Header.ResultCode,
			Msg:  env.Response.Header.ResultMsg,
		}
	}

	rows, err := rowsOf(env.Response.Body.Items)
	if err != nil {
		return nil, err
	}
	items := make([]Bid, 0, len(rows))
	for _, row := range rows {
		items = append(items, normalizeBid(row))
	}
	return &SearchResult{
		Items:    items,
		Total:    int(env.Response.Body.TotalCount),
		Page:     params.Page,
		PageSize: params.PageSize,
		InqryDiv: params.InqryDiv,
	}, nil
}

func headerError(body []byte) (code, msg string, ok bool) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", "", false
	}
	if env.Response == nil || env.Response.Header.ResultMsg == "" {
		return "", "", false
	}
	return env.Response.Header.ResultCode, env.Response.Header.ResultMsg, true
}

// FormatDateParam coerces user input into the 12-digit YYYYMMDDHHmm form the
// API requires. Returns "" when the input cannot supply 12 digits.
func FormatDateParam(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 12 && isDigits(trimmed) {
		return trimmed
	}
	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() >= 12 {
		return digits.String()[:12]
	}
	return ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
