// Package bizinfo is a client for the bizinfo.go.kr announcement open API.
// The API is paged, rate limited, and intermittently unavailable, so page
// fetches retry transient failures with exponential backoff.
package bizinfo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	maxRetries  = 3
	baseBackoff = 500 * time.Millisecond
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

func NewClient(httpClient *http.Client, host, apiKey string) *Client {
	if host == "" {
		host = "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do"
	}
	host = strings.TrimRight(host, "/")
	return &Client{
		host:       host,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type PageParams struct {
	PageIndex     int
	PageUnit      int
	SearchLclasID string
	Hashtags      string
}

// FetchPage fetches one page of announcements. HTTP 429 and 5xx responses are
// retried up to three times with 500ms, 1s, 2s waits; anything else
// propagates to the caller unchanged.
func (c *Client) FetchPage(ctx context.Context, params PageParams) ([]RawNotice, error) {
	for attempt := 0; ; attempt++ {
		body, err := c.doRequest(ctx, params)
		if err == nil {
			return parseItems(body)
		}
		if attempt >= maxRetries || !retryable(err) {
			return nil, err
		}
		wait := baseBackoff << attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// FetchAllPages fetches pages 1..pages in order, concatenating results.
// Pages are fetched strictly sequentially to respect the upstream rate limit;
// a failure on any page aborts the whole aggregation with no partial result.
func (c *Client) FetchAllPages(ctx context.Context, pages int, params PageParams) ([]RawNotice, error) {
	if pages <= 0 {
		pages = 1
	}
	var all []RawNotice
	for page := 1; page <= pages; page++ {
		params.PageIndex = page
		items, err := c.FetchPage(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		all = append(all, items...)
	}
	return all, nil
}

func (c *Client) doRequest(ctx context.Context, params PageParams) ([]byte, error) {
	query := url.Values{}
	query.Set("crtfcKey", c.apiKey)
	query.Set("dataType", "json")
	if params.PageUnit > 0 {
		query.Set("pageUnit", strconv.Itoa(params.PageUnit))
	}
	if params.PageIndex > 0 {
		query.Set("pageIndex", strconv.Itoa(params.PageIndex))
	}
	if params.SearchLclasID != "" {
		query.Set("searchLclasId", params.SearchLclasID)
	}
	if params.Hashtags != "" {
		query.Set("hashtags", params.Hashtags)
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
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func retryable(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= 500
}
