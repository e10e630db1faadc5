// Package datadog implements a client for the Datadog Dashboards API (v1).
//
// The client covers the dashboard lifecycle: create, get, update, delete,
// and list. Requests are authenticated with an API key and an application
// key, retried on transient failures, and the dashboard list can be served
// from a local cache.
package datadog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/doghouse/pkg/errors"
	"github.com/matzehuels/doghouse/pkg/httputil"
)

// listCacheTTL bounds how long a cached dashboard list is served before the
// API is consulted again.
const listCacheTTL = 5 * time.Minute

// Client provides access to the Datadog Dashboards API.
// It handles authentication headers, automatic retries for transient
// failures, and optional caching of list responses.
type Client struct {
	baseURL    string
	apiKey     string
	appKey     string
	site       string
	httpClient *http.Client
	cache      *httputil.Cache

	retryAttempts int
	retryDelay    time.Duration
}

// Option customizes a Client created by [NewClient].
type Option func(*Client)

// WithBaseURL overrides the API base URL derived from the site. Tests use
// this to point the client at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithRetry overrides the retry policy for transient failures.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// WithCache replaces the default on-disk list cache.
func WithCache(cache *httputil.Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a Datadog API client for the given site.
// The site is a bare hostname such as "datadoghq.com" or "datadoghq.eu";
// the v1 API base URL is derived from it.
func NewClient(apiKey, appKey, site string, opts ...Option) (*Client, error) {
	if err := errors.ValidateSite(site); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:       fmt.Sprintf("https://api.%s/api/v1", site),
		apiKey:        apiKey,
		appKey:        appKey,
		site:          site,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		retryAttempts: 3,
		retryDelay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cache == nil {
		cache, err := httputil.NewCache("", listCacheTTL)
		if err != nil {
			// Caching is an optimization; a read-only cache directory
			// should not keep the client from working.
			cache = nil
		}
		c.cache = cache
	}

	return c, nil
}

// Summary describes a dashboard as returned by the list endpoint.
type Summary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	LayoutType string `json:"layout_type"`
	URL        string `json:"url"`
	AuthorName string `json:"author_handle"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

// Create creates a new dashboard from doc and returns the created document,
// including the server-assigned id and url.
func (c *Client) Create(ctx context.Context, doc map[string]any) (map[string]any, error) {
	var result map[string]any
	err := c.do(ctx, http.MethodPost, "/dashboard", doc, &result)
	if err != nil {
		return nil, err
	}
	c.invalidateList()
	return result, nil
}

// Get fetches the dashboard with the given id.
func (c *Client) Get(ctx context.Context, id string) (map[string]any, error) {
	if err := errors.ValidateDashboardID(id); err != nil {
		return nil, err
	}
	var result map[string]any
	if err := c.do(ctx, http.MethodGet, "/dashboard/"+id, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces the dashboard with the given id and returns the updated
// document.
func (c *Client) Update(ctx context.Context, id string, doc map[string]any) (map[string]any, error) {
	if err := errors.ValidateDashboardID(id); err != nil {
		return nil, err
	}
	var result map[string]any
	if err := c.do(ctx, http.MethodPut, "/dashboard/"+id, doc, &result); err != nil {
		return nil, err
	}
	c.invalidateList()
	return result, nil
}

// Delete removes the dashboard with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateDashboardID(id); err != nil {
		return err
	}
	if err := c.do(ctx, http.MethodDelete, "/dashboard/"+id, nil, nil); err != nil {
		return err
	}
	c.invalidateList()
	return nil
}

// Exists reports whether a dashboard with the given id exists. A 404 from
// the API is not an error here; it means "no".
func (c *Client) Exists(ctx context.Context, id string) (bool, error) {
	_, err := c.Get(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errors.ErrCodeDashboardNotFound) {
		return false, nil
	}
	return false, err
}

// List returns summaries of all dashboards in the organization.
// Results are cached per site for a few minutes; pass refresh to bypass
// the cache.
func (c *Client) List(ctx context.Context, refresh bool) ([]Summary, error) {
	cacheKey := c.site + ":list"

	if !refresh && c.cache != nil {
		var cached []Summary
		if ok, err := c.cache.Get(cacheKey, &cached); ok && err == nil {
			return cached, nil
		}
	}

	var resp struct {
		Dashboards []Summary `json:"dashboards"`
	}
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &resp); err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.Set(cacheKey, resp.Dashboards)
	}
	return resp.Dashboards, nil
}

func (c *Client) invalidateList() {
	if c.cache != nil {
		_ = c.cache.Delete(c.site + ":list")
	}
}

// do executes one API request with retry. Transient failures (network
// errors, 5xx responses) are retried with exponential backoff; everything
// else is mapped to a structured error and returned immediately.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDashboard, err, "encode request body")
		}
		payload = data
	}

	return httputil.Retry(ctx, c.retryAttempts, c.retryDelay, func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "build request")
		}
		req.Header.Set("DD-API-KEY", c.apiKey)
		req.Header.Set("DD-APPLICATION-KEY", c.appKey)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &httputil.RetryableError{
				Err: errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, path),
			}
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &httputil.RetryableError{
				Err: errors.Wrap(errors.ErrCodeNetwork, err, "read response"),
			}
		}

		if err := c.checkStatus(resp, data, method, path); err != nil {
			return err
		}

		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "decode response")
			}
		}
		return nil
	})
}

// checkStatus maps non-2xx responses to structured errors.
func (c *Client) checkStatus(resp *http.Response, body []byte, method, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := apiErrorDetail(body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.New(errors.ErrCodeUnauthorized, "invalid API key%s", detail)
	case resp.StatusCode == http.StatusForbidden:
		return errors.New(errors.ErrCodeForbidden, "access denied%s", detail)
	case resp.StatusCode == http.StatusNotFound:
		return errors.New(errors.ErrCodeDashboardNotFound, "dashboard not found%s", detail)
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := 0
		if v := resp.Header.Get("Retry-After"); v != "" {
			retryAfter, _ = strconv.Atoi(v)
		}
		return &errors.RateLimitedError{RetryAfter: retryAfter}
	case resp.StatusCode >= 500:
		return &httputil.RetryableError{
			Err: errors.New(errors.ErrCodeNetwork, "server error %d on %s %s%s",
				resp.StatusCode, method, path, detail),
		}
	default:
		return errors.New(errors.ErrCodeInvalidDashboard, "API error %d on %s %s%s",
			resp.StatusCode, method, path, detail)
	}
}

// apiErrorDetail extracts the "errors" array the Datadog API returns with
// failed requests, formatted for appending to a message.
func apiErrorDetail(body []byte) string {
	var parsed struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Errors) == 0 {
		return ""
	}
	return ": " + parsed.Errors[0]
}
