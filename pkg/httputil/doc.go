// Package httputil provides HTTP utilities for the Datadog API client.
//
// # Overview
//
// This package provides infrastructure shared by anything in doghouse that
// talks to the network:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores API responses in the filesystem (~/.cache/doghouse/)
// with configurable TTL. Listing an organization's dashboards is by far the
// most repeated call the CLI makes; caching it keeps `doghouse list` snappy
// without hammering the API.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 5*time.Minute)
//	var dashboards []Summary
//	ok, _ := cache.Get("list:datadoghq.com", &dashboards) // Check cache
//	if !ok {
//	    dashboards = fetchFromAPI()
//	    cache.Set("list:datadoghq.com", dashboards)       // Store for later
//	}
//
// Cache keys should be namespaced per site to avoid collisions between
// organizations.
//
// # Retry
//
// [Retry] wraps API requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//
// Only errors wrapped in [RetryableError] are retried; a 404 or a 403 fails
// immediately.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/doghouse/
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `doghouse cache clear` or by deleting the
// cache directory.
package httputil
