package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// dashboardIDRegex matches Datadog dashboard IDs ("abc-def-ghi" style) as
// well as the older purely numeric screenboard IDs.
var dashboardIDRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateDashboardID validates a dashboard ID before it is interpolated
// into an API URL. It rejects anything that could smuggle path segments or
// query parameters into the request.
func ValidateDashboardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "dashboard ID cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "dashboard ID too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "dashboard ID contains invalid control characters")
		}
	}

	if !dashboardIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid dashboard ID: %q", id)
	}

	return nil
}

// siteRegex matches Datadog site hostnames (datadoghq.com, datadoghq.eu,
// us3.datadoghq.com, ddog-gov.com, ...).
var siteRegex = regexp.MustCompile(`^[a-z0-9]+([.-][a-z0-9]+)*$`)

// ValidateSite validates a Datadog site hostname. The site is combined into
// the API base URL, so schemes, slashes and ports are rejected outright.
func ValidateSite(site string) error {
	if site == "" {
		return New(ErrCodeInvalidConfig, "site cannot be empty")
	}

	if strings.ContainsAny(site, "/:@?#") {
		return New(ErrCodeInvalidConfig, "site must be a bare hostname, got %q", site)
	}

	if !siteRegex.MatchString(site) {
		return New(ErrCodeInvalidConfig, "invalid site: %q", site)
	}

	return nil
}

// ValidateTemplatePath validates a template file path supplied on the
// command line. Only the obviously broken inputs are rejected here; whether
// the file exists is checked when it is opened.
func ValidateTemplatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "template path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "template path contains invalid characters")
		}
	}

	return nil
}
