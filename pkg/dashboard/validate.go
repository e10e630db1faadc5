package dashboard

import (
	apperrors "github.com/matzehuels/doghouse/pkg/errors"
)

// ValidateDocument checks a raw compiled dashboard document (for example the
// output of a Jsonnet template) against the structural requirements of the
// wire schema: required top-level fields, a known layout type, and a
// definition on every widget. It returns all problems found, or nil.
//
// This is intentionally shallow. Per-kind option validation belongs to the
// API; the point here is catching template mistakes before a network call.
func ValidateDocument(doc map[string]any) []error {
	var errs []error

	if _, ok := doc["title"].(string); !ok {
		errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "missing required field 'title'"))
	}
	if _, ok := doc["widgets"]; !ok {
		errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "missing required field 'widgets'"))
	}
	if _, ok := doc["layout_type"]; !ok {
		errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "missing required field 'layout_type'"))
	}

	if lt, ok := doc["layout_type"].(string); ok && !LayoutType(lt).Valid() {
		errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "'layout_type' must be %q or %q, got %q", LayoutOrdered, LayoutGrid, lt))
	}

	widgets, ok := doc["widgets"].([]any)
	if !ok {
		if _, present := doc["widgets"]; present {
			errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "'widgets' must be a list"))
		}
		return errs
	}

	for i, w := range widgets {
		wm, ok := w.(map[string]any)
		if !ok {
			errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "widget %d is not an object", i))
			continue
		}
		def, ok := wm["definition"].(map[string]any)
		if !ok {
			errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "widget %d missing 'definition'", i))
			continue
		}
		if _, ok := def["type"].(string); !ok {
			errs = append(errs, apperrors.New(apperrors.ErrCodeInvalidDashboard, "widget %d definition missing 'type'", i))
		}
	}
	return errs
}
