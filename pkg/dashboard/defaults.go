package dashboard

import "strconv"

// defaults is the shared registry of option defaults consulted by every
// builder. Keeping the table in one place guarantees that widgets agree on
// palette names, title sizing and query aggregation without each builder
// repeating the literals.
var defaults = map[string]string{
	"palette":      "dog_classic",
	"title_size":   "16",
	"title_align":  "left",
	"display_type": "line",
	"aggregator":   "avg",
	"data_source":  "metrics",
	"precision":    "2",
	"font_size":    "14",
	"text_align":   "left",
	"sizing":       "cover",
	"viz_type":     "timeseries",
	"grouping":     "cluster",
	"color_by":     "user",
	"size_format":  "10-norm",
	"layout_type":  string(LayoutOrdered),
}

// orDefault returns v, or the registered default for key when v is empty.
func orDefault(v, key string) string {
	if v != "" {
		return v
	}
	return defaults[key]
}

// orDefaultLit returns v, or the literal default when v is empty. Used for
// per-kind defaults that no other builder shares.
func orDefaultLit(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// boolOr returns *v, or def when v is nil. Optional booleans whose default
// is true are carried as pointers so the zero value does not silently
// override the documented default.
func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

// intOrDefault returns v, or the registered default for key when v is nil.
func intOrDefault(v *int, key string) int {
	if v != nil {
		return *v
	}
	n, _ := strconv.Atoi(defaults[key])
	return n
}
