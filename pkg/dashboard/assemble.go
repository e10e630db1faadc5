package dashboard

import (
	apperrors "github.com/matzehuels/doghouse/pkg/errors"
)

// TemplateVariable declares one dashboard template variable.
type TemplateVariable struct {
	Name            string   `json:"name"`
	Prefix          string   `json:"prefix,omitempty"`
	Default         string   `json:"default,omitempty"`
	AvailableValues []string `json:"available_values,omitempty"`
}

// Metadata carries the optional top-level dashboard fields. Zero-valued
// fields are omitted from the document entirely; the API distinguishes
// absent from empty.
type Metadata struct {
	Description       string
	Tags              []string
	NotifyList        []string
	TemplateVariables []TemplateVariable
	ReflowType        string // fixed or auto; grid layouts only
}

// Dashboard is a complete dashboard document matching the v1 wire schema.
// The server-assigned fields (ID, URL) are populated only on documents read
// back from the API.
type Dashboard struct {
	Title             string             `json:"title"`
	Description       string             `json:"description,omitempty"`
	LayoutType        LayoutType         `json:"layout_type"`
	Widgets           []Widget           `json:"widgets"`
	TemplateVariables []TemplateVariable `json:"template_variables,omitempty"`
	Tags              []string           `json:"tags,omitempty"`
	NotifyList        []string           `json:"notify_list,omitempty"`
	ReflowType        string             `json:"reflow_type,omitempty"`

	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

// Assemble combines a title, layout type and positioned widgets into one
// dashboard document. meta may be nil.
//
// Assemble enforces the layout/coordinate cross-check: a grid document must
// carry a cell on every top-level widget and an ordered document must carry
// none. Violations fail here, before anything reaches the API.
func Assemble(title string, layout LayoutType, widgets []Widget, meta *Metadata) (*Dashboard, error) {
	if title == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidDashboard, "dashboard title is required")
	}
	if !layout.Valid() {
		return nil, apperrors.New(apperrors.ErrCodeInvalidDashboard, "layout_type must be %q or %q, got %q", LayoutOrdered, LayoutGrid, layout)
	}

	for i, w := range widgets {
		switch layout {
		case LayoutGrid:
			if w.Layout == nil {
				return nil, apperrors.New(apperrors.ErrCodeInvalidLayout, "grid dashboard: widget %d (%s) has no layout cell", i, w.WireType())
			}
		case LayoutOrdered:
			if w.Layout != nil {
				return nil, apperrors.New(apperrors.ErrCodeInvalidLayout, "ordered dashboard: widget %d (%s) carries a layout cell", i, w.WireType())
			}
		}
	}

	d := &Dashboard{
		Title:      title,
		LayoutType: layout,
		Widgets:    make([]Widget, len(widgets)),
	}
	copy(d.Widgets, widgets)

	if meta != nil {
		d.Description = meta.Description
		d.Tags = cloneStrings(meta.Tags)
		d.NotifyList = cloneStrings(meta.NotifyList)
		d.ReflowType = meta.ReflowType
		if len(meta.TemplateVariables) > 0 {
			d.TemplateVariables = make([]TemplateVariable, len(meta.TemplateVariables))
			copy(d.TemplateVariables, meta.TemplateVariables)
		}
	}
	return d, nil
}
