package dashboard

import (
	"encoding/json"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/doghouse/pkg/errors"
)

func TestAssembleOrdered(t *testing.T) {
	widgets := Ordered(mustRow(t, 0, 3, Note("a", nil), Note("b", nil)))

	d, err := Assemble("My Board", LayoutOrdered, widgets, nil)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}
	if d.Title != "My Board" || d.LayoutType != LayoutOrdered {
		t.Errorf("dashboard = %+v", d)
	}
	if len(d.Widgets) != 2 {
		t.Errorf("got %d widgets, want 2", len(d.Widgets))
	}
}

func TestAssembleGrid(t *testing.T) {
	widgets := Grid(mustRow(t, 0, 3, Note("a", nil), Note("b", nil)))

	d, err := Assemble("Grid Board", LayoutGrid, widgets, nil)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}
	for i, w := range d.Widgets {
		if w.Layout == nil {
			t.Errorf("grid widget %d has no cell", i)
		}
	}
}

func TestAssembleValidation(t *testing.T) {
	ordered := Ordered(mustRow(t, 0, 3, Note("a", nil)))
	grid := Grid(mustRow(t, 0, 3, Note("a", nil)))

	tests := []struct {
		name    string
		title   string
		layout  LayoutType
		widgets []Widget
		code    apperrors.Code
	}{
		{"empty title", "", LayoutOrdered, ordered, apperrors.ErrCodeInvalidDashboard},
		{"bad layout type", "T", LayoutType("free"), ordered, apperrors.ErrCodeInvalidDashboard},
		{"grid without cells", "T", LayoutGrid, ordered, apperrors.ErrCodeInvalidLayout},
		{"ordered with cells", "T", LayoutOrdered, grid, apperrors.ErrCodeInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.title, tt.layout, tt.widgets, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", apperrors.GetCode(err), tt.code)
			}
		})
	}
}

func TestAssembleMetadata(t *testing.T) {
	widgets := Ordered(mustRow(t, 0, 3, Note("a", nil)))
	meta := &Metadata{
		Description: "On-call overview",
		Tags:        []string{"team:sre"},
		TemplateVariables: []TemplateVariable{
			{Name: "env", Prefix: "env", Default: "prod"},
		},
	}

	d, err := Assemble("Board", LayoutOrdered, widgets, meta)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}
	if d.Description != "On-call overview" {
		t.Errorf("description = %q", d.Description)
	}
	if len(d.TemplateVariables) != 1 || d.TemplateVariables[0].Name != "env" {
		t.Errorf("template_variables = %v", d.TemplateVariables)
	}

	// Mutating the caller's metadata must not reach the dashboard.
	meta.Tags[0] = "mutated"
	if d.Tags[0] != "team:sre" {
		t.Error("dashboard aliases the caller's tags slice")
	}
}

func TestDashboardJSONOmitsEmpty(t *testing.T) {
	widgets := Ordered(mustRow(t, 0, 3, Note("a", nil)))
	d, err := Assemble("Board", LayoutOrdered, widgets, nil)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)

	for _, absent := range []string{"description", "tags", "notify_list", "template_variables", "reflow_type", `"id"`, `"url"`} {
		if strings.Contains(out, absent) {
			t.Errorf("empty field %s serialized: %s", absent, out)
		}
	}
	for _, present := range []string{`"title"`, `"layout_type"`, `"widgets"`} {
		if !strings.Contains(out, present) {
			t.Errorf("required field %s missing: %s", present, out)
		}
	}
}

func TestDashboardJSONOrderedWidget(t *testing.T) {
	widgets := Ordered(mustRow(t, 0, 3, Note("a", nil)))
	d, _ := Assemble("Board", LayoutOrdered, widgets, nil)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"layout"`) {
		t.Errorf("ordered widget serialized a layout cell: %s", data)
	}
}
