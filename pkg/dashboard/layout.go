package dashboard

import (
	apperrors "github.com/matzehuels/doghouse/pkg/errors"
)

// LayoutType selects how a dashboard positions its widgets.
type LayoutType string

const (
	// LayoutOrdered lets the dashboard auto-flow widgets; documents never
	// carry coordinates.
	LayoutOrdered LayoutType = "ordered"

	// LayoutGrid positions every top-level widget with an explicit cell.
	LayoutGrid LayoutType = "grid"
)

// Valid reports whether t is a known layout type.
func (t LayoutType) Valid() bool {
	return t == LayoutOrdered || t == LayoutGrid
}

// GridColumns is the column capacity of a grid dashboard row.
const GridColumns = 12

// Cell is the position of one widget in a grid dashboard.
type Cell struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Row declares one horizontal band of a grid dashboard: a vertical offset,
// a uniform height, and an ordered sequence of widgets sharing the band.
// Rows are validated at construction; [Grid] assumes they are well-formed.
//
// Rows stack by caller-chosen offsets. The engine does not detect rows whose
// offset ranges overlap; that is a caller error, not something it corrects.
type Row struct {
	offset  int
	height  int
	widgets []Widget
}

// NewRow declares a row at the given y offset with the given height.
// The offset must be non-negative and the height positive; per-widget height
// overrides are not supported, so a visually mixed-height band must be
// declared as multiple rows with compatible offsets. A row holds at most
// [GridColumns] widgets, since every widget needs at least one column.
func NewRow(offset, height int, widgets ...Widget) (Row, error) {
	if offset < 0 {
		return Row{}, apperrors.New(apperrors.ErrCodeInvalidLayout, "row offset must be >= 0, got %d", offset)
	}
	if height <= 0 {
		return Row{}, apperrors.New(apperrors.ErrCodeInvalidLayout, "row height must be > 0, got %d", height)
	}
	if len(widgets) > GridColumns {
		return Row{}, apperrors.New(apperrors.ErrCodeInvalidLayout,
			"row holds %d widgets, a grid row fits at most %d", len(widgets), GridColumns)
	}
	row := Row{offset: offset, height: height, widgets: make([]Widget, len(widgets))}
	copy(row.widgets, widgets)
	return row, nil
}

// FullWidth declares a single-widget row spanning all 12 columns.
func FullWidth(offset, height int, w Widget) (Row, error) {
	return NewRow(offset, height, w)
}

// Grid positions the rows' widgets on the 12-column grid and returns them in
// declaration order (rows first, then widgets within each row).
//
// Within a row of n widgets, each widget gets floor(12/n) columns and the
// first 12 mod n widgets absorb one extra column, so row widths always sum
// to exactly 12 (a 5-widget row yields widths 3,3,2,2,2). X coordinates are
// the cumulative widths of the preceding widgets; y and height come from the
// row declaration. Empty rows contribute nothing.
//
// Group widgets are opaque: their internal widgets are never considered when
// dividing a row.
func Grid(rows ...Row) []Widget {
	var out []Widget
	for _, row := range rows {
		n := len(row.widgets)
		if n == 0 {
			continue
		}
		base := GridColumns / n
		rem := GridColumns % n

		x := 0
		for i, w := range row.widgets {
			width := base
			if i < rem {
				width++
			}
			out = append(out, w.withCell(Cell{
				X:      x,
				Y:      row.offset,
				Width:  width,
				Height: row.height,
			}))
			x += width
		}
	}
	return out
}

// Ordered flattens the rows' widgets into a single sequence in declaration
// order, with no coordinates attached. Row offsets and heights are ignored;
// the consuming dashboard auto-flows ordered layouts.
func Ordered(rows ...Row) []Widget {
	var out []Widget
	for _, row := range rows {
		out = append(out, row.widgets...)
	}
	return out
}
