package dashboard

import "fmt"

// Core visualization and chart builders.
//
// Every builder is a pure function: it performs no I/O, touches no global
// state, and returns a fresh [Widget] that does not alias caller-supplied
// maps or slices. Options may be nil, in which case all documented defaults
// apply.

// TimeseriesOptions configures a timeseries widget.
type TimeseriesOptions struct {
	DisplayType string   // line, bars or area; default "line"
	Palette     string   // default "dog_classic"
	TitleSize   string   // default "16"
	TitleAlign  string   // default "left"
	ShowLegend  bool     // default false
	LegendSize  string   // only emitted when ShowLegend is set
	Markers     []Marker // horizontal marker lines, emitted in order
}

// Marker is a horizontal reference line on a timeseries widget.
type Marker struct {
	Value       string // e.g. "y = 90"
	DisplayType string // e.g. "error dashed", "warning bold"
	Label       string
}

// Timeseries builds a timeseries widget from a query spec.
func Timeseries(title string, query QuerySpec, opts *TimeseriesOptions) Widget {
	o := TimeseriesOptions{}
	if opts != nil {
		o = *opts
	}

	reqs := query.requests("timeseries")
	for _, r := range reqs {
		r["display_type"] = orDefault(o.DisplayType, "display_type")
		r["style"] = map[string]any{"palette": orDefault(o.Palette, "palette")}
	}

	def := newDefinition(KindTimeseries)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = reqs
	def["show_legend"] = o.ShowLegend
	if o.ShowLegend && o.LegendSize != "" {
		def["legend_size"] = o.LegendSize
	}
	if len(o.Markers) > 0 {
		markers := make([]map[string]any, len(o.Markers))
		for i, m := range o.Markers {
			mm := map[string]any{"value": m.Value, "display_type": m.DisplayType}
			if m.Label != "" {
				mm["label"] = m.Label
			}
			markers[i] = mm
		}
		def["markers"] = markers
	}
	return Widget{Definition: def}
}

// QueryValueOptions configures a query value widget.
type QueryValueOptions struct {
	Precision  *int   // decimal places; default 2
	Autoscale  *bool  // default true
	CustomUnit string // unit suffix, omitted when empty
	TitleSize  string
	TitleAlign string
}

// QueryValue builds a single-number widget from a query spec.
func QueryValue(title string, query QuerySpec, opts *QueryValueOptions) Widget {
	o := QueryValueOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindQueryValue)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = query.requests("scalar")
	def["precision"] = intOrDefault(o.Precision, "precision")
	def["autoscale"] = boolOr(o.Autoscale, true)
	if o.CustomUnit != "" {
		def["custom_unit"] = o.CustomUnit
	}
	return Widget{Definition: def}
}

// ToplistOptions configures a top list widget.
type ToplistOptions struct {
	Palette    string
	TitleSize  string
	TitleAlign string
}

// Toplist builds a ranked list widget from a query spec. The query is
// expected to carry a grouping (e.g. "avg:cpu{*} by {host}").
func Toplist(title string, query QuerySpec, opts *ToplistOptions) Widget {
	o := ToplistOptions{}
	if opts != nil {
		o = *opts
	}

	reqs := query.requests("scalar")
	for _, r := range reqs {
		r["style"] = map[string]any{"palette": orDefault(o.Palette, "palette")}
	}

	def := newDefinition(KindToplist)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = reqs
	return Widget{Definition: def}
}

// HeatmapOptions configures a heatmap widget.
type HeatmapOptions struct {
	Palette    string
	TitleSize  string
	TitleAlign string
}

// Heatmap builds a heatmap widget from a raw query string.
func Heatmap(title, query string, opts *HeatmapOptions) Widget {
	o := HeatmapOptions{}
	if opts != nil {
		o = *opts
	}

	req := rawRequest(query)
	req["style"] = map[string]any{"palette": orDefault(o.Palette, "palette")}

	def := newDefinition(KindHeatmap)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{req}
	return Widget{Definition: def}
}

// ChangeOptions configures a change widget. The compare/order fields follow
// the wire schema: CompareTo selects the comparison window, IncreaseGood
// flips the color coding, OrderBy/OrderDir control row ordering.
type ChangeOptions struct {
	CompareTo    string // hour_before, day_before, week_before, month_before; default "hour_before"
	IncreaseGood *bool  // default true
	OrderBy      string // change, name, present, past; default "change"
	OrderDir     string // asc or desc; default "desc"
	ChangeType   string // absolute or relative; default "absolute"
	ShowPresent  bool   // also show the current value column
	TitleSize    string
	TitleAlign   string
}

// Change builds a change widget from a raw query string.
func Change(title, query string, opts *ChangeOptions) Widget {
	o := ChangeOptions{}
	if opts != nil {
		o = *opts
	}

	req := rawRequest(query)
	req["compare_to"] = orDefaultLit(o.CompareTo, "hour_before")
	req["increase_good"] = boolOr(o.IncreaseGood, true)
	req["order_by"] = orDefaultLit(o.OrderBy, "change")
	req["order_dir"] = orDefaultLit(o.OrderDir, "desc")
	req["change_type"] = orDefaultLit(o.ChangeType, "absolute")
	if o.ShowPresent {
		req["show_present"] = true
	}

	def := newDefinition(KindChange)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{req}
	return Widget{Definition: def}
}

// DistributionOptions configures a distribution widget.
type DistributionOptions struct {
	Palette    string
	TitleSize  string
	TitleAlign string
}

// Distribution builds a distribution widget from a raw query string.
func Distribution(title, query string, opts *DistributionOptions) Widget {
	o := DistributionOptions{}
	if opts != nil {
		o = *opts
	}

	req := rawRequest(query)
	req["style"] = map[string]any{"palette": orDefault(o.Palette, "palette")}

	def := newDefinition(KindDistribution)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{req}
	return Widget{Definition: def}
}

// TableColumn is one column of a table widget. Alias and Aggregator are
// optional; an empty Alias falls back to the generated query name and an
// empty Aggregator falls back to the shared default ("avg").
type TableColumn struct {
	Query      string
	Alias      string
	Aggregator string
}

// Columns wraps plain query strings as table columns, preserving order.
func Columns(queries ...string) []TableColumn {
	cols := make([]TableColumn, len(queries))
	for i, q := range queries {
		cols[i] = TableColumn{Query: q}
	}
	return cols
}

// TableOptions configures a table widget.
type TableOptions struct {
	HasSearchBar string // auto, always or never; omitted when empty
	TitleSize    string
	TitleAlign   string
}

// Table builds a table widget with one column per entry. Columns become
// sequentially numbered query/formula pairs (query1, query2, ...) in input
// order; column display order on the dashboard follows this numbering.
func Table(title string, columns []TableColumn, opts *TableOptions) Widget {
	o := TableOptions{}
	if opts != nil {
		o = *opts
	}

	queries := make([]map[string]any, len(columns))
	formulas := make([]map[string]any, len(columns))
	for i, col := range columns {
		name := fmt.Sprintf("query%d", i+1)
		queries[i] = map[string]any{
			"name":        name,
			"query":       col.Query,
			"data_source": defaults["data_source"],
			"aggregator":  orDefault(col.Aggregator, "aggregator"),
		}
		f := map[string]any{"formula": name}
		if col.Alias != "" {
			f["alias"] = col.Alias
		}
		formulas[i] = f
	}

	def := newDefinition(KindTable)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{{
		"formulas":        formulas,
		"queries":         queries,
		"response_format": "scalar",
	}}
	if o.HasSearchBar != "" {
		def["has_search_bar"] = o.HasSearchBar
	}
	return Widget{Definition: def}
}

// ScatterplotOptions configures a scatterplot widget.
type ScatterplotOptions struct {
	XAggregator   string // default "avg"
	YAggregator   string // default "avg"
	ColorByGroups []string
	TitleSize     string
	TitleAlign    string
}

// Scatterplot builds a scatterplot from two independent query strings, one
// per dimension. The x and y requests are kept strictly separate.
func Scatterplot(title, xQuery, yQuery string, opts *ScatterplotOptions) Widget {
	o := ScatterplotOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindScatterplot)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = map[string]any{
		"x": map[string]any{"q": xQuery, "aggregator": orDefault(o.XAggregator, "aggregator")},
		"y": map[string]any{"q": yQuery, "aggregator": orDefault(o.YAggregator, "aggregator")},
	}
	if len(o.ColorByGroups) > 0 {
		def["color_by_groups"] = cloneStrings(o.ColorByGroups)
	}
	return Widget{Definition: def}
}

// TreemapOptions configures a treemap widget.
type TreemapOptions struct {
	TitleSize  string
	TitleAlign string
}

// Treemap builds a treemap widget from a query spec.
func Treemap(title string, query QuerySpec, opts *TreemapOptions) Widget {
	o := TreemapOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindTreemap)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = query.requests("scalar")
	return Widget{Definition: def}
}

// BarChartOptions configures a bar chart widget.
type BarChartOptions struct {
	Palette    string
	TitleSize  string
	TitleAlign string
}

// BarChart builds a bar chart widget from a query spec.
func BarChart(title string, query QuerySpec, opts *BarChartOptions) Widget {
	o := BarChartOptions{}
	if opts != nil {
		o = *opts
	}

	reqs := query.requests("scalar")
	for _, r := range reqs {
		r["style"] = map[string]any{"palette": orDefault(o.Palette, "palette")}
	}

	def := newDefinition(KindBarChart)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = reqs
	return Widget{Definition: def}
}

// WildcardOptions configures a wildcard (custom Vega-Lite) widget.
type WildcardOptions struct {
	TitleSize  string
	TitleAlign string
}

// Wildcard builds a wildcard widget carrying an arbitrary Vega-Lite
// specification. The specification map is deep-copied.
func Wildcard(title string, specification map[string]any, opts *WildcardOptions) Widget {
	o := WildcardOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindWildcard)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["specification"] = cloneMap(specification)
	return Widget{Definition: def}
}

// PieChartOptions configures a pie chart widget.
type PieChartOptions struct {
	HideTotal  bool
	TitleSize  string
	TitleAlign string
}

// PieChart builds a pie chart widget from a query spec. Note the wire type:
// the API renders pie charts as "sunburst" definitions.
func PieChart(title string, query QuerySpec, opts *PieChartOptions) Widget {
	o := PieChartOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindPieChart)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = query.requests("scalar")
	if o.HideTotal {
		def["hide_total"] = true
	}
	return Widget{Definition: def}
}

// GeomapOptions configures a geomap widget.
type GeomapOptions struct {
	Palette    string // default "hostmap_blues"
	Focus      string // map focus region; default "WORLD"
	TitleSize  string
	TitleAlign string
}

// Geomap builds a geomap widget from a query spec grouped by a geo tag
// (e.g. "by {country}").
func Geomap(title string, query QuerySpec, opts *GeomapOptions) Widget {
	o := GeomapOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindGeomap)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = query.requests("scalar")
	def["style"] = map[string]any{
		"palette":      orDefaultLit(o.Palette, "hostmap_blues"),
		"palette_flip": false,
	}
	def["view"] = map[string]any{"focus": orDefaultLit(o.Focus, "WORLD")}
	return Widget{Definition: def}
}
