package dashboard

// Kind identifies a widget kind supported by the Datadog dashboard API.
//
// Kind names follow the names used in dashboard templates (snake_case).
// The wire type string expected by the API inside a widget definition is
// not always identical to the kind name; use [Kind.WireType] to translate.
type Kind string

// All supported widget kinds.
const (
	// Core visualization
	KindTimeseries   Kind = "timeseries"
	KindQueryValue   Kind = "query_value"
	KindToplist      Kind = "toplist"
	KindHeatmap      Kind = "heatmap"
	KindChange       Kind = "change"
	KindDistribution Kind = "distribution"
	KindTable        Kind = "table"
	KindScatterplot  Kind = "scatterplot"
	KindTreemap      Kind = "treemap"
	KindBarChart     Kind = "bar_chart"
	KindWildcard     Kind = "wildcard"

	// Charts
	KindPieChart Kind = "pie_chart"
	KindGeomap   Kind = "geomap"

	// Infrastructure & services
	KindHostmap        Kind = "hostmap"
	KindServiceMap     Kind = "service_map"
	KindServiceSummary Kind = "service_summary"
	KindTopologyMap    Kind = "topology_map"

	// Monitoring & alerting
	KindAlertGraph     Kind = "alert_graph"
	KindAlertValue     Kind = "alert_value"
	KindCheckStatus    Kind = "check_status"
	KindMonitorSummary Kind = "monitor_summary"
	KindSLO            Kind = "slo"
	KindRunWorkflow    Kind = "run_workflow"

	// Events & logs
	KindEventStream   Kind = "event_stream"
	KindEventTimeline Kind = "event_timeline"
	KindLogStream     Kind = "log_stream"
	KindList          Kind = "list"

	// Decoration
	KindNote     Kind = "note"
	KindFreeText Kind = "free_text"
	KindImage    Kind = "image"
	KindIFrame   Kind = "iframe"

	// Organization
	KindGroup      Kind = "group"
	KindPowerpack  Kind = "powerpack"
	KindSplitGraph Kind = "split_graph"

	// Product analytics
	KindFunnel    Kind = "funnel"
	KindSankey    Kind = "sankey"
	KindRetention Kind = "retention"

	// Performance
	KindProfilingFlameGraph Kind = "profiling_flame_graph"
)

// wireTypes maps every kind to the `type` string the API expects inside a
// widget definition. The table is authoritative data, not derivable from the
// kind name: a pie chart is wired as "sunburst", a service summary as
// "trace_service", and the list widget as "list_stream".
var wireTypes = map[Kind]string{
	KindTimeseries:   "timeseries",
	KindQueryValue:   "query_value",
	KindToplist:      "toplist",
	KindHeatmap:      "heatmap",
	KindChange:       "change",
	KindDistribution: "distribution",
	KindTable:        "table",
	KindScatterplot:  "scatterplot",
	KindTreemap:      "treemap",
	KindBarChart:     "bar_chart",
	KindWildcard:     "wildcard",

	KindPieChart: "sunburst",
	KindGeomap:   "geomap",

	KindHostmap:        "hostmap",
	KindServiceMap:     "service_map",
	KindServiceSummary: "trace_service",
	KindTopologyMap:    "topology_map",

	KindAlertGraph:     "alert_graph",
	KindAlertValue:     "alert_value",
	KindCheckStatus:    "check_status",
	KindMonitorSummary: "monitor_summary",
	KindSLO:            "slo",
	KindRunWorkflow:    "run_workflow",

	KindEventStream:   "event_stream",
	KindEventTimeline: "event_timeline",
	KindLogStream:     "log_stream",
	KindList:          "list_stream",

	KindNote:     "note",
	KindFreeText: "free_text",
	KindImage:    "image",
	KindIFrame:   "iframe",

	KindGroup:      "group",
	KindPowerpack:  "powerpack",
	KindSplitGraph: "split_graph",

	KindFunnel:    "funnel",
	KindSankey:    "sankey",
	KindRetention: "retention",

	KindProfilingFlameGraph: "profiling_flame_graph",
}

// WireType returns the `definition.type` string for the kind.
// Returns "" for unknown kinds.
func (k Kind) WireType() string { return wireTypes[k] }

// Valid reports whether k is a known widget kind.
func (k Kind) Valid() bool {
	_, ok := wireTypes[k]
	return ok
}

// Kinds returns all supported widget kinds in a stable, documented order
// (the order the constants are declared in).
func Kinds() []Kind {
	return []Kind{
		KindTimeseries, KindQueryValue, KindToplist, KindHeatmap, KindChange,
		KindDistribution, KindTable, KindScatterplot, KindTreemap, KindBarChart,
		KindWildcard,
		KindPieChart, KindGeomap,
		KindHostmap, KindServiceMap, KindServiceSummary, KindTopologyMap,
		KindAlertGraph, KindAlertValue, KindCheckStatus, KindMonitorSummary,
		KindSLO, KindRunWorkflow,
		KindEventStream, KindEventTimeline, KindLogStream, KindList,
		KindNote, KindFreeText, KindImage, KindIFrame,
		KindGroup, KindPowerpack, KindSplitGraph,
		KindFunnel, KindSankey, KindRetention,
		KindProfilingFlameGraph,
	}
}

// Widget is a single dashboard element: a definition (the widget payload the
// API renders) plus an optional layout cell for grid dashboards.
//
// Widgets are built once by the builder functions in this package and never
// mutated afterwards. Builders copy any caller-supplied maps and slices, so
// reusing an options value across multiple builds is safe.
type Widget struct {
	Definition map[string]any `json:"definition"`
	Layout     *Cell          `json:"layout,omitempty"`
}

// WireType returns the definition's `type` field, or "" if absent.
func (w Widget) WireType() string {
	t, _ := w.Definition["type"].(string)
	return t
}

// withCell returns a copy of w annotated with the given layout cell.
// The definition map is shared: definitions are immutable after construction.
func (w Widget) withCell(c Cell) Widget {
	return Widget{Definition: w.Definition, Layout: &c}
}

// newDefinition starts a definition map for the given kind with its wire type
// already set. Every builder funnels through here so the type field can never
// be missing or wrong.
func newDefinition(kind Kind) map[string]any {
	return map[string]any{"type": kind.WireType()}
}

// setTitle applies the shared title fields to a definition. Decoration
// widgets (note, image, iframe) have no title and skip this.
func setTitle(def map[string]any, title, size, align string) {
	def["title"] = title
	def["title_size"] = orDefault(size, "title_size")
	def["title_align"] = orDefault(align, "title_align")
}
