package dashboard

import (
	"reflect"
	"testing"
)

func TestBuilderDeterminism(t *testing.T) {
	build := func() []Widget {
		return []Widget{
			Timeseries("Error rate", FormulaQuery{
				Queries: []NamedQuery{
					{Name: "errors", Query: "sum:errors{*}.as_count()"},
					{Name: "requests", Query: "sum:requests{*}.as_count()"},
				},
				Formulas: []Formula{{Expression: "(errors / requests) * 100", Alias: "error %"}},
			}, nil),
			Powerpack("pk-123", &PowerpackOptions{TemplateVariables: map[string]string{
				"service": "web",
				"env":     "prod",
				"az":      "us-east-1a",
			}}),
		}
	}

	// Building twice from identical inputs must yield structurally identical
	// widgets; nothing may leak map iteration order into the output.
	if a, b := build(), build(); !reflect.DeepEqual(a, b) {
		t.Errorf("repeated builds differ:\nfirst:  %#v\nsecond: %#v", a, b)
	}
}

func TestTimeseriesDefaults(t *testing.T) {
	w := Timeseries("CPU", RawQuery("avg:system.cpu.user{*}"), nil)
	def := w.Definition

	if def["type"] != "timeseries" {
		t.Errorf("type = %v", def["type"])
	}
	if def["title"] != "CPU" {
		t.Errorf("title = %v", def["title"])
	}
	if def["title_size"] != "16" || def["title_align"] != "left" {
		t.Errorf("title defaults = %v/%v, want 16/left", def["title_size"], def["title_align"])
	}
	if def["show_legend"] != false {
		t.Errorf("show_legend = %v, want false", def["show_legend"])
	}

	req := def["requests"].([]map[string]any)[0]
	if req["display_type"] != "line" {
		t.Errorf("display_type = %v, want line", req["display_type"])
	}
	style := req["style"].(map[string]any)
	if style["palette"] != "dog_classic" {
		t.Errorf("palette = %v, want dog_classic", style["palette"])
	}
}

func TestTimeseriesMarkers(t *testing.T) {
	w := Timeseries("Latency", RawQuery("avg:latency{*}"), &TimeseriesOptions{
		Markers: []Marker{
			{Value: "y = 500", DisplayType: "error dashed", Label: "SLA"},
			{Value: "y = 250", DisplayType: "warning bold"},
		},
	})

	markers := w.Definition["markers"].([]map[string]any)
	if len(markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(markers))
	}
	if markers[0]["label"] != "SLA" {
		t.Errorf("marker label = %v", markers[0]["label"])
	}
	if _, hasLabel := markers[1]["label"]; hasLabel {
		t.Error("empty marker label should be omitted")
	}
}

func TestQueryValueDefaults(t *testing.T) {
	w := QueryValue("Errors", RawQuery("sum:errors{*}.as_count()"), nil)
	def := w.Definition

	if def["precision"] != 2 {
		t.Errorf("precision = %v, want 2", def["precision"])
	}
	if def["autoscale"] != true {
		t.Errorf("autoscale = %v, want true", def["autoscale"])
	}
	if _, ok := def["custom_unit"]; ok {
		t.Error("custom_unit should be omitted when empty")
	}

	req := def["requests"].([]map[string]any)[0]
	if req["response_format"] != "scalar" {
		t.Errorf("response_format = %v, want scalar", req["response_format"])
	}
}

func TestQueryValueOverrides(t *testing.T) {
	precision := 0
	autoscale := false
	w := QueryValue("Count", RawQuery("sum:x{*}"), &QueryValueOptions{
		Precision:  &precision,
		Autoscale:  &autoscale,
		CustomUnit: "req/s",
	})
	def := w.Definition

	if def["precision"] != 0 {
		t.Errorf("precision = %v, want 0", def["precision"])
	}
	if def["autoscale"] != false {
		t.Errorf("autoscale = %v, want false", def["autoscale"])
	}
	if def["custom_unit"] != "req/s" {
		t.Errorf("custom_unit = %v", def["custom_unit"])
	}
}

func TestTableColumnNumbering(t *testing.T) {
	w := Table("Services", []TableColumn{
		{Query: "avg:hits{*} by {service}", Alias: "Hits"},
		{Query: "avg:errors{*} by {service}", Aggregator: "sum"},
	}, nil)

	req := w.Definition["requests"].([]map[string]any)[0]
	queries := req["queries"].([]map[string]any)
	formulas := req["formulas"].([]map[string]any)

	if queries[0]["name"] != "query1" || queries[1]["name"] != "query2" {
		t.Errorf("query names = %v, %v; want query1, query2", queries[0]["name"], queries[1]["name"])
	}
	if queries[0]["aggregator"] != "avg" {
		t.Errorf("default aggregator = %v, want avg", queries[0]["aggregator"])
	}
	if queries[1]["aggregator"] != "sum" {
		t.Errorf("aggregator override = %v, want sum", queries[1]["aggregator"])
	}
	if formulas[0]["alias"] != "Hits" {
		t.Errorf("alias = %v, want Hits", formulas[0]["alias"])
	}
	if _, ok := formulas[1]["alias"]; ok {
		t.Error("empty alias should be omitted")
	}
	if req["response_format"] != "scalar" {
		t.Errorf("response_format = %v, want scalar", req["response_format"])
	}
}

func TestColumnsHelper(t *testing.T) {
	cols := Columns("q1", "q2", "q3")
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}
	if cols[1].Query != "q2" || cols[1].Alias != "" {
		t.Errorf("column = %+v", cols[1])
	}
}

func TestScatterplotAxes(t *testing.T) {
	w := Scatterplot("CPU vs Mem", "avg:cpu{*} by {host}", "avg:mem{*} by {host}", &ScatterplotOptions{
		YAggregator:   "max",
		ColorByGroups: []string{"env"},
	})

	reqs := w.Definition["requests"].(map[string]any)
	x := reqs["x"].(map[string]any)
	y := reqs["y"].(map[string]any)

	if x["q"] != "avg:cpu{*} by {host}" {
		t.Errorf("x query = %v", x["q"])
	}
	if x["aggregator"] != "avg" {
		t.Errorf("x aggregator = %v, want default avg", x["aggregator"])
	}
	if y["aggregator"] != "max" {
		t.Errorf("y aggregator = %v, want max", y["aggregator"])
	}
	groups := w.Definition["color_by_groups"].([]string)
	if len(groups) != 1 || groups[0] != "env" {
		t.Errorf("color_by_groups = %v", groups)
	}
}

func TestChangeDefaults(t *testing.T) {
	w := Change("Traffic", "sum:requests{*} by {service}", nil)
	req := w.Definition["requests"].([]map[string]any)[0]

	if req["q"] != "sum:requests{*} by {service}" {
		t.Errorf("q = %v", req["q"])
	}
	if req["compare_to"] != "hour_before" {
		t.Errorf("compare_to = %v, want hour_before", req["compare_to"])
	}
	if req["increase_good"] != true {
		t.Errorf("increase_good = %v, want true", req["increase_good"])
	}
	if req["order_by"] != "change" || req["order_dir"] != "desc" {
		t.Errorf("ordering = %v/%v, want change/desc", req["order_by"], req["order_dir"])
	}
	if req["change_type"] != "absolute" {
		t.Errorf("change_type = %v, want absolute", req["change_type"])
	}
	if _, ok := req["show_present"]; ok {
		t.Error("show_present should be omitted by default")
	}
}

func TestPieChartWireType(t *testing.T) {
	w := PieChart("Breakdown", RawQuery("sum:hits{*} by {service}"), nil)
	if w.Definition["type"] != "sunburst" {
		t.Errorf("type = %v, want sunburst", w.Definition["type"])
	}
}

func TestServiceSummaryDefaults(t *testing.T) {
	w := ServiceSummary("API", "web-api", "prod", nil)
	def := w.Definition

	if def["type"] != "trace_service" {
		t.Errorf("type = %v, want trace_service", def["type"])
	}
	if def["span_name"] != "web-api" {
		t.Errorf("span_name = %v, want service name", def["span_name"])
	}
	if def["env"] != "prod" {
		t.Errorf("env = %v", def["env"])
	}
	for _, key := range []string{"show_hits", "show_errors", "show_latency"} {
		if def[key] != true {
			t.Errorf("%s = %v, want true", key, def[key])
		}
	}
	if def["size_format"] != "10-norm" {
		t.Errorf("size_format = %v, want 10-norm", def["size_format"])
	}
	if def["display_format"] != "one_column" {
		t.Errorf("display_format = %v, want one_column", def["display_format"])
	}
}

func TestServiceMapEnvFilter(t *testing.T) {
	w := ServiceMap("Map", "web-api", &ServiceMapOptions{Env: "prod", Filters: []string{"region:us-east-1"}})
	filters := w.Definition["filters"].([]string)

	if len(filters) != 2 || filters[0] != "env:prod" {
		t.Errorf("filters = %v, want env filter first", filters)
	}
}

func TestHostmapOmitsAbsentGroupAndScope(t *testing.T) {
	w := Hostmap("Fleet", "avg:system.cpu.user{*} by {host}", nil)
	def := w.Definition

	if _, ok := def["group"]; ok {
		t.Error("group should be omitted when absent")
	}
	if _, ok := def["scope"]; ok {
		t.Error("scope should be omitted when absent")
	}
	if def["node_type"] != "host" {
		t.Errorf("node_type = %v, want host", def["node_type"])
	}
	reqs := def["requests"].(map[string]any)
	if _, ok := reqs["size"]; ok {
		t.Error("size request should be omitted without a size query")
	}
}

func TestListDataSource(t *testing.T) {
	w := List("Issues", "status:error", "issue", nil)
	def := w.Definition

	if def["type"] != "list_stream" {
		t.Errorf("type = %v, want list_stream", def["type"])
	}
	req := def["requests"].([]map[string]any)[0]
	query := req["query"].(map[string]any)
	if query["data_source"] != "issue_stream" {
		t.Errorf("data_source = %v, want issue_stream", query["data_source"])
	}
	if req["response_format"] != "event_list" {
		t.Errorf("response_format = %v, want event_list", req["response_format"])
	}
}

func TestFunnelSteps(t *testing.T) {
	w := Funnel("Signup", []string{"@view.name:landing", "@view.name:signup", "@action.name:submit"}, nil)
	reqs := w.Definition["requests"].([]map[string]any)

	if len(reqs) != 3 {
		t.Fatalf("got %d steps, want 3", len(reqs))
	}
	for i, req := range reqs {
		if req["request_type"] != "funnel" {
			t.Errorf("step %d request_type = %v", i, req["request_type"])
		}
		q := req["query"].(map[string]any)
		if q["data_source"] != "rum" {
			t.Errorf("step %d data_source = %v, want rum", i, q["data_source"])
		}
	}
}

func TestNoteDefaultsAndExtra(t *testing.T) {
	w := Note("## Deploys", &NoteOptions{
		ShowTick: true,
		Extra: map[string]any{
			"vertical_align": "top",
			"content":        "overridden", // recognized keys must win
		},
	})
	def := w.Definition

	if def["content"] != "## Deploys" {
		t.Errorf("content = %v; extra must not override builder keys", def["content"])
	}
	if def["background_color"] != "white" {
		t.Errorf("background_color = %v, want white", def["background_color"])
	}
	if def["vertical_align"] != "top" {
		t.Errorf("extra key not passed through: %v", def["vertical_align"])
	}
	if def["tick_pos"] != "50%" || def["tick_edge"] != "left" {
		t.Errorf("tick defaults = %v/%v", def["tick_pos"], def["tick_edge"])
	}
}

func TestNoteNoTick(t *testing.T) {
	w := Note("text", nil)
	def := w.Definition
	if def["show_tick"] != false {
		t.Errorf("show_tick = %v, want false", def["show_tick"])
	}
	if _, ok := def["tick_pos"]; ok {
		t.Error("tick_pos should be omitted without show_tick")
	}
}

func TestGroupDefaults(t *testing.T) {
	child := Note("inner", nil)
	w := Group("Section", []Widget{child}, nil)
	def := w.Definition

	if def["layout_type"] != "ordered" {
		t.Errorf("layout_type = %v, want ordered", def["layout_type"])
	}
	if def["show_title"] != true {
		t.Errorf("show_title = %v, want true", def["show_title"])
	}
	children := def["widgets"].([]Widget)
	if len(children) != 1 {
		t.Fatalf("got %d children, want 1", len(children))
	}
}

func TestPowerpackSortedVariables(t *testing.T) {
	w := Powerpack("pk-123", &PowerpackOptions{
		TemplateVariables: map[string]string{"zone": "us", "app": "web"},
	})

	vars := w.Definition["template_variables"].(map[string]any)["controlled_externally"].([]map[string]any)
	if len(vars) != 2 {
		t.Fatalf("got %d variables, want 2", len(vars))
	}
	if vars[0]["name"] != "app" || vars[1]["name"] != "zone" {
		t.Errorf("variables not sorted by name: %v", vars)
	}
}

func TestSplitGraphConfig(t *testing.T) {
	w := SplitGraph("Per host", "avg:system.cpu.user{*}", "host", nil)
	def := w.Definition

	source := def["source_widget_definition"].(map[string]any)
	if source["type"] != "timeseries" {
		t.Errorf("source type = %v, want timeseries", source["type"])
	}

	split := def["split_config"].(map[string]any)
	dims := split["split_dimensions"].([]map[string]any)
	if dims[0]["one_graph_per"] != "host" {
		t.Errorf("one_graph_per = %v, want host", dims[0]["one_graph_per"])
	}
	limit := split["limit"].(map[string]any)
	if limit["count"] != 12 || limit["order"] != "desc" {
		t.Errorf("limit = %v, want 12/desc", limit)
	}
	if def["size"] != "md" {
		t.Errorf("size = %v, want md", def["size"])
	}
}

func TestSLODefaults(t *testing.T) {
	w := SLO("Availability", "slo-abc", nil)
	def := w.Definition

	windows := def["time_windows"].([]string)
	if len(windows) != 1 || windows[0] != "7d" {
		t.Errorf("time_windows = %v, want [7d]", windows)
	}
	if def["view_type"] != "detail" {
		t.Errorf("view_type = %v, want detail", def["view_type"])
	}
	if def["show_error_budget"] != true {
		t.Errorf("show_error_budget = %v, want true", def["show_error_budget"])
	}
}

func TestRunWorkflowSortedInputs(t *testing.T) {
	w := RunWorkflow("Restart", "wf-1", &RunWorkflowOptions{
		Inputs: map[string]string{"service": "api", "cluster": "prod"},
	})

	inputs := w.Definition["inputs"].([]map[string]any)
	if inputs[0]["name"] != "cluster" || inputs[1]["name"] != "service" {
		t.Errorf("inputs not sorted by name: %v", inputs)
	}
}

func TestWildcardCopiesSpecification(t *testing.T) {
	spec := map[string]any{"mark": "bar", "encoding": map[string]any{"x": "time"}}
	w := Wildcard("Custom", spec, nil)

	spec["mark"] = "line"
	spec["encoding"].(map[string]any)["x"] = "mutated"

	got := w.Definition["specification"].(map[string]any)
	if got["mark"] != "bar" {
		t.Error("widget aliases the caller's specification map")
	}
	if got["encoding"].(map[string]any)["x"] != "time" {
		t.Error("nested specification map not deep-copied")
	}
}

func TestBuilderInputIsolation(t *testing.T) {
	groups := []string{"env"}
	w := Scatterplot("iso", "x", "y", &ScatterplotOptions{ColorByGroups: groups})

	groups[0] = "mutated"
	got := w.Definition["color_by_groups"].([]string)
	if got[0] != "env" {
		t.Error("widget aliases the caller's slice")
	}
}
