package dashboard

import "testing"

func TestKindWireTypes(t *testing.T) {
	tests := []struct {
		kind Kind
		wire string
	}{
		{KindTimeseries, "timeseries"},
		{KindQueryValue, "query_value"},
		{KindToplist, "toplist"},
		{KindHeatmap, "heatmap"},
		{KindChange, "change"},
		{KindDistribution, "distribution"},
		{KindTable, "table"},
		{KindScatterplot, "scatterplot"},
		{KindTreemap, "treemap"},
		{KindBarChart, "bar_chart"},
		{KindWildcard, "wildcard"},
		{KindPieChart, "sunburst"},
		{KindGeomap, "geomap"},
		{KindHostmap, "hostmap"},
		{KindServiceMap, "service_map"},
		{KindServiceSummary, "trace_service"},
		{KindTopologyMap, "topology_map"},
		{KindAlertGraph, "alert_graph"},
		{KindAlertValue, "alert_value"},
		{KindCheckStatus, "check_status"},
		{KindMonitorSummary, "monitor_summary"},
		{KindSLO, "slo"},
		{KindRunWorkflow, "run_workflow"},
		{KindEventStream, "event_stream"},
		{KindEventTimeline, "event_timeline"},
		{KindLogStream, "log_stream"},
		{KindList, "list_stream"},
		{KindNote, "note"},
		{KindFreeText, "free_text"},
		{KindImage, "image"},
		{KindIFrame, "iframe"},
		{KindGroup, "group"},
		{KindPowerpack, "powerpack"},
		{KindSplitGraph, "split_graph"},
		{KindFunnel, "funnel"},
		{KindSankey, "sankey"},
		{KindRetention, "retention"},
		{KindProfilingFlameGraph, "profiling_flame_graph"},
	}

	if len(tests) != len(Kinds()) {
		t.Fatalf("table covers %d kinds, Kinds() has %d", len(tests), len(Kinds()))
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.WireType(); got != tt.wire {
				t.Errorf("WireType() = %q, want %q", got, tt.wire)
			}
			if !tt.kind.Valid() {
				t.Errorf("Valid() = false for known kind")
			}
		})
	}
}

func TestKindUnknown(t *testing.T) {
	k := Kind("gauge")
	if k.Valid() {
		t.Error("Valid() = true for unknown kind")
	}
	if k.WireType() != "" {
		t.Errorf("WireType() = %q, want empty", k.WireType())
	}
}

func TestKinds_CoversWireTable(t *testing.T) {
	seen := map[Kind]bool{}
	for _, k := range Kinds() {
		if seen[k] {
			t.Errorf("kind %q listed twice", k)
		}
		seen[k] = true
		if _, ok := wireTypes[k]; !ok {
			t.Errorf("kind %q missing from wire table", k)
		}
	}
	if len(seen) != len(wireTypes) {
		t.Errorf("Kinds() has %d entries, wire table %d", len(seen), len(wireTypes))
	}
}

func TestWidgetWireType(t *testing.T) {
	w := Timeseries("CPU", RawQuery("avg:system.cpu.user{*}"), nil)
	if got := w.WireType(); got != "timeseries" {
		t.Errorf("WireType() = %q, want timeseries", got)
	}

	empty := Widget{Definition: map[string]any{}}
	if got := empty.WireType(); got != "" {
		t.Errorf("WireType() on empty definition = %q, want empty", got)
	}
}
