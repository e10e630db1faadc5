package dashboard

// Event, log, product analytics and profiling builders.

// EventStreamOptions configures an event stream widget.
type EventStreamOptions struct {
	EventSize     string // s (one line) or l (expanded); default "s"
	TagsExecution string // and or or; default "and"
	TitleSize     string
	TitleAlign    string
}

// EventStream builds an event stream widget filtered by query.
func EventStream(title, query string, opts *EventStreamOptions) Widget {
	o := EventStreamOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindEventStream)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["query"] = query
	def["event_size"] = orDefaultLit(o.EventSize, "s")
	def["tags_execution"] = orDefaultLit(o.TagsExecution, "and")
	return Widget{Definition: def}
}

// EventTimelineOptions configures an event timeline widget.
type EventTimelineOptions struct {
	TagsExecution string // and or or; default "and"
	TitleSize     string
	TitleAlign    string
}

// EventTimeline builds an event timeline widget filtered by query.
func EventTimeline(title, query string, opts *EventTimelineOptions) Widget {
	o := EventTimelineOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindEventTimeline)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["query"] = query
	def["tags_execution"] = orDefaultLit(o.TagsExecution, "and")
	return Widget{Definition: def}
}

// LogStreamOptions configures a log stream widget.
type LogStreamOptions struct {
	Columns        []string // log columns to display; passed through verbatim
	Indexes        []string // log indexes to search; passed through verbatim
	MessageDisplay string   // inline, expanded-md or expanded-lg; default "inline"
	TitleSize      string
	TitleAlign     string
}

// LogStream builds a log stream widget filtered by query.
func LogStream(title, query string, opts *LogStreamOptions) Widget {
	o := LogStreamOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindLogStream)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["query"] = query
	def["message_display"] = orDefaultLit(o.MessageDisplay, "inline")
	def["show_date_column"] = true
	def["show_message_column"] = true
	def["sort"] = map[string]any{"column": "time", "order": "desc"}
	if len(o.Columns) > 0 {
		def["columns"] = cloneStrings(o.Columns)
	}
	if len(o.Indexes) > 0 {
		def["indexes"] = cloneStrings(o.Indexes)
	}
	return Widget{Definition: def}
}

// ListOptions configures a list widget.
type ListOptions struct {
	Columns    []string // columns to display; passed through verbatim
	TitleSize  string
	TitleAlign string
}

// List builds a list widget over an event source. eventType names the source
// stream ("issue", "logs", "audit", ...); the wire data source is derived as
// "<eventType>_stream", matching the API's list_stream schema.
func List(title, query, eventType string, opts *ListOptions) Widget {
	o := ListOptions{}
	if opts != nil {
		o = *opts
	}

	req := map[string]any{
		"query": map[string]any{
			"data_source":  eventType + "_stream",
			"query_string": query,
		},
		"response_format": "event_list",
	}
	if len(o.Columns) > 0 {
		req["columns"] = cloneStrings(o.Columns)
	}

	def := newDefinition(KindList)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{req}
	return Widget{Definition: def}
}

// FunnelOptions configures a funnel widget.
type FunnelOptions struct {
	DataSource string // default "rum"
	TitleSize  string
	TitleAlign string
}

// Funnel builds a funnel widget with one step per query, in input order.
// A single-step funnel is simply a one-element slice.
func Funnel(title string, steps []string, opts *FunnelOptions) Widget {
	o := FunnelOptions{}
	if opts != nil {
		o = *opts
	}

	reqs := make([]map[string]any, len(steps))
	for i, step := range steps {
		reqs[i] = map[string]any{
			"request_type": "funnel",
			"query": map[string]any{
				"data_source":  orDefaultLit(o.DataSource, "rum"),
				"query_string": step,
			},
		}
	}

	def := newDefinition(KindFunnel)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = reqs
	return Widget{Definition: def}
}

// SankeyOptions configures a sankey widget.
type SankeyOptions struct {
	DataSource string // default "rum"
	TitleSize  string
	TitleAlign string
}

// Sankey builds a sankey flow widget over an event query.
func Sankey(title, query string, opts *SankeyOptions) Widget {
	o := SankeyOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindSankey)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{{
		"query": map[string]any{
			"data_source":  orDefaultLit(o.DataSource, "rum"),
			"query_string": query,
		},
	}}
	return Widget{Definition: def}
}

// RetentionOptions configures a retention widget.
type RetentionOptions struct {
	DataSource string // default "rum"
	TitleSize  string
	TitleAlign string
}

// Retention builds a retention widget from a start-event query and a
// return-event query.
func Retention(title, startQuery, returnQuery string, opts *RetentionOptions) Widget {
	o := RetentionOptions{}
	if opts != nil {
		o = *opts
	}

	source := orDefaultLit(o.DataSource, "rum")
	def := newDefinition(KindRetention)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{{
		"start_query":  map[string]any{"data_source": source, "query_string": startQuery},
		"return_query": map[string]any{"data_source": source, "query_string": returnQuery},
	}}
	return Widget{Definition: def}
}

// ProfilingFlameGraphOptions configures a profiling flame graph widget.
type ProfilingFlameGraphOptions struct {
	TitleSize  string
	TitleAlign string
}

// ProfilingFlameGraph builds a flame graph widget scoped by a profile query
// (e.g. "runtime:go service:api").
func ProfilingFlameGraph(title, query string, opts *ProfilingFlameGraphOptions) Widget {
	o := ProfilingFlameGraphOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindProfilingFlameGraph)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{{
		"query": map[string]any{
			"data_source":  "profiles",
			"query_string": query,
		},
	}}
	return Widget{Definition: def}
}
