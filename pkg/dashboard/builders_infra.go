package dashboard

// Infrastructure, service and monitoring builders.

// HostmapOptions configures a hostmap widget.
type HostmapOptions struct {
	SizeQuery  string   // optional metric controlling hexagon size
	Group      []string // tag keys to group hosts by; passed through verbatim
	Scope      []string // filter expressions; passed through verbatim
	NodeType   string   // host or container; default "host"
	Palette    string   // default "green_to_orange"
	TitleSize  string
	TitleAlign string
}

// Hostmap builds a hostmap widget from a fill query string. Group and Scope
// are emitted only when present; absent means the key is omitted entirely,
// not sent as an empty list.
func Hostmap(title, query string, opts *HostmapOptions) Widget {
	o := HostmapOptions{}
	if opts != nil {
		o = *opts
	}

	requests := map[string]any{"fill": rawRequest(query)}
	if o.SizeQuery != "" {
		requests["size"] = rawRequest(o.SizeQuery)
	}

	def := newDefinition(KindHostmap)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = requests
	def["node_type"] = orDefaultLit(o.NodeType, "host")
	def["style"] = map[string]any{"palette": orDefaultLit(o.Palette, "green_to_orange")}
	if len(o.Group) > 0 {
		def["group"] = cloneStrings(o.Group)
	}
	if len(o.Scope) > 0 {
		def["scope"] = cloneStrings(o.Scope)
	}
	return Widget{Definition: def}
}

// ServiceMapOptions configures a service map widget.
type ServiceMapOptions struct {
	Env        string   // shorthand for an "env:<value>" filter
	Filters    []string // additional filter expressions
	TitleSize  string
	TitleAlign string
}

// ServiceMap builds a service map widget centered on the given service.
func ServiceMap(title, service string, opts *ServiceMapOptions) Widget {
	o := ServiceMapOptions{}
	if opts != nil {
		o = *opts
	}

	filters := cloneStrings(o.Filters)
	if o.Env != "" {
		filters = append([]string{"env:" + o.Env}, filters...)
	}

	def := newDefinition(KindServiceMap)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["service"] = service
	if len(filters) > 0 {
		def["filters"] = filters
	}
	return Widget{Definition: def}
}

// ServiceSummaryOptions configures a service summary widget.
type ServiceSummaryOptions struct {
	SpanName      string // defaults to the service name
	ShowHits      *bool  // default true
	ShowErrors    *bool  // default true
	ShowLatency   *bool  // default true
	SizeFormat    string // default "10-norm"
	DisplayFormat string // default "one_column"
	TitleSize     string
	TitleAlign    string
}

// ServiceSummary builds an APM service summary widget. Note the wire type:
// the API knows this widget as "trace_service".
func ServiceSummary(title, service, env string, opts *ServiceSummaryOptions) Widget {
	o := ServiceSummaryOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindServiceSummary)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["service"] = service
	def["env"] = env
	def["span_name"] = orDefaultLit(o.SpanName, service)
	def["show_hits"] = boolOr(o.ShowHits, true)
	def["show_errors"] = boolOr(o.ShowErrors, true)
	def["show_latency"] = boolOr(o.ShowLatency, true)
	def["size_format"] = orDefault(o.SizeFormat, "size_format")
	def["display_format"] = orDefaultLit(o.DisplayFormat, "one_column")
	return Widget{Definition: def}
}

// TopologyMapOptions configures a topology map widget.
type TopologyMapOptions struct {
	Filters    []string
	TitleSize  string
	TitleAlign string
}

// TopologyMap builds a topology map widget for the given service.
func TopologyMap(title, service string, opts *TopologyMapOptions) Widget {
	o := TopologyMapOptions{}
	if opts != nil {
		o = *opts
	}

	query := map[string]any{
		"data_source": "service_map",
		"service":     service,
	}
	if len(o.Filters) > 0 {
		query["filters"] = cloneStrings(o.Filters)
	}

	def := newDefinition(KindTopologyMap)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["requests"] = []map[string]any{{
		"request_type": "topology",
		"query":        query,
	}}
	return Widget{Definition: def}
}

// AlertGraphOptions configures an alert graph widget.
type AlertGraphOptions struct {
	VizType    string // timeseries or toplist; default "timeseries"
	TitleSize  string
	TitleAlign string
}

// AlertGraph builds a widget graphing the query behind an existing monitor.
func AlertGraph(title, alertID string, opts *AlertGraphOptions) Widget {
	o := AlertGraphOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindAlertGraph)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["alert_id"] = alertID
	def["viz_type"] = orDefault(o.VizType, "viz_type")
	return Widget{Definition: def}
}

// AlertValueOptions configures an alert value widget.
type AlertValueOptions struct {
	Precision  *int   // default 2
	Unit       string // e.g. "%", omitted when empty
	TextAlign  string // default "left"
	TitleSize  string
	TitleAlign string
}

// AlertValue builds a widget showing the current value of a monitor.
func AlertValue(title, alertID string, opts *AlertValueOptions) Widget {
	o := AlertValueOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindAlertValue)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["alert_id"] = alertID
	def["precision"] = intOrDefault(o.Precision, "precision")
	def["text_align"] = orDefault(o.TextAlign, "text_align")
	if o.Unit != "" {
		def["unit"] = o.Unit
	}
	return Widget{Definition: def}
}

// CheckStatusOptions configures a check status widget.
type CheckStatusOptions struct {
	Grouping   string   // check or cluster; default "cluster"
	GroupBy    []string // passed through verbatim when present
	Tags       []string // passed through verbatim when present
	TitleSize  string
	TitleAlign string
}

// CheckStatus builds a check status widget for the named service check.
func CheckStatus(title, check string, opts *CheckStatusOptions) Widget {
	o := CheckStatusOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindCheckStatus)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["check"] = check
	def["grouping"] = orDefault(o.Grouping, "grouping")
	if len(o.GroupBy) > 0 {
		def["group_by"] = cloneStrings(o.GroupBy)
	}
	if len(o.Tags) > 0 {
		def["tags"] = cloneStrings(o.Tags)
	}
	return Widget{Definition: def}
}

// MonitorSummaryOptions configures a monitor summary widget.
type MonitorSummaryOptions struct {
	SummaryType    string // monitors, groups or combined; default "monitors"
	Sort           string // default "status,asc"
	DisplayFormat  string // default "countsAndList"
	HideZeroCounts *bool  // default true
	TitleSize      string
	TitleAlign     string
}

// MonitorSummary builds a monitor summary widget filtered by query.
func MonitorSummary(title, query string, opts *MonitorSummaryOptions) Widget {
	o := MonitorSummaryOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindMonitorSummary)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["query"] = query
	def["summary_type"] = orDefaultLit(o.SummaryType, "monitors")
	def["sort"] = orDefaultLit(o.Sort, "status,asc")
	def["display_format"] = orDefaultLit(o.DisplayFormat, "countsAndList")
	def["hide_zero_counts"] = boolOr(o.HideZeroCounts, true)
	return Widget{Definition: def}
}

// SLOOptions configures an SLO summary widget.
type SLOOptions struct {
	TimeWindows     []string // default ["7d"]
	ShowErrorBudget *bool    // default true
	ViewMode        string   // overall, component or both; default "overall"
	TitleSize       string
	TitleAlign      string
}

// SLO builds a widget summarizing an existing SLO by ID.
func SLO(title, sloID string, opts *SLOOptions) Widget {
	o := SLOOptions{}
	if opts != nil {
		o = *opts
	}

	windows := cloneStrings(o.TimeWindows)
	if len(windows) == 0 {
		windows = []string{"7d"}
	}

	def := newDefinition(KindSLO)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["slo_id"] = sloID
	def["view_type"] = "detail"
	def["time_windows"] = windows
	def["show_error_budget"] = boolOr(o.ShowErrorBudget, true)
	def["view_mode"] = orDefaultLit(o.ViewMode, "overall")
	return Widget{Definition: def}
}

// RunWorkflowOptions configures a run workflow widget.
type RunWorkflowOptions struct {
	Inputs     map[string]string // workflow input name → dashboard value
	TitleSize  string
	TitleAlign string
}

// RunWorkflow builds a widget that triggers a workflow by ID.
func RunWorkflow(title, workflowID string, opts *RunWorkflowOptions) Widget {
	o := RunWorkflowOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindRunWorkflow)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["workflow_id"] = workflowID
	if len(o.Inputs) > 0 {
		inputs := make([]map[string]any, 0, len(o.Inputs))
		for _, name := range sortedKeys(o.Inputs) {
			inputs = append(inputs, map[string]any{"name": name, "value": o.Inputs[name]})
		}
		def["inputs"] = inputs
	}
	return Widget{Definition: def}
}
