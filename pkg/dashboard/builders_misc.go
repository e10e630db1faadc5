package dashboard

// Decoration and organization builders.
//
// Decoration widgets carry content instead of a title and accept an Extra
// map whose keys are forwarded into the definition untouched. These are the
// only kinds with free-form pass-through: their wire schemas tolerate
// arbitrary presentation keys, while the structured kinds would produce
// invalid documents. Extra never overrides a key the builder itself sets.

// NoteOptions configures a note widget.
type NoteOptions struct {
	BackgroundColor string // default "white"
	FontSize        string // default "14"
	TextAlign       string // default "left"
	ShowTick        bool   // draw a pointer tick towards a neighbor widget
	TickPos         string // tick position, e.g. "50%"; only with ShowTick
	TickEdge        string // left, right, top, bottom; only with ShowTick
	Extra           map[string]any
}

// Note builds a markdown note widget.
func Note(content string, opts *NoteOptions) Widget {
	o := NoteOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindNote)
	applyExtra(def, o.Extra)
	def["content"] = content
	def["background_color"] = orDefaultLit(o.BackgroundColor, "white")
	def["font_size"] = orDefault(o.FontSize, "font_size")
	def["text_align"] = orDefault(o.TextAlign, "text_align")
	def["show_tick"] = o.ShowTick
	if o.ShowTick {
		def["tick_pos"] = orDefaultLit(o.TickPos, "50%")
		def["tick_edge"] = orDefaultLit(o.TickEdge, "left")
	}
	return Widget{Definition: def}
}

// FreeTextOptions configures a free text widget.
type FreeTextOptions struct {
	Color     string // text color, omitted when empty
	FontSize  string // default "14"
	TextAlign string // default "left"
	Extra     map[string]any
}

// FreeText builds a free text headline widget.
func FreeText(text string, opts *FreeTextOptions) Widget {
	o := FreeTextOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindFreeText)
	applyExtra(def, o.Extra)
	def["text"] = text
	def["font_size"] = orDefault(o.FontSize, "font_size")
	def["text_align"] = orDefault(o.TextAlign, "text_align")
	if o.Color != "" {
		def["color"] = o.Color
	}
	return Widget{Definition: def}
}

// ImageOptions configures an image widget.
type ImageOptions struct {
	Sizing string // cover, contain, fill, ...; default "cover"
	Margin string // small or large, omitted when empty
	Extra  map[string]any
}

// Image builds an image widget for the given URL.
func Image(url string, opts *ImageOptions) Widget {
	o := ImageOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindImage)
	applyExtra(def, o.Extra)
	def["url"] = url
	def["sizing"] = orDefault(o.Sizing, "sizing")
	if o.Margin != "" {
		def["margin"] = o.Margin
	}
	return Widget{Definition: def}
}

// IFrameOptions configures an iframe widget.
type IFrameOptions struct {
	Extra map[string]any
}

// IFrame builds an iframe widget embedding the given URL.
func IFrame(url string, opts *IFrameOptions) Widget {
	o := IFrameOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindIFrame)
	applyExtra(def, o.Extra)
	def["url"] = url
	return Widget{Definition: def}
}

// GroupOptions configures a group widget.
type GroupOptions struct {
	// LayoutType is the group's internal layout mode, a per-group choice
	// that is not inherited from the enclosing document. Default "ordered".
	LayoutType      LayoutType
	BackgroundColor string // omitted when empty
	ShowTitle       *bool  // default true
}

// Group builds a container widget holding an ordered sequence of children.
// The children keep whatever layout cells they already carry; the layout
// engine treats the group itself as an opaque leaf.
func Group(title string, widgets []Widget, opts *GroupOptions) Widget {
	o := GroupOptions{}
	if opts != nil {
		o = *opts
	}

	layout := o.LayoutType
	if layout == "" {
		layout = LayoutType(defaults["layout_type"])
	}

	children := make([]Widget, len(widgets))
	copy(children, widgets)

	def := newDefinition(KindGroup)
	def["title"] = title
	def["layout_type"] = string(layout)
	def["show_title"] = boolOr(o.ShowTitle, true)
	def["widgets"] = children
	if o.BackgroundColor != "" {
		def["background_color"] = o.BackgroundColor
	}
	return Widget{Definition: def}
}

// PowerpackOptions configures a powerpack widget.
type PowerpackOptions struct {
	// TemplateVariables maps powerpack variable names to dashboard values.
	TemplateVariables map[string]string
}

// Powerpack builds a widget embedding a saved powerpack by ID.
func Powerpack(powerpackID string, opts *PowerpackOptions) Widget {
	o := PowerpackOptions{}
	if opts != nil {
		o = *opts
	}

	def := newDefinition(KindPowerpack)
	def["powerpack_id"] = powerpackID
	if len(o.TemplateVariables) > 0 {
		vars := make([]map[string]any, 0, len(o.TemplateVariables))
		for _, name := range sortedKeys(o.TemplateVariables) {
			vars = append(vars, map[string]any{"name": name, "value": o.TemplateVariables[name]})
		}
		def["template_variables"] = map[string]any{"controlled_externally": vars}
	}
	return Widget{Definition: def}
}

// SplitGraphOptions configures a split graph widget.
type SplitGraphOptions struct {
	Limit      *int   // graphs per page; default 12
	Size       string // xs, sm, md or lg; default "md"
	TitleSize  string
	TitleAlign string
}

// SplitGraph builds a widget that repeats a timeseries graph once per value
// of the split dimension (e.g. one graph per host).
func SplitGraph(title, query, splitDimension string, opts *SplitGraphOptions) Widget {
	o := SplitGraphOptions{}
	if opts != nil {
		o = *opts
	}

	limit := 12
	if o.Limit != nil {
		limit = *o.Limit
	}

	source := newDefinition(KindTimeseries)
	source["requests"] = RawQuery(query).requests("timeseries")

	def := newDefinition(KindSplitGraph)
	setTitle(def, title, o.TitleSize, o.TitleAlign)
	def["source_widget_definition"] = source
	def["split_config"] = map[string]any{
		"split_dimensions": []map[string]any{{"one_graph_per": splitDimension}},
		"limit":            map[string]any{"count": limit, "order": "desc"},
	}
	def["size"] = orDefaultLit(o.Size, "md")
	def["has_uniform_y_axes"] = true
	return Widget{Definition: def}
}

// applyExtra copies pass-through keys into a fresh definition. Called before
// the builder writes its own keys so recognized options always win.
func applyExtra(def map[string]any, extra map[string]any) {
	for k, v := range extra {
		def[k] = cloneValue(v)
	}
}
