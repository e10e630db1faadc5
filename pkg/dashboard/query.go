package dashboard

// QuerySpec is the query input accepted by formula-capable widget builders
// (timeseries, query value, toplist, treemap, bar chart, pie chart, geomap).
//
// It is a closed union with exactly two variants:
//   - [RawQuery]: a bare query string, wrapped in a single auto-named query
//     with an identity formula.
//   - [FormulaQuery]: several named queries combined through formula
//     expressions, e.g. "(errors / requests) * 100".
//
// The variant is decided once, by the type the caller constructs; builders
// never re-inspect the shape.
type QuerySpec interface {
	// requests renders the spec as the wire `requests` array for the given
	// response format ("timeseries" or "scalar").
	requests(responseFormat string) []map[string]any
}

// RawQuery is a single metric query string, e.g. "avg:system.cpu.user{*}".
type RawQuery string

// NamedQuery is one named member of a [FormulaQuery]. Formula expressions
// reference queries by name.
type NamedQuery struct {
	Name       string // identifier referenced by formulas, e.g. "errors"
	Query      string // metric query string
	DataSource string // defaults to "metrics"
	Aggregator string // defaults to the shared aggregator default ("avg")
}

// Formula is a derived expression over the named queries of a [FormulaQuery].
type Formula struct {
	Expression string // e.g. "(errors / requests) * 100"
	Alias      string // optional display alias
}

// FormulaQuery combines named queries through formula expressions.
// If Formulas is empty, one identity formula per query is emitted, in query
// declaration order.
type FormulaQuery struct {
	Queries  []NamedQuery
	Formulas []Formula
}

func (q RawQuery) requests(responseFormat string) []map[string]any {
	return FormulaQuery{
		Queries: []NamedQuery{{Name: "query1", Query: string(q)}},
	}.requests(responseFormat)
}

func (q FormulaQuery) requests(responseFormat string) []map[string]any {
	queries := make([]map[string]any, len(q.Queries))
	for i, nq := range q.Queries {
		queries[i] = map[string]any{
			"name":        nq.Name,
			"query":       nq.Query,
			"data_source": orDefault(nq.DataSource, "data_source"),
			"aggregator":  orDefault(nq.Aggregator, "aggregator"),
		}
	}

	formulas := make([]map[string]any, 0, max(len(q.Formulas), len(q.Queries)))
	if len(q.Formulas) > 0 {
		for _, f := range q.Formulas {
			m := map[string]any{"formula": f.Expression}
			if f.Alias != "" {
				m["alias"] = f.Alias
			}
			formulas = append(formulas, m)
		}
	} else {
		for _, nq := range q.Queries {
			formulas = append(formulas, map[string]any{"formula": nq.Name})
		}
	}

	return []map[string]any{{
		"formulas":        formulas,
		"queries":         queries,
		"response_format": responseFormat,
	}}
}

// rawRequest renders a legacy q-style request, used by widget kinds that
// predate the formulas-and-functions schema (heatmap, change, distribution,
// hostmap, split graph sources).
func rawRequest(query string) map[string]any {
	return map[string]any{"q": query}
}
