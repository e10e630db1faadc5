// Package dashboard constructs Datadog dashboard documents.
//
// The package has three layers, used in sequence:
//
//   - Widget builders: one pure constructor per widget kind (Timeseries,
//     QueryValue, Note, ...) producing an immutable [Widget] whose
//     definition carries the kind's canonical wire type.
//   - Layout engine: [Grid] positions rows of widgets on the 12-column
//     grid; [Ordered] flattens them for auto-flowing dashboards.
//   - Assembler: [Assemble] merges title, metadata and positioned widgets
//     into a [Dashboard] matching the v1 wire schema.
//
// Everything here is synchronous, allocation-only and safe for concurrent
// use; there is no I/O and no shared state. Pushing and fetching documents
// is the job of the datadog package.
//
// # Example
//
//	cpu := dashboard.Timeseries("CPU", dashboard.RawQuery("avg:system.cpu.user{*}"), nil)
//	mem := dashboard.Timeseries("Memory", dashboard.RawQuery("avg:system.mem.used{*}"), nil)
//	row, _ := dashboard.NewRow(0, 3, cpu, mem)
//	doc, _ := dashboard.Assemble("Host Overview", dashboard.LayoutGrid,
//	    dashboard.Grid(row), nil)
package dashboard
