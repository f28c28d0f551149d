// Package dataset provides the in-memory tabular data engine behind the
// dashboard. It has no UI or transport dependencies and can be driven by
// web handlers, CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around a small set of concepts:
//
//   - Table: the canonical snapshot of one uploaded dataset (header + rows).
//     Immutable after creation; a new upload replaces the whole value.
//   - Metrics: summary statistics derived from well-known column names.
//   - ViewState: every interactive directive (filter text, date range,
//     column selection, sort, page) bundled into one immutable value.
//   - BuildView: the pure pipeline that recomputes the derived view from a
//     Table and a ViewState on every directive change. Stage order is
//     fixed: filter, then sort, then paginate.
//   - Selection/Project: chart axis selection and the series projection
//     that feeds the chart renderer.
//   - Store: the single snapshot holder that owns the current Table, the
//     baseline and live Metrics, and the applied chart Selection.
//
// # Degradation policy
//
// Nothing in this package is fatal. Unparsable numbers coerce to zero,
// unparsable dates pass filters open, missing columns yield zero metrics or
// empty series, and an out-of-range page renders empty. The worst
// observable outcome is an empty or zeroed view, never a crash.
package dataset
