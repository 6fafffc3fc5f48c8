// Package effects ties the design parser and the two builders into the
// exact data contract the external numeric aggregates consume.
//
// One call to Compute runs the whole pipeline for one fitted model:
//
//	design string ─► design.Parse ─► Registry
//	                                   ├─► deriv.Build   (continuous path)
//	                                   └─► catdiff.Build (discrete path)
//	                                         │
//	                                         ▼
//	                                      Report
//
// The Report carries, already serialized:
//   - zero-based requested basis indices, caller order
//   - the rendered derivative matrix, or nil when the design has no
//     interaction (the aggregate's identity fast path)
//   - zero-based categorical-indicator indices present in the design
//   - sentinel-padded set/unset rows, one pair per reported indicator
//   - the label per reported basis position, for result-column naming
//   - the reference identifiers dropped from the request, so the caller
//     can warn the end user about the omission
//
// Model selects the regression family (linear, logistic, multinomial,
// hazards) and maps to the name of the downstream aggregate routine; the
// matrices themselves are family-independent.
//
// All failures surface before any matrix work begins and wrap the design
// package sentinels, so callers branch with errors.Is exactly as they would
// against design.Parse itself.
package effects
