// Package margins is a pure Go engine for marginal effects: it parses the
// symbolic design specification of a fitted statistical model and builds
// the derivative and set/unset structures that downstream delta-method
// aggregates consume.
//
// 🚀 What is margins?
//
//	A deterministic, dependency-light library that brings together:
//		• Design parsing: plain terms, categorical indicators, interactions
//		• A term Registry with quote-aware identifier resolution
//		• Symbolic differentiation of product terms (the derivative matrix)
//		• Discrete set/unset rows for categorical indicators
//		• A single Compute entry-point producing the aggregate-ready payload
//
// ✨ Why choose margins?
//
//   - Fail-fast validation – every design error surfaces before matrix work
//   - Deterministic output – identical input yields identical structures
//   - Pure Go – no cgo, no I/O, no shared mutable state across invocations
//   - Explicit semantics – reference levels are declared, never inferred
//
// Under the hood, everything is organized under four subpackages:
//
//	design/  — tokenizer, design parser, term Registry
//	deriv/   — symbolic entry algebra & derivative-matrix builder
//	catdiff/ — categorical set/unset row builder
//	effects/ — regression-family tag & end-to-end Compute pipeline
//
// Quick example:
//
//	rep, err := effects.Compute(effects.Logistic, "1,2,3,2*3", 4,
//	    effects.WithVariables("2,3"))
//
// Start with effects.Compute for the full pipeline, or use design.Parse
// plus the builders directly for finer control.
//
//	go get github.com/statkit/margins
package margins
