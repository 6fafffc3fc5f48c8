// Package design parses symbolic design specifications — the strings that
// describe how raw regressors combine into the terms of a fitted model —
// and exposes the resulting term algebra through an immutable Registry.
//
// 🚀 What is a design specification?
//
//	A fitted model stores one coefficient per model term. The design
//	specification names those terms, in coefficient order:
//	  • plain terms          — one raw regressor ("1", "age", "\"Income\"")
//	  • indicator terms      — one level of a categorical factor ("i.color.red")
//	  • interaction terms    — products of earlier terms ("2*3", "age*i.color.red")
//
// ✨ Key features:
//   - tokenizer with quote-aware identifier comparison
//     (unquoted → case-insensitive, double-quoted → verbatim)
//   - strict term-count validation against the coefficient vector
//     (ErrDesignMismatch; the design is never truncated or padded)
//   - explicit, caller-declared reference levels for categorical factors
//     (WithReferenceLevel) — nothing is ever inferred
//   - subset selection with reference-term screening (ApplySubset)
//
// ⚙️ Usage:
//
//	reg, err := design.Parse("1,2,i.color.red,2*3", 4,
//	    design.WithReferenceLevel("color", "blue"))
//	if err != nil { ... }
//
//	ids, _ := design.ParseIdents(`2, "Color.Red"`)
//	dropped, err := reg.ApplySubset(ids)
//
// The Registry is constructed once per invocation, mutated exactly once by
// ApplySubset, and safe for concurrent reads afterwards.
//
// See deriv/ and catdiff/ for the builders that consume a Registry.
package design
