// Package catdiff builds the set/unset coefficient-row pairs used for
// discrete marginal effects of categorical indicators.
//
// 🚀 What is a set/unset pair?
//
//	A categorical indicator is not differentiated; its marginal effect is
//	the discrete difference between the model evaluated with the indicator
//	set to 1 (all sibling levels of the same factor at 0) and with every
//	level of the factor at 0 (the reference configuration). Each evaluation
//	is encoded as one symbolic row over all n model terms:
//	  • the indicator's own position     — One (set) / Zero (unset)
//	  • sibling levels of the factor     — Zero in both rows
//	  • interactions touching the factor — indicator value folded into the
//	    product of the remaining interacting terms
//	  • every other position             — Unresolved (null): it does not
//	    change between the rows, so it carries no information and callers
//	    drop or pad it before serializing
//
// Ordering is deterministic: factors appear in first-appearance order of
// the design string, and levels in design order within a factor. Only
// indicators inside the registry's effective subset produce a pair.
//
// WithShortened(true) additionally nulls entries that are structurally
// identical zeros in both rows, narrowing the rows to the positions that
// actually move; WithShortened(false) (the default) keeps those explicit
// zeros for aggregates that expect full-width rows.
//
// ⚙️ Usage:
//
//	reg, _ := design.Parse("1,i.color.red,i.color.blue,1*i.color.red", 4)
//	pairs, err := catdiff.Build(reg, catdiff.WithShortened(true))
package catdiff
