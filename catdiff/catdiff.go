// Package catdiff: set/unset row construction.

package catdiff

import (
	"fmt"

	"github.com/statkit/margins/deriv"
	"github.com/statkit/margins/design"
)

// Build produces one set/unset Pair per categorical indicator term present
// in the registry's effective subset. Factors follow first-appearance order
// in the design string; within a factor, levels follow design order.
//
// Build never fails on a valid registry; the only error is ErrNilRegistry.
// A design with no categorical indicator (or none requested) yields an
// empty slice.
func Build(reg *design.Registry, opts ...Option) ([]Pair, error) {
	if reg == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilRegistry)
	}
	o := gatherOptions(opts)

	var pairs []Pair
	for _, factor := range reg.Factors() {
		indicators := reg.FactorIndicators(factor)
		for _, ind := range indicators {
			if !reg.InSubset(ind.Position) {
				continue
			}
			set, unset := rowsFor(reg, ind, indicators)
			if o.shortened {
				shorten(set, unset)
			}
			pairs = append(pairs, Pair{
				Position: ind.Position,
				Factor:   ind.Factor,
				Level:    ind.Level,
				Set:      set,
				Unset:    unset,
			})
		}
	}

	return pairs, nil
}

// rowsFor evaluates every model term under the two indicator assignments.
// Terms untouched by the factor stay Unresolved in both rows.
func rowsFor(reg *design.Registry, ind design.Term, siblings []design.Term) (set, unset []deriv.Entry) {
	n := reg.NumTerms()
	set = make([]deriv.Entry, n)
	unset = make([]deriv.Entry, n)

	sibling := make(map[int]bool, len(siblings))
	for _, s := range siblings {
		if s.Position != ind.Position {
			sibling[s.Position] = true
		}
	}

	for i, t := range reg.Terms() {
		switch {
		case t.Position == ind.Position:
			set[i] = deriv.OneEntry()
			unset[i] = deriv.ZeroEntry()
		case sibling[t.Position]:
			set[i] = deriv.ZeroEntry()
			unset[i] = deriv.ZeroEntry()
		case t.Kind == design.Interaction:
			set[i], unset[i] = interactionRows(t.Factors, ind.Position, sibling)
		}
		// Everything else keeps the zero-value Unresolved entry.
	}

	return set, unset
}

// interactionRows evaluates one interaction term under both assignments.
// The indicator value is folded into the product: a factor at value 0
// zeroes the whole term, the indicator at value 1 drops out of the product.
func interactionRows(factors []int, indPos int, sibling map[int]bool) (set, unset deriv.Entry) {
	containsInd := false
	containsSibling := false
	rest := make([]int, 0, len(factors))
	for _, f := range factors {
		switch {
		case f == indPos:
			containsInd = true
		case sibling[f]:
			containsSibling = true
		default:
			rest = append(rest, f)
		}
	}
	if !containsInd && !containsSibling {
		// The factor never touches this term: unchanged between rows.
		return deriv.Entry{}, deriv.Entry{}
	}
	// Unset: every level of the factor is 0, so the product vanishes.
	unset = deriv.ZeroEntry()
	if containsSibling {
		// A sibling level at 0 zeroes the set row too.
		return deriv.ZeroEntry(), unset
	}

	return deriv.Prod(rest...), unset
}

// shorten nulls positions whose entries are structurally identical across
// the two rows; only positions that actually move survive.
func shorten(set, unset []deriv.Entry) {
	for i := range set {
		if set[i].Equal(unset[i]) {
			set[i] = deriv.Entry{}
			unset[i] = deriv.Entry{}
		}
	}
}
