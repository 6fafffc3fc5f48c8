// Package design: the term Registry.
//
// A Registry is built once per invocation by Parse, mutated exactly once by
// ApplySubset, and read-only afterwards; concurrent readers need no locking.

package design

import "fmt"

// Registry holds the parsed terms of one design specification together with
// the basis bookkeeping both builders consume.
type Registry struct {
	terms []Term // design order == coefficient order, positions 1..n
	basis []int  // basis positions, ascending (insertion order is ascending)

	refs map[string]Term // canonical identifier -> reference term

	factorOrder []string       // factor display names, first appearance first
	factorIdx   map[string]int // factor grouping key -> index in factorOrder

	subset []int // effective requested basis positions, caller order
}

// NumTerms returns the total number of design terms (the coefficient count).
func (r *Registry) NumTerms() int { return len(r.terms) }

// Terms returns all terms in design order. The slice is a copy.
func (r *Registry) Terms() []Term {
	return append([]Term(nil), r.terms...)
}

// Term returns the term at 1-based position pos.
func (r *Registry) Term(pos int) (Term, bool) {
	if pos < 1 || pos > len(r.terms) {
		return Term{}, false
	}

	return r.terms[pos-1], true
}

// Identifier returns the canonical identifier of the term at pos, or "" when
// pos is out of range.
func (r *Registry) Identifier(pos int) string {
	t, ok := r.Term(pos)
	if !ok {
		return ""
	}

	return t.Identifier
}

// BasisPositions returns every basis-term position in ascending order.
func (r *Registry) BasisPositions() []int {
	return append([]int(nil), r.basis...)
}

// BasisIdentifiers returns every basis-term identifier, sorted by ascending
// position. This is the default reporting order when the caller requests no
// explicit subset.
func (r *Registry) BasisIdentifiers() []string {
	ids := make([]string, len(r.basis))
	for i, pos := range r.basis {
		ids[i] = r.terms[pos-1].Identifier
	}

	return ids
}

// Resolve maps requested identifiers to their basis terms, in request order.
// A quoted identifier matches verbatim, an unquoted one case-insensitively.
// Any identifier that is not a declared basis term fails the whole call with
// ErrUnknownIdentifier.
func (r *Registry) Resolve(ids []Ident) ([]Term, error) {
	out := make([]Term, 0, len(ids))
	for _, id := range ids {
		t, ok := r.basisMatch(id)
		if !ok {
			return nil, fmt.Errorf("Resolve: %q: %w", id.Text, ErrUnknownIdentifier)
		}
		out = append(out, t)
	}

	return out, nil
}

// ApplySubset installs the caller-requested variable subset.
//
// Requested identifiers that name a reference (omitted) level are removed
// from the effective subset and returned in dropped so the caller can warn
// about the omission; processing then continues with the reduced subset.
// Identifiers matching nothing fail with ErrUnknownIdentifier; an effective
// subset with no term left fails with ErrEmptySubset. Duplicates keep their
// first occurrence.
func (r *Registry) ApplySubset(ids []Ident) (dropped []string, err error) {
	subset := make([]int, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.basisMatch(id); ok {
			if !containsInt(subset, t.Position) {
				subset = append(subset, t.Position)
			}

			continue
		}
		if ref, ok := r.referenceMatch(id); ok {
			dropped = append(dropped, ref.Identifier)

			continue
		}

		return nil, fmt.Errorf("ApplySubset: %q: %w", id.Text, ErrUnknownIdentifier)
	}
	if len(subset) == 0 {
		return dropped, fmt.Errorf("ApplySubset: %w", ErrEmptySubset)
	}
	r.subset = subset

	return dropped, nil
}

// Subset returns the effective requested basis positions in caller order
// (ascending position order when no subset was applied).
func (r *Registry) Subset() []int {
	return append([]int(nil), r.subset...)
}

// SubsetIdentifiers returns the identifiers of the effective subset, in
// subset order. These are the labels callers use for result columns.
func (r *Registry) SubsetIdentifiers() []string {
	ids := make([]string, len(r.subset))
	for i, pos := range r.subset {
		ids[i] = r.terms[pos-1].Identifier
	}

	return ids
}

// InSubset reports whether position pos belongs to the effective subset.
func (r *Registry) InSubset(pos int) bool {
	return containsInt(r.subset, pos)
}

// Factors returns the categorical factor names present in the design, in
// first-appearance order. Output ordering of the categorical difference
// builder follows this order.
func (r *Registry) Factors() []string {
	return append([]string(nil), r.factorOrder...)
}

// FactorIndicators returns the indicator terms of one factor in design
// order. Factor names group like unquoted identifiers (case-insensitive).
func (r *Registry) FactorIndicators(factor string) []Term {
	key := factorKey(Ident{Text: factor})
	var out []Term
	for _, t := range r.terms {
		if t.Kind == Indicator && factorKey(Ident{Text: t.Factor}) == key {
			out = append(out, t)
		}
	}

	return out
}

// IndicatorPositions returns the positions of every categorical-indicator
// term in the design, in design order.
func (r *Registry) IndicatorPositions() []int {
	var out []int
	for _, t := range r.terms {
		if t.Kind == Indicator {
			out = append(out, t.Position)
		}
	}

	return out
}

// HasInteractions reports whether the design contains at least one
// interaction term. When it does not, the derivative matrix degenerates to
// the identity case and builders skip construction entirely.
func (r *Registry) HasInteractions() bool {
	for _, t := range r.terms {
		if t.Kind == Interaction {
			return true
		}
	}

	return false
}

// ReferenceTerms returns the declared reference terms keyed by canonical
// identifier. The map is a copy.
func (r *Registry) ReferenceTerms() map[string]Term {
	out := make(map[string]Term, len(r.refs))
	for k, v := range r.refs {
		out[k] = v
	}

	return out
}

// basisMatch finds the basis term a requested identifier refers to.
func (r *Registry) basisMatch(id Ident) (Term, bool) {
	for _, pos := range r.basis {
		if id.Matches(r.terms[pos-1].Identifier) {
			return r.terms[pos-1], true
		}
	}

	return Term{}, false
}

// referenceMatch finds the reference term a requested identifier refers to.
func (r *Registry) referenceMatch(id Ident) (Term, bool) {
	for _, t := range r.refs {
		if id.Matches(t.Identifier) {
			return t, true
		}
	}

	return Term{}, false
}

// containsInt reports whether xs contains x.
func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
