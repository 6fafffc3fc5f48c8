// Package design: core term types shared by the parser and the Registry.

package design

import "strings"

// Kind classifies a model term.
type Kind uint8

const (
	// Plain marks a term that is a single raw regressor.
	Plain Kind = iota
	// Indicator marks a 0/1 dummy for one level of a categorical factor.
	Indicator
	// Interaction marks a product of two or more earlier terms.
	Interaction
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Indicator:
		return "indicator"
	case Interaction:
		return "interaction"
	default:
		return "unknown"
	}
}

// Term is one immutable model term parsed from a design specification.
//
// Position is the 1-based index of the term's coefficient; positions form a
// contiguous range 1..n across the whole design. A reference term (the
// omitted level of a categorical factor) carries Position 0: it owns no
// coefficient and can never be reported.
type Term struct {
	// Identifier is the canonical external name of the term: the token text
	// for plain terms, "factor.level" for indicator terms, and the
	// "*"-joined constituent identifiers for interactions.
	Identifier string

	// Position is the 1-based coefficient index, or 0 for reference terms.
	Position int

	// Kind classifies the term.
	Kind Kind

	// Factor and Level are set for Indicator terms (and reference terms).
	Factor string
	Level  string

	// Factors holds the constituent term positions of an Interaction,
	// in written order. Empty for Plain and Indicator terms.
	Factors []int
}

// IsBasis reports whether the term is eligible for marginal-effect output:
// a plain regressor or a categorical indicator present in the design.
// Interactions and reference terms are never basis terms.
func (t Term) IsBasis() bool {
	return t.Position > 0 && t.Kind != Interaction
}

// Ident is one identifier produced by the tokenizer, together with its
// quoting flag. Quoting decides the comparison rule: a quoted identifier
// matches verbatim, an unquoted one matches case-insensitively.
type Ident struct {
	Text   string
	Quoted bool
}

// Matches reports whether the identifier refers to name under the
// quote-sensitive comparison rule.
func (id Ident) Matches(name string) bool {
	if id.Quoted {
		return id.Text == name
	}

	return strings.EqualFold(id.Text, name)
}
