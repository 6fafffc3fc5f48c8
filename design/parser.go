// Package design: the design-specification parser.
//
// Parse is the single constructor of a Registry. It is pure and
// deterministic: identical input always yields an identical registry, and
// every validation failure is raised before the registry is returned.

package design

import (
	"fmt"
	"strings"
)

// Option configures Parse. Options are applied in order and are idempotent.
type Option func(*options)

// options collects parse-time configuration; fields are unexported so the
// only way in is through WithX constructors.
type options struct {
	refs []refLevel
}

// refLevel is one caller-declared omitted level of a categorical factor.
type refLevel struct {
	factor string
	level  string
}

// WithReferenceLevel declares the omitted (reference) level of a categorical
// factor. Reference detection is never inferred: a factor with no declared
// reference simply has none. The factor must own at least one indicator
// term in the design, otherwise Parse fails with ErrUnknownFactor.
// Factor and level compare case-insensitively, like unquoted identifiers.
func WithReferenceLevel(factor, level string) Option {
	return func(o *options) {
		o.refs = append(o.refs, refLevel{factor: factor, level: level})
	}
}

// Parse tokenizes a design specification and builds the term Registry.
//
// The specification is a comma-separated token list, optionally wrapped in
// one pair of [], {} or (). Token forms:
//
//	age            plain term (bare identifier, possibly quoted)
//	i.color.red    indicator term: level "red" of categorical factor "color"
//	2*3            interaction: product of the terms identified "2" and "3",
//	               each of which must appear earlier in the design
//
// nTerms is the length of the fitted coefficient vector; Parse fails with
// ErrDesignMismatch unless the token count equals it exactly.
//
// Errors: ErrEmptyDesign, ErrDesignMismatch, ErrBadToken,
// ErrDuplicateIdentifier, ErrUnknownFactorRef, ErrDuplicateFactorRef,
// ErrUnknownFactor. All are detected here; builders never see a bad design.
func Parse(spec string, nTerms int, opts ...Option) (*Registry, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	body := stripBrackets(spec)
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("Parse: %w", ErrEmptyDesign)
	}

	tokens, err := splitTop(body, commaSep)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if len(tokens) != nTerms {
		return nil, fmt.Errorf("Parse: %d design terms vs %d coefficients: %w",
			len(tokens), nTerms, ErrDesignMismatch)
	}

	reg := &Registry{
		refs:      make(map[string]Term),
		factorIdx: make(map[string]int),
	}
	for i, tok := range tokens {
		if err = reg.addToken(tok, i+1); err != nil {
			return nil, fmt.Errorf("Parse: term %d: %w", i+1, err)
		}
	}
	if err = reg.declareReferences(o.refs); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	// Default subset: every basis term, ascending position.
	reg.subset = append([]int(nil), reg.basis...)

	return reg, nil
}

// addToken classifies one design token and appends the resulting term.
func (r *Registry) addToken(tok string, pos int) error {
	pieces, err := splitTop(tok, prodSep)
	if err != nil {
		return err
	}
	if len(pieces) >= 2 {
		return r.addInteraction(pieces, pos)
	}

	factor, level, isInd, err := parseIndicator(tok)
	if err != nil {
		return err
	}
	if isInd {
		return r.addIndicator(factor, level, pos)
	}

	id, err := parseIdent(tok)
	if err != nil {
		return err
	}

	return r.appendTerm(Term{Identifier: id.Text, Position: pos, Kind: Plain})
}

// addIndicator appends one categorical-indicator term and registers its
// factor on first appearance (output ordering follows design order).
func (r *Registry) addIndicator(factor, level Ident, pos int) error {
	key := factorKey(factor)
	if _, seen := r.factorIdx[key]; !seen {
		r.factorIdx[key] = len(r.factorOrder)
		r.factorOrder = append(r.factorOrder, factor.Text)
	}
	t := Term{
		Identifier: factor.Text + string(dotSep) + level.Text,
		Position:   pos,
		Kind:       Indicator,
		Factor:     factor.Text,
		Level:      level.Text,
	}

	return r.appendTerm(t)
}

// addInteraction resolves each constituent identifier against the terms
// already declared and appends the interaction term.
func (r *Registry) addInteraction(pieces []string, pos int) error {
	factors := make([]int, 0, len(pieces))
	names := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		ref, err := r.resolvePiece(piece)
		if err != nil {
			return err
		}
		for _, prev := range factors {
			if prev == ref.Position {
				return fmt.Errorf("%q listed twice: %w", ref.Identifier, ErrDuplicateFactorRef)
			}
		}
		factors = append(factors, ref.Position)
		names = append(names, ref.Identifier)
	}

	t := Term{
		Identifier: strings.Join(names, string(prodSep)),
		Position:   pos,
		Kind:       Interaction,
		Factors:    factors,
	}

	return r.appendTerm(t)
}

// resolvePiece maps one interaction factor token to an earlier term. The
// piece may use the indicator form (i.color.red) or the canonical
// identifier of any prior term (color.red, age, 2).
func (r *Registry) resolvePiece(piece string) (Term, error) {
	factor, level, isInd, err := parseIndicator(piece)
	if err != nil {
		return Term{}, err
	}

	var id Ident
	if isInd {
		id = Ident{Text: factor.Text + string(dotSep) + level.Text, Quoted: factor.Quoted || level.Quoted}
	} else {
		if id, err = parseIdent(piece); err != nil {
			return Term{}, err
		}
	}
	for _, t := range r.terms {
		if t.Kind != Interaction && id.Matches(t.Identifier) {
			return t, nil
		}
	}

	return Term{}, fmt.Errorf("factor %q: %w", id.Text, ErrUnknownFactorRef)
}

// appendTerm adds a term after checking identifier uniqueness under the
// case-insensitive rule (quoted declarations still collide with their
// case-insensitive twins: resolution must stay unambiguous for both rules).
func (r *Registry) appendTerm(t Term) error {
	for _, prev := range r.terms {
		if strings.EqualFold(prev.Identifier, t.Identifier) {
			return fmt.Errorf("%q: %w", t.Identifier, ErrDuplicateIdentifier)
		}
	}
	r.terms = append(r.terms, t)
	if t.IsBasis() {
		r.basis = append(r.basis, t.Position)
	}

	return nil
}

// declareReferences materializes caller-declared omitted levels as
// position-0 reference terms, keyed by their canonical identifier.
func (r *Registry) declareReferences(refs []refLevel) error {
	for _, ref := range refs {
		key := factorKey(Ident{Text: ref.factor})
		if !r.hasFactor(key) {
			return fmt.Errorf("factor %q: %w", ref.factor, ErrUnknownFactor)
		}
		t := Term{
			Identifier: ref.factor + string(dotSep) + ref.level,
			Position:   0,
			Kind:       Indicator,
			Factor:     ref.factor,
			Level:      ref.level,
		}
		for _, prev := range r.terms {
			if strings.EqualFold(prev.Identifier, t.Identifier) {
				return fmt.Errorf("reference %q: %w", t.Identifier, ErrDuplicateIdentifier)
			}
		}
		for id := range r.refs {
			if strings.EqualFold(id, t.Identifier) {
				return fmt.Errorf("reference %q: %w", t.Identifier, ErrDuplicateIdentifier)
			}
		}
		r.refs[t.Identifier] = t
	}

	return nil
}

// hasFactor reports whether any indicator term in the design belongs to the
// factor identified by key.
func (r *Registry) hasFactor(key string) bool {
	_, ok := r.factorIdx[key]

	return ok
}
