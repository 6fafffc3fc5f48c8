// Package effects: the Compute pipeline.

package effects

import (
	"fmt"

	"github.com/statkit/margins/catdiff"
	"github.com/statkit/margins/deriv"
	"github.com/statkit/margins/design"
)

// Report is the serialized payload for one generated aggregate call.
// Index fields are zero-based, matching the aggregate's array convention;
// term positions everywhere else in this module stay 1-based.
type Report struct {
	// Model is the regression family the aggregate name is drawn from.
	Model Model

	// BasisIndices are the zero-based positions of the reported basis
	// variables, in request order.
	BasisIndices []int

	// Labels holds the identifier of each reported basis position, aligned
	// with BasisIndices. Callers use them to name result columns.
	Labels []string

	// Derivative is the rendered derivative matrix, row-major over all
	// model terms. Nil when the design has no interaction term: the
	// aggregate then takes its identity fast path.
	Derivative [][]string

	// CategoricalIndices are the zero-based positions of every categorical
	// indicator term in the design, design order.
	CategoricalIndices []int

	// SetRows and UnsetRows are the rendered set/unset pairs, one row per
	// reported indicator, each of full term width with deriv.NullLiteral
	// padding unresolved positions. Aligned with each other.
	SetRows   [][]string
	UnsetRows [][]string

	// Pairs identifies the indicator behind each SetRows/UnsetRows row.
	Pairs []catdiff.Pair

	// Dropped lists requested identifiers that named reference (omitted)
	// levels; they are excluded from the report and callers should warn.
	Dropped []string
}

// Compute parses the design specification against the fitted coefficient
// count and assembles the full marginal-effects payload for one model.
//
// Errors wrap the design sentinels (ErrDesignMismatch, ErrBadToken,
// ErrUnknownIdentifier, ErrEmptySubset, ...) plus ErrUnknownModel; every
// failure precedes matrix construction.
func Compute(model Model, spec string, nTerms int, opts ...Option) (*Report, error) {
	if !model.Valid() {
		return nil, fmt.Errorf("Compute: model tag %d: %w", model, ErrUnknownModel)
	}
	o := gatherOptions(opts)

	dopts := make([]design.Option, 0, len(o.refs))
	for _, ref := range o.refs {
		dopts = append(dopts, design.WithReferenceLevel(ref[0], ref[1]))
	}
	reg, err := design.Parse(spec, nTerms, dopts...)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	var dropped []string
	if o.variables != "" {
		ids, err := design.ParseIdents(o.variables)
		if err != nil {
			return nil, fmt.Errorf("Compute: variables: %w", err)
		}
		// An empty list keeps the default subset: all basis terms.
		if len(ids) > 0 {
			if dropped, err = reg.ApplySubset(ids); err != nil {
				return nil, fmt.Errorf("Compute: variables: %w", err)
			}
		}
	}

	matrix, err := deriv.Build(reg)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	pairs, err := catdiff.Build(reg, catdiff.WithShortened(o.shortened))
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	return assemble(model, reg, matrix, pairs, dropped, o.prefix), nil
}

// assemble renders the builders' output into the wire-shaped Report.
func assemble(model Model, reg *design.Registry, matrix *deriv.Matrix, pairs []catdiff.Pair, dropped []string, prefix string) *Report {
	rep := &Report{
		Model:   model,
		Labels:  reg.SubsetIdentifiers(),
		Dropped: dropped,
		Pairs:   pairs,
	}

	for _, pos := range reg.Subset() {
		rep.BasisIndices = append(rep.BasisIndices, pos-1)
	}
	for _, pos := range reg.IndicatorPositions() {
		rep.CategoricalIndices = append(rep.CategoricalIndices, pos-1)
	}
	if matrix != nil {
		rep.Derivative = matrix.Render(prefix)
	}
	for _, p := range pairs {
		rep.SetRows = append(rep.SetRows, renderRow(p.Set, prefix))
		rep.UnsetRows = append(rep.UnsetRows, renderRow(p.Unset, prefix))
	}

	return rep
}

// renderRow serializes one symbolic row, padding unresolved positions with
// the null sentinel.
func renderRow(row []deriv.Entry, prefix string) []string {
	out := make([]string, len(row))
	for i, e := range row {
		out[i] = e.Render(prefix)
	}

	return out
}
