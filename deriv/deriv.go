// Package deriv: derivative-matrix construction.

package deriv

import (
	"fmt"

	"github.com/statkit/margins/design"
)

// Matrix is the dense derivative matrix: one row per model term in global
// term order, one column per requested basis position in caller order.
type Matrix struct {
	cols []int     // requested basis positions, caller order
	rows [][]Entry // len(rows) == NumTerms, len(rows[i]) == len(cols)
}

// Build constructs the derivative matrix of every model term with respect
// to the registry's effective subset of basis variables.
//
// When the design contains no interaction term the matrix degenerates to
// the identity submatrix; Build then returns (nil, nil) and the caller
// serializes the absence sentinel instead (the downstream aggregate has a
// faster built-in path for that case).
func Build(reg *design.Registry) (*Matrix, error) {
	if reg == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilRegistry)
	}
	if !reg.HasInteractions() {
		return nil, nil
	}

	cols := reg.Subset()
	terms := reg.Terms()
	rows := make([][]Entry, len(terms))
	for i, t := range terms {
		row := make([]Entry, len(cols))
		for j, pos := range cols {
			row[j] = derivative(t, pos)
		}
		rows[i] = row
	}

	return &Matrix{cols: cols, rows: rows}, nil
}

// derivative computes the symbolic partial derivative of term t with
// respect to the basis term at position wrt.
func derivative(t design.Term, wrt int) Entry {
	switch t.Kind {
	case design.Plain:
		if t.Position == wrt {
			return OneEntry()
		}

		return ZeroEntry()
	case design.Indicator:
		// Indicators take the discrete set/unset path, never this one.
		return ZeroEntry()
	case design.Interaction:
		return interactionDerivative(t.Factors, wrt)
	default:
		return ZeroEntry()
	}
}

// interactionDerivative applies the product rule to a multiplicative
// interaction: d(∏ f)/d(wrt) is 0 when wrt is absent, otherwise the product
// of the remaining factors. Factors are distinct raw variables, so exactly
// one of them depends on wrt.
func interactionDerivative(factors []int, wrt int) Entry {
	rest := make([]int, 0, len(factors))
	found := false
	for _, f := range factors {
		if f == wrt && !found {
			found = true

			continue
		}
		rest = append(rest, f)
	}
	if !found {
		return ZeroEntry()
	}

	return Prod(rest...)
}

// NumRows returns the row count (total model terms).
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols returns the column count (requested basis variables).
func (m *Matrix) NumCols() int { return len(m.cols) }

// Columns returns the basis positions backing each column, caller order.
func (m *Matrix) Columns() []int {
	return append([]int(nil), m.cols...)
}

// At returns the entry at row i (0-based term index) and column j.
func (m *Matrix) At(i, j int) Entry {
	return m.rows[i][j]
}

// Rows returns a deep copy of all entries, row-major.
func (m *Matrix) Rows() [][]Entry {
	out := make([][]Entry, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]Entry(nil), row...)
	}

	return out
}

// Render serializes the matrix as rectangular rows of expression strings,
// with raw term accesses subscripted under prefix. Row and column order
// match exactly what the downstream aggregate consumes.
func (m *Matrix) Render(prefix string) [][]string {
	out := make([][]string, len(m.rows))
	for i, row := range m.rows {
		cells := make([]string, len(row))
		for j, e := range row {
			cells[j] = e.Render(prefix)
		}
		out[i] = cells
	}

	return out
}
