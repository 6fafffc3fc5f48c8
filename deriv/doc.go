// Package deriv builds the dense matrix of first partial derivatives of
// every model term with respect to each requested basis variable.
//
// 🚀 Why a symbolic matrix?
//
//	The downstream delta-method aggregate evaluates derivatives per source
//	row, so entries stay symbolic here. The entry algebra is a closed set
//	of four node kinds:
//	  • Zero     — the constant 0
//	  • One      — the constant 1
//	  • Factor   — a reference to one raw term value
//	  • Product  — a product of raw term references
//	(plus Unresolved, the null sentinel used by catdiff set/unset rows).
//
// Differentiation rules over the design algebra:
//   - plain term wrt itself             → One
//   - plain term wrt anything else      → Zero
//   - indicator term wrt anything       → Zero (discrete path instead)
//   - interaction wrt a variable not in its factor set → Zero
//   - interaction wrt one of its factors → product of the remaining
//     factors (standard product rule; factors are distinct raw variables)
//
// Row order is global term order 1..n; column order is the caller-requested
// subset order, never re-sorted. When the design holds no interaction term
// Build returns (nil, nil): the matrix degenerates to the identity case and
// the aggregate takes its faster built-in path.
//
// ⚙️ Usage:
//
//	reg, _ := design.Parse("1,2,3,2*3", 4)
//	m, err := deriv.Build(reg)
//	if m != nil {
//	    rows := m.Render("x") // [][]string for the generated call
//	}
//
// Complexity: O(n·k·f) time for n terms, k requested columns, f factors per
// interaction; O(n·k) space.
package deriv
