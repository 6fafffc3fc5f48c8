// Package deriv: the symbolic entry algebra.

package deriv

import (
	"strconv"
	"strings"
)

// EntryKind enumerates the closed set of symbolic node kinds a derivative
// or set/unset entry can take.
type EntryKind uint8

const (
	// Unresolved is the null sentinel: the entry carries no information for
	// the computation at hand and callers drop or pad it at serialization.
	Unresolved EntryKind = iota
	// Zero is the constant 0.
	Zero
	// One is the constant 1.
	One
	// Factor references the value of a single raw term.
	Factor
	// Product multiplies two or more raw term references.
	Product
)

// NullLiteral is the textual sentinel emitted for Unresolved entries.
const NullLiteral = "NULL"

// Entry is one symbolic matrix cell. The zero value is Unresolved.
type Entry struct {
	Kind EntryKind
	// Refs holds the 1-based term positions referenced by Factor (one
	// entry) or Product (two or more, written order). Nil otherwise.
	Refs []int
}

// ZeroEntry returns the constant-0 entry.
func ZeroEntry() Entry { return Entry{Kind: Zero} }

// OneEntry returns the constant-1 entry.
func OneEntry() Entry { return Entry{Kind: One} }

// Ref returns an entry referencing the raw term at position pos.
func Ref(pos int) Entry { return Entry{Kind: Factor, Refs: []int{pos}} }

// Prod returns the product of the referenced term positions. One position
// collapses to a Factor reference; none collapses to One (empty product).
func Prod(positions ...int) Entry {
	switch len(positions) {
	case 0:
		return OneEntry()
	case 1:
		return Ref(positions[0])
	default:
		return Entry{Kind: Product, Refs: append([]int(nil), positions...)}
	}
}

// Render serializes the entry for the generated aggregate call. Factor
// references become prefix-subscripted accesses with 1-based positions,
// e.g. Render("x") on Product{2,5} yields "x[2]*x[5]". Unresolved renders
// as NullLiteral.
func (e Entry) Render(prefix string) string {
	switch e.Kind {
	case Zero:
		return "0"
	case One:
		return "1"
	case Factor:
		return subscript(prefix, e.Refs[0])
	case Product:
		parts := make([]string, len(e.Refs))
		for i, pos := range e.Refs {
			parts[i] = subscript(prefix, pos)
		}

		return strings.Join(parts, "*")
	default:
		return NullLiteral
	}
}

// Equal reports structural equality of two entries.
func (e Entry) Equal(other Entry) bool {
	if e.Kind != other.Kind || len(e.Refs) != len(other.Refs) {
		return false
	}
	for i, pos := range e.Refs {
		if other.Refs[i] != pos {
			return false
		}
	}

	return true
}

// subscript formats one raw term access: prefix "[" position "]".
func subscript(prefix string, pos int) string {
	return prefix + "[" + strconv.Itoa(pos) + "]"
}
