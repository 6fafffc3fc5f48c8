package catdiff_test

import (
	"testing"

	"github.com/statkit/margins/catdiff"
	"github.com/statkit/margins/deriv"
	"github.com/statkit/margins/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// colorDesign: one plain regressor, two color levels, one interaction of
// the plain term with the red level.
func colorDesign(t *testing.T) *design.Registry {
	t.Helper()
	reg, err := design.Parse("age,i.color.red,i.color.blue,age*i.color.red", 4)
	require.NoError(t, err)

	return reg
}

// TestBuild_NoCategoricals yields no pairs for purely continuous designs.
func TestBuild_NoCategoricals(t *testing.T) {
	reg, err := design.Parse("1,2,3,2*3", 4)
	require.NoError(t, err)

	pairs, err := catdiff.Build(reg)
	assert.NoError(t, err)
	assert.Empty(t, pairs)
}

// TestBuild_NilRegistry rejects a nil registry.
func TestBuild_NilRegistry(t *testing.T) {
	_, err := catdiff.Build(nil)
	assert.ErrorIs(t, err, catdiff.ErrNilRegistry)
}

// TestBuild_SetUnsetRows checks the full-width rows of both color levels.
func TestBuild_SetUnsetRows(t *testing.T) {
	pairs, err := catdiff.Build(colorDesign(t))
	require.NoError(t, err)
	require.Len(t, pairs, 2, "one pair per indicator level")

	red := pairs[0]
	assert.Equal(t, 2, red.Position)
	assert.Equal(t, "color", red.Factor)
	assert.Equal(t, "red", red.Level)
	// Set: red=1, blue=0; the interaction keeps the non-factor constituent.
	requireRow(t, red.Set, deriv.Entry{}, deriv.OneEntry(), deriv.ZeroEntry(), deriv.Ref(1))
	// Unset: every color level at 0 zeroes the interaction too.
	requireRow(t, red.Unset, deriv.Entry{}, deriv.ZeroEntry(), deriv.ZeroEntry(), deriv.ZeroEntry())

	blue := pairs[1]
	assert.Equal(t, 3, blue.Position)
	// The interaction contains the sibling red level, so it is 0 in both rows.
	requireRow(t, blue.Set, deriv.Entry{}, deriv.ZeroEntry(), deriv.OneEntry(), deriv.ZeroEntry())
	requireRow(t, blue.Unset, deriv.Entry{}, deriv.ZeroEntry(), deriv.ZeroEntry(), deriv.ZeroEntry())
}

// TestBuild_RowsDifferOnlyAtFactorPositions: set and unset rows may differ
// only at the factor's own indicator and interactions containing it.
func TestBuild_RowsDifferOnlyAtFactorPositions(t *testing.T) {
	reg := colorDesign(t)
	pairs, err := catdiff.Build(reg)
	require.NoError(t, err)

	for _, p := range pairs {
		for i := range p.Set {
			if p.Set[i].Equal(p.Unset[i]) {
				continue
			}
			term, ok := reg.Term(i + 1)
			require.True(t, ok)
			touches := term.Position == p.Position
			for _, f := range term.Factors {
				if f == p.Position {
					touches = true
				}
			}
			assert.True(t, touches,
				"pair %s: rows differ at position %d which does not touch the indicator", p.Level, i+1)
		}
	}
}

// TestBuild_Shortened nulls every structurally unchanged position, keeping
// only entries that move between set and unset.
func TestBuild_Shortened(t *testing.T) {
	pairs, err := catdiff.Build(colorDesign(t), catdiff.WithShortened(true))
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	red := pairs[0]
	requireRow(t, red.Set, deriv.Entry{}, deriv.OneEntry(), deriv.Entry{}, deriv.Ref(1))
	requireRow(t, red.Unset, deriv.Entry{}, deriv.ZeroEntry(), deriv.Entry{}, deriv.ZeroEntry())

	blue := pairs[1]
	requireRow(t, blue.Set, deriv.Entry{}, deriv.Entry{}, deriv.OneEntry(), deriv.Entry{})
	requireRow(t, blue.Unset, deriv.Entry{}, deriv.Entry{}, deriv.ZeroEntry(), deriv.Entry{})
}

// TestBuild_SubsetFilter emits pairs only for indicators inside the
// effective subset.
func TestBuild_SubsetFilter(t *testing.T) {
	reg := colorDesign(t)
	_, err := reg.ApplySubset([]design.Ident{{Text: "age"}, {Text: "color.blue"}})
	require.NoError(t, err)

	pairs, err := catdiff.Build(reg)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "blue", pairs[0].Level)
}

// TestBuild_FactorOrder follows first appearance in the design string, not
// identifier order.
func TestBuild_FactorOrder(t *testing.T) {
	reg, err := design.Parse("i.zeta.a,i.alpha.b", 2)
	require.NoError(t, err)

	pairs, err := catdiff.Build(reg)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "zeta", pairs[0].Factor)
	assert.Equal(t, "alpha", pairs[1].Factor)
}

// requireRow asserts one symbolic row entry by entry.
func requireRow(t *testing.T, got []deriv.Entry, want ...deriv.Entry) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Equal(want[i]), "position %d: got %+v want %+v", i+1, got[i], want[i])
	}
}
