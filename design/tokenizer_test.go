package design_test

import (
	"testing"

	"github.com/statkit/margins/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseIdents_Bare verifies plain comma-separated identifiers, with and
// without one surrounding bracket pair.
func TestParseIdents_Bare(t *testing.T) {
	for _, list := range []string{"1, 2, age", "[1, 2, age]", "{1,2,age}", "(1, 2 ,age)"} {
		ids, err := design.ParseIdents(list)
		require.NoError(t, err, "list %q must tokenize", list)
		require.Len(t, ids, 3)
		assert.Equal(t, design.Ident{Text: "1"}, ids[0])
		assert.Equal(t, design.Ident{Text: "2"}, ids[1])
		assert.Equal(t, design.Ident{Text: "age"}, ids[2])
	}
}

// TestParseIdents_Quoted verifies that double-quoted identifiers keep their
// inner text verbatim and carry the Quoted flag.
func TestParseIdents_Quoted(t *testing.T) {
	ids, err := design.ParseIdents(`[2, "Age", "X y"]`)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Equal(t, design.Ident{Text: "2"}, ids[0])
	assert.Equal(t, design.Ident{Text: "Age", Quoted: true}, ids[1])
	assert.Equal(t, design.Ident{Text: "X y", Quoted: true}, ids[2])
}

// TestParseIdents_QuotedComma keeps commas inside quotes from splitting.
func TestParseIdents_QuotedComma(t *testing.T) {
	ids, err := design.ParseIdents(`"a,b", c`)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, design.Ident{Text: "a,b", Quoted: true}, ids[0])
	assert.Equal(t, design.Ident{Text: "c"}, ids[1])
}

// TestParseIdents_Empty returns no identifiers for empty input, with or
// without brackets, without error.
func TestParseIdents_Empty(t *testing.T) {
	for _, list := range []string{"", "   ", "[]", "{ }"} {
		ids, err := design.ParseIdents(list)
		assert.NoError(t, err, "list %q", list)
		assert.Nil(t, ids, "list %q must yield no identifiers", list)
	}
}

// TestParseIdents_Malformed verifies ErrBadToken on empty items, stray and
// unterminated quotes.
func TestParseIdents_Malformed(t *testing.T) {
	for _, list := range []string{"1,,2", `a"b`, `"unterminated`, `""`, "1, ,2"} {
		_, err := design.ParseIdents(list)
		assert.ErrorIs(t, err, design.ErrBadToken, "list %q must fail", list)
	}
}

// TestIdent_Matches verifies the quote-sensitive comparison rule: unquoted
// identifiers compare case-insensitively, quoted ones verbatim.
func TestIdent_Matches(t *testing.T) {
	assert.True(t, design.Ident{Text: "age"}.Matches("AGE"))
	assert.True(t, design.Ident{Text: "Age", Quoted: true}.Matches("Age"))
	assert.False(t, design.Ident{Text: "age", Quoted: true}.Matches("AGE"))
	assert.False(t, design.Ident{Text: "age"}.Matches("income"))
}
