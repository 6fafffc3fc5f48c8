// Package design: quote-aware tokenizer.
//
// Identifier lists arrive in two places with the same lexical rules: the
// design specification itself and the caller's marginal-variable selection.
// Both are comma-separated, optionally wrapped in one pair of array
// brackets, and a double-quoted identifier is a case-sensitive literal.
// The tokenizer is a small state machine over the input runes producing
// (text, quoted) pairs; it never guesses at malformed input.

package design

import (
	"fmt"
	"strings"
)

const (
	quoteRune = '"'
	commaSep  = ','
	prodSep   = '*'
	dotSep    = '.'
)

// bracket pairs accepted around a token list; at most one pair is stripped.
var bracketPairs = [][2]string{{"[", "]"}, {"{", "}"}, {"(", ")"}}

// ParseIdents tokenizes a comma-separated identifier list into Ident values.
// One surrounding pair of [], {} or () is ignored. An empty list (after
// bracket stripping) yields nil with no error; malformed items return
// ErrBadToken.
func ParseIdents(list string) ([]Ident, error) {
	body := stripBrackets(list)
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	items, err := splitTop(body, commaSep)
	if err != nil {
		return nil, err
	}

	ids := make([]Ident, 0, len(items))
	for _, item := range items {
		id, err := parseIdent(item)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// stripBrackets removes at most one matched pair of surrounding array
// brackets, plus any surrounding whitespace.
func stripBrackets(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range bracketPairs {
		if strings.HasPrefix(s, p[0]) && strings.HasSuffix(s, p[1]) && len(s) >= 2 {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}

	return s
}

// splitTop splits s on sep, ignoring separators inside double quotes.
// An unterminated quote returns ErrBadToken.
func splitTop(s string, sep rune) ([]string, error) {
	var (
		parts   []string
		start   int
		inQuote bool
	)
	for i, r := range s {
		switch {
		case r == quoteRune:
			inQuote = !inQuote
		case r == sep && !inQuote:
			parts = append(parts, s[start:i])
			start = i + len(string(sep))
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q: %w", s, ErrBadToken)
	}
	parts = append(parts, s[start:])

	return parts, nil
}

// parseIdent parses a single trimmed item into an Ident. Quoted items keep
// their inner text verbatim; unquoted items must not contain a quote.
func parseIdent(raw string) (Ident, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Ident{}, fmt.Errorf("empty identifier: %w", ErrBadToken)
	}
	if s[0] == quoteRune {
		if len(s) < 2 || s[len(s)-1] != quoteRune {
			return Ident{}, fmt.Errorf("unterminated quote in %q: %w", raw, ErrBadToken)
		}
		inner := s[1 : len(s)-1]
		if inner == "" || strings.ContainsRune(inner, quoteRune) {
			return Ident{}, fmt.Errorf("malformed quoted identifier %q: %w", raw, ErrBadToken)
		}

		return Ident{Text: inner, Quoted: true}, nil
	}
	if strings.ContainsRune(s, quoteRune) {
		return Ident{}, fmt.Errorf("stray quote in identifier %q: %w", raw, ErrBadToken)
	}

	return Ident{Text: s, Quoted: false}, nil
}

// indicatorMarker prefixes a categorical-indicator token: i.<factor>.<level>.
// The marker itself is matched case-insensitively.
const indicatorMarker = "i."

// parseIndicator recognizes the indicator form i.<factor>.<level>. The
// factor segment may be double-quoted; the level is the remainder after the
// factor's dot and may itself be quoted. ok is false when the token does not
// start with the marker at all.
func parseIndicator(tok string) (factor, level Ident, ok bool, err error) {
	s := strings.TrimSpace(tok)
	if len(s) < len(indicatorMarker) || !strings.EqualFold(s[:len(indicatorMarker)], indicatorMarker) {
		return Ident{}, Ident{}, false, nil
	}
	rest := s[len(indicatorMarker):]

	var factorRaw, levelRaw string
	if strings.HasPrefix(rest, string(quoteRune)) {
		end := strings.IndexRune(rest[1:], quoteRune)
		if end < 0 {
			return Ident{}, Ident{}, true, fmt.Errorf("unterminated quote in %q: %w", tok, ErrBadToken)
		}
		factorRaw = rest[:end+2]
		rest = rest[end+2:]
		if !strings.HasPrefix(rest, string(dotSep)) {
			return Ident{}, Ident{}, true, fmt.Errorf("indicator %q missing level: %w", tok, ErrBadToken)
		}
		levelRaw = rest[1:]
	} else {
		dot := strings.IndexRune(rest, dotSep)
		if dot <= 0 {
			return Ident{}, Ident{}, true, fmt.Errorf("indicator %q missing level: %w", tok, ErrBadToken)
		}
		factorRaw, levelRaw = rest[:dot], rest[dot+1:]
	}

	factor, err = parseIdent(factorRaw)
	if err != nil {
		return Ident{}, Ident{}, true, err
	}
	level, err = parseIdent(levelRaw)
	if err != nil {
		return Ident{}, Ident{}, true, err
	}

	return factor, level, true, nil
}

// factorKey folds an identifier to its grouping key: quoted identifiers
// group verbatim, unquoted ones group case-insensitively. The prefix keeps
// the two namespaces from colliding.
func factorKey(id Ident) string {
	if id.Quoted {
		return "q:" + id.Text
	}

	return "u:" + strings.ToLower(id.Text)
}
