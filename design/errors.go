// Package design: sentinel error set.
// All parse and resolution failures return these sentinels, possibly wrapped
// with fmt.Errorf("...: %w", ...) for context; callers match with errors.Is.
// Parse-time errors are always raised before any builder runs (fail fast,
// no partial output).

package design

import "errors"

var (
	// ErrEmptyDesign indicates the design specification contains no tokens.
	ErrEmptyDesign = errors.New("design: specification must contain at least one term")

	// ErrDesignMismatch indicates the design-term count does not equal the
	// fitted coefficient count. The design is never truncated or padded.
	ErrDesignMismatch = errors.New("design: term count does not match coefficient count")

	// ErrBadToken indicates a malformed token: empty item, unterminated
	// quote, stray quote inside an unquoted identifier, or a malformed
	// indicator marker.
	ErrBadToken = errors.New("design: malformed token")

	// ErrDuplicateIdentifier indicates two design terms share an identifier
	// under the comparison rule, which would make resolution ambiguous.
	ErrDuplicateIdentifier = errors.New("design: duplicate term identifier")

	// ErrUnknownFactorRef indicates an interaction token references an
	// identifier that no earlier term in the design declares.
	ErrUnknownFactorRef = errors.New("design: interaction references undeclared term")

	// ErrDuplicateFactorRef indicates an interaction token lists the same
	// constituent term more than once; factors form a set.
	ErrDuplicateFactorRef = errors.New("design: interaction repeats a factor")

	// ErrUnknownFactor indicates a declared reference level names a
	// categorical factor with no indicator term in the design.
	ErrUnknownFactor = errors.New("design: reference level names unknown factor")

	// ErrUnknownIdentifier indicates a requested variable identifier does
	// not resolve to any basis term of the parsed design.
	ErrUnknownIdentifier = errors.New("design: unknown variable identifier")

	// ErrEmptySubset indicates that, after reference-term screening, the
	// requested subset contains no reportable basis term.
	ErrEmptySubset = errors.New("design: effective variable subset is empty")
)
