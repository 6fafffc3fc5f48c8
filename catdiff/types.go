// Package catdiff: output types, options, and sentinel errors.

package catdiff

import (
	"errors"

	"github.com/statkit/margins/deriv"
)

// ErrNilRegistry indicates a nil *design.Registry was passed to Build.
var ErrNilRegistry = errors.New("catdiff: registry is nil")

// Pair is the set/unset row pair of one categorical indicator term.
type Pair struct {
	// Position is the 1-based term position of the indicator.
	Position int
	// Factor and Level identify the categorical level the pair belongs to.
	Factor string
	Level  string
	// Set and Unset are symbolic rows over all model terms: Set evaluates
	// the model with this indicator at 1 and its siblings at 0, Unset with
	// every level of the factor at 0.
	Set   []deriv.Entry
	Unset []deriv.Entry
}

// Option configures Build.
type Option func(*options)

type options struct {
	shortened bool
}

// DefaultShortened keeps full-width rows with explicit zeros.
const DefaultShortened = false

// WithShortened controls row width. When true, entries structurally
// guaranteed identical between the set and unset rows are nulled to the
// Unresolved sentinel, so serialized rows carry only the positions that
// change. When false, explicit zeros are kept for full-width consumers.
func WithShortened(shortened bool) Option {
	return func(o *options) { o.shortened = shortened }
}

func gatherOptions(opts []Option) options {
	o := options{shortened: DefaultShortened}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
