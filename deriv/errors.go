package deriv

import "errors"

// ErrNilRegistry indicates a nil *design.Registry was passed to Build.
var ErrNilRegistry = errors.New("deriv: registry is nil")
