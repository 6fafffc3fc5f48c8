// Package effects: functional configuration for Compute.

package effects

// DefaultPrefix is the raw-variable prefix used in rendered expressions.
const DefaultPrefix = "x"

// Option configures Compute. Options apply in order and are idempotent.
type Option func(*options)

type options struct {
	variables string
	refs      [][2]string
	prefix    string
	shortened bool
}

func gatherOptions(opts []Option) options {
	o := options{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithVariables restricts the report to the listed basis variables, in the
// listed order. The list is comma-separated, optionally array-bracketed;
// double-quoted identifiers match case-sensitively, unquoted ones
// case-insensitively. An empty list keeps the default: every basis term in
// ascending position order.
func WithVariables(list string) Option {
	return func(o *options) { o.variables = list }
}

// WithReferenceLevel declares the omitted level of a categorical factor,
// forwarded to design.WithReferenceLevel. Reference levels are never
// inferred from the design.
func WithReferenceLevel(factor, level string) Option {
	return func(o *options) { o.refs = append(o.refs, [2]string{factor, level}) }
}

// WithPrefix sets the raw-variable prefix used when rendering symbolic
// entries (e.g. "x" → "x[2]*x[5]"). Default DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithShortened forwards to catdiff.WithShortened: when true, set/unset
// rows null every structurally unchanged position instead of spelling out
// zeros. Default false (full-width rows).
func WithShortened(shortened bool) Option {
	return func(o *options) { o.shortened = shortened }
}
