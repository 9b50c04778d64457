package dataio

import "github.com/dataio-format/go-dataio/tree"

type options struct {
	limits tree.Limits
	coerce bool
}

func defaultOptions() options {
	return options{limits: tree.DefaultLimits()}
}

type Option func(*options)

// WithLimits overrides the default value and path length bounds.
func WithLimits(l tree.Limits) Option {
	return func(o *options) { o.limits = l }
}

// WithCoercion enables loose scalar coercion on typed reads: a string
// holding "true" satisfies GetBool, a numeric string satisfies GetNumber,
// and numbers and booleans satisfy GetString. The default is a strict tag
// match, falling back to the caller's default value.
func WithCoercion(v bool) Option {
	return func(o *options) { o.coerce = v }
}
