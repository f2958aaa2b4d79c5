package mine

import (
	"context"
	"errors"
)

// Sentinel errors for the mining front ends.
var (
	// ErrNilContext is returned when a nil formal context is passed in.
	ErrNilContext = errors.New("mine: context is nil")

	// ErrTooManyAttributes is returned when Descriptions would have to
	// enumerate more than 2^MaxDescriptionAttrs subsets.
	ErrTooManyAttributes = errors.New("mine: attribute universe too large for exhaustive description table")

	// ErrInvalidThreshold is returned for a negative minimum support.
	ErrInvalidThreshold = errors.New("mine: minimum support must be non-negative")
)

// MaxDescriptionAttrs bounds the attribute universe of Descriptions.
const MaxDescriptionAttrs = 20

// Option configures the front ends via functional arguments.
type Option func(*Options)

// Options holds parameters shared by the mining front ends.
type Options struct {
	// Ctx allows cancellation of the underlying intent enumeration.
	Ctx context.Context

	// MinSupport drops rows whose support falls below it. The pipeline is
	// still computed on the full lattice, the filter applies to output only.
	MinSupport int

	// PseudoIntents enables the pseudo-intent column of Concepts. Off by
	// default: it is the most expensive part of the pipeline.
	PseudoIntents bool

	// Unit expands implication rows to one conclusion attribute each.
	Unit bool
}

// DefaultOptions returns Options with a background context, no support
// filter, no pseudo-intents and grouped conclusions.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinSupport drops output rows below the given support.
func WithMinSupport(minSupport int) Option {
	return func(o *Options) { o.MinSupport = minSupport }
}

// WithPseudoIntents enables the pseudo-intent column of Concepts.
func WithPseudoIntents() Option {
	return func(o *Options) { o.PseudoIntents = true }
}

// WithUnitBasis makes Implications emit single-attribute conclusions.
func WithUnitBasis() Option {
	return func(o *Options) { o.Unit = true }
}
