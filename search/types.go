package search

import (
	"context"
	"errors"

	"github.com/lbrehon/galois/bitvec"
)

// Sentinel errors for constrained searches.
var (
	// ErrNilContext is returned when a nil formal context is passed in.
	ErrNilContext = errors.New("search: context is nil")

	// ErrInvalidThreshold is returned for negative support, coverage or
	// surplus thresholds.
	ErrInvalidThreshold = errors.New("search: threshold must be non-negative")

	// ErrNotClosed is returned when DeltaEquivalentKeys is given a
	// description that is not its own closure.
	ErrNotClosed = errors.New("search: description is not closed")

	// ErrUnknownPolicy is returned for a Policy value outside the defined set.
	ErrUnknownPolicy = errors.New("search: unknown traversal policy")
)

// Policy selects the traversal order of MinimalBroadClusterings.
type Policy int

const (
	// MRGExp expands candidates levelwise: every description of size k is
	// examined before any of size k+1, so the smallest minimal solutions
	// surface first.
	MRGExp Policy = iota

	// Pyramidal descends depth-first in input order, committing to the
	// lowest-index attribute whose branch can still reach the threshold.
	// Minimal solutions using low-index attributes surface first.
	Pyramidal
)

// String names the policy for logs and CLI output.
func (p Policy) String() string {
	switch p {
	case MRGExp:
		return "mrg-exp"
	case Pyramidal:
		return "pyramidal"
	default:
		return "unknown"
	}
}

// Result pairs a found description with the metric that qualified it:
// support for rare and Δ-key searches, coverage for clusterings.
type Result struct {
	Description bitvec.Vector
	Value       int
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds search parameters shared by all iterators.
type Options struct {
	// Ctx allows cancellation; checked once per expansion step.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
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

// frame is one node of a search tree: a description, its running metric
// vector (extent for rare searches, covered objects for clusterings), and
// the next attribute to try.
type frame struct {
	desc bitvec.Vector
	acc  bitvec.Vector
	next int
}
