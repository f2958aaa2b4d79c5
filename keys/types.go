// Package keys: result types, options and error definitions.
package keys

import (
	"errors"

	"github.com/lbrehon/galois/bitvec"
)

// Sentinel errors for generator analysis.
var (
	// ErrNilContext is returned when a nil formal context is passed in.
	ErrNilContext = errors.New("keys: context is nil")

	// ErrNoIntents is returned when an empty intent list is passed in.
	ErrNoIntents = errors.New("keys: intent list is empty")

	// ErrNotSorted is returned when the intent list is not topologically
	// sorted by ascending cardinality.
	ErrNotSorted = errors.New("keys: intents must be sorted by ascending cardinality")

	// ErrNotClosed is returned when a description supposed to be an intent
	// is not a fixed point of the closure operator.
	ErrNotClosed = errors.New("keys: description is not closed")
)

// Key pairs a generator description with the index (into the sorted intent
// list) of the intent it closes to.
type Key struct {
	Description bitvec.Vector
	Intent      int
}

// ClassOption configures equivalence-class iteration.
type ClassOption func(*ClassOptions)

// ClassOptions holds the tunables of EquivalenceClass.
type ClassOptions struct {
	// Levelwise enables pruning of removal branches whose extent already
	// left the class. Disabling it tests every subset of the intent.
	Levelwise bool
}

// DefaultClassOptions enables the levelwise pruning.
func DefaultClassOptions() ClassOptions {
	return ClassOptions{Levelwise: true}
}

// WithLevelwise toggles the levelwise pruning.
func WithLevelwise(on bool) ClassOption {
	return func(o *ClassOptions) { o.Levelwise = on }
}
