// Package intents: options and error definitions for intent enumeration.
package intents

import (
	"context"
	"errors"

	"github.com/lbrehon/galois/bitvec"
)

// ErrNilContext is returned when a nil formal context is passed in.
var ErrNilContext = errors.New("intents: context is nil")

// Option configures enumeration via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing the enumeration.
type Options struct {
	// Ctx allows cancellation; checked once per expansion step.
	Ctx context.Context

	// OnIntent is called for each discovered intent (All only). Returning an
	// error aborts the enumeration and propagates that error.
	OnIntent func(intent bitvec.Vector) error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnIntent: func(bitvec.Vector) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnIntent registers a callback fired per discovered intent.
func WithOnIntent(fn func(intent bitvec.Vector) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIntent = fn
		}
	}
}
