package intents

import (
	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
)

// frame is one node of the canonical generation tree: an accepted intent and
// the next extension attribute to try.
type frame struct {
	intent bitvec.Vector
	next   int
}

// Enumerator lazily produces the intents of a context in depth-first
// canonical order. It is single-use: once Next reports false the sequence is
// exhausted (or cancelled; check Err).
type Enumerator struct {
	fctx  *core.Context
	opts  Options
	stack []frame
	root  bitvec.Vector
	begun bool
	err   error
}

// Enumerate prepares a lazy enumeration of all intents of fctx.
// The first Next call yields Closure(∅).
func Enumerate(fctx *core.Context, opts ...Option) (*Enumerator, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bottom, err := fctx.BottomIntent()
	if err != nil {
		return nil, err
	}
	return &Enumerator{fctx: fctx, opts: o, root: bottom}, nil
}

// Next returns the next intent of the enumeration. The boolean is false once
// the traversal is exhausted or cancelled; Err distinguishes the two.
func (e *Enumerator) Next() (bitvec.Vector, bool) {
	if e.err != nil {
		return bitvec.Vector{}, false
	}
	if !e.begun {
		e.begun = true
		e.stack = append(e.stack, frame{intent: e.root, next: 0})
		return e.root, true
	}
	m := e.fctx.Attributes()
	for len(e.stack) > 0 {
		// cancellation check, once per expansion step
		select {
		case <-e.opts.Ctx.Done():
			e.err = e.opts.Ctx.Err()
			return bitvec.Vector{}, false
		default:
		}

		f := &e.stack[len(e.stack)-1]
		advanced := false
		for f.next < m {
			a := f.next
			f.next++
			if f.intent.Test(a) {
				continue
			}
			cand := f.intent.Clone()
			_ = cand.Set(a)
			closed, err := e.fctx.Closure(cand)
			if err != nil {
				e.err = err
				return bitvec.Vector{}, false
			}
			// canonicity: the closure must not introduce attributes below a,
			// otherwise this intent is (or will be) generated on its
			// lexicographically smaller path.
			if !closed.EqualBelow(f.intent, a) {
				continue
			}
			e.stack = append(e.stack, frame{intent: closed, next: a + 1})
			advanced = true
			return closed, true
		}
		if !advanced {
			e.stack = e.stack[:len(e.stack)-1]
		}
	}
	return bitvec.Vector{}, false
}

// Err reports the error, if any, that terminated the enumeration early
// (context cancellation is the only source in practice).
func (e *Enumerator) Err() error { return e.err }

// All runs the enumeration to completion and returns every intent of fctx.
// The OnIntent hook fires once per intent and may abort with an error.
func All(fctx *core.Context, opts ...Option) ([]bitvec.Vector, error) {
	e, err := Enumerate(fctx, opts...)
	if err != nil {
		return nil, err
	}
	var out []bitvec.Vector
	for {
		in, ok := e.Next()
		if !ok {
			break
		}
		if err := e.opts.OnIntent(in); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	if e.Err() != nil {
		return nil, e.Err()
	}
	return out, nil
}
