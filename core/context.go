package core

import (
	"fmt"

	"github.com/lbrehon/galois/bitvec"
)

// Context is the immutable bit-vector encoding of an incidence relation
// between nObjects objects and nAttrs attributes. Built once, never mutated.
type Context struct {
	nObjects int
	nAttrs   int
	rows     []bitvec.Vector // rows[o]: width nAttrs, attributes of object o
	cols     []bitvec.Vector // cols[a]: width nObjects, extent of attribute a
}

// New builds a Context from both orientations of the incidence relation and
// verifies that they are mutual transposes. Fails with ErrShapeMismatch when
// either table is empty, widths disagree, or the transpose invariant breaks.
func New(objectRows, attrCols []bitvec.Vector) (*Context, error) {
	n, m := len(objectRows), len(attrCols)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("%w: %d objects, %d attributes", ErrShapeMismatch, n, m)
	}
	for o, row := range objectRows {
		if row.Width() != m {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrShapeMismatch, o, row.Width(), m)
		}
	}
	for a, col := range attrCols {
		if col.Width() != n {
			return nil, fmt.Errorf("%w: column %d has width %d, want %d", ErrShapeMismatch, a, col.Width(), n)
		}
	}
	for o := 0; o < n; o++ {
		for a := 0; a < m; a++ {
			if objectRows[o].Test(a) != attrCols[a].Test(o) {
				return nil, fmt.Errorf("%w: cell (%d,%d) differs between tables", ErrShapeMismatch, o, a)
			}
		}
	}
	return &Context{
		nObjects: n,
		nAttrs:   m,
		rows:     cloneAll(objectRows),
		cols:     cloneAll(attrCols),
	}, nil
}

// FromRows builds a Context from the object-major table alone, deriving the
// attribute-major table by transposition.
func FromRows(objectRows []bitvec.Vector) (*Context, error) {
	n := len(objectRows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no objects", ErrShapeMismatch)
	}
	m := objectRows[0].Width()
	cols := make([]bitvec.Vector, m)
	for a := range cols {
		cols[a] = bitvec.New(n)
	}
	for o, row := range objectRows {
		if row.Width() != m {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrShapeMismatch, o, row.Width(), m)
		}
		row.ForEach(func(a int) bool {
			// indices are in range by construction
			_ = cols[a].Set(o)
			return true
		})
	}
	return New(objectRows, cols)
}

func cloneAll(vs []bitvec.Vector) []bitvec.Vector {
	out := make([]bitvec.Vector, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}

// Objects returns n, the size of the object universe.
func (c *Context) Objects() int { return c.nObjects }

// Attributes returns m, the size of the attribute universe.
func (c *Context) Attributes() int { return c.nAttrs }

// Columns returns the attribute-major table: Columns()[a] is the extent of
// attribute a. The vectors are live views into the context and MUST be
// treated as read-only; clone before mutating.
func (c *Context) Columns() []bitvec.Vector {
	out := make([]bitvec.Vector, len(c.cols))
	copy(out, c.cols)
	return out
}

// Rows returns the object-major table: Rows()[o] is the description of
// object o. Read-only views, same contract as Columns.
func (c *Context) Rows() []bitvec.Vector {
	out := make([]bitvec.Vector, len(c.rows))
	copy(out, c.rows)
	return out
}

// TotalExtent returns a fresh vector with every object bit set.
func (c *Context) TotalExtent() bitvec.Vector { return bitvec.Full(c.nObjects) }

// checkDescription validates that d addresses this context's attributes.
func (c *Context) checkDescription(d bitvec.Vector) error {
	if d.Width() != c.nAttrs {
		return fmt.Errorf("%w: description width %d, attribute universe %d", ErrIndexOutOfRange, d.Width(), c.nAttrs)
	}
	return nil
}

// checkObjects validates that o addresses this context's objects.
func (c *Context) checkObjects(o bitvec.Vector) error {
	if o.Width() != c.nObjects {
		return fmt.Errorf("%w: object-set width %d, object universe %d", ErrIndexOutOfRange, o.Width(), c.nObjects)
	}
	return nil
}
