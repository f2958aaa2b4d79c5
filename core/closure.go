package core

import "github.com/lbrehon/galois/bitvec"

// Extent returns the objects whose description is a superset of d: the
// word-parallel AND of the attribute columns selected by d. Extent(∅) is the
// full object set. The intersection short-circuits once it runs empty.
func (c *Context) Extent(d bitvec.Vector) (bitvec.Vector, error) {
	if c == nil {
		return bitvec.Vector{}, ErrNilContext
	}
	if err := c.checkDescription(d); err != nil {
		return bitvec.Vector{}, err
	}
	return c.extent(d), nil
}

// extent is the unchecked hot path shared by the derived operations.
func (c *Context) extent(d bitvec.Vector) bitvec.Vector {
	ext := bitvec.Full(c.nObjects)
	d.ForEach(func(a int) bool {
		ext.AndWith(c.cols[a])
		return ext.Any()
	})
	return ext
}

// Intent returns the attributes shared by every object of o: bit a is set
// iff o ⊆ extent(a). Intent(∅) is the full attribute set (the condition is
// vacuously true), which is the conventional top intent.
func (c *Context) Intent(o bitvec.Vector) (bitvec.Vector, error) {
	if c == nil {
		return bitvec.Vector{}, ErrNilContext
	}
	if err := c.checkObjects(o); err != nil {
		return bitvec.Vector{}, err
	}
	return c.intent(o), nil
}

func (c *Context) intent(o bitvec.Vector) bitvec.Vector {
	in := bitvec.New(c.nAttrs)
	for a, col := range c.cols {
		if o.Subset(col) {
			_ = in.Set(a)
		}
	}
	return in
}

// Closure returns Intent(Extent(d)), the smallest intent containing d.
// The operator is extensive, monotone and idempotent; every algorithm in
// this module leans on those three properties.
func (c *Context) Closure(d bitvec.Vector) (bitvec.Vector, error) {
	if c == nil {
		return bitvec.Vector{}, ErrNilContext
	}
	if err := c.checkDescription(d); err != nil {
		return bitvec.Vector{}, err
	}
	return c.intent(c.extent(d)), nil
}

// BottomIntent returns Closure(∅): the attributes common to every object.
func (c *Context) BottomIntent() (bitvec.Vector, error) {
	if c == nil {
		return bitvec.Vector{}, ErrNilContext
	}
	return c.intent(c.extent(bitvec.New(c.nAttrs))), nil
}

// Support returns the number of objects described by d.
func (c *Context) Support(d bitvec.Vector) (int, error) {
	ext, err := c.Extent(d)
	if err != nil {
		return 0, err
	}
	return ext.Count(), nil
}

// Coverage returns the size of the UNION of the extents of d's attributes.
// This is the broad-clustering measure: unlike Extent it grows with d,
// making it monotone w.r.t. inclusion. Coverage(∅) is 0.
func (c *Context) Coverage(d bitvec.Vector) (int, error) {
	if c == nil {
		return 0, ErrNilContext
	}
	if err := c.checkDescription(d); err != nil {
		return 0, err
	}
	return c.coverage(d), nil
}

func (c *Context) coverage(d bitvec.Vector) int {
	u := bitvec.New(c.nObjects)
	d.ForEach(func(a int) bool {
		u.OrWith(c.cols[a])
		return true
	})
	return u.Count()
}

// DeltaStability returns the minimum support lost by extending d with any
// single attribute outside it: support(d) − max over a∉d of support(d∪{a}).
// For the full attribute set there is nothing to extend with and the result
// is support(d) itself (0 for the usual empty-extent top intent).
func (c *Context) DeltaStability(d bitvec.Vector) (int, error) {
	if c == nil {
		return 0, ErrNilContext
	}
	if err := c.checkDescription(d); err != nil {
		return 0, err
	}
	ext := c.extent(d)
	supp := ext.Count()
	maxSub, found := -1, false
	for a, col := range c.cols {
		if d.Test(a) {
			continue
		}
		found = true
		if s := ext.And(col).Count(); s > maxSub {
			maxSub = s
		}
	}
	if !found {
		return supp, nil
	}
	return supp - maxSub, nil
}
