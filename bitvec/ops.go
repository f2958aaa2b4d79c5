package bitvec

import (
	"fmt"
	"math/bits"
)

// sameWidth panics when two operands disagree on width. Binary set algebra is
// the hot path of every mining loop; width mismatches are programmer errors
// and must be caught at the package boundary, not per word.
func sameWidth(a, b Vector) {
	if a.width != b.width {
		panic(fmt.Sprintf("bitvec: width mismatch (%d vs %d)", a.width, b.width))
	}
}

// And returns a new vector holding the intersection of v and o.
func (v Vector) And(o Vector) Vector {
	sameWidth(v, o)
	r := New(v.width)
	for i := range r.words {
		r.words[i] = v.words[i] & o.words[i]
	}
	return r
}

// Or returns a new vector holding the union of v and o.
func (v Vector) Or(o Vector) Vector {
	sameWidth(v, o)
	r := New(v.width)
	for i := range r.words {
		r.words[i] = v.words[i] | o.words[i]
	}
	return r
}

// AndNot returns a new vector holding the set difference v \ o.
func (v Vector) AndNot(o Vector) Vector {
	sameWidth(v, o)
	r := New(v.width)
	for i := range r.words {
		r.words[i] = v.words[i] &^ o.words[i]
	}
	return r
}

// Not returns the complement of v within [0, width).
func (v Vector) Not() Vector {
	r := New(v.width)
	for i := range r.words {
		r.words[i] = ^v.words[i]
	}
	r.trim()
	return r
}

// AndWith intersects o into v in place.
func (v Vector) AndWith(o Vector) {
	sameWidth(v, o)
	for i := range v.words {
		v.words[i] &= o.words[i]
	}
}

// OrWith unions o into v in place.
func (v Vector) OrWith(o Vector) {
	sameWidth(v, o)
	for i := range v.words {
		v.words[i] |= o.words[i]
	}
}

// AndNotWith removes o from v in place.
func (v Vector) AndNotWith(o Vector) {
	sameWidth(v, o)
	for i := range v.words {
		v.words[i] &^= o.words[i]
	}
}

// Equal reports whether v and o hold the same bits. Vectors of different
// widths are never equal.
func (v Vector) Equal(o Vector) bool {
	if v.width != o.width {
		return false
	}
	for i := range v.words {
		if v.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Subset reports whether v ⊆ o.
func (v Vector) Subset(o Vector) bool {
	sameWidth(v, o)
	for i := range v.words {
		if v.words[i]&^o.words[i] != 0 {
			return false
		}
	}
	return true
}

// ProperSubset reports whether v ⊊ o.
func (v Vector) ProperSubset(o Vector) bool {
	return v.Subset(o) && !v.Equal(o)
}

// Intersects reports whether v and o share at least one bit.
func (v Vector) Intersects(o Vector) bool {
	sameWidth(v, o)
	for i := range v.words {
		if v.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// NextSet returns the smallest set bit index ≥ from, or (-1, false) when
// no such bit exists.
func (v Vector) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= v.width {
		return -1, false
	}
	wi := from / wordBits
	w := v.words[wi] >> uint(from%wordBits)
	if w != 0 {
		return from + bits.TrailingZeros64(w), true
	}
	for wi++; wi < len(v.words); wi++ {
		if v.words[wi] != 0 {
			return wi*wordBits + bits.TrailingZeros64(v.words[wi]), true
		}
	}
	return -1, false
}

// ForEach calls fn for each set bit in ascending order. Iteration stops early
// when fn returns false.
func (v Vector) ForEach(fn func(i int) bool) {
	for wi, w := range v.words {
		for w != 0 {
			i := wi*wordBits + bits.TrailingZeros64(w)
			if !fn(i) {
				return
			}
			w &= w - 1
		}
	}
}

// Indices returns the set bits in ascending order.
func (v Vector) Indices() []int {
	out := make([]int, 0, v.Count())
	v.ForEach(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// EqualBelow reports whether v and o agree on every bit strictly below limit.
// It is the word-parallel prefix test behind closure-canonicity checks.
func (v Vector) EqualBelow(o Vector, limit int) bool {
	sameWidth(v, o)
	if limit <= 0 {
		return true
	}
	if limit > v.width {
		limit = v.width
	}
	full := limit / wordBits
	for i := 0; i < full; i++ {
		if v.words[i] != o.words[i] {
			return false
		}
	}
	if r := limit % wordBits; r != 0 {
		mask := (uint64(1) << uint(r)) - 1
		if (v.words[full]^o.words[full])&mask != 0 {
			return false
		}
	}
	return true
}

// Compare orders vectors of equal width by their ascending index sequences
// (the order used by canonical traversals and topological tie-breaks):
// the vector owning the lowest differing bit sorts first. Returns -1, 0 or 1.
func (v Vector) Compare(o Vector) int {
	sameWidth(v, o)
	for i := range v.words {
		if d := v.words[i] ^ o.words[i]; d != 0 {
			low := uint64(1) << uint(bits.TrailingZeros64(d))
			if v.words[i]&low != 0 {
				return -1
			}
			return 1
		}
	}
	return 0
}
