package bitvec

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Sentinel errors for the checked Vector surface.
var (
	// ErrOutOfRange is returned when a bit index lies outside [0, width).
	ErrOutOfRange = errors.New("bitvec: bit index out of range")

	// ErrBadWidth is returned when a non-positive width is requested.
	ErrBadWidth = errors.New("bitvec: width must be positive")
)

const wordBits = 64

// Vector is a fixed-width bit vector over packed uint64 words.
// The zero value is unusable; construct with New, Full or FromIndices.
type Vector struct {
	words []uint64
	width int
}

// New returns an all-zero vector of the given width.
// Width must be positive; New panics otherwise (use FromIndices for a
// checked constructor).
func New(width int) Vector {
	if width <= 0 {
		panic(ErrBadWidth)
	}
	return Vector{words: make([]uint64, (width+wordBits-1)/wordBits), width: width}
}

// Full returns a vector of the given width with every bit set.
func Full(width int) Vector {
	v := New(width)
	for i := range v.words {
		v.words[i] = ^uint64(0)
	}
	v.trim()
	return v
}

// FromIndices returns a vector of the given width with exactly the listed
// bits set. It fails with ErrBadWidth for non-positive widths and with
// ErrOutOfRange for indices outside [0, width).
func FromIndices(width int, indices ...int) (Vector, error) {
	if width <= 0 {
		return Vector{}, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	v := New(width)
	for _, i := range indices {
		if i < 0 || i >= width {
			return Vector{}, fmt.Errorf("%w: %d (width %d)", ErrOutOfRange, i, width)
		}
		v.words[i/wordBits] |= 1 << uint(i%wordBits)
	}
	return v, nil
}

// trim clears the unused high bits of the last word so that word-wise
// comparisons and popcounts stay exact.
func (v *Vector) trim() {
	if r := v.width % wordBits; r != 0 {
		v.words[len(v.words)-1] &= (1 << uint(r)) - 1
	}
}

// Width returns the universe size of the vector.
func (v Vector) Width() int { return v.width }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	c := Vector{words: make([]uint64, len(v.words)), width: v.width}
	copy(c.words, v.words)
	return c
}

// Set turns bit i on. Returns ErrOutOfRange if i is outside [0, width).
func (v Vector) Set(i int) error {
	if i < 0 || i >= v.width {
		return fmt.Errorf("%w: %d (width %d)", ErrOutOfRange, i, v.width)
	}
	v.words[i/wordBits] |= 1 << uint(i%wordBits)
	return nil
}

// Clear turns bit i off. Returns ErrOutOfRange if i is outside [0, width).
func (v Vector) Clear(i int) error {
	if i < 0 || i >= v.width {
		return fmt.Errorf("%w: %d (width %d)", ErrOutOfRange, i, v.width)
	}
	v.words[i/wordBits] &^= 1 << uint(i%wordBits)
	return nil
}

// Test reports whether bit i is set. Out-of-range indices report false.
func (v Vector) Test(i int) bool {
	if i < 0 || i >= v.width {
		return false
	}
	return v.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Count returns the number of set bits (the cardinality of the subset).
func (v Vector) Count() int {
	c := 0
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Any reports whether at least one bit is set.
func (v Vector) Any() bool {
	for _, w := range v.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (v Vector) None() bool { return !v.Any() }

// All reports whether every bit in [0, width) is set.
func (v Vector) All() bool { return v.Count() == v.width }

// Key returns a compact string usable as a map key. Two vectors of the same
// width have equal keys iff they are equal.
func (v Vector) Key() string {
	var sb strings.Builder
	sb.Grow(len(v.words) * 8)
	for _, w := range v.words {
		for s := 0; s < wordBits; s += 8 {
			sb.WriteByte(byte(w >> uint(s)))
		}
	}
	return sb.String()
}

// String renders the vector as a set of indices, e.g. "{0, 3, 5}".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	v.ForEach(func(i int) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(i))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
