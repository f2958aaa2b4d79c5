package contextio

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
)

// Sentinel errors for context conversion.
var (
	// ErrEmptyInput is returned when a conversion receives no objects.
	ErrEmptyInput = errors.New("contextio: no objects in input")

	// ErrRaggedRows is returned when boolean rows disagree on length.
	ErrRaggedRows = errors.New("contextio: rows have differing lengths")

	// ErrUnknownAttribute is returned when a description references an
	// attribute absent from the declared attribute list.
	ErrUnknownAttribute = errors.New("contextio: unknown attribute")

	// ErrBadFormat is returned for malformed .bal, YAML or itemset input.
	ErrBadFormat = errors.New("contextio: malformed input")
)

// FromItemsets builds a context from per-object attribute-index sets. A
// non-positive width is derived as one past the largest index seen.
func FromItemsets(itemsets [][]int, width int) (*core.Context, error) {
	if len(itemsets) == 0 {
		return nil, ErrEmptyInput
	}
	if width <= 0 {
		for _, set := range itemsets {
			for _, a := range set {
				if a+1 > width {
					width = a + 1
				}
			}
		}
		if width == 0 {
			return nil, fmt.Errorf("%w: no attributes and no explicit width", ErrEmptyInput)
		}
	}
	rows := make([]bitvec.Vector, len(itemsets))
	for o, set := range itemsets {
		v, err := bitvec.FromIndices(width, set...)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", o, err)
		}
		rows[o] = v
	}
	return core.FromRows(rows)
}

// FromBools builds a context from a dense boolean matrix, one row per object.
func FromBools(matrix [][]bool) (*core.Context, error) {
	if len(matrix) == 0 {
		return nil, ErrEmptyInput
	}
	width := len(matrix[0])
	rows := make([]bitvec.Vector, len(matrix))
	for o, boolRow := range matrix {
		if len(boolRow) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, o, len(boolRow), width)
		}
		v := bitvec.New(width)
		for a, set := range boolRow {
			if set {
				_ = v.Set(a)
			}
		}
		rows[o] = v
	}
	return core.FromRows(rows)
}

// Named couples a context with its object and attribute labels.
type Named struct {
	Context    *core.Context
	Objects    []string
	Attributes []string
}

// FromDict builds a labelled context from object-name to attribute-name
// descriptions. Objects and attributes are indexed in sorted name order so
// the encoding is reproducible across runs.
func FromDict(descriptions map[string][]string) (*Named, error) {
	if len(descriptions) == 0 {
		return nil, ErrEmptyInput
	}
	objects := sortedKeys(descriptions)

	attrSet := map[string]bool{}
	for _, attrs := range descriptions {
		for _, a := range attrs {
			attrSet[a] = true
		}
	}
	attributes := make([]string, 0, len(attrSet))
	for a := range attrSet {
		attributes = append(attributes, a)
	}
	sort.Strings(attributes)

	return fromLabelled(descriptions, objects, attributes)
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// fromLabelled encodes descriptions against fixed object and attribute
// orders. Attributes outside the declared list are rejected.
func fromLabelled(descriptions map[string][]string, objects, attributes []string) (*Named, error) {
	attrIdx := make(map[string]int, len(attributes))
	for i, a := range attributes {
		attrIdx[a] = i
	}

	rows := make([]bitvec.Vector, len(objects))
	for o, name := range objects {
		v := bitvec.New(len(attributes))
		for _, a := range descriptions[name] {
			i, ok := attrIdx[a]
			if !ok {
				return nil, fmt.Errorf("%w: %q in object %q", ErrUnknownAttribute, a, name)
			}
			_ = v.Set(i)
		}
		rows[o] = v
	}
	fctx, err := core.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return &Named{Context: fctx, Objects: objects, Attributes: attributes}, nil
}

// Verbalise maps a description's bit indices back to attribute names.
func (n *Named) Verbalise(d bitvec.Vector) ([]string, error) {
	if d.Width() != len(n.Attributes) {
		return nil, fmt.Errorf("%w: description width %d, %d attributes", ErrBadFormat, d.Width(), len(n.Attributes))
	}
	out := make([]string, 0, d.Count())
	d.ForEach(func(a int) bool {
		out = append(out, n.Attributes[a])
		return true
	})
	return out, nil
}

// VerbaliseObjects maps an extent's bit indices back to object names.
func (n *Named) VerbaliseObjects(o bitvec.Vector) ([]string, error) {
	if o.Width() != len(n.Objects) {
		return nil, fmt.Errorf("%w: extent width %d, %d objects", ErrBadFormat, o.Width(), len(n.Objects))
	}
	out := make([]string, 0, o.Count())
	o.ForEach(func(i int) bool {
		out = append(out, n.Objects[i])
		return true
	})
	return out, nil
}

// AbsoluteThreshold resolves a threshold that may be a fraction of the
// total: values in [0, 1] are scaled by total and truncated, anything above
// is used as an absolute count.
func AbsoluteThreshold(v float64, total int) int {
	if 0 <= v && v <= 1 {
		return int(v * float64(total))
	}
	return int(v)
}
