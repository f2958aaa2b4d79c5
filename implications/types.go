package implications

import (
	"errors"

	"github.com/lbrehon/galois/bitvec"
)

// Sentinel errors for basis construction.
var (
	// ErrNoIntents is returned for an empty intent list.
	ErrNoIntents = errors.New("implications: intent list is empty")

	// ErrNotSorted is returned when the intent list is not in ascending
	// cardinality order.
	ErrNotSorted = errors.New("implications: intents must be sorted by ascending cardinality")

	// ErrUnknownKind is returned for a Kind value outside the defined set.
	ErrUnknownKind = errors.New("implications: unknown basis kind")
)

// Kind selects which implication basis Build produces.
type Kind int

const (
	// CanonicalDirect is the proper-premise (Karell) basis: saturation with it
	// needs a single pass per premise.
	CanonicalDirect Kind = iota

	// Canonical is the Duquenne-Guigues basis over pseudo-intents: the
	// smallest sound and complete basis.
	Canonical
)

// String names the basis kind for logs and CLI output.
func (k Kind) String() string {
	switch k {
	case CanonicalDirect:
		return "canonical-direct"
	case Canonical:
		return "canonical"
	default:
		return "unknown"
	}
}

// Implication is one rule of a basis. Premise implies Conclusion; Intent
// indexes the premise's full closure in the intent list the basis was built
// from, so Premise ∪ Conclusion ⊆ intents[Intent] always holds.
type Implication struct {
	Premise    bitvec.Vector
	Conclusion bitvec.Vector
	Intent     int
}
