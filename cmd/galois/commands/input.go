package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/contextio"
	"github.com/lbrehon/galois/core"
	"github.com/lbrehon/galois/internal/printer"
)

// loadContext reads a context file, picking the decoder by extension:
// .yml/.yaml for labelled YAML documents, .bal for packed bit-vector rows,
// anything else is treated as a whitespace-separated itemset file.
// Unlabelled formats get synthetic object_N / attribute_N names.
func loadContext(path string) (*contextio.Named, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return contextio.LoadYAML(path)
	case ".bal":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open context: %w", err)
		}
		defer f.Close()
		rows, err := contextio.LoadBal(f)
		if err != nil {
			return nil, err
		}
		fctx, err := core.FromRows(rows)
		if err != nil {
			return nil, err
		}
		return withSyntheticNames(fctx), nil
	default:
		fctx, err := contextio.LoadItemsets(path)
		if err != nil {
			return nil, err
		}
		return withSyntheticNames(fctx), nil
	}
}

func withSyntheticNames(fctx *core.Context) *contextio.Named {
	objects := make([]string, fctx.Objects())
	for i := range objects {
		objects[i] = fmt.Sprintf("object_%d", i)
	}
	attributes := make([]string, fctx.Attributes())
	for j := range attributes {
		attributes[j] = fmt.Sprintf("attribute_%d", j)
	}
	return &contextio.Named{Context: fctx, Objects: objects, Attributes: attributes}
}

// names verbalises a description, falling back to raw indices on width
// mismatch (which cannot happen for vectors produced from the same context).
func names(n *contextio.Named, d bitvec.Vector) []string {
	out, err := n.Verbalise(d)
	if err != nil {
		return []string{d.String()}
	}
	return out
}

func objectNames(n *contextio.Named, o bitvec.Vector) []string {
	out, err := n.VerbaliseObjects(o)
	if err != nil {
		return []string{o.String()}
	}
	return out
}

// formatSets renders a list of descriptions as "{a} {b, c}".
func formatSets(n *contextio.Named, ds []bitvec.Vector) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, printer.FormatSet(names(n, d)))
	}
	return strings.Join(parts, " ")
}

// contextioThreshold resolves a possibly fractional CLI threshold.
func contextioThreshold(v float64, total int) int {
	return contextio.AbsoluteThreshold(v, total)
}
