package mine

import (
	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
	"github.com/lbrehon/galois/implications"
	"github.com/lbrehon/galois/intents"
	"github.com/lbrehon/galois/keys"
	"github.com/lbrehon/galois/order"
)

// ConceptRow is one formal concept with its derived characteristics.
type ConceptRow struct {
	Intent         bitvec.Vector
	Extent         bitvec.Vector
	Support        int
	DeltaStability int
	Keys           []bitvec.Vector
	Passkeys       []bitvec.Vector
	ProperPremises []bitvec.Vector
	PseudoIntents  []bitvec.Vector
}

// ImplicationRow is one rule of a mined basis. Full is the complete closure
// of the premise; Conclusion is the reduced part the rest of the basis
// cannot infer. Extent and Support describe the premise.
type ImplicationRow struct {
	Premise    bitvec.Vector
	Conclusion bitvec.Vector
	Full       bitvec.Vector
	Extent     bitvec.Vector
	Support    int
}

// DescriptionRow is one attribute subset with its class-membership flags.
type DescriptionRow struct {
	Description     bitvec.Vector
	Extent          bitvec.Vector
	Intent          bitvec.Vector
	Support         int
	DeltaStability  int
	IsClosed        bool
	IsKey           bool
	IsPasskey       bool
	IsProperPremise bool
	IsPseudoIntent  bool
}

// pipeline carries the shared intermediate results of the front ends.
type pipeline struct {
	ints     []bitvec.Vector
	ks       []keys.Key
	premises []keys.Key // proper premises
	pintents []keys.Key // pseudo-intents, only when requested
}

func runPipeline(fctx *core.Context, o Options, needPseudo bool) (*pipeline, error) {
	all, err := intents.All(fctx, intents.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	sorted, _ := order.TopologicalSort(all)
	ks, err := keys.List(sorted)
	if err != nil {
		return nil, err
	}
	premises, err := implications.ProperPremises(sorted, ks)
	if err != nil {
		return nil, err
	}
	p := &pipeline{ints: sorted, ks: ks, premises: premises}
	if needPseudo {
		p.pintents, err = implications.PseudoIntents(sorted, premises)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MinSupport < 0 {
		return o, ErrInvalidThreshold
	}
	return o, nil
}

// Concepts mines the whole concept lattice: one row per intent in ascending
// cardinality order. Pseudo-intents are filled only with WithPseudoIntents.
// WithMinSupport filters the returned rows, not the computation.
func Concepts(fctx *core.Context, opts ...Option) ([]ConceptRow, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	p, err := runPipeline(fctx, o, o.PseudoIntents)
	if err != nil {
		return nil, err
	}

	keyGroups := keys.GroupByIntent(p.ks, len(p.ints))
	passkeys, err := keys.ListPasskeys(p.ints)
	if err != nil {
		return nil, err
	}
	passkeyGroups := keys.GroupByIntent(passkeys, len(p.ints))
	premiseGroups := keys.GroupByIntent(p.premises, len(p.ints))
	var pintentGroups [][]bitvec.Vector
	if o.PseudoIntents {
		pintentGroups = keys.GroupByIntent(p.pintents, len(p.ints))
	}

	rows := make([]ConceptRow, 0, len(p.ints))
	for i, intent := range p.ints {
		ext, err := fctx.Extent(intent)
		if err != nil {
			return nil, err
		}
		supp := ext.Count()
		if supp < o.MinSupport {
			continue
		}
		stab, err := fctx.DeltaStability(intent)
		if err != nil {
			return nil, err
		}
		row := ConceptRow{
			Intent:         intent,
			Extent:         ext,
			Support:        supp,
			DeltaStability: stab,
			Keys:           keyGroups[i],
			Passkeys:       passkeyGroups[i],
			ProperPremises: premiseGroups[i],
		}
		if o.PseudoIntents {
			row.PseudoIntents = pintentGroups[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Implications mines the implication basis of the given kind. With
// WithUnitBasis every row concludes a single attribute. WithMinSupport
// filters rows by premise support.
func Implications(fctx *core.Context, kind implications.Kind, opts ...Option) ([]ImplicationRow, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	p, err := runPipeline(fctx, o, false)
	if err != nil {
		return nil, err
	}
	basis, err := implications.Build(kind, p.ints, p.ks)
	if err != nil {
		return nil, err
	}
	if o.Unit {
		basis = implications.UnitBasis(basis)
	}

	rows := make([]ImplicationRow, 0, len(basis))
	for _, im := range basis {
		ext, err := fctx.Extent(im.Premise)
		if err != nil {
			return nil, err
		}
		supp := ext.Count()
		if supp < o.MinSupport {
			continue
		}
		rows = append(rows, ImplicationRow{
			Premise:    im.Premise,
			Conclusion: im.Conclusion,
			Full:       p.ints[im.Intent],
			Extent:     ext,
			Support:    supp,
		})
	}
	return rows, nil
}

// Descriptions enumerates every attribute subset with its class flags, in
// ascending bit-pattern order. Refuses universes above MaxDescriptionAttrs;
// the table has 2^m rows.
func Descriptions(fctx *core.Context, opts ...Option) ([]DescriptionRow, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	m := fctx.Attributes()
	if m > MaxDescriptionAttrs {
		return nil, ErrTooManyAttributes
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	p, err := runPipeline(fctx, o, true)
	if err != nil {
		return nil, err
	}

	passkeys, err := keys.ListPasskeys(p.ints)
	if err != nil {
		return nil, err
	}
	keySet := memberSet(p.ks)
	passkeySet := memberSet(passkeys)
	premiseSet := memberSet(p.premises)
	pintentSet := memberSet(p.pintents)

	rows := make([]DescriptionRow, 0, 1<<uint(m))
	for mask := 0; mask < 1<<uint(m); mask++ {
		d := bitvec.New(m)
		for a := 0; a < m; a++ {
			if mask&(1<<uint(a)) != 0 {
				_ = d.Set(a)
			}
		}
		ext, err := fctx.Extent(d)
		if err != nil {
			return nil, err
		}
		supp := ext.Count()
		if supp < o.MinSupport {
			continue
		}
		in, err := fctx.Intent(ext)
		if err != nil {
			return nil, err
		}
		stab, err := fctx.DeltaStability(d)
		if err != nil {
			return nil, err
		}
		k := d.Key()
		rows = append(rows, DescriptionRow{
			Description:     d,
			Extent:          ext,
			Intent:          in,
			Support:         supp,
			DeltaStability:  stab,
			IsClosed:        in.Equal(d),
			IsKey:           keySet[k],
			IsPasskey:       passkeySet[k],
			IsProperPremise: premiseSet[k],
			IsPseudoIntent:  pintentSet[k],
		})
	}
	return rows, nil
}

func memberSet(ks []keys.Key) map[string]bool {
	out := make(map[string]bool, len(ks))
	for _, k := range ks {
		out[k.Description.Key()] = true
	}
	return out
}
