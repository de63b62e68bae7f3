// Package rewrite implements the seven rewrite generators (component 6):
// each one inspects a Model's current ref sequence for a specific pattern
// and, for every match, yields a successor Model carrying a local cost.
//
// Every generator's Expand returns its successors already sorted by
// non-decreasing local cost, per the generator protocol; the caller (the
// action multiplexer, package mux) merges across generators.
package rewrite

import (
	"sort"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/smodel"
)

// Generator expands one Model into its successors under one rewrite
// family.
type Generator interface {
	Name() string
	Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error)
}

// All returns the seven generators in a fixed, deterministic order. The
// order matters only for tie-breaking when the driver needs a stable
// insertion sequence; it carries no priority meaning on its own.
func All() []Generator {
	return []Generator{
		Sum{},
		Mul{},
		Div{},
		Cancel{},
		Cleanup{},
		SubToAdd{},
		Parenthesis{},
	}
}

// candidate pairs a successor Model with the local cost it was built with,
// purely so generators can sort before discarding the cost field (the cost
// is already baked into Model.TotalApproxCost).
type candidate struct {
	model *smodel.Model
	cost  int
}

func sortAndCollect(cands []candidate) []*smodel.Model {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].cost < cands[j].cost })
	out := make([]*smodel.Model, len(cands))
	for i, c := range cands {
		out[i] = c.model
	}
	return out
}

// splitAdditive segments a top-level ref sequence at its "+" separators.
// Because subtraction is eliminated at parse time (§4.1) and no generator
// in this package reintroduces a bare "-" at the additive level, "+" is the
// only separator that can appear between slots; a slot with more than one
// element is an unreduced multiplicative run awaiting Mul/Div.
func splitAdditive(refs []*aref.Ref) [][]*aref.Ref {
	var slots [][]*aref.Ref
	cur := []*aref.Ref{}
	for _, r := range refs {
		if r.Type == aref.Op && r.Symbol == "+" {
			slots = append(slots, cur)
			cur = []*aref.Ref{}
			continue
		}
		cur = append(cur, r)
	}
	slots = append(slots, cur)
	return slots
}

// joinAdditive is splitAdditive's inverse.
func joinAdditive(slots [][]*aref.Ref) []*aref.Ref {
	var out []*aref.Ref
	for i, slot := range slots {
		if i > 0 {
			out = append(out, aref.NewOp("+"))
		}
		out = append(out, slot...)
	}
	return out
}

func cloneSlots(slots [][]*aref.Ref) [][]*aref.Ref {
	out := make([][]*aref.Ref, len(slots))
	copy(out, slots)
	return out
}

// withoutSlots returns slots with indices i and j (i<j) removed and
// replacement set where i was, so the merged term keeps the position of
// the earlier of the two slots it replaces instead of jumping to the end.
// This keeps repeated merges stable relative to terms nothing ever
// touches: a term's position only moves if that term itself gets merged.
func withoutSlots(slots [][]*aref.Ref, i, j int, replacement []*aref.Ref) [][]*aref.Ref {
	out := make([][]*aref.Ref, 0, len(slots)-1)
	for k, s := range slots {
		if k == j {
			continue
		}
		if k == i {
			if replacement != nil {
				out = append(out, replacement)
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

func numberCompute(a, b *aref.Ref, combine func(x, y int64) int64) aref.ComputeFn {
	return func() (int64, bool) {
		av, aok := a.Value()
		bv, bok := b.Value()
		if !aok || !bok {
			return 0, false
		}
		return combine(av, bv), true
	}
}
