package rewrite

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/cost"
	"github.com/lexiform/algex/internal/smodel"
)

// Sum merges pairs of fully-reduced additive terms: two numbers, or two
// terms that name the same variable (a bare variable, a
// coefficient-variable composite, or any other opaque term appearing
// identically twice).
type Sum struct{}

func (Sum) Name() string { return "sum" }

func (Sum) Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error) {
	slots := splitAdditive(m.Refs)
	var cands []candidate

	for i := 0; i < len(slots); i++ {
		if len(slots[i]) != 1 {
			continue
		}
		a := slots[i][0]
		for j := i + 1; j < len(slots); j++ {
			if len(slots[j]) != 1 {
				continue
			}
			b := slots[j][0]

			if a.Type == aref.Number && b.Type == aref.Number {
				av, _ := a.Value()
				bv, _ := b.Value()
				localCost := cost.Add(cfg, av, bv)
				composite, err := aref.NewComposite(cache, []*aref.Ref{a, aref.NewOp("+"), b},
					numberCompute(a, b, func(x, y int64) int64 { return x + y }))
				if err != nil {
					return nil, err
				}
				cands = append(cands, buildCand(m, slots, i, j, composite, localCost, cfg, "add_numbers"))
				continue
			}

			coeffA, baseA, okA := aref.VarProfile(a)
			coeffB, baseB, okB := aref.VarProfile(b)
			if !okA || !okB || baseA.Symbol != baseB.Symbol {
				continue
			}
			newCoeff := coeffA + coeffB
			if newCoeff == 0 {
				result := aref.NewNumber(0)
				cands = append(cands, buildCand(m, slots, i, j, result, cfg.Get(config.VarCancelReward), cfg, "cancel_to_zero"))
				continue
			}
			if newCoeff == 1 {
				cands = append(cands, buildCand(m, slots, i, j, baseA, cfg.Get(config.VarCombine), cfg, "combine"))
				continue
			}
			composite, err := aref.NewComposite(cache, []*aref.Ref{aref.NewNumber(newCoeff), aref.NewOp("*"), baseA}, nil)
			if err != nil {
				return nil, err
			}
			cands = append(cands, buildCand(m, slots, i, j, composite, cfg.Get(config.VarCombine), cfg, "combine"))
		}
	}

	return sortAndCollect(cands), nil
}

func buildCand(m *smodel.Model, slots [][]*aref.Ref, i, j int, result *aref.Ref, localCost int, cfg *config.Config, label string) candidate {
	newSlots := withoutSlots(slots, i, j, []*aref.Ref{result})
	refs := joinAdditive(newSlots)
	return candidate{
		model: smodel.NewChild(m, label, refs, localCost, cfg),
		cost:  localCost,
	}
}
