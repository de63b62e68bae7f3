package rewrite

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/cost"
	"github.com/lexiform/algex/internal/smodel"
)

// Div reduces one adjacent "L / R" triple within an unreduced run, for two
// shapes: exact integer division of two numbers, or the same named
// variable raised to two powers (producing a smaller power, the plain
// number 1 when the powers match, or "1 / v^d" when the divisor's power is
// the larger one).
type Div struct{}

func (Div) Name() string { return "div" }

func (Div) Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error) {
	slots := splitAdditive(m.Refs)
	var cands []candidate

	for si, slot := range slots {
		for pos := 0; pos+2 < len(slot); pos++ {
			op := slot[pos+1]
			if op.Type != aref.Op || op.Symbol != "/" {
				continue
			}
			l, r := slot[pos], slot[pos+2]

			result, localCost, label, ok, err := foldDiv(cache, cfg, l, r)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			newSlot := spliceTriple(slot, pos, result)
			newSlots := cloneSlots(slots)
			newSlots[si] = newSlot
			refs := joinAdditive(newSlots)
			cands = append(cands, candidate{
				model: smodel.NewChild(m, label, refs, localCost, cfg),
				cost:  localCost,
			})
		}
	}

	return sortAndCollect(cands), nil
}

func foldDiv(cache *aref.Cache, cfg *config.Config, l, r *aref.Ref) (*aref.Ref, int, string, bool, error) {
	if l.Type == aref.Number && r.Type == aref.Number {
		lv, _ := l.Value()
		rv, _ := r.Value()
		if rv == 0 || lv%rv != 0 {
			return nil, 0, "", false, nil
		}
		localCost := cost.Div(cfg, lv, rv)
		composite, err := aref.NewComposite(cache, []*aref.Ref{l, aref.NewOp("/"), r},
			numberCompute(l, r, func(x, y int64) int64 { return x / y }))
		return composite, localCost, "divide_numbers", true, err
	}

	baseL, expL, okL := aref.AsVarPower(l)
	baseR, expR, okR := aref.AsVarPower(r)
	if okL && okR && baseL.Symbol == baseR.Symbol {
		newExp := expL - expR
		localCost := cfg.Get(config.DivCost)
		if newExp == 0 {
			return aref.NewNumber(1), localCost, "divide_same_var", true, nil
		}
		if newExp == 1 {
			return baseL, localCost, "divide_same_var", true, nil
		}
		if newExp < 0 {
			denom := baseL
			if newExp < -1 {
				var err error
				denom, err = aref.NewComposite(cache, []*aref.Ref{baseL, aref.NewOp("^"), aref.NewNumber(-newExp)}, nil)
				if err != nil {
					return nil, 0, "", false, err
				}
			}
			composite, err := aref.NewComposite(cache, []*aref.Ref{aref.NewNumber(1), aref.NewOp("/"), denom}, nil)
			return composite, localCost, "divide_same_var", true, err
		}
		composite, err := aref.NewComposite(cache, []*aref.Ref{baseL, aref.NewOp("^"), aref.NewNumber(newExp)}, nil)
		return composite, localCost, "divide_same_var", true, err
	}

	return nil, 0, "", false, nil
}
