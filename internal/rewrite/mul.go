package rewrite

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/cost"
	"github.com/lexiform/algex/internal/smodel"
)

// Mul reduces one adjacent "L * R" triple within an unreduced
// multiplicative run, for three shapes: two numbers, a number and a named
// variable (in either order), or the same named variable raised to two
// (possibly implicit) powers.
type Mul struct{}

func (Mul) Name() string { return "mul" }

func (Mul) Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error) {
	slots := splitAdditive(m.Refs)
	var cands []candidate

	for si, slot := range slots {
		for pos := 0; pos+2 < len(slot); pos++ {
			op := slot[pos+1]
			if op.Type != aref.Op || op.Symbol != "*" {
				continue
			}
			l, r := slot[pos], slot[pos+2]

			result, localCost, label, err := foldMul(cache, cfg, l, r)
			if err != nil {
				return nil, err
			}
			if result == nil {
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

// foldMul returns the composite/number that l*r reduces to, its local
// cost, and a transform label, or a nil result if l,r don't match any of
// Mul's three shapes.
func foldMul(cache *aref.Cache, cfg *config.Config, l, r *aref.Ref) (*aref.Ref, int, string, error) {
	if l.Type == aref.Number && r.Type == aref.Number {
		lv, _ := l.Value()
		rv, _ := r.Value()
		localCost := cost.Mul(cfg, lv, rv)
		composite, err := aref.NewComposite(cache, []*aref.Ref{l, aref.NewOp("*"), r},
			numberCompute(l, r, func(x, y int64) int64 { return x * y }))
		return composite, localCost, "multiply_numbers", err
	}

	if n, v, ok := coeffVarOperands(l, r); ok {
		composite, err := aref.NewComposite(cache, []*aref.Ref{aref.NewNumber(n), aref.NewOp("*"), v}, nil)
		return composite, cfg.Get(config.CoeffVarMul), "coeff_var_mul", err
	}

	baseL, expL, okL := aref.AsVarPower(l)
	baseR, expR, okR := aref.AsVarPower(r)
	if okL && okR && baseL.Symbol == baseR.Symbol {
		newExp := expL + expR
		if newExp == 1 {
			return baseL, cfg.Get(config.SameVarMul), "same_var_mul", nil
		}
		composite, err := aref.NewComposite(cache, []*aref.Ref{baseL, aref.NewOp("^"), aref.NewNumber(newExp)}, nil)
		return composite, cfg.Get(config.SameVarMul), "same_var_mul", err
	}

	return nil, 0, "", nil
}

// coeffVarOperands recognizes l,r as (number,variable) in either order.
func coeffVarOperands(l, r *aref.Ref) (coeff int64, v *aref.Ref, ok bool) {
	if l.Type == aref.Number && r.Type == aref.Variable {
		n, _ := l.Value()
		return n, r, true
	}
	if r.Type == aref.Number && l.Type == aref.Variable {
		n, _ := r.Value()
		return n, l, true
	}
	return 0, nil, false
}

// spliceTriple replaces slot[pos:pos+3] with a single result ref.
func spliceTriple(slot []*aref.Ref, pos int, result *aref.Ref) []*aref.Ref {
	out := make([]*aref.Ref, 0, len(slot)-2)
	out = append(out, slot[:pos]...)
	out = append(out, result)
	out = append(out, slot[pos+3:]...)
	return out
}
