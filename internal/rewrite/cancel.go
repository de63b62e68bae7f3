package rewrite

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/smodel"
)

// Cancel finds a top-level "+T ... -T" pair -- two additive terms that are
// exact opposites -- and removes both outright, without constructing a
// composite or waiting on deferred compute.
type Cancel struct{}

func (Cancel) Name() string { return "cancel" }

func (Cancel) Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error) {
	slots := splitAdditive(m.Refs)
	var cands []candidate
	localCost := cfg.Get(config.CancelCost)

	for i := 0; i < len(slots); i++ {
		if len(slots[i]) != 1 {
			continue
		}
		keyA, coeffA, okA := signedProfile(slots[i][0])
		if !okA {
			continue
		}
		for j := i + 1; j < len(slots); j++ {
			if len(slots[j]) != 1 {
				continue
			}
			keyB, coeffB, okB := signedProfile(slots[j][0])
			if !okB || keyA != keyB || coeffA == 0 || coeffA != -coeffB {
				continue
			}
			newSlots := withoutSlots(slots, i, j, nil)
			var refs []*aref.Ref
			if len(newSlots) == 0 {
				refs = []*aref.Ref{aref.NewNumber(0)}
			} else {
				refs = joinAdditive(newSlots)
			}
			cands = append(cands, candidate{
				model: smodel.NewChild(m, "cancel", refs, localCost, cfg),
				cost:  localCost,
			})
		}
	}

	return sortAndCollect(cands), nil
}

// signedProfile extends VarProfile with a number case, so Cancel can treat
// "4" and "-4" the same way it treats "x" and "-1*x".
func signedProfile(r *aref.Ref) (key string, coeff int64, ok bool) {
	if r.Type == aref.Number {
		v, _ := r.Value()
		return "#", v, true
	}
	coeff, base, ok := aref.VarProfile(r)
	if !ok {
		return "", 0, false
	}
	return base.Symbol, coeff, true
}
