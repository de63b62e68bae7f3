package rewrite

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/smodel"
)

// Cleanup performs purely cosmetic normalizations that never change value:
// dropping a stray leading "+", collapsing a double negation
// (-1 * (-1 * T)) down to T, and folding a leading "- n" (numeric) into a
// single negative number ref.
type Cleanup struct{}

func (Cleanup) Name() string { return "cleanup" }

func (Cleanup) Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error) {
	localCost := cfg.Get(config.CleanupCost)
	var cands []candidate

	if len(m.Refs) > 0 && m.Refs[0].Type == aref.Op && m.Refs[0].Symbol == "+" {
		refs := append([]*aref.Ref{}, m.Refs[1:]...)
		cands = append(cands, candidate{
			model: smodel.NewChild(m, "drop_leading_plus", refs, localCost, cfg),
			cost:  localCost,
		})
	}

	for i, r := range m.Refs {
		if r.Type != aref.Composite {
			continue
		}
		if inner, ok := aref.AsNegation(r); ok {
			if innerInner, ok := aref.AsNegation(inner); ok {
				refs := append([]*aref.Ref{}, m.Refs...)
				refs[i] = innerInner
				cands = append(cands, candidate{
					model: smodel.NewChild(m, "double_negative", refs, localCost, cfg),
					cost:  localCost,
				})
			}
		}
	}

	if len(m.Refs) >= 2 && m.Refs[0].Type == aref.Op && m.Refs[0].Symbol == "-" && m.Refs[1].Type == aref.Number {
		v, _ := m.Refs[1].Value()
		refs := append([]*aref.Ref{aref.NewNumber(-v)}, m.Refs[2:]...)
		cands = append(cands, candidate{
			model: smodel.NewChild(m, "fold_leading_negative", refs, localCost, cfg),
			cost:  localCost,
		})
	}

	return sortAndCollect(cands), nil
}
