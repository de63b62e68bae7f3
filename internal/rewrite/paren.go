package rewrite

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/smodel"
)

// Parenthesis strips a parenthesized group that has reduced down to a
// single wrapped ref: a composite with exactly one child is, by
// construction, exactly that -- a grouping with nothing left to group.
type Parenthesis struct{}

func (Parenthesis) Name() string { return "parenthesis" }

func (Parenthesis) Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error) {
	localCost := cfg.Get(config.ParenElideCost)
	var cands []candidate

	for i, r := range m.Refs {
		if r.Type != aref.Composite || len(r.Children) != 1 {
			continue
		}
		refs := append([]*aref.Ref{}, m.Refs...)
		refs[i] = r.Children[0]
		cands = append(cands, candidate{
			model: smodel.NewChild(m, "elide_parenthesis", refs, localCost, cfg),
			cost:  localCost,
		})
	}

	return sortAndCollect(cands), nil
}
