package rewrite

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/smodel"
)

// SubToAdd rewrites "... - n ..." into "... + (-n) ..." wherever a binary
// minus with a numeric right operand survives at the top level. Parse-time
// normalization (§4.1) means none of this package's own generators ever
// reintroduce such a minus, but a rewrite arriving from outside this
// package (or a hand-built Model in a test) may still carry one, and the
// search must be able to clean it up to preserve idempotence.
type SubToAdd struct{}

func (SubToAdd) Name() string { return "sub_to_add" }

func (SubToAdd) Expand(m *smodel.Model, cache *aref.Cache, cfg *config.Config) ([]*smodel.Model, error) {
	localCost := cfg.Get(config.SubToAddCost)
	var cands []candidate

	for k := 1; k+1 < len(m.Refs); k++ {
		op := m.Refs[k]
		if op.Type != aref.Op || op.Symbol != "-" {
			continue
		}
		right := m.Refs[k+1]
		if right.Type != aref.Number {
			continue
		}
		v, _ := right.Value()
		refs := append([]*aref.Ref{}, m.Refs...)
		refs[k] = aref.NewOp("+")
		refs[k+1] = aref.NewNumber(-v)
		cands = append(cands, candidate{
			model: smodel.NewChild(m, "sub_to_add", refs, localCost, cfg),
			cost:  localCost,
		})
	}

	return sortAndCollect(cands), nil
}
