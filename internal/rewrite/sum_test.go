package rewrite

import (
	"testing"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/smodel"
)

func newRootModel(refs []*aref.Ref, cfg *config.Config) *smodel.Model {
	return smodel.NewRoot(refs, cfg)
}

func resolveAll(refs []*aref.Ref) {
	for _, r := range refs {
		if r.Type == aref.Composite && r.Compute != nil && !r.Resolved() {
			for _, ch := range r.Children {
				if ch.Type == aref.Composite {
					resolveAll([]*aref.Ref{ch})
				}
			}
			if v, ok := r.Compute(); ok {
				r.Resolve(v)
			}
		}
	}
}

func TestSumCombinesTwoNumbers(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	refs := []*aref.Ref{aref.NewNumber(3), aref.NewOp("+"), aref.NewNumber(4)}
	m := newRootModel(refs, cfg)

	successors, err := Sum{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 1 {
		t.Fatalf("len(successors) = %d, want 1", len(successors))
	}
	if len(successors[0].Refs) != 1 {
		t.Fatalf("successor refs = %v, want a single collapsed composite", successors[0].Refs)
	}
	resolveAll(successors[0].Refs)
	v, ok := successors[0].Refs[0].Value()
	if !ok || v != 7 {
		t.Fatalf("resolved value = (%d, %v), want (7, true)", v, ok)
	}
}

func TestSumCombinesMatchingVariables(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	x := aref.NewVariable("x")
	refs := []*aref.Ref{x, aref.NewOp("+"), x}
	m := newRootModel(refs, cfg)

	successors, err := Sum{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 1 {
		t.Fatalf("len(successors) = %d, want 1", len(successors))
	}
	result := successors[0].Refs[0]
	coeff, base, ok := aref.VarProfile(result)
	if !ok || coeff != 2 || base.Symbol != "x" {
		t.Fatalf("x+x should combine to 2*x, got coeff=%d base=%v ok=%v", coeff, base, ok)
	}
}

func TestSumCancelsOppositeCoefficients(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	x := aref.NewVariable("x")
	negX, err := aref.NewComposite(cache, []*aref.Ref{aref.NewNumber(-1), aref.NewOp("*"), x}, nil)
	if err != nil {
		t.Fatal(err)
	}
	refs := []*aref.Ref{x, aref.NewOp("+"), negX}
	m := newRootModel(refs, cfg)

	successors, err := Sum{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 1 {
		t.Fatalf("len(successors) = %d, want 1", len(successors))
	}
	result := successors[0].Refs[0]
	if result.Type != aref.Number {
		t.Fatalf("x + (-1*x) should reduce to the number 0, got %v", result)
	}
	v, _ := result.Value()
	if v != 0 {
		t.Fatalf("result value = %d, want 0", v)
	}
}

func TestSumIgnoresUnreducedSlots(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	x, y := aref.NewVariable("x"), aref.NewVariable("y")
	// "x * y + 3" -- the first slot has two terms and one operator, so Sum
	// must not try to pair across it.
	refs := []*aref.Ref{x, aref.NewOp("*"), y, aref.NewOp("+"), aref.NewNumber(3)}
	m := newRootModel(refs, cfg)

	successors, err := Sum{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 0 {
		t.Fatalf("len(successors) = %d, want 0 (no singleton pair exists)", len(successors))
	}
}

func TestSumSortsByAscendingCost(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	// Three numeric slots: pairing the 0 with either other number is
	// cheapest, pairing the two large numbers is the most expensive.
	refs := []*aref.Ref{
		aref.NewNumber(0), aref.NewOp("+"),
		aref.NewNumber(500), aref.NewOp("+"),
		aref.NewNumber(900),
	}
	m := newRootModel(refs, cfg)

	successors, err := Sum{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) < 2 {
		t.Fatalf("expected multiple candidate pairings, got %d", len(successors))
	}
	for i := 1; i < len(successors); i++ {
		prevLocal := successors[i-1].TotalApproxCost - m.TotalApproxCost
		curLocal := successors[i].TotalApproxCost - m.TotalApproxCost
		if curLocal < prevLocal {
			t.Fatalf("successors not sorted by ascending local cost at index %d: %d then %d", i, prevLocal, curLocal)
		}
	}
}
