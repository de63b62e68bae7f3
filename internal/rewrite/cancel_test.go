package rewrite

import (
	"testing"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
)

func TestCancelOppositeNumbers(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	refs := []*aref.Ref{aref.NewNumber(5), aref.NewOp("+"), aref.NewNumber(-5)}
	m := newRootModel(refs, cfg)

	successors, err := Cancel{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 1 {
		t.Fatalf("len(successors) = %d, want 1", len(successors))
	}
	if len(successors[0].Refs) != 1 {
		t.Fatalf("successor refs = %v, want a single 0", successors[0].Refs)
	}
	v, ok := successors[0].Refs[0].Value()
	if !ok || v != 0 {
		t.Fatalf("5 + -5 should cancel to 0, got value=%d ok=%v", v, ok)
	}
}

func TestCancelOppositeVariableTerms(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	x := aref.NewVariable("x")
	negX, err := aref.NewComposite(cache, []*aref.Ref{aref.NewNumber(-1), aref.NewOp("*"), x}, nil)
	if err != nil {
		t.Fatal(err)
	}
	y := aref.NewVariable("y")
	refs := []*aref.Ref{y, aref.NewOp("+"), x, aref.NewOp("+"), negX}
	m := newRootModel(refs, cfg)

	successors, err := Cancel{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 1 {
		t.Fatalf("len(successors) = %d, want 1", len(successors))
	}
	remaining := successors[0].Refs
	if len(remaining) != 1 || remaining[0].Symbol != "y" {
		t.Fatalf("cancelling x and -x should leave just y, got %v", remaining)
	}
}

func TestCancelIgnoresNonOpposites(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	refs := []*aref.Ref{aref.NewNumber(5), aref.NewOp("+"), aref.NewNumber(5)}
	m := newRootModel(refs, cfg)

	successors, err := Cancel{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 0 {
		t.Fatalf("len(successors) = %d, want 0 (5 and 5 are not opposites)", len(successors))
	}
}

func TestCancelIgnoresZero(t *testing.T) {
	cache := aref.NewCache(0)
	cfg := config.Default()
	refs := []*aref.Ref{aref.NewNumber(0), aref.NewOp("+"), aref.NewNumber(0)}
	m := newRootModel(refs, cfg)

	successors, err := Cancel{}.Expand(m, cache, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(successors) != 0 {
		t.Fatalf("len(successors) = %d, want 0 (coeff 0 is excluded explicitly)", len(successors))
	}
}
