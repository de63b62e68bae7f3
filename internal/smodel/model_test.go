package smodel

import (
	"testing"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
)

func TestNewChildAccumulatesCost(t *testing.T) {
	cfg := config.Default()
	root := NewRoot([]*aref.Ref{aref.NewNumber(1), aref.NewOp("+"), aref.NewNumber(2)}, cfg)
	child := NewChild(root, "add_numbers", []*aref.Ref{aref.NewNumber(3)}, 5, cfg)

	if child.TotalApproxCost != root.TotalApproxCost+5 {
		t.Fatalf("TotalApproxCost = %d, want %d", child.TotalApproxCost, root.TotalApproxCost+5)
	}
	if child.Parent != root {
		t.Fatal("child.Parent should be root")
	}
}

func TestStateKeyDedupesByRefSymbols(t *testing.T) {
	cfg := config.Default()
	a := NewRoot([]*aref.Ref{aref.NewVariable("x")}, cfg)
	b := NewRoot([]*aref.Ref{aref.NewVariable("x")}, cfg)
	if a.StateKey() != b.StateKey() {
		t.Fatalf("identical ref sequences produced different state keys: %q vs %q", a.StateKey(), b.StateKey())
	}

	c := NewRoot([]*aref.Ref{aref.NewVariable("y")}, cfg)
	if a.StateKey() == c.StateKey() {
		t.Fatal("distinct ref sequences produced the same state key")
	}
}

func TestPathIsRootFirst(t *testing.T) {
	cfg := config.Default()
	root := NewRoot([]*aref.Ref{aref.NewNumber(1)}, cfg)
	mid := NewChild(root, "step1", []*aref.Ref{aref.NewNumber(2)}, 1, cfg)
	leaf := NewChild(mid, "step2", []*aref.Ref{aref.NewNumber(3)}, 1, cfg)

	path := leaf.Path()
	if len(path) != 3 {
		t.Fatalf("len(Path()) = %d, want 3", len(path))
	}
	if path[0] != root || path[1] != mid || path[2] != leaf {
		t.Fatal("Path() did not return root-first order")
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{Solved: "solved", NoSolution: "no-solution", Cancelled: "cancelled"}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}
