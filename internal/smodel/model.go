// Package smodel defines the search Model (component 8's state type) plus
// the Outcome values the driver returns. It sits below both the rewrite
// generators and the driver itself so neither has to import the other.
package smodel

import (
	"strings"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/heuristic"
)

// Model is one node of the search: a ref sequence reached by a named
// transform from a parent Model, plus the bookkeeping the driver needs to
// order and dedupe the frontier.
type Model struct {
	Parent          *Model
	Transform       string
	Refs            []*aref.Ref
	TotalApproxCost int
	RemainCost      int // f-score: TotalApproxCost + heuristic estimate
}

// NewRoot builds the initial Model for a freshly parsed expression.
func NewRoot(refs []*aref.Ref, cfg *config.Config) *Model {
	m := &Model{Transform: "initial", Refs: refs}
	m.RemainCost = m.TotalApproxCost + heuristic.Estimate(refs, cfg)
	return m
}

// NewChild builds a successor Model reached from parent by transform at the
// given local cost.
func NewChild(parent *Model, transform string, refs []*aref.Ref, localCost int, cfg *config.Config) *Model {
	m := &Model{
		Parent:          parent,
		Transform:       transform,
		Refs:            refs,
		TotalApproxCost: parent.TotalApproxCost + localCost,
	}
	m.RemainCost = m.TotalApproxCost + heuristic.Estimate(refs, cfg)
	return m
}

// StateKey is the visited-set key: the joined top-level ref symbols, so two
// Models reachable by different paths but with structurally identical
// current refs dedupe against each other.
func (m *Model) StateKey() string {
	var sb strings.Builder
	for i, r := range m.Refs {
		if i > 0 {
			sb.WriteByte(0)
		}
		sb.WriteString(r.Symbol)
	}
	return sb.String()
}

// Path walks from the root to m, root first.
func (m *Model) Path() []*Model {
	var rev []*Model
	for cur := m; cur != nil; cur = cur.Parent {
		rev = append(rev, cur)
	}
	path := make([]*Model, len(rev))
	for i, mm := range rev {
		path[len(rev)-1-i] = mm
	}
	return path
}

// Status is the terminal disposition of a search run.
type Status int

const (
	NoSolution Status = iota
	Solved
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Cancelled:
		return "cancelled"
	default:
		return "no-solution"
	}
}

// Outcome is what Run returns.
type Outcome struct {
	Status Status
	Path   []*Model // populated only when Status == Solved
}

// Options bounds a search run.
type Options struct {
	StepLimit   int // 0 = unbounded
	CostCeiling int // 0 = unbounded

	// OnPop, if set, is called with every Model popped off the frontier
	// before it is checked against the goal recognizer -- the hook the
	// §11.3 progress daemon uses to stream frames to live viewers. Never
	// called by package search itself outside of Run; nil is the common
	// case and costs nothing.
	OnPop func(*Model)
}
