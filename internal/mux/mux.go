// Package mux implements the action multiplexer (component 7): it runs
// every rewrite generator against a Model and merges their already-sorted
// successor lists into one sequence ordered by ascending
// Model.TotalApproxCost, with ties broken by generator declaration order
// and then by each generator's own output order -- making the merged
// sequence, and therefore the driver's push order onto the frontier,
// fully deterministic.
package mux

import (
	"container/heap"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/rewrite"
	"github.com/lexiform/algex/internal/smodel"
)

// Action is one merged successor, tagged with the generator that produced
// it.
type Action struct {
	Generator string
	Model     *smodel.Model
}

type cursor struct {
	genIdx int
	models []*smodel.Model
	pos    int
}

type frontierHeap []*cursor

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	mi, mj := h[i].models[h[i].pos], h[j].models[h[j].pos]
	if mi.TotalApproxCost != mj.TotalApproxCost {
		return mi.TotalApproxCost < mj.TotalApproxCost
	}
	if h[i].genIdx != h[j].genIdx {
		return h[i].genIdx < h[j].genIdx
	}
	return h[i].pos < h[j].pos
}
func (h frontierHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x any)        { *h = append(*h, x.(*cursor)) }
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Stream yields merged actions one at a time via Next.
type Stream struct {
	h     *frontierHeap
	names []string
}

// Multiplex runs every generator in gens against parent once and returns a
// Stream over their merged successors.
func Multiplex(gens []rewrite.Generator, parent *smodel.Model, cache *aref.Cache, cfg *config.Config) (*Stream, error) {
	h := &frontierHeap{}
	names := make([]string, len(gens))
	for i, g := range gens {
		names[i] = g.Name()
		models, err := g.Expand(parent, cache, cfg)
		if err != nil {
			return nil, err
		}
		if len(models) == 0 {
			continue
		}
		heap.Push(h, &cursor{genIdx: i, models: models})
	}
	heap.Init(h)
	return &Stream{h: h, names: names}, nil
}

// Next pops the globally cheapest remaining action, or returns ok=false
// when every generator is exhausted.
func (s *Stream) Next() (Action, bool) {
	if s.h.Len() == 0 {
		return Action{}, false
	}
	c := (*s.h)[0]
	m := c.models[c.pos]
	name := s.names[c.genIdx]
	c.pos++
	if c.pos < len(c.models) {
		heap.Fix(s.h, 0)
	} else {
		heap.Pop(s.h)
	}
	return Action{Generator: name, Model: m}, true
}

// Drain collects every remaining action in merge order. The driver uses
// this for the common case of fully expanding a popped Model.
func (s *Stream) Drain() []Action {
	var out []Action
	for {
		a, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, a)
	}
}
