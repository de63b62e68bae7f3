// Package search implements the search driver (component 8): the
// best-first loop that pulls the cheapest frontier Model, checks it against
// the goal recognizer, runs the deferred-compute phase when no rewrite
// applies, and otherwise expands it through the action multiplexer.
package search

import (
	"container/heap"
	"context"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/goal"
	"github.com/lexiform/algex/internal/mux"
	"github.com/lexiform/algex/internal/obslog"
	"github.com/lexiform/algex/internal/rewrite"
	"github.com/lexiform/algex/internal/smodel"
)

type frontierItem struct {
	model *smodel.Model
	seq   int
}

type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].model.RemainCost != f[j].model.RemainCost {
		return f[i].model.RemainCost < f[j].model.RemainCost
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(*frontierItem)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// Run executes the best-first search from root until it finds a goal
// Model, exhausts the frontier, hits one of opts' bounds, or ctx is
// cancelled.
func Run(ctx context.Context, cache *aref.Cache, root *smodel.Model, cfg *config.Config, opts smodel.Options) (smodel.Outcome, error) {
	log := obslog.New("search")
	gens := rewrite.All()

	f := &frontier{}
	heap.Init(f)
	seq := 0
	push := func(m *smodel.Model) {
		heap.Push(f, &frontierItem{model: m, seq: seq})
		seq++
	}
	push(root)

	visited := map[string]bool{}
	steps := 0

	for f.Len() > 0 {
		select {
		case <-ctx.Done():
			return smodel.Outcome{Status: smodel.Cancelled}, nil
		default:
		}

		item := heap.Pop(f).(*frontierItem)
		m := item.model
		key := m.StateKey()
		if visited[key] {
			continue
		}
		visited[key] = true
		if opts.OnPop != nil {
			opts.OnPop(m)
		}

		if opts.CostCeiling > 0 && m.TotalApproxCost > opts.CostCeiling {
			continue
		}

		if goal.IsGoal(m.Refs) {
			log.WithField("steps", steps).WithField("cost", m.TotalApproxCost).Debug("goal reached")
			return smodel.Outcome{Status: smodel.Solved, Path: m.Path()}, nil
		}

		steps++
		if opts.StepLimit > 0 && steps > opts.StepLimit {
			return smodel.Outcome{Status: smodel.NoSolution}, nil
		}

		stream, err := mux.Multiplex(gens, m, cache, cfg)
		if err != nil {
			return smodel.Outcome{}, err
		}
		actions := stream.Drain()

		if len(actions) == 0 {
			resolved, changed := resolveTopLevel(m.Refs)
			if !changed {
				continue // dead end: no rewrite applies and nothing left to resolve
			}
			child := smodel.NewChild(m, "resolve", resolved, cfg.Get(config.ResolveStep), cfg)
			if !visited[child.StateKey()] {
				push(child)
			}
			continue
		}

		for _, a := range actions {
			if !visited[a.Model.StateKey()] {
				push(a.Model)
			}
		}
	}

	return smodel.Outcome{Status: smodel.NoSolution}, nil
}
