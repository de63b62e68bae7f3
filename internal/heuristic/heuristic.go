// Package heuristic implements the admissible heuristic (component 4): a
// cheap lower bound on the remaining cost to reach a goal state, used to
// order the search driver's frontier.
package heuristic

import (
	"math"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/goal"
)

// Estimate returns a lower bound on the cost still needed to reduce refs to
// goal form. It is 0 when refs is already a goal. Otherwise it groups terms
// by a compatibility key -- all numbers
// together, a named variable (at a given power) together, anything else
// keyed by its own composite symbol -- and charges (n-1) times a
// per-category base cost for every group with two or more members, plus
// (g-1)*var-base for having more than one group at all, plus a small
// per-nested-operator charge for unreduced multiplicative structure.
func Estimate(refs []*aref.Ref, cfg *config.Config) int {
	if goal.IsGoal(refs) {
		return 0
	}
	terms := aref.Terms(refs)
	groups := map[string]int{}
	kinds := map[string]string{} // group key -> "number" | "var" | "composite"
	order := []string{}

	for _, t := range terms {
		var key, kind string
		switch {
		case t.Type == aref.Number:
			key, kind = "#", "number"
		default:
			if base, exp, ok := aref.AsVarPower(t); ok {
				key, kind = varKey(base.Symbol, exp), "var"
			} else {
				key, kind = "c:"+t.Symbol, "composite"
			}
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
			kinds[key] = kind
		}
		groups[key]++
	}

	logMax := logBase10(cfg.Get(config.HeuristicMax))
	total := 0
	for _, key := range order {
		n := groups[key]
		if n < 2 {
			continue
		}
		var base int
		switch kinds[key] {
		case "number":
			base = cfg.Get(config.AddPerDigit) * logMax
		case "var":
			base = cfg.Get(config.VarCombine)
		default:
			base = cfg.Get(config.ExprCombine)
		}
		total += (n - 1) * base
	}
	if len(order) > 1 {
		total += (len(order) - 1) * cfg.Get(config.VarBase)
	}
	total += cfg.Get(config.MulSingleDigit) * logMax * countNestedOps(refs)
	return total
}

func varKey(name string, exp int64) string {
	return "v:" + name + ":" + intToStr(exp)
}

func intToStr(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func logBase10(n int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Log10(float64(n)))
}

// countNestedOps counts every "*", "/", "^" operator still present anywhere
// in refs, including inside composite children, as a rough proxy for how
// much multiplicative structure remains unreduced.
func countNestedOps(refs []*aref.Ref) int {
	total := 0
	for _, r := range refs {
		if r.Type == aref.Op && (r.Symbol == "*" || r.Symbol == "/" || r.Symbol == "^") {
			total++
		}
		if r.Type == aref.Composite {
			total += countNestedOps(r.Children)
		}
	}
	return total
}
