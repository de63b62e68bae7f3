// Package reporting renders a search outcome for humans: the step-by-step
// transform trace (the only stable textual contract the core exposes, per
// §6) and a compact rendering of a ref sequence for the final answer line.
package reporting

import (
	"strconv"
	"strings"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/smodel"
)

// FormatPath renders one line per Model in path: its transform name, the
// joined symbols of its ref sequence, and its running total cost, in path
// order. This is the literal, cache-symbol-faithful diagnostic trace -- a
// "?3" stays "?3" here even though Render would expand it.
func FormatPath(path []*smodel.Model) string {
	var sb strings.Builder
	for i, m := range path {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[")
		sb.WriteString(m.Transform)
		sb.WriteString("] ")
		sb.WriteString(joinSymbols(m.Refs))
		sb.WriteString(" (cost: ")
		sb.WriteString(strconv.Itoa(m.TotalApproxCost))
		sb.WriteString(")")
	}
	return sb.String()
}

func joinSymbols(refs []*aref.Ref) string {
	syms := make([]string, len(refs))
	for i, r := range refs {
		syms[i] = r.Symbol
	}
	return strings.Join(syms, " ")
}

// Render produces the human-readable final answer: every composite is
// expanded recursively into its constituent tokens instead of showing its
// opaque "?k" cache symbol. Spacing matches ordinary algebraic notation:
// "+" and "*" are set off with spaces, "^" is not.
func Render(refs []*aref.Ref) string {
	var sb strings.Builder
	for i, r := range refs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		renderOne(&sb, r)
	}
	return sb.String()
}

func renderOne(sb *strings.Builder, r *aref.Ref) {
	switch r.Type {
	case aref.Number:
		v, _ := r.Value()
		sb.WriteString(strconv.FormatInt(v, 10))
	case aref.Variable:
		sb.WriteString(r.Symbol)
	case aref.Op:
		sb.WriteString(r.Symbol)
	case aref.Composite:
		for i, ch := range r.Children {
			if i > 0 && !isCaret(r.Children[i-1]) && !isCaret(ch) {
				sb.WriteByte(' ')
			}
			renderOne(sb, ch)
		}
	}
}

func isCaret(r *aref.Ref) bool {
	return r.Type == aref.Op && r.Symbol == "^"
}
