// Package goal implements the goal recognizer (component 5): the predicate
// the search driver checks on every popped Model to decide whether the
// current ref sequence already counts as simplified.
package goal

import "github.com/lexiform/algex/internal/aref"

// IsGoal reports whether refs is an accepted final form: a single number
// ref, or a sum of at most one number term plus any number of distinct
// linear terms (a bare variable, a coefficient-variable composite, or a
// variable raised to a fixed power), each named variable appearing at most
// once.
func IsGoal(refs []*aref.Ref) bool {
	if len(refs) == 1 && refs[0].Type == aref.Number {
		return true
	}
	terms := aref.Terms(refs)
	if len(terms) == 0 {
		return false
	}
	sawNumber := false
	seenVar := map[string]bool{}
	for _, t := range terms {
		switch t.Type {
		case aref.Number:
			if sawNumber {
				return false
			}
			sawNumber = true
		case aref.Variable:
			if seenVar[t.Symbol] {
				return false
			}
			seenVar[t.Symbol] = true
		case aref.Composite:
			key, ok := linearKey(t)
			if !ok {
				return false
			}
			if seenVar[key] {
				return false
			}
			seenVar[key] = true
		default:
			return false
		}
	}
	return true
}

// linearKey extracts the variable identity a composite term counts against
// for the "each named variable occurs once" rule: a coefficient-variable
// composite keys on its variable; a pure variable-power composite (needed
// for results like x^5, see the design ledger) keys on its base variable.
func linearKey(t *aref.Ref) (string, bool) {
	if _, v, ok := aref.AsCoeffVar(t); ok {
		return v.Symbol, true
	}
	if base, exp, ok := aref.AsVarPower(t); ok && exp != 1 {
		return base.Symbol, true
	}
	return "", false
}
