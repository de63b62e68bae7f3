package aref

// AsCoeffVar recognizes a composite shaped as "<number> * <variable>" or
// "<variable> * <number>" -- the canonical coefficient-times-variable term.
// It never matches a bare Variable; use VarProfile for the combined case.
func AsCoeffVar(r *Ref) (coeff int64, v *Ref, ok bool) {
	if r == nil || r.Type != Composite || len(r.Children) != 3 {
		return 0, nil, false
	}
	op := r.Children[1]
	if op.Type != Op || op.Symbol != "*" {
		return 0, nil, false
	}
	a, b := r.Children[0], r.Children[2]
	if a.Type == Number && b.Type == Variable {
		n, _ := a.Value()
		return n, b, true
	}
	if b.Type == Number && a.Type == Variable {
		n, _ := b.Value()
		return n, a, true
	}
	return 0, nil, false
}

// AsVarPower recognizes a named variable raised to an integer power: a bare
// Variable (power 1), or a composite shaped as "<variable> ^ <number>".
func AsVarPower(r *Ref) (base *Ref, exp int64, ok bool) {
	if r == nil {
		return nil, 0, false
	}
	if r.Type == Variable {
		return r, 1, true
	}
	if r.Type != Composite || len(r.Children) != 3 {
		return nil, 0, false
	}
	a, op, b := r.Children[0], r.Children[1], r.Children[2]
	if op.Type == Op && op.Symbol == "^" && a.Type == Variable && b.Type == Number {
		n, _ := b.Value()
		return a, n, true
	}
	return nil, 0, false
}

// AsNegation recognizes a composite shaped as "-1 * <inner>" or
// "<inner> * -1", for any inner ref type. Unlike AsCoeffVar this does not
// require inner to be a variable; it backs the Cleanup generator's
// double-negation collapse.
func AsNegation(r *Ref) (inner *Ref, ok bool) {
	if r == nil || r.Type != Composite || len(r.Children) != 3 {
		return nil, false
	}
	op := r.Children[1]
	if op.Type != Op || op.Symbol != "*" {
		return nil, false
	}
	a, b := r.Children[0], r.Children[2]
	if a.Type == Number {
		if v, _ := a.Value(); v == -1 {
			return b, true
		}
	}
	if b.Type == Number {
		if v, _ := b.Value(); v == -1 {
			return a, true
		}
	}
	return nil, false
}

// VarProfile reduces any non-number, non-operator term to a
// (coefficient, base) pair for the purposes of additive combination: a bare
// variable has coefficient 1 against itself; a coefficient-variable
// composite yields its own coefficient and variable; anything else
// (including a power composite, or any opaque composite) is treated as an
// opaque unit with coefficient 1, keyed by its own canonical symbol. Two
// terms are additively compatible exactly when their bases have equal
// Symbol.
func VarProfile(r *Ref) (coeff int64, base *Ref, ok bool) {
	if r == nil || r.Type == Number || r.Type == Op {
		return 0, nil, false
	}
	if c, v, ok := AsCoeffVar(r); ok {
		return c, v, true
	}
	return 1, r, true
}
