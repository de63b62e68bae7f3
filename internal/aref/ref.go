// Package aref implements the expression DAG: the ARef node type (component
// 2 of the design) and the symbol cache that mints its composite names
// (component 1). A Ref is immutable with respect to its type, symbol, and
// children once published; only a composite's numeric value may transition
// from undefined to defined, exactly once, during the driver's deferred
// compute phase.
package aref

import "strconv"

// Type tags what kind of node a Ref is. This replaces the teacher-style
// duck-typed, flag-driven node ("role", "sign", "power") with a small
// closed tag set, per the design notes: equality and dispatch become a
// switch on Type plus a string compare on Symbol, nothing else.
type Type int

const (
	Number Type = iota
	Variable
	Op
	Composite
)

func (t Type) String() string {
	switch t {
	case Number:
		return "number"
	case Variable:
		return "variable"
	case Op:
		return "op"
	case Composite:
		return "composite"
	default:
		return "unknown"
	}
}

// ComputeFn lazily materializes a composite's integer value from its
// children. It returns ok=false when a child value is still undefined.
type ComputeFn func() (int64, bool)

// Ref is a node in the shared expression DAG.
type Ref struct {
	Type     Type
	Symbol   string
	Children []*Ref
	Compute  ComputeFn

	val    int64
	valSet bool
}

// NewNumber builds a number ref. Its symbol is always the exact decimal of
// its value, per the §3 invariant.
func NewNumber(v int64) *Ref {
	return &Ref{Type: Number, Symbol: strconv.FormatInt(v, 10), val: v, valSet: true}
}

// NewVariable builds a named-variable ref.
func NewVariable(name string) *Ref {
	return &Ref{Type: Variable, Symbol: name}
}

// NewOp builds an operator placeholder ref. Operators carry no value and no
// children.
func NewOp(symbol string) *Ref {
	return &Ref{Type: Op, Symbol: symbol}
}

// NewComposite interns children through cache and returns the canonical
// composite ref for that child sequence -- a fresh one the first time this
// exact shape is seen, the existing one on every subsequent call with an
// identical child sequence.
func NewComposite(cache *Cache, children []*Ref, compute ComputeFn) (*Ref, error) {
	sym, err := cache.Intern(children)
	if err != nil {
		return nil, err
	}
	return &Ref{Type: Composite, Symbol: sym, Children: children, Compute: compute}, nil
}

// Value returns the ref's known integer value, if any.
func (r *Ref) Value() (int64, bool) {
	return r.val, r.valSet
}

// Resolved reports whether Value would return ok=true.
func (r *Ref) Resolved() bool {
	return r.valSet
}

// Resolve lifts the ref's value from undefined to v. It is a no-op
// returning false if the ref already carries a value (the §3 "exactly
// once" invariant, enforced here rather than trusted to callers) -- this
// also makes repeated deferred-compute passes over the same ref
// idempotent.
func (r *Ref) Resolve(v int64) bool {
	if r.valSet {
		return false
	}
	r.val = v
	r.valSet = true
	return true
}

// IsTerm reports whether r participates in the top-level linear form as an
// operand rather than an operator (§4.1: "A ref is a term if it is not an
// operator").
func (r *Ref) IsTerm() bool {
	return r.Type != Op
}

// Terms filters a ref sequence down to its non-operator elements.
func Terms(refs []*Ref) []*Ref {
	out := make([]*Ref, 0, len(refs))
	for _, r := range refs {
		if r.IsTerm() {
			out = append(out, r)
		}
	}
	return out
}
