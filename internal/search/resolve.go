package search

import "github.com/lexiform/algex/internal/aref"

// resolveDeep walks r bottom-up, invoking Compute on every composite whose
// children are now fully defined, and reports whether any ref transitioned
// from undefined to defined. It is safe to call repeatedly on the same ref:
// Ref.Resolve is idempotent past the first successful call.
func resolveDeep(r *aref.Ref) bool {
	if r.Type != aref.Composite {
		return false
	}
	changed := false
	for _, ch := range r.Children {
		if resolveDeep(ch) {
			changed = true
		}
	}
	if !r.Resolved() && r.Compute != nil {
		if v, ok := r.Compute(); ok {
			if r.Resolve(v) {
				changed = true
			}
		}
	}
	return changed
}

// resolveTopLevel runs the deferred-compute phase (phase B) over a ref
// sequence: every top-level composite that becomes fully resolved is
// replaced by a freshly published number ref, since a composite's own
// symbol is its cache-assigned name for life and can never itself become
// the decimal rendering of its value (§3). Returns the new sequence and
// whether anything changed.
func resolveTopLevel(refs []*aref.Ref) ([]*aref.Ref, bool) {
	changed := false
	out := make([]*aref.Ref, len(refs))
	for i, r := range refs {
		if resolveDeep(r) {
			changed = true
		}
		if r.Type == aref.Composite {
			if v, ok := r.Value(); ok {
				out[i] = aref.NewNumber(v)
				changed = true
				continue
			}
		}
		out[i] = r
	}
	return out, changed
}
