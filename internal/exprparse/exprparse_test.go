package exprparse

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/lexiform/algex/internal/aref"
)

func symbols(refs []*aref.Ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Symbol
	}
	return out
}

// shape is a Compute/cache-free projection of a Ref, comparable and
// diffable across runs (unlike *aref.Ref itself, whose Compute closure
// prints as a run-to-run-varying address under reflection). A composite's
// Symbol is the cache's opaque "?k" allocation id, not a structural
// property, so it is blanked out here rather than compared.
type shape struct {
	Type     aref.Type
	Symbol   string
	Children []shape
}

func shapeOf(r *aref.Ref) shape {
	s := shape{Type: r.Type, Symbol: r.Symbol}
	if r.Type == aref.Composite {
		s.Symbol = ""
	}
	for _, c := range r.Children {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

func shapesOf(refs []*aref.Ref) []shape {
	out := make([]shape, len(refs))
	for i, r := range refs {
		out[i] = shapeOf(r)
	}
	return out
}

// assertShape fails with a kr/pretty structural diff when got doesn't
// match want -- a reflect.DeepEqual failure on a []shape slice this deep
// just prints two illegible %+v blobs, so this shows only what differs.
func assertShape(t *testing.T, got, want []shape) {
	t.Helper()
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Fatalf("ref shape mismatch:\n%s", pretty.Sprint(diff))
	}
}

func TestParseNestedCompositeStructuralShape(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("2 * (x + y)^2", cache)
	if err != nil {
		t.Fatal(err)
	}

	x, y := aref.NewVariable("x"), aref.NewVariable("y")
	want := []shape{
		shapeOf(aref.NewNumber(2)),
		shapeOf(aref.NewOp("*")),
		{
			Type: aref.Composite,
			Children: []shape{
				{
					Type:     aref.Composite,
					Children: []shape{shapeOf(x), shapeOf(aref.NewOp("+")), shapeOf(y)},
				},
				shapeOf(aref.NewOp("^")),
				shapeOf(aref.NewNumber(2)),
			},
		},
	}

	assertShape(t, shapesOf(refs), want)
}

func TestParseFlatAdditiveChain(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("3 + 4 + 5", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 5 {
		t.Fatalf("len(refs) = %d, want 5 (three numbers, two +)", len(refs))
	}
	if refs[0].Type != aref.Number || refs[2].Type != aref.Op || refs[2].Symbol != "+" {
		t.Fatalf("unexpected ref shape: %v", symbols(refs))
	}
}

func TestParseMulStaysFlat(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("2 * 3 * 4", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 5 {
		t.Fatalf("len(refs) = %d, want 5 -- */* must stay unfolded at parse time", len(refs))
	}
}

func TestParseSubtractionEliminatedAtParseTime(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("x - 4", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 3 || refs[1].Symbol != "+" || refs[2].Symbol != "-4" {
		t.Fatalf("x - 4 should parse as x + -4, got %v", symbols(refs))
	}
}

func TestParseSubtractionOfNonNumberBuildsNegationComposite(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("x - y", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 3 || refs[1].Symbol != "+" {
		t.Fatalf("x - y should parse as x + (-1*y), got %v", symbols(refs))
	}
	inner, ok := aref.AsNegation(refs[2])
	if !ok || inner.Symbol != "y" {
		t.Fatalf("refs[2] should be a negation of y, got %v", refs[2])
	}
}

func TestParseCaretFoldsImmediately(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("x^2", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 1 || refs[0].Type != aref.Composite {
		t.Fatalf("x^2 should fold into a single composite, got %v", symbols(refs))
	}
	base, exp, ok := aref.AsVarPower(refs[0])
	if !ok || base.Symbol != "x" || exp != 2 {
		t.Fatalf("x^2 composite should report base=x exp=2, got base=%v exp=%d", base, exp)
	}
}

func TestParseImplicitCoefficientJuxtaposition(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("5y", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 1 || refs[0].Type != aref.Composite {
		t.Fatalf("5y should fold into a single composite, got %v", symbols(refs))
	}
	coeff, v, ok := aref.AsCoeffVar(refs[0])
	if !ok || coeff != 5 || v.Symbol != "y" {
		t.Fatalf("5y should report coeff=5 var=y, got coeff=%d var=%v", coeff, v)
	}
}

func TestParseParenthesesFoldToComposite(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("(x + y)", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 1 || refs[0].Type != aref.Composite || len(refs[0].Children) != 3 {
		t.Fatalf("(x + y) should fold into one 3-child composite, got %v", refs)
	}
}

func TestParseRejectsTrailingInput(t *testing.T) {
	cache := aref.NewCache(0)
	if _, err := Parse("3 + 4)", cache); err == nil {
		t.Fatal("expected an error for unmatched trailing ')'")
	}
}

func TestParseRejectsUnclosedParen(t *testing.T) {
	cache := aref.NewCache(0)
	if _, err := Parse("(3 + 4", cache); err == nil {
		t.Fatal("expected an error for a missing ')'")
	}
}

func TestParseLeadingUnaryMinus(t *testing.T) {
	cache := aref.NewCache(0)
	refs, err := Parse("-5", cache)
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 1 || refs[0].Type != aref.Number {
		t.Fatalf("-5 should parse to a single negative number ref, got %v", refs)
	}
	v, ok := refs[0].Value()
	if !ok || v != -5 {
		t.Fatalf("value = (%d, %v), want (-5, true)", v, ok)
	}
}
