package exprlex

import "testing"

func TestTokenizeBasicExpression(t *testing.T) {
	tokens, err := New("3 + x * 2").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{Number, Plus, Ident, Star, Number, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d", len(tokens), len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("tokens[%d].Kind = %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestTokenizeNumberValue(t *testing.T) {
	tokens, err := New("123").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Value != 123 {
		t.Fatalf("Value = %d, want 123", tokens[0].Value)
	}
}

func TestTokenizeIgnoresWhitespace(t *testing.T) {
	tokens, err := New("  1\t+\n2  ").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{Number, Plus, Number, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d", len(tokens), len(want))
	}
}

func TestTokenizeAllSingleCharOperators(t *testing.T) {
	tokens, err := New("+-*/^()").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{Plus, Minus, Star, Slash, Caret, LParen, RParen, EOF}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("tokens[%d].Kind = %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestTokenizeRejectsUnknownCharacter(t *testing.T) {
	if _, err := New("3 % 4").Tokenize(); err == nil {
		t.Fatal("expected an error for an unrecognized character")
	}
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	tokens, err := New("1\n  2").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Fatalf("first token at line=%d column=%d, want line=1 column=1", tokens[0].Line, tokens[0].Column)
	}
	if tokens[1].Line != 2 || tokens[1].Column != 3 {
		t.Fatalf("second token at line=%d column=%d, want line=2 column=3", tokens[1].Line, tokens[1].Column)
	}
}

func TestTokenizeMultiDigitIdentifier(t *testing.T) {
	tokens, err := New("foo_bar2").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != Ident || tokens[0].Text != "foo_bar2" {
		t.Fatalf("tokens[0] = %+v, want Ident %q", tokens[0], "foo_bar2")
	}
}
