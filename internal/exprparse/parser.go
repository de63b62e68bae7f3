// Package exprparse turns a token stream from exprlex into the flattened
// top-level ref sequence the search driver operates on. It is a
// precedence-climbing recursive-descent parser in the teacher's style
// (internal/parser/parser.go's parseBinary/primary shape), but unlike the
// teacher it does not build an expression tree: per §4.1, only "^", parens,
// implicit coefficient juxtaposition, and a negated single non-number term
// ("-1 * T") fold into composite refs at parse time, while "+" and "*"/"/"
// chains stay as a flat token run for the rewrite generators to reduce.
package exprparse

import (
	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/exprlex"
	"github.com/lexiform/algex/internal/xerrors"
)

// Parser consumes a fixed token slice produced by exprlex.
type Parser struct {
	tokens []exprlex.Token
	pos    int
	cache  *aref.Cache
}

// Parse tokenizes and parses src into a top-level ref sequence, interning
// every composite through cache.
func Parse(src string, cache *aref.Cache) ([]*aref.Ref, error) {
	tokens, err := exprlex.New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens, cache: cache}
	refs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != exprlex.EOF {
		t := p.peek()
		return nil, xerrors.NewParseError("unexpected trailing input", t.Line, t.Column)
	}
	return refs, nil
}

func (p *Parser) peek() exprlex.Token { return p.tokens[p.pos] }

func (p *Parser) advance() exprlex.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

// parseAdditive parses a "+"/"-" separated chain of multiplicative runs,
// normalizing every subtraction into a "+" followed by a negated term, per
// §4.1. It stops at EOF or a closing paren, so it doubles as the grammar
// for both the top level and a parenthesized group's interior.
func (p *Parser) parseAdditive() ([]*aref.Ref, error) {
	var out []*aref.Ref

	neg := false
	if k := p.peek().Kind; k == exprlex.Plus || k == exprlex.Minus {
		neg = p.advance().Kind == exprlex.Minus
	}
	run, err := p.parseRun()
	if err != nil {
		return nil, err
	}
	term, err := p.negateRun(run, neg)
	if err != nil {
		return nil, err
	}
	out = append(out, term...)

	for {
		k := p.peek().Kind
		if k != exprlex.Plus && k != exprlex.Minus {
			break
		}
		neg = p.advance().Kind == exprlex.Minus
		run, err := p.parseRun()
		if err != nil {
			return nil, err
		}
		term, err := p.negateRun(run, neg)
		if err != nil {
			return nil, err
		}
		out = append(out, aref.NewOp("+"))
		out = append(out, term...)
	}

	return out, nil
}

// negateRun applies a leading sign to a just-parsed multiplicative run. A
// negated number literal collapses directly to a negative number ref; a
// negated single non-number term becomes the "(-1 * T)" composite §4.1
// describes; a negated multi-token run is left flat with "-1 *" prepended,
// for the rewrite generators to fold normally.
func (p *Parser) negateRun(run []*aref.Ref, neg bool) ([]*aref.Ref, error) {
	if !neg {
		return run, nil
	}
	if len(run) == 1 {
		negated, err := negateSingle(p.cache, run[0])
		if err != nil {
			return nil, err
		}
		return []*aref.Ref{negated}, nil
	}
	out := append([]*aref.Ref{aref.NewNumber(-1), aref.NewOp("*")}, run...)
	return out, nil
}

func negateSingle(cache *aref.Cache, t *aref.Ref) (*aref.Ref, error) {
	if t.Type == aref.Number {
		v, _ := t.Value()
		return aref.NewNumber(-v), nil
	}
	return aref.NewComposite(cache, []*aref.Ref{aref.NewNumber(-1), aref.NewOp("*"), t}, nil)
}

// parseRun collects a flat, unfolded "*"/"/" chain: operand, operator,
// operand, ... until the next "+", "-", ")" or EOF.
func (p *Parser) parseRun() ([]*aref.Ref, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	out := []*aref.Ref{first}

	for {
		k := p.peek().Kind
		if k != exprlex.Star && k != exprlex.Slash {
			break
		}
		t := p.advance()
		sym := "*"
		if t.Kind == exprlex.Slash {
			sym = "/"
		}
		next, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		out = append(out, aref.NewOp(sym), next)
	}

	return out, nil
}

// parsePrimary parses one operand: a number (possibly carrying an implicit
// coefficient-juxtaposition variable, e.g. "5y"), a variable, a
// parenthesized group, or a nested unary minus -- each optionally raised to
// a power via "^", which always folds into a composite immediately since it
// binds tighter than everything else in the grammar.
func (p *Parser) parsePrimary() (*aref.Ref, error) {
	t := p.peek()
	switch t.Kind {
	case exprlex.Number:
		p.advance()
		numRef := aref.NewNumber(t.Value)
		if p.peek().Kind == exprlex.Ident {
			identTok := p.advance()
			varRef, err := p.maybePower(aref.NewVariable(identTok.Text))
			if err != nil {
				return nil, err
			}
			return aref.NewComposite(p.cache, []*aref.Ref{numRef, aref.NewOp("*"), varRef}, nil)
		}
		return p.maybePower(numRef)

	case exprlex.Ident:
		p.advance()
		return p.maybePower(aref.NewVariable(t.Text))

	case exprlex.LParen:
		p.advance()
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != exprlex.RParen {
			nt := p.peek()
			return nil, xerrors.NewParseError("expected ')'", nt.Line, nt.Column)
		}
		p.advance()
		composite, err := aref.NewComposite(p.cache, inner, nil)
		if err != nil {
			return nil, err
		}
		return p.maybePower(composite)

	case exprlex.Minus:
		p.advance()
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return negateSingle(p.cache, inner)

	default:
		return nil, xerrors.NewParseError("unexpected token '"+t.Text+"'", t.Line, t.Column)
	}
}

// maybePower wraps base in a "base ^ exponent" composite if a "^" follows.
func (p *Parser) maybePower(base *aref.Ref) (*aref.Ref, error) {
	if p.peek().Kind != exprlex.Caret {
		return base, nil
	}
	p.advance()
	exp, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return aref.NewComposite(p.cache, []*aref.Ref{base, aref.NewOp("^"), exp}, powerCompute(base, exp))
}

func powerCompute(base, exp *aref.Ref) aref.ComputeFn {
	return func() (int64, bool) {
		b, bok := base.Value()
		e, eok := exp.Value()
		if !bok || !eok || e < 0 {
			return 0, false
		}
		r := int64(1)
		for i := int64(0); i < e; i++ {
			r *= b
		}
		return r, true
	}
}
