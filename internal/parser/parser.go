// Copyright 2026 The Telex Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements the hand-written recursive-descent parser
// for the telex grammar (spec.md §4.2), producing the CST defined in
// internal/ast.
package parser

import (
	"github.com/telexlang/telex/internal/ast"
	"github.com/telexlang/telex/internal/diag"
	"github.com/telexlang/telex/internal/lexer"
	"github.com/telexlang/telex/internal/token"
)

var prefixKinds = []token.Kind{token.LESS, token.DLESS, token.GREATER, token.DGREATER}

// parser holds the state of one parse: a flat token stream (with
// whitespace already filtered out, since NEWLINE/SPACE/TAB are never
// consumed by any production — spec.md §4.2's peek_relevant/
// eat_relevant helpers are this filtering, done once up front rather
// than re-checked on every lookahead) and an accumulating diagnostic
// list.
type parser struct {
	toks []*token.Token
	pos  int
	errs diag.List
}

// Parse parses input as a telex expression. It returns the parsed
// tree (which may be nil, or a partial tree, if parsing failed) and
// the accumulated diagnostics. Per spec.md §4.2's contract, a
// non-empty diagnostic list means the parse failed even if a non-nil
// tree is also returned.
func Parse(input string) (*ast.Telex, []*diag.Error) {
	toks, lerrs := lexer.Scan(input)
	p := &parser{toks: filterWhitespace(toks)}
	if !lerrs.Empty() {
		p.errs.AddError(lerrs.Head())
		return nil, p.errs.Slice()
	}

	t := p.parseTelex()
	if !p.have(token.EOF) {
		p.errorf(p.cur(), "Expected end of input but found %q", p.cur().Text)
	}

	if !p.errs.Empty() {
		return t, p.errs.Slice()
	}
	return t, nil
}

// filterWhitespace drops NEWLINE/SPACE/TAB tokens, which spec.md §4.2
// says no production ever consumes. This is the
// peek_relevant/eat_relevant skipping described there, applied once
// up front instead of re-checked at every lookahead site.
func filterWhitespace(toks []*token.Token) []*token.Token {
	out := make([]*token.Token, 0, len(toks))
	for _, t := range toks {
		if !t.Kind.IsWhitespace() {
			out = append(out, t)
		}
	}
	return out
}

func (p *parser) cur() *token.Token {
	if p.pos >= len(p.toks) {
		// Defensive: Scan always terminates with an EOF token, so
		// this only triggers if toks was empty outright.
		return &token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

// have reports whether the current token's kind is in kinds, without
// consuming it. token.ANY in kinds matches any current token.
func (p *parser) have(kinds ...token.Kind) bool {
	c := p.cur().Kind
	for _, k := range kinds {
		if k == token.ANY || k == c {
			return true
		}
	}
	return false
}

// eat advances past the current token if its kind is in kinds,
// returning the consumed token, or nil (leaving the position
// unchanged) on mismatch.
func (p *parser) eat(kinds ...token.Kind) *token.Token {
	if !p.have(kinds...) {
		return nil
	}
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t *token.Token, format string, args ...interface{}) {
	p.errs.Add(t.Line, t.Col, format, args...)
}

// parseTelex implements telex := prefix? compound.
func (p *parser) parseTelex() *ast.Telex {
	var prefix *token.Token
	if p.have(prefixKinds...) {
		prefix = p.eat(prefixKinds...)
	}
	compound := p.parseCompound()
	if compound == nil {
		p.errorf(p.cur(), "Expected telex expression but found %q", p.cur().Text)
		return nil
	}
	return &ast.Telex{Prefix: prefix, Compound: compound}
}

// parseCompound implements the left-recursive
// compound := compound prefix or | or
// iteratively: build the leading or_expr, then while the next token
// is a prefix, build another continuation.
func (p *parser) parseCompound() *ast.CompoundExpr {
	head := p.parseOr()
	if head == nil {
		return nil
	}
	c := &ast.CompoundExpr{Head: head}
	for p.have(prefixKinds...) {
		op := p.eat(prefixKinds...)
		elem := p.parseOr()
		if elem == nil {
			p.errorf(p.cur(), "Expected or-expression after %q but found %q", op.Text, p.cur().Text)
			break
		}
		c.Rest = append(c.Rest, ast.CompoundCont{Op: op, Elem: elem})
	}
	return c
}

// parseOr implements the left-recursive or := or '|' primary | primary.
func (p *parser) parseOr() *ast.OrExpr {
	head := p.parsePrimary()
	if head == nil {
		return nil
	}
	o := &ast.OrExpr{Head: head}
	for p.have(token.OR) {
		op := p.eat(token.OR)
		elem := p.parsePrimary()
		if elem == nil {
			p.errorf(p.cur(), "Expected primary expression after '|' but found %q", p.cur().Text)
			break
		}
		o.Rest = append(o.Rest, ast.OrCont{Op: op, Elem: elem})
	}
	return o
}

// parsePrimary implements
//
//	primary := stringy | line_expr | col_expr | '(' telex ')'
func (p *parser) parsePrimary() *ast.PrimaryExpr {
	switch {
	case p.have(token.STRING, token.REGEX):
		t := p.eat(token.STRING, token.REGEX)
		return &ast.PrimaryExpr{Stringy: &ast.Stringy{Tok: t}}

	case p.have(token.COLON):
		colon := p.eat(token.COLON)
		n := p.eat(token.INTEGER)
		if n == nil {
			p.errorf(p.cur(), "Expected integer after ':' but found %q", p.cur().Text)
			return nil
		}
		return &ast.PrimaryExpr{Line: &ast.LineExpr{Colon: colon, N: n}}

	case p.have(token.POUND):
		pound := p.eat(token.POUND)
		n := p.eat(token.INTEGER)
		if n == nil {
			p.errorf(p.cur(), "Expected integer after '#' but found %q", p.cur().Text)
			return nil
		}
		return &ast.PrimaryExpr{Col: &ast.ColExpr{Pound: pound, N: n}}

	case p.have(token.INTEGER):
		n := p.eat(token.INTEGER)
		return &ast.PrimaryExpr{Col: &ast.ColExpr{N: n}}

	case p.have(token.LPAREN):
		lp := p.eat(token.LPAREN)
		inner := p.parseTelex()
		if inner == nil {
			p.errorf(p.cur(), "Expected telex expression after '(' but found %q", p.cur().Text)
			return nil
		}
		rp := p.eat(token.RPAREN)
		if rp == nil {
			p.errorf(p.cur(), "Expected ')' but found %q", p.cur().Text)
			return nil
		}
		return &ast.PrimaryExpr{LParen: lp, Nested: inner, RParen: rp}

	default:
		p.errorf(p.cur(), "Expected primary expression but found %q", p.cur().Text)
		return nil
	}
}
