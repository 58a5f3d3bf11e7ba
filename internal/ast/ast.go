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

// Package ast defines the concrete syntax tree produced by the
// parser (spec.md §3 "CST grammar") and the services built on top of
// it: clone, pretty-print, and structural combine (spec.md §4.4).
//
// Left-recursive productions (compound, or) are represented as an
// explicit ordered sequence rather than a literal prev-link chain,
// per spec.md §9's own recommendation: "prefer an explicit sequence
// (ordered list of (op, or_expr) pairs with a leading or_expr) —
// semantically identical, easier to iterate, and avoids deep
// recursion during free/clone."
package ast

import "github.com/telexlang/telex/internal/token"

// Telex is the top-level node: telex := prefix? compound.
type Telex struct {
	Prefix   *token.Token // nil if the expression is absolute
	Compound *CompoundExpr
}

// CompoundCont is one right-extension of a compound chain:
// "prefix or" applied to whatever came before.
type CompoundCont struct {
	Op   *token.Token // one of <, <<, >, >>
	Elem *OrExpr
}

// CompoundExpr is compound := compound prefix or | or, flattened into
// a leading OrExpr plus an ordered list of continuations.
type CompoundExpr struct {
	Head *OrExpr
	Rest []CompoundCont
}

// OrCont is one right-extension of an alternation chain: "'|' primary".
type OrCont struct {
	Op   *token.Token // the '|' token
	Elem *PrimaryExpr
}

// OrExpr is or := or '|' primary | primary, flattened the same way as
// CompoundExpr.
type OrExpr struct {
	Head *PrimaryExpr
	Rest []OrCont
}

// PrimaryExpr is a tagged union over the four primary alternatives
// (spec.md §9: "represent as a tagged union rather than a struct with
// four mutually-exclusive optional fields"). Exactly one of Stringy,
// Line, Col, or Nested is set.
type PrimaryExpr struct {
	Stringy *Stringy
	Line    *LineExpr
	Col     *ColExpr

	// Nested holds '(' telex ')'.
	LParen *token.Token
	Nested *Telex
	RParen *token.Token
}

// Kind enumerates which alternative of PrimaryExpr is populated.
type PrimaryKind int

const (
	PrimaryInvalid PrimaryKind = iota
	PrimaryStringy
	PrimaryLine
	PrimaryCol
	PrimaryNested
)

// Kind reports which alternative p holds.
func (p *PrimaryExpr) Kind() PrimaryKind {
	switch {
	case p == nil:
		return PrimaryInvalid
	case p.Stringy != nil:
		return PrimaryStringy
	case p.Line != nil:
		return PrimaryLine
	case p.Col != nil:
		return PrimaryCol
	case p.Nested != nil:
		return PrimaryNested
	default:
		return PrimaryInvalid
	}
}

// Stringy is either a double-quoted string literal or a single-quoted
// regex literal; it dispatches on the embedded token's kind (spec.md
// §9: "Stringy should dispatch on token kind... at construction time").
type Stringy struct {
	Tok *token.Token // STRING or REGEX
}

// IsRegex reports whether s is a regex literal ('...') rather than a
// plain string literal ("...").
func (s *Stringy) IsRegex() bool {
	return s != nil && s.Tok != nil && s.Tok.Kind == token.REGEX
}

// Unquoted returns s's lexeme with its delimiters stripped. For
// STRING this does not interpret backslash escapes: escape expansion
// is an evaluator concern (the lexeme is the literal source text).
func (s *Stringy) Unquoted() string {
	if s == nil || s.Tok == nil || len(s.Tok.Text) < 2 {
		return ""
	}
	return s.Tok.Text[1 : len(s.Tok.Text)-1]
}

// LineExpr is ':' INTEGER.
type LineExpr struct {
	Colon *token.Token
	N     *token.Token // INTEGER
}

// ColExpr is ('#')? INTEGER.
type ColExpr struct {
	Pound *token.Token // nil if absent
	N     *token.Token // INTEGER
}

// IsRelative reports whether t's top-level prefix is set, i.e.
// whether t requires an origin to evaluate (spec.md Glossary,
// "Relative telex").
func IsRelative(t *Telex) bool {
	return t != nil && t.Prefix != nil
}
