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

// Package telex is the public façade over the telex expression
// language: parse a telex string, evaluate it against a buffer, and
// build or recombine telexes programmatically. Internal packages
// (lexer, parser, ast, eval) are implementation detail; this is the
// only package callers outside this module should import.
package telex

import (
	"strconv"

	"github.com/telexlang/telex/internal/ast"
	"github.com/telexlang/telex/internal/diag"
	"github.com/telexlang/telex/internal/eval"
	"github.com/telexlang/telex/internal/parser"
	"github.com/telexlang/telex/internal/token"
)

// Telex is a parsed telex expression, ready to evaluate or recombine.
type Telex = ast.Telex

// Error is one diagnostic produced while lexing or parsing, chained
// via Unwrap to any diagnostics that followed it.
type Error = diag.Error

// Sentinel errors returned by Lookup/LookupMulti, re-exported from
// internal/eval so callers never need to import it directly.
var (
	ErrNotFound      = eval.ErrNotFound
	ErrBadArgs       = eval.ErrBadArgs
	ErrBadTree       = eval.ErrBadTree
	ErrUnimplemented = eval.ErrUnimplemented
)

// NoOrigin is passed as origin to Lookup when the caller has no
// starting position. Only an absolute telex (IsRelative(t) == false)
// can be evaluated with NoOrigin.
const NoOrigin = eval.NoPos

// Parse lexes and parses s into a Telex. On failure it returns the
// diagnostics produced (each one links to the next through Unwrap
// and diag.Error.Next) together with a nil or partial Telex; a
// non-empty diagnostic slice means the parse failed even when the
// Telex is non-nil.
func Parse(s string) (*Telex, []*Error) {
	return parser.Parse(s)
}

// Lookup evaluates t against buf starting at origin, returning the
// resulting byte offset. origin is the "current position" a relative
// telex (IsRelative(t) == true) steps from; pass NoOrigin for an
// absolute telex with no natural starting point.
func Lookup(t *Telex, buf []byte, origin int) (int, error) {
	return eval.Eval(t, buf, origin, token.None)
}

// LookupMulti evaluates a sequence of telexes in order, each one
// starting from the position the previous one produced (the first
// starts from origin). A telex with no prefix of its own inherits the
// prefix of the most recent telex in the list that had one, not just
// the immediately preceding telex.
func LookupMulti(buf []byte, origin int, telexes []*Telex) (int, error) {
	pos := origin
	inherited := token.None
	for _, t := range telexes {
		var err error
		pos, err = eval.Eval(t, buf, pos, inherited)
		if err != nil {
			return 0, err
		}
		if t.Prefix != nil {
			inherited = t.Prefix.Kind
		}
	}
	return pos, nil
}

// ReverseLookup builds a telex that, evaluated against buf from
// offset 0, reproduces pos: a line telex for pos's 1-based line,
// combined with a '>'-prefixed column telex for pos's 1-based column.
// The result is built through this package's own AST nodes and
// pretty-printer and parsed back, so it is guaranteed to round-trip
// through Parse.
func ReverseLookup(buf []byte, pos int) (*Telex, error) {
	line, col := lineCol(buf, pos)

	lineTelex := &ast.Telex{
		Compound: &ast.CompoundExpr{
			Head: &ast.OrExpr{
				Head: &ast.PrimaryExpr{
					Line: &ast.LineExpr{
						Colon: &token.Token{Kind: token.COLON, Text: ":", Line: 1, Col: 1},
						N:     &token.Token{Kind: token.INTEGER, Text: strconv.Itoa(line), Line: 1, Col: 2},
					},
				},
			},
		},
	}
	colTelex := &ast.Telex{
		Prefix: &token.Token{Kind: token.GREATER, Text: ">", Line: 1, Col: 1},
		Compound: &ast.CompoundExpr{
			Head: &ast.OrExpr{
				Head: &ast.PrimaryExpr{
					Col: &ast.ColExpr{
						Pound: &token.Token{Kind: token.POUND, Text: "#", Line: 1, Col: 2},
						N:     &token.Token{Kind: token.INTEGER, Text: strconv.Itoa(col), Line: 1, Col: 3},
					},
				},
			},
		},
	}

	combined, err := ast.Combine(lineTelex, colTelex)
	if err != nil {
		return nil, err
	}

	rendered := ast.ToString(combined)
	t, errs := parser.Parse(rendered)
	if len(errs) != 0 {
		return nil, errs[0]
	}
	return t, nil
}

// lineCol returns pos's 1-based line and column within buf, clamping
// pos to [0, len(buf)].
func lineCol(buf []byte, pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(buf) {
		pos = len(buf)
	}
	line = 1
	lastNL := -1
	for i := 0; i < pos; i++ {
		if buf[i] == '\n' {
			line++
			lastNL = i
		}
	}
	return line, pos - lastNL
}

// Combine grafts b onto a, per spec.md §4.4: a's steps, then the join
// operator taken from b's prefix, then b's own steps. b must have a
// prefix of its own (ErrUndefinedOp otherwise).
func Combine(a, b *Telex) (*Telex, error) {
	return ast.Combine(a, b)
}

// Clone returns a deep, independent copy of t.
func Clone(t *Telex) *Telex {
	return ast.Clone(t)
}

// ToString renders t back to telex source text.
func ToString(t *Telex) string {
	return ast.ToString(t)
}

// IsRelative reports whether t requires an origin to evaluate, i.e.
// whether its top-level prefix is set.
func IsRelative(t *Telex) bool {
	return ast.IsRelative(t)
}
