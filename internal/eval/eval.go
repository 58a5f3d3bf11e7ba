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

// Package eval implements the telex evaluator: a pure function from a
// parsed CST, a buffer, a starting position, and an inherited prefix
// to a resulting byte offset or an error (spec.md §4.3).
package eval

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/telexlang/telex/internal/ast"
	"github.com/telexlang/telex/internal/token"
)

// Sentinel errors, one per spec.md §7 error code reachable from
// evaluation. Callers discriminate with errors.Is.
var (
	ErrNotFound      = errors.New("eval: no such position")
	ErrBadArgs       = errors.New("eval: relative telex requires an origin")
	ErrBadTree       = errors.New("eval: malformed syntax tree")
	ErrUnimplemented = errors.New("eval: regex evaluation is not implemented")
)

// NoPos is passed as pos to Eval when the caller has no starting
// position (only valid for an absolute telex).
const NoPos = -1

// Eval evaluates t against buf starting at pos, using inherited as
// the prefix in force when t itself carries none. Pass token.None for
// inherited when there is no enclosing context (a fresh top-level
// lookup).
func Eval(t *ast.Telex, buf []byte, pos int, inherited token.Kind) (int, error) {
	if t == nil || t.Compound == nil {
		return 0, ErrBadTree
	}

	start := pos
	if start == NoPos {
		if t.Prefix != nil {
			return 0, ErrBadArgs
		}
		start = 0
	}

	effective := inherited
	if t.Prefix != nil {
		effective = t.Prefix.Kind
	}

	return evalCompound(t.Compound, buf, start, effective)
}

// evalCompound implements compound_expr: evaluate the head, then each
// continuation in turn, each one's own operator (always present, per
// the CST invariant) becoming the effective prefix for its tail.
func evalCompound(c *ast.CompoundExpr, buf []byte, pos int, effective token.Kind) (int, error) {
	if c == nil || c.Head == nil {
		return 0, ErrBadTree
	}
	cur, err := evalOr(c.Head, buf, pos, effective)
	if err != nil {
		return 0, err
	}
	for _, cont := range c.Rest {
		if cont.Op == nil {
			return 0, ErrBadTree
		}
		cur, err = evalOr(cont.Elem, buf, cur, cont.Op.Kind)
		if err != nil {
			return 0, err
		}
	}
	return cur, nil
}

// evalOr implements or_expr's left-to-right first-success alternation:
// try the head, then each '|' continuation in source order, returning
// the first one that succeeds.
func evalOr(o *ast.OrExpr, buf []byte, pos int, effective token.Kind) (int, error) {
	if o == nil || o.Head == nil {
		return 0, ErrBadTree
	}
	r, lastErr := evalPrimary(o.Head, buf, pos, effective)
	if lastErr == nil {
		return r, nil
	}
	for _, cont := range o.Rest {
		r, err := evalPrimary(cont.Elem, buf, pos, effective)
		if err == nil {
			return r, nil
		}
		lastErr = err
	}
	return 0, lastErr
}

func evalPrimary(p *ast.PrimaryExpr, buf []byte, pos int, effective token.Kind) (int, error) {
	if p == nil {
		return 0, ErrBadTree
	}
	switch p.Kind() {
	case ast.PrimaryStringy:
		return evalStringy(p.Stringy, buf, pos, effective)
	case ast.PrimaryLine:
		return evalLine(p.Line, buf, pos, effective)
	case ast.PrimaryCol:
		return evalCol(p.Col, buf, pos, effective)
	case ast.PrimaryNested:
		return Eval(p.Nested, buf, pos, effective)
	default:
		return 0, ErrBadTree
	}
}

// evalStringy implements eval_string/eval_regex (spec.md §4.3). Regex
// literals are syntactically accepted but always return
// ErrUnimplemented; a regex engine could be hooked in here later
// without changing the CST (spec.md §9).
func evalStringy(s *ast.Stringy, buf []byte, pos int, effective token.Kind) (int, error) {
	if s == nil || s.Tok == nil {
		return 0, ErrBadTree
	}
	if s.IsRegex() {
		return 0, ErrUnimplemented
	}
	needle := []byte(unescape(s.Unquoted()))

	if effective == token.LESS || effective == token.DLESS {
		idx := lastIndexAtOrBefore(buf, needle, pos)
		if idx < 0 {
			return 0, ErrNotFound
		}
		if effective == token.DLESS {
			return idx - 1, nil
		}
		return idx, nil
	}

	idx := firstIndexAtOrAfter(buf, needle, pos)
	if idx < 0 {
		return 0, ErrNotFound
	}
	if effective == token.DGREATER {
		return idx + len(needle), nil
	}
	return idx, nil
}

// unescape collapses a backslash-and-following-byte pair into that
// byte, mirroring the lexer's rule that '\' consumes the next byte
// literally (spec.md §4.1). The lexeme handed to Unquoted still has
// escapes in raw form; expanding them is an evaluator concern.
func unescape(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b bytes.Buffer
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

func firstIndexAtOrAfter(buf, needle []byte, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(buf) {
		return -1
	}
	idx := bytes.Index(buf[pos:], needle)
	if idx < 0 {
		return -1
	}
	return pos + idx
}

func lastIndexAtOrBefore(buf, needle []byte, pos int) int {
	upper := pos + len(needle)
	if upper > len(buf) {
		upper = len(buf)
	}
	if upper < 0 {
		return -1
	}
	return bytes.LastIndex(buf[:upper], needle)
}

// stepAdjust applies the table in spec.md §4.3: single-forward motion
// (an explicit '>', or the absolute default when no prefix was ever
// supplied) counts N as a 1-based ordinal and needs N-1 hops; doubled
// motion (<</>>) needs one hop past the boundary it would otherwise
// land on; single-backward motion ('<') is used as-is.
func stepAdjust(n int, effective token.Kind) int {
	switch effective {
	case token.GREATER, token.None:
		return n - 1
	case token.DLESS, token.DGREATER:
		return n + 1
	default:
		return n
	}
}

func directionOf(effective token.Kind) int {
	if effective == token.LESS || effective == token.DLESS {
		return -1
	}
	return 1
}

// evalLine implements line_expr (spec.md §4.3).
func evalLine(l *ast.LineExpr, buf []byte, pos int, effective token.Kind) (int, error) {
	if l == nil || l.N == nil {
		return 0, ErrBadTree
	}
	n, err := strconv.Atoi(l.N.Text)
	if err != nil {
		return 0, ErrBadTree
	}
	dir := directionOf(effective)
	n = stepAdjust(n, effective)
	if n < 0 {
		n = 0
	}

	cur := pos
	clamped := false
	for i := 0; i < n; i++ {
		if dir > 0 {
			idx := bytes.IndexByte(buf[min(cur, len(buf)):], '\n')
			if idx < 0 {
				cur = len(buf)
				clamped = true
				break
			}
			cur = min(cur, len(buf)) + idx + 1
		} else {
			// Search strictly before cur: a backward hop always
			// lands exactly on a newline, so searching inclusively
			// on the next iteration would immediately re-find that
			// same newline instead of advancing further back.
			idx := lastIndexByteAtOrBefore(buf, cur-1, '\n')
			if idx < 0 {
				cur = 0
				clamped = true
				break
			}
			cur = idx
		}
	}
	if !clamped && dir < 0 && effective == token.DLESS {
		cur++
	}
	return cur, nil
}

func lastIndexByteAtOrBefore(buf []byte, at int, c byte) int {
	if at >= len(buf) {
		at = len(buf) - 1
	}
	for i := at; i >= 0; i-- {
		if buf[i] == c {
			return i
		}
	}
	return -1
}

// evalCol implements col_expr (spec.md §4.3).
func evalCol(c *ast.ColExpr, buf []byte, pos int, effective token.Kind) (int, error) {
	if c == nil || c.N == nil {
		return 0, ErrBadTree
	}
	n, err := strconv.Atoi(c.N.Text)
	if err != nil {
		return 0, ErrBadTree
	}
	dir := directionOf(effective)
	if n < 0 {
		n = -n
		dir = -dir
	}
	n = stepAdjust(n, effective)
	if n < 0 {
		n = 0
	}

	cur := pos
	for i := 0; i < n; i++ {
		next := cur + dir
		if next < 0 {
			cur = 0
			break
		}
		if next > len(buf) {
			cur = len(buf)
			break
		}
		if next < len(buf) && buf[next] == '\n' {
			if dir > 0 {
				cur = next
			}
			break
		}
		cur = next
	}
	return cur, nil
}
