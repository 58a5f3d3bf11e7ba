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

package ast

import "errors"

// ErrUndefinedOp is returned by Combine when b has no prefix: the
// join operator between a and b is then undefined (spec.md §4.4,
// §7 "UNDEFINED_OP").
var ErrUndefinedOp = errors.New("combine: second operand has no prefix, join operator is undefined")

// Combine grafts b onto a, per spec.md §4.4: it clones both operands,
// strips b's prefix (the join operator) and a's prefix (the result's
// new top-level prefix), then chains b's steps onto a's.
//
// spec.md describes this by wrapping each operand's compound
// expression in a synthetic parenthesized primary before grafting —
// a mechanism needed only because the original C data structure
// represents a left-recursive compound as a single prev/tail pair, so
// b's (possibly multi-step) chain has to be flattened into one "tail"
// slot by parenthesizing it. This package's CompoundExpr is already an
// ordered sequence (spec.md §9), so the same result follows from
// simply appending b's steps after a's: evaluating a compound_expr is
// defined as "evaluate Head, then evaluate each Rest step in order
// from the previous position" (spec.md §4.3), so splicing
// [a.Rest..., {op, b.Head}, b.Rest...] after a.Head is evaluated
// identically to evaluating a in full and then b's original chain
// with op as b's first effective prefix — without introducing
// synthetic parens that would show up in ToString output. This
// matches spec.md §8's worked example:
// combine(parse(":1"), parse(`>"x"`)) has ToString `:1>"x"`, not
// `(:1)>("x")`.
func Combine(a, b *Telex) (*Telex, error) {
	if b == nil || b.Prefix == nil {
		return nil, ErrUndefinedOp
	}
	ca := Clone(a)
	cb := Clone(b)

	op := cb.Prefix
	top := ca.Prefix

	rest := make([]CompoundCont, 0, len(ca.Compound.Rest)+1+len(cb.Compound.Rest))
	rest = append(rest, ca.Compound.Rest...)
	rest = append(rest, CompoundCont{Op: op, Elem: cb.Compound.Head})
	rest = append(rest, cb.Compound.Rest...)

	return &Telex{
		Prefix: top,
		Compound: &CompoundExpr{
			Head: ca.Compound.Head,
			Rest: rest,
		},
	}, nil
}
