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

// Clone deep-copies t: every owned token and every sub-node. The
// result shares no mutable state with t (spec.md §4.4, §5).
func Clone(t *Telex) *Telex {
	if t == nil {
		return nil
	}
	return &Telex{
		Prefix:   t.Prefix.Clone(),
		Compound: cloneCompound(t.Compound),
	}
}

func cloneCompound(c *CompoundExpr) *CompoundExpr {
	if c == nil {
		return nil
	}
	var rest []CompoundCont
	if c.Rest != nil {
		rest = make([]CompoundCont, len(c.Rest))
	}
	for i, cont := range c.Rest {
		rest[i] = CompoundCont{Op: cont.Op.Clone(), Elem: cloneOr(cont.Elem)}
	}
	return &CompoundExpr{Head: cloneOr(c.Head), Rest: rest}
}

func cloneOr(o *OrExpr) *OrExpr {
	if o == nil {
		return nil
	}
	var rest []OrCont
	if o.Rest != nil {
		rest = make([]OrCont, len(o.Rest))
	}
	for i, cont := range o.Rest {
		rest[i] = OrCont{Op: cont.Op.Clone(), Elem: clonePrimary(cont.Elem)}
	}
	return &OrExpr{Head: clonePrimary(o.Head), Rest: rest}
}

func clonePrimary(p *PrimaryExpr) *PrimaryExpr {
	if p == nil {
		return nil
	}
	switch p.Kind() {
	case PrimaryStringy:
		return &PrimaryExpr{Stringy: &Stringy{Tok: p.Stringy.Tok.Clone()}}
	case PrimaryLine:
		return &PrimaryExpr{Line: &LineExpr{Colon: p.Line.Colon.Clone(), N: p.Line.N.Clone()}}
	case PrimaryCol:
		return &PrimaryExpr{Col: &ColExpr{Pound: p.Col.Pound.Clone(), N: p.Col.N.Clone()}}
	case PrimaryNested:
		return &PrimaryExpr{
			LParen: p.LParen.Clone(),
			Nested: Clone(p.Nested),
			RParen: p.RParen.Clone(),
		}
	default:
		return &PrimaryExpr{}
	}
}
