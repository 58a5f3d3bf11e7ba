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

import "strings"

// ToString performs the exact round-trip described in spec.md §4.4:
// emit the prefix token's lexeme (if any), then recurse left-to-right
// through the chain, emitting each embedded token's lexeme verbatim.
// Insignificant whitespace is never stored in the CST, so this never
// reproduces the original source's whitespace — only its tokens.
func ToString(t *Telex) string {
	var b strings.Builder
	writeTelex(&b, t)
	return b.String()
}

func writeTelex(b *strings.Builder, t *Telex) {
	if t == nil {
		return
	}
	if t.Prefix != nil {
		b.WriteString(t.Prefix.Text)
	}
	writeCompound(b, t.Compound)
}

func writeCompound(b *strings.Builder, c *CompoundExpr) {
	if c == nil {
		return
	}
	writeOr(b, c.Head)
	for _, cont := range c.Rest {
		if cont.Op != nil {
			b.WriteString(cont.Op.Text)
		}
		writeOr(b, cont.Elem)
	}
}

func writeOr(b *strings.Builder, o *OrExpr) {
	if o == nil {
		return
	}
	writePrimary(b, o.Head)
	for _, cont := range o.Rest {
		if cont.Op != nil {
			b.WriteString(cont.Op.Text)
		}
		writePrimary(b, cont.Elem)
	}
}

func writePrimary(b *strings.Builder, p *PrimaryExpr) {
	if p == nil {
		return
	}
	switch p.Kind() {
	case PrimaryStringy:
		b.WriteString(p.Stringy.Tok.Text)
	case PrimaryLine:
		b.WriteString(p.Line.Colon.Text)
		b.WriteString(p.Line.N.Text)
	case PrimaryCol:
		if p.Col.Pound != nil {
			b.WriteString(p.Col.Pound.Text)
		}
		b.WriteString(p.Col.N.Text)
	case PrimaryNested:
		b.WriteString(p.LParen.Text)
		writeTelex(b, p.Nested)
		b.WriteString(p.RParen.Text)
	}
}
