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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"

	"github.com/telexlang/telex/internal/token"
)

func tok(k token.Kind, text string) *token.Token {
	return &token.Token{Kind: k, Text: text, Line: 1, Col: 1}
}

func stringyTelex(prefix *token.Token, text string) *Telex {
	return &Telex{
		Prefix: prefix,
		Compound: &CompoundExpr{
			Head: &OrExpr{Head: &PrimaryExpr{Stringy: &Stringy{Tok: tok(token.STRING, text)}}},
		},
	}
}

func lineTelex(prefix *token.Token, n string) *Telex {
	return &Telex{
		Prefix: prefix,
		Compound: &CompoundExpr{
			Head: &OrExpr{Head: &PrimaryExpr{Line: &LineExpr{
				Colon: tok(token.COLON, ":"),
				N:     tok(token.INTEGER, n),
			}}},
		},
	}
}

func TestToString(t *testing.T) {
	for x, tt := range []struct {
		name string
		in   *Telex
		want string
	}{
		{
			name: "plain string",
			in:   stringyTelex(nil, `"world"`),
			want: `"world"`,
		}, {
			name: "forward prefix",
			in:   stringyTelex(tok(token.GREATER, ">"), `"world"`),
			want: `>"world"`,
		}, {
			name: "line expr",
			in:   lineTelex(nil, "2"),
			want: ":2",
		}, {
			name: "alternation",
			in: &Telex{
				Prefix: tok(token.GREATER, ">"),
				Compound: &CompoundExpr{
					Head: &OrExpr{
						Head: &PrimaryExpr{Stringy: &Stringy{Tok: tok(token.STRING, `"foo"`)}},
						Rest: []OrCont{{
							Op:   tok(token.OR, "|"),
							Elem: &PrimaryExpr{Stringy: &Stringy{Tok: tok(token.STRING, `"bar"`)}},
						}},
					},
				},
			},
			want: `>"foo"|"bar"`,
		},
	} {
		if got := ToString(tt.in); got != tt.want {
			t.Errorf("#%d %s: ToString() diff (-got +want):\n%s", x, tt.name, pretty.Compare(got, tt.want))
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := stringyTelex(tok(token.GREATER, ">"), `"world"`)
	clone := Clone(orig)

	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Errorf("clone differs from original structurally (-orig +clone):\n%s", diff)
	}

	// Mutating the clone's tokens must not affect the original.
	clone.Prefix.Text = "<"
	clone.Compound.Head.Head.Stringy.Tok.Text = `"mutated"`
	if orig.Prefix.Text != ">" {
		t.Errorf("mutating clone's prefix affected original: %q", orig.Prefix.Text)
	}
	if orig.Compound.Head.Head.Stringy.Tok.Text != `"world"` {
		t.Errorf("mutating clone's stringy affected original: %q", orig.Compound.Head.Head.Stringy.Tok.Text)
	}
}

func TestCombine(t *testing.T) {
	a := lineTelex(nil, "1")
	b := stringyTelex(tok(token.GREATER, ">"), `"x"`)

	c, err := Combine(a, b)
	if err != nil {
		t.Fatalf("Combine: unexpected error: %v", err)
	}
	if got, want := ToString(c), `:1>"x"`; got != want {
		t.Errorf("Combine(:1, >\"x\") = %q, want %q", got, want)
	}
}

func TestCombineUndefinedOp(t *testing.T) {
	a := lineTelex(nil, "1")
	b := lineTelex(nil, "2")

	if _, err := Combine(a, b); err != ErrUndefinedOp {
		t.Errorf("Combine with non-relative b: got err %v, want %v", err, ErrUndefinedOp)
	}
}

func TestIsRelative(t *testing.T) {
	for x, tt := range []struct {
		in   *Telex
		want bool
	}{
		{stringyTelex(nil, `"x"`), false},
		{stringyTelex(tok(token.LESS, "<"), `"x"`), true},
		{nil, false},
	} {
		if got := IsRelative(tt.in); got != tt.want {
			t.Errorf("#%d: IsRelative() = %v, want %v", x, got, tt.want)
		}
	}
}
