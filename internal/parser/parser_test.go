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

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/telexlang/telex/internal/ast"
	"github.com/telexlang/telex/internal/token"
)

func TestParseRoundTrip(t *testing.T) {
	for x, in := range []string{
		`"world"`,
		`>"world"`,
		`>>"hello"`,
		`:2`,
		`:2>#3`,
		`>"foo"|"bar"`,
		`<<"a"<<"b"`,
		`(:1>"x")`,
		`#42`,
		`'a.*b'`,
	} {
		tree, errs := Parse(in)
		if len(errs) != 0 {
			t.Errorf("#%d: Parse(%q) unexpected errors: %v", x, in, errs[0])
			continue
		}
		if got := ast.ToString(tree); got != in {
			t.Errorf("#%d: Parse(%q) round-trip = %q", x, in, got)
		}
	}
}

func TestParseWhitespaceInsignificant(t *testing.T) {
	tree, errs := Parse("  >  \"world\"\t\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs[0])
	}
	if got, want := ast.ToString(tree), `>"world"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for x, tt := range []struct {
		in          string
		wantErrLine int
		wantErrCol  int
	}{
		{in: "«", wantErrLine: 1, wantErrCol: 1},
		{in: `:`, wantErrLine: 1, wantErrCol: 2},
		{in: `"unterminated`, wantErrLine: 1, wantErrCol: 1},
		{in: `(:1`, wantErrLine: 1, wantErrCol: 4},
		{in: `>`, wantErrLine: 1, wantErrCol: 2},
	} {
		tree, errs := Parse(tt.in)
		if len(errs) == 0 {
			t.Errorf("#%d: Parse(%q) = %v, %v, want an error", x, tt.in, tree, errs)
			continue
		}
		if errs[0].Line != tt.wantErrLine || errs[0].Col != tt.wantErrCol {
			t.Errorf("#%d: Parse(%q) error at %d:%d, want %d:%d (%v)",
				x, tt.in, errs[0].Line, errs[0].Col, tt.wantErrLine, tt.wantErrCol, errs[0])
		}
	}
}

func TestParseUnicodeByteOffsetError(t *testing.T) {
	// "«" is a multi-byte UTF-8 sequence; the lexer scans byte-wise
	// (spec.md §1 "Non-goals": no Unicode normalization) so its first
	// byte alone is unrecognized.
	_, errs := Parse("«")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if want := "Could not recognize token"; !containsSubstring(errs[0].Message, want) {
		t.Errorf("got message %q, want substring %q", errs[0].Message, want)
	}
}

// TestParseIgnoresWhitespacePositionally checks that two inputs
// differing only in inserted whitespace parse to the same tree shape,
// ignoring the source Line/Col each token happens to land on (the
// comparison that matters for spec.md §8's round-trip property is
// structural, not positional).
func TestParseIgnoresWhitespacePositionally(t *testing.T) {
	a, errsA := Parse(`>"foo"|"bar"`)
	if len(errsA) != 0 {
		t.Fatalf("Parse(a): %v", errsA[0])
	}
	b, errsB := Parse("  >  \"foo\" | \"bar\"\n")
	if len(errsB) != 0 {
		t.Fatalf("Parse(b): %v", errsB[0])
	}

	opts := cmpopts.IgnoreFields(token.Token{}, "Line", "Col")
	if diff := cmp.Diff(a, b, opts); diff != "" {
		t.Errorf("trees differ beyond source position (-a +b):\n%s", diff)
	}
}

func containsSubstring(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
