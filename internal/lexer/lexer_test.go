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

package lexer

import (
	"testing"

	"github.com/telexlang/telex/internal/token"
)

func TestScan(t *testing.T) {
	for x, tt := range []struct {
		in   string
		want []token.Kind
	}{
		{
			in:   "",
			want: []token.Kind{token.EOF},
		}, {
			in:   `>"world"`,
			want: []token.Kind{token.GREATER, token.STRING, token.EOF},
		}, {
			in:   `>>"a">>"b"`,
			want: []token.Kind{token.DGREATER, token.STRING, token.DGREATER, token.STRING, token.EOF},
		}, {
			in:   `:2>#3`,
			want: []token.Kind{token.COLON, token.INTEGER, token.GREATER, token.POUND, token.INTEGER, token.EOF},
		}, {
			in:   `>"foo"|"bar"`,
			want: []token.Kind{token.GREATER, token.STRING, token.OR, token.STRING, token.EOF},
		}, {
			in:   `'a.*b'`,
			want: []token.Kind{token.REGEX, token.EOF},
		}, {
			in:   `"esc\"aped"`,
			want: []token.Kind{token.STRING, token.EOF},
		}, {
			in:   "(\n\t)",
			want: []token.Kind{token.LPAREN, token.NEWLINE, token.TAB, token.RPAREN, token.EOF},
		},
	} {
		toks, errs := Scan(tt.in)
		if !errs.Empty() {
			t.Errorf("#%d: Scan(%q) unexpected errors: %v", x, tt.in, errs.Head())
			continue
		}
		if len(toks) != len(tt.want) {
			t.Errorf("#%d: Scan(%q) got %d tokens, want %d: %v", x, tt.in, len(toks), len(tt.want), toks)
			continue
		}
		for i, k := range tt.want {
			if toks[i].Kind != k {
				t.Errorf("#%d: Scan(%q) token %d: got %v, want %v", x, tt.in, i, toks[i].Kind, k)
			}
		}
	}
}

func TestScanStringContents(t *testing.T) {
	toks, errs := Scan(`"esc\"aped"`)
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.Head())
	}
	if got, want := toks[0].Text, `"esc\"aped"`; got != want {
		t.Errorf("got lexeme %q, want %q", got, want)
	}
}

func TestScanLineCol(t *testing.T) {
	toks, errs := Scan("\"a\"\n:1")
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.Head())
	}
	// "a" at 1:1, NEWLINE at 1:4, : at 2:1, 1 at 2:2
	want := []struct{ line, col int }{
		{1, 1}, {1, 4}, {2, 1}, {2, 2}, {2, 3},
	}
	for i, w := range want {
		if toks[i].Line != w.line || toks[i].Col != w.col {
			t.Errorf("token %d: got %d:%d, want %d:%d", i, toks[i].Line, toks[i].Col, w.line, w.col)
		}
	}
}

func TestScanInvalidByte(t *testing.T) {
	toks, errs := Scan("\xab")
	if errs.Empty() {
		t.Fatalf("expected an error, got none")
	}
	if toks != nil {
		t.Errorf("expected nil token list, got %v", toks)
	}
	if got := errs.Head().Line; got != 1 {
		t.Errorf("got line %d, want 1", got)
	}
	if got := errs.Head().Col; got != 1 {
		t.Errorf("got col %d, want 1", got)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := Scan(`"abc`)
	if errs.Empty() {
		t.Fatalf("expected an error for unterminated string")
	}
}
