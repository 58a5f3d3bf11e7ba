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

// Package token defines the lexical token kinds and the Token type
// produced by the lexer and consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

// Token kinds. INVALID is the zero value so an unset Kind reads as an
// error rather than silently matching a real token.
const (
	INVALID Kind = iota
	EOF

	NEWLINE
	SPACE
	TAB

	STRING // "..."
	REGEX  // '...'
	INTEGER

	LPAREN // (
	RPAREN // )

	LESS     // <
	DLESS    // <<
	GREATER  // >
	DGREATER // >>

	COLON // :
	POUND // #
	OR    // |

	// ANY is a pseudo-kind used only by parser lookahead helpers
	// (have/eat) to mean "match any kind in this set".
	ANY

	// None is the evaluator's "absolute context" sentinel: it stands
	// for "no inherited prefix was supplied". spec.md §4.3 and §9
	// note that the original source overloads its generic INVALID
	// value for this; None is kept distinct from INVALID (a lexer
	// error marker) so a caller can never confuse "scan failed" with
	// "evaluate in absolute mode".
	None
)

var names = map[Kind]string{
	INVALID:  "INVALID",
	EOF:      "EOF",
	NEWLINE:  "NEWLINE",
	SPACE:    "SPACE",
	TAB:      "TAB",
	STRING:   "STRING",
	REGEX:    "REGEX",
	INTEGER:  "INTEGER",
	LPAREN:   "(",
	RPAREN:   ")",
	LESS:     "<",
	DLESS:    "<<",
	GREATER:  ">",
	DGREATER: ">>",
	COLON:    ":",
	POUND:    "#",
	OR:       "|",
	ANY:      "ANY",
	None:     "None",
}

// String returns k's name, for diagnostics.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsPrefix reports whether k is one of the four movement prefixes.
func (k Kind) IsPrefix() bool {
	switch k {
	case LESS, DLESS, GREATER, DGREATER:
		return true
	}
	return false
}

// IsWhitespace reports whether k is one of the insignificant
// whitespace kinds the parser skips transparently.
func (k Kind) IsWhitespace() bool {
	switch k {
	case NEWLINE, SPACE, TAB:
		return true
	}
	return false
}

// Token is one lexical unit read from the input. Line and Col are
// both 1-based. Text holds the owned lexeme bytes; for STRING and
// REGEX this includes the surrounding delimiters.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// Len returns the lexeme's byte length.
func (t *Token) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Text)
}

// String returns the location and lexeme of t, for diagnostics.
func (t *Token) String() string {
	if t == nil {
		return "<nil token>"
	}
	return fmt.Sprintf("%d:%d: %s %q", t.Line, t.Col, t.Kind, t.Text)
}

// Clone returns a deep copy of t (a fresh *Token with the same owned
// text), or nil if t is nil.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
