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

// Package lexer implements the telex scanner: a table-and-switch
// driven state machine over a raw input string, producing a linear
// token stream with source coordinates (spec.md §4.1).
package lexer

import (
	"github.com/telexlang/telex/internal/diag"
	"github.com/telexlang/telex/internal/token"
)

// stateFn represents a state in the lexer as a function returning the
// next state, in the style of pkg/yang/lex.go's stateFn chain. Unlike
// a channel-fed lexer, states here push directly onto l.tokens: the
// grammar in spec.md §4.1 is scanned once, eagerly, with no need for
// a consumer to interleave with production.
type stateFn func(*lexer) stateFn

type lexer struct {
	input string
	pos   int // current byte offset
	start int // start of the token being built

	line, col   int // current 1-based line/col
	sline, scol int // start line/col of the token being built

	tokens []*token.Token
	errs   diag.List
}

// Scan tokenizes input and returns the token stream. On the first
// unrecognized byte, lexing aborts per spec.md §4.1: a single
// diagnostic is recorded and an empty token slice is returned (the
// caller surfaces this as a parse failure).
func Scan(input string) ([]*token.Token, *diag.List) {
	l := &lexer{input: input, line: 1, col: 1}
	for state := lexGround; state != nil; {
		state = state(l)
	}
	if !l.errs.Empty() {
		return nil, &l.errs
	}
	return l.tokens, &l.errs
}

func (l *lexer) cur() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

// advance consumes the current byte, tracking line/col. NEWLINE is
// handled specially by emit (the newline token itself is recorded at
// its start column; the line increments and column resets only after
// the token is attached, per spec.md §4.1).
func (l *lexer) advance() {
	l.pos++
	l.col++
}

func (l *lexer) markStart() {
	l.start = l.pos
	l.sline = l.line
	l.scol = l.col
}

func (l *lexer) emit(k token.Kind) {
	l.emitText(k, l.input[l.start:l.pos])
}

func (l *lexer) emitText(k token.Kind, text string) {
	l.tokens = append(l.tokens, &token.Token{
		Kind: k,
		Text: text,
		Line: l.sline,
		Col:  l.scol,
	})
	if k == token.NEWLINE {
		l.line++
		l.col = 1
	}
}

func lexGround(l *lexer) stateFn {
	l.markStart()
	c := l.cur()
	switch {
	case c == 0:
		l.emitText(token.EOF, "")
		return nil
	case c == '\n':
		l.advance()
		l.emit(token.NEWLINE)
		return lexGround
	case c == ' ':
		l.advance()
		l.emit(token.SPACE)
		return lexGround
	case c == '\t':
		l.advance()
		l.emit(token.TAB)
		return lexGround
	case c == ':':
		l.advance()
		l.emit(token.COLON)
		return lexGround
	case c == '#':
		l.advance()
		l.emit(token.POUND)
		return lexGround
	case c == '(':
		l.advance()
		l.emit(token.LPAREN)
		return lexGround
	case c == ')':
		l.advance()
		l.emit(token.RPAREN)
		return lexGround
	case c == '|':
		l.advance()
		l.emit(token.OR)
		return lexGround
	case c == '"':
		return lexString
	case c == '\'':
		return lexRegex
	case c == '<':
		l.advance()
		if l.cur() == '<' {
			l.advance()
			l.emit(token.DLESS)
		} else {
			l.emit(token.LESS)
		}
		return lexGround
	case c == '>':
		l.advance()
		if l.cur() == '>' {
			l.advance()
			l.emit(token.DGREATER)
		} else {
			l.emit(token.GREATER)
		}
		return lexGround
	case c >= '0' && c <= '9':
		return lexInteger
	default:
		l.errs.Add(l.line, l.col, "Could not recognize token starting with byte 0x%02x", c)
		l.tokens = nil
		return nil
	}
}

// lexString scans a double-quoted STRING. A backslash consumes the
// following byte literally (including `\"`); the lexeme includes both
// delimiters.
func lexString(l *lexer) stateFn {
	l.advance() // leading "
	for {
		c := l.cur()
		switch c {
		case 0:
			l.errs.Add(l.sline, l.scol, "unterminated string starting at %d:%d", l.sline, l.scol)
			l.tokens = nil
			return nil
		case '\\':
			l.advance() // backslash
			if l.cur() != 0 {
				l.advance() // the escaped byte
			}
		case '"':
			l.advance()
			l.emit(token.STRING)
			return lexGround
		default:
			l.advance()
		}
	}
}

// lexRegex scans a single-quoted REGEX. No escape handling.
func lexRegex(l *lexer) stateFn {
	l.advance() // leading '
	for {
		c := l.cur()
		switch c {
		case 0:
			l.errs.Add(l.sline, l.scol, "unterminated regex starting at %d:%d", l.sline, l.scol)
			l.tokens = nil
			return nil
		case '\'':
			l.advance()
			l.emit(token.REGEX)
			return lexGround
		default:
			l.advance()
		}
	}
}

func lexInteger(l *lexer) stateFn {
	for {
		c := l.cur()
		if c < '0' || c > '9' {
			break
		}
		l.advance()
	}
	l.emit(token.INTEGER)
	return lexGround
}
