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

// Package diag implements the diagnostic linked list shared by the
// lexer and parser: a {line, col, message} entry with an optional
// link to the next diagnostic in append order (lexer errors precede
// parser errors).
package diag

import "fmt"

// Error is one diagnostic produced while lexing or parsing. Line and
// Col are 1-based. Errors form a singly-linked list in append order
// via Next, mirroring original_source/include/telex/error.h.
type Error struct {
	Line    int
	Col     int
	Message string
	Next    *Error
}

// New returns a single diagnostic with no chained Next.
func New(line, col int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
}

// Error satisfies the standard error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// Unwrap lets errors.Is/errors.As/errors.Unwrap walk the chain.
func (e *Error) Unwrap() error {
	if e == nil || e.Next == nil {
		return nil
	}
	return e.Next
}

// List accumulates diagnostics in append order and exposes them as a
// singly-linked chain via Head.
type List struct {
	head *Error
	tail *Error
}

// Add appends a new diagnostic to l.
func (l *List) Add(line, col int, format string, args ...interface{}) {
	e := New(line, col, format, args...)
	if l.head == nil {
		l.head = e
		l.tail = e
		return
	}
	l.tail.Next = e
	l.tail = e
}

// AddError appends an already-built diagnostic (or chain) to l.
func (l *List) AddError(e *Error) {
	if e == nil {
		return
	}
	if l.head == nil {
		l.head = e
	} else {
		l.tail.Next = e
	}
	// advance tail to the end of e's chain
	t := e
	for t.Next != nil {
		t = t.Next
	}
	l.tail = t
}

// Head returns the first diagnostic, or nil if l is empty.
func (l *List) Head() *Error { return l.head }

// Empty reports whether no diagnostics have been recorded.
func (l *List) Empty() bool { return l.head == nil }

// Slice returns the diagnostics as a plain slice, in append order.
func (l *List) Slice() []*Error {
	var out []*Error
	for e := l.head; e != nil; e = e.Next {
		out = append(out, e)
	}
	return out
}
