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

// Package indent provides an io.Writer that inserts a fixed prefix at
// the start of every line written through it, used by cmd/telexctl's
// ast formatter to indent nested CST dumps.
package indent

import (
	"bytes"
	"io"
)

// String returns s with prefix inserted at the start of every line.
func String(prefix, s string) string {
	return string(Bytes([]byte(prefix), []byte(s)))
}

// Bytes returns b with prefix inserted at the start of every line.
func Bytes(prefix, b []byte) []byte {
	var out bytes.Buffer
	w := NewWriter(&out, string(prefix))
	w.Write(b)
	return out.Bytes()
}

// Writer indents every line written to it with a fixed prefix before
// forwarding the result to an underlying io.Writer.
type Writer struct {
	w      io.Writer
	prefix []byte
	atBOL  bool
}

// NewWriter returns a Writer that writes to w, indenting every line
// with prefix.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), atBOL: true}
}

// Write implements io.Writer. p is transformed into a larger,
// prefixed buffer and written to the underlying writer in one call;
// the returned count is the number of bytes of p represented by
// however much of that buffer the underlying writer accepted, so a
// partial or failed underlying write is reported against p's own
// length rather than the (longer) prefixed one.
func (w *Writer) Write(p []byte) (int, error) {
	var out bytes.Buffer
	// srcOf[i] is the index into p that out.Bytes()[i] came from, or
	// -1 if it is a byte of an inserted prefix.
	srcOf := make([]int, 0, len(p)+len(w.prefix))

	atBOL := w.atBOL
	for i, c := range p {
		if atBOL {
			out.Write(w.prefix)
			for range w.prefix {
				srcOf = append(srcOf, -1)
			}
			atBOL = false
		}
		out.WriteByte(c)
		srcOf = append(srcOf, i)
		if c == '\n' {
			atBOL = true
		}
	}

	written, err := w.w.Write(out.Bytes())
	if written > len(srcOf) {
		written = len(srcOf)
	}

	n := 0
	for _, s := range srcOf[:written] {
		if s >= 0 {
			n = s + 1
		}
	}
	if written == out.Len() {
		w.atBOL = atBOL
	}
	return n, err
}
