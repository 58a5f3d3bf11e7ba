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

package main

import (
	"fmt"
	"io"

	"github.com/telexlang/telex/internal/ast"
	"github.com/telexlang/telex/pkg/indent"
)

func init() {
	register(&formatter{
		name: "ast",
		f:    doAST,
		help: "pretty-dump the parsed syntax tree for each EXPR",
	})
}

func doAST(w io.Writer, res *cmdResult) {
	for i, t := range res.Telexes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		dumpTelex(w, t)
	}
}

func dumpTelex(w io.Writer, t *ast.Telex) {
	if t == nil {
		fmt.Fprintln(w, "<nil>")
		return
	}
	if t.Prefix != nil {
		fmt.Fprintf(w, "telex prefix=%s\n", t.Prefix.Kind)
	} else {
		fmt.Fprintln(w, "telex prefix=<absolute>")
	}
	dumpCompound(indent.NewWriter(w, "  "), t.Compound)
}

func dumpCompound(w io.Writer, c *ast.CompoundExpr) {
	if c == nil {
		fmt.Fprintln(w, "<nil compound>")
		return
	}
	fmt.Fprintln(w, "compound head:")
	dumpOr(indent.NewWriter(w, "  "), c.Head)
	for _, cont := range c.Rest {
		fmt.Fprintf(w, "compound op=%s:\n", cont.Op.Kind)
		dumpOr(indent.NewWriter(w, "  "), cont.Elem)
	}
}

func dumpOr(w io.Writer, o *ast.OrExpr) {
	if o == nil {
		fmt.Fprintln(w, "<nil or>")
		return
	}
	dumpPrimary(w, o.Head)
	for _, cont := range o.Rest {
		fmt.Fprintln(w, "or |:")
		dumpPrimary(indent.NewWriter(w, "  "), cont.Elem)
	}
}

func dumpPrimary(w io.Writer, p *ast.PrimaryExpr) {
	switch p.Kind() {
	case ast.PrimaryStringy:
		kind := "string"
		if p.Stringy.IsRegex() {
			kind = "regex"
		}
		fmt.Fprintf(w, "%s %s\n", kind, p.Stringy.Tok.Text)
	case ast.PrimaryLine:
		fmt.Fprintf(w, "line %s\n", p.Line.N.Text)
	case ast.PrimaryCol:
		fmt.Fprintf(w, "col %s\n", p.Col.N.Text)
	case ast.PrimaryNested:
		fmt.Fprintln(w, "nested:")
		dumpTelex(indent.NewWriter(w, "  "), p.Nested)
	default:
		fmt.Fprintln(w, "<invalid primary>")
	}
}
