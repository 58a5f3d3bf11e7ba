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
	"github.com/telexlang/telex/internal/lexer"
)

func init() {
	register(&formatter{
		name: "tokens",
		f:    doTokens,
		help: "dump the lexer token stream for each EXPR",
	})
}

func doTokens(w io.Writer, res *cmdResult) {
	for i, t := range res.Telexes {
		src := ast.ToString(t)
		toks, errs := lexer.Scan(src)
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%q:\n", src)
		if !errs.Empty() {
			fmt.Fprintf(w, "  error: %v\n", errs.Head())
			continue
		}
		for _, tok := range toks {
			fmt.Fprintf(w, "  %s\n", tok)
		}
	}
}
