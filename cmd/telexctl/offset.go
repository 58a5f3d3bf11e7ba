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
)

func init() {
	register(&formatter{
		name: "offset",
		f:    doOffset,
		help: "print the resulting byte offset, or the evaluation error",
	})
}

func doOffset(w io.Writer, res *cmdResult) {
	if res.Err != nil {
		fmt.Fprintln(w, res.Err)
		return
	}
	fmt.Fprintln(w, res.Pos)
}
