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

// Program telexctl parses and evaluates telex expressions against a
// buffer read from a file or standard input.
//
// Usage: telexctl [--format FORMAT] [--origin N | --absolute] EXPR... [--file FILE]
//
// EXPR is one or more telex expressions (see the telex package for
// the grammar). With a single EXPR, telexctl evaluates it against the
// buffer starting at --origin (0 by default) and prints the resulting
// byte offset. With --multi and more than one EXPR, each expression
// is evaluated in turn, threading the previous result (and any sticky
// prefix) into the next, per telex.LookupMulti.
//
// --reverse N builds a telex that reproduces offset N and ignores any
// EXPR arguments.
//
// FORMAT, which defaults to "offset", selects what telexctl prints;
// use "telexctl --help" for the list of available formats.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pborman/getopt"

	"github.com/telexlang/telex"
	"github.com/telexlang/telex/pkg/indent"
)

// Each format must register a formatter with register. f is called
// once with the fully-evaluated result.
type formatter struct {
	name string
	f    func(io.Writer, *cmdResult)
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

// cmdResult is the outcome telexctl hands to whichever formatter the
// caller selected.
type cmdResult struct {
	Telexes []*telex.Telex
	Buf     []byte
	Pos     int
	Err     error
}

var stop = os.Exit

// Exit codes mirror spec.md §6's errno-style taxonomy, translated to
// small positive integers in the Unix convention of reserving 0 for
// success.
const (
	exitOK          = 0
	exitBadSyntax   = 1
	exitNotFound    = 2
	exitBadArgs     = 3
	exitUnsupported = 4
	exitUsage       = 64
)

func fail(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	stop(code)
}

func exitForEvalError(err error) {
	switch {
	case errors.Is(err, telex.ErrNotFound):
		stop(exitNotFound)
	case errors.Is(err, telex.ErrBadArgs):
		stop(exitBadArgs)
	case errors.Is(err, telex.ErrUnimplemented):
		stop(exitUnsupported)
	default:
		stop(exitBadSyntax)
	}
}

func main() {
	var (
		format   string
		origin   string
		reverse  string
		file     string
		multi    bool
		absolute bool
		help     bool
	)

	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT")
	getopt.StringVarLong(&origin, "origin", 0, "byte offset to evaluate relative telexes from (default 0)", "N")
	getopt.StringVarLong(&reverse, "reverse", 0, "byte offset to reverse-lookup instead of parsing EXPR", "N")
	getopt.StringVarLong(&file, "file", 0, "file to read the buffer from (default: standard input)", "FILE")
	getopt.BoolVarLong(&multi, "multi", 0, "evaluate every EXPR in sequence via LookupMulti")
	getopt.BoolVarLong(&absolute, "absolute", 0, "evaluate with no origin (only valid for an absolute telex)")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("EXPR...")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(exitUsage)
		return
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, fn := range formats {
			fmt.Fprintf(indent.NewWriter(os.Stderr, "    "), "%s - %s\n", fn, formatters[fn].help)
		}
		stop(exitOK)
		return
	}

	if format == "" {
		format = "offset"
	}
	if _, ok := formatters[format]; !ok {
		fail(exitUsage, "%s: invalid format, choices are %s", format, strings.Join(formats, ", "))
		return
	}

	var buf []byte
	var err error
	if file != "" {
		buf, err = ioutil.ReadFile(file)
	} else {
		buf, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		fail(exitUsage, "%v", err)
		return
	}

	res := &cmdResult{Buf: buf}

	if reverse != "" {
		n, perr := strconv.Atoi(reverse)
		if perr != nil {
			fail(exitUsage, "--reverse: %v", perr)
			return
		}
		t, rerr := telex.ReverseLookup(buf, n)
		if rerr != nil {
			fail(exitBadSyntax, "%v", rerr)
			return
		}
		res.Telexes = []*telex.Telex{t}
		res.Pos = n
		formatters[format].f(os.Stdout, res)
		return
	}

	exprs := getopt.Args()
	if len(exprs) == 0 {
		fail(exitUsage, "at least one EXPR is required (or use --reverse)")
		return
	}
	if !multi && len(exprs) != 1 {
		fail(exitUsage, "multiple EXPR arguments require --multi")
		return
	}

	for _, expr := range exprs {
		t, errs := telex.Parse(expr)
		if len(errs) != 0 {
			fail(exitBadSyntax, "%s: %v", expr, errs[0])
			return
		}
		res.Telexes = append(res.Telexes, t)
	}

	start := 0
	if absolute {
		start = telex.NoOrigin
	} else if origin != "" {
		n, perr := strconv.Atoi(origin)
		if perr != nil {
			fail(exitUsage, "--origin: %v", perr)
			return
		}
		start = n
	}

	if multi {
		res.Pos, res.Err = telex.LookupMulti(buf, start, res.Telexes)
	} else {
		res.Pos, res.Err = telex.Lookup(res.Telexes[0], buf, start)
	}

	formatters[format].f(os.Stdout, res)
	if res.Err != nil {
		exitForEvalError(res.Err)
	}
}
