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

// Package telexbatch contains high-level helpers for evaluating telex
// expressions across many buffers at once: take a batch of inputs,
// run the library over each, collect results and errors in the same
// order as the input.
package telexbatch

import (
	"context"
	"errors"
	"sync"

	"github.com/telexlang/telex"
)

// Job is one buffer/origin pair to evaluate a telex against.
type Job struct {
	Buf    []byte
	Origin int
}

// Result is the outcome of evaluating a telex against one Job, in the
// same position as the Job within the batch.
type Result struct {
	Pos int
	Err error
}

// EvaluateAll evaluates t against every job concurrently and returns
// one Result per job, in job order. Every goroutine shares the same
// parsed *telex.Telex read-only, per spec.md §5's "multiple threads
// may evaluate the same CST concurrently against different buffers
// without synchronization". Evaluation stops early for any job whose
// slot is reached after ctx is done; its Result.Err is ctx.Err().
func EvaluateAll(ctx context.Context, t *telex.Telex, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				results[i] = Result{Err: ctx.Err()}
				return
			default:
			}
			pos, err := telex.Lookup(t, job.Buf, job.Origin)
			results[i] = Result{Pos: pos, Err: err}
		}(i, job)
	}
	wg.Wait()

	return results
}

// ParseAll parses every expression in exprs independently. When every
// expression parses, it returns one *telex.Telex per input and a nil
// error slice. When any expression fails, it returns a nil tree slice
// and all diagnostics collected across the whole batch (unlike
// EvaluateAll's per-job Result, parse diagnostics are collected into
// a single flat slice, mirroring pkg/util.ProcessModules's "collect
// every error across the batch").
func ParseAll(exprs []string) ([]*telex.Telex, []*telex.Error) {
	parsed := make([]*telex.Telex, len(exprs))
	var allErrs []*telex.Error

	for i, expr := range exprs {
		t, errs := telex.Parse(expr)
		if len(errs) != 0 {
			allErrs = append(allErrs, errs...)
			continue
		}
		parsed[i] = t
	}

	if len(allErrs) != 0 {
		return nil, allErrs
	}
	return parsed, nil
}

// LookupAllMulti runs telex.LookupMulti against every job concurrently,
// using the same telexes slice (and its sticky-prefix state) for each
// job independently. Results are returned in job order.
func LookupAllMulti(telexes []*telex.Telex, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			pos, err := telex.LookupMulti(job.Buf, job.Origin, telexes)
			results[i] = Result{Pos: pos, Err: err}
		}(i, job)
	}
	wg.Wait()

	return results
}

// NotFound reports whether err is the telex package's "no such
// position" sentinel, a convenience for batch callers that want to
// distinguish a clean miss from a malformed-tree or argument error.
func NotFound(err error) bool {
	return errors.Is(err, telex.ErrNotFound)
}
