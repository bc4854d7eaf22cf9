// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intern provides a two-phase string-interning table: a mutable
// Init phase that assigns dense indices, and a frozen Built phase that only
// looks indices back up.
//
// Two indices are reserved at construction so that their value never
// changes across a Table's lifetime: [Main] (the package main/entrypoint
// name) and [LambdaImplicitParam] (the identifier bound to a lambda's
// implicit parameter, `on`).
package intern

import (
	"fmt"
	"sync"
)

// ID is an interned string in a particular [Table]. The zero value is
// invalid; use [Main] or [LambdaImplicitParam] for the two reserved slots,
// or a value returned by [Table.Intern].
type ID int32

// Reserved IDs, fixed at Table construction so that code that needs to spot
// the implicit main package or a lambda's implicit parameter does not need
// a handle to the table to compare against them.
const (
	Main ID = iota + 1
	LambdaImplicitParam
)

// String implements [fmt.Stringer]. It does not recover the interned
// string; use [Table.Value] for that.
func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", int(id))
}

// Table is a string-interning table.
//
// The zero value is not ready for use: construct a Table with [NewTable],
// which reserves [Main] and [LambdaImplicitParam].
type Table struct {
	mu     sync.RWMutex
	index  map[string]ID
	values []string
	frozen bool
}

// NewTable returns a Table in the Init phase with its reserved IDs already
// populated.
func NewTable() *Table {
	t := &Table{index: make(map[string]ID)}
	t.reserve("رئيسي")      // Main
	t.reserve("على")        // LambdaImplicitParam, matches the `on` keyword spelling
	return t
}

func (t *Table) reserve(s string) {
	t.values = append(t.values, s)
	t.index[s] = ID(len(t.values))
}

// Intern interns s, returning its existing ID if s was interned before, or
// a freshly assigned dense ID otherwise.
//
// After [Table.Freeze], Intern still returns the ID of an already interned
// string, and panics for a string not seen before.
func (t *Table) Intern(s string) ID {
	t.mu.RLock()
	if id, ok := t.index[s]; ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		panic("nazmc/intern: Intern called on a frozen table")
	}
	if id, ok := t.index[s]; ok {
		return id
	}

	t.values = append(t.values, s)
	id := ID(len(t.values))
	t.index[s] = id
	return id
}

// Freeze transitions the table from Init to Built. The transition is
// one-way; subsequent calls are no-ops.
func (t *Table) Freeze() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = true
}

// Value looks up the string that id was assigned to.
//
// If id was not produced by this table, the result is unspecified and may
// panic.
func (t *Table) Value(id ID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.values[int(id)-1]
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}
