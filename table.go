// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file implements the directive table and its enablement query.

package flexlog

import "strings"

// directiveTable is an immutable, order-sensitive collection of directives,
// sorted ascending by name length as produced by ParseSpec. Built once at
// initialization and read by arbitrarily many goroutines without
// synchronization.
type directiveTable []Directive

// enabled reports whether a record at the given level and target passes the
// table. It scans from the longest name toward the shortest and lets the
// first directive whose name prefixes the target decide; the empty name
// matches everything and, sorting first, acts as the global fallback. With
// no matching directive the record is disabled.
func (t directiveTable) enabled(level Level, target string) bool {
	for i := len(t) - 1; i >= 0; i-- {
		d := t[i]
		if d.Name == "" || strings.HasPrefix(target, d.Name) {
			return level <= d.Level
		}
	}
	return false
}

// maxLevel returns the highest ceiling configured anywhere in the table, or
// LevelOff for an empty table. Records above this level cannot be enabled
// by any directive, which gives the facade a cheap pre-check.
func (t directiveTable) maxLevel() Level {
	max := LevelOff
	for _, d := range t {
		if d.Level > max {
			max = d.Level
		}
	}
	return max
}
