// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file implements the parser for the logging specification
// mini-language, e.g. "crate1,crate2::mod=debug,crate3=off/pattern".

package flexlog

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

// warnWriter receives parse-time warnings. Parse anomalies are always
// recovered with best-effort continuation; the warning is their only
// observable side effect. Tests inject a buffer here.
var warnWriter io.Writer = os.Stderr

// ParseSpec parses a logging specification string into a slice of
// directives and an optional exclusion pattern.
//
// The specification has the form "mods[/pattern]" where mods is a
// comma-separated list of directives:
//
//	info               global fallback at level info
//	crate1             everything for module prefix crate1
//	crate1::mod=debug  module prefix crate1::mod at level debug
//	crate1::mod=       module prefix crate1::mod at the maximum level
//
// A bare token is first tried as a level (keyword or numeric rank) and
// becomes a global fallback directive; otherwise it names a module. The
// optional pattern after '/' is compiled as a regular expression and
// suppresses records whose rendered message matches it.
//
// The returned directives are stable-sorted ascending by name length, which
// is the order the matcher relies on. Directives with names of equal length
// keep their original parse order, so among equally specific rules the last
// one written decides; callers should not rely on that tie-break.
//
// All anomalies are recovered locally: an unparsable level or a segment
// with multiple '=' drops that single directive, an invalid pattern drops
// only the pattern, and a spec with more than one '/' is void as a whole
// (empty directive slice, nil pattern). None of these return errors; a
// warning on the warning stream is the only side effect.
func ParseSpec(spec string) ([]Directive, *regexp.Regexp) {
	mods := spec
	pattern := ""
	hasPattern := false
	if i := strings.IndexByte(spec, '/'); i >= 0 {
		mods = spec[:i]
		pattern = spec[i+1:]
		hasPattern = true
		if strings.IndexByte(pattern, '/') >= 0 {
			fmt.Fprintf(warnWriter, "flexlog: invalid logging spec %q, ignoring it (too many '/'s)\n", spec)
			return nil, nil
		}
	}

	var dirs []Directive
	for _, seg := range strings.Split(mods, ",") {
		if seg == "" {
			continue
		}
		parts := strings.Split(seg, "=")
		switch len(parts) {
		case 1:
			// A bare token that parses as a level is a global fallback,
			// anything else names a module at the maximum level.
			if lvl, err := ParseLevel(parts[0]); err == nil {
				dirs = append(dirs, Directive{Level: lvl})
			} else {
				dirs = append(dirs, Directive{Name: parts[0], Level: LevelMax})
			}
		case 2:
			rhs := strings.TrimSpace(parts[1])
			if rhs == "" {
				dirs = append(dirs, Directive{Name: parts[0], Level: LevelMax})
				continue
			}
			lvl, err := ParseLevel(rhs)
			if err != nil {
				fmt.Fprintf(warnWriter, "flexlog: invalid logging spec %q, ignoring it\n", rhs)
				continue
			}
			dirs = append(dirs, Directive{Name: parts[0], Level: lvl})
		default:
			fmt.Fprintf(warnWriter, "flexlog: invalid logging spec %q, ignoring it\n", seg)
		}
	}

	// The matcher scans from the end, so the least specific names must sort
	// first. The sort is stable; equal lengths keep parse order.
	sort.SliceStable(dirs, func(i, j int) bool {
		return len(dirs[i].Name) < len(dirs[j].Name)
	})

	var filter *regexp.Regexp
	if hasPattern {
		re, err := regexp.Compile(pattern)
		if err != nil {
			// Pattern-compile failure never discards directive information.
			fmt.Fprintf(warnWriter, "flexlog: invalid regex filter %q: %v\n", pattern, err)
		} else {
			filter = re
		}
	}
	return dirs, filter
}
