// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

// Package flexlog provides a module-filtered logging library that writes to
// standard error or to a fresh trace file.
// This file handles the one-time installation of the process-wide logger
// and the construction of the router from a Config and a specification
// string.

package flexlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"
)

// specEnvVar is consulted when Init receives an empty specification string.
const specEnvVar = "FLEXLOG"

// ErrAlreadyInitialized is returned by Init when a logger has already been
// installed for this process. The existing logger stays in place.
var ErrAlreadyInitialized = errors.New("flexlog: already initialized")

var (
	global   *router
	globalMu sync.RWMutex
)

// Init installs the process-wide logger. It may succeed at most once per
// process; later attempts return ErrAlreadyInitialized and leave the
// installed logger untouched.
//
// The level specification is taken from spec when non-empty, otherwise from
// the FLEXLOG environment variable, otherwise it defaults to the single
// global directive "error". See ParseSpec for the specification grammar.
//
// When cfg.LogToFile is set the trace file is created here; failure to
// create it panics, consistent with the fatal-on-sink-failure policy: the
// program must not continue believing it has a working file logger.
func Init(cfg Config, spec string) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global != nil {
		return ErrAlreadyInitialized
	}
	global = newRouter(cfg, spec)
	return nil
}

// installed returns the active router, or nil before Init.
func installed() *router {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Stats returns the totals of records written, suppressed by the exclusion
// pattern, and denied by the directive table since Init. All zeros before
// initialization. Safe for concurrent use.
func Stats() (written, suppressed, denied int64) {
	ro := installed()
	if ro == nil {
		return 0, 0, 0
	}
	return ro.stats()
}

// newRouter is the core factory. It applies defaults to the Config,
// resolves and parses the specification, and opens the trace file when file
// output is selected.
func newRouter(cfg Config, spec string) *router {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Format == nil {
		cfg.Format = DefaultFormat
	}

	var dirs []Directive
	var filter *regexp.Regexp
	if spec != "" {
		dirs, filter = ParseSpec(spec)
	} else if env, ok := os.LookupEnv(specEnvVar); ok {
		dirs, filter = ParseSpec(env)
	} else {
		// No configuration supplied at all: errors only.
		dirs = []Directive{{Level: LevelError}}
	}

	table := directiveTable(dirs)
	ro := &router{
		table:    table,
		filter:   filter,
		cfg:      cfg,
		maxLevel: table.maxLevel(),
	}

	if cfg.LogToFile {
		path := cfg.FilePath
		if path == "" {
			path = traceFileName(time.Now())
		}
		f, err := os.Create(path)
		if err != nil {
			panic(fmt.Sprintf("flexlog: cannot create trace file %s: %v", path, err))
		}
		if cfg.PrintMessage {
			fmt.Fprintf(cfg.Stdout, "Trace is written to %s\n", path)
		}
		ro.sink = newFileSink(f)
	}
	return ro
}

// traceFileName derives "<program>_<date>_<time>.trc" from the process name
// and the given timestamp.
func traceFileName(now time.Time) string {
	prog := filepath.Base(os.Args[0])
	prog = strings.TrimSuffix(prog, filepath.Ext(prog))
	return prog + now.Format("_2006-01-02_15-04-05") + ".trc"
}
