// Copyright (c) 2026 The flexlog Authors
// This source code is licensed under the MIT License found in the LICENSE file.

package flexlog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func testRecord(level Level, target, message string) *Record {
	return &Record{Level: level, Target: target, Message: message, Time: time.Now()}
}

func TestRouteToStderr(t *testing.T) {
	out := &bytes.Buffer{}
	errb := &bytes.Buffer{}
	ro := newRouter(Config{Stdout: out, Stderr: errb}, "info")

	ro.route(testRecord(LevelInfo, "mod", "hello"))

	require.Equal(t, "INFO [mod] hello\n", errb.String())
	require.Empty(t, out.String())
}

func TestRouteDisabledRecordHasNoEffect(t *testing.T) {
	errb := &bytes.Buffer{}
	ro := newRouter(Config{Stderr: errb}, "error")

	ro.route(testRecord(LevelDebug, "mod", "invisible"))

	require.Empty(t, errb.String())
	written, suppressed, denied := ro.stats()
	require.Zero(t, written)
	require.Zero(t, suppressed)
	require.Equal(t, int64(1), denied)
}

func TestRouteExclusionSuppresses(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.trc")
	ro := newRouter(Config{
		LogToFile: true,
		FilePath:  file,
		Stdout:    &bytes.Buffer{},
		Stderr:    &bytes.Buffer{},
	}, "info/secret")

	ro.route(testRecord(LevelInfo, "mod", "carries a secret token"))
	ro.route(testRecord(LevelInfo, "mod", "plain progress note"))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.NotContains(t, string(data), "secret")
	require.Contains(t, string(data), "plain progress note")

	written, suppressed, _ := ro.stats()
	require.Equal(t, int64(1), written)
	require.Equal(t, int64(1), suppressed)
}

func TestRouteExclusionIsSubordinateToEnablement(t *testing.T) {
	errb := &bytes.Buffer{}
	ro := newRouter(Config{Stderr: errb}, "error/secret")

	// Disabled and matching: the enablement check wins, the filter is
	// never consulted.
	ro.route(testRecord(LevelDebug, "mod", "secret"))

	_, suppressed, denied := ro.stats()
	require.Zero(t, suppressed)
	require.Equal(t, int64(1), denied)
}

func TestRouteFileModeEchoesRawMessages(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.trc")
	out := &bytes.Buffer{}
	ro := newRouter(Config{
		LogToFile:      true,
		FilePath:       file,
		DuplicateError: true,
		Stdout:         out,
		Stderr:         &bytes.Buffer{},
	}, "trace")

	ro.route(testRecord(LevelError, "mod", "boom"))
	ro.route(testRecord(LevelInfo, "mod", "all fine"))

	// Only the error is echoed (DuplicateInfo is off), and it is the raw
	// message, not the formatted line.
	require.Equal(t, "boom\n", out.String())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(data), "ERROR [mod] boom\n")
	require.Contains(t, string(data), "INFO [mod] all fine\n")
}

func TestRouteFileModeEchoesInfoWhenConfigured(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.trc")
	out := &bytes.Buffer{}
	ro := newRouter(Config{
		LogToFile:     true,
		FilePath:      file,
		DuplicateInfo: true,
		Stdout:        out,
		Stderr:        &bytes.Buffer{},
	}, "trace")

	ro.route(testRecord(LevelInfo, "mod", "all fine"))
	ro.route(testRecord(LevelWarn, "mod", "watch out"))

	require.Equal(t, "all fine\n", out.String())
}

func TestRouteFileWriteFailureIsFatal(t *testing.T) {
	ro := &router{
		table:    directiveTable{{Level: LevelMax}},
		cfg:      Config{LogToFile: true, Stdout: &bytes.Buffer{}, Format: DefaultFormat},
		sink:     newFileSink(failingWriter{}),
		maxLevel: LevelMax,
	}

	require.Panics(t, func() {
		ro.route(testRecord(LevelInfo, "mod", "never lands"))
	})
}

func TestRouteStderrFailureIsSwallowed(t *testing.T) {
	ro := newRouter(Config{Stderr: failingWriter{}, Stdout: &bytes.Buffer{}}, "info")

	require.NotPanics(t, func() {
		ro.route(testRecord(LevelInfo, "mod", "best effort"))
	})
}

// Concurrent writers against the file sink must produce exactly
// goroutines*messages complete lines, none interleaved.
func TestConcurrentFileWritesKeepLinesIntact(t *testing.T) {
	const goroutines = 8
	const messages = 200

	file := filepath.Join(t.TempDir(), "out.trc")
	ro := newRouter(Config{
		LogToFile: true,
		FilePath:  file,
		Stdout:    &bytes.Buffer{},
		Stderr:    &bytes.Buffer{},
	}, "conc=trace")
	installForTest(t, ro)
	log := GetLogger("conc")

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messages; j++ {
				log.Infof("goroutine-%d-msg-%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, goroutines*messages)

	lineRE := regexp.MustCompile(`^INFO \[conc\] goroutine-\d+-msg-\d+$`)
	seen := make(map[string]bool, goroutines*messages)
	for i, line := range lines {
		require.Regexp(t, lineRE, line, "line %d garbled: %q", i, line)
		seen[line] = true
	}
	require.Len(t, seen, goroutines*messages, "duplicate or lost lines")

	for i := 0; i < goroutines; i++ {
		for j := 0; j < messages; j++ {
			require.True(t, seen[fmt.Sprintf("INFO [conc] goroutine-%d-msg-%d", i, j)])
		}
	}
}
