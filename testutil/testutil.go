// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package testutil provides common testing utilities: capturing
// stdout, and building throwaway environment-prefix directories for
// wrapper-script tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns
// the captured output. The original stdout is always restored, even if
// the function returns an error.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered so the reader goroutine never leaks.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	_ = w.Close()
	os.Stdout = origStdout
	out := <-outCh
	_ = r.Close()

	if fnErr != nil {
		t.Fatalf("captured function failed: %v", fnErr)
	}
	return out
}

// TempPrefix creates a throwaway environment-prefix directory layout
// (the prefix itself plus its bin subdirectory) and returns the prefix
// path. The directory is removed when the test finishes.
func TempPrefix(t *testing.T) string {
	t.Helper()

	prefix := t.TempDir()
	if err := os.MkdirAll(filepath.Join(prefix, "bin"), 0o750); err != nil {
		t.Fatalf("Failed to create bin dir: %v", err)
	}
	return prefix
}
