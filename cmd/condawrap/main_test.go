// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatyamVyas00/conda/testutil"
)

// runCommand executes the root command with the given arguments and
// returns everything it printed to stdout.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	return testutil.CaptureOutput(t, func() error {
		cmd := newRootCmd()
		cmd.SetArgs(args)
		return cmd.Execute()
	})
}

func TestPathToWin(t *testing.T) {
	out := runCommand(t, "path", "to-win", "/c/Users/dev")
	assert.Equal(t, "c:\\Users\\dev\n", out)
}

func TestPathToWinCygdrive(t *testing.T) {
	out := runCommand(t, "path", "to-win", "--cygdrive", "/cygdrive/c/Users/dev")
	assert.Equal(t, "c:\\Users\\dev\n", out)
}

func TestPathToPosix(t *testing.T) {
	out := runCommand(t, "path", "to-posix", `C:\Users\dev`)
	assert.Equal(t, "/C/Users/dev\n", out)

	out = runCommand(t, "path", "to-posix", "--cygdrive", `C:\Users\dev`)
	assert.Equal(t, "/cygdrive/C/Users/dev\n", out)
}

func TestQuote(t *testing.T) {
	out := runCommand(t, "quote", "--shell", "bash", "--", "echo", "hi there")
	assert.Equal(t, "echo \"hi there\"\n", out)

	out = runCommand(t, "quote", "--shell", "cmd.exe", "--", "echo", "hi there")
	assert.Equal(t, "echo \"hi there\"\n", out)
}

func TestShells(t *testing.T) {
	out := runCommand(t, "shells", "--os", "posix")
	for _, name := range []string{"bash", "dash", "fish", "zsh"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "cmd.exe")

	out = runCommand(t, "shells", "--os", "windows")
	assert.Contains(t, out, "cmd.exe")
	assert.Contains(t, out, "cygwin")
}

func TestShellsJSON(t *testing.T) {
	out := runCommand(t, "shells", "--os", "posix", "-o", "json")
	assert.Contains(t, out, `"name": "bash"`)
	assert.Contains(t, out, `"exe": "bash"`)
}

func TestShellsConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "shells.yaml")
	data := "shells:\n  ksh:\n    base: posix\n    exe: ksh\n"
	require.NoError(t, os.WriteFile(config, []byte(data), 0o644))

	out := runCommand(t, "shells", "--os", "posix", "--config", config)
	assert.Contains(t, out, "ksh")
}

func TestShellsUnknownOS(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"shells", "--os", "plan9"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan9")
}

func TestWrap(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("wrapper generation for the host platform; POSIX-only assertions")
	}

	prefix := testutil.TempPrefix(t)
	out := runCommand(t, "wrap", "--prefix", prefix, "--", "python", "--version")

	assert.Contains(t, out, "Script:")
	assert.Contains(t, out, prefix)
	assert.Contains(t, out, "-x")

	// The script itself must exist and activate the prefix.
	var script string
	for _, line := range strings.Split(out, "\n") {
		if idx := strings.Index(line, "Script:"); idx >= 0 {
			script = strings.TrimSpace(line[idx+len("Script:"):])
		}
	}
	require.NotEmpty(t, script)
	content, err := os.ReadFile(script)
	require.NoError(t, err)
	assert.Contains(t, string(content), "conda activate")
}

func TestWrapJSON(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("wrapper generation for the host platform; POSIX-only assertions")
	}

	prefix := testutil.TempPrefix(t)
	out := runCommand(t, "wrap", "--prefix", prefix, "-o", "json", "--", "true")
	assert.Contains(t, out, `"script"`)
	assert.Contains(t, out, `"command"`)
}

func TestVersionQuiet(t *testing.T) {
	out := runCommand(t, "version", "--quiet")
	assert.Equal(t, versionInfo.Version+"\n", out)
}
