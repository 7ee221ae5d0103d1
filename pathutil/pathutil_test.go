// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosixToWin(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		prefix   string
		expected string
	}{
		{
			name:     "single drive path",
			path:     "/c/Users/x",
			expected: `c:\Users\x`,
		},
		{
			name:     "uppercase drive preserved",
			path:     "/C/Users/x",
			expected: `C:\Users\x`,
		},
		{
			name:     "bare drive root",
			path:     "/c/",
			expected: `c:\`,
		},
		{
			name:     "path list converts separator",
			path:     "/c/foo:/d/bar",
			expected: `c:\foo;d:\bar`,
		},
		{
			name:     "already windows is normalized only",
			path:     `C:/foo/bar`,
			expected: `C:\foo\bar`,
		},
		{
			name:     "semicolon means already windows",
			path:     `C:\foo;D:\bar`,
			expected: `C:\foo;D:\bar`,
		},
		{
			name:     "cygdrive prefix",
			path:     "/cygdrive/c/foo",
			prefix:   CygdrivePrefix,
			expected: `c:\foo`,
		},
		{
			name:     "cygdrive list",
			path:     "/cygdrive/c/foo:/cygdrive/d/bar",
			prefix:   CygdrivePrefix,
			expected: `c:\foo;d:\bar`,
		},
		{
			name:     "no drive segment passes through",
			path:     "relative/path",
			expected: "relative/path",
		},
		{
			name:     "empty string",
			path:     "",
			expected: "",
		},
		{
			name:     "path with spaces",
			path:     "/c/Program Files/app",
			expected: `c:\Program Files\app`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PosixToWin(tt.path, tt.prefix))
		})
	}
}

func TestPosixToWinIdempotent(t *testing.T) {
	inputs := []string{
		"/c/Users/x",
		"/c/foo:/d/bar",
		`C:\already\native`,
		"plain",
		"",
	}
	for _, in := range inputs {
		once := PosixToWin(in, "")
		assert.Equal(t, once, PosixToWin(once, ""), "input %q", in)
	}
}

func TestWinToPosix(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		prefix   string
		expected string
	}{
		{
			name:     "single drive path",
			path:     `C:\Users\x`,
			expected: "/C/Users/x",
		},
		{
			name:     "forward slash windows path",
			path:     `C:/Users/x`,
			expected: "/C/Users/x",
		},
		{
			name:     "path list converts separator",
			path:     `c:\foo;d:\bar`,
			expected: "/c/foo:/d/bar",
		},
		{
			name:     "cygdrive prefix",
			path:     `c:\foo`,
			prefix:   CygdrivePrefix,
			expected: "/cygdrive/c/foo",
		},
		{
			name:     "posix path passes through",
			path:     "/usr/local/bin",
			expected: "/usr/local/bin",
		},
		{
			name:     "drive letter inside token is not a drive",
			path:     "http://example",
			expected: "http://example",
		},
		{
			name:     "empty string",
			path:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WinToPosix(tt.path, tt.prefix))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Well-formed single-drive paths survive a full round trip modulo
	// separator normalization.
	posixPaths := []string{
		"/C/Users/x",
		"/D/a/b/c",
	}
	for _, p := range posixPaths {
		assert.Equal(t, p, WinToPosix(PosixToWin(p, ""), ""), "posix %q", p)
	}

	winPaths := []string{
		`C:\Users\x`,
		`D:\a\b\c`,
	}
	for _, p := range winPaths {
		assert.Equal(t, p, PosixToWin(WinToPosix(p, ""), ""), "windows %q", p)
	}
}

func TestCygwinConverters(t *testing.T) {
	assert.Equal(t, `c:\foo`, CygwinToWin("/cygdrive/c/foo"))
	assert.Equal(t, "/cygdrive/c/foo", WinToCygwin(`c:\foo`))

	// Round trip through the cygdrive mangling.
	assert.Equal(t, "/cygdrive/c/foo", WinToCygwin(CygwinToWin("/cygdrive/c/foo")))
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, `C:\anything`, Identity(`C:\anything`))
	assert.Equal(t, "", Identity(""))
}

func TestTranslateLines(t *testing.T) {
	in := "/c/one\n/d/two\nplain"
	out := TranslateLines(in, func(p string) string { return PosixToWin(p, "") })
	assert.Equal(t, "c:\\one\nd:\\two\nplain", out)

	assert.Equal(t, "a\nb", TranslateLines("a\nb", Identity))
}
