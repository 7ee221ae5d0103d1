// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package pathutil

import (
	"regexp"
	"strings"
)

// Converter transforms a path (or list of paths) from one path
// convention to another. Shell dialects reference converters to
// describe how paths must be rewritten before they are handed to that
// shell.
type Converter func(string) string

// CygdrivePrefix is the mount prefix Cygwin uses to expose Windows
// drives inside its POSIX filesystem view.
const CygdrivePrefix = "/cygdrive"

// listSepFixup rewrites a ":X:\" sequence left behind after drive
// substitution into ";X:\", converting the POSIX list separator into
// the Windows one.
var listSepFixup = regexp.MustCompile(`:([a-zA-Z]):\\`)

// Identity returns the path unchanged. Used where the shell's path
// convention matches the host's and no conversion applies.
func Identity(path string) string {
	return path
}

// PosixToWin converts a POSIX-style path, or a colon-separated list of
// paths, into its native Windows representation.
//
// Input that already looks like a Windows path (contains a ";", or has
// a drive colon in second position and no other colon) is returned
// with forward slashes flipped to backslashes and nothing else
// changed, so the function is idempotent on native input. Otherwise
// every "<cygdrivePrefix>/X/rest" drive segment is rewritten to
// "X:rest" with backslash separators, and any list separator preceding
// a converted drive is switched from ":" to ";". Input matching
// neither form passes through unchanged; that is a policy, not an
// error.
//
// cygdrivePrefix is empty for MSYS2-style paths ("/c/foo") and
// CygdrivePrefix for Cygwin-style paths ("/cygdrive/c/foo").
//
// The drive letter's case is preserved. Paths containing colons or
// semicolons outside the drive position are detected heuristically and
// are not guaranteed to round-trip.
func PosixToWin(path, cygdrivePrefix string) string {
	if len(path) > 1 && (strings.Contains(path, ";") || (path[1] == ':' && strings.Count(path, ":") == 1)) {
		// already a windows path
		return strings.ReplaceAll(path, "/", "\\")
	}

	var b strings.Builder
	b.Grow(len(path))
	i := 0
	for i < len(path) {
		n := driveSegmentLen(path[i:], cygdrivePrefix)
		if n == 0 {
			b.WriteByte(path[i])
			i++
			continue
		}
		seg := path[i : i+n]
		letter := seg[len(cygdrivePrefix)+1]
		rest := seg[len(cygdrivePrefix)+2:]
		b.WriteByte(letter)
		b.WriteByte(':')
		b.WriteString(strings.ReplaceAll(rest, "/", "\\"))
		i += n
	}

	return listSepFixup.ReplaceAllString(b.String(), `;$1:\`)
}

// driveSegmentLen reports the length of the drive segment
// "<prefix>/X/rest" at the start of s, or 0 if s does not begin with
// one. rest may contain any character except the ones Windows reserves
// in paths (":", "*", "?", `"`, "<", ">") and stops before a
// whitespace character immediately followed by "/", which is taken to
// separate two independent paths.
func driveSegmentLen(s, prefix string) int {
	if !strings.HasPrefix(s, prefix) {
		return 0
	}
	j := len(prefix)
	if len(s) < j+3 || s[j] != '/' || !isAlpha(s[j+1]) || s[j+2] != '/' {
		return 0
	}
	for j += 3; j < len(s); j++ {
		c := s[j]
		if c == ':' || c == '*' || c == '?' || c == '"' || c == '<' || c == '>' {
			break
		}
		if isSpace(c) && j+1 < len(s) && s[j+1] == '/' {
			break
		}
	}
	return j
}

// WinToPosix converts a native Windows path, or a semicolon-separated
// list of paths, into its POSIX representation.
//
// Each drive specification "X:\rest" becomes "<cygdrivePrefix>/X/rest"
// with forward-slash separators; a ";" separating two converted drive
// paths becomes ":". A drive letter embedded in a longer token (for
// example a URL scheme) is not treated as a drive. Input with no drive
// specification passes through unchanged.
func WinToPosix(path, cygdrivePrefix string) string {
	var b strings.Builder
	b.Grow(len(path))
	i := 0
	for i < len(path) {
		if !driveStartsAt(path, i) {
			b.WriteByte(path[i])
			i++
			continue
		}
		end := driveSpecEnd(path, i)
		seg := strings.ReplaceAll(path[i:end], "\\", "/")
		seg = strings.ReplaceAll(seg, ":", "")
		for strings.Contains(seg, "//") {
			seg = strings.ReplaceAll(seg, "//", "/")
		}
		b.WriteString(cygdrivePrefix)
		b.WriteByte('/')
		b.WriteString(seg)
		i = end
	}
	return strings.ReplaceAll(b.String(), ";/", ":/")
}

// driveStartsAt reports whether a drive specification ("X:" followed
// by a path separator) begins at index i and is not the tail of a
// longer token.
func driveStartsAt(path string, i int) bool {
	if i+2 >= len(path) {
		return false
	}
	if !isAlpha(path[i]) || path[i+1] != ':' || !isSep(path[i+2]) {
		return false
	}
	if i > 0 {
		p := path[i-1]
		if isAlpha(p) || p == ':' || p == '/' || p == '^' {
			return false
		}
	}
	return true
}

// driveSpecEnd returns the index just past the drive specification
// starting at i. The specification runs until a character Windows
// reserves in paths, or until a ";" that introduces the next drive of
// a path list.
func driveSpecEnd(path string, i int) int {
	j := i + 2
	for j < len(path) {
		c := path[j]
		if c == ':' || c == '*' || c == '?' || c == '"' || c == '<' || c == '>' || c == '|' {
			break
		}
		if c == ';' && driveStartsAt(path, j+1) {
			break
		}
		j++
	}
	return j
}

// CygwinToWin converts a Cygwin-mangled path ("/cygdrive/c/foo") to
// its native Windows form.
func CygwinToWin(path string) string {
	return PosixToWin(path, CygdrivePrefix)
}

// WinToCygwin converts a native Windows path to its Cygwin-mangled
// form ("/cygdrive/c/foo").
func WinToCygwin(path string) string {
	return WinToPosix(path, CygdrivePrefix)
}

// TranslateLines applies a converter to every newline-separated line
// of stream, preserving the line structure. Useful for rewriting the
// output of commands that print one path per line.
func TranslateLines(stream string, c Converter) string {
	lines := strings.Split(stream, "\n")
	for i, line := range lines {
		lines[i] = c(line)
	}
	return strings.Join(lines, "\n")
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isSep(c byte) bool {
	return c == '/' || c == '\\'
}
