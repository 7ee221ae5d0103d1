// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package pathutil translates filesystem paths between the POSIX,
// native Windows, and Cygwin path conventions.
//
// A single conda installation may be driven from cmd.exe, from an
// MSYS2 bash, or from Cygwin, and each of those expects paths in a
// different shape. This package provides the pure conversion functions
// the shell dialect tables plug in as their path converters.
//
// # Conventions
//
// Three conventions are handled:
//   - POSIX/MSYS2: "/c/Users/me" ("/" separators, drive as the first
//     path component)
//   - Cygwin: "/cygdrive/c/Users/me" (same, under the cygdrive mount)
//   - Windows: `C:\Users\me`
//
// Path lists are converted too: the POSIX ":" list separator and the
// Windows ";" list separator are rewritten alongside the paths
// themselves.
//
// # Heuristics
//
// Inputs are plain strings, so the functions decide by inspection
// whether a string is already in the target convention. The detection
// is heuristic: a POSIX path containing a literal colon outside the
// drive position may be misclassified. Callers that know the
// convention of their inputs are unaffected; pathological inputs pass
// through unchanged rather than erroring. The heuristics are kept
// deliberately stable because generated activation scripts depend on
// their exact behavior.
//
// # Example
//
//	pathutil.PosixToWin("/c/Users/me", "")          // `c:\Users\me`
//	pathutil.CygwinToWin("/cygdrive/c/Users/me")    // `c:\Users\me`
//	pathutil.WinToPosix(`C:\tools;D:\bin`, "")      // "/C/tools:/D/bin"
package pathutil
