// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package shellutil describes shells: a registry of dialect records
// capturing each shell's syntax (echo, variable references, path and
// list separators, script suffixes, invocation arguments, path
// converters), and a quoter that joins argument vectors into
// command-line strings those shells parse back unchanged.
//
// # Dialects
//
// Every dialect derives from one of two base templates — a POSIX base
// and an MSYS2 base for bash variants hosted on Windows — by explicit
// record construction: the base is copied and individual fields are
// overridden. There is no hidden shared state between entries.
//
// The table is host-OS dependent. A Windows host registers cmd.exe,
// cygwin, and the MSYS2 bash/sh/zsh variants; a POSIX host registers
// bash, dash, zsh, and fish. The host OS is passed explicitly to
// NewRegistry so tests can build both tables in one process.
//
// Additional shells can be registered from YAML override files via
// LoadOverrides, each entry naming a base template and the fields that
// differ from it.
//
// # Quoting
//
// Quote targets a shell family, not an individual dialect: cmd.exe
// gets the native Windows argv-joining convention, everything else
// gets a simple POSIX priority rule. The POSIX rule has a documented
// limitation around arguments containing both quote characters; see
// Quote.
package shellutil
