// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package platform detects the host operating system family once and
// hands it around as an explicit value.
//
// The shell dialect table and the wrapper-script builder both branch
// on the host platform. Rather than reading ambient globals at the
// point of use, callers run Detect once and pass the result (or a
// hand-built Info in tests) into shellutil.NewRegistry and
// wrapscript.Options. This keeps both platforms' behavior reachable
// from a single test process.
package platform
