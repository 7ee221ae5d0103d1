// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package fileutil provides the file primitives the shell-interop core
// consumes: persisting temporary files for generated wrapper scripts,
// streaming file digests, atomic writes, and human-readable byte
// formatting.
//
// # Persisting temp files
//
// CreateTemp and WriteTemp create uniquely named files that survive
// the handle being closed. Generated activation scripts are read by a
// separately launched process after the creating call returns, so
// auto-deleting temp files would race with the launcher. The caller
// owns cleanup.
//
// # Digests
//
// Digest hashes a file in fixed 256 KiB chunks and returns a hex
// string. md5 and sha1 remain available because existing package
// metadata records them; prefer sha256 for new data.
package fileutil
