// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package logutil provides structured logging built on log/slog.
//
// A single global logger writes text or JSON to stderr; components
// that want scoped fields wrap it with NewLogger. Debug logging is
// enabled programmatically via SetupLogger or ambiently by setting
// CONDA_DEBUG=true.
package logutil
