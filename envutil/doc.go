// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package envutil resolves the environment variables the shell-interop
// core consumes and converts between map and KEY=VALUE-slice
// representations of an environment.
//
// COMSPEC is required on Windows hosts and its absence is an error
// (ErrNoComspec); CONDA_BAT and CONDA_EXE are optional overrides that
// fall back to paths computed from the installation root.
package envutil
