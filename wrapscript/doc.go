// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package wrapscript generates the temporary wrapper scripts that run
// a command inside an activated conda environment.
//
// Launching a child process "inside" an environment needs an
// activation step the child's shell performs before the user command
// runs. Build emits a small platform-specific script — a .bat file
// driven by cmd.exe on Windows, a bash/sh script elsewhere — that
// activates the target environment and then executes the command, and
// returns the argument vector a process launcher uses to run it.
//
// This package only constructs the script and the argument vector; it
// never executes anything, and it never deletes the script it created.
// The file must outlive the Build call so the launcher can read it, so
// cleanup is explicitly the caller's job.
package wrapscript
