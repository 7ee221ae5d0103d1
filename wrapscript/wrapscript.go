// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package wrapscript

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SatyamVyas00/conda/envutil"
	"github.com/SatyamVyas00/conda/fileutil"
	"github.com/SatyamVyas00/conda/logutil"
	"github.com/SatyamVyas00/conda/platform"
	"github.com/SatyamVyas00/conda/shellutil"
)

// Options configures wrapper-script generation.
type Options struct {
	// Platform is the host platform the script targets. Windows
	// selects the .bat form; BSD selects "sh" over "bash" as the
	// script interpreter on the POSIX form.
	Platform platform.Info
	// RootPrefix is the conda installation root.
	RootPrefix string
	// Prefix is the environment to activate. The wrapper script is
	// created inside this directory.
	Prefix string
	// DevMode runs conda from the root prefix's Python
	// ("bin/python -m conda") instead of the installed entry point,
	// ignoring any CONDA_EXE override. Used to exercise development
	// sources against an existing environment.
	DevMode bool
	// DebugScripts brackets activation with environment dumps on
	// stderr so activation problems can be diagnosed from the
	// wrapped command's stderr.
	DebugScripts bool
}

// Build writes a temporary wrapper script that activates the target
// environment and then runs the given command, and returns the script
// path together with the OS-level argument vector that executes it.
//
// The script file is NOT deleted by this package: the caller's process
// launcher reads it after Build returns, so ownership (and eventual
// deletion) belongs to the caller.
//
// When args is a single string containing a newline it is treated as a
// pre-formed multi-line script body and written verbatim; otherwise
// the arguments are quoted into a single command line for the target
// shell family.
func Build(opts Options, args []string) (scriptPath string, command []string, err error) {
	tmpPrefix := abs(filepath.Join(opts.Prefix, ".tmp"))
	multiline := len(args) == 1 && strings.Contains(args[0], "\n")

	if opts.Platform.Windows {
		scriptPath, command, err = buildWindows(opts, args, tmpPrefix, multiline)
	} else {
		scriptPath, command, err = buildPosix(opts, args, tmpPrefix, multiline)
	}
	if err != nil {
		return "", nil, err
	}

	logutil.NewLogger("wrapscript").Debug("built wrapper script",
		"script", scriptPath, "command", command)
	return scriptPath, command, nil
}

func buildWindows(opts Options, args []string, tmpPrefix string, multiline bool) (string, []string, error) {
	comspec, err := envutil.Comspec()
	if err != nil {
		return "", nil, err
	}
	condaBat := envutil.CondaBat(opts.RootPrefix)

	var b strings.Builder
	// Save the console codepage, switch to UTF-8 for the wrapped
	// command, and restore afterwards.
	b.WriteString("@FOR /F \"tokens=100\" %%F IN ('chcp') DO @SET CONDA_OLD_CHCP=%%F\n")
	b.WriteString("@chcp 65001>NUL\n")
	fmt.Fprintf(&b, "@CALL \"%s\" activate \"%s\"\n", condaBat, opts.Prefix)
	if multiline {
		// No point silencing the first line; if that is wanted it
		// needs doing per line and the caller may as well do it.
		b.WriteString(args[0])
		b.WriteByte('\n')
	} else {
		fmt.Fprintf(&b, "@%s\n", shellutil.Quote(args, shellutil.ShellCmd))
	}
	b.WriteString("@chcp %CONDA_OLD_CHCP%>NUL\n")

	path, err := fileutil.WriteTemp(tmpPrefix, ".bat", b.String())
	if err != nil {
		return "", nil, fmt.Errorf("failed to write wrapper script: %w", err)
	}
	return path, []string{comspec, "/d", "/c", path}, nil
}

func buildPosix(opts Options, args []string, tmpPrefix string, multiline bool) (string, []string, error) {
	shellPath := "bash"
	if opts.Platform.BSD {
		shellPath = "sh"
	}

	var condaExe []string
	if opts.DevMode {
		condaExe = []string{abs(filepath.Join(opts.RootPrefix, "bin", "python")), "-m", "conda"}
	} else {
		condaExe = []string{envutil.CondaExe(opts.RootPrefix)}
	}
	hookArgs := append(append([]string(nil), condaExe...), "shell.posix", "hook")
	hookQuoted := shellutil.Quote(hookArgs, shellutil.ShellBash)

	var b strings.Builder
	if opts.DebugScripts {
		b.WriteString(">&2 echo '*** environment before ***'\n>&2 env\n")
		fmt.Fprintf(&b, ">&2 echo \"$(%s)\"\n", hookQuoted)
	}
	fmt.Fprintf(&b, "eval \"$(%s)\"\n", hookQuoted)
	fmt.Fprintf(&b, "conda activate %s\n", shellutil.Quote([]string{opts.Prefix}, shellutil.ShellBash))
	if opts.DebugScripts {
		b.WriteString(">&2 echo '*** environment after ***'\n>&2 env\n")
	}
	switch {
	case multiline:
		// The join is redundant while multiline implies one
		// argument, but keeps this safe if that ever loosens.
		b.WriteString(strings.Join(args, " "))
		b.WriteByte('\n')
	case len(args) == 1:
		b.WriteString(args[0])
		b.WriteByte('\n')
	default:
		b.WriteString(shellutil.Quote(args, shellutil.ShellBash))
		b.WriteByte('\n')
	}

	path, err := fileutil.WriteTemp(tmpPrefix, "", b.String())
	if err != nil {
		return "", nil, fmt.Errorf("failed to write wrapper script: %w", err)
	}
	return path, []string{shellPath, "-x", path}, nil
}

// abs resolves a path against the working directory, falling back to
// the input when resolution fails.
func abs(path string) string {
	a, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return a
}
