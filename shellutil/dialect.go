// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package shellutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SatyamVyas00/conda/pathutil"
)

// Shell identifiers with special handling.
const (
	// ShellCmd is the Windows command interpreter.
	ShellCmd = "cmd.exe"
	// ShellBash is the Bourne Again Shell, the POSIX default.
	ShellBash = "bash"
)

// ErrUnknownShell indicates a dialect lookup for a shell name that is
// not registered. Callers that accept an optional shell name should
// fall back to DefaultShell before looking up.
var ErrUnknownShell = errors.New("unknown shell")

// Dialect describes one shell's syntax and path-handling conventions:
// how to echo, how to reference variables, which characters separate
// paths and path lists, and how paths must be converted before the
// shell can use them. Dialects are immutable once registered.
type Dialect struct {
	// Name is the registry key the dialect was registered under.
	Name string
	// Exe is the shell executable, either a bare name resolved on
	// PATH or a full path.
	Exe string
	// BinPath is the scripts subdirectory inside an environment,
	// with a trailing separator ("/bin/", "\Scripts\").
	BinPath string
	// Sep is the path component separator.
	Sep string
	// PathSep separates entries in a path list such as PATH.
	PathSep string
	// SourceSetup is the command that sources a script into the
	// current shell ("source", ".", "call").
	SourceSetup string
	// VarFormat renders a variable reference; the variable name
	// replaces the "{}" placeholder ("${}", "%{}%").
	VarFormat string
	// Echo is the shell's echo command.
	Echo string
	// PromptVar is the variable holding the shell prompt.
	PromptVar string
	// PrintPath is a command printing the current PATH.
	PrintPath string
	// PrintDefaultEnv is a command printing the active environment
	// name.
	PrintDefaultEnv string
	// PrintPS1 is a command printing the prompt modifier.
	PrintPS1 string
	// SetVar is the statement prefix that sets a variable
	// ("export ", "set ").
	SetVar string
	// ShellSuffix is the suffix of scripts executed by this shell.
	ShellSuffix string
	// EnvScriptSuffix is the suffix of environment hook scripts.
	EnvScriptSuffix string
	// ShellArgs are the arguments that make the shell run a command
	// string.
	ShellArgs []string
	// PathFrom converts a path from the shell's convention to the
	// host's; PathTo converts the other way.
	PathFrom pathutil.Converter
	PathTo   pathutil.Converter
	// SlashConvert is the separator rewrite applied to raw paths:
	// every occurrence of the first string becomes the second.
	SlashConvert [2]string
	// Nul is the redirection that silences a command's output.
	Nul string
	// TestEchoExtra is appended to echo when probing the shell.
	TestEchoExtra string
}

// FormatVar renders a reference to the named variable in this
// dialect's syntax.
func (d Dialect) FormatVar(name string) string {
	return strings.Replace(d.VarFormat, "{}", name, 1)
}

// posixBase is the template POSIX shells derive from. Each call
// returns a fresh record so derived dialects never share state.
func posixBase() Dialect {
	return Dialect{
		BinPath:         "/bin/", // mind the trailing slash
		Echo:            "echo",
		EnvScriptSuffix: ".sh",
		Nul:             "2>/dev/null",
		PathFrom:        pathutil.Identity,
		PathTo:          pathutil.Identity,
		PathSep:         ":",
		PrintDefaultEnv: "echo $CONDA_DEFAULT_ENV",
		PrintPath:       "echo $PATH",
		PrintPS1:        "echo $CONDA_PROMPT_MODIFIER",
		PromptVar:       "PS1",
		Sep:             "/",
		SetVar:          "export ",
		ShellArgs:       []string{"-l", "-c"},
		ShellSuffix:     "",
		SlashConvert:    [2]string{"\\", "/"},
		SourceSetup:     "source",
		TestEchoExtra:   "",
		VarFormat:       "${}",
	}
}

// msys2Base is the template for bash variants running on a Windows
// host: a POSIX shell whose paths must be mangled to and from the
// native Windows form, and whose PATH can only be printed reliably by
// piping through cygpath.
func msys2Base() Dialect {
	d := posixBase()
	d.PathFrom = msysToWin
	d.PathTo = winToMsys
	d.PrintPath = `python -c "import os; print(';'.join(os.environ['PATH'].split(';')[1:]))" | cygpath --path -f -`
	return d
}

// cmdExeDialect is the one dialect not derived from the POSIX base:
// every field is cmd.exe-specific.
func cmdExeDialect() Dialect {
	return Dialect{
		Exe:             "cmd.exe",
		BinPath:         `\Scripts\`, // mind the trailing slash
		Echo:            "@echo",
		EnvScriptSuffix: ".bat",
		Nul:             "1>NUL 2>&1",
		PathFrom:        pathutil.Identity,
		PathTo:          pathutil.Identity,
		PathSep:         ";",
		// Mismatched parens are intentional: "echo(" is how cmd.exe
		// echoes a blank line.
		PrintDefaultEnv: "IF NOT \"%CONDA_DEFAULT_ENV%\" == \"\" (\n" +
			"echo %CONDA_DEFAULT_ENV% ) ELSE (\n" +
			"echo()",
		PrintPath:     "@echo %PATH%",
		PrintPS1:      "@echo %PROMPT%",
		PromptVar:     "PROMPT",
		Sep:           `\`,
		SetVar:        "set ",
		ShellArgs:     []string{"/d", "/c"},
		ShellSuffix:   ".bat",
		SlashConvert:  [2]string{"/", `\`},
		SourceSetup:   "call",
		TestEchoExtra: "",
		VarFormat:     "%{}%",
	}
}

func msysToWin(p string) string { return pathutil.PosixToWin(p, "") }
func winToMsys(p string) string { return pathutil.WinToPosix(p, "") }

// Registry is the read-only table of shell dialects for one host OS.
// Construct it once with NewRegistry; it is safe for concurrent
// lookups afterwards.
type Registry struct {
	windows  bool
	dialects map[string]Dialect
}

// NewRegistry builds the dialect table for the given host OS. The OS
// is an explicit parameter rather than ambient state so both tables
// can be exercised in one process.
func NewRegistry(windows bool) *Registry {
	r := &Registry{
		windows:  windows,
		dialects: make(map[string]Dialect),
	}

	if windows {
		r.register("cmd.exe", cmdExeDialect())

		cygwin := posixBase()
		cygwin.Exe = "bash.exe"
		cygwin.BinPath = "/Scripts/" // mind the trailing slash
		cygwin.PathFrom = pathutil.CygwinToWin
		cygwin.PathTo = pathutil.WinToCygwin
		r.register("cygwin", cygwin)

		// bash is whichever bash is on PATH. When running under
		// Cygwin the "cygwin" entry should be used instead; the only
		// major difference is cygdrive handling.
		for _, exe := range []string{"bash.exe", "bash", "sh.exe", "zsh.exe", "zsh"} {
			d := msys2Base()
			d.Exe = exe
			r.register(exe, d)
		}
		return r
	}

	bash := posixBase()
	bash.Exe = "bash"
	r.register("bash", bash)

	dash := posixBase()
	dash.Exe = "dash"
	dash.SourceSetup = "."
	r.register("dash", dash)

	zsh := posixBase()
	zsh.Exe = "zsh"
	r.register("zsh", zsh)

	// fish keeps PATH as a space-separated list.
	fish := posixBase()
	fish.Exe = "fish"
	fish.PathSep = " "
	r.register("fish", fish)

	return r
}

func (r *Registry) register(name string, d Dialect) {
	d.Name = name
	r.dialects[name] = d
}

// Lookup returns the dialect registered under name, or ErrUnknownShell
// when no such shell is registered. Callers with no shell name should
// ask for DefaultShell instead of guessing.
func (r *Registry) Lookup(name string) (Dialect, error) {
	d, ok := r.dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownShell, name)
	}
	// Hand out a private copy of the one mutable field.
	d.ShellArgs = append([]string(nil), d.ShellArgs...)
	return d, nil
}

// Names returns the registered shell names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Windows reports which host OS the registry was built for.
func (r *Registry) Windows() bool {
	return r.windows
}

// DefaultShell returns the shell assumed when none is specified:
// cmd.exe on Windows, bash elsewhere.
func DefaultShell(windows bool) string {
	if windows {
		return ShellCmd
	}
	return ShellBash
}
