// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package shellutil

import "strings"

// Quote joins an argument vector into a single command-line string
// quoted for the given shell family.
//
// For cmd.exe the native Windows argv-joining convention is applied
// (the inverse of CommandLineToArgvW), since the receiving process
// splits the line with exactly that algorithm.
//
// For POSIX shells each argument picks a quote character by priority:
// single quotes when the argument contains a double quote, double
// quotes when it contains a single quote, no quoting when it contains
// neither a space nor a newline, double quotes otherwise.
//
// KNOWN LIMITATION: the POSIX rule does not escape the chosen quote
// character when it independently reappears inside the argument (an
// argument containing both quote kinds produces a line the shell will
// split differently). The behavior is kept because generated wrapper
// scripts are byte-stable output that downstream tooling compares.
func Quote(args []string, shell string) string {
	if shell == ShellCmd {
		return listToCmdline(args)
	}

	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		var quote string
		switch {
		case strings.Contains(arg, `"`):
			quote = "'"
		case strings.Contains(arg, "'"):
			quote = `"`
		case !strings.Contains(arg, " ") && !strings.Contains(arg, "\n"):
			quote = ""
		default:
			quote = `"`
		}
		quoted = append(quoted, quote+arg+quote)
	}
	return strings.Join(quoted, " ")
}

// QuoteDefault quotes for the host OS's default shell: cmd.exe on
// Windows, bash elsewhere.
func QuoteDefault(args []string, windows bool) string {
	return Quote(args, DefaultShell(windows))
}

// listToCmdline joins arguments per the MSVC runtime convention, the
// algorithm cmd-launched programs use to split their command line:
// arguments containing whitespace (or empty arguments) are wrapped in
// double quotes, embedded double quotes are backslash-escaped, and a
// run of backslashes is doubled when it precedes a double quote or
// ends a quoted argument.
func listToCmdline(args []string) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}

		needQuote := arg == "" || strings.ContainsAny(arg, " \t")
		if needQuote {
			b.WriteByte('"')
		}

		backslashes := 0
		for j := 0; j < len(arg); j++ {
			switch arg[j] {
			case '\\':
				backslashes++
			case '"':
				writeBackslashes(&b, backslashes*2+1)
				b.WriteByte('"')
				backslashes = 0
			default:
				writeBackslashes(&b, backslashes)
				backslashes = 0
				b.WriteByte(arg[j])
			}
		}

		if needQuote {
			writeBackslashes(&b, backslashes*2)
			b.WriteByte('"')
		} else {
			writeBackslashes(&b, backslashes)
		}
	}
	return b.String()
}

func writeBackslashes(b *strings.Builder, n int) {
	for ; n > 0; n-- {
		b.WriteByte('\\')
	}
}
