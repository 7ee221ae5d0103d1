// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SatyamVyas00/conda/cliout"
	"github.com/SatyamVyas00/conda/pathutil"
)

func newPathCmd() *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Translate paths between POSIX, Windows, and Cygwin forms",
	}
	pathCmd.AddCommand(newPathToWinCmd(), newPathToPosixCmd())
	return pathCmd
}

func newPathToWinCmd() *cobra.Command {
	var cygdrive bool
	cmd := &cobra.Command{
		Use:   "to-win [path...]",
		Short: "Translate POSIX-style paths to Windows form",
		Long: `Translate POSIX-style paths to Windows form.

With --cygdrive, input paths use the /cygdrive/x mount convention;
otherwise bare /x drive prefixes are expected. Reads stdin when no
path arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := func(p string) string { return pathutil.PosixToWin(p, "") }
			if cygdrive {
				conv = pathutil.CygwinToWin
			}
			return translatePaths(cmd.InOrStdin(), args, conv)
		},
	}
	cmd.Flags().BoolVar(&cygdrive, "cygdrive", false, "Treat input as /cygdrive-prefixed paths")
	return cmd
}

func newPathToPosixCmd() *cobra.Command {
	var cygdrive bool
	cmd := &cobra.Command{
		Use:   "to-posix [path...]",
		Short: "Translate Windows-style paths to POSIX form",
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := func(p string) string { return pathutil.WinToPosix(p, "") }
			if cygdrive {
				conv = pathutil.WinToCygwin
			}
			return translatePaths(cmd.InOrStdin(), args, conv)
		},
	}
	cmd.Flags().BoolVar(&cygdrive, "cygdrive", false, "Emit /cygdrive-prefixed paths")
	return cmd
}

// translatePaths converts each argument, or every line of stdin when
// no arguments are given, and prints the results.
func translatePaths(stdin io.Reader, args []string, conv pathutil.Converter) error {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		_, err = io.WriteString(os.Stdout, pathutil.TranslateLines(string(data), conv))
		return err
	}
	for _, arg := range args {
		cliout.Plain("%s", conv(arg))
	}
	return nil
}
