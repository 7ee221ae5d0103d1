// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"

	"github.com/SatyamVyas00/conda/cliout"
	"github.com/SatyamVyas00/conda/platform"
	"github.com/SatyamVyas00/conda/shellutil"
)

func newQuoteCmd() *cobra.Command {
	var shell string
	cmd := &cobra.Command{
		Use:   "quote [--shell name] -- arg...",
		Short: "Join arguments into a single quoted command line",
		Long: `Join arguments into a single command line quoted for the target
shell. cmd.exe uses Windows argv joining rules; every other shell uses
POSIX quoting.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if shell == "" {
				shell = shellutil.DefaultShell(platform.Detect().Windows)
			}
			cliout.Plain("%s", shellutil.Quote(args, shell))
			return nil
		},
	}
	cmd.Flags().StringVar(&shell, "shell", "", "Target shell (defaults to the platform shell)")
	return cmd
}
