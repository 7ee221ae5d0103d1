// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"

	"github.com/SatyamVyas00/conda/cliout"
	"github.com/SatyamVyas00/conda/logutil"
	"github.com/SatyamVyas00/conda/version"
)

var versionInfo = version.New("condawrap")

func newRootCmd() *cobra.Command {
	var (
		outputFormat string
		debug        bool
	)

	rootCmd := &cobra.Command{
		Use:           "condawrap",
		Short:         "Shell interop tools: path translation, quoting, and wrapper scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug || logutil.IsDebugEnabled(), outputFormat == "json")
			return cliout.SetFormat(outputFormat)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newPathCmd(),
		newQuoteCmd(),
		newShellsCmd(),
		newWrapCmd(),
		version.NewCommand(versionInfo, &outputFormat),
	)
	return rootCmd
}
