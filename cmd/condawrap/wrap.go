// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"

	"github.com/SatyamVyas00/conda/cliout"
	"github.com/SatyamVyas00/conda/platform"
	"github.com/SatyamVyas00/conda/wrapscript"
)

// wrapResult is the JSON projection of a generated wrapper script.
type wrapResult struct {
	Script  string   `json:"script"`
	Command []string `json:"command"`
}

func newWrapCmd() *cobra.Command {
	var (
		prefix       string
		rootPrefix   string
		devMode      bool
		debugScripts bool
	)
	cmd := &cobra.Command{
		Use:   "wrap --prefix path -- arg...",
		Short: "Generate an activation wrapper script for a command",
		Long: `Generate a temporary script that activates the environment at
--prefix and then runs the given command. Prints the script path and
the argument vector that would execute it; the command is never run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := wrapscript.Options{
				Platform:     platform.Detect(),
				RootPrefix:   rootPrefix,
				Prefix:       prefix,
				DevMode:      devMode,
				DebugScripts: debugScripts,
			}
			script, command, err := wrapscript.Build(opts, args)
			if err != nil {
				return err
			}

			result := wrapResult{Script: script, Command: command}
			return cliout.Print(result, func() {
				cliout.Label("Script", script)
				for _, c := range command {
					cliout.Item("%s", c)
				}
			})
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Environment prefix to activate")
	cmd.Flags().StringVar(&rootPrefix, "root", "", "Root installation prefix")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Run conda from the root prefix sources")
	cmd.Flags().BoolVar(&debugScripts, "debug-scripts", false, "Emit environment dumps around activation")
	_ = cmd.MarkFlagRequired("prefix")
	return cmd
}
