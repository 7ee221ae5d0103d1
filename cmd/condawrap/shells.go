// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SatyamVyas00/conda/cliout"
	"github.com/SatyamVyas00/conda/platform"
	"github.com/SatyamVyas00/conda/shellutil"
)

// shellSummary is the JSON projection of a registered dialect.
type shellSummary struct {
	Name        string `json:"name"`
	Exe         string `json:"exe"`
	BinPath     string `json:"binPath"`
	PathSep     string `json:"pathSep"`
	ShellSuffix string `json:"shellSuffix,omitempty"`
	SourceSetup string `json:"sourceSetup,omitempty"`
}

func newShellsCmd() *cobra.Command {
	var (
		osName     string
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "shells",
		Short: "List the shell dialects registered for a platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			windows, err := resolveOS(osName)
			if err != nil {
				return err
			}

			reg := shellutil.NewRegistry(windows)
			if configPath != "" {
				f, err := os.Open(configPath)
				if err != nil {
					return fmt.Errorf("open shell config: %w", err)
				}
				defer f.Close()
				if err := reg.LoadOverrides(f); err != nil {
					return fmt.Errorf("load shell config: %w", err)
				}
			}

			summaries := make([]shellSummary, 0, len(reg.Names()))
			for _, name := range reg.Names() {
				d, err := reg.Lookup(name)
				if err != nil {
					return err
				}
				summaries = append(summaries, shellSummary{
					Name:        d.Name,
					Exe:         d.Exe,
					BinPath:     d.BinPath,
					PathSep:     d.PathSep,
					ShellSuffix: d.ShellSuffix,
					SourceSetup: d.SourceSetup,
				})
			}

			return cliout.Print(summaries, func() {
				cliout.Header("Registered Shells")
				for _, s := range summaries {
					cliout.Item("%s (%s)", s.Name, s.Exe)
				}
			})
		},
	}
	cmd.Flags().StringVar(&osName, "os", "", "Target platform: windows or posix (defaults to the current one)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with additional shell definitions")
	return cmd
}

func resolveOS(name string) (windows bool, err error) {
	switch name {
	case "":
		return platform.Detect().Windows, nil
	case "windows":
		return true, nil
	case "posix":
		return false, nil
	default:
		return false, fmt.Errorf("unknown --os value %q (expected windows or posix)", name)
	}
}
