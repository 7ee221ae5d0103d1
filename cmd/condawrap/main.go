// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// condawrap exposes the shell-interop library on the command line:
// path translation, argument quoting, shell dialect inspection, and
// wrapper-script generation.
package main

import (
	"os"

	"github.com/SatyamVyas00/conda/cliout"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
