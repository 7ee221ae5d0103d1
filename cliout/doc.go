// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

// Package cliout provides structured output formatting for CLI
// commands: human-readable text with ANSI colors and Unicode symbols
// (with ASCII fallbacks), and a JSON mode for machine consumption.
//
// Color is disabled automatically when stdout is not a terminal and
// can be forced either way with ForceColor and NoColor.
package cliout
