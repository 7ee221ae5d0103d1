// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

// Unicode symbols for CLI output, with ASCII fallbacks for terminals
// that can't display them.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolDot     = "•"

	asciiCheck   = "[+]"
	asciiCross   = "[-]"
	asciiWarning = "[!]"
	asciiInfo    = "[i]"
	asciiDot     = "*"
)

var (
	// mu protects global state variables
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !term.IsTerminal(int(os.Stdout.Fd()))
)

// supportsUnicode detects if the terminal supports Unicode properly.
var supportsUnicode = detectUnicodeSupport()

func detectUnicodeSupport() bool {
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code, and ConEmu handle Unicode; the
		// legacy console does not.
		if os.Getenv("WT_SESSION") != "" || os.Getenv("TERM_PROGRAM") == "vscode" ||
			os.Getenv("ConEmuPID") != "" || os.Getenv("TERM") != "" {
			return true
		}
		return false
	}
	return true
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

func colorize(color, s string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return s
	}
	return color + s + Reset
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat == FormatJSON
}

// PrintJSON prints data as JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format: the data object as JSON
// in JSON mode, the formatter function otherwise.
func Print(data interface{}, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with a check mark.
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Green, getIcon(SymbolCheck, asciiCheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with a cross mark.
func Error(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Red, getIcon(SymbolCross, asciiCross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Yellow, getIcon(SymbolWarning, asciiWarning)), fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Cyan, getIcon(SymbolInfo, asciiInfo)), fmt.Sprintf(format, args...))
}

// Item prints a bulleted list item.
func Item(format string, args ...interface{}) {
	fmt.Printf("  %s %s\n", getIcon(SymbolDot, asciiDot), fmt.Sprintf(format, args...))
}

// Label prints an aligned "label: value" row.
func Label(label, value string) {
	fmt.Printf("  %s %s\n", colorize(Gray, label+":"), value)
}

// Plain prints without any decoration.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
