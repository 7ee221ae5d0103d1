// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package envutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment variable names consumed by the shell-interop core.
const (
	// EnvComspec holds the path of the Windows command interpreter.
	EnvComspec = "COMSPEC"
	// EnvCondaBat overrides the location of the Windows activation
	// entry point (conda.bat).
	EnvCondaBat = "CONDA_BAT"
	// EnvCondaExe overrides the location of the POSIX activation
	// entry point (the conda executable).
	EnvCondaExe = "CONDA_EXE"
)

// ErrNoComspec indicates COMSPEC is not set on a Windows host. There
// is no sensible fallback for the command interpreter path, so this is
// fatal for the operation that needed it.
var ErrNoComspec = errors.New("COMSPEC is not set")

// Comspec returns the Windows command interpreter path from COMSPEC.
func Comspec() (string, error) {
	comspec := os.Getenv(EnvComspec)
	if comspec == "" {
		return "", ErrNoComspec
	}
	return comspec, nil
}

// CondaBat returns the path of the Windows activation script: the
// CONDA_BAT override when set, otherwise condabin/conda.bat under the
// installation root.
func CondaBat(rootPrefix string) string {
	if bat := os.Getenv(EnvCondaBat); bat != "" {
		return bat
	}
	return abs(filepath.Join(rootPrefix, "condabin", "conda.bat"))
}

// CondaExe returns the path of the POSIX activation entry point: the
// CONDA_EXE override when set, otherwise bin/conda under the
// installation root.
func CondaExe(rootPrefix string) string {
	if exe := os.Getenv(EnvCondaExe); exe != "" {
		return exe
	}
	return abs(filepath.Join(rootPrefix, "bin", "conda"))
}

// abs resolves a path against the working directory, falling back to
// the input when resolution fails.
func abs(path string) string {
	a, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return a
}

// MapToSlice converts an env map into KEY=VALUE entries.
func MapToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// SliceToMap converts KEY=VALUE entries into a map, skipping malformed
// rows.
func SliceToMap(envSlice []string) map[string]string {
	result := make(map[string]string, len(envSlice))
	for _, envVar := range envSlice {
		parts := strings.SplitN(envVar, "=", 2)
		if len(parts) != 2 {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}
