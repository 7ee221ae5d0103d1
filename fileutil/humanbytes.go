// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package fileutil

import (
	"fmt"
	"math"
)

// HumanBytes renders a byte count in a more readable form.
//
//	HumanBytes(42)           // "42 B"
//	HumanBytes(1042)         // "1 KB"
//	HumanBytes(10004242)     // "9.5 MB"
//	HumanBytes(100000004242) // "93.13 GB"
func HumanBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	k := float64(n) / 1024
	if k < 1024 {
		return fmt.Sprintf("%d KB", int64(math.Round(k)))
	}
	m := k / 1024
	if m < 1024 {
		return fmt.Sprintf("%.1f MB", m)
	}
	g := m / 1024
	return fmt.Sprintf("%.2f GB", g)
}
