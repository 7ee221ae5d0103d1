// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	info := Detect()
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOOS == "windows", info.Windows)
}

func TestIsBSD(t *testing.T) {
	tests := []struct {
		goos     string
		expected bool
	}{
		{"darwin", true},
		{"freebsd", true},
		{"openbsd", true},
		{"netbsd", true},
		{"dragonfly", true},
		{"linux", false},
		{"windows", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, isBSD(tt.goos), "goos=%s", tt.goos)
	}
}
