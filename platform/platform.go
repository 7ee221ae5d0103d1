// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Info describes the host platform. It is computed once by Detect and
// then threaded explicitly into the components that branch on it, so
// tests can exercise both the Windows and POSIX code paths in a single
// process by constructing their own Info.
type Info struct {
	// Windows reports whether the host runs Windows.
	Windows bool
	// BSD reports whether the host is BSD-derived (FreeBSD, OpenBSD,
	// NetBSD, Dragonfly, and macOS's Darwin kernel). BSD hosts get
	// "sh" instead of "bash" as the wrapper-script interpreter.
	BSD bool
	// OS is the runtime operating system name (GOOS).
	OS string
	// Kernel is a best-effort kernel version string, empty when the
	// host does not expose one.
	Kernel string
}

// Detect inspects the current host and returns its platform Info.
// Kernel detail is best effort and never fails detection.
func Detect() Info {
	info := Info{
		Windows: runtime.GOOS == "windows",
		BSD:     isBSD(runtime.GOOS),
		OS:      runtime.GOOS,
	}
	if kv, err := host.KernelVersion(); err == nil {
		info.Kernel = kv
	}
	return info
}

func isBSD(goos string) bool {
	return goos == "darwin" || strings.Contains(goos, "bsd") || goos == "dragonfly"
}
