// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goplus/llrecipe/recipe"
)

// ConfigDir returns the directory holding llrecipe's user configuration,
// <UserConfigDir>/llrecipe.
func ConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "llrecipe"), nil
}

// DetectSettings returns the settings of the host machine.
func DetectSettings() recipe.Settings {
	return recipe.Settings{
		OS:        HostOS(),
		Compiler:  hostCompiler(),
		BuildType: "Release",
		Arch:      HostArch(),
	}
}

// HostOS returns the host operating system as a settings value.
func HostOS() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Macos"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "netbsd":
		return "NetBSD"
	case "openbsd":
		return "OpenBSD"
	case "android":
		return "Android"
	case "ios":
		return "iOS"
	}
	return runtime.GOOS
}

// HostArch returns the host CPU architecture as a settings value.
func HostArch() string {
	if m := machine(); m != "" {
		if arch := archFromMachine(m); arch != "" {
			return arch
		}
	}
	return archFromGOARCH(runtime.GOARCH)
}

// archFromMachine maps a uname(2) machine name to a settings value.
func archFromMachine(m string) string {
	switch strings.ToLower(m) {
	case "x86_64", "amd64":
		return "x86_64"
	case "i386", "i486", "i586", "i686", "x86":
		return "x86"
	case "aarch64", "arm64", "armv8", "armv8l":
		return "armv8"
	case "armv7l", "armv7":
		return "armv7"
	case "armv7hl":
		return "armv7hf"
	case "armv6l":
		return "armv6"
	case "ppc64le":
		return "ppc64le"
	case "ppc64":
		return "ppc64"
	case "s390x":
		return "s390x"
	case "riscv64":
		return "riscv64"
	case "mips64":
		return "mips64"
	}
	return ""
}

func archFromGOARCH(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "armv8"
	case "arm":
		return "armv7"
	}
	// ppc64le, s390x, riscv64 and friends share their Go names
	return goarch
}

func hostCompiler() string {
	if fields := strings.Fields(os.Getenv("CC")); len(fields) > 0 {
		base := filepath.Base(fields[0])
		base = strings.TrimSuffix(base, filepath.Ext(base))
		switch {
		case strings.Contains(base, "clang"):
			if runtime.GOOS == "darwin" {
				return "apple-clang"
			}
			return "clang"
		case strings.Contains(base, "gcc"), base == "cc" && runtime.GOOS == "linux":
			return "gcc"
		case base == "cl":
			return "msvc"
		}
		return base
	}
	switch runtime.GOOS {
	case "darwin":
		return "apple-clang"
	case "windows":
		return "msvc"
	case "freebsd", "openbsd":
		return "clang"
	}
	return "gcc"
}
