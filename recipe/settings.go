// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import "fmt"

// Settings are the host and toolchain values a recipe is configured for.
type Settings struct {
	OS        string `yaml:"os,omitempty"`
	Compiler  string `yaml:"compiler,omitempty"`
	BuildType string `yaml:"build_type,omitempty"`
	Arch      string `yaml:"arch,omitempty"`
}

// Get returns the setting named key ("os", "compiler", "build_type" or "arch").
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "os":
		return s.OS, nil
	case "compiler":
		return s.Compiler, nil
	case "build_type":
		return s.BuildType, nil
	case "arch":
		return s.Arch, nil
	}
	return "", fmt.Errorf("recipe: unknown setting %q", key)
}

// Merge returns s with every non-empty field of o applied on top.
func (s Settings) Merge(o Settings) Settings {
	if o.OS != "" {
		s.OS = o.OS
	}
	if o.Compiler != "" {
		s.Compiler = o.Compiler
	}
	if o.BuildType != "" {
		s.BuildType = o.BuildType
	}
	if o.Arch != "" {
		s.Arch = o.Arch
	}
	return s
}

// String returns the settings in "key=value" form, in declaration order.
func (s Settings) String() string {
	return fmt.Sprintf("os=%s compiler=%s build_type=%s arch=%s", s.OS, s.Compiler, s.BuildType, s.Arch)
}
