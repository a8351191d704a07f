// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"path/filepath"

	"github.com/goplus/llrecipe/pkgs/presets"
)

// GenerateContext is passed to the generate hook.
type GenerateContext struct {
	// Settings the recipe is being generated for.
	Settings Settings
	// Options after the configure hook ran.
	Options *Options
	// Dir is the generators folder holding the toolchain generator's output.
	Dir string
	// Tokens feeds preset renaming; nil means random tokens.
	Tokens presets.TokenSource

	suffixes map[string]string
	errs     []error
}

// RenamePresets gives every preset in file a unique "<arch>-<token>" suffix.
// A relative file is resolved against Dir. A missing file is skipped.
// Failures are recorded and reported once the hook returns.
func (c *GenerateContext) RenamePresets(file string) {
	if !filepath.IsAbs(file) {
		file = filepath.Join(c.Dir, file)
	}
	r := &presets.Renamer{Arch: c.Settings.Arch, Tokens: c.Tokens}
	suffix, err := r.RenameFile(file)
	if err != nil {
		c.AddErr(err)
		return
	}
	if suffix == "" {
		return
	}
	if c.suffixes == nil {
		c.suffixes = make(map[string]string)
	}
	c.suffixes[file] = suffix
}

// Suffixes maps each renamed preset file to the suffix it received.
func (c *GenerateContext) Suffixes() map[string]string {
	return c.suffixes
}

// AddErr records a generate error.
func (c *GenerateContext) AddErr(err error) {
	c.errs = append(c.errs, err)
}

// Errs returns all errors collected during generate.
func (c *GenerateContext) Errs() []error {
	return c.errs
}
