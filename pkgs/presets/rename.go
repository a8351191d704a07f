// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"errors"
	"fmt"
	"io/fs"
)

// DefaultFile is the preset file written by the CMake toolchain generator.
const DefaultFile = "CMakePresets.json"

// Rename appends "-suffix" to every configure preset name and " (suffix)" to
// its display name, then points matching build and test presets at the new
// names. It returns the old-to-new name mapping.
//
// A build or test preset that references a renamed configure preset takes
// that preset's new name as its own name as well. Presets whose reference
// does not match any configure preset are left alone.
func (d *Document) Rename(suffix string) map[string]string {
	mapping := make(map[string]string, len(d.Configure))
	for _, p := range d.Configure {
		newName := p.Name + "-" + suffix
		mapping[p.Name] = newName
		p.Name = newName
		p.DisplayName = p.DisplayName + " (" + suffix + ")"
	}
	for _, presets := range [][]*Preset{d.Build, d.Test} {
		for _, p := range presets {
			if newName, ok := mapping[p.ConfigurePreset]; ok {
				p.Name = newName
				p.ConfigurePreset = newName
			}
		}
	}
	return mapping
}

// Renamer rewrites preset files in place so that parallel builds for
// different architectures do not share preset names.
type Renamer struct {
	Arch   string      // target architecture, e.g. "x86_64"
	Tokens TokenSource // defaults to UUIDTokens
}

// NewRenamer returns a Renamer for arch using random UUID tokens.
func NewRenamer(arch string) *Renamer {
	return &Renamer{Arch: arch, Tokens: UUIDTokens}
}

// Suffix returns a fresh "<arch>-<token>" suffix.
func (r *Renamer) Suffix() (string, error) {
	if r.Arch == "" {
		return "", ErrNoArch
	}
	tokens := r.Tokens
	if tokens == nil {
		tokens = UUIDTokens
	}
	tok, err := tokens.Token()
	if err != nil {
		return "", fmt.Errorf("presets: token: %w", err)
	}
	if err := CheckToken(tok); err != nil {
		return "", err
	}
	return r.Arch + "-" + tok, nil
}

// RenameFile renames the presets in the file at path and overwrites it.
// A missing file is not an error: nothing is written and the returned
// suffix is empty.
func (r *Renamer) RenameFile(path string) (suffix string, err error) {
	doc, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	suffix, err = r.Suffix()
	if err != nil {
		return "", err
	}
	doc.Rename(suffix)
	if err := doc.Save(path); err != nil {
		return "", err
	}
	return suffix, nil
}
