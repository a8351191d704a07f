// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile loads the YAML profile that overrides detected settings.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goplus/llrecipe/internal/env"
	"github.com/goplus/llrecipe/recipe"
)

// EnvVar names the environment variable that selects a profile file.
const EnvVar = "LLRECIPE_PROFILE"

// Profile holds user overrides for a lifecycle run.
type Profile struct {
	Settings recipe.Settings `yaml:"settings,omitempty"`
	Options  map[string]bool `yaml:"options,omitempty"`
	// DepsDir holds one package folder per dependency, used by imports.
	DepsDir string `yaml:"deps_dir,omitempty"`
	// Index is a version index file used to pick requirement versions.
	Index string `yaml:"index,omitempty"`

	path string
}

// DefaultPath returns <ConfigDir>/profile.yaml.
func DefaultPath() (string, error) {
	dir, err := env.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.yaml"), nil
}

// Load reads the profile at path. An empty path falls back to $LLRECIPE_PROFILE
// and then to DefaultPath. Only a missing default profile is tolerated; it
// yields an empty profile.
func Load(path string) (*Profile, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		explicit = false
		var err error
		if path, err = DefaultPath(); err != nil {
			return &Profile{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	p.path = path
	base := filepath.Dir(path)
	p.DepsDir = resolve(base, p.DepsDir)
	p.Index = resolve(base, p.Index)
	return &p, nil
}

// Save writes the profile to path, creating parent directories.
func (p *Profile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	p.path = path
	return nil
}

// Path returns the file the profile was loaded from or saved to.
func (p *Profile) Path() string {
	return p.path
}

// Apply returns s with the profile's non-empty settings on top.
func (p *Profile) Apply(s recipe.Settings) recipe.Settings {
	return s.Merge(p.Settings)
}

// resolve makes a relative path in the profile relative to the profile file.
func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
