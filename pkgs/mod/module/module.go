// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package module defines package references and resolved versions.
package module

import (
	"fmt"
	"path/filepath"
	"strings"
)

// A Version is a package pinned to a concrete version.
type Version struct {
	Name    string // Package name, e.g. "fmt"
	Version string // Version string, e.g. "11.1.4"
}

func (v Version) String() string {
	return v.Name + "/" + v.Version
}

// A Reference names a required package and the versions it accepts.
//
// The textual form is "name/[range]", e.g. "fmt/[~11.1]" or "cmake/[>3.14]".
// "name/version" pins a single version and is equivalent to "name/[version]".
type Reference struct {
	Name  string
	Range string
}

// ParseReference parses s into a Reference.
// The range expression itself is not validated here.
func ParseReference(s string) (Reference, error) {
	name, rng, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Reference{}, fmt.Errorf("invalid reference %q: missing version", s)
	}
	if err := CheckName(name); err != nil {
		return Reference{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}
	if strings.HasPrefix(rng, "[") {
		if !strings.HasSuffix(rng, "]") {
			return Reference{}, fmt.Errorf("invalid reference %q: unterminated range", s)
		}
		rng = rng[1 : len(rng)-1]
	} else if strings.ContainsAny(rng, "[]/@ ") {
		return Reference{}, fmt.Errorf("invalid reference %q: malformed version", s)
	}
	rng = strings.TrimSpace(rng)
	if rng == "" {
		return Reference{}, fmt.Errorf("invalid reference %q: empty version range", s)
	}
	return Reference{Name: name, Range: rng}, nil
}

func (r Reference) String() string {
	return r.Name + "/[" + r.Range + "]"
}

// CheckName reports whether name is a valid package name: lowercase letters,
// digits, '_', '.', '+' and '-', starting with a letter or digit.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("empty package name")
	}
	for i, c := range name {
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		case i > 0 && (c == '_' || c == '.' || c == '+' || c == '-'):
		default:
			return fmt.Errorf("package name %q: invalid character %q", name, c)
		}
	}
	return nil
}

// EscapePath returns the package name as a local file system path.
func EscapePath(name string) (escaped string, err error) {
	if err := CheckName(name); err != nil {
		return "", err
	}
	return filepath.Localize(name)
}
