// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// CopyRule copies files matching Pattern out of every dependency package
// into Dst.
type CopyRule struct {
	Pattern    string // matched against file base names, path.Match syntax
	Dst        string // destination directory, relative to the output folder
	Folder     bool   // keep a <dependency>/<relative path> layout under Dst
	IgnoreCase bool
}

// Match reports whether the file base name matches the rule's pattern.
func (c CopyRule) Match(name string) bool {
	pattern := c.Pattern
	if c.IgnoreCase {
		pattern, name = strings.ToLower(pattern), strings.ToLower(name)
	}
	ok, _ := path.Match(pattern, name)
	return ok
}

// Imports collects the copy rules declared by the imports hook.
type Imports struct {
	rules []CopyRule
	errs  []error
}

// Copy declares a copy rule.
func (p *Imports) Copy(pattern, dst string, folder, ignoreCase bool) {
	if _, err := path.Match(pattern, ""); err != nil {
		p.errs = append(p.errs, fmt.Errorf("recipe: import pattern %q: %w", pattern, err))
		return
	}
	if dst == "" || path.IsAbs(dst) || strings.HasPrefix(path.Clean(dst), "..") {
		p.errs = append(p.errs, fmt.Errorf("recipe: import destination %q must be a relative path inside the output folder", dst))
		return
	}
	p.rules = append(p.rules, CopyRule{Pattern: pattern, Dst: dst, Folder: folder, IgnoreCase: ignoreCase})
}

// Rules returns the declared copy rules.
func (p *Imports) Rules() []CopyRule {
	return slices.Clone(p.rules)
}

// Errs returns the errors recorded for invalid rules.
func (p *Imports) Errs() []error {
	return p.errs
}
