// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"fmt"
	"maps"
	"path"
	"slices"
)

// Option declares a boolean recipe option and its default value.
type Option struct {
	Name    string
	Default bool
}

// OptionSet holds option values to apply to matching dependencies.
type OptionSet struct {
	values map[string]bool
}

// Set assigns value to the option name.
func (s *OptionSet) Set(name string, value bool) {
	if s.values == nil {
		s.values = make(map[string]bool)
	}
	s.values[name] = value
}

// Values returns a copy of the assigned values.
func (s *OptionSet) Values() map[string]bool {
	return maps.Clone(s.values)
}

// Options holds the recipe's own option values and the overrides it imposes
// on its dependencies.
type Options struct {
	names []string
	own   map[string]bool

	patterns []string
	deps     map[string]*OptionSet

	errs []error
}

// NewOptions returns Options initialized with the declared defaults.
func NewOptions(decls []Option) *Options {
	o := &Options{
		own:  make(map[string]bool, len(decls)),
		deps: make(map[string]*OptionSet),
	}
	for _, d := range decls {
		if _, ok := o.own[d.Name]; !ok {
			o.names = append(o.names, d.Name)
		}
		o.own[d.Name] = d.Default
	}
	return o
}

// Names returns the declared option names in declaration order.
func (o *Options) Names() []string {
	return slices.Clone(o.names)
}

// Value returns the current value of the option name.
func (o *Options) Value(name string) (value, ok bool) {
	value, ok = o.own[name]
	return
}

// Set assigns a value to a declared option. Setting an undeclared option is
// recorded as an error.
func (o *Options) Set(name string, value bool) {
	if _, ok := o.own[name]; !ok {
		o.errs = append(o.errs, fmt.Errorf("recipe: option %q is not declared", name))
		return
	}
	o.own[name] = value
}

// Dep returns the override set for dependencies matching pattern.
// Patterns use path.Match syntax; "*" matches every dependency.
func (o *Options) Dep(pattern string) *OptionSet {
	if s, ok := o.deps[pattern]; ok {
		return s
	}
	if _, err := path.Match(pattern, ""); err != nil {
		o.errs = append(o.errs, fmt.Errorf("recipe: dependency pattern %q: %w", pattern, err))
	}
	s := &OptionSet{}
	o.patterns = append(o.patterns, pattern)
	o.deps[pattern] = s
	return s
}

// Patterns returns the dependency patterns in the order they were declared.
func (o *Options) Patterns() []string {
	return slices.Clone(o.patterns)
}

// ForDep resolves the overrides that apply to the dependency name.
// Glob patterns apply in declaration order; an exact pattern applies last.
func (o *Options) ForDep(name string) map[string]bool {
	out := make(map[string]bool)
	for _, p := range o.patterns {
		if p == name {
			continue
		}
		if ok, _ := path.Match(p, name); ok {
			maps.Copy(out, o.deps[p].values)
		}
	}
	if s, ok := o.deps[name]; ok {
		maps.Copy(out, s.values)
	}
	return out
}

// Own returns a copy of the recipe's own option values.
func (o *Options) Own() map[string]bool {
	return maps.Clone(o.own)
}

// Errs returns the errors recorded while options were being set.
func (o *Options) Errs() []error {
	return o.errs
}
