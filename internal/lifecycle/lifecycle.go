// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lifecycle runs the hooks of a loaded recipe in order.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"strings"
	"time"

	"github.com/goplus/llrecipe/internal/imports"
	recipefile "github.com/goplus/llrecipe/internal/recipe"
	"github.com/goplus/llrecipe/pkgs/mod/module"
	"github.com/goplus/llrecipe/pkgs/mod/versions"
	"github.com/goplus/llrecipe/pkgs/presets"
	"github.com/goplus/llrecipe/recipe"
)

// Hook names, in the order Run calls them.
const (
	HookConfigure         = "configure"
	HookRequirements      = "requirements"
	HookBuildRequirements = "build_requirements"
	HookGenerate          = "generate"
	HookImports           = "imports"
)

// Runner holds what a lifecycle run needs besides the recipe itself.
type Runner struct {
	Settings recipe.Settings
	// Options are user values for the recipe's own options, applied before
	// the configure hook. Options the recipe does not declare are ignored.
	Options map[string]bool
	// OutputDir is the generators folder. Generate and imports work there.
	OutputDir string
	// DepsDir holds one package folder per dependency; empty disables imports.
	DepsDir string
	// Index selects a version for each requirement; nil skips selection.
	Index versions.Index
	// Tokens feeds preset renaming; nil means random tokens.
	Tokens presets.TokenSource
	Logger *log.Logger
}

// Requirement is a declared reference and the version chosen for it.
type Requirement struct {
	Ref module.Reference
	// Selected is zero when the runner has no version index.
	Selected module.Version
}

func (r Requirement) String() string {
	if r.Selected.Version != "" {
		return r.Selected.String()
	}
	return r.Ref.String()
}

// Result is what a successful run produced.
type Result struct {
	Recipe       string
	Settings     recipe.Settings
	Options      map[string]bool
	DepOptions   map[string]map[string]bool
	Requires     []Requirement
	ToolRequires []Requirement
	// Suffixes maps each renamed preset file to the suffix it received.
	Suffixes map[string]string
	Imported []string
}

// Run runs the configure, requirements, build_requirements, generate and
// imports hooks of rcp in that order. The first hook that reports errors
// stops the run.
func (r *Runner) Run(ctx context.Context, rcp *recipefile.Recipe) (*Result, error) {
	res := &Result{Recipe: rcp.String(), Settings: r.Settings}

	for _, key := range rcp.Settings {
		if _, err := r.Settings.Get(key); err != nil {
			return nil, err
		}
	}

	opts := recipe.NewOptions(rcp.Options)
	for _, name := range opts.Names() {
		if v, ok := r.Options[name]; ok {
			opts.Set(name, v)
		}
	}

	var deps, tools recipe.Requirements
	steps := []struct {
		name string
		run  func() []error
	}{
		{HookConfigure, func() []error {
			if rcp.OnConfigure != nil {
				rcp.OnConfigure(opts)
			}
			return opts.Errs()
		}},
		{HookRequirements, func() []error {
			if rcp.OnRequirements != nil {
				rcp.OnRequirements(&deps)
			}
			if errs := deps.Errs(); len(errs) > 0 {
				return errs
			}
			var errs []error
			res.Requires, errs = r.selectAll(deps.Refs())
			return errs
		}},
		{HookBuildRequirements, func() []error {
			if rcp.OnBuildRequirements != nil {
				rcp.OnBuildRequirements(&tools)
			}
			errs := tools.Errs()
			for _, ref := range tools.Refs() {
				errs = append(errs, fmt.Errorf("%s: only tool requirements may be declared here", ref))
			}
			if len(errs) > 0 {
				return errs
			}
			res.ToolRequires, errs = r.selectAll(append(deps.ToolRefs(), tools.ToolRefs()...))
			return errs
		}},
		{HookGenerate, func() []error {
			if rcp.OnGenerate == nil {
				return nil
			}
			gctx := &recipe.GenerateContext{
				Settings: r.Settings,
				Options:  opts,
				Dir:      r.OutputDir,
				Tokens:   r.Tokens,
			}
			rcp.OnGenerate(gctx)
			res.Suffixes = gctx.Suffixes()
			return gctx.Errs()
		}},
		{HookImports, func() []error {
			if rcp.OnImports == nil {
				return nil
			}
			var imp recipe.Imports
			rcp.OnImports(&imp)
			if errs := imp.Errs(); len(errs) > 0 {
				return errs
			}
			if r.DepsDir == "" {
				r.logf("imports: no dependency folder configured, skipping %d rule(s)", len(imp.Rules()))
				return nil
			}
			c := &imports.Copier{DepsDir: r.DepsDir, OutputDir: r.OutputDir, Logger: r.Logger}
			var err error
			res.Imported, err = c.Copy(ctx, imp.Rules(), requirementNames(res.Requires))
			if err != nil {
				return []error{err}
			}
			return nil
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.logf("%s: running %s", res.Recipe, step.name)
		if errs := Guard(step.run); len(errs) > 0 {
			return nil, fmt.Errorf("%s: %w", step.name, errors.Join(errs...))
		}
	}

	res.Options = opts.Own()
	for _, req := range res.Requires {
		if o := opts.ForDep(req.Ref.Name); len(o) > 0 {
			if res.DepOptions == nil {
				res.DepOptions = make(map[string]map[string]bool)
			}
			res.DepOptions[req.Ref.Name] = o
		}
	}

	if r.OutputDir != "" {
		if err := r.record(rcp, res); err != nil {
			return nil, fmt.Errorf("recording run: %w", err)
		}
	}
	return res, nil
}

// Guard runs recipe code, turning a panic into an error appended to the
// errors run returns.
func Guard(run func() []error) (errs []error) {
	defer func() {
		if p := recover(); p != nil {
			errs = append(errs, fmt.Errorf("panic: %v", p))
		}
	}()
	return run()
}

func (r *Runner) selectAll(refs []module.Reference) ([]Requirement, []error) {
	var (
		reqs []Requirement
		errs []error
	)
	for _, ref := range refs {
		req := Requirement{Ref: ref}
		if r.Index != nil {
			v, err := r.Index.Resolve(ref)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			req.Selected = v
		}
		reqs = append(reqs, req)
	}
	return reqs, errs
}

// record stores the run in the output folder's run record.
func (r *Runner) record(rcp *recipefile.Recipe, res *Result) error {
	rec, err := loadRecord(r.OutputDir)
	if err != nil {
		rec = &runRecord{}
	}
	matrix, err := Matrix(r.Settings, rcp.Settings)
	if err != nil {
		return err
	}
	entry := &runEntry{
		Recipe:    res.Recipe,
		Options:   res.Options,
		Suffixes:  res.Suffixes,
		Imported:  res.Imported,
		Generated: time.Now(),
	}
	for _, req := range res.Requires {
		entry.Requires = append(entry.Requires, req.String())
	}
	for _, req := range res.ToolRequires {
		entry.Tools = append(entry.Tools, req.String())
	}
	rec.set(rcp.Version, matrix, entry)
	return saveRecord(r.OutputDir, rec)
}

// Matrix joins the values of the declared settings, e.g. "Linux-x86_64".
// An empty declaration yields "any".
func Matrix(s recipe.Settings, declared []string) (string, error) {
	if len(declared) == 0 {
		return "any", nil
	}
	vals := make([]string, 0, len(declared))
	for _, key := range declared {
		v, err := s.Get(key)
		if err != nil {
			return "", err
		}
		if v == "" {
			v = "none"
		}
		vals = append(vals, v)
	}
	return strings.Join(vals, "-"), nil
}

// LastRun returns the recipe and suffixes recorded for version and matrix
// in the output folder.
func LastRun(dir, version, matrix string) (name string, suffixes map[string]string, ok bool) {
	rec, err := loadRecord(dir)
	if err != nil {
		return "", nil, false
	}
	entry, ok := rec.get(version, matrix)
	if !ok {
		return "", nil, false
	}
	return entry.Recipe, maps.Clone(entry.Suffixes), true
}

func requirementNames(reqs []Requirement) []string {
	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		names = append(names, req.Ref.Name)
	}
	return names
}

func (r *Runner) logf(format string, args ...any) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	logger.Printf(format, args...)
}
