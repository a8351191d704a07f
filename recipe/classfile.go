// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recipe is the classfile that package recipes (*_recipe.gox) are
// written in.
package recipe

import (
	"slices"

	"github.com/qiniu/x/gsh"
)

const GopPackage = true

// -----------------------------------------------------------------------------

// RecipeF represents a package recipe.
type RecipeF struct {
	gsh.App

	fOnConfigure         func(opts *Options)
	fOnRequirements      func(deps *Requirements)
	fOnBuildRequirements func(deps *Requirements)
	fOnGenerate          func(ctx *GenerateContext)
	fOnImports           func(imp *Imports)

	recipeName    string
	recipeVersion string
	settings      []string
	options       []Option
	generators    []string
}

func (p *RecipeF) app() *gsh.App {
	return &p.App
}

// Name sets the package name of the recipe.
func (p *RecipeF) Name(name string) {
	p.recipeName = name
}

// Version sets the package version of the recipe.
func (p *RecipeF) Version(ver string) {
	p.recipeVersion = ver
}

// Settings declares which settings ("os", "compiler", "build_type", "arch")
// the recipe depends on.
func (p *RecipeF) Settings(names ...string) {
	p.settings = append(p.settings, names...)
}

// Option declares a boolean option with its default value.
// Declaring the same option again replaces its default.
func (p *RecipeF) Option(name string, def bool) {
	i := slices.IndexFunc(p.options, func(o Option) bool { return o.Name == name })
	if i >= 0 {
		p.options[i].Default = def
		return
	}
	p.options = append(p.options, Option{Name: name, Default: def})
}

// Generators declares the toolchain generators the package manager runs,
// e.g. "CMakeToolchain" and "CMakeDeps".
func (p *RecipeF) Generators(names ...string) {
	p.generators = append(p.generators, names...)
}

// -----------------------------------------------------------------------------

// OnConfigure event is used to adjust option values of the recipe and of
// its dependencies.
func (p *RecipeF) OnConfigure(f func(opts *Options)) {
	p.fOnConfigure = f
}

// OnRequirements event is used to declare library dependencies.
func (p *RecipeF) OnRequirements(f func(deps *Requirements)) {
	p.fOnRequirements = f
}

// OnBuildRequirements event is used to declare build tool dependencies.
func (p *RecipeF) OnBuildRequirements(f func(deps *Requirements)) {
	p.fOnBuildRequirements = f
}

// OnGenerate event runs after the toolchain generators wrote their files.
func (p *RecipeF) OnGenerate(f func(ctx *GenerateContext)) {
	p.fOnGenerate = f
}

// OnImports event is used to declare files copied out of dependencies.
func (p *RecipeF) OnImports(f func(imp *Imports)) {
	p.fOnImports = f
}

// -----------------------------------------------------------------------------

// Gopt_RecipeF_Main is main entry of this classfile.
func Gopt_RecipeF_Main(this interface {
	app() *gsh.App
	MainEntry()
}) {
	this.MainEntry()
	gsh.InitApp(this.app())
}
