// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goplus/llrecipe/pkgs/mod/module"
	"github.com/goplus/llrecipe/pkgs/presets"
)

func TestRecipeF_Metadata(t *testing.T) {
	p := &RecipeF{}
	p.Name("sunrisetlib")
	p.Version("1.0")
	p.Settings("os", "compiler")
	p.Settings("build_type", "arch")
	p.Option("shared", true)
	p.Option("fPIC", true)
	p.Option("shared", false)
	p.Generators("CMakeToolchain", "CMakeDeps")

	assert.Equal(t, "sunrisetlib", p.recipeName)
	assert.Equal(t, "1.0", p.recipeVersion)
	assert.Equal(t, []string{"os", "compiler", "build_type", "arch"}, p.settings)
	assert.Equal(t, []Option{{"shared", false}, {"fPIC", true}}, p.options)
	assert.Equal(t, []string{"CMakeToolchain", "CMakeDeps"}, p.generators)
}

func TestRecipeF_Hooks(t *testing.T) {
	p := &RecipeF{}
	var called []string
	p.OnConfigure(func(*Options) { called = append(called, "configure") })
	p.OnRequirements(func(*Requirements) { called = append(called, "requirements") })
	p.OnBuildRequirements(func(*Requirements) { called = append(called, "build_requirements") })
	p.OnGenerate(func(*GenerateContext) { called = append(called, "generate") })
	p.OnImports(func(*Imports) { called = append(called, "imports") })

	p.fOnConfigure(nil)
	p.fOnRequirements(nil)
	p.fOnBuildRequirements(nil)
	p.fOnGenerate(nil)
	p.fOnImports(nil)

	assert.Equal(t, []string{"configure", "requirements", "build_requirements", "generate", "imports"}, called)
}

func TestSettings(t *testing.T) {
	s := Settings{OS: "Linux", Compiler: "gcc", BuildType: "Release", Arch: "x86_64"}
	for key, want := range map[string]string{"os": "Linux", "compiler": "gcc", "build_type": "Release", "arch": "x86_64"} {
		got, err := s.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Get(%q)", key)
	}
	_, err := s.Get("libcxx")
	assert.Error(t, err)

	merged := s.Merge(Settings{Arch: "armv8", BuildType: "Debug"})
	assert.Equal(t, Settings{OS: "Linux", Compiler: "gcc", BuildType: "Debug", Arch: "armv8"}, merged)
	assert.Equal(t, "os=Linux compiler=gcc build_type=Release arch=x86_64", s.String())
}

func TestOptions(t *testing.T) {
	opts := NewOptions([]Option{{"shared", false}, {"fPIC", true}})
	assert.Equal(t, []string{"shared", "fPIC"}, opts.Names())

	v, ok := opts.Value("fPIC")
	assert.True(t, ok)
	assert.True(t, v)

	opts.Set("fPIC", false)
	v, _ = opts.Value("fPIC")
	assert.False(t, v)

	opts.Set("lto", true)
	require.Len(t, opts.Errs(), 1, "undeclared option")

	opts.Dep("*").Set("shared", false)
	opts.Dep("fmt").Set("shared", true)
	opts.Dep("fmt").Set("header_only", true)
	opts.Dep("z*").Set("fPIC", false)

	assert.Equal(t, map[string]bool{"shared": true, "header_only": true}, opts.ForDep("fmt"))
	assert.Equal(t, map[string]bool{"shared": false, "fPIC": false}, opts.ForDep("zlib"))
	assert.Equal(t, []string{"*", "fmt", "z*"}, opts.Patterns())

	opts.Dep("[")
	assert.Len(t, opts.Errs(), 2, "bad pattern")
}

func TestRequirements(t *testing.T) {
	var deps Requirements
	deps.Requires("fmt/[~11.1]")
	deps.ToolRequires("cmake/[>3.14]")
	deps.Requires("fmt/[~10]")
	deps.Requires("zlib")
	deps.ToolRequires("ninja/[~x]")
	deps.ToolRequires("fmt/[~11.1]")

	assert.Equal(t, []module.Reference{{Name: "fmt", Range: "~11.1"}}, deps.Refs())
	assert.Equal(t, []module.Reference{{Name: "cmake", Range: ">3.14"}, {Name: "fmt", Range: "~11.1"}}, deps.ToolRefs())
	assert.Len(t, deps.Errs(), 3)
}

func TestImports(t *testing.T) {
	var imp Imports
	imp.Copy("license*", "licenses", true, true)
	imp.Copy("[", "licenses", false, false)
	imp.Copy("*.txt", "../outside", false, false)
	imp.Copy("*.txt", "/abs", false, false)

	rules := imp.Rules()
	require.Len(t, rules, 1)
	assert.Len(t, imp.Errs(), 3)

	rule := rules[0]
	for name, want := range map[string]bool{
		"LICENSE":     true,
		"license.txt": true,
		"License.md":  true,
		"COPYING":     false,
	} {
		assert.Equal(t, want, rule.Match(name), "Match(%q)", name)
	}
	rule.IgnoreCase = false
	assert.False(t, rule.Match("LICENSE"))
}

func TestGenerateContext_RenamePresets(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, presets.DefaultFile)
	content := `{"configurePresets": [{"name": "conan-release", "displayName": "Release"}]}`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	ctx := &GenerateContext{
		Settings: Settings{Arch: "x86_64"},
		Dir:      dir,
		Tokens:   presets.FixedToken("a1b2c3d4"),
	}
	ctx.RenamePresets(presets.DefaultFile)
	ctx.RenamePresets("CMakeUserPresets.json")

	require.Empty(t, ctx.Errs())
	assert.Equal(t, map[string]string{file: "x86_64-a1b2c3d4"}, ctx.Suffixes())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"conan-release-x86_64-a1b2c3d4"`)
	assert.NoFileExists(t, filepath.Join(dir, "CMakeUserPresets.json"))
}

func TestGenerateContext_RenamePresetsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, presets.DefaultFile), []byte("not json"), 0644))

	ctx := &GenerateContext{Settings: Settings{Arch: "x86_64"}, Dir: dir}
	ctx.RenamePresets(presets.DefaultFile)
	assert.Len(t, ctx.Errs(), 1)
}
