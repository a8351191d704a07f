// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recipe loads *_recipe.gox files into Recipe values.
package recipe

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/goplus/ixgo"
	"github.com/goplus/ixgo/xgobuild"
	"github.com/goplus/llrecipe/recipe"
	"github.com/goplus/xgo/ast"
	"github.com/goplus/xgo/parser"
	"github.com/goplus/xgo/parser/fsx/memfs"
	"github.com/goplus/xgo/token"

	xixgo "github.com/goplus/llrecipe/internal/ixgo"
)

// ErrNotFound is returned by Find when a directory holds no recipe.
var ErrNotFound = errors.New("no recipe found")

// loadMu serializes interpreter loads; ixgo builds share global registries.
var loadMu sync.Mutex

// Recipe represents a loaded recipe file with its metadata and hooks.
type Recipe struct {
	structElem reflect.Value

	// Path is the recipe file the Recipe was loaded from.
	Path string

	Name       string
	Version    string
	Settings   []string
	Options    []recipe.Option
	Generators []string

	// NOTE: these signatures MUST match the hook setters of RecipeF
	// in recipe/classfile.go
	OnConfigure         func(opts *recipe.Options)
	OnRequirements      func(deps *recipe.Requirements)
	OnBuildRequirements func(deps *recipe.Requirements)
	OnGenerate          func(ctx *recipe.GenerateContext)
	OnImports           func(imp *recipe.Imports)
}

// Load loads the recipe at path from the local filesystem.
func Load(path string) (*Recipe, error) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	r, err := loadFS(os.DirFS(dir).(fs.ReadFileFS), file)
	if err != nil {
		return nil, err
	}
	r.Path = path
	return r, nil
}

// LoadFS loads a recipe from a filesystem interface.
// The path should be relative to the filesystem root.
func LoadFS(fsys fs.ReadFileFS, path string) (*Recipe, error) {
	return loadFS(fsys, path)
}

// Find returns the single recipe file in dir.
func Find(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+xixgo.Ext))
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("more than one recipe in %s: %s", dir, strings.Join(matches, ", "))
}

// NameOf extracts the package name from a recipe file by parsing its AST,
// without interpreting it.
func NameOf(recipePath string) (name string, err error) {
	fs := token.NewFileSet()
	astFile, err := parser.ParseEntry(fs, recipePath, nil, parser.Config{
		ClassKind: xgobuild.ClassKind,
	})
	if err != nil {
		return "", err
	}
	return nameFrom(astFile)
}

// loadFS builds and interprets the recipe file, then extracts the struct fields.
func loadFS(fsys fs.ReadFileFS, path string) (*Recipe, error) {
	structName, _, ok := strings.Cut(filepath.Base(path), "_")
	if !ok || !strings.HasSuffix(path, xixgo.Ext) {
		return nil, fmt.Errorf("failed to load recipe: file name is not valid: %s", path)
	}
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, err
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	// Classfile kinds are only resolved when building a directory, so the
	// recipe is built as the single file of an in-memory directory.
	ctx := ixgo.NewContext(0)
	dir := memfs.SingleFile(".", filepath.Base(path), string(content))
	source, err := xgobuild.BuildFSDir(ctx, dir, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe %s: %w", path, err)
	}
	pkgs, err := ctx.LoadFile("main.go", source)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe %s: %w", path, err)
	}
	interp, err := ctx.NewInterp(pkgs)
	if err != nil {
		return nil, err
	}
	if err = interp.RunInit(); err != nil {
		return nil, err
	}
	typ, ok := interp.GetType(structName)
	if !ok {
		return nil, fmt.Errorf("failed to load recipe: struct name not found: %s", structName)
	}
	val := reflect.New(typ)
	class := val.Elem()

	val.Interface().(interface{ Main() }).Main()

	r := &Recipe{
		structElem:          class,
		Path:                path,
		Name:                valueOf(class, "recipeName").(string),
		Version:             valueOf(class, "recipeVersion").(string),
		Settings:            valueOf(class, "settings").([]string),
		Options:             valueOf(class, "options").([]recipe.Option),
		Generators:          valueOf(class, "generators").([]string),
		OnConfigure:         valueOf(class, "fOnConfigure").(func(*recipe.Options)),
		OnRequirements:      valueOf(class, "fOnRequirements").(func(*recipe.Requirements)),
		OnBuildRequirements: valueOf(class, "fOnBuildRequirements").(func(*recipe.Requirements)),
		OnGenerate:          valueOf(class, "fOnGenerate").(func(*recipe.GenerateContext)),
		OnImports:           valueOf(class, "fOnImports").(func(*recipe.Imports)),
	}
	if r.Name == "" {
		return nil, fmt.Errorf("failed to load recipe %s: name is not set", path)
	}
	return r, nil
}

// SetStdout sets the stdout writer for the recipe's gsh.App.
func (r *Recipe) SetStdout(w io.Writer) {
	if r.structElem.IsValid() {
		setValue(r.structElem, "fout", w)
	}
}

// SetStderr sets the stderr writer for the recipe's gsh.App.
func (r *Recipe) SetStderr(w io.Writer) {
	if r.structElem.IsValid() {
		setValue(r.structElem, "ferr", w)
	}
}

// String returns "name/version", or just the name when no version is set.
func (r *Recipe) String() string {
	if r.Version == "" {
		return r.Name
	}
	return r.Name + "/" + r.Version
}

// nameFrom finds the first top-level name() call in a recipe AST.
func nameFrom(recipeAST *ast.File) (name string, err error) {
	found := false
	ast.Inspect(recipeAST, func(n ast.Node) bool {
		if found {
			return false
		}
		c, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if fn, ok := c.Fun.(*ast.Ident); ok && fn.Name == "name" {
			found = true
			name, err = parseCallArg(c, fn.Name)
			return false
		}
		return true
	})
	if err == nil && !found {
		err = errors.New("failed to parse name from AST: no name call")
	}
	return
}

// parseCallArg extracts the first string argument from a function call expression.
func parseCallArg(c *ast.CallExpr, fnName string) (string, error) {
	if len(c.Args) == 0 {
		return "", fmt.Errorf("failed to parse %s from AST: no argument", fnName)
	}
	arg, ok := c.Args[0].(*ast.BasicLit)
	if !ok || arg.Kind != token.STRING {
		return "", fmt.Errorf("failed to parse %s from AST: argument is not a string literal", fnName)
	}
	result := strings.Trim(strings.Trim(arg.Value, `"`), "`")
	if result == "" {
		return "", fmt.Errorf("failed to parse %s from AST: no argument", fnName)
	}
	return result, nil
}
