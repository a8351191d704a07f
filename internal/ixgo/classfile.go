// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ixgo registers the recipe classfile and the packages a recipe
// may call into with the ixgo interpreter. Import it for side effects.
package ixgo

import (
	"github.com/goplus/ixgo/xgobuild"
	"github.com/goplus/mod/modfile"

	_ "github.com/goplus/ixgo/xgobuild/pkg/gsh"
	_ "github.com/goplus/llrecipe/internal/ixgo/pkg/github.com/goplus/llrecipe/pkgs/mod/module"
	_ "github.com/goplus/llrecipe/internal/ixgo/pkg/github.com/goplus/llrecipe/pkgs/mod/versions"
	_ "github.com/goplus/llrecipe/internal/ixgo/pkg/github.com/goplus/llrecipe/pkgs/presets"
	_ "github.com/goplus/llrecipe/internal/ixgo/pkg/github.com/goplus/llrecipe/recipe"
	_ "github.com/goplus/llrecipe/internal/ixgo/pkg/golang.org/x/mod/semver"
)

// Ext is the file name suffix of a recipe classfile.
const Ext = "_recipe.gox"

func init() {
	xgobuild.RegisterProject(&modfile.Project{
		Ext:   Ext,
		Class: "RecipeF",
		PkgPaths: []string{
			"github.com/goplus/llrecipe/recipe",
		},
		Import: []*modfile.Import{
			{
				Name: "semver",
				Path: "golang.org/x/mod/semver",
			},
		},
	})
}
