// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/goplus/llrecipe/internal/ixgo"
	"github.com/goplus/llrecipe/pkgs/mod/module"
)

var initDir string

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new recipe",
	Long:  `Init creates a <Name>_recipe.gox skeleton for the package name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initDir, "dir", "C", ".", "Directory to create the recipe in")
	rootCmd.AddCommand(initCmd)
}

const recipeTemplate = `name %q
version "0.1.0"

settings "os", "compiler", "build_type", "arch"

option "shared", false
option "fPIC", true

generators "CMakeToolchain", "CMakeDeps"

onGenerate ctx => {
	ctx.renamePresets "CMakePresets.json"
}
`

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := module.CheckName(name); err != nil {
		return err
	}

	recipePath := filepath.Join(initDir, className(name)+ixgo.Ext)
	f, err := os.OpenFile(recipePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists", recipePath)
		}
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	if _, err := fmt.Fprintf(f, recipeTemplate, name); err != nil {
		f.Close()
		return fmt.Errorf("failed to write recipe: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write recipe: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized recipe %s in %s\n", name, recipePath)
	return nil
}

// className turns a package name into the class name prefix of its recipe
// file: "my-lib" becomes "MyLib". The result never contains '_', which
// separates the class name from the file suffix.
func className(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" || unicode.IsDigit(rune(s[0])) {
		s = "Pkg" + s
	}
	return s
}
