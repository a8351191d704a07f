// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goplus/llrecipe/internal/env"
	"github.com/goplus/llrecipe/internal/lifecycle"
	"github.com/goplus/llrecipe/internal/profile"
	"github.com/goplus/llrecipe/recipe"
)

var (
	infoRecipe string
	infoOutput string
)

var infoCmd = &cobra.Command{
	Use:   "info [dir]",
	Short: "Show recipe metadata and requirements",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoRecipe, "recipe", "", "Recipe file (default: the *_recipe.gox in dir)")
	infoCmd.Flags().StringVarP(&infoOutput, "output-folder", "o", "", "Generators folder the last run was recorded in (default: dir)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	rcp, err := loadRecipe(dir, infoRecipe)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "name:       %s\n", rcp.Name)
	fmt.Fprintf(w, "version:    %s\n", rcp.Version)
	fmt.Fprintf(w, "recipe:     %s\n", rcp.Path)
	fmt.Fprintf(w, "settings:   %s\n", strings.Join(rcp.Settings, ", "))
	fmt.Fprintf(w, "generators: %s\n", strings.Join(rcp.Generators, ", "))
	for _, o := range rcp.Options {
		fmt.Fprintf(w, "option:     %s=%t\n", o.Name, o.Default)
	}

	var deps, tools recipe.Requirements
	errs := lifecycle.Guard(func() []error {
		if rcp.OnRequirements != nil {
			rcp.OnRequirements(&deps)
		}
		return deps.Errs()
	})
	errs = append(errs, lifecycle.Guard(func() []error {
		if rcp.OnBuildRequirements != nil {
			rcp.OnBuildRequirements(&tools)
		}
		return tools.Errs()
	})...)
	for _, ref := range deps.Refs() {
		fmt.Fprintf(w, "requires:   %s\n", ref)
	}
	for _, ref := range append(deps.ToolRefs(), tools.ToolRefs()...) {
		fmt.Fprintf(w, "tool:       %s\n", ref)
	}
	for _, err := range errs {
		fmt.Fprintf(w, "error:      %v\n", err)
	}

	prof, err := profile.Load(profileFlag)
	if err != nil {
		return err
	}
	matrix, err := lifecycle.Matrix(prof.Apply(env.DetectSettings()), rcp.Settings)
	if err != nil {
		return err
	}
	output := infoOutput
	if output == "" {
		output = dir
	}
	if _, suffixes, ok := lifecycle.LastRun(output, rcp.Version, matrix); ok {
		fmt.Fprintf(w, "last run:   %s\n", matrix)
		for _, file := range slices.Sorted(maps.Keys(suffixes)) {
			fmt.Fprintf(w, "  %s: %s\n", file, suffixes[file])
		}
	}
	return nil
}
