// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/goplus/llrecipe/internal/env"
	"github.com/goplus/llrecipe/internal/lifecycle"
	"github.com/goplus/llrecipe/internal/profile"
	recipefile "github.com/goplus/llrecipe/internal/recipe"
	"github.com/goplus/llrecipe/pkgs/mod/versions"
)

var generateRecipe string
var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Run the lifecycle hooks of a recipe",
	Long: `Generate loads the recipe in dir (default ".") and runs its configure,
requirements, build_requirements, generate and imports hooks against the
output folder, where the toolchain generators wrote their files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateRecipe, "recipe", "", "Recipe file (default: the *_recipe.gox in dir)")
	generateCmd.Flags().StringVarP(&generateOutput, "output-folder", "o", "", "Generators output folder (default: dir)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	rcp, err := loadRecipe(dir, generateRecipe)
	if err != nil {
		return err
	}
	if verbose {
		rcp.SetStdout(cmd.OutOrStdout())
		rcp.SetStderr(cmd.ErrOrStderr())
	} else {
		rcp.SetStdout(io.Discard)
		rcp.SetStderr(io.Discard)
	}

	prof, err := profile.Load(profileFlag)
	if err != nil {
		return err
	}
	var idx versions.Index
	if prof.Index != "" {
		if idx, err = versions.Parse(prof.Index, nil); err != nil {
			return fmt.Errorf("failed to read version index: %w", err)
		}
	}

	out := generateOutput
	if out == "" {
		out = dir
	}
	if out, err = filepath.Abs(out); err != nil {
		return fmt.Errorf("failed to resolve output folder: %w", err)
	}

	runner := &lifecycle.Runner{
		Settings:  prof.Apply(env.DetectSettings()),
		Options:   prof.Options,
		OutputDir: out,
		DepsDir:   prof.DepsDir,
		Index:     idx,
		Logger:    newLogger(cmd),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Run(ctx, rcp)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", rcp, err)
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}

// loadRecipe loads the recipe file, or the single recipe in dir when file
// is empty.
func loadRecipe(dir, file string) (*recipefile.Recipe, error) {
	if file == "" {
		var err error
		if file, err = recipefile.Find(dir); err != nil {
			return nil, err
		}
	}
	rcp, err := recipefile.Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return rcp, nil
}

func printResult(w io.Writer, res *lifecycle.Result) {
	fmt.Fprintf(w, "%s (%s)\n", res.Recipe, res.Settings)
	for _, name := range slices.Sorted(maps.Keys(res.Options)) {
		fmt.Fprintf(w, "  option %s=%t\n", name, res.Options[name])
	}
	for _, req := range res.Requires {
		fmt.Fprintf(w, "  requires %s\n", req)
	}
	for _, req := range res.ToolRequires {
		fmt.Fprintf(w, "  tool_requires %s\n", req)
	}
	for _, file := range slices.Sorted(maps.Keys(res.Suffixes)) {
		fmt.Fprintf(w, "  renamed presets in %s with suffix %s\n", file, res.Suffixes[file])
	}
	for _, file := range res.Imported {
		fmt.Fprintf(w, "  imported %s\n", file)
	}
}
