// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/goplus/llrecipe/internal/profile"
)

var (
	profileFlag string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "llrecipe",
	Short: "llrecipe runs package recipes",
	Long: `llrecipe loads a package recipe (*_recipe.gox), runs its lifecycle hooks
and post-processes the files its generators produced, such as CMakePresets.json.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "Profile file (default $"+profile.EnvVar+" or the user profile)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

// newLogger returns the logger for progress messages; it is silent unless
// --verbose is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "llrecipe: ", 0)
}
