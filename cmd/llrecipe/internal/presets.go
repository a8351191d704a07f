// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplus/llrecipe/internal/env"
	"github.com/goplus/llrecipe/pkgs/presets"
)

var renameArch string
var renameToken string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Work with CMakePresets.json files",
}

var presetsRenameCmd = &cobra.Command{
	Use:   "rename [file]",
	Short: "Give every configure preset a unique architecture suffix",
	Long: `Rename appends "-<arch>-<token>" to the name of every configure preset in
file (default CMakePresets.json) and " (<arch>-<token>)" to its display name.
A build or test preset whose configurePreset matches a renamed configure
preset takes the new name as both its name and its configurePreset. Build and
test presets that match no configure preset keep their names. A missing file
is left alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresetsRename,
}

func init() {
	presetsRenameCmd.Flags().StringVar(&renameArch, "arch", "", "Target architecture (default: host architecture)")
	presetsRenameCmd.Flags().StringVar(&renameToken, "token", "", "Fixed 8 hex character token (default: random)")
	presetsCmd.AddCommand(presetsRenameCmd)
	rootCmd.AddCommand(presetsCmd)
}

func runPresetsRename(cmd *cobra.Command, args []string) error {
	file := presets.DefaultFile
	if len(args) > 0 {
		file = args[0]
	}

	arch := renameArch
	if arch == "" {
		arch = env.HostArch()
	}
	r := presets.NewRenamer(arch)
	if renameToken != "" {
		r.Tokens = presets.FixedToken(renameToken)
	}

	suffix, err := r.RenameFile(file)
	if err != nil {
		return fmt.Errorf("failed to rename presets: %w", err)
	}
	if suffix == "" {
		newLogger(cmd).Printf("%s does not exist, nothing to rename", file)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), suffix)
	return nil
}
