// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goplus/llrecipe/internal/env"
	"github.com/goplus/llrecipe/internal/profile"
)

var detectForce bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the settings profile",
}

var profileDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Write the detected host settings to the profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileDetect,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings and profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

func init() {
	profileDetectCmd.Flags().BoolVarP(&detectForce, "force", "f", false, "Overwrite an existing profile")
	profileCmd.AddCommand(profileDetectCmd, profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileDetect(cmd *cobra.Command, args []string) error {
	path := profileFlag
	if path == "" {
		path = os.Getenv(profile.EnvVar)
	}
	if path == "" {
		var err error
		if path, err = profile.DefaultPath(); err != nil {
			return fmt.Errorf("failed to locate profile: %w", err)
		}
	}
	if _, err := os.Stat(path); err == nil && !detectForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	p := &profile.Profile{Settings: env.DetectSettings()}
	if err := p.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Detected %s\nWrote %s\n", p.Settings, path)
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	p, err := profile.Load(profileFlag)
	if err != nil {
		return err
	}
	effective := *p
	effective.Settings = p.Apply(env.DetectSettings())

	if p.Path() != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", p.Path())
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(&effective); err != nil {
		return err
	}
	return enc.Close()
}
