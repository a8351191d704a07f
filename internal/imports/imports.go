// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imports copies files out of dependency package folders, such as
// the license files a recipe collects with its imports hook.
package imports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/goplus/llrecipe/pkgs/mod/module"
	"github.com/goplus/llrecipe/recipe"
)

// Copier executes copy rules against a folder of dependency packages laid
// out as <DepsDir>/<name>.
type Copier struct {
	DepsDir string
	// OutputDir is the folder rule destinations are relative to.
	OutputDir string
	Logger    *log.Logger
}

// Copy applies every rule to every named dependency and returns the
// destination paths written, in rule then dependency order.
func (c *Copier) Copy(ctx context.Context, rules []recipe.CopyRule, deps []string) ([]string, error) {
	var copied []string
	for _, rule := range rules {
		for _, name := range deps {
			if err := ctx.Err(); err != nil {
				return copied, err
			}
			files, err := c.copyFrom(rule, name)
			copied = append(copied, files...)
			if err != nil {
				return copied, fmt.Errorf("importing %s from %s: %w", rule.Pattern, name, err)
			}
		}
	}
	return copied, nil
}

func (c *Copier) copyFrom(rule recipe.CopyRule, name string) ([]string, error) {
	escaped, err := module.EscapePath(name)
	if err != nil {
		return nil, err
	}
	root := filepath.Join(c.DepsDir, escaped)
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logf("imports: no package folder for %s, skipping", name)
			return nil, nil
		}
		return nil, err
	}

	var copied []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !rule.Match(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(c.OutputDir, filepath.FromSlash(rule.Dst))
		if rule.Folder {
			dst = filepath.Join(dst, name, rel)
		} else {
			dst = filepath.Join(dst, d.Name())
		}
		if err := copyFile(path, dst); err != nil {
			return err
		}
		c.logf("imports: %s -> %s", path, dst)
		copied = append(copied, dst)
		return nil
	})
	return copied, err
}

func (c *Copier) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
