// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package versions provides version ranges and the version index used to
// pick versions for direct requirements.
package versions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goplus/llrecipe/pkgs/mod/module"
)

// Index lists the versions available for each package name.
type Index map[string][]string

// Parse reads and parses a version index from either provided data or a file path.
// If data is non-nil, it is used directly and the file parameter is ignored.
// Otherwise, the file is read from the provided path.
func Parse(file string, data []byte) (Index, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		reader = f
	}

	var idx Index

	if err := json.NewDecoder(reader).Decode(&idx); err != nil {
		return nil, err
	}

	return idx, nil
}

// Resolve picks the highest indexed version of ref.Name that ref.Range accepts.
func (idx Index) Resolve(ref module.Reference) (module.Version, error) {
	rng, err := ParseRange(ref.Range)
	if err != nil {
		return module.Version{}, err
	}
	candidates, ok := idx[ref.Name]
	if !ok {
		return module.Version{}, fmt.Errorf("%s: no versions indexed", ref.Name)
	}
	best, ok := rng.Select(candidates)
	if !ok {
		return module.Version{}, fmt.Errorf("%s: no version matches %s", ref.Name, rng)
	}
	return module.Version{Name: ref.Name, Version: best}, nil
}
