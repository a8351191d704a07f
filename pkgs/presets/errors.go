// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a preset file that is not the expected JSON shape.
	ErrMalformed = errors.New("presets: malformed document")

	// ErrMissingField reports a preset entry lacking a required field.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField reports a required field that is not a string.
	ErrInvalidField = errors.New("field is not a string")

	// ErrNoArch reports a Renamer without a target architecture.
	ErrNoArch = errors.New("presets: empty architecture")
)

// FieldError describes a required field problem on a single preset entry.
type FieldError struct {
	Collection string // "configurePresets", "buildPresets" or "testPresets"
	Index      int
	Field      string
	Err        error // ErrMissingField or ErrInvalidField
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("presets: %s[%d]: %v: %q", e.Collection, e.Index, e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
