// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presets reads and rewrites CMake preset documents.
package presets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Collection keys of a preset document.
const (
	ConfigurePresets = "configurePresets"
	BuildPresets     = "buildPresets"
	TestPresets      = "testPresets"
)

// Indent is the indentation used when a document is written back.
const Indent = "    "

// ConfigurePreset is an entry of the configurePresets collection.
type ConfigurePreset struct {
	Name        string
	DisplayName string

	raw object
}

// Preset is an entry of the buildPresets or testPresets collection.
// ConfigurePreset refers to a ConfigurePreset by name.
type Preset struct {
	Name            string
	ConfigurePreset string

	raw object
}

// Document is a parsed preset file. Only the fields above are typed;
// everything else is carried through untouched and in its original order.
type Document struct {
	Configure []*ConfigurePreset
	Build     []*Preset
	Test      []*Preset

	root object
}

// Parse decodes and validates a preset document.
// A document that fails validation is reported before anything is modified.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, &doc.root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	configure, err := doc.collection(ConfigurePresets)
	if err != nil {
		return nil, err
	}
	for i, raw := range configure {
		p := &ConfigurePreset{raw: raw}
		if p.Name, err = stringField(raw, ConfigurePresets, i, "name"); err != nil {
			return nil, err
		}
		if p.DisplayName, err = stringField(raw, ConfigurePresets, i, "displayName"); err != nil {
			return nil, err
		}
		doc.Configure = append(doc.Configure, p)
	}

	if doc.Build, err = doc.presets(BuildPresets); err != nil {
		return nil, err
	}
	if doc.Test, err = doc.presets(TestPresets); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads and parses the preset document at path.
// Errors from reading the file are returned unchanged.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode serializes the document with Indent and a trailing newline.
func (d *Document) Encode() ([]byte, error) {
	if err := d.sync(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save overwrites path with the encoded document.
func (d *Document) Save(path string) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (d *Document) collection(key string) ([]object, error) {
	raw, ok := d.root.values[key]
	if !ok {
		return nil, nil
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: %s: not an array", ErrMalformed, key)
	}
	var entries []object
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, key, err)
	}
	return entries, nil
}

func (d *Document) presets(key string) ([]*Preset, error) {
	entries, err := d.collection(key)
	if err != nil {
		return nil, err
	}
	var out []*Preset
	for i, raw := range entries {
		p := &Preset{raw: raw}
		if p.Name, err = stringField(raw, key, i, "name"); err != nil {
			return nil, err
		}
		if p.ConfigurePreset, err = stringField(raw, key, i, "configurePreset"); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// sync writes the typed fields back into the raw objects.
func (d *Document) sync() error {
	if d.root.has(ConfigurePresets) {
		entries := make([]object, 0, len(d.Configure))
		for _, p := range d.Configure {
			if err := p.raw.set("name", p.Name); err != nil {
				return err
			}
			if err := p.raw.set("displayName", p.DisplayName); err != nil {
				return err
			}
			entries = append(entries, p.raw)
		}
		if err := d.root.set(ConfigurePresets, entries); err != nil {
			return err
		}
	}
	for _, c := range []struct {
		key     string
		presets []*Preset
	}{
		{BuildPresets, d.Build},
		{TestPresets, d.Test},
	} {
		if !d.root.has(c.key) {
			continue
		}
		entries := make([]object, 0, len(c.presets))
		for _, p := range c.presets {
			if err := p.raw.set("name", p.Name); err != nil {
				return err
			}
			if err := p.raw.set("configurePreset", p.ConfigurePreset); err != nil {
				return err
			}
			entries = append(entries, p.raw)
		}
		if err := d.root.set(c.key, entries); err != nil {
			return err
		}
	}
	return nil
}

func stringField(o object, collection string, index int, field string) (string, error) {
	raw, ok := o.values[field]
	if !ok {
		return "", &FieldError{Collection: collection, Index: index, Field: field, Err: ErrMissingField}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || isNull(raw) {
		return "", &FieldError{Collection: collection, Index: index, Field: field, Err: ErrInvalidField}
	}
	return s, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
