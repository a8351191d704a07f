// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lifecycle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Output folder layout:
//
//	outputDir/
//	  .llrecipe.json        # run record: maps "version-matrix" → runEntry
//	  CMakePresets.json     # written by generators, renamed by the generate hook
//	  licenses/             # written by the imports hook
const recordFile = ".llrecipe.json"

// runEntry describes a single successful lifecycle run.
type runEntry struct {
	Recipe    string            `json:"recipe"`
	Options   map[string]bool   `json:"options,omitempty"`
	Requires  []string          `json:"requires,omitempty"`
	Tools     []string          `json:"tool_requires,omitempty"`
	Suffixes  map[string]string `json:"suffixes,omitempty"`
	Imported  []string          `json:"imported,omitempty"`
	Generated time.Time         `json:"generated"`
}

// runRecord maps "version-matrix" keys to their run entries.
type runRecord struct {
	Runs map[string]*runEntry `json:"runs"`
}

func recordKey(version, matrix string) string {
	return version + "-" + matrix
}

func (r *runRecord) get(version, matrix string) (*runEntry, bool) {
	entry, ok := r.Runs[recordKey(version, matrix)]
	return entry, ok
}

func (r *runRecord) set(version, matrix string, entry *runEntry) {
	if r.Runs == nil {
		r.Runs = make(map[string]*runEntry)
	}
	r.Runs[recordKey(version, matrix)] = entry
}

// loadRecord reads the run record from an output folder.
func loadRecord(dir string) (*runRecord, error) {
	data, err := os.ReadFile(filepath.Join(dir, recordFile))
	if err != nil {
		return nil, err
	}
	var rec runRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// saveRecord writes the run record to an output folder.
func saveRecord(dir string, rec *runRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, recordFile), data, 0o644)
}
