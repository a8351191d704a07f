// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package versions

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// condition is a single comparison such as ">=1.2".
type condition struct {
	op  string // one of ">", ">=", "<", "<=", "="
	ver string // semver with "v" prefix
}

func (c condition) match(v string) bool {
	n := semver.Compare(v, c.ver)
	switch c.op {
	case ">":
		return n > 0
	case ">=":
		return n >= 0
	case "<":
		return n < 0
	case "<=":
		return n <= 0
	}
	return n == 0
}

// A Range is a version range expression.
//
// Conditions separated by spaces must all hold; alternatives are separated
// by "||". Supported operators are >, >=, <, <=, = (or a bare version),
// ~ (same minor, or same major when only a major is given) and ^ (same
// leftmost non-zero component). Options follow a comma; the only option is
// include_prerelease. Pre-release versions match only with that option.
type Range struct {
	raw        string
	alts       [][]condition
	prerelease bool
}

// ParseRange parses a range expression such as "~11.1" or ">=1.2 <2".
func ParseRange(s string) (*Range, error) {
	expr, opts, _ := strings.Cut(s, ",")
	r := &Range{raw: strings.TrimSpace(s)}
	for _, opt := range strings.Split(opts, ",") {
		switch opt = strings.TrimSpace(opt); opt {
		case "":
		case "include_prerelease":
			r.prerelease = true
		default:
			return nil, fmt.Errorf("version range %q: unknown option %q", s, opt)
		}
	}
	for _, alt := range strings.Split(expr, "||") {
		var conds []condition
		for _, field := range strings.Fields(alt) {
			cs, err := parseCondition(field)
			if err != nil {
				return nil, fmt.Errorf("version range %q: %w", s, err)
			}
			conds = append(conds, cs...)
		}
		if len(conds) == 0 {
			return nil, fmt.Errorf("version range %q: empty expression", s)
		}
		r.alts = append(r.alts, conds)
	}
	return r, nil
}

func parseCondition(field string) ([]condition, error) {
	var op string
	for _, prefix := range []string{">=", "<=", ">", "<", "=", "~", "^"} {
		if strings.HasPrefix(field, prefix) {
			op = prefix
			break
		}
	}
	raw := strings.TrimPrefix(field, op)
	v, ok := canonical(raw)
	if !ok {
		return nil, fmt.Errorf("invalid version %q", raw)
	}
	switch op {
	case "~":
		idx := 1
		if len(strings.Split(trimMeta(raw), ".")) == 1 {
			idx = 0
		}
		return []condition{{">=", v}, {"<", upperBound(v, idx)}}, nil
	case "^":
		return []condition{{">=", v}, {"<", upperBound(v, firstNonZero(v, raw))}}, nil
	case "":
		op = "="
	}
	return []condition{{op, v}}, nil
}

// Match reports whether version satisfies the range.
func (r *Range) Match(version string) bool {
	v, ok := canonical(version)
	if !ok {
		return false
	}
	if semver.Prerelease(v) != "" && !r.prerelease {
		return false
	}
	for _, conds := range r.alts {
		all := true
		for _, c := range conds {
			if !c.match(v) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// Select returns the highest candidate that satisfies the range.
func (r *Range) Select(candidates []string) (best string, ok bool) {
	var bestV string
	for _, c := range candidates {
		if !r.Match(c) {
			continue
		}
		v, _ := canonical(c)
		if !ok || semver.Compare(v, bestV) > 0 {
			best, bestV, ok = c, v, true
		}
	}
	return
}

func (r *Range) String() string {
	return r.raw
}

// canonical returns version with a "v" prefix if it is valid semver.
// Short forms such as "11" and "11.1" are accepted.
func canonical(version string) (string, bool) {
	version = strings.TrimSpace(version)
	if version == "" {
		return "", false
	}
	if version[0] != 'v' {
		version = "v" + version
	}
	return version, semver.IsValid(version)
}

// trimMeta strips the "v" prefix and any pre-release or build suffix.
func trimMeta(raw string) string {
	raw = strings.TrimPrefix(raw, "v")
	if i := strings.IndexAny(raw, "-+"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// numbers returns major, minor and patch of a valid semver.
func numbers(v string) [3]int {
	var out [3]int
	core := trimMeta(semver.Canonical(v))
	for i, p := range strings.SplitN(core, ".", 3) {
		out[i], _ = strconv.Atoi(p)
	}
	return out
}

// upperBound bumps component idx of v and returns the lowest pre-release of
// the result, so that pre-releases of the bound are excluded as well.
func upperBound(v string, idx int) string {
	n := numbers(v)
	n[idx]++
	for i := idx + 1; i < len(n); i++ {
		n[i] = 0
	}
	return fmt.Sprintf("v%d.%d.%d-0", n[0], n[1], n[2])
}

func firstNonZero(v, raw string) int {
	n := numbers(v)
	given := len(strings.Split(trimMeta(raw), "."))
	for i := 0; i < given && i < len(n); i++ {
		if n[i] != 0 {
			return i
		}
	}
	return min(given, len(n)) - 1
}
