// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"fmt"
	"slices"

	"github.com/goplus/llrecipe/pkgs/mod/module"
	"github.com/goplus/llrecipe/pkgs/mod/versions"
)

// Requirements collects the references a recipe declares.
// The same type serves the requirements and build_requirements hooks.
type Requirements struct {
	requires []module.Reference
	tools    []module.Reference
	errs     []error
}

// Requires declares a library dependency such as "fmt/[~11.1]".
func (r *Requirements) Requires(ref string) {
	if parsed, ok := r.parse(ref, r.requires); ok {
		r.requires = append(r.requires, parsed)
	}
}

// ToolRequires declares a build tool dependency such as "cmake/[>3.14]".
func (r *Requirements) ToolRequires(ref string) {
	if parsed, ok := r.parse(ref, r.tools); ok {
		r.tools = append(r.tools, parsed)
	}
}

// Refs returns the library dependencies in declaration order.
func (r *Requirements) Refs() []module.Reference {
	return slices.Clone(r.requires)
}

// ToolRefs returns the build tool dependencies in declaration order.
func (r *Requirements) ToolRefs() []module.Reference {
	return slices.Clone(r.tools)
}

// Errs returns the errors recorded for malformed references.
func (r *Requirements) Errs() []error {
	return r.errs
}

// parse validates s and checks it against the references already in list.
func (r *Requirements) parse(s string, list []module.Reference) (module.Reference, bool) {
	ref, err := module.ParseReference(s)
	if err == nil {
		_, err = versions.ParseRange(ref.Range)
	}
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("recipe: %w", err))
		return module.Reference{}, false
	}
	for _, seen := range list {
		if seen.Name == ref.Name {
			r.errs = append(r.errs, fmt.Errorf("recipe: %s required more than once", ref.Name))
			return module.Reference{}, false
		}
	}
	return ref, true
}
