// export by github.com/goplus/ixgo/cmd/qexp

package module

import (
	q "github.com/goplus/llrecipe/pkgs/mod/module"

	"reflect"

	"github.com/goplus/ixgo"
)

func init() {
	ixgo.RegisterPackage(&ixgo.Package{
		Name: "module",
		Path: "github.com/goplus/llrecipe/pkgs/mod/module",
		Deps: map[string]string{
			"fmt":           "fmt",
			"path/filepath": "filepath",
			"strings":       "strings",
		},
		Interfaces: map[string]reflect.Type{},
		NamedTypes: map[string]reflect.Type{
			"Reference": reflect.TypeOf((*q.Reference)(nil)).Elem(),
			"Version":   reflect.TypeOf((*q.Version)(nil)).Elem(),
		},
		AliasTypes: map[string]reflect.Type{},
		Vars:       map[string]reflect.Value{},
		Funcs: map[string]reflect.Value{
			"CheckName":      reflect.ValueOf(q.CheckName),
			"EscapePath":     reflect.ValueOf(q.EscapePath),
			"ParseReference": reflect.ValueOf(q.ParseReference),
		},
		TypedConsts:   map[string]ixgo.TypedConst{},
		UntypedConsts: map[string]ixgo.UntypedConst{},
	})
}
