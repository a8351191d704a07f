// export by github.com/goplus/ixgo/cmd/qexp

package recipe

import (
	q "github.com/goplus/llrecipe/recipe"

	"go/constant"
	"reflect"

	"github.com/goplus/ixgo"
)

func init() {
	ixgo.RegisterPackage(&ixgo.Package{
		Name: "recipe",
		Path: "github.com/goplus/llrecipe/recipe",
		Deps: map[string]string{
			"fmt": "fmt",
			"github.com/goplus/llrecipe/pkgs/mod/module":   "module",
			"github.com/goplus/llrecipe/pkgs/mod/versions": "versions",
			"github.com/goplus/llrecipe/pkgs/presets":      "presets",
			"github.com/qiniu/x/gsh":                       "gsh",
			"maps":                                         "maps",
			"path":                                         "path",
			"path/filepath":                                "filepath",
			"slices":                                       "slices",
			"strings":                                      "strings",
		},
		Interfaces: map[string]reflect.Type{},
		NamedTypes: map[string]reflect.Type{
			"CopyRule":        reflect.TypeOf((*q.CopyRule)(nil)).Elem(),
			"GenerateContext": reflect.TypeOf((*q.GenerateContext)(nil)).Elem(),
			"Imports":         reflect.TypeOf((*q.Imports)(nil)).Elem(),
			"Option":          reflect.TypeOf((*q.Option)(nil)).Elem(),
			"OptionSet":       reflect.TypeOf((*q.OptionSet)(nil)).Elem(),
			"Options":         reflect.TypeOf((*q.Options)(nil)).Elem(),
			"RecipeF":         reflect.TypeOf((*q.RecipeF)(nil)).Elem(),
			"Requirements":    reflect.TypeOf((*q.Requirements)(nil)).Elem(),
			"Settings":        reflect.TypeOf((*q.Settings)(nil)).Elem(),
		},
		AliasTypes: map[string]reflect.Type{},
		Vars:       map[string]reflect.Value{},
		Funcs: map[string]reflect.Value{
			"Gopt_RecipeF_Main": reflect.ValueOf(q.Gopt_RecipeF_Main),
			"NewOptions":        reflect.ValueOf(q.NewOptions),
		},
		TypedConsts: map[string]ixgo.TypedConst{},
		UntypedConsts: map[string]ixgo.UntypedConst{
			"GopPackage": {"untyped bool", constant.MakeBool(bool(q.GopPackage))},
		},
	})
}
