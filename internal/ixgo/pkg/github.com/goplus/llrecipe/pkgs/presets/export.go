// export by github.com/goplus/ixgo/cmd/qexp

package presets

import (
	q "github.com/goplus/llrecipe/pkgs/presets"

	"go/constant"
	"reflect"

	"github.com/goplus/ixgo"
)

func init() {
	ixgo.RegisterPackage(&ixgo.Package{
		Name: "presets",
		Path: "github.com/goplus/llrecipe/pkgs/presets",
		Deps: map[string]string{
			"bytes":                  "bytes",
			"encoding/hex":           "hex",
			"encoding/json":          "json",
			"errors":                 "errors",
			"fmt":                    "fmt",
			"github.com/google/uuid": "uuid",
			"io/fs":                  "fs",
			"os":                     "os",
		},
		Interfaces: map[string]reflect.Type{
			"TokenSource": reflect.TypeOf((*q.TokenSource)(nil)).Elem(),
		},
		NamedTypes: map[string]reflect.Type{
			"ConfigurePreset": reflect.TypeOf((*q.ConfigurePreset)(nil)).Elem(),
			"Document":        reflect.TypeOf((*q.Document)(nil)).Elem(),
			"FieldError":      reflect.TypeOf((*q.FieldError)(nil)).Elem(),
			"Preset":          reflect.TypeOf((*q.Preset)(nil)).Elem(),
			"Renamer":         reflect.TypeOf((*q.Renamer)(nil)).Elem(),
			"TokenFunc":       reflect.TypeOf((*q.TokenFunc)(nil)).Elem(),
		},
		AliasTypes: map[string]reflect.Type{},
		Vars: map[string]reflect.Value{
			"ErrInvalidField": reflect.ValueOf(&q.ErrInvalidField),
			"ErrMalformed":    reflect.ValueOf(&q.ErrMalformed),
			"ErrMissingField": reflect.ValueOf(&q.ErrMissingField),
			"ErrNoArch":       reflect.ValueOf(&q.ErrNoArch),
			"UUIDTokens":      reflect.ValueOf(&q.UUIDTokens),
		},
		Funcs: map[string]reflect.Value{
			"CheckToken": reflect.ValueOf(q.CheckToken),
			"FixedToken": reflect.ValueOf(q.FixedToken),
			"Load":       reflect.ValueOf(q.Load),
			"NewRenamer": reflect.ValueOf(q.NewRenamer),
			"Parse":      reflect.ValueOf(q.Parse),
		},
		TypedConsts: map[string]ixgo.TypedConst{},
		UntypedConsts: map[string]ixgo.UntypedConst{
			"BuildPresets":     {"untyped string", constant.MakeString(string(q.BuildPresets))},
			"ConfigurePresets": {"untyped string", constant.MakeString(string(q.ConfigurePresets))},
			"DefaultFile":      {"untyped string", constant.MakeString(string(q.DefaultFile))},
			"Indent":           {"untyped string", constant.MakeString(string(q.Indent))},
			"TestPresets":      {"untyped string", constant.MakeString(string(q.TestPresets))},
			"TokenLen":         {"untyped int", constant.MakeInt64(int64(q.TokenLen))},
		},
	})
}
