// export by github.com/goplus/ixgo/cmd/qexp

package versions

import (
	q "github.com/goplus/llrecipe/pkgs/mod/versions"

	"reflect"

	"github.com/goplus/ixgo"
)

func init() {
	ixgo.RegisterPackage(&ixgo.Package{
		Name: "versions",
		Path: "github.com/goplus/llrecipe/pkgs/mod/versions",
		Deps: map[string]string{
			"bytes":         "bytes",
			"encoding/json": "json",
			"fmt":           "fmt",
			"github.com/goplus/llrecipe/pkgs/mod/module": "module",
			"golang.org/x/mod/semver":                    "semver",
			"io":                                         "io",
			"os":                                         "os",
			"strconv":                                    "strconv",
			"strings":                                    "strings",
		},
		Interfaces: map[string]reflect.Type{},
		NamedTypes: map[string]reflect.Type{
			"Index": reflect.TypeOf((*q.Index)(nil)).Elem(),
			"Range": reflect.TypeOf((*q.Range)(nil)).Elem(),
		},
		AliasTypes: map[string]reflect.Type{},
		Vars:       map[string]reflect.Value{},
		Funcs: map[string]reflect.Value{
			"Parse":      reflect.ValueOf(q.Parse),
			"ParseRange": reflect.ValueOf(q.ParseRange),
		},
		TypedConsts:   map[string]ixgo.TypedConst{},
		UntypedConsts: map[string]ixgo.UntypedConst{},
	})
}
