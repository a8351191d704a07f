// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"go/ast"
	"reflect"
	"unsafe"
)

// fieldOf returns the named field of elem, made settable even when unexported.
func fieldOf(elem reflect.Value, name string) reflect.Value {
	field := elem.FieldByName(name)
	if ast.IsExported(name) {
		return field
	}
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
}

// valueOf returns the value of the named field. Exported pointer fields are
// dereferenced.
func valueOf(elem reflect.Value, name string) any {
	field := fieldOf(elem, name)
	if ast.IsExported(name) && field.Kind() == reflect.Ptr {
		return field.Elem().Interface()
	}
	return field.Interface()
}

// setValue assigns value to the named field. A nil value stores the field's
// zero value.
func setValue(elem reflect.Value, name string, value any) {
	field := fieldOf(elem, name)
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return
	}
	field.Set(reflect.ValueOf(value))
}
