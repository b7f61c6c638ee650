package starlarks

import (
	"fmt"
	"reflect"

	"go.starlark.net/starlark"
)

type Settings struct {
	Qualifier  string
	ImportPath string
}

// ToStarlark converts plain Go data to starlark values. Structs become dicts keyed by exported field names.
func ToStarlark(v any) starlark.Value {
	if v == nil {
		return starlark.None
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.Uint8 {
			return starlark.Bytes(value.Bytes())
		}
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = ToStarlark(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				ToStarlark(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return ToStarlark(value.Elem().Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
