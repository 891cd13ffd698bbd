package dsl

import (
	"fmt"
	"reflect"
	"strings"
)

// structKey resolves a struct field's wire key.
// Priority: rpcskema:"name=..." > json tag name > field name; "-" disables the field.
func structKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("rpcskema"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

// structIndex maps wire keys and Go field names of rt to field indices.
type structIndex struct {
	byKey  map[string][]int
	byName map[string]reflect.StructField
}

func indexStruct(rt reflect.Type) (structIndex, error) {
	if rt.Kind() != reflect.Struct {
		return structIndex{}, fmt.Errorf("dsl: %s is not a struct", rt)
	}
	ix := structIndex{byKey: map[string][]int{}, byName: map[string]reflect.StructField{}}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		ix.byName[sf.Name] = sf
		key := structKey(sf)
		if key == "-" || key == "" {
			continue
		}
		ix.byKey[key] = sf.Index
	}
	return ix, nil
}

// bindField checks that a value of type from can be stored in field sf.
func bindField(rt reflect.Type, sf reflect.StructField, from reflect.Type, what string) error {
	if from == nil {
		return fmt.Errorf("dsl: %s.%s: %s has no Go type", rt, sf.Name, what)
	}
	if !from.AssignableTo(sf.Type) {
		return fmt.Errorf("dsl: %s.%s: %s produces %s, not assignable to %s", rt, sf.Name, what, from, sf.Type)
	}
	return nil
}

// assign stores v in dst; nil stores the zero value.
func assign(dst reflect.Value, v any) {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	dst.Set(reflect.ValueOf(v))
}
