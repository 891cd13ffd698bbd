package dsl

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"

	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

type member struct {
	key        string // wire key; Go field name for embedded members
	ad         AnyAdapter
	embed      bool
	required   bool
	hasDefault bool
	def        any // wire form of the default
	index      []int
}

// ObjectOf starts a builder for an object schema bound to struct type T.
func ObjectOf[T any](name string) *objectBuilder[T] {
	return &objectBuilder[T]{name: name}
}

type objectBuilder[T any] struct {
	name    string
	members []*member
	unknown rpcskema.UnknownPolicy
	errs    []error
}

// fieldStep enables chain-friendly APIs like Field(...).Required().
type fieldStep[T any] struct {
	b *objectBuilder[T]
	m *member
}

// Field declares the next wire field. Fields are decoded and encoded in
// declaration order.
func (b *objectBuilder[T]) Field(key string, ad AnyAdapter) *fieldStep[T] {
	m := &member{key: key, ad: ad}
	b.members = append(b.members, m)
	return &fieldStep[T]{b: b, m: m}
}

// Embed flattens a sub-shape into this object: ad sees the whole wire object
// and its encoded members are merged into the output. structField names the Go
// field receiving the value.
func (b *objectBuilder[T]) Embed(structField string, ad AnyAdapter) *objectBuilder[T] {
	b.members = append(b.members, &member{key: structField, ad: ad, embed: true})
	return b
}

func (b *objectBuilder[T]) UnknownStrict() *objectBuilder[T] {
	b.unknown = rpcskema.UnknownStrict
	return b
}

func (b *objectBuilder[T]) UnknownStrip() *objectBuilder[T] {
	b.unknown = rpcskema.UnknownStrip
	return b
}

// Build validates the declaration against T and returns the schema.
func (b *objectBuilder[T]) Build() (*ObjectSchema[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	ix, err := indexStruct(rt)
	if err != nil {
		return nil, err
	}
	errs := append([]error(nil), b.errs...)
	seen := map[string]bool{}
	members := make([]member, 0, len(b.members))
	for _, m := range b.members {
		mm := *m
		var sf reflect.StructField
		if m.embed {
			f, ok := ix.byName[m.key]
			if !ok {
				errs = append(errs, fmt.Errorf("dsl: %s: no exported field %q to embed into", rt, m.key))
				continue
			}
			sf = f
			if b.unknown == rpcskema.UnknownStrict {
				errs = append(errs, fmt.Errorf("dsl: %s: UnknownStrict cannot be combined with Embed", rt))
			}
		} else {
			if seen[m.key] {
				errs = append(errs, fmt.Errorf("dsl: %s: duplicate field %q", rt, m.key))
				continue
			}
			seen[m.key] = true
			idx, ok := ix.byKey[m.key]
			if !ok {
				errs = append(errs, fmt.Errorf("dsl: %s: no struct field bound to key %q", rt, m.key))
				continue
			}
			sf = rt.FieldByIndex(idx)
			if m.required && m.hasDefault {
				errs = append(errs, fmt.Errorf("dsl: %s: field %q is required and has a default", rt, m.key))
			}
			if m.hasDefault {
				if _, err := m.ad.parse(context.Background(), m.def); err != nil {
					errs = append(errs, fmt.Errorf("dsl: %s: invalid default for %q: %w", rt, m.key, err))
				}
			}
		}
		if err := bindField(rt, sf, m.ad.typ, "schema of "+m.key); err != nil {
			errs = append(errs, err)
			continue
		}
		mm.index = sf.Index
		members = append(members, mm)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	known := make(map[string]struct{}, len(members))
	for _, m := range members {
		if !m.embed {
			known[m.key] = struct{}{}
		}
	}
	return &ObjectSchema[T]{name: b.name, t: rt, members: members, known: known, unknown: b.unknown}, nil
}

// MustBuild is Build that panics on error.
func (b *objectBuilder[T]) MustBuild() *ObjectSchema[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ----- fieldStep methods -----

// Required marks the current field as required.
func (f *fieldStep[T]) Required() *objectBuilder[T] {
	f.m.required = true
	return f.b
}

// Default sets the wire value substituted when the field is absent. It is
// decoded through the field schema and exported to JSON Schema.
func (f *fieldStep[T]) Default(v any) *objectBuilder[T] {
	f.m.hasDefault = true
	f.m.def = v
	return f.b
}

// Forward helpers to keep chaining ergonomics.
func (f *fieldStep[T]) Field(key string, ad AnyAdapter) *fieldStep[T] { return f.b.Field(key, ad) }
func (f *fieldStep[T]) Embed(structField string, ad AnyAdapter) *objectBuilder[T] {
	return f.b.Embed(structField, ad)
}
func (f *fieldStep[T]) UnknownStrict() *objectBuilder[T] { return f.b.UnknownStrict() }
func (f *fieldStep[T]) UnknownStrip() *objectBuilder[T]  { return f.b.UnknownStrip() }
func (f *fieldStep[T]) Build() (*ObjectSchema[T], error) { return f.b.Build() }
func (f *fieldStep[T]) MustBuild() *ObjectSchema[T]      { return f.b.MustBuild() }

// ObjectSchema is a Schema for struct T. It is immutable and safe for
// concurrent use.
type ObjectSchema[T any] struct {
	name    string
	t       reflect.Type
	members []member
	known   map[string]struct{}
	unknown rpcskema.UnknownPolicy
}

var _ rpcskema.Schema[struct{}] = (*ObjectSchema[struct{}])(nil)

// Name returns the schema name.
func (o *ObjectSchema[T]) Name() string { return o.name }

func (o *ObjectSchema[T]) Kind() rpcskema.Kind { return rpcskema.KindObject }

// Parse decodes an object. Any issue fails the whole object.
func (o *ObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, ok := rpcskema.AsMap(v)
	if !ok {
		return zero, fail("/", rpcskema.CodeInvalidType, "expected object, got "+rpcskema.TypeName(v))
	}
	failFast := rpcskema.IsFailFast(ctx)
	rv := reflect.New(o.t).Elem()
	var iss rpcskema.Issues
	for i := range o.members {
		mb := &o.members[i]
		if mb.embed {
			val, err := mb.ad.parse(ctx, v)
			if err != nil {
				iss = append(iss, rpcskema.ToIssues("/", err)...)
			} else {
				assign(rv.FieldByIndex(mb.index), val)
			}
		} else {
			path := rpcskema.FieldPointer("/", mb.key)
			raw, present := m[mb.key]
			switch {
			case present:
				val, err := mb.ad.parse(ctx, raw)
				if err != nil {
					iss = append(iss, rpcskema.Rebase(path, err)...)
				} else {
					assign(rv.FieldByIndex(mb.index), val)
				}
			case mb.hasDefault:
				val, err := mb.ad.parse(ctx, mb.def)
				if err != nil {
					iss = append(iss, rpcskema.Rebase(path, err)...)
				} else {
					assign(rv.FieldByIndex(mb.index), val)
				}
			case mb.required:
				iss = append(iss, rpcskema.NewIssue(path, rpcskema.CodeRequired, mb.key))
			}
		}
		if failFast && len(iss) > 0 {
			return zero, iss
		}
	}
	if o.unknown == rpcskema.UnknownStrict {
		var extra []string
		for k := range m {
			if _, ok := o.known[k]; !ok {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		for _, k := range extra {
			iss = append(iss, rpcskema.NewIssue(rpcskema.FieldPointer("/", k), rpcskema.CodeUnknownKey, k))
		}
	}
	if len(iss) > 0 {
		return zero, iss
	}
	return rv.Interface().(T), nil
}

// Encode emits every declared field in declaration order.
func (o *ObjectSchema[T]) Encode(ctx context.Context, v T) (any, error) {
	rv := reflect.ValueOf(&v).Elem()
	out := rpcskema.NewObject(len(o.members))
	for i := range o.members {
		mb := &o.members[i]
		fv := rv.FieldByIndex(mb.index).Interface()
		enc, err := mb.ad.encode(ctx, fv)
		if !mb.embed {
			if err != nil {
				return nil, rpcskema.Rebase(rpcskema.FieldPointer("/", mb.key), err)
			}
			out.Set(mb.key, enc)
			continue
		}
		if err != nil {
			return nil, err
		}
		sub, ok := enc.(*rpcskema.Object)
		if !ok {
			return nil, fail("/", rpcskema.CodeInvalidType, fmt.Sprintf("embedded %s must encode to an object, got %s", mb.key, rpcskema.TypeName(enc)))
		}
		for _, sm := range sub.Members() {
			out.Set(sm.Key, sm.Value)
		}
	}
	return out, nil
}

// JSONSchema projects the object; embedded sub-shapes are listed under allOf.
func (o *ObjectSchema[T]) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Title: o.name, Type: "object", Properties: map[string]*js.Schema{}}
	for i := range o.members {
		mb := &o.members[i]
		ps, err := mb.ad.jsonSchema()
		if err != nil {
			return nil, err
		}
		if mb.embed {
			s.AllOf = append(s.AllOf, ps)
			continue
		}
		if mb.hasDefault {
			cp := *ps
			cp.Default = mb.def
			ps = &cp
		}
		s.Properties[mb.key] = ps
		if mb.required {
			s.Required = append(s.Required, mb.key)
		}
	}
	if o.unknown == rpcskema.UnknownStrict {
		s.AdditionalProperties = false
	}
	return s, nil
}
