package dsl

import (
	"context"
	"fmt"
	"reflect"

	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed wrapper used by the object and
// union builders. It remembers the Go type of T so bindings can be checked
// when a schema is built.
type AnyAdapter struct {
	parse      func(context.Context, any) (any, error)
	encode     func(context.Context, any) (any, error)
	jsonSchema func() (*js.Schema, error)
	typ        reflect.Type
	orig       any
}

// SchemaOf converts an arbitrary Schema[T] into an AnyAdapter.
func SchemaOf[T any](s rpcskema.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) {
			out, err := s.Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
		encode: func(ctx context.Context, v any) (any, error) {
			tv, ok := v.(T)
			if !ok && v != nil {
				return nil, fail("/", rpcskema.CodeInvalidType, fmt.Sprintf("expected %s, got %T", reflect.TypeOf((*T)(nil)).Elem(), v))
			}
			return s.Encode(ctx, tv)
		},
		jsonSchema: s.JSONSchema,
		typ:        reflect.TypeOf((*T)(nil)).Elem(),
		orig:       s,
	}
}

// Orig returns the Schema[T] the adapter was created from.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Type returns the Go type produced by the adapter.
func (ad AnyAdapter) Type() reflect.Type { return ad.typ }

// ---- typed wrappers ----

type arraySchema[E any] struct{ elem rpcskema.Schema[E] }

// ArrayOf returns a Schema for a JSON array whose elements use elem. Element
// issues are reported under their index.
func ArrayOf[E any](elem rpcskema.Schema[E]) rpcskema.Schema[[]E] { return arraySchema[E]{elem: elem} }

func (a arraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fail("/", rpcskema.CodeInvalidType, "expected array, got "+rpcskema.TypeName(v))
	}
	failFast := rpcskema.IsFailFast(ctx)
	out := make([]E, len(arr))
	var iss rpcskema.Issues
	for i, el := range arr {
		ev, err := a.elem.Parse(ctx, el)
		if err != nil {
			iss = append(iss, rpcskema.Rebase(rpcskema.IndexPointer("/", i), err)...)
			if failFast {
				return nil, iss
			}
			continue
		}
		out[i] = ev
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a arraySchema[E]) Encode(ctx context.Context, v []E) (any, error) {
	out := make([]any, len(v))
	for i, el := range v {
		ev, err := a.elem.Encode(ctx, el)
		if err != nil {
			return nil, rpcskema.Rebase(rpcskema.IndexPointer("/", i), err)
		}
		out[i] = ev
	}
	return out, nil
}

func (a arraySchema[E]) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}

type nullableSchema[T any] struct{ inner rpcskema.Schema[T] }

// Nullable accepts JSON null as the zero value of T and encodes the zero value as null.
func Nullable[T any](s rpcskema.Schema[T]) rpcskema.Schema[T] { return nullableSchema[T]{inner: s} }

func (n nullableSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	if v == nil {
		var zero T
		return zero, nil
	}
	return n.inner.Parse(ctx, v)
}

func (n nullableSchema[T]) Encode(ctx context.Context, v T) (any, error) {
	rv := reflect.ValueOf(&v).Elem()
	if rv.IsZero() {
		return nil, nil
	}
	return n.inner.Encode(ctx, v)
}

func (n nullableSchema[T]) JSONSchema() (*js.Schema, error) {
	s, err := n.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	return js.Nullable(s), nil
}

type optionalSchema[T any] struct{ inner rpcskema.Schema[T] }

// Optional maps JSON null to a nil pointer and any other value to a pointer to
// the decoded T.
func Optional[T any](s rpcskema.Schema[T]) rpcskema.Schema[*T] { return optionalSchema[T]{inner: s} }

func (o optionalSchema[T]) Parse(ctx context.Context, v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	out, err := o.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o optionalSchema[T]) Encode(ctx context.Context, v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	return o.inner.Encode(ctx, *v)
}

func (o optionalSchema[T]) JSONSchema() (*js.Schema, error) {
	s, err := o.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	return js.Nullable(s), nil
}

type opaqueSchema struct{}

// Opaque accepts any JSON value and re-emits it unchanged.
func Opaque() rpcskema.Schema[rpcskema.RawValue] { return opaqueSchema{} }

func (opaqueSchema) Parse(_ context.Context, v any) (rpcskema.RawValue, error) {
	return rpcskema.NewRawValue(v), nil
}

func (opaqueSchema) Encode(_ context.Context, v rpcskema.RawValue) (any, error) { return v.Value(), nil }

func (opaqueSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

type unitSchema[T any] struct{}

// Unit is the payload schema of a union variant that carries no data. It
// decodes from null or an empty object and encodes as null.
func Unit[T any]() rpcskema.Schema[T] { return unitSchema[T]{} }

func (unitSchema[T]) isUnit() {}

func (unitSchema[T]) Parse(_ context.Context, v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	if m, ok := rpcskema.AsMap(v); ok && len(m) == 0 {
		return zero, nil
	}
	return zero, fail("/", rpcskema.CodeInvalidType, "expected null, got "+rpcskema.TypeName(v))
}

func (unitSchema[T]) Encode(context.Context, T) (any, error) { return nil, nil }

func (unitSchema[T]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "null"}, nil }

type transformSchema[A, B any] struct {
	inner rpcskema.Schema[A]
	to    func(A) (B, error)
	from  func(B) (A, error)
}

// Transform maps the values of s through to on decode and from on encode.
// Errors returned by to that are not Issues are reported as invalid_format.
func Transform[A, B any](s rpcskema.Schema[A], to func(A) (B, error), from func(B) (A, error)) rpcskema.Schema[B] {
	return transformSchema[A, B]{inner: s, to: to, from: from}
}

func (t transformSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	a, err := t.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	b, err := t.to(a)
	if err != nil {
		if iss, ok := rpcskema.AsIssues(err); ok {
			return zero, iss
		}
		iss := fail("/", rpcskema.CodeInvalidFormat, err.Error())
		iss[0].Cause = err
		return zero, iss
	}
	return b, nil
}

func (t transformSchema[A, B]) Encode(ctx context.Context, v B) (any, error) {
	a, err := t.from(v)
	if err != nil {
		return nil, err
	}
	return t.inner.Encode(ctx, a)
}

func (t transformSchema[A, B]) JSONSchema() (*js.Schema, error) { return t.inner.JSONSchema() }
