package rpcskema

import (
	"context"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	js "github.com/reoring/rpcskema/jsonschema"
)

// Entry is a type-erased schema held by a Registry.
type Entry struct {
	name       string
	kind       Kind
	parse      func(ctx context.Context, v any) (any, error)
	encode     func(ctx context.Context, v any) (any, error)
	jsonSchema func() (*js.Schema, error)
	variants   []string
	tags       []Tag
}

// Register erases s into an Entry named name. Kind, variant names and enum tag
// tables are picked up when the schema exposes them.
func Register[T any](name string, s Schema[T]) Entry {
	e := Entry{
		name: name,
		kind: KindScalar,
		parse: func(ctx context.Context, v any) (any, error) {
			return s.Parse(ctx, v)
		},
		encode: func(ctx context.Context, v any) (any, error) {
			tv, ok := v.(T)
			if !ok {
				var zero T
				return nil, Fail(CodeInvalidType, fmt.Sprintf("%s: expected %T, got %T", name, zero, v))
			}
			return s.Encode(ctx, tv)
		},
		jsonSchema: s.JSONSchema,
	}
	if k, ok := any(s).(interface{ Kind() Kind }); ok {
		e.kind = k.Kind()
	}
	if vs, ok := any(s).(interface{ Variants() []string }); ok {
		e.variants = vs.Variants()
	}
	if ts, ok := any(s).(interface{ Tags() []Tag }); ok {
		e.tags = ts.Tags()
	}
	return e
}

// Name returns the registered type name.
func (e Entry) Name() string { return e.name }

// Kind returns the schema kind.
func (e Entry) Kind() Kind { return e.kind }

// Variants returns the variant names of a union in declaration order.
func (e Entry) Variants() []string { return append([]string(nil), e.variants...) }

// Tags returns the tag table of an enum.
func (e Entry) Tags() []Tag { return append([]Tag(nil), e.tags...) }

// Registry is an immutable name index over schemas. It is safe for concurrent use.
type Registry struct {
	byName map[string]Entry
	names  []string
}

// NewRegistry indexes entries by name. Empty and duplicate names are rejected.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{byName: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.name == "" {
			return nil, fmt.Errorf("rpcskema: registry entry without a name")
		}
		if _, dup := r.byName[e.name]; dup {
			return nil, fmt.Errorf("rpcskema: duplicate registry entry %q", e.name)
		}
		r.byName[e.name] = e
		r.names = append(r.names, e.name)
	}
	sort.Strings(r.names)
	return r, nil
}

// MustRegistry is NewRegistry that panics on error.
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string { return append([]string(nil), r.names...) }

// Len returns the number of registered entries.
func (r *Registry) Len() int { return len(r.names) }

// Decode parses JSON text as the named type and returns the typed value.
func (r *Registry) Decode(ctx context.Context, name string, data []byte, opts ...ParseOpt) (any, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("rpcskema: unknown type %q", name)
	}
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, Fail(CodeTruncated, "max bytes exceeded")
	}
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	tree, err := ReadTree(JSONBytes(data), opt)
	if err != nil {
		return nil, err
	}
	return e.parse(ctx, tree)
}

// DecodeTree parses an already decoded generic tree as the named type.
func (r *Registry) DecodeTree(ctx context.Context, name string, tree any) (any, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("rpcskema: unknown type %q", name)
	}
	return e.parse(ctx, tree)
}

// Encode renders a typed value of the named type as JSON text.
func (r *Registry) Encode(ctx context.Context, name string, v any) ([]byte, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("rpcskema: unknown type %q", name)
	}
	tree, err := e.encode(ctx, v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// JSONSchema returns the JSON Schema projection of the named type.
func (r *Registry) JSONSchema(name string) (*js.Schema, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("rpcskema: unknown type %q", name)
	}
	return e.jsonSchema()
}
