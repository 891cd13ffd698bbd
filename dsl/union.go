package dsl

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	rpcskema "github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/i18n"
	js "github.com/reoring/rpcskema/jsonschema"
)

// Strategy selects how a union picks its variant.
type Strategy int

const (
	// Structural tries variants in declaration order; the first that decodes wins.
	Structural Strategy = iota
	// Tagged reads the variant tag from a key of the object itself.
	Tagged
	// External wraps the payload as {"Tag": payload}; payload-less variants are a bare "Tag".
	External
)

func (s Strategy) String() string {
	switch s {
	case Tagged:
		return "tagged"
	case External:
		return "external"
	default:
		return "structural"
	}
}

// UnionCase is one variant of a union over U.
type UnionCase[U any] struct {
	tag        string
	typ        reflect.Type
	unit       bool
	parse      func(context.Context, any) (U, error)
	encode     func(context.Context, U) (any, error)
	jsonSchema func() (*js.Schema, error)
	err        error
}

// Case declares a variant named tag whose values are decoded by s. V must
// implement U.
func Case[U, V any](tag string, s rpcskema.Schema[V]) UnionCase[U] {
	c := UnionCase[U]{tag: tag, typ: reflect.TypeOf((*V)(nil)).Elem(), jsonSchema: s.JSONSchema}
	if _, ok := any(s).(interface{ isUnit() }); ok {
		c.unit = true
	}
	if _, ok := any(*new(V)).(U); !ok && !c.typ.AssignableTo(reflect.TypeOf((*U)(nil)).Elem()) {
		c.err = fmt.Errorf("dsl: variant %q: %s does not implement %s", tag, c.typ, reflect.TypeOf((*U)(nil)).Elem())
		return c
	}
	c.parse = func(ctx context.Context, v any) (U, error) {
		out, err := s.Parse(ctx, v)
		if err != nil {
			var zero U
			return zero, err
		}
		return any(out).(U), nil
	}
	c.encode = func(ctx context.Context, u U) (any, error) {
		vv, ok := any(u).(V)
		if !ok {
			return nil, fail("/", rpcskema.CodeInvalidType, fmt.Sprintf("variant %q expects %s, got %T", tag, reflect.TypeOf((*V)(nil)).Elem(), u))
		}
		return s.Encode(ctx, vv)
	}
	return c
}

// UnionOf starts a union builder over the sealed interface U.
func UnionOf[U any](name string) *unionBuilder[U] { return &unionBuilder[U]{name: name} }

type unionBuilder[U any] struct {
	name     string
	strategy Strategy
	key      string
	cases    []UnionCase[U]
	fallback *UnionCase[U]
}

// Structural selects first-match-wins discrimination (the default).
func (b *unionBuilder[U]) Structural() *unionBuilder[U] {
	b.strategy, b.key = Structural, ""
	return b
}

// Tagged selects discrimination by the string value under key.
func (b *unionBuilder[U]) Tagged(key string) *unionBuilder[U] {
	b.strategy, b.key = Tagged, key
	return b
}

// External selects externally tagged discrimination.
func (b *unionBuilder[U]) External() *unionBuilder[U] {
	b.strategy, b.key = External, ""
	return b
}

// OneOf appends variants in precedence order.
func (b *unionBuilder[U]) OneOf(cases ...UnionCase[U]) *unionBuilder[U] {
	b.cases = append(b.cases, cases...)
	return b
}

// Fallback declares the catch-all variant. It receives the untouched wire value
// when no tag matches (tagged and external unions) or when every variant failed
// (structural unions).
func (b *unionBuilder[U]) Fallback(c UnionCase[U]) *unionBuilder[U] {
	b.fallback = &c
	return b
}

// Build checks the variant table and returns the schema.
func (b *unionBuilder[U]) Build() (*UnionSchema[U], error) {
	var errs []error
	ut := reflect.TypeOf((*U)(nil)).Elem()
	if ut.Kind() != reflect.Interface {
		errs = append(errs, fmt.Errorf("dsl: union %s: %s is not an interface", b.name, ut))
	}
	if b.strategy == Tagged && b.key == "" {
		errs = append(errs, fmt.Errorf("dsl: union %s: tagged union needs a key", b.name))
	}
	if len(b.cases) == 0 {
		errs = append(errs, fmt.Errorf("dsl: union %s has no variants", b.name))
	}
	u := &UnionSchema[U]{
		name:     b.name,
		strategy: b.strategy,
		key:      b.key,
		cases:    append([]UnionCase[U](nil), b.cases...),
		byTag:    make(map[string]int, len(b.cases)),
		byType:   make(map[reflect.Type]int, len(b.cases)+1),
	}
	all := u.cases
	if b.fallback != nil {
		all = append(append([]UnionCase[U](nil), u.cases...), *b.fallback)
	}
	for i, c := range all {
		if c.err != nil {
			errs = append(errs, c.err)
			continue
		}
		if c.tag == "" {
			errs = append(errs, fmt.Errorf("dsl: union %s: variant %d has an empty tag", b.name, i))
		}
		if _, dup := u.byTag[c.tag]; dup {
			errs = append(errs, fmt.Errorf("dsl: union %s: duplicate variant tag %q", b.name, c.tag))
		}
		if _, dup := u.byType[c.typ]; dup {
			errs = append(errs, fmt.Errorf("dsl: union %s: Go type %s used by more than one variant", b.name, c.typ))
		}
		u.byType[c.typ] = i
		if i < len(u.cases) {
			u.byTag[c.tag] = i
		}
		if c.unit && b.strategy != External {
			errs = append(errs, fmt.Errorf("dsl: union %s: unit variant %q needs an externally tagged union", b.name, c.tag))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if b.fallback != nil {
		fb := *b.fallback
		u.fallback = &fb
	}
	return u, nil
}

// MustBuild is Build that panics on error.
func (b *unionBuilder[U]) MustBuild() *UnionSchema[U] {
	u, err := b.Build()
	if err != nil {
		panic(err)
	}
	return u
}

// UnionSchema is a discriminated union over the sealed interface U. It is
// immutable and safe for concurrent use.
type UnionSchema[U any] struct {
	name     string
	strategy Strategy
	key      string
	cases    []UnionCase[U]
	fallback *UnionCase[U]
	byTag    map[string]int
	byType   map[reflect.Type]int // index into cases, or len(cases) for the fallback
}

// Name returns the union name.
func (u *UnionSchema[U]) Name() string { return u.name }

func (u *UnionSchema[U]) Kind() rpcskema.Kind { return rpcskema.KindUnion }

// Strategy returns the discrimination strategy.
func (u *UnionSchema[U]) Strategy() Strategy { return u.strategy }

// Variants returns the variant tags in precedence order, fallback last.
func (u *UnionSchema[U]) Variants() []string {
	out := make([]string, 0, len(u.cases)+1)
	for _, c := range u.cases {
		out = append(out, c.tag)
	}
	if u.fallback != nil {
		out = append(out, u.fallback.tag)
	}
	return out
}

func (u *UnionSchema[U]) Parse(ctx context.Context, v any) (U, error) {
	switch u.strategy {
	case Tagged:
		return u.parseTagged(ctx, v)
	case External:
		return u.parseExternal(ctx, v)
	default:
		return u.parseStructural(ctx, v)
	}
}

func (u *UnionSchema[U]) parseStructural(ctx context.Context, v any) (U, error) {
	var zero U
	failures := make([]rpcskema.VariantFailure, 0, len(u.cases))
	for _, c := range u.cases {
		out, err := c.parse(ctx, v)
		if err == nil {
			return out, nil
		}
		failures = append(failures, rpcskema.VariantFailure{Variant: c.tag, Issues: rpcskema.ToIssues("/", err)})
	}
	if u.fallback != nil {
		return u.fallback.parse(ctx, v)
	}
	return zero, rpcskema.Issues{{
		Path:     "/",
		Code:     rpcskema.CodeNoMatchingVariant,
		Message:  i18n.T(rpcskema.CodeNoMatchingVariant, nil),
		Hint:     fmt.Sprintf("%s: none of %d variants matched", u.name, len(u.cases)),
		Variants: failures,
	}}
}

func (u *UnionSchema[U]) parseTagged(ctx context.Context, v any) (U, error) {
	var zero U
	m, ok := rpcskema.AsMap(v)
	if !ok {
		return zero, fail("/", rpcskema.CodeInvalidType, "expected object, got "+rpcskema.TypeName(v))
	}
	keyPath := rpcskema.FieldPointer("/", u.key)
	raw, present := m[u.key]
	if !present {
		if u.fallback != nil {
			return u.fallback.parse(ctx, v)
		}
		return zero, fail(keyPath, rpcskema.CodeDiscriminatorMissing, u.name+": missing "+u.key)
	}
	tag, ok := raw.(string)
	if !ok {
		return zero, fail(keyPath, rpcskema.CodeInvalidType, "expected string tag, got "+rpcskema.TypeName(raw))
	}
	i, ok := u.byTag[tag]
	if !ok {
		if u.fallback != nil {
			return u.fallback.parse(ctx, v)
		}
		return zero, unknownVariant(keyPath, u.name, tag)
	}
	rest := make(map[string]any, len(m))
	for k, val := range m {
		if k != u.key {
			rest[k] = val
		}
	}
	out, err := u.cases[i].parse(ctx, rest)
	if err != nil {
		return zero, inVariant(err, u.name, tag)
	}
	return out, nil
}

func (u *UnionSchema[U]) parseExternal(ctx context.Context, v any) (U, error) {
	var zero U
	if tag, ok := v.(string); ok {
		i, known := u.byTag[tag]
		switch {
		case known && u.cases[i].unit:
			return u.cases[i].parse(ctx, nil)
		case known:
			return zero, fail("/", rpcskema.CodeInvalidType, fmt.Sprintf("%s: variant %q carries a payload", u.name, tag))
		case u.fallback != nil:
			return u.fallback.parse(ctx, v)
		}
		return zero, unknownVariant("/", u.name, tag)
	}
	m, ok := rpcskema.AsMap(v)
	if !ok {
		return zero, fail("/", rpcskema.CodeInvalidType, "expected string or single-key object, got "+rpcskema.TypeName(v))
	}
	if len(m) != 1 {
		if u.fallback != nil {
			return u.fallback.parse(ctx, v)
		}
		return zero, fail("/", rpcskema.CodeInvalidFormat, fmt.Sprintf("%s: expected exactly one variant key, got %d", u.name, len(m)))
	}
	for tag, payload := range m {
		i, known := u.byTag[tag]
		if !known {
			if u.fallback != nil {
				return u.fallback.parse(ctx, v)
			}
			return zero, unknownVariant("/", u.name, tag)
		}
		out, err := u.cases[i].parse(ctx, payload)
		if err != nil {
			return zero, rpcskema.Rebase(rpcskema.FieldPointer("/", tag), inVariant(err, u.name, tag))
		}
		return out, nil
	}
	return zero, nil // unreachable: len(m) == 1
}

// Encode delegates to the concrete variant. A nil value cannot be encoded.
func (u *UnionSchema[U]) Encode(ctx context.Context, v U) (any, error) {
	if any(v) == nil {
		return nil, fail("/", rpcskema.CodeInvalidType, u.name+": nil union value")
	}
	i, ok := u.byType[reflect.TypeOf(any(v))]
	if !ok {
		return nil, fail("/", rpcskema.CodeUnknownVariant, fmt.Sprintf("%s: %T is not a declared variant", u.name, v))
	}
	if i >= len(u.cases) {
		return u.fallback.encode(ctx, v)
	}
	c := u.cases[i]
	out, err := c.encode(ctx, v)
	if err != nil {
		return nil, err
	}
	switch u.strategy {
	case Tagged:
		obj, ok := out.(*rpcskema.Object)
		if !ok {
			return nil, fail("/", rpcskema.CodeInvalidType, fmt.Sprintf("%s: variant %q must encode to an object", u.name, c.tag))
		}
		obj.Prepend(u.key, c.tag)
		return obj, nil
	case External:
		if c.unit {
			return c.tag, nil
		}
		obj := rpcskema.NewObject(1)
		obj.Set(c.tag, out)
		return obj, nil
	}
	return out, nil
}

func (u *UnionSchema[U]) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Title: u.name}
	for _, c := range u.cases {
		vs, err := c.jsonSchema()
		if err != nil {
			return nil, err
		}
		switch u.strategy {
		case Tagged:
			cp := *vs
			props := make(map[string]*js.Schema, len(cp.Properties)+1)
			for k, p := range cp.Properties {
				props[k] = p
			}
			props[u.key] = &js.Schema{Type: "string", Const: c.tag}
			cp.Properties = props
			cp.Required = append([]string{u.key}, cp.Required...)
			vs = &cp
		case External:
			if c.unit {
				vs = &js.Schema{Type: "string", Const: c.tag}
			} else {
				vs = &js.Schema{Type: "object", Properties: map[string]*js.Schema{c.tag: vs}, Required: []string{c.tag}}
			}
		}
		s.OneOf = append(s.OneOf, vs)
	}
	if u.fallback != nil {
		fs, err := u.fallback.jsonSchema()
		if err != nil {
			return nil, err
		}
		s.AnyOf = []*js.Schema{{OneOf: s.OneOf}, fs}
		s.OneOf = nil
	}
	return s, nil
}
