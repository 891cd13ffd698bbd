package dsl

import (
	"context"
	"errors"
	"fmt"

	rpcskema "github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/i18n"
	js "github.com/reoring/rpcskema/jsonschema"
)

// EnumTag is one row of an enum table.
type EnumTag[T ~string] struct {
	Value T
	Wire  string
}

// Tag pairs an in-model value with its wire tag.
func Tag[T ~string](v T, wire string) EnumTag[T] { return EnumTag[T]{Value: v, Wire: wire} }

// EnumSchema is a closed set of values with explicit wire tags.
type EnumSchema[T ~string] struct {
	name     string
	tags     []EnumTag[T]
	toWire   map[T]string
	fromWire map[string]T
}

// Enum builds an enum from its tag table. Every value must have exactly one
// tag and every tag must map back to exactly one value.
func Enum[T ~string](name string, tags ...EnumTag[T]) (*EnumSchema[T], error) {
	e := &EnumSchema[T]{
		name:     name,
		tags:     append([]EnumTag[T](nil), tags...),
		toWire:   make(map[T]string, len(tags)),
		fromWire: make(map[string]T, len(tags)),
	}
	var errs []error
	if len(tags) == 0 {
		errs = append(errs, fmt.Errorf("dsl: enum %s has no tags", name))
	}
	for _, t := range tags {
		if t.Value == "" || t.Wire == "" {
			errs = append(errs, fmt.Errorf("dsl: enum %s: empty value or tag in %q -> %q", name, t.Value, t.Wire))
			continue
		}
		if prev, dup := e.toWire[t.Value]; dup {
			errs = append(errs, fmt.Errorf("dsl: enum %s: value %q mapped to both %q and %q", name, t.Value, prev, t.Wire))
			continue
		}
		if prev, dup := e.fromWire[t.Wire]; dup {
			errs = append(errs, fmt.Errorf("dsl: enum %s: tag %q used by both %q and %q", name, t.Wire, prev, t.Value))
			continue
		}
		e.toWire[t.Value] = t.Wire
		e.fromWire[t.Wire] = t.Value
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return e, nil
}

// MustEnum is Enum that panics on error.
func MustEnum[T ~string](name string, tags ...EnumTag[T]) *EnumSchema[T] {
	e, err := Enum(name, tags...)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the enum name.
func (e *EnumSchema[T]) Name() string { return e.name }

func (e *EnumSchema[T]) Kind() rpcskema.Kind { return rpcskema.KindEnum }

// Tags returns the table in declaration order.
func (e *EnumSchema[T]) Tags() []rpcskema.Tag {
	out := make([]rpcskema.Tag, len(e.tags))
	for i, t := range e.tags {
		out[i] = rpcskema.Tag{Variant: string(t.Value), Wire: t.Wire}
	}
	return out
}

// Wire returns the wire tag of v.
func (e *EnumSchema[T]) Wire(v T) (string, bool) {
	w, ok := e.toWire[v]
	return w, ok
}

func (e *EnumSchema[T]) Parse(_ context.Context, v any) (T, error) {
	s, ok := v.(string)
	if !ok {
		return "", fail("/", rpcskema.CodeInvalidType, "expected string tag, got "+rpcskema.TypeName(v))
	}
	out, ok := e.fromWire[s]
	if !ok {
		return "", unknownVariant("/", e.name, s)
	}
	return out, nil
}

// Encode fails only for values outside the table.
func (e *EnumSchema[T]) Encode(_ context.Context, v T) (any, error) {
	w, ok := e.toWire[v]
	if !ok {
		return nil, unknownVariant("/", e.name, string(v))
	}
	return w, nil
}

func (e *EnumSchema[T]) JSONSchema() (*js.Schema, error) {
	enum := make([]any, len(e.tags))
	for i, t := range e.tags {
		enum[i] = t.Wire
	}
	return &js.Schema{Title: e.name, Type: "string", Enum: enum}, nil
}

func unknownVariant(path, owner, tag string) rpcskema.Issues {
	return rpcskema.Issues{{
		Path:    path,
		Code:    rpcskema.CodeUnknownVariant,
		Message: i18n.T(rpcskema.CodeUnknownVariant, map[string]string{"tag": tag}),
		Hint:    fmt.Sprintf("%s: unknown tag %q", owner, tag),
		Params:  map[string]any{"tag": tag, "type": owner},
	}}
}
