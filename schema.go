package rpcskema

import (
	"context"

	js "github.com/reoring/rpcskema/jsonschema"
)

// Schema binds a Go type to its wire form.
type Schema[T any] interface {
	// Parse decodes a generic JSON tree (map[string]any, []any, string,
	// json.Number, bool, nil; *Object is accepted as well) into T. It fails
	// atomically with Issues.
	Parse(ctx context.Context, v any) (T, error)

	// Encode produces the documented wire shape of v as a generic tree whose
	// objects are *Object. Values obtained from Parse always encode.
	Encode(ctx context.Context, v T) (any, error)

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Decode is a thin wrapper around Schema.Parse.
func Decode[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Parse(ctx, v)
}

// EncodeTree is a thin wrapper around Schema.Encode.
func EncodeTree[T any](ctx context.Context, s Schema[T], v T) (any, error) {
	return s.Encode(ctx, v)
}

// SafeParse parses v into T, returning (zero, false) on failure.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// ---- Parse-time context options (internal wiring, exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// This is set by ParseFrom based on ParseOpt and consumed by schema implementations.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
