package codec

import (
	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

// StringOf returns a Schema for a string newtype such as an account or key
// identifier. Content is preserved byte for byte.
func StringOf[T ~string]() rpcskema.Schema[T] {
	return scalar[T]{
		decode: func(v any) (T, error) {
			s, ok := v.(string)
			if !ok {
				return "", rpcskema.Fail(rpcskema.CodeInvalidType, "expected string, got "+rpcskema.TypeName(v))
			}
			return T(s), nil
		},
		encode: func(v T) (any, error) { return string(v), nil },
		schema: func() *js.Schema { return &js.Schema{Type: "string"} },
	}
}

// Bool returns a Schema for JSON booleans.
func Bool() rpcskema.Schema[bool] {
	return scalar[bool]{
		decode: func(v any) (bool, error) {
			b, ok := v.(bool)
			if !ok {
				return false, rpcskema.Fail(rpcskema.CodeInvalidType, "expected boolean, got "+rpcskema.TypeName(v))
			}
			return b, nil
		},
		encode: func(v bool) (any, error) { return v, nil },
		schema: func() *js.Schema { return &js.Schema{Type: "boolean"} },
	}
}
