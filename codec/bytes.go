package codec

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

// Base64Of returns a Schema for bytes carried as a padded standard base64 string.
func Base64Of[T ~[]byte]() rpcskema.Schema[T] {
	return scalar[T]{
		decode: func(v any) (T, error) {
			s, ok := v.(string)
			if !ok {
				return nil, rpcskema.Fail(rpcskema.CodeInvalidType, "expected base64 string, got "+rpcskema.TypeName(v))
			}
			b, err := base64.StdEncoding.Strict().DecodeString(s)
			if err != nil {
				iss := rpcskema.Fail(rpcskema.CodeInvalidFormat, "invalid base64: "+err.Error())
				iss[0].Cause = err
				return nil, iss
			}
			return T(b), nil
		},
		encode: func(v T) (any, error) { return base64.StdEncoding.EncodeToString(v), nil },
		schema: func() *js.Schema {
			return &js.Schema{Type: "string", Format: "byte"}
		},
	}
}

// ByteArrayOf returns a Schema for bytes carried as an array of integers 0..255.
func ByteArrayOf[T ~[]byte]() rpcskema.Schema[T] {
	return scalar[T]{
		decode: func(v any) (T, error) {
			arr, ok := v.([]any)
			if !ok {
				return nil, rpcskema.Fail(rpcskema.CodeInvalidType, "expected array of bytes, got "+rpcskema.TypeName(v))
			}
			out := make(T, len(arr))
			var iss rpcskema.Issues
			for i, el := range arr {
				n, err := parseUintNumber(el, 64)
				if err == nil && n > 255 {
					err = rpcskema.Fail(rpcskema.CodeInvalidFormat, "byte must be within [0, 255], got "+strconv.FormatUint(n, 10))
				} else if rpcskema.HasCode(err, rpcskema.CodeOutOfRange) {
					err = rpcskema.Fail(rpcskema.CodeInvalidFormat, "byte must be within [0, 255]")
				}
				if err != nil {
					iss = append(iss, rpcskema.Rebase(rpcskema.IndexPointer("/", i), err)...)
					continue
				}
				out[i] = byte(n)
			}
			if len(iss) > 0 {
				return nil, iss
			}
			return out, nil
		},
		encode: func(v T) (any, error) {
			out := make([]any, len(v))
			for i, b := range v {
				out[i] = json.Number(strconv.Itoa(int(b)))
			}
			return out, nil
		},
		schema: func() *js.Schema {
			return &js.Schema{Type: "array", Items: &js.Schema{Type: "integer", Minimum: js.Ptr(0.0), Maximum: js.Ptr(255.0)}}
		},
	}
}
