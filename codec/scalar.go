// Package codec provides Schema implementations for scalar wire formats:
// fixed-width integers, big integers carried as decimal strings, durations,
// byte blobs, identifiers and timestamps.
package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

// scalar adapts a pair of pure functions to rpcskema.Schema.
type scalar[T any] struct {
	decode func(v any) (T, error)
	encode func(v T) (any, error)
	schema func() *js.Schema
}

func (s scalar[T]) Parse(_ context.Context, v any) (T, error) { return s.decode(v) }

func (s scalar[T]) Encode(_ context.Context, v T) (any, error) { return s.encode(v) }

func (s scalar[T]) JSONSchema() (*js.Schema, error) { return s.schema(), nil }

func (s scalar[T]) Kind() rpcskema.Kind { return rpcskema.KindScalar }

// UintOf returns a Schema for an unsigned integer carried as a JSON number.
// The accepted range follows the bit size of T.
func UintOf[T ~uint8 | ~uint16 | ~uint32 | ~uint64]() rpcskema.Schema[T] {
	bits := reflect.TypeOf((*T)(nil)).Elem().Bits()
	return scalar[T]{
		decode: func(v any) (T, error) {
			n, err := parseUintNumber(v, bits)
			return T(n), err
		},
		encode: func(v T) (any, error) {
			return json.Number(strconv.FormatUint(uint64(v), 10)), nil
		},
		schema: func() *js.Schema {
			max := float64(uint64(math.MaxUint64) >> (64 - bits))
			return &js.Schema{Type: "integer", Format: fmt.Sprintf("uint%d", bits), Minimum: js.Ptr(0.0), Maximum: js.Ptr(max)}
		},
	}
}

// IntOf returns a Schema for a signed integer carried as a JSON number.
func IntOf[T ~int32 | ~int64]() rpcskema.Schema[T] {
	bits := reflect.TypeOf((*T)(nil)).Elem().Bits()
	return scalar[T]{
		decode: func(v any) (T, error) {
			text, err := numberText(v)
			if err != nil {
				return 0, err
			}
			n, perr := strconv.ParseInt(text, 10, bits)
			if perr != nil {
				return 0, numberError(text, perr)
			}
			return T(n), nil
		},
		encode: func(v T) (any, error) {
			return json.Number(strconv.FormatInt(int64(v), 10)), nil
		},
		schema: func() *js.Schema {
			return &js.Schema{Type: "integer", Format: fmt.Sprintf("int%d", bits)}
		},
	}
}

// ---- helpers ----

func parseUintNumber(v any, bits int) (uint64, error) {
	text, err := numberText(v)
	if err != nil {
		return 0, err
	}
	// "-0" is zero.
	if len(text) > 0 && text[0] == '-' {
		if n, ierr := strconv.ParseInt(text, 10, 64); ierr == nil && n == 0 {
			return 0, nil
		} else if ierr == nil || isRange(ierr) {
			return 0, rpcskema.Fail(rpcskema.CodeOutOfRange, "negative value for unsigned integer: "+text)
		}
	}
	n, perr := strconv.ParseUint(text, 10, bits)
	if perr != nil {
		return 0, numberError(text, perr)
	}
	return n, nil
}

// numberText extracts the literal text of a JSON number. Trees produced by the
// tokenizer carry json.Number; hand-built trees may carry Go numbers.
func numberText(v any) (string, error) {
	switch x := v.(type) {
	case json.Number:
		return string(x), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return "", rpcskema.Fail(rpcskema.CodeInvalidFormat, "expected integer")
		}
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	}
	return "", rpcskema.Fail(rpcskema.CodeInvalidType, fmt.Sprintf("expected number, got %s", rpcskema.TypeName(v)))
}

func numberError(text string, err error) error {
	if isRange(err) {
		return rpcskema.Fail(rpcskema.CodeOutOfRange, text)
	}
	return rpcskema.Fail(rpcskema.CodeInvalidFormat, "expected integer, got "+text)
}

func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
