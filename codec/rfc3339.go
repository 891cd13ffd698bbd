package codec

import (
	"math"
	"strconv"
	"time"

	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

// RFC3339 returns a Schema that converts between RFC3339 strings and time.Time.
// Decoded times are normalized to UTC.
func RFC3339() rpcskema.Schema[time.Time] {
	return scalar[time.Time]{
		decode: func(v any) (time.Time, error) {
			s, ok := v.(string)
			if !ok {
				return time.Time{}, rpcskema.Fail(rpcskema.CodeInvalidType, "expected RFC3339 string, got "+rpcskema.TypeName(v))
			}
			t, err := parseRFC3339(s)
			if err != nil {
				return time.Time{}, rpcskema.Issues{{Path: "/", Code: rpcskema.CodeInvalidFormat, Message: "invalid RFC3339 time", Hint: s, Cause: err}}
			}
			return t.UTC(), nil
		},
		encode: func(t time.Time) (any, error) { return formatRFC3339Canonical(t), nil },
		schema: func() *js.Schema { return &js.Schema{Type: "string", Format: "date-time"} },
	}
}

// TimestampNanos returns a Schema for a point in time carried as a decimal
// string of nanoseconds since the Unix epoch.
func TimestampNanos() rpcskema.Schema[time.Time] {
	return scalar[time.Time]{
		decode: func(v any) (time.Time, error) {
			n, err := parseDecimal64(v)
			if err != nil {
				return time.Time{}, err
			}
			if n > math.MaxInt64 {
				return time.Time{}, rpcskema.Fail(rpcskema.CodeOutOfRange, "timestamp exceeds int64 nanoseconds")
			}
			return time.Unix(0, int64(n)).UTC(), nil
		},
		encode: func(t time.Time) (any, error) {
			n := t.UnixNano()
			if n < 0 {
				return nil, rpcskema.Fail(rpcskema.CodeOutOfRange, "timestamp before the Unix epoch")
			}
			return strconv.FormatInt(n, 10), nil
		},
		schema: func() *js.Schema {
			return &js.Schema{Type: "string", Format: "uint64", Pattern: decimalPattern}
		},
	}
}

// ---- helpers ----

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
