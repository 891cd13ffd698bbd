package codec

import (
	"encoding/json"
	"strconv"
	"time"

	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

const maxNanos = 999_999_999

// Duration is a span of time as whole seconds plus a nanosecond remainder.
type Duration struct {
	Secs  uint64
	Nanos uint32
}

// Std converts d to a time.Duration, saturating at the largest representable value.
func (d Duration) Std() time.Duration {
	const maxSecs = uint64(1<<63-1) / uint64(time.Second)
	if d.Secs > maxSecs {
		return time.Duration(1<<63 - 1)
	}
	return time.Duration(d.Secs)*time.Second + time.Duration(d.Nanos)
}

// DurationFromNanos splits a total nanosecond count.
func DurationFromNanos(n uint64) Duration {
	return Duration{Secs: n / 1e9, Nanos: uint32(n % 1e9)}
}

// DurationObject returns a Schema for the {"secs": n, "nanos": n} wire form.
func DurationObject() rpcskema.Schema[Duration] {
	return scalar[Duration]{
		decode: decodeDurationObject,
		encode: encodeDuration,
		schema: durationJSONSchema,
	}
}

// DurationAny is DurationObject that also accepts the legacy shapes: a bare
// number or a decimal string counting nanoseconds. Encode always emits the object.
func DurationAny() rpcskema.Schema[Duration] {
	return scalar[Duration]{
		decode: func(v any) (Duration, error) {
			switch x := v.(type) {
			case string:
				n, err := parseDecimal64(x)
				return DurationFromNanos(n), err
			case map[string]any, *rpcskema.Object:
				return decodeDurationObject(v)
			}
			n, err := parseUintNumber(v, 64)
			if err != nil {
				return Duration{}, err
			}
			return DurationFromNanos(n), nil
		},
		encode: encodeDuration,
		schema: func() *js.Schema {
			return &js.Schema{OneOf: []*js.Schema{
				durationJSONSchema(),
				{Type: "integer", Minimum: js.Ptr(0.0)},
				{Type: "string", Pattern: decimalPattern},
			}}
		},
	}
}

func decodeDurationObject(v any) (Duration, error) {
	m, ok := rpcskema.AsMap(v)
	if !ok {
		return Duration{}, rpcskema.Fail(rpcskema.CodeInvalidFormat, "expected {secs, nanos} object, got "+rpcskema.TypeName(v))
	}
	var iss rpcskema.Issues
	var d Duration
	if raw, ok := m["secs"]; !ok {
		iss = append(iss, rpcskema.NewIssue("/secs", rpcskema.CodeRequired, "secs"))
	} else if n, err := parseUintNumber(raw, 64); err != nil {
		iss = append(iss, rpcskema.Rebase("/secs", err)...)
	} else {
		d.Secs = n
	}
	if raw, ok := m["nanos"]; !ok {
		iss = append(iss, rpcskema.NewIssue("/nanos", rpcskema.CodeRequired, "nanos"))
	} else if n, err := parseUintNumber(raw, 64); err != nil {
		if rpcskema.HasCode(err, rpcskema.CodeOutOfRange) {
			err = rpcskema.Fail(rpcskema.CodeInvalidFormat, "nanos must be within [0, 999999999]")
		}
		iss = append(iss, rpcskema.Rebase("/nanos", err)...)
	} else if n > maxNanos {
		iss = append(iss, rpcskema.NewIssue("/nanos", rpcskema.CodeInvalidFormat, "nanos must be within [0, 999999999], got "+strconv.FormatUint(n, 10)))
	} else {
		d.Nanos = uint32(n)
	}
	if len(iss) > 0 {
		return Duration{}, iss
	}
	return d, nil
}

func encodeDuration(d Duration) (any, error) {
	if d.Nanos > maxNanos {
		return nil, rpcskema.Fail(rpcskema.CodeInvalidFormat, "nanos out of [0, 999999999]")
	}
	o := rpcskema.NewObject(2)
	o.Set("secs", json.Number(strconv.FormatUint(d.Secs, 10)))
	o.Set("nanos", json.Number(strconv.FormatUint(uint64(d.Nanos), 10)))
	return o, nil
}

func durationJSONSchema() *js.Schema {
	return &js.Schema{
		Type: "object",
		Properties: map[string]*js.Schema{
			"secs":  {Type: "integer", Minimum: js.Ptr(0.0)},
			"nanos": {Type: "integer", Minimum: js.Ptr(0.0), Maximum: js.Ptr(float64(maxNanos))},
		},
		Required: []string{"secs", "nanos"},
	}
}
