package rpcskema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// RawValue is an untyped JSON value kept for fields whose shape is not modeled
// (diagnostic payloads, catch-all union variants). Its only invariant is that it
// holds valid JSON.
type RawValue struct {
	v any
}

// NewRawValue wraps a generic JSON tree.
func NewRawValue(v any) RawValue { return RawValue{v: Plain(v)} }

// Value returns the wrapped tree.
func (r RawValue) Value() any { return r.v }

// IsNull reports whether the value is JSON null (or was never set).
func (r RawValue) IsNull() bool { return r.v == nil }

// Equal compares the canonical encodings of both values.
func (r RawValue) Equal(o RawValue) bool {
	a, errA := json.Marshal(r.v)
	b, errB := json.Marshal(o.v)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

func (r RawValue) MarshalJSON() ([]byte, error) { return json.Marshal(r.v) }

func (r *RawValue) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	r.v = v
	return nil
}
