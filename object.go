package rpcskema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Member is one key/value pair of an ordered Object.
type Member struct {
	Key   string
	Value any
}

// Object is an encode-side JSON object that keeps members in insertion order,
// so the wire output follows the declared field order.
type Object struct {
	members []Member
}

// NewObject returns an empty Object with room for n members.
func NewObject(n int) *Object { return &Object{members: make([]Member, 0, n)} }

// Set replaces the value of key, or appends it when absent.
func (o *Object) Set(key string, v any) {
	for i := range o.members {
		if o.members[i].Key == key {
			o.members[i].Value = v
			return
		}
	}
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Prepend inserts key at the front, removing any previous occurrence.
func (o *Object) Prepend(key string, v any) {
	out := make([]Member, 0, len(o.members)+1)
	out = append(out, Member{Key: key, Value: v})
	for _, m := range o.members {
		if m.Key != key {
			out = append(out, m)
		}
	}
	o.members = out
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	for _, m := range o.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.members) }

// Members returns a copy of the members in order.
func (o *Object) Members() []Member { return append([]Member(nil), o.members...) }

// MarshalJSON writes the members in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Plain converts an encode tree into a plain generic tree (map[string]any and
// []any), dropping member order.
func Plain(v any) any {
	switch t := v.(type) {
	case *Object:
		m := make(map[string]any, len(t.members))
		for _, mb := range t.members {
			m[mb.Key] = Plain(mb.Value)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = Plain(vv)
		}
		return m
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = Plain(t[i])
		}
		return arr
	case RawValue:
		return Plain(t.v)
	default:
		return v
	}
}

// AsMap views an object-shaped tree value as map[string]any. Nested values are
// left untouched.
func AsMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case *Object:
		if t == nil {
			return nil, false
		}
		m := make(map[string]any, len(t.members))
		for _, mb := range t.members {
			m[mb.Key] = mb.Value
		}
		return m, true
	default:
		return nil, false
	}
}

// TypeName names the JSON kind of a tree value for error messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any, *Object:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
