package codec_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	rpcskema "github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
)

type height uint64

func TestU64String_Boundary(t *testing.T) {
	s := codec.U64StringOf[height]()
	ctx := context.Background()

	got, err := s.Parse(ctx, "18446744073709551615")
	if err != nil {
		t.Fatalf("max u64 should decode: %v", err)
	}
	if got != height(^uint64(0)) {
		t.Fatalf("unexpected value: %d", got)
	}

	_, err = s.Parse(ctx, "18446744073709551616")
	if !errors.Is(err, rpcskema.ErrOutOfRange) {
		t.Fatalf("expected out_of_range, got %v", err)
	}
}

func TestU64String_Grammar(t *testing.T) {
	s := codec.U64StringOf[uint64]()
	ctx := context.Background()

	cases := []struct {
		in   any
		code string
	}{
		{"", rpcskema.CodeInvalidFormat},
		{"-1", rpcskema.CodeInvalidFormat},
		{"+1", rpcskema.CodeInvalidFormat},
		{"12a", rpcskema.CodeInvalidFormat},
		{" 1", rpcskema.CodeInvalidFormat},
		{json.Number("1"), rpcskema.CodeInvalidType},
	}
	for _, tc := range cases {
		if _, err := s.Parse(ctx, tc.in); !rpcskema.HasCode(err, tc.code) {
			t.Fatalf("%#v: expected %s, got %v", tc.in, tc.code, err)
		}
	}

	got, err := s.Parse(ctx, "007")
	if err != nil || got != 7 {
		t.Fatalf("leading zeros: got %d, %v", got, err)
	}
	out, _ := s.Encode(ctx, got)
	if out != "7" {
		t.Fatalf("expected canonical encode, got %v", out)
	}
}

func TestU128_Boundary(t *testing.T) {
	s := codec.U128()
	ctx := context.Background()

	const max = "340282366920938463463374607431768211455"
	got, err := s.Parse(ctx, max)
	if err != nil {
		t.Fatalf("max u128 should decode: %v", err)
	}
	if got.Hi != ^uint64(0) || got.Lo != ^uint64(0) {
		t.Fatalf("unexpected limbs: %+v", got)
	}
	if out, _ := s.Encode(ctx, got); out != max {
		t.Fatalf("roundtrip mismatch: %v", out)
	}
	if got.Big().String() != max {
		t.Fatalf("big mismatch: %s", got.Big())
	}

	if _, err := s.Parse(ctx, "340282366920938463463374607431768211456"); !rpcskema.HasCode(err, rpcskema.CodeOutOfRange) {
		t.Fatalf("expected out_of_range, got %v", err)
	}
}

func TestUint128_String(t *testing.T) {
	cases := []string{
		"0",
		"18446744073709551615",
		"18446744073709551616",
		"10000000000000000000000000",
		"100000000000000000000000000000000000000",
	}
	for _, in := range cases {
		u, err := codec.ParseUint128(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if u.String() != in {
			t.Fatalf("roundtrip mismatch: %s != %s", u.String(), in)
		}
		if u.Big().String() != in {
			t.Fatalf("big mismatch for %s", in)
		}
	}
	if codec.Uint128From64(42).String() != "42" {
		t.Fatalf("widening failed")
	}
}

func TestUintOf_Range(t *testing.T) {
	ctx := context.Background()
	u8 := codec.UintOf[uint8]()
	if v, err := u8.Parse(ctx, json.Number("255")); err != nil || v != 255 {
		t.Fatalf("255: %d %v", v, err)
	}
	if _, err := u8.Parse(ctx, json.Number("256")); !rpcskema.HasCode(err, rpcskema.CodeOutOfRange) {
		t.Fatalf("expected out_of_range, got %v", err)
	}
	if _, err := u8.Parse(ctx, json.Number("-1")); !rpcskema.HasCode(err, rpcskema.CodeOutOfRange) {
		t.Fatalf("expected out_of_range for negative, got %v", err)
	}
	if v, err := u8.Parse(ctx, json.Number("-0")); err != nil || v != 0 {
		t.Fatalf("-0 should decode as zero: %d %v", v, err)
	}
	if _, err := u8.Parse(ctx, json.Number("1.5")); !rpcskema.HasCode(err, rpcskema.CodeInvalidFormat) {
		t.Fatalf("expected invalid_format, got %v", err)
	}
	if _, err := u8.Parse(ctx, "1"); !rpcskema.HasCode(err, rpcskema.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}

	u64 := codec.UintOf[uint64]()
	v, err := u64.Parse(ctx, json.Number("18446744073709551615"))
	if err != nil || v != ^uint64(0) {
		t.Fatalf("max u64 number: %d %v", v, err)
	}
	out, _ := u64.Encode(ctx, v)
	if out != json.Number("18446744073709551615") {
		t.Fatalf("unexpected encode: %#v", out)
	}

	i64 := codec.IntOf[int64]()
	if n, err := i64.Parse(ctx, json.Number("-5")); err != nil || n != -5 {
		t.Fatalf("int64: %d %v", n, err)
	}
}

func TestDuration_Object(t *testing.T) {
	s := codec.DurationObject()
	ctx := context.Background()

	d, err := s.Parse(ctx, map[string]any{"secs": json.Number("3"), "nanos": json.Number("500"), "extra": true})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if d != (codec.Duration{Secs: 3, Nanos: 500}) {
		t.Fatalf("unexpected duration: %+v", d)
	}
	out, err := s.Encode(ctx, d)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	b, _ := json.Marshal(out)
	if string(b) != `{"secs":3,"nanos":500}` {
		t.Fatalf("unexpected wire form: %s", b)
	}
}

func TestDuration_NanosRange(t *testing.T) {
	s := codec.DurationObject()
	ctx := context.Background()

	if _, err := s.Parse(ctx, map[string]any{"secs": json.Number("0"), "nanos": json.Number("999999999")}); err != nil {
		t.Fatalf("upper bound should decode: %v", err)
	}
	_, err := s.Parse(ctx, map[string]any{"secs": json.Number("0"), "nanos": json.Number("1000000000")})
	iss, ok := rpcskema.AsIssues(err)
	if !ok || iss[0].Code != rpcskema.CodeInvalidFormat || iss[0].Path != "/nanos" {
		t.Fatalf("expected invalid_format at /nanos, got %v", err)
	}
	for _, nanos := range []string{"-1", "99999999999999999999"} {
		_, err = s.Parse(ctx, map[string]any{"secs": json.Number("1"), "nanos": json.Number(nanos)})
		iss, ok = rpcskema.AsIssues(err)
		if !ok || iss[0].Code != rpcskema.CodeInvalidFormat || iss[0].Path != "/nanos" {
			t.Fatalf("nanos %s: expected invalid_format at /nanos, got %v", nanos, err)
		}
	}
	_, err = s.Parse(ctx, map[string]any{"secs": json.Number("0")})
	if !errors.Is(err, rpcskema.ErrMissingField) {
		t.Fatalf("expected missing nanos, got %v", err)
	}
	if _, err := s.Parse(ctx, json.Number("5")); !rpcskema.HasCode(err, rpcskema.CodeInvalidFormat) {
		t.Fatalf("strict object form should reject a number, got %v", err)
	}
}

func TestDuration_Legacy(t *testing.T) {
	s := codec.DurationAny()
	ctx := context.Background()

	for _, in := range []any{json.Number("1500000000"), "1500000000"} {
		d, err := s.Parse(ctx, in)
		if err != nil {
			t.Fatalf("%v: %v", in, err)
		}
		if d != (codec.Duration{Secs: 1, Nanos: 500_000_000}) {
			t.Fatalf("unexpected split: %+v", d)
		}
		out, _ := s.Encode(ctx, d)
		b, _ := json.Marshal(out)
		if string(b) != `{"secs":1,"nanos":500000000}` {
			t.Fatalf("legacy input must encode as object, got %s", b)
		}
	}
}

type blob []byte

func TestBase64(t *testing.T) {
	s := codec.Base64Of[blob]()
	ctx := context.Background()

	got, err := s.Parse(ctx, "aGVsbG8=")
	if err != nil || string(got) != "hello" {
		t.Fatalf("decode: %q %v", got, err)
	}
	if out, _ := s.Encode(ctx, got); out != "aGVsbG8=" {
		t.Fatalf("encode: %v", out)
	}
	for _, bad := range []string{"aGVsbG8", "a$==", "aGVsbG9="} {
		if _, err := s.Parse(ctx, bad); !rpcskema.HasCode(err, rpcskema.CodeInvalidFormat) {
			t.Fatalf("%q: expected invalid_format, got %v", bad, err)
		}
	}
}

func TestByteArray(t *testing.T) {
	s := codec.ByteArrayOf[blob]()
	ctx := context.Background()

	got, err := s.Parse(ctx, []any{json.Number("0"), json.Number("255"), json.Number("7")})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(got) != 3 || got[1] != 255 {
		t.Fatalf("unexpected bytes: %v", got)
	}
	out, _ := s.Encode(ctx, got)
	b, _ := json.Marshal(out)
	if string(b) != `[0,255,7]` {
		t.Fatalf("unexpected wire form: %s", b)
	}

	_, err = s.Parse(ctx, []any{json.Number("1"), json.Number("256")})
	iss, ok := rpcskema.AsIssues(err)
	if !ok || iss[0].Code != rpcskema.CodeInvalidFormat || iss[0].Path != "/1" {
		t.Fatalf("expected invalid_format at /1, got %v", err)
	}

	empty, _ := s.Encode(ctx, nil)
	if b, _ := json.Marshal(empty); string(b) != `[]` {
		t.Fatalf("nil bytes must encode as empty array, got %s", b)
	}
}

type accountID string

func TestStringOf_PreservesBytes(t *testing.T) {
	s := codec.StringOf[accountID]()
	in := "Alice.Nearé "
	got, err := s.Parse(context.Background(), in)
	if err != nil || string(got) != in {
		t.Fatalf("identifier altered: %q %v", got, err)
	}
	if _, err := s.Parse(context.Background(), json.Number("1")); !rpcskema.HasCode(err, rpcskema.CodeInvalidType) {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}
