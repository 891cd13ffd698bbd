package codec

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	rpcskema "github.com/reoring/rpcskema"
	js "github.com/reoring/rpcskema/jsonschema"
)

const decimalPattern = "^[0-9]+$"

// U64StringOf returns a Schema for a 64-bit unsigned integer carried as a
// decimal string. Leading zeros are accepted on decode; encode is canonical.
func U64StringOf[T ~uint64]() rpcskema.Schema[T] {
	return scalar[T]{
		decode: func(v any) (T, error) {
			n, err := parseDecimal64(v)
			return T(n), err
		},
		encode: func(v T) (any, error) { return strconv.FormatUint(uint64(v), 10), nil },
		schema: func() *js.Schema {
			return &js.Schema{Type: "string", Format: "uint64", Pattern: decimalPattern}
		},
	}
}

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

const pow19 = 10_000_000_000_000_000_000 // largest power of ten below 2^64

// String renders u as a canonical decimal string.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	// split into base 10^19 limbs
	var limbs []uint64
	hi, lo := u.Hi, u.Lo
	for hi != 0 || lo >= pow19 {
		qHi := hi / pow19
		var r uint64
		lo, r = bits.Div64(hi%pow19, lo, pow19)
		hi = qHi
		limbs = append(limbs, r)
	}
	out := strconv.FormatUint(lo, 10)
	for i := len(limbs) - 1; i >= 0; i-- {
		out += fmt.Sprintf("%019d", limbs[i])
	}
	return out
}

// ParseUint128 parses a decimal string of digits. The error is an
// rpcskema.Issues with invalid_format or out_of_range.
func ParseUint128(s string) (Uint128, error) {
	if err := checkDigits(s); err != nil {
		return Uint128{}, err
	}
	var hi, lo uint64
	for i := 0; i < len(s); i++ {
		d := uint64(s[i] - '0')
		// (hi,lo) = (hi,lo)*10 + d
		ovf, hi10 := bits.Mul64(hi, 10)
		carryHi, lo10 := bits.Mul64(lo, 10)
		nhi, c := bits.Add64(hi10, carryHi, 0)
		if ovf != 0 || c != 0 {
			return Uint128{}, rpcskema.Fail(rpcskema.CodeOutOfRange, "exceeds 128 bits: "+s)
		}
		nlo, c := bits.Add64(lo10, d, 0)
		nhi, c = bits.Add64(nhi, 0, c)
		if c != 0 {
			return Uint128{}, rpcskema.Fail(rpcskema.CodeOutOfRange, "exceeds 128 bits: "+s)
		}
		hi, lo = nhi, nlo
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

// U128 returns a Schema for Uint128 carried as a decimal string.
func U128() rpcskema.Schema[Uint128] {
	return scalar[Uint128]{
		decode: func(v any) (Uint128, error) {
			s, ok := v.(string)
			if !ok {
				return Uint128{}, rpcskema.Fail(rpcskema.CodeInvalidType, "expected decimal string, got "+rpcskema.TypeName(v))
			}
			return ParseUint128(s)
		},
		encode: func(v Uint128) (any, error) { return v.String(), nil },
		schema: func() *js.Schema {
			return &js.Schema{Type: "string", Format: "uint128", Pattern: decimalPattern}
		},
	}
}

// ---- helpers ----

func checkDigits(s string) error {
	if s == "" {
		return rpcskema.Fail(rpcskema.CodeInvalidFormat, "empty decimal string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return rpcskema.Fail(rpcskema.CodeInvalidFormat, fmt.Sprintf("non-digit %q in %q", s[i], s))
		}
	}
	return nil
}

func parseDecimal64(v any) (uint64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, rpcskema.Fail(rpcskema.CodeInvalidType, "expected decimal string, got "+rpcskema.TypeName(v))
	}
	if err := checkDigits(s); err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, numberError(s, err)
	}
	return n, nil
}
