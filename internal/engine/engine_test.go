package engine

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"
)

type sliceSource struct {
	toks []Token
	i    int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.i >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func (s *sliceSource) Location() int64 { return -1 }

func src(toks ...Token) *sliceSource { return &sliceSource{toks: toks} }

func key(k string) Token   { return Token{Kind: KindKey, String: k} }
func str(v string) Token   { return Token{Kind: KindString, String: v} }
func num(n string) Token   { return Token{Kind: KindNumber, Number: n} }
func tk(k Kind) Token      { return Token{Kind: k} }
func boolean(b bool) Token { return Token{Kind: KindBool, Bool: b} }

func TestDecodeTree(t *testing.T) {
	s := src(
		tk(KindBeginObject),
		key("height"), num("18446744073709551615"),
		key("chunks"), tk(KindBeginArray), str("a"), boolean(true), tk(KindNull), tk(KindEndArray),
		tk(KindEndObject),
	)
	v, err := DecodeTree(s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{
		"height": json.Number("18446744073709551615"),
		"chunks": []any{"a", true, nil},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected tree: %#v", v)
	}
}

func TestDecodeTree_TrailingData(t *testing.T) {
	_, err := DecodeTree(src(num("1"), num("2")))
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestDecodeTree_Unterminated(t *testing.T) {
	_, err := DecodeTree(src(tk(KindBeginArray), num("1")))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
	_, err = DecodeTree(src())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF for empty input, got %v", err)
	}
}

func dupObject() *sliceSource {
	return src(
		tk(KindBeginObject),
		key("outer"), tk(KindBeginObject),
		key("a"), num("1"), key("a"), num("2"),
		tk(KindEndObject),
		tk(KindEndObject),
	)
}

func TestEnforce_DuplicateKeys(t *testing.T) {
	v, err := DecodeTree(WrapWithEnforcement(dupObject(), EnforceOptions{OnDuplicate: DupIgnore}))
	if err != nil {
		t.Fatalf("ignore mode: %v", err)
	}
	if v.(map[string]any)["outer"].(map[string]any)["a"] != json.Number("2") {
		t.Fatalf("last occurrence should win: %#v", v)
	}

	var warned []SimpleIssue
	_, err = DecodeTree(WrapWithEnforcement(dupObject(), EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { warned = append(warned, si) },
	}))
	if err != nil {
		t.Fatalf("warn mode: %v", err)
	}
	if len(warned) != 1 || warned[0].Path != "/outer/a" {
		t.Fatalf("unexpected warnings: %+v", warned)
	}

	warned = nil
	_, err = DecodeTree(WrapWithEnforcement(dupObject(), EnforceOptions{
		OnDuplicate: DupError,
		IssueSink:   func(si SimpleIssue) { warned = append(warned, si) },
	}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "duplicate_key" || ie.Path != "/outer/a" {
		t.Fatalf("expected duplicate_key at /outer/a, got %v", err)
	}
	if len(warned) != 0 {
		t.Fatalf("fatal issues must not reach the sink: %+v", warned)
	}

	_, err = DecodeTree(WrapWithEnforcement(dupObject(), EnforceOptions{OnDuplicate: DupWarn, FailFast: true}))
	if !errors.As(err, &ie) {
		t.Fatalf("fail-fast should escalate warnings, got %v", err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	nested := func() *sliceSource {
		return src(
			tk(KindBeginArray),
			tk(KindBeginArray), tk(KindEndArray),
			tk(KindBeginObject), key("k"), tk(KindBeginArray), tk(KindEndArray), tk(KindEndObject),
			tk(KindEndArray),
		)
	}
	if _, err := DecodeTree(WrapWithEnforcement(nested(), EnforceOptions{MaxDepth: 3})); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
	_, err := DecodeTree(WrapWithEnforcement(nested(), EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "parse_error" || ie.Path != "/1/k" {
		t.Fatalf("expected depth error at /1/k, got %v", err)
	}
}

func TestEnforce_PassThrough(t *testing.T) {
	s := src(num("1"))
	if got := WrapWithEnforcement(s, EnforceOptions{}); got != TokenSource(s) {
		t.Fatalf("no options should return the inner source")
	}
}
