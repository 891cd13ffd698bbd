package dsl_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	rpcskema "github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

type shape interface{ isShape() }

type onlyX struct {
	X uint32 `json:"x"`
}

type xAndY struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

func (onlyX) isShape() {}
func (xAndY) isShape() {}

var (
	u32       = g.SchemaOf(codec.UintOf[uint32]())
	onlyXSpec = g.ObjectOf[onlyX]("A").Field("x", u32).Required().MustBuild()
	xAndYSpec = g.ObjectOf[xAndY]("B").Field("x", u32).Required().Field("y", u32).Required().MustBuild()
)

func TestUnion_StructuralPrecedence(t *testing.T) {
	ctx := context.Background()
	u := g.UnionOf[shape]("Shape").
		OneOf(
			g.Case[shape]("A", onlyXSpec),
			g.Case[shape]("B", xAndYSpec),
		).
		MustBuild()

	v, err := rpcskema.Unmarshal[shape](ctx, u, []byte(`{"x":1,"y":2}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := v.(onlyX); !ok {
		t.Fatalf("first declared variant must win, got %T", v)
	}

	// reversed declaration order picks the more specific variant
	r := g.UnionOf[shape]("Shape").
		OneOf(g.Case[shape]("B", xAndYSpec), g.Case[shape]("A", onlyXSpec)).
		MustBuild()
	v, _ = r.Parse(ctx, map[string]any{"x": json.Number("1"), "y": json.Number("2")})
	if _, ok := v.(xAndY); !ok {
		t.Fatalf("expected B, got %T", v)
	}
	v, _ = r.Parse(ctx, map[string]any{"x": json.Number("1")})
	if _, ok := v.(onlyX); !ok {
		t.Fatalf("expected A when y is absent, got %T", v)
	}
}

func TestUnion_NoMatchingVariant(t *testing.T) {
	ctx := context.Background()
	u := g.UnionOf[shape]("Shape").
		OneOf(g.Case[shape]("A", onlyXSpec), g.Case[shape]("B", xAndYSpec)).
		MustBuild()

	_, err := u.Parse(ctx, map[string]any{"z": json.Number("1")})
	if !errors.Is(err, rpcskema.ErrNoMatchingVariant) {
		t.Fatalf("expected no_matching_variant, got %v", err)
	}
	iss, _ := rpcskema.AsIssues(err)
	vs := iss[0].Variants
	if len(vs) != 2 || vs[0].Variant != "A" || vs[1].Variant != "B" {
		t.Fatalf("per-variant failures missing or out of order: %+v", vs)
	}
	if vs[0].Issues[0].Path != "/x" || vs[0].Issues[0].Code != rpcskema.CodeRequired {
		t.Fatalf("unexpected failure reason: %+v", vs[0].Issues)
	}
}

type event interface{ isEvent() }

type transfer struct {
	Amount codec.Uint128 `json:"amount"`
}
type stake struct {
	Amount    codec.Uint128 `json:"amount"`
	PublicKey string        `json:"public_key"`
}
type otherEvent struct{ Raw rpcskema.RawValue }
type createAccount struct{}

func (transfer) isEvent()      {}
func (stake) isEvent()         {}
func (otherEvent) isEvent()    {}
func (createAccount) isEvent() {}

var (
	transferSpec = g.ObjectOf[transfer]("Transfer").
			Field("amount", g.SchemaOf(codec.U128())).Required().MustBuild()
	stakeSpec = g.ObjectOf[stake]("Stake").
			Field("amount", g.SchemaOf(codec.U128())).Required().
			Field("public_key", g.SchemaOf(codec.StringOf[string]())).Required().MustBuild()
	otherSpec = g.Transform(g.Opaque(),
		func(r rpcskema.RawValue) (otherEvent, error) { return otherEvent{Raw: r}, nil },
		func(o otherEvent) (rpcskema.RawValue, error) { return o.Raw, nil })
)

func TestUnion_Tagged(t *testing.T) {
	ctx := context.Background()
	u := g.UnionOf[event]("Event").
		Tagged("type").
		OneOf(g.Case[event]("transfer", transferSpec), g.Case[event]("stake", stakeSpec)).
		MustBuild()

	v, err := rpcskema.Unmarshal[event](ctx, u, []byte(`{"amount":"5","type":"transfer"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != (transfer{Amount: codec.Uint128From64(5)}) {
		t.Fatalf("unexpected value: %#v", v)
	}
	b, _ := rpcskema.Marshal[event](ctx, u, v)
	if string(b) != `{"type":"transfer","amount":"5"}` {
		t.Fatalf("tag must lead the encoded object: %s", b)
	}

	_, err = u.Parse(ctx, map[string]any{"type": "burn"})
	iss, _ := rpcskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != rpcskema.CodeUnknownVariant || iss[0].Path != "/type" {
		t.Fatalf("expected unknown_variant at /type, got %v", err)
	}
	_, err = u.Parse(ctx, map[string]any{"amount": "5"})
	if !errors.Is(err, rpcskema.ErrDiscriminatorMissing) {
		t.Fatalf("expected discriminator_missing, got %v", err)
	}
}

func TestUnion_VariantContext(t *testing.T) {
	ctx := context.Background()
	tagged := g.UnionOf[event]("Event").
		Tagged("type").
		OneOf(g.Case[event]("transfer", transferSpec), g.Case[event]("stake", stakeSpec)).
		MustBuild()

	_, err := tagged.Parse(ctx, map[string]any{"type": "stake", "amount": "1"})
	iss, ok := rpcskema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/public_key" || iss[0].Code != rpcskema.CodeRequired {
		t.Fatalf("expected required at /public_key, got %v", err)
	}
	if iss[0].Params["variant"] != "stake" || iss[0].Params["union"] != "Event" {
		t.Fatalf("variant context missing: %#v", iss[0].Params)
	}
	if !strings.Contains(err.Error(), "Event stake") {
		t.Fatalf("error text should name the variant: %v", err)
	}

	external := g.UnionOf[event]("Action").
		External().
		OneOf(g.Case[event]("Stake", stakeSpec)).
		MustBuild()
	_, err = external.Parse(ctx, map[string]any{"Stake": map[string]any{"amount": "1"}})
	iss, _ = rpcskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/Stake/public_key" || iss[0].Params["variant"] != "Stake" {
		t.Fatalf("expected variant context under /Stake, got %v %#v", err, iss)
	}
}

func TestUnion_TaggedFallback(t *testing.T) {
	ctx := context.Background()
	u := g.UnionOf[event]("Event").
		Tagged("type").
		OneOf(g.Case[event]("transfer", transferSpec)).
		Fallback(g.Case[event]("other", otherSpec)).
		MustBuild()

	in := `{"type":"burn","amount":"5"}`
	v, err := rpcskema.Unmarshal[event](ctx, u, []byte(in))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	o, ok := v.(otherEvent)
	if !ok {
		t.Fatalf("expected fallback, got %T", v)
	}
	m := o.Raw.Value().(map[string]any)
	if m["type"] != "burn" {
		t.Fatalf("fallback must keep the untouched value: %#v", m)
	}
	b, _ := rpcskema.Marshal[event](ctx, u, v)
	if string(b) != `{"amount":"5","type":"burn"}` {
		t.Fatalf("unexpected fallback encode: %s", b)
	}
	if got := u.Variants(); len(got) != 2 || got[1] != "other" {
		t.Fatalf("fallback must be listed last: %v", got)
	}
}

func TestUnion_External(t *testing.T) {
	ctx := context.Background()
	u := g.UnionOf[event]("Action").
		External().
		OneOf(
			g.Case[event]("CreateAccount", g.Unit[createAccount]()),
			g.Case[event]("Transfer", transferSpec),
			g.Case[event]("Stake", stakeSpec),
		).
		MustBuild()

	v, err := rpcskema.Unmarshal[event](ctx, u, []byte(`"CreateAccount"`))
	if err != nil || v != (createAccount{}) {
		t.Fatalf("unit variant: %#v %v", v, err)
	}
	b, _ := rpcskema.Marshal[event](ctx, u, v)
	if string(b) != `"CreateAccount"` {
		t.Fatalf("unit variant must encode as a bare tag: %s", b)
	}

	v, err = rpcskema.Unmarshal[event](ctx, u, []byte(`{"Stake":{"amount":"1","public_key":"ed25519:abc"}}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, _ = rpcskema.Marshal[event](ctx, u, v)
	if string(b) != `{"Stake":{"amount":"1","public_key":"ed25519:abc"}}` {
		t.Fatalf("unexpected encode: %s", b)
	}

	_, err = u.Parse(ctx, map[string]any{"Stake": map[string]any{"amount": "x", "public_key": "k"}})
	iss, _ := rpcskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/Stake/amount" {
		t.Fatalf("payload issues must be rebased under the tag: %v", err)
	}
	if _, err := u.Parse(ctx, "Burn"); !rpcskema.HasCode(err, rpcskema.CodeUnknownVariant) {
		t.Fatalf("expected unknown_variant, got %v", err)
	}
	if _, err := u.Parse(ctx, "Transfer"); !rpcskema.HasCode(err, rpcskema.CodeInvalidType) {
		t.Fatalf("payload variant as bare tag must fail, got %v", err)
	}
}

func TestUnion_EncodeNil(t *testing.T) {
	u := g.UnionOf[shape]("Shape").OneOf(g.Case[shape]("A", onlyXSpec)).MustBuild()
	if _, err := u.Encode(context.Background(), nil); err == nil {
		t.Fatalf("nil union value must not encode")
	}
}

func TestUnion_BuildChecks(t *testing.T) {
	if _, err := g.UnionOf[shape]("Dup").OneOf(g.Case[shape]("A", onlyXSpec), g.Case[shape]("A2", onlyXSpec)).Build(); err == nil {
		t.Fatalf("duplicate Go type should be rejected")
	}
	if _, err := g.UnionOf[shape]("Bad").OneOf(g.Case[shape]("T", transferSpec)).Build(); err == nil {
		t.Fatalf("variant not implementing the union should be rejected")
	}
	if _, err := g.UnionOf[event]("Unit").OneOf(g.Case[event]("C", g.Unit[createAccount]())).Build(); err == nil {
		t.Fatalf("unit variant in a structural union should be rejected")
	}
	if _, err := g.UnionOf[event]("NoKey").Tagged("").OneOf(g.Case[event]("t", transferSpec)).Build(); err == nil {
		t.Fatalf("tagged union without key should be rejected")
	}
}
