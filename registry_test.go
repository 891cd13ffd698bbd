package rpcskema_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	rpcskema "github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
)

type direction string

type blockID interface{ isBlockID() }

type height uint64
type hash string

func (height) isBlockID() {}
func (hash) isBlockID()   {}

func testRegistry(t *testing.T) *rpcskema.Registry {
	t.Helper()
	dir := g.MustEnum("Direction", g.Tag(direction("LEFT"), "Left"), g.Tag(direction("RIGHT"), "Right"))
	id := g.UnionOf[blockID]("BlockId").
		OneOf(
			g.Case[blockID]("height", codec.UintOf[height]()),
			g.Case[blockID]("hash", codec.StringOf[hash]()),
		).
		MustBuild()
	r, err := rpcskema.NewRegistry(
		rpcskema.Register("Direction", dir),
		rpcskema.Register("BlockId", id),
		rpcskema.Register("Chunk", chunkSchema()),
	)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return r
}

func TestRegistry_Entries(t *testing.T) {
	r := testRegistry(t)
	if r.Len() != 3 {
		t.Fatalf("unexpected size %d", r.Len())
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"BlockId", "Chunk", "Direction"}) {
		t.Fatalf("names must be sorted: %v", got)
	}
	e, _ := r.Lookup("BlockId")
	if e.Kind() != rpcskema.KindUnion || !reflect.DeepEqual(e.Variants(), []string{"height", "hash"}) {
		t.Fatalf("unexpected union entry: %v %v", e.Kind(), e.Variants())
	}
	e, _ = r.Lookup("Direction")
	if tags := e.Tags(); len(tags) != 2 || tags[0] != (rpcskema.Tag{Variant: "LEFT", Wire: "Left"}) {
		t.Fatalf("unexpected tags: %v", tags)
	}
	if _, ok := r.Lookup("Nope"); ok {
		t.Fatalf("unexpected entry")
	}
}

func TestRegistry_Rejects(t *testing.T) {
	dir := g.MustEnum("Direction", g.Tag(direction("LEFT"), "Left"))
	if _, err := rpcskema.NewRegistry(rpcskema.Register("D", dir), rpcskema.Register("D", dir)); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if _, err := rpcskema.NewRegistry(rpcskema.Register("", dir)); err == nil {
		t.Fatalf("expected empty name error")
	}
}

func TestRegistry_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	r := testRegistry(t)

	v, err := r.Decode(ctx, "BlockId", []byte(`"9MjpcnwW3TSdzGweNfPbkx8M74q1XzUcT1PAN8G5bNDz"`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v != blockID(hash("9MjpcnwW3TSdzGweNfPbkx8M74q1XzUcT1PAN8G5bNDz")) {
		t.Fatalf("unexpected value: %#v", v)
	}
	b, err := r.Encode(ctx, "BlockId", v)
	if err != nil || string(b) != `"9MjpcnwW3TSdzGweNfPbkx8M74q1XzUcT1PAN8G5bNDz"` {
		t.Fatalf("unexpected encoding: %s (%v)", b, err)
	}

	tv, err := r.DecodeTree(ctx, "Direction", "Right")
	if err != nil || tv != direction("RIGHT") {
		t.Fatalf("unexpected tree decode: %v (%v)", tv, err)
	}

	if _, err := r.Encode(ctx, "Chunk", "not a chunk"); !errors.Is(err, rpcskema.ErrInvalidType) {
		t.Fatalf("expected invalid_type for foreign value, got %v", err)
	}
	if _, err := r.Decode(ctx, "Missing", []byte(`1`)); err == nil {
		t.Fatalf("expected unknown type error")
	}
	if _, err := r.Decode(ctx, "Chunk", []byte(`{"height":1,"shard_id":2}`), rpcskema.ParseOpt{MaxBytes: 4}); !errors.Is(err, rpcskema.ErrTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestRegistry_JSONSchema(t *testing.T) {
	r := testRegistry(t)
	s, err := r.JSONSchema("Direction")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(s.Enum, []any{"Left", "Right"}) {
		t.Fatalf("unexpected enum: %v", s.Enum)
	}
	if _, err := r.JSONSchema("Missing"); err == nil {
		t.Fatalf("expected error")
	}
}
