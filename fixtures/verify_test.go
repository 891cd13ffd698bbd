package fixtures_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	rpcskema "github.com/reoring/rpcskema"
	"github.com/reoring/rpcskema/codec"
	g "github.com/reoring/rpcskema/dsl"
	"github.com/reoring/rpcskema/fixtures"
)

type point struct {
	X     uint64 `json:"x"`
	Y     uint64 `json:"y"`
	Label string `json:"label"`
}

type finality string

func testRegistry(t *testing.T) *rpcskema.Registry {
	t.Helper()
	pt := g.ObjectOf[point]("Point").
		Field("x", g.SchemaOf(codec.UintOf[uint64]())).Required().
		Field("y", g.SchemaOf(codec.UintOf[uint64]())).Required().
		Field("label", g.SchemaOf(codec.StringOf[string]())).Default("").
		MustBuild()
	fin := g.MustEnum("Finality",
		g.Tag(finality("OPTIMISTIC"), "optimistic"),
		g.Tag(finality("FINAL"), "final"),
	)
	reg, err := rpcskema.NewRegistry(
		rpcskema.Register("Point", pt),
		rpcskema.Register("Finality", fin),
	)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestVerifyDir_MissingOrEmpty(t *testing.T) {
	v := &fixtures.Verifier{Registry: testRegistry(t)}
	ctx := context.Background()

	rep, err := v.VerifyDir(ctx, filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing dir must not fail: %v", err)
	}
	if len(rep.Results) != 0 || rep.Err() != nil {
		t.Fatalf("expected empty report, got %+v", rep)
	}

	rep, err = v.VerifyDir(ctx, t.TempDir())
	if err != nil || len(rep.Results) != 0 || len(rep.Skipped) != 0 {
		t.Fatalf("expected empty report for empty dir, got %+v (%v)", rep, err)
	}
}

func TestVerifyDir_Mixed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Point.json", `{"y":2,"x":1}`)
	writeFile(t, dir, "Finality.yaml", "final\n")
	writeFile(t, dir, "Unknown.json", `{}`)
	writeFile(t, dir, "README.md", "notes")

	v := &fixtures.Verifier{Registry: testRegistry(t)}
	rep, err := v.VerifyDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rep.Results) != 2 {
		t.Fatalf("expected 2 checked fixtures, got %+v", rep.Results)
	}
	if err := rep.Err(); err != nil {
		t.Fatalf("fixtures should pass: %v", err)
	}
	if len(rep.Skipped) != 2 {
		t.Fatalf("expected 2 skipped files, got %v", rep.Skipped)
	}
}

func TestVerifyDir_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Point.json", `{"x":1}`)
	writeFile(t, dir, "Finality.json", `"near-final"`)

	v := &fixtures.Verifier{Registry: testRegistry(t)}
	rep, err := v.VerifyDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	failed := rep.Failed()
	if len(failed) != 2 {
		t.Fatalf("expected 2 failures, got %+v", rep.Results)
	}
	if !errors.Is(rep.Err(), rpcskema.ErrMissingField) {
		t.Fatalf("expected required issue in joined error, got %v", rep.Err())
	}
	if !errors.Is(rep.Err(), rpcskema.ErrUnknownVariant) {
		t.Fatalf("expected unknown_variant in joined error, got %v", rep.Err())
	}
}

func TestVerifyFile_YAMLObject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Point.yml", "x: 10\ny: 20\nlabel: origin\n")

	v := &fixtures.Verifier{Registry: testRegistry(t)}
	if err := v.VerifyFile(context.Background(), "Point", filepath.Join(dir, "Point.yml")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestVerifyFile_YAMLMultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Finality.yaml", "final\n---\noptimistic\n")

	v := &fixtures.Verifier{Registry: testRegistry(t)}
	if err := v.VerifyFile(context.Background(), "Finality", filepath.Join(dir, "Finality.yaml")); err == nil {
		t.Fatalf("expected error for multi-document fixture")
	}
}

func TestRoundTrip_Canonical(t *testing.T) {
	v := &fixtures.Verifier{Registry: testRegistry(t)}
	out, err := v.RoundTrip(context.Background(), "Point", []byte(`{"label":"a","y":2,"x":1,"extra":true}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(out) != `{"x":1,"y":2,"label":"a"}` {
		t.Fatalf("unexpected canonical form: %s", out)
	}
}

func TestRoundTrip_HonorsOptions(t *testing.T) {
	v := &fixtures.Verifier{
		Registry: testRegistry(t),
		Options:  rpcskema.ParseOpt{Strictness: rpcskema.Strictness{OnDuplicateKey: rpcskema.Error}},
	}
	_, err := v.RoundTrip(context.Background(), "Point", []byte(`{"x":1,"x":2,"y":3}`))
	if !errors.Is(err, rpcskema.ErrDuplicateKey) {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
}

func TestRoundTrip_LogsWarnedDuplicates(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	v := &fixtures.Verifier{
		Registry: testRegistry(t),
		Logger:   zap.New(core),
		Options:  rpcskema.ParseOpt{Strictness: rpcskema.Strictness{OnDuplicateKey: rpcskema.Warn}},
	}
	out, err := v.RoundTrip(context.Background(), "Point", []byte(`{"x":1,"x":2,"y":3}`))
	if err != nil {
		t.Fatalf("warn mode should not fail: %v", err)
	}
	if string(out) != `{"x":2,"y":3,"label":""}` {
		t.Fatalf("unexpected canonical form: %s", out)
	}
	entries := logs.FilterMessage("fixture issue").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	if f := entries[0].ContextMap(); f["path"] != "/x" || f["code"] != rpcskema.CodeDuplicateKey || f["type"] != "Point" {
		t.Fatalf("unexpected warning fields: %v", f)
	}
}
