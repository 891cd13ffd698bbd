package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	rpcskema "github.com/reoring/rpcskema"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestTypes(t *testing.T) {
	out, err := run(t, "", "types")
	require.NoError(t, err)
	assert.Contains(t, out, "BlockView")
	assert.Contains(t, out, "Finality")
	assert.Contains(t, out, "BlockId")
}

func TestSchema(t *testing.T) {
	out, err := run(t, "", "schema", "Finality")
	require.NoError(t, err)
	assert.Contains(t, out, `"near-final"`)

	_, err = run(t, "", "schema", "NoSuchType")
	assert.Error(t, err)
}

func TestDecode_Stdin(t *testing.T) {
	out, err := run(t, `{"finality":"final","extra":1}`, "decode", "RpcBlockRequest", "-")
	require.NoError(t, err)
	assert.Equal(t, `{"finality":"final"}`, strings.TrimSpace(out))
}

func TestDecode_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`17795474`), 0o644))

	out, err := run(t, "", "decode", "BlockId", path)
	require.NoError(t, err)
	assert.Equal(t, `17795474`, strings.TrimSpace(out))
}

func TestDecode_Invalid(t *testing.T) {
	_, err := run(t, `"sometime"`, "decode", "Finality")
	require.Error(t, err)
	assert.ErrorIs(t, err, rpcskema.ErrUnknownVariant)
}

func TestDecode_WarnsOnDuplicateKey(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := newLogger
	newLogger = func(bool) (*zap.Logger, error) { return zap.New(core), nil }
	t.Cleanup(func() {
		newLogger = prev
		_ = RootCmd.PersistentFlags().Set(flagDuplicateKeys, "ignore")
	})

	out, err := run(t, `{"finality":"final","finality":"optimistic"}`, "decode", "--duplicate-keys", "warn", "RpcBlockRequest")
	require.NoError(t, err)
	assert.Equal(t, `{"finality":"optimistic"}`, strings.TrimSpace(out))

	entries := logs.FilterMessage("input issue").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/finality", fields["path"])
	assert.Equal(t, rpcskema.CodeDuplicateKey, fields["code"])
	assert.Equal(t, "RpcBlockRequest", fields["type"])
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Finality.json"), []byte(`"optimistic"`), 0o644))

	out, err := run(t, "", "verify", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Finality")
	assert.Contains(t, out, "ok")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "BlockId.json"), []byte(`true`), 0o644))
	_, err = run(t, "", "verify", dir)
	assert.Error(t, err, "invalid fixture must fail the run")
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]rpcskema.Severity{"": rpcskema.Ignore, "warn": rpcskema.Warn, "ERROR": rpcskema.Error} {
		got, err := parseSeverity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseSeverity("loud")
	assert.Error(t, err)
}
