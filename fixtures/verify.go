// Package fixtures verifies a directory of per-type fixture files against a
// rpcskema.Registry. A fixture named <Type>.json (or .yaml/.yml) must decode
// as <Type> and survive an encode/decode/encode round trip byte for byte.
package fixtures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	rpcskema "github.com/reoring/rpcskema"
)

// Result is the outcome of one fixture file.
type Result struct {
	File string
	Type string
	Err  error
}

// Report summarizes a directory run.
type Report struct {
	Results []Result
	Skipped []string // files whose name matches no registered type
}

// Failed returns the results that carry an error.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Err joins the failures into one error, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s (%s): %w", res.File, res.Type, res.Err))
	}
	return errors.Join(errs...)
}

// Verifier runs fixtures against a registry.
type Verifier struct {
	Registry *rpcskema.Registry
	Logger   *zap.Logger // nil logs nothing
	Options  rpcskema.ParseOpt
}

func (v *Verifier) logger() *zap.Logger {
	if v.Logger == nil {
		return zap.NewNop()
	}
	return v.Logger
}

// VerifyDir checks every fixture in dir. A missing or empty directory is
// nothing to verify and yields an empty report. The returned error reports
// problems reading the directory; fixture failures are in the report.
func (v *Verifier) VerifyDir(ctx context.Context, dir string) (Report, error) {
	log := v.logger().With(zap.String("dir", dir))
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("fixture directory absent")
		return Report{}, nil
	}
	if err != nil {
		return Report{}, err
	}
	var rep Report
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		ext := strings.ToLower(filepath.Ext(e.Name()))
		typeName := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if !isFixtureExt(ext) {
			rep.Skipped = append(rep.Skipped, path)
			continue
		}
		if _, ok := v.Registry.Lookup(typeName); !ok {
			log.Debug("no type for fixture", zap.String("file", e.Name()))
			rep.Skipped = append(rep.Skipped, path)
			continue
		}
		res := Result{File: path, Type: typeName, Err: v.VerifyFile(ctx, typeName, path)}
		if res.Err != nil {
			log.Warn("fixture failed", zap.String("file", e.Name()), zap.String("type", typeName), zap.Error(res.Err))
		} else {
			log.Debug("fixture ok", zap.String("file", e.Name()), zap.String("type", typeName))
		}
		rep.Results = append(rep.Results, res)
	}
	log.Info("fixtures verified",
		zap.Int("checked", len(rep.Results)),
		zap.Int("failed", len(rep.Failed())),
		zap.Int("skipped", len(rep.Skipped)))
	return rep, nil
}

// VerifyFile checks a single fixture file as typeName.
func (v *Verifier) VerifyFile(ctx context.Context, typeName, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		tree, err := yamlToTree(data)
		if err != nil {
			return err
		}
		if data, err = json.Marshal(tree); err != nil {
			return err
		}
	}
	_, err = v.RoundTrip(ctx, typeName, data)
	return err
}

// RoundTrip decodes data as typeName, encodes it, and checks that decoding and
// encoding the result again yields the same bytes. It returns the canonical
// encoding.
func (v *Verifier) RoundTrip(ctx context.Context, typeName string, data []byte) ([]byte, error) {
	opt := v.Options
	if opt.OnIssue == nil {
		log := v.logger().With(zap.String("type", typeName))
		opt.OnIssue = func(it rpcskema.Issue) {
			log.Warn("fixture issue", zap.String("path", it.Path), zap.String("code", it.Code), zap.String("hint", it.Hint))
		}
	}
	first, err := v.Registry.Decode(ctx, typeName, data, opt)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	text1, err := v.Registry.Encode(ctx, typeName, first)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	second, err := v.Registry.Decode(ctx, typeName, text1, opt)
	if err != nil {
		return nil, fmt.Errorf("decode of re-encoded value: %w", err)
	}
	text2, err := v.Registry.Encode(ctx, typeName, second)
	if err != nil {
		return nil, fmt.Errorf("encode of re-decoded value: %w", err)
	}
	if !bytes.Equal(text1, text2) {
		return nil, fmt.Errorf("round trip changed the value:\n  first:  %s\n  second: %s", text1, text2)
	}
	return text1, nil
}

func isFixtureExt(ext string) bool {
	switch ext {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
