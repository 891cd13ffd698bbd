package rpcskema

import (
	"bytes"
	"context"
	"errors"
	"io"

	json "github.com/goccy/go-json"

	eng "github.com/reoring/rpcskema/internal/engine"
)

// ParseFrom is the primary entry point. It consumes tokens from the Source,
// builds a generic tree, and delegates typed decoding to the Schema.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	opt := lastOpt(opts)
	// propagate fail-fast intent via context for schema implementations
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := ReadTree(src, opt)
	if err != nil {
		return zero, err
	}
	return s.Parse(ctx, v)
}

// Unmarshal decodes JSON text into T.
func Unmarshal[T any](ctx context.Context, s Schema[T], data []byte, opts ...ParseOpt) (T, error) {
	if max := lastOpt(opts).MaxBytes; max > 0 && int64(len(data)) > max {
		var zero T
		return zero, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return ParseFrom(ctx, s, JSONBytes(data), opts...)
}

// StreamParse decodes T from an io.Reader. When MaxBytes is set it enforces the
// size cap up front, otherwise it streams tokens straight from the reader.
func StreamParse[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (T, error) {
	if max := lastOpt(opts).MaxBytes; max > 0 {
		data, err := io.ReadAll(io.LimitReader(r, max+1))
		if err != nil {
			var zero T
			return zero, singleIssue(CodeParseError, err.Error())
		}
		return Unmarshal(ctx, s, data, opts...)
	}
	return ParseFrom(ctx, s, JSONReader(r), opts...)
}

// ReadTree decodes one JSON value from src into a generic tree while applying
// duplicate-key and depth enforcement. Warnings go to opt.OnIssue.
func ReadTree(src Source, opt ParseOpt) (any, error) {
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		FailFast:    opt.FailFast,
	}
	if opt.OnIssue != nil {
		eo.IssueSink = func(si eng.SimpleIssue) { opt.OnIssue(NewIssue(si.Path, si.Code, si.Message)) }
	}
	enforced := eng.WrapWithEnforcement(src.tokens(), eo)
	v, err := eng.DecodeTree(enforced)
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// Marshal encodes v with s and renders the tree as JSON text.
func Marshal[T any](ctx context.Context, s Schema[T], v T) ([]byte, error) {
	tree, err := s.Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent[T any](ctx context.Context, s Schema[T], v T, prefix, indent string) ([]byte, error) {
	b, err := Marshal(ctx, s, v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ---- helpers ----

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, NewIssue(ie.Path, ie.Code, ie.Message))
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}

func singleIssue(code, hint string) Issues { return AppendIssues(nil, NewIssue("/", code, hint)) }
