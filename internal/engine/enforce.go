package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	// IssueSink optionally receives non-fatal issues (duplicate keys in warn mode).
	IssueSink func(SimpleIssue)
	// FailFast turns warnings into errors.
	FailFast bool
}

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

type frame struct {
	object    bool
	keys      map[string]struct{}
	path      string
	nextIndex int
	key       string // pending key when object
}

// WrapWithEnforcement returns a TokenSource that enforces duplicate key policy,
// and maximum nesting depth. Byte limits are applied by callers before tokens
// are produced since sources need not report offsets.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	if opt.OnDuplicate == DupIgnore && opt.MaxDepth <= 0 {
		return inner
	}
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		p := e.valuePath()
		e.stack = append(e.stack, frame{object: tok.Kind == KindBeginObject, keys: map[string]struct{}{}, path: p})
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, e.fail(SimpleIssue{Code: "parse_error", Path: rootIfEmpty(p), Message: "max depth exceeded"})
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if _, dup := top.keys[tok.String]; dup && e.opt.OnDuplicate != DupIgnore {
				si := SimpleIssue{Code: "duplicate_key", Path: joinPointer(top.path, tok.String), Message: "key '" + tok.String + "' duplicated"}
				if e.opt.OnDuplicate == DupError || e.opt.FailFast {
					return Token{}, e.fail(si)
				}
				if e.opt.IssueSink != nil {
					e.opt.IssueSink(si)
				}
			}
			top.keys[tok.String] = struct{}{}
			top.key = tok.String
		}
	default:
		e.valuePath()
	}
	return tok, nil
}

// valuePath returns the pointer of the value about to start and advances the
// array index of the enclosing frame.
func (e *enforcingTokenSource) valuePath() string {
	n := len(e.stack)
	if n == 0 {
		return ""
	}
	top := &e.stack[n-1]
	if top.object {
		return joinPointer(top.path, top.key)
	}
	p := top.path + "/" + strconv.Itoa(top.nextIndex)
	top.nextIndex++
	return p
}

func (e *enforcingTokenSource) fail(si SimpleIssue) error { return IssueError{si} }

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}

func rootIfEmpty(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
