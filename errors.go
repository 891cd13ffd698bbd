package rpcskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeUnknownKey           = "unknown_key"
	CodeDuplicateKey         = "duplicate_key"
	CodeInvalidFormat        = "invalid_format"
	CodeOutOfRange           = "out_of_range"
	CodeUnknownVariant       = "unknown_variant"
	CodeNoMatchingVariant    = "no_matching_variant"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeParseError           = "parse_error"
	CodeTruncated            = "truncated"
)

// Sentinel errors for matching Issues by kind with errors.Is.
var (
	ErrInvalidType          error = kindError(CodeInvalidType)
	ErrMissingField         error = kindError(CodeRequired)
	ErrUnknownKey           error = kindError(CodeUnknownKey)
	ErrDuplicateKey         error = kindError(CodeDuplicateKey)
	ErrInvalidFormat        error = kindError(CodeInvalidFormat)
	ErrOutOfRange           error = kindError(CodeOutOfRange)
	ErrUnknownVariant       error = kindError(CodeUnknownVariant)
	ErrNoMatchingVariant    error = kindError(CodeNoMatchingVariant)
	ErrDiscriminatorMissing error = kindError(CodeDiscriminatorMissing)
	ErrParse                error = kindError(CodeParseError)
	ErrTruncated            error = kindError(CodeTruncated)
)

type kindError string

func (k kindError) Error() string { return "rpcskema: " + string(k) }

// Issue represents a single decode failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /header/height).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: offending tag, expected shape, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"tag":"legacy"}) for
	// diagnostics without string parsing.
	Params map[string]any
	// Variants lists the per-variant failures of a no_matching_variant issue in
	// declaration order.
	Variants []VariantFailure
}

// VariantFailure records why one union variant did not match.
type VariantFailure struct {
	Variant string
	Issues  Issues
}

// Issues is a collection of decode errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. out_of_range at /header/height
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue carries the code of a sentinel kind error.
func (iss Issues) Is(target error) bool {
	k, ok := target.(kindError)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == string(k) {
			return true
		}
	}
	return false
}

// Codes returns the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// ToIssues converts any error into Issues, wrapping foreign errors as parse_error
// at the given path.
func ToIssues(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: normalizePointer(path), Code: CodeParseError, Message: err.Error(), Cause: err}}
}
