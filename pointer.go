package rpcskema

import (
	"strconv"
	"strings"

	"github.com/reoring/rpcskema/i18n"
)

// escape '~' -> '~0', '/' -> '~1' per RFC6901
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// FieldPointer returns the JSON Pointer of an object member below base.
func FieldPointer(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + pointerEscaper.Replace(key)
}

// IndexPointer returns the JSON Pointer of an array element below base.
func IndexPointer(base string, i int) string {
	return strings.TrimSuffix(base, "/") + "/" + strconv.Itoa(i)
}

func normalizePointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// Rebase prefixes every issue path (and nested variant failures) with base.
// Child paths are relative to the child value: "/" denotes the child itself.
func Rebase(base string, err error) Issues {
	iss := ToIssues("/", err)
	if base == "" || base == "/" {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		it.Path = rebasePath(base, it.Path)
		if len(it.Variants) > 0 {
			vs := make([]VariantFailure, len(it.Variants))
			for i, vf := range it.Variants {
				vs[i] = VariantFailure{Variant: vf.Variant, Issues: Rebase(base, vf.Issues)}
			}
			it.Variants = vs
		}
		out = append(out, it)
	}
	return out
}

func rebasePath(base, p string) string {
	if p == "" || p == "/" {
		return base
	}
	if p[0] == '/' {
		return strings.TrimSuffix(base, "/") + p
	}
	return strings.TrimSuffix(base, "/") + "/" + p
}

// NewIssue builds an Issue with the localized message for code.
func NewIssue(path, code, hint string) Issue {
	return Issue{Path: normalizePointer(path), Code: code, Message: i18n.T(code, nil), Hint: hint}
}

// Fail returns a single-issue Issues error at the value root.
func Fail(code, hint string) Issues { return Issues{NewIssue("/", code, hint)} }
