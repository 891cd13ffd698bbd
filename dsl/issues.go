package dsl

import (
	"maps"

	rpcskema "github.com/reoring/rpcskema"
)

func fail(path, code, hint string) rpcskema.Issues {
	return rpcskema.Issues{rpcskema.NewIssue(path, code, hint)}
}

// inVariant stamps the union and the selected variant onto every issue of err.
// Params keep the innermost union; the hint names every enclosing one.
func inVariant(err error, union, variant string) rpcskema.Issues {
	src := rpcskema.ToIssues("/", err)
	out := make(rpcskema.Issues, len(src))
	for i, it := range src {
		params := make(map[string]any, len(it.Params)+2)
		maps.Copy(params, it.Params)
		if _, ok := params["variant"]; !ok {
			params["union"] = union
			params["variant"] = variant
		}
		it.Params = params
		if it.Hint == "" {
			it.Hint = union + " " + variant
		} else {
			it.Hint = union + " " + variant + ": " + it.Hint
		}
		out[i] = it
	}
	return out
}
