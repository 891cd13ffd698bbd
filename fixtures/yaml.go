package fixtures

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlToTree decodes a single YAML document into a JSON-like tree:
// map[string]any, []any, string, json.Number, bool and nil.
func yamlToTree(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("fixtures: empty YAML document")
		}
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("fixtures: a fixture must hold exactly one YAML document")
	}
	return yamlNormalizeValue(node)
}

func yamlNormalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := yamlNormalizeValue(vv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, errors.New("fixtures: YAML mapping key is not a string")
			}
			nv, err := yamlNormalizeValue(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			nv, err := yamlNormalizeValue(t[i])
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	case int:
		return json.Number(strconv.Itoa(t)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, errors.New("fixtures: YAML number has no JSON form")
		}
		return json.Number(strconv.FormatFloat(t, 'f', -1, 64)), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	default:
		return v, nil
	}
}
