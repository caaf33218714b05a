package classifier

import (
	"math"
	"strconv"
	"strings"
)

// Payload is a decoded JSON object.
type Payload map[string]any

// Lookup walks path through nested objects and arrays. Array elements are
// addressed by their decimal index.
func (p Payload) Lookup(path ...string) (any, error) {
	var cur any = map[string]any(p)
	for i, key := range path {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok || v == nil {
				return nil, missing(path[:i+1])
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, missing(path[:i+1])
			}
			cur = node[idx]
		default:
			return nil, missing(path[:i+1])
		}
	}
	return cur, nil
}

// Float returns the finite number at path. Numeric strings are accepted.
func (p Payload) Float(path ...string) (float64, error) {
	v, err := p.Lookup(path...)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, missing(path)
		}
		return f, nil
	default:
		return 0, missing(path)
	}
}

// String returns the scalar at path as a string.
func (p Payload) String(path ...string) (string, error) {
	v, err := p.Lookup(path...)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", missing(path)
	}
}

func missing(path []string) *MissingFieldError {
	return &MissingFieldError{Field: strings.Join(path, ".")}
}
