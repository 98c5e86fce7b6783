package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/healthgain/internal/domain"
)

// Select evaluates a JSONPath expression against the JSON form of the detail
// record and returns the value as a string.
//
// Scalars are printed bare, arrays with one element are unwrapped, and any other
// composite value is returned as compact JSON.
func Select(detail domain.Detail, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", invalid(expr, fmt.Errorf("empty jsonpath expression"))
	}

	doc, err := toDocument(detail)
	if err != nil {
		return "", &domain.OpError{Op: "query.select", Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", invalid(expr, err)
	}
	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.select",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: no value found: %w", expr, domain.ErrNotFound),
		}
	}

	return toString(val)
}

func toDocument(detail domain.Detail) (any, error) {
	b, err := json.Marshal(detail)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func invalid(expr string, err error) error {
	return &domain.OpError{
		Op:   "query.select",
		Kind: domain.KindInvalidArgument,
		Err:  fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidArgument),
	}
}
