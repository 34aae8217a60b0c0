package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dm/ise-go/internal/model"
)

// ersSearchResult is the ERS list envelope.
type ersSearchResult struct {
	SearchResult *struct {
		Total     int            `json:"total"`
		Resources []model.Record `json:"resources"`
	} `json:"SearchResult"`
}

// ersPage is one decoded ERS page. Pages are addressed by number, so the
// nextPage link is not kept.
type ersPage struct {
	Total   int
	Records []model.Record
}

func decodeERSPage(url string, body []byte) (ersPage, error) {
	var env ersSearchResult
	if err := json.Unmarshal(body, &env); err != nil {
		return ersPage{}, &ParseError{URL: url, Err: err}
	}
	if env.SearchResult == nil {
		return ersPage{}, &ParseError{URL: url, Err: errors.New("missing SearchResult")}
	}
	p := ersPage{
		Total:   env.SearchResult.Total,
		Records: env.SearchResult.Resources,
	}
	return p, nil
}

// decodeOpenAPI accepts the four OpenAPI shapes: a bare list, an object
// with a "response" list, an object with a "response" object, and any
// other object (one record).
func decodeOpenAPI(url string, body []byte) ([]model.Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var items []any
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &ParseError{URL: url, Err: err}
		}
		return toRecords(items), nil
	case '{':
		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, &ParseError{URL: url, Err: err}
		}
		switch inner := obj["response"].(type) {
		case []any:
			return toRecords(inner), nil
		case map[string]any:
			return []model.Record{inner}, nil
		}
		return []model.Record{obj}, nil
	default:
		return nil, &ParseError{URL: url, Err: fmt.Errorf("unexpected JSON value starting with %q", trimmed[0])}
	}
}

// toRecords converts list elements; non-object elements become
// {"value": elem}.
func toRecords(items []any) []model.Record {
	out := make([]model.Record, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
			continue
		}
		out = append(out, model.Record{"value": it})
	}
	return out
}

// decodeDetail removes the {ObjectName: {...}} wrapper of an ERS detail.
func decodeDetail(url, objectName string, body []byte) (model.Record, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}
	raw, ok := wrapper[objectName]
	if !ok {
		return nil, &ParseError{URL: url, Err: fmt.Errorf("missing %s wrapper", objectName)}
	}
	var rec model.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}
	if rec == nil {
		return nil, &ParseError{URL: url, Err: fmt.Errorf("%s is null", objectName)}
	}
	return rec, nil
}
