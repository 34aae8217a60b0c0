package model

import (
	"strconv"
)

// Record is a single ISE resource as decoded from JSON: an attribute map
// whose values are whatever encoding/json produced.
type Record map[string]any

// Attribute keys with special handling.
const (
	KeyID          = "id"
	KeyName        = "name"
	KeyDescription = "description"
	KeyLink        = "link"
)

// ID returns the record's id as a string. Numeric ids (some OpenAPI
// resources) are formatted without exponent.
func (r Record) ID() (string, bool) {
	switch v := r[KeyID].(type) {
	case string:
		return v, v != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Strip deletes the given keys from r in place.
func (r Record) Strip(keys ...string) {
	for _, k := range keys {
		delete(r, k)
	}
}

// Keys returns the record's attribute names in map order.
func (r Record) Keys() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	return out
}

// StripAll deletes keys from every record.
func StripAll(records []Record, keys ...string) {
	for _, r := range records {
		r.Strip(keys...)
	}
}
