// Package render writes record collections as csv, json, yaml or text
// tables.
package render

import (
	"fmt"
	"strings"
)

// Format is an output serialization.
type Format string

const (
	CSV    Format = "csv"
	JSON   Format = "json"
	Line   Format = "line"
	Pretty Format = "pretty"
	YAML   Format = "yaml"
	Grid   Format = "grid"
	Table  Format = "table"
)

// DefaultFormat is used when no --format is given.
const DefaultFormat = Table

// Formats lists every supported format in help order.
var Formats = []Format{CSV, JSON, Line, Pretty, YAML, Grid, Table}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}
