package render

import (
	"sort"

	"github.com/dm/ise-go/internal/model"
)

// Sort orders records by the key attribute, stably. Numbers compare
// numerically, everything else by its cell text. Records missing key go
// last.
func Sort(records []model.Record, key string) {
	if key == "" {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, aok := records[i][key]
		b, bok := records[j][key]
		switch {
		case !aok || a == nil:
			return false
		case !bok || b == nil:
			return true
		}
		if x, ok := a.(float64); ok {
			if y, ok := b.(float64); ok {
				return x < y
			}
		}
		return Cell(a) < Cell(b)
	})
}
