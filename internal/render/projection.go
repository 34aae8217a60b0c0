package render

import (
	"errors"

	"github.com/dm/ise-go/internal/model"
)

// ErrHideAndShow is returned when both projections are requested.
var ErrHideAndShow = errors.New("--hide and --show are mutually exclusive")

// Projection removes attributes before rendering. At most one of Hide and
// Show may be set.
type Projection struct {
	Hide []string
	Show []string
}

// Validate rejects a projection with both Hide and Show.
func (p Projection) Validate() error {
	if len(p.Hide) > 0 && len(p.Show) > 0 {
		return ErrHideAndShow
	}
	return nil
}

// Apply strips attributes from every record in place.
func (p Projection) Apply(records []model.Record) error {
	if err := p.Validate(); err != nil {
		return err
	}
	switch {
	case len(p.Hide) > 0:
		model.StripAll(records, p.Hide...)
	case len(p.Show) > 0:
		keep := make(map[string]struct{}, len(p.Show))
		for _, k := range p.Show {
			keep[k] = struct{}{}
		}
		for _, r := range records {
			for k := range r {
				if _, ok := keep[k]; !ok {
					delete(r, k)
				}
			}
		}
	}
	return nil
}
