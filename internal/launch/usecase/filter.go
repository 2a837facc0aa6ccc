package usecase

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
)

// Filter narrows the dataset to a site selection and an optional payload range.
type Filter struct {
	Site    string
	Payload *entity.PayloadRange
	Outcome *entity.Outcome
}

// Matches reports whether rec survives every configured restriction.
func (f Filter) Matches(rec entity.Record) bool {
	if f.Site != "" && f.Site != entity.AllSites && rec.Site != f.Site {
		return false
	}

	if f.Payload != nil && !f.Payload.Contains(rec.PayloadMass) {
		return false
	}

	if f.Outcome != nil && rec.Outcome != *f.Outcome {
		return false
	}

	return true
}

// Apply returns the records matching f, preserving dataset order.
func (f Filter) Apply(records []entity.Record) []entity.Record {
	return lo.Filter(records, func(rec entity.Record, _ int) bool {
		return f.Matches(rec)
	})
}
