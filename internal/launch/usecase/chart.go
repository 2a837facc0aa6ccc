package usecase

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
)

const (
	TitleAllSitesPie = "Total Success count for all sites"
	TitleScatter     = "Correlation between Launch Success and Payload Mass"
	LabelPayload     = "Payload Mass (kg)"
	LabelOutcome     = "Launch Success(1=Success, 0=Failure)"
)

func normalizeSite(site string) string {
	if site == "" {
		return entity.AllSites
	}
	return site
}

// BuildSuccessPie aggregates records into the success pie for site.
//
// For AllSites it counts successful launches per site; for a single site it
// counts that site's launches per outcome. An unknown site yields no slices.
func BuildSuccessPie(records []entity.Record, site string) entity.PieChart {
	site = normalizeSite(site)

	var pieSlices []entity.PieSlice
	title := fmt.Sprintf("Success vs failed count for %s", site)

	if site == entity.AllSites {
		title = TitleAllSitesPie
		success := entity.OutcomeSuccess
		counts := lo.CountValuesBy(Filter{Outcome: &success}.Apply(records), func(rec entity.Record) string {
			return rec.Site
		})
		for _, name := range sortedKeys(counts) {
			pieSlices = append(pieSlices, entity.PieSlice{Label: name, Value: counts[name]})
		}
	} else {
		counts := lo.CountValuesBy(Filter{Site: site}.Apply(records), func(rec entity.Record) entity.Outcome {
			return rec.Outcome
		})
		for _, outcome := range sortedKeys(counts) {
			pieSlices = append(pieSlices, entity.PieSlice{Label: outcome.Label(), Value: counts[outcome]})
		}
	}

	return entity.PieChart{
		Title:  title,
		Site:   site,
		Slices: pieSlices,
		Total: lo.SumBy(pieSlices, func(s entity.PieSlice) int {
			return s.Value
		}),
	}
}

// BuildPayloadScatter plots the records of site whose payload lies strictly
// inside rng, one series per booster version category.
//
// A range equal to bounds (the dataset's own min/max) is the unfiltered default
// and keeps every record of the site, including those sitting on the bounds.
func BuildPayloadScatter(records []entity.Record, site string, rng, bounds entity.PayloadRange) entity.ScatterChart {
	site = normalizeSite(site)

	filter := Filter{Site: site}
	if rng != bounds {
		filter.Payload = &rng
	}
	survivors := filter.Apply(records)

	grouped := lo.GroupBy(survivors, func(rec entity.Record) string {
		return rec.BoosterCategory
	})
	categories := lo.Uniq(lo.Map(survivors, func(rec entity.Record, _ int) string {
		return rec.BoosterCategory
	}))

	series := make([]entity.ScatterSeries, 0, len(categories))
	for _, category := range categories {
		series = append(series, entity.ScatterSeries{
			Category: category,
			Points: lo.Map(grouped[category], func(rec entity.Record, _ int) entity.ScatterPoint {
				return entity.ScatterPoint{X: rec.PayloadMass, Y: int(rec.Outcome), Site: rec.Site}
			}),
		})
	}

	return entity.ScatterChart{
		Title:  TitleScatter,
		XLabel: LabelPayload,
		YLabel: LabelOutcome,
		Site:   site,
		Range:  rng,
		Series: series,
		Total:  len(survivors),
	}
}

// PayloadBounds returns the observed min/max payload, or a zero range for no records.
func PayloadBounds(records []entity.Record) entity.PayloadRange {
	masses := lo.Map(records, func(rec entity.Record, _ int) float64 {
		return rec.PayloadMass
	})

	return entity.PayloadRange{Low: lo.Min(masses), High: lo.Max(masses)}
}

// Sites returns the distinct launch sites in ascending order.
func Sites(records []entity.Record) []string {
	sites := lo.Uniq(lo.Map(records, func(rec entity.Record, _ int) string {
		return rec.Site
	}))
	slices.Sort(sites)

	return sites
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
