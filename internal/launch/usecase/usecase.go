package usecase

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgerror"
)

// DefaultSliderStep is the payload slider granularity in kilograms.
const DefaultSliderStep = 1000

type Store interface {
	Dataset(ctx context.Context) (entity.Dataset, error)
}

type Dependency struct {
	Store      Store
	SliderStep float64
}

// Usecase answers dashboard queries against the loaded dataset. Every method
// is a pure function of its arguments and the immutable dataset.
type Usecase struct {
	store      Store
	sliderStep float64
}

func New(dep Dependency) *Usecase {
	step := dep.SliderStep
	if step <= 0 {
		step = DefaultSliderStep
	}

	return &Usecase{
		store:      dep.Store,
		sliderStep: step,
	}
}

func (u *Usecase) DatasetInfo(ctx context.Context) (DatasetResult, error) {
	ds, err := u.dataset(ctx)
	if err != nil {
		return DatasetResult{}, err
	}

	return DatasetResult{
		ID:       ds.ID,
		Source:   ds.Source,
		Format:   ds.Format,
		Stats:    ds.Stats,
		Records:  len(ds.Records),
		Sites:    Sites(ds.Records),
		Bounds:   PayloadBounds(ds.Records),
		LoadedAt: ds.LoadedAt,
	}, nil
}

func (u *Usecase) Options(ctx context.Context) (OptionsResult, error) {
	ds, err := u.dataset(ctx)
	if err != nil {
		return OptionsResult{}, err
	}

	sites := []SelectOption{{Label: entity.AllSitesLabel, Value: entity.AllSites}}
	for _, site := range Sites(ds.Records) {
		sites = append(sites, SelectOption{Label: site, Value: site})
	}

	bounds := PayloadBounds(ds.Records)

	return OptionsResult{
		Sites:       sites,
		DefaultSite: entity.AllSites,
		Payload: SliderOptions{
			Min:   bounds.Low,
			Max:   bounds.High,
			Step:  u.sliderStep,
			Value: bounds,
			Marks: sliderMarks(bounds, u.sliderStep),
		},
	}, nil
}

// PayloadBounds returns the dataset's observed payload range, the default slider value.
func (u *Usecase) PayloadBounds(ctx context.Context) (entity.PayloadRange, error) {
	ds, err := u.dataset(ctx)
	if err != nil {
		return entity.PayloadRange{}, err
	}

	return PayloadBounds(ds.Records), nil
}

func (u *Usecase) SuccessPie(ctx context.Context, site string) (entity.PieChart, error) {
	ds, err := u.dataset(ctx)
	if err != nil {
		return entity.PieChart{}, err
	}

	return BuildSuccessPie(ds.Records, site), nil
}

func (u *Usecase) PayloadScatter(ctx context.Context, site string, rng entity.PayloadRange) (entity.ScatterChart, error) {
	ds, err := u.dataset(ctx)
	if err != nil {
		return entity.ScatterChart{}, err
	}

	return BuildPayloadScatter(ds.Records, site, rng, PayloadBounds(ds.Records)), nil
}

func (u *Usecase) dataset(ctx context.Context) (entity.Dataset, error) {
	if u.store == nil {
		return entity.Dataset{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	ds, err := u.store.Dataset(ctx)
	if err != nil {
		return entity.Dataset{}, mapStoreErr(err)
	}

	return ds, nil
}

func sliderMarks(bounds entity.PayloadRange, step float64) []SliderMark {
	if bounds.High <= bounds.Low {
		return []SliderMark{{Value: bounds.Low, Label: formatMass(bounds.Low)}}
	}

	var marks []SliderMark
	for v := math.Floor(bounds.Low/step) * step; v <= bounds.High; v += step {
		marks = append(marks, SliderMark{Value: v, Label: formatMass(v)})
	}

	return marks
}

func formatMass(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("dataset not loaded", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
