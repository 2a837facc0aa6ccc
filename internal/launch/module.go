package launch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/golaunch/internal/launch/chart"
	"github.com/shandysiswandi/golaunch/internal/launch/inbound"
	"github.com/shandysiswandi/golaunch/internal/launch/source"
	"github.com/shandysiswandi/golaunch/internal/launch/store"
	"github.com/shandysiswandi/golaunch/internal/launch/usecase"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkguid"
)

type Dependency struct {
	Config   pkgconfig.Config
	Router   *pkgrouter.Router
	Context  context.Context
	NumberID pkguid.NumberID
}

// New loads the configured dataset and registers the dashboard endpoints.
func New(dep Dependency) (func(context.Context) error, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := source.ParseFormat(dep.Config.GetString("dataset.format"))
	if err != nil {
		return nil, err
	}

	path := dep.Config.GetString("dataset.path")
	ds, err := source.NewLoader(dep.NumberID).Load(ctx, path, format)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}

	storage := store.NewInMemoryStore()
	if err := storage.Load(ctx, ds); err != nil {
		return nil, err
	}

	if ds.Stats.ParseErr > 0 {
		slog.WarnContext(ctx, "dataset has skipped rows", "source", path, "skipped", ds.Stats.ParseErr)
	}

	uc := usecase.New(usecase.Dependency{
		Store:      storage,
		SliderStep: dep.Config.GetFloat("dashboard.slider_step"),
	})

	renderer := chart.NewRenderer(
		int(dep.Config.GetInt("dashboard.chart_width")),
		int(dep.Config.GetInt("dashboard.chart_height")),
	)

	inbound.RegisterHTTPEndpoint(dep.Router, uc, renderer)

	return nil, nil
}
