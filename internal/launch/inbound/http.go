package inbound

import (
	"context"
	"io"

	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/launch/usecase"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgrouter"
)

type uc interface {
	DatasetInfo(ctx context.Context) (usecase.DatasetResult, error)
	Options(ctx context.Context) (usecase.OptionsResult, error)
	PayloadBounds(ctx context.Context) (entity.PayloadRange, error)
	SuccessPie(ctx context.Context, site string) (entity.PieChart, error)
	PayloadScatter(ctx context.Context, site string, rng entity.PayloadRange) (entity.ScatterChart, error)
}

type renderer interface {
	PieFigure(pc entity.PieChart) map[string]any
	ScatterFigure(sc entity.ScatterChart) map[string]any
	PiePNG(w io.Writer, pc entity.PieChart) error
	ScatterPNG(w io.Writer, sc entity.ScatterChart) error
	Report(w io.Writer, pc entity.PieChart, sc entity.ScatterChart) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, rd renderer) {
	end := &HTTPEndpoint{uc: uc, rd: rd}

	r.GET("/", end.Dashboard)
	r.GET("/report", end.Report) // ?site=&low=&high=

	r.GET("/api/dataset", end.Dataset)
	r.GET("/api/options", end.Options)

	r.GET("/api/charts/success-pie", end.SuccessPie)         // ?site=
	r.GET("/api/charts/payload-scatter", end.PayloadScatter) // ?site=&low=&high=

	r.GET("/api/figures/success-pie", end.SuccessPieFigure)         // ?site=
	r.GET("/api/figures/payload-scatter", end.PayloadScatterFigure) // ?site=&low=&high=

	r.GET("/charts/:image", end.ChartImage) // success-pie.png, payload-scatter.png
}
