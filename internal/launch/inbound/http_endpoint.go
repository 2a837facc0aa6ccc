package inbound

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/golaunch/internal/launch/chart"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgerror"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgrouter"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypePNG  = "image/png"
)

type HTTPEndpoint struct {
	uc uc
	rd renderer
}

func (h *HTTPEndpoint) Dataset(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.DatasetInfo(ctx)
	if err != nil {
		return nil, err
	}

	return DatasetResponse{
		ID:       strconv.FormatInt(result.ID, 10),
		Source:   result.Source,
		Format:   result.Format,
		Records:  result.Records,
		Sites:    result.Sites,
		Payload:  toHTTPRange(result.Bounds),
		LoadedAt: result.LoadedAt,
		Stats: LoadStats{
			TotalLines: result.Stats.TotalLines,
			ParsedOK:   result.Stats.ParsedOK,
			ParseErr:   result.Stats.ParseErr,
		},
	}, nil
}

func (h *HTTPEndpoint) Options(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Options(ctx)
	if err != nil {
		return nil, err
	}

	return toHTTPOptions(result), nil
}

func (h *HTTPEndpoint) SuccessPie(ctx context.Context, r *http.Request) (any, error) {
	pc, err := h.uc.SuccessPie(ctx, parseSite(r))
	if err != nil {
		return nil, err
	}

	return toHTTPPie(pc), nil
}

// PayloadScatter plots every record while low/high equal the dataset bounds. Any
// other range is exclusive, so records sitting on a bound drop out once the
// slider leaves its default.
func (h *HTTPEndpoint) PayloadScatter(ctx context.Context, r *http.Request) (any, error) {
	sc, err := h.scatter(ctx, r)
	if err != nil {
		return nil, err
	}

	return toHTTPScatter(sc), nil
}

func (h *HTTPEndpoint) SuccessPieFigure(ctx context.Context, r *http.Request) (any, error) {
	pc, err := h.uc.SuccessPie(ctx, parseSite(r))
	if err != nil {
		return nil, err
	}

	return FigureResponse{ChartID: chart.PieChartID, Option: h.rd.PieFigure(pc)}, nil
}

func (h *HTTPEndpoint) PayloadScatterFigure(ctx context.Context, r *http.Request) (any, error) {
	sc, err := h.scatter(ctx, r)
	if err != nil {
		return nil, err
	}

	return FigureResponse{ChartID: chart.ScatterChartID, Option: h.rd.ScatterFigure(sc)}, nil
}

func (h *HTTPEndpoint) ChartImage(ctx context.Context, r *http.Request) (any, error) {
	var buf bytes.Buffer

	switch name := pkgrouter.GetParam(ctx, "image"); name {
	case "success-pie.png":
		pc, err := h.uc.SuccessPie(ctx, parseSite(r))
		if err != nil {
			return nil, err
		}
		if err := h.rd.PiePNG(&buf, pc); err != nil {
			return nil, pkgerror.NewServer(err)
		}
	case "payload-scatter.png":
		sc, err := h.scatter(ctx, r)
		if err != nil {
			return nil, err
		}
		if err := h.rd.ScatterPNG(&buf, sc); err != nil {
			return nil, pkgerror.NewServer(err)
		}
	default:
		return nil, pkgerror.NewBusiness(fmt.Sprintf("chart %q not found", name), pkgerror.CodeNotFound)
	}

	return pkgrouter.Raw{ContentType: contentTypePNG, Body: buf.Bytes()}, nil
}

func (h *HTTPEndpoint) Report(ctx context.Context, r *http.Request) (any, error) {
	pc, err := h.uc.SuccessPie(ctx, parseSite(r))
	if err != nil {
		return nil, err
	}

	sc, err := h.scatter(ctx, r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := h.rd.Report(&buf, pc, sc); err != nil {
		return nil, pkgerror.NewServer(err)
	}

	return pkgrouter.Raw{ContentType: contentTypeHTML, Body: buf.Bytes()}, nil
}

func (h *HTTPEndpoint) scatter(ctx context.Context, r *http.Request) (entity.ScatterChart, error) {
	bounds, err := h.uc.PayloadBounds(ctx)
	if err != nil {
		return entity.ScatterChart{}, err
	}

	rng, err := parseRange(r, bounds)
	if err != nil {
		return entity.ScatterChart{}, err
	}

	return h.uc.PayloadScatter(ctx, parseSite(r), rng)
}

func parseSite(r *http.Request) string {
	site := r.URL.Query().Get("site")
	if site == "" {
		return entity.AllSites
	}
	return site
}

// parseRange reads low/high from the query; a missing side takes the dataset bound.
func parseRange(r *http.Request, bounds entity.PayloadRange) (entity.PayloadRange, error) {
	rng := bounds

	for _, side := range []struct {
		key string
		dst *float64
	}{
		{key: "low", dst: &rng.Low},
		{key: "high", dst: &rng.High},
	} {
		v, ok, err := pkgrouter.QueryFloat(r, side.key)
		if err != nil {
			return entity.PayloadRange{}, pkgerror.NewInvalidInput(err)
		}
		if ok {
			*side.dst = v
		}
	}

	return rng, nil
}
