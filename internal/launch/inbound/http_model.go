package inbound

import (
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/launch/usecase"
)

type LoadStats struct {
	TotalLines int64 `json:"total_lines"`
	ParsedOK   int64 `json:"parsed_ok"`
	ParseErr   int64 `json:"parse_err"`
}

type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type DatasetResponse struct {
	ID       string        `json:"id"`
	Source   string        `json:"source"`
	Format   entity.Format `json:"format"`
	Records  int           `json:"records"`
	Sites    []string      `json:"sites"`
	Payload  PayloadRange  `json:"payload"`
	Stats    LoadStats     `json:"stats"`
	LoadedAt int64         `json:"loaded_at"`
}

type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type PayloadSlider struct {
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Value [2]float64   `json:"value"`
	Marks []SliderMark `json:"marks"`
}

type OptionsResponse struct {
	Sites       []SelectOption `json:"sites"`
	DefaultSite string         `json:"default_site"`
	Payload     PayloadSlider  `json:"payload"`
}

type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type PieChartResponse struct {
	Title  string     `json:"title"`
	Site   string     `json:"site"`
	Slices []PieSlice `json:"slices"`
	total  int
}

func (r PieChartResponse) Meta() map[string]any {
	return map[string]any{"total": r.total}
}

type ScatterPoint struct {
	X    float64 `json:"x"`
	Y    int     `json:"y"`
	Site string  `json:"site"`
}

type ScatterSeries struct {
	Category string         `json:"category"`
	Points   []ScatterPoint `json:"points"`
}

type ScatterChartResponse struct {
	Title  string          `json:"title"`
	XLabel string          `json:"x_label"`
	YLabel string          `json:"y_label"`
	Site   string          `json:"site"`
	Range  PayloadRange    `json:"range"`
	Series []ScatterSeries `json:"series"`
	total  int
}

func (r ScatterChartResponse) Meta() map[string]any {
	return map[string]any{"total": r.total}
}

type FigureResponse struct {
	ChartID string         `json:"chart_id"`
	Option  map[string]any `json:"option"`
}

func toHTTPRange(r entity.PayloadRange) PayloadRange {
	return PayloadRange{Low: r.Low, High: r.High}
}

func toHTTPOptions(result usecase.OptionsResult) OptionsResponse {
	sites := make([]SelectOption, 0, len(result.Sites))
	for _, s := range result.Sites {
		sites = append(sites, SelectOption{Label: s.Label, Value: s.Value})
	}

	marks := make([]SliderMark, 0, len(result.Payload.Marks))
	for _, m := range result.Payload.Marks {
		marks = append(marks, SliderMark{Value: m.Value, Label: m.Label})
	}

	return OptionsResponse{
		Sites:       sites,
		DefaultSite: result.DefaultSite,
		Payload: PayloadSlider{
			Min:   result.Payload.Min,
			Max:   result.Payload.Max,
			Step:  result.Payload.Step,
			Value: [2]float64{result.Payload.Value.Low, result.Payload.Value.High},
			Marks: marks,
		},
	}
}

func toHTTPPie(pc entity.PieChart) PieChartResponse {
	slices := make([]PieSlice, 0, len(pc.Slices))
	for _, s := range pc.Slices {
		slices = append(slices, PieSlice{Label: s.Label, Value: s.Value})
	}

	return PieChartResponse{
		Title:  pc.Title,
		Site:   pc.Site,
		Slices: slices,
		total:  pc.Total,
	}
}

func toHTTPScatter(sc entity.ScatterChart) ScatterChartResponse {
	series := make([]ScatterSeries, 0, len(sc.Series))
	for _, s := range sc.Series {
		points := make([]ScatterPoint, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, ScatterPoint{X: p.X, Y: p.Y, Site: p.Site})
		}
		series = append(series, ScatterSeries{Category: s.Category, Points: points})
	}

	return ScatterChartResponse{
		Title:  sc.Title,
		XLabel: sc.XLabel,
		YLabel: sc.YLabel,
		Site:   sc.Site,
		Range:  toHTTPRange(sc.Range),
		Series: series,
		total:  sc.Total,
	}
}
