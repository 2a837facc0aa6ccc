package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
)

func (r *Renderer) pie(pc entity.PieChart) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: PieChartID,
			Width:   r.px(r.width),
			Height:  r.px(r.height),
		}),
		charts.WithTitleOpts(opts.Title{Title: pc.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	data := make([]opts.PieData, 0, len(pc.Slices))
	for _, s := range pc.Slices {
		data = append(data, opts.PieData{Name: s.Label, Value: s.Value})
	}

	pie.AddSeries(pc.Site, data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: "65%"}),
	)

	return pie
}

func (r *Renderer) scatter(sc entity.ScatterChart) *charts.Scatter {
	low, high := xRange(sc)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: ScatterChartID,
			Width:   r.px(r.width),
			Height:  r.px(r.height),
		}),
		charts.WithTitleOpts(opts.Title{Title: sc.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:         sc.XLabel,
			NameLocation: "middle",
			NameGap:      28,
			Type:         "value",
			Min:          low,
			Max:          high,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         sc.YLabel,
			NameLocation: "middle",
			NameGap:      36,
			Type:         "value",
			Min:          0,
			Max:          1,
		}),
	)

	for _, series := range sc.Series {
		data := make([]opts.ScatterData, 0, len(series.Points))
		for _, p := range series.Points {
			data = append(data, opts.ScatterData{
				Name:       p.Site,
				Value:      []any{p.X, p.Y},
				SymbolSize: 10,
			})
		}
		scatter.AddSeries(series.Category, data)
	}

	return scatter
}

// PieFigure returns the echarts option object for pc.
func (r *Renderer) PieFigure(pc entity.PieChart) map[string]any {
	pie := r.pie(pc)
	pie.Validate()

	return pie.JSON()
}

// ScatterFigure returns the echarts option object for sc.
func (r *Renderer) ScatterFigure(sc entity.ScatterChart) map[string]any {
	scatter := r.scatter(sc)
	scatter.Validate()

	return scatter.JSON()
}
