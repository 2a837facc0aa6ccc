package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"

	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// PiePNG draws pc as a PNG. An empty pie renders as a blank image.
func (r *Renderer) PiePNG(w io.Writer, pc entity.PieChart) error {
	if pc.Total == 0 {
		return r.blank(w)
	}

	values := make([]gochart.Value, 0, len(pc.Slices))
	for _, s := range pc.Slices {
		values = append(values, gochart.Value{Label: fmt.Sprintf("%s (%d)", s.Label, s.Value), Value: float64(s.Value)})
	}

	pie := gochart.PieChart{
		Title:  pc.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}

	return r.render(w, "pie", pie.Render)
}

// ScatterPNG draws sc as a PNG with one coloured series per booster category.
func (r *Renderer) ScatterPNG(w io.Writer, sc entity.ScatterChart) error {
	if sc.Total == 0 {
		return r.blank(w)
	}

	low, high := xRange(sc)

	series := make([]gochart.Series, 0, len(sc.Series))
	for i, s := range sc.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.X)
			ys = append(ys, float64(p.Y))
		}

		series = append(series, gochart.ContinuousSeries{
			Name:    s.Category,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotWidth:    5,
				DotColor:    gochart.GetAlternateColor(i),
			},
		})
	}

	graph := gochart.Chart{
		Title:  sc.Title,
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:  sc.XLabel,
			Range: &gochart.ContinuousRange{Min: low, Max: high},
		},
		YAxis: gochart.YAxis{
			Name:  sc.YLabel,
			Range: &gochart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []gochart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return r.render(w, "scatter", graph.Render)
}

func (r *Renderer) render(w io.Writer, name string, fn func(gochart.RendererProvider, io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(gochart.PNG, &buf); err != nil {
		slog.Warn("chart render failed, using blank fallback", "chart", name, "error", err)
		return r.blank(w)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s png: %w", name, err)
	}

	return nil
}

func (r *Renderer) blank(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding blank png: %w", err)
	}

	return nil
}
