package chart

import (
	"fmt"

	"github.com/shandysiswandi/golaunch/internal/launch/entity"
)

// DOM ids of the two dashboard charts.
const (
	PieChartID     = "success-pie-chart"
	ScatterChartID = "success-payload-scatter-chart"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 480
)

// Renderer turns chart descriptions into echarts options, HTML reports and
// PNG images of a fixed size.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	return &Renderer{width: width, height: height}
}

func (r *Renderer) px(v int) string {
	return fmt.Sprintf("%dpx", v)
}

// xRange is the visible payload axis of sc; a degenerate range falls back to [0, 1].
func xRange(sc entity.ScatterChart) (float64, float64) {
	if sc.Range.High > sc.Range.Low {
		return sc.Range.Low, sc.Range.High
	}
	return 0, 1
}
