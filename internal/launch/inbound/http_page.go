package inbound

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/shandysiswandi/golaunch/internal/launch/chart"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgerror"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgrouter"
)

//go:embed web/dashboard.html
var webFS embed.FS

//nolint:gochecknoglobals // parsed once from the embedded page
var dashboardTmpl = template.Must(template.ParseFS(webFS, "web/dashboard.html"))

type dashboardPage struct {
	Title      string
	PieID      string
	ScatterID  string
	Options    OptionsResponse
	EChartsURL string
}

// echartsURL is where the browser page loads the echarts runtime from.
const echartsURL = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

func (h *HTTPEndpoint) Dashboard(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Options(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = dashboardTmpl.Execute(&buf, dashboardPage{
		Title:      chart.ReportTitle,
		PieID:      chart.PieChartID,
		ScatterID:  chart.ScatterChartID,
		Options:    toHTTPOptions(result),
		EChartsURL: echartsURL,
	})
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	return pkgrouter.Raw{ContentType: contentTypeHTML, Body: buf.Bytes()}, nil
}
