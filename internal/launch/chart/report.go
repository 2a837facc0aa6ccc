package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/yosssi/gohtml"
)

// ReportTitle is the page title of the static report.
const ReportTitle = "SpaceX Launch Records Dashboard"

// Report writes a standalone HTML page holding both charts of a selection.
func (r *Renderer) Report(w io.Writer, pc entity.PieChart, sc entity.ScatterChart) error {
	page := components.NewPage()
	page.PageTitle = ReportTitle
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(r.pie(pc), r.scatter(sc))

	var buf strings.Builder
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if _, err := io.WriteString(w, gohtml.Format(buf.String())); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
