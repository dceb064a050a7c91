package render

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/cluster.report/internal/cluster"
	"github.com/banshee-data/cluster.report/internal/config"
)

// ScatterHTML renders col as an interactive scatter chart and writes a
// standalone HTML page to path. One series per cluster, tooltips carry
// point ids.
func ScatterHTML(path string, col *cluster.Collection, params *config.Params) error {
	// Symmetric axis ranges force a square plot.
	maxAbs := 0.0
	for i := 0; i < col.Len(); i++ {
		for _, pt := range col.At(i).Points() {
			if math.Abs(pt.X()) > maxAbs {
				maxAbs = math.Abs(pt.X())
			}
			if math.Abs(pt.Y()) > maxAbs {
				maxAbs = math.Abs(pt.Y())
			}
		}
	}
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Clusters", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Clusters", Subtitle: fmt.Sprintf("clusters=%d points=%d", col.Len(), col.TotalPoints())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	symbolSize := float32(params.GetSymbolSizePx())
	for i := 0; i < col.Len(); i++ {
		c := col.At(i)
		data := make([]opts.ScatterData, 0, c.Len())
		for _, pt := range c.Points() {
			data = append(data, opts.ScatterData{
				Name:  fmt.Sprintf("point %d", pt.ID),
				Value: []interface{}{pt.X(), pt.Y()},
			})
		}
		scatter.AddSeries(fmt.Sprintf("cluster %d", i), data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: symbolSize}))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
