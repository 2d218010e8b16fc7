package report

import (
	"github.com/guptarohit/asciigraph"

	"github.com/numlab/bvplab/internal/bvp"
)

// PlotTitle labels every rendered comparison figure.
const PlotTitle = "Comparison of Numerical Methods"

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Blue,
}

// AsciiPlot renders all solution curves in one terminal graph with a
// per-method color and legend.
func AsciiPlot(sols ...bvp.Solution) string {
	data := make([][]float64, len(sols))
	legends := make([]string, len(sols))
	colors := make([]asciigraph.AnsiColor, len(sols))
	for i, s := range sols {
		data[i] = s.Y()
		legends[i] = s.Name()
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(PlotTitle),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}
