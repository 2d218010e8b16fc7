package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/numlab/bvplab/internal/bvp"
)

var strokeColors = []string{"#ff5555", "#50fa7b", "#8be9fd"}

const (
	svgWidth  = 800
	svgHeight = 500
	svgMargin = 60.0
)

// SVG renders all solution curves against the grid as a single figure
// with axes, legend, and title.
func SVG(g bvp.Grid, sols ...bvp.Solution) string {
	if g.Len() < 2 || len(sols) == 0 {
		return ""
	}

	yMin, yMax := sols[0].At(0), sols[0].At(0)
	for _, s := range sols {
		for i := 0; i < s.Len(); i++ {
			if s.At(i) < yMin {
				yMin = s.At(i)
			}
			if s.At(i) > yMax {
				yMax = s.At(i)
			}
		}
	}
	yRange := yMax - yMin
	if yRange == 0 {
		yRange = 1
	}
	yMin -= yRange * 0.1
	yMax += yRange * 0.1
	yRange = yMax - yMin

	plotW := float64(svgWidth) - 2*svgMargin
	plotH := float64(svgHeight) - 2*svgMargin

	toX := func(x float64) float64 { return svgMargin + x*plotW }
	toY := func(y float64) float64 { return svgMargin + plotH - (y-yMin)/yRange*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgWidth, svgHeight, svgWidth, svgHeight))

	// Title and axis labels.
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="30" fill="#f8f8f2" font-family="monospace" font-size="18" text-anchor="middle">%s</text>
`, svgWidth/2, PlotTitle))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#f8f8f2" font-family="monospace" font-size="14" text-anchor="middle">x</text>
`, svgWidth/2, svgHeight-15))
	sb.WriteString(fmt.Sprintf(`<text x="20" y="%d" fill="#f8f8f2" font-family="monospace" font-size="14" text-anchor="middle" transform="rotate(-90 20 %d)">y(x)</text>
`, svgHeight/2, svgHeight/2))

	// Axes.
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#666666" stroke-width="1" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`, svgMargin, svgMargin, svgMargin, svgMargin+plotH, svgMargin+plotW, svgMargin+plotH))

	// Gridlines and tick labels.
	for tick := 0.0; tick <= 1.0001; tick += 0.25 {
		x := toX(tick)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333333" stroke-width="0.5"/>
`, x, svgMargin, x, svgMargin+plotH))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#999999" font-family="monospace" font-size="12" text-anchor="middle">%.2f</text>
`, x, svgMargin+plotH+20, tick))
	}
	for j := 0; j <= 4; j++ {
		yv := yMin + yRange*float64(j)/4
		y := toY(yv)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333333" stroke-width="0.5"/>
`, svgMargin, y, svgMargin+plotW, y))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#999999" font-family="monospace" font-size="12" text-anchor="end">%.3f</text>
`, svgMargin-8, y+4, yv))
	}

	// One polyline with point markers per method.
	for si, s := range sols {
		color := strokeColors[si%len(strokeColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i := 0; i < s.Len(); i++ {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(g.At(i)), toY(s.At(i))))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(g.At(i)), toY(s.At(i))))
			}
		}
		sb.WriteString("\"/>\n")
		for i := 0; i < s.Len(); i++ {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>
`, toX(g.At(i)), toY(s.At(i)), color))
		}

		// Legend entry.
		ly := svgMargin + 10 + float64(si)*18
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>
`, svgMargin+plotW-140, ly, svgMargin+plotW-115, ly, color))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#f8f8f2" font-family="monospace" font-size="12">%s</text>
`, svgMargin+plotW-108, ly+4, s.Name()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSVG renders the figure to path.
func WriteSVG(path string, g bvp.Grid, sols ...bvp.Solution) error {
	return os.WriteFile(path, []byte(SVG(g, sols...)), 0644)
}
