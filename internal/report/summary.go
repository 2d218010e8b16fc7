package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/numlab/bvplab/internal/bvp"
	"github.com/numlab/bvplab/internal/metrics"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Summary prints the run header and each method's terminal defect,
// the quickest read on how well the three solutions agree at the far
// boundary.
func Summary(w io.Writer, g bvp.Grid, sols ...bvp.Solution) {
	fmt.Fprintln(w, titleStyle.Render("y'' + (x+1)y' - 2y = (1-x²)e⁻ˣ,  y(0)=1, y(1)=2"))
	fmt.Fprintf(w, "%s %s\n",
		labelStyle.Render("grid:"),
		valueStyle.Render(fmt.Sprintf("h=%g, %d points", g.Step(), g.Len())))

	for _, s := range sols {
		defect := metrics.BoundaryDefect(s)
		fmt.Fprintf(w, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", s.Name()+":")),
			valueStyle.Render(fmt.Sprintf("y(1) defect %.2e", defect)))
	}
	fmt.Fprintln(w)
}
