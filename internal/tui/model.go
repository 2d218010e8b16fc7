// Package tui is an interactive browser for a finished comparison
// run: toggle methods on and off and walk a cursor along the grid to
// read the three approximations side by side.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/numlab/bvplab/internal/bvp"
	"github.com/numlab/bvplab/internal/report"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var plotColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Blue,
}

// Model holds one solved comparison; solvers are pure, so nothing is
// recomputed while browsing.
type Model struct {
	grid    bvp.Grid
	sols    []bvp.Solution
	visible []bool
	cursor  int
}

func NewModel(g bvp.Grid, sols []bvp.Solution) Model {
	visible := make([]bool, len(sols))
	for i := range visible {
		visible[i] = true
	}
	return Model{grid: g, sols: sols, visible: visible}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < m.grid.Len()-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = m.grid.Len() - 1
		default:
			if idx := methodKey(msg.String()); idx >= 0 && idx < len(m.sols) {
				m.visible[idx] = !m.visible[idx]
			}
		}
	}
	return m, nil
}

func methodKey(key string) int {
	switch key {
	case "1":
		return 0
	case "2":
		return 1
	case "3":
		return 2
	}
	return -1
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(report.PlotTitle))
	b.WriteString("\n")
	b.WriteString(m.plot())
	b.WriteString("\n\n")
	b.WriteString(m.detail())
	b.WriteString(helpStyle.Render("1/2/3 toggle methods · ←/→ move cursor · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) plot() string {
	data := make([][]float64, 0, len(m.sols))
	legends := make([]string, 0, len(m.sols))
	colors := make([]asciigraph.AnsiColor, 0, len(m.sols))
	for i, s := range m.sols {
		if !m.visible[i] {
			continue
		}
		data = append(data, s.Y())
		legends = append(legends, s.Name())
		colors = append(colors, plotColors[i%len(plotColors)])
	}
	if len(data) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("(all methods hidden)")
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(14),
		asciigraph.Width(76),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

func (m Model) detail() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("x"),
		valueStyle.Render(fmt.Sprintf("%.2f  (point %d of %d)", m.grid.At(m.cursor), m.cursor+1, m.grid.Len())))

	for i, s := range m.sols {
		line := fmt.Sprintf("%s %s",
			labelStyle.Render(s.Name()),
			valueStyle.Render(fmt.Sprintf("%.8f", s.At(m.cursor))))
		if !m.visible[i] {
			line = offStyle.Render(s.Name() + "  (hidden)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}
