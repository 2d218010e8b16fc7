package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/numlab/bvplab/internal/bvp"
)

func fixture(t *testing.T) Model {
	t.Helper()
	g, err := bvp.NewGrid(0.5)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(g, []bvp.Solution{
		bvp.NewSolution("shooting", []float64{1, 1.5, 2}),
		bvp.NewSolution("finite-diff", []float64{1, 1.49, 2}),
	})
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ToggleAndCursor(t *testing.T) {
	m := fixture(t)

	next, _ := m.Update(key("1"))
	m = next.(Model)
	if m.visible[0] {
		t.Error("key 1 should hide the first method")
	}

	next, _ = m.Update(key("1"))
	m = next.(Model)
	if !m.visible[0] {
		t.Error("key 1 again should re-show the first method")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after right, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after left, want 0", m.cursor)
	}

	// Cursor clamps at the edges.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, should clamp at 0", m.cursor)
	}
}

func TestModel_View(t *testing.T) {
	m := fixture(t)
	out := m.View()

	for _, want := range []string{"shooting", "finite-diff", "1.00000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_ViewAllHidden(t *testing.T) {
	m := fixture(t)
	next, _ := m.Update(key("1"))
	m = next.(Model)
	next, _ = m.Update(key("2"))
	m = next.(Model)

	if !strings.Contains(m.View(), "all methods hidden") {
		t.Error("view should note when every method is hidden")
	}
}

func TestModel_Quit(t *testing.T) {
	m := fixture(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
