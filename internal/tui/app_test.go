package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/boltzmannizer/internal/session"
	"github.com/san-kum/boltzmannizer/internal/sweep"
	"github.com/san-kum/boltzmannizer/internal/thermo"
	"github.com/san-kum/boltzmannizer/internal/viz"
)

func newModel(t *testing.T, names ...string) (Model, *session.Session) {
	t.Helper()
	s := session.New([]string{"blue", "green"}, "yellow", nil)
	for _, name := range names {
		d, err := thermo.New(0.5, []float64{1, 2, 3}, []float64{3, 2, 1}, thermo.WithFilename(name))
		if err != nil {
			t.Fatal(err)
		}
		s.AddDistribution(d)
	}
	grid := sweep.Grid{MinTemp: 0, MaxTemp: 100, Samples: 20, HeatCapacityOffset: 1}
	return New(s, grid, viz.PlotOptions{Width: 40, Height: 6}), s
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestToggleDataset(t *testing.T) {
	m, s := newModel(t, "a", "b")

	m = press(t, m, down, space)
	if ds, _ := s.Get(1); ds.Enabled {
		t.Error("expected second dataset hidden")
	}
	if ds, _ := s.Get(0); !ds.Enabled {
		t.Error("first dataset should stay enabled")
	}

	press(t, m, space)
	if ds, _ := s.Get(1); !ds.Enabled {
		t.Error("expected second dataset shown again")
	}
}

func TestRemoveDatasetReleasesColor(t *testing.T) {
	m, s := newModel(t, "a", "b")

	m = press(t, m, down, runes("d"))
	if s.Len() != 1 {
		t.Fatalf("expected 1 dataset, got %d", s.Len())
	}
	if m.cursor != 0 {
		t.Errorf("cursor should move back to 0, got %d", m.cursor)
	}

	d, _ := thermo.New(1, []float64{0}, []float64{1})
	if ds := s.AddDistribution(d); ds.Color != "green" {
		t.Errorf("expected freed color green, got %s", ds.Color)
	}
}

func TestViewSelection(t *testing.T) {
	m, _ := newModel(t, "a")

	tests := []struct {
		key  string
		want view
	}{
		{"n", viewEntropy},
		{"h", viewHeatCapacity},
		{"p", viewPopulations},
		{"e", viewEnergy},
	}
	for _, tt := range tests {
		m = press(t, m, runes(tt.key))
		if m.view != tt.want {
			t.Errorf("after %q view = %v, want %v", tt.key, m.view, tt.want)
		}
	}
}

func TestScaleMaxTemp(t *testing.T) {
	m, _ := newModel(t, "a")

	m = press(t, m, runes("+"))
	if m.MaxTemp() != 200 {
		t.Errorf("expected 200 after +, got %f", m.MaxTemp())
	}
	m = press(t, m, runes("-"), runes("-"))
	if m.MaxTemp() != 50 {
		t.Errorf("expected 50 after two -, got %f", m.MaxTemp())
	}
}

func TestEditMaxTemp(t *testing.T) {
	m, _ := newModel(t, "a")

	m = press(t, m, runes("t"))
	if !m.editing || m.editBuf != "100" {
		t.Fatalf("expected edit buffer 100, got editing=%v buf=%q", m.editing, m.editBuf)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("x"), runes("5"), enter)
	if m.editing {
		t.Error("enter should leave edit mode")
	}
	if m.MaxTemp() != 15 {
		t.Errorf("expected max temp 15, got %f", m.MaxTemp())
	}

	m = press(t, m, runes("t"), runes("9"), esc)
	if m.MaxTemp() != 15 {
		t.Errorf("escape should discard edit, got %f", m.MaxTemp())
	}
}

func TestEditRejectsNarrowSweep(t *testing.T) {
	m, _ := newModel(t, "a")

	m = press(t, m, runes("t"))
	for range 3 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = press(t, m, runes("0"), enter)

	if m.MaxTemp() != 100 {
		t.Errorf("max temp below min+1 should be rejected, got %f", m.MaxTemp())
	}
	if !strings.Contains(m.View(), "at least 1") {
		t.Error("expected rejection message in view")
	}
}

func TestMaxTempStaysAboveHeatCapacityStart(t *testing.T) {
	s := session.New([]string{"blue"}, "yellow", nil)
	grid := sweep.Grid{MinTemp: 0, MaxTemp: 100, Samples: 20, HeatCapacityOffset: 10}
	m := New(s, grid, viz.PlotOptions{Width: 40, Height: 6})

	m = press(t, m, runes("-"), runes("-"), runes("-"))
	if m.MaxTemp() != 12.5 {
		t.Errorf("expected 12.5 after three -, got %f", m.MaxTemp())
	}
	m = press(t, m, runes("-"))
	if m.MaxTemp() != 12.5 {
		t.Errorf("halving below the heat capacity start should be rejected, got %f", m.MaxTemp())
	}
	if !strings.Contains(m.View(), "must exceed 10") {
		t.Error("expected rejection message in view")
	}

	m = press(t, m, runes("t"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("5"), enter)
	if m.MaxTemp() != 12.5 {
		t.Errorf("edit to 5 should be rejected, got %f", m.MaxTemp())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewRendersDatasets(t *testing.T) {
	m, _ := newModel(t, "alpha")
	out := m.View()
	for _, want := range []string{"alpha", "[x]", "max temperature", "100"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty, _ := newModel(t)
	if !strings.Contains(empty.View(), viz.NoData) {
		t.Error("expected no data placeholder")
	}
}
