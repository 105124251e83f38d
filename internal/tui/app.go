package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/boltzmannizer/internal/session"
	"github.com/san-kum/boltzmannizer/internal/sweep"
	"github.com/san-kum/boltzmannizer/internal/thermo"
	"github.com/san-kum/boltzmannizer/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type view int

const (
	viewEnergy view = iota
	viewEntropy
	viewHeatCapacity
	viewPopulations
)

var viewNames = map[view]string{
	viewEnergy:       "energy",
	viewEntropy:      "entropy",
	viewHeatCapacity: "heat capacity",
	viewPopulations:  "populations",
}

func (v view) quantity() sweep.Quantity {
	switch v {
	case viewEntropy:
		return sweep.Entropy
	case viewHeatCapacity:
		return sweep.HeatCapacity
	default:
		return sweep.Energy
	}
}

// Model is the bubbletea model of the explorer.
type Model struct {
	session *session.Session
	grid    sweep.Grid
	plot    viz.PlotOptions

	cursor int
	view   view

	editing bool
	editBuf string
	status  string

	width  int
	height int
}

func New(s *session.Session, grid sweep.Grid, plot viz.PlotOptions) Model {
	return Model{
		session: s,
		grid:    grid,
		plot:    plot,
		width:   80,
		height:  24,
	}
}

// MaxTemp is the current upper end of the sweep.
func (m Model) MaxTemp() float64 { return m.grid.MaxTemp }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	datasets := m.session.All()
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(datasets)-1 {
			m.cursor++
		}
	case " ":
		if len(datasets) > 0 {
			if _, err := m.session.Toggle(datasets[m.cursor].Key); err != nil {
				m.status = err.Error()
			}
		}
	case "d":
		if len(datasets) > 0 {
			if err := m.session.Remove(datasets[m.cursor].Key); err != nil {
				m.status = err.Error()
			}
			if m.cursor >= len(datasets)-1 && m.cursor > 0 {
				m.cursor--
			}
		}
	case "e":
		m.view = viewEnergy
	case "n":
		m.view = viewEntropy
	case "h":
		m.view = viewHeatCapacity
	case "p":
		m.view = viewPopulations
	case "+", "=":
		m.grid.MaxTemp *= 2
	case "-":
		m.setMaxTemp(m.grid.MaxTemp / 2)
	case "t":
		m.editing = true
		m.editBuf = strconv.Itoa(int(m.grid.MaxTemp))
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val, err := strconv.Atoi(m.editBuf)
		if err != nil {
			m.status = fmt.Sprintf("invalid temperature %q", m.editBuf)
		} else {
			m.setMaxTemp(float64(val))
		}
		m.editing, m.editBuf = false, ""
	case "esc", "escape":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.editBuf += s
		}
	}
	return m, nil
}

// setMaxTemp keeps the sweep at least one degree wide and above the first
// heat capacity sample.
func (m *Model) setMaxTemp(t float64) {
	if limit := m.grid.MinTemp + 1; t < limit {
		m.status = fmt.Sprintf("maximum temperature must be at least %g", limit)
		return
	}
	if start := m.grid.MinTemp + m.grid.HeatCapacityOffset; t <= start {
		m.status = fmt.Sprintf("maximum temperature must exceed %g", start)
		return
	}
	m.grid.MaxTemp = t
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("    " + cyan.Render("b o l t z m a n n i z e r") + "  " + dim.Render(viewNames[m.view]) + "\n")
	b.WriteString(dimmer.Render("    "+strings.Repeat("─", 40)) + "\n\n")

	datasets := m.session.All()
	if len(datasets) == 0 {
		b.WriteString("      " + dim.Render("no datasets loaded") + "\n")
	}
	for i, ds := range datasets {
		check := "[ ]"
		if ds.Enabled {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", check, viz.Swatch(ds.Color), ds.Name())
		if i == m.cursor {
			b.WriteString("    " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("      " + dim.Render(line) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(m.viewPlot() + "\n\n")

	maxTemp := fmt.Sprintf("%g", m.grid.MaxTemp)
	if m.editing {
		maxTemp = m.editBuf + "▋"
	}
	b.WriteString("    " + dim.Render("max temperature ") + magenta.Render(maxTemp) + "\n")
	if m.status != "" {
		b.WriteString("    " + viz.ErrorStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("    ↑↓ select  space show/hide  d remove  e/n/h/p view  +/- scale  t set max  q quit") + "\n")
	return b.String()
}

func (m Model) plotOptions() viz.PlotOptions {
	opts := m.plot
	if w := m.width - 20; w > 0 && (opts.Width == 0 || w < opts.Width) {
		opts.Width = w
	}
	return opts
}

func (m Model) viewPlot() string {
	enabled := m.session.Enabled()
	if len(enabled) == 0 {
		return viz.NoData
	}

	if m.view == viewPopulations {
		ds := m.current(enabled)
		return dim.Render("    "+ds.Name()) + "\n" + viz.PlotPopulations(ds.Dist, m.grid.For(sweep.Energy), m.plotOptions())
	}

	q := m.view.quantity()
	temps := m.grid.For(q)
	series := make([]sweep.Series, len(enabled))
	for i, ds := range enabled {
		series[i] = sweep.Evaluate(ds.Dist, q, temps)
		series[i].Name = ds.Name()
		series[i].Color = ds.Color
	}
	x, y := sweep.Labels(q, distributions(enabled))
	return viz.PlotSeries(series, x, y, m.plotOptions())
}

// current is the dataset under the cursor when it is enabled, otherwise the
// first enabled one.
func (m Model) current(enabled []*session.Dataset) *session.Dataset {
	datasets := m.session.All()
	if m.cursor < len(datasets) && datasets[m.cursor].Enabled {
		return datasets[m.cursor]
	}
	return enabled[0]
}

func distributions(ds []*session.Dataset) []*thermo.Distribution {
	out := make([]*thermo.Distribution, len(ds))
	for i, d := range ds {
		out[i] = d.Dist
	}
	return out
}

func Run(s *session.Session, grid sweep.Grid, plot viz.PlotOptions) error {
	p := tea.NewProgram(New(s, grid, plot), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
