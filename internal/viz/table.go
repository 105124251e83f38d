package viz

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/boltzmannizer/internal/session"
	"github.com/san-kum/boltzmannizer/internal/thermo"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// LevelTable lists the levels of d with their degeneracies.
func LevelTable(d *thermo.Distribution) string {
	energyHeader := "energy"
	if u, ok := d.Units(); ok {
		energyHeader += " / " + u.Energy
	}

	t := newTable("#", energyHeader, "degeneracy")
	energies, degeneracies := d.Energies(), d.Degeneracies()
	shades := LevelColors(energies)
	for i := range energies {
		marker := lipgloss.NewStyle().Foreground(JetHex(shades[i])).Render("■")
		t.Row(
			strconv.Itoa(i),
			marker+" "+strconv.FormatFloat(energies[i], 'g', -1, 64),
			strconv.FormatFloat(degeneracies[i], 'g', -1, 64),
		)
	}
	return t.Render()
}

// DatasetTable summarizes loaded datasets.
func DatasetTable(datasets []*session.Dataset) string {
	t := newTable("", "name", "levels", "states", "k_B", "units", "shown")
	for _, ds := range datasets {
		levels, states := ds.Dist.NumLevels()
		units := "-"
		if u, ok := ds.Dist.Units(); ok {
			units = fmt.Sprintf("%s, %s", u.Energy, u.Temperature)
		}
		shown := "no"
		if ds.Enabled {
			shown = "yes"
		}
		t.Row(
			Swatch(ds.Color),
			ds.Name(),
			strconv.Itoa(levels),
			strconv.FormatFloat(states, 'g', -1, 64),
			strconv.FormatFloat(ds.Dist.KB(), 'g', -1, 64),
			units,
			shown,
		)
	}
	return t.Render()
}
