package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/boltzmannizer/internal/sweep"
	"github.com/san-kum/boltzmannizer/internal/thermo"
)

// NoData is rendered in place of a plot with nothing to draw.
const NoData = "(no data to plot)"

type PlotOptions struct {
	Width  int
	Height int
}

func (o PlotOptions) graphOptions() []asciigraph.Option {
	var opts []asciigraph.Option
	if o.Width > 0 {
		opts = append(opts, asciigraph.Width(o.Width))
	}
	if o.Height > 0 {
		opts = append(opts, asciigraph.Height(o.Height))
	}
	return opts
}

// PlotSeries draws every series on shared axes, each in its dataset color.
func PlotSeries(series []sweep.Series, xLabel, yLabel string, opts PlotOptions) string {
	data := make([][]float64, 0, len(series))
	colors := make([]asciigraph.AnsiColor, 0, len(series))
	legends := make([]string, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		data = append(data, s.Values)
		colors = append(colors, AnsiColor(s.Color))
		legends = append(legends, s.Name)
	}
	if len(data) == 0 {
		return NoData
	}

	return asciigraph.PlotMany(data, append(opts.graphOptions(),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption(yLabel, xLabel, series[0].Temperatures)),
	)...)
}

// PlotPopulations draws the occupation of every level against temperature,
// coloring levels from blue (lowest energy) to red (highest).
func PlotPopulations(d *thermo.Distribution, temps []float64, opts PlotOptions) string {
	if len(temps) == 0 {
		return NoData
	}

	pops := sweep.Populations(d, temps)
	energies := d.Energies()
	colors := LevelColors(energies)

	ansi := make([]asciigraph.AnsiColor, len(colors))
	legends := make([]string, len(energies))
	for i, t := range colors {
		ansi[i] = JetColor(t)
		legends[i] = fmt.Sprintf("E=%g", energies[i])
	}

	x, _, z := sweep.PopulationLabels(d)
	return asciigraph.PlotMany(pops, append(opts.graphOptions(),
		asciigraph.Precision(3),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.SeriesColors(ansi...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption(z, x, temps)),
	)...)
}

// LevelColors positions each level on the color ramp by energy, 0 for the
// ground state and 1 for the highest level.
func LevelColors(energies []float64) []float64 {
	out := make([]float64, len(energies))
	if len(energies) < 2 {
		return out
	}
	lo, hi := energies[0], energies[len(energies)-1]
	span := hi - lo
	for i, e := range energies {
		if span > 0 {
			out[i] = (e - lo) / span
		}
	}
	return out
}

func caption(y, x string, temps []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s", y, x)
	if n := len(temps); n > 0 {
		fmt.Fprintf(&b, " [%g .. %g]", temps[0], temps[n-1])
	}
	return b.String()
}
