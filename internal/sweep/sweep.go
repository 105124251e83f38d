// Package sweep samples thermo quantities over a temperature grid and
// derives the axis labels used to present them.
package sweep

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/boltzmannizer/internal/thermo"
)

// MixedUnits is the label shown when plotted datasets disagree on units.
const MixedUnits = "???"

type Quantity int

const (
	Energy Quantity = iota
	Entropy
	HeatCapacity
)

var quantityNames = map[Quantity]string{
	Energy:       "energy",
	Entropy:      "entropy",
	HeatCapacity: "heat_capacity",
}

func (q Quantity) String() string {
	if name, ok := quantityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quantity(%d)", int(q))
}

// Title is the human-readable name, e.g. "Heat capacity".
func (q Quantity) Title() string {
	switch q {
	case Energy:
		return "Energy"
	case Entropy:
		return "Entropy"
	case HeatCapacity:
		return "Heat capacity"
	default:
		return q.String()
	}
}

func (q Quantity) Symbol() string {
	switch q {
	case Energy:
		return "E"
	case Entropy:
		return "S"
	case HeatCapacity:
		return "Cv"
	default:
		return "?"
	}
}

func ParseQuantity(s string) (Quantity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "energy", "e", "u":
		return Energy, nil
	case "entropy", "s":
		return Entropy, nil
	case "heat_capacity", "heat-capacity", "heatcapacity", "cv", "c":
		return HeatCapacity, nil
	default:
		return 0, fmt.Errorf("unknown quantity: %s (available: energy, entropy, heat_capacity)", s)
	}
}

func Quantities() []Quantity {
	return []Quantity{Energy, Entropy, HeatCapacity}
}

func (q Quantity) Eval(d *thermo.Distribution, T float64) float64 {
	switch q {
	case Entropy:
		return d.Entropy(T)
	case HeatCapacity:
		return d.HeatCapacity(T)
	default:
		return d.InternalEnergy(T)
	}
}

// Temperatures returns n evenly spaced samples from lo to hi inclusive.
func Temperatures(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Grid describes a sweep. HeatCapacityOffset moves the first heat capacity
// sample off MinTemp.
type Grid struct {
	MinTemp            float64
	MaxTemp            float64
	Samples            int
	HeatCapacityOffset float64
}

// For returns the temperatures q is sampled on.
func (g Grid) For(q Quantity) []float64 {
	start := g.MinTemp
	if q == HeatCapacity {
		start += g.HeatCapacityOffset
	}
	return Temperatures(start, g.MaxTemp, g.Samples)
}

type Series struct {
	Name         string
	Color        string
	Temperatures []float64
	Values       []float64
}

func Evaluate(d *thermo.Distribution, q Quantity, temps []float64) Series {
	values := make([]float64, len(temps))
	for i, T := range temps {
		values[i] = q.Eval(d, T)
	}
	return Series{
		Name:         d.Filename(),
		Temperatures: append([]float64(nil), temps...),
		Values:       values,
	}
}

// Populations returns the occupation probability of every level at every
// temperature, indexed [level][temperature].
func Populations(d *thermo.Distribution, temps []float64) [][]float64 {
	n, _ := d.NumLevels()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, len(temps))
	}
	for j, T := range temps {
		for i, p := range d.OccupationProbabilities(T) {
			out[i][j] = p
		}
	}
	return out
}

// CombineUnits returns the common unit label, MixedUnits when the labels
// disagree, and false when there are none.
func CombineUnits(units []string) (string, bool) {
	if len(units) == 0 {
		return "", false
	}
	cur := units[0]
	for _, u := range units[1:] {
		if u != cur {
			return MixedUnits, true
		}
	}
	return cur, true
}

// Labels returns the x and y axis labels for q plotted over ds. Datasets
// without units contribute an empty label.
func Labels(q Quantity, ds []*thermo.Distribution) (string, string) {
	energies := make([]string, 0, len(ds))
	temperatures := make([]string, 0, len(ds))
	for _, d := range ds {
		u, _ := d.Units()
		energies = append(energies, u.Energy)
		temperatures = append(temperatures, u.Temperature)
	}
	energy, _ := CombineUnits(energies)
	temperature, _ := CombineUnits(temperatures)

	x := "T"
	if temperature != "" {
		x = fmt.Sprintf("T / %s", temperature)
	}

	y := q.Symbol()
	switch q {
	case Energy:
		if energy != "" {
			y = fmt.Sprintf("E / %s", energy)
		}
	default:
		if energy != "" && temperature != "" {
			y = fmt.Sprintf("%s / (%s / %s)", q.Symbol(), energy, temperature)
		}
	}
	return x, y
}

// PopulationLabels returns the temperature, energy and probability axis
// labels for a single dataset.
func PopulationLabels(d *thermo.Distribution) (string, string, string) {
	x, y := "T", "E"
	if u, ok := d.Units(); ok {
		x += " / " + u.Temperature
		y += " / " + u.Energy
	}
	return x, y, "P"
}
