package thermo

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/boltzmannizer/internal/memo"
)

// Units are display labels only and never take part in arithmetic.
type Units struct {
	Energy      string `json:"energy" yaml:"energy"`
	Temperature string `json:"temperature" yaml:"temperature"`
}

type Option func(*Distribution)

func WithUnits(u Units) Option {
	return func(d *Distribution) {
		d.units = &u
	}
}

// WithFilename sets the provenance label shown next to the distribution.
func WithFilename(name string) Option {
	return func(d *Distribution) {
		d.filename = name
	}
}

// Distribution is an immutable set of levels with known energy and
// degeneracy. Every temperature-dependent quantity is cached per instance.
type Distribution struct {
	kB           float64
	energies     []float64
	degeneracies []float64
	energiesSq   []float64
	units        *Units
	filename     string

	beta         *memo.Func[float64, float64]
	factors      *memo.Func[float64, []float64]
	z            *memo.Func[float64, float64]
	ps           *memo.Func[float64, []float64]
	energy       *memo.Func[float64, float64]
	energySqExp  *memo.Func[float64, float64]
	entropy      *memo.Func[float64, float64]
	heatCapacity *memo.Func[float64, float64]
}

// New validates the levels and returns a Distribution. kB is the Boltzmann
// constant in units of energy/temperature matching the energies. Energies
// must be strictly increasing, so level 0 is the ground state.
func New(kB float64, energies, degeneracies []float64, opts ...Option) (*Distribution, error) {
	if !(kB > 0) {
		return nil, &ParameterError{Param: "k_B", Reason: fmt.Sprintf("must be positive, got %g", kB)}
	}
	if len(energies) != len(degeneracies) {
		return nil, &ParameterError{
			Param:  "levels",
			Reason: fmt.Sprintf("%d energies but %d degeneracies", len(energies), len(degeneracies)),
		}
	}
	for i := 0; i+1 < len(energies); i++ {
		if !(energies[i] < energies[i+1]) {
			return nil, &NonIncreasingError{Index: i, Lower: energies[i], Upper: energies[i+1]}
		}
	}

	n := len(energies)
	d := &Distribution{
		kB:           kB,
		energies:     append(make([]float64, 0, n), energies...),
		degeneracies: append(make([]float64, 0, n), degeneracies...),
		energiesSq:   floats.MulTo(make([]float64, n), energies, energies),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.beta = memo.New(d.computeBeta)
	d.factors = memo.New(d.computeBoltzmannFactors)
	d.z = memo.New(d.computePartitionFunction)
	d.ps = memo.New(d.computeOccupationProbabilities)
	d.energy = memo.New(d.computeInternalEnergy)
	d.energySqExp = memo.New(d.computeEnergySq)
	d.entropy = memo.New(d.computeEntropy)
	d.heatCapacity = memo.New(d.computeHeatCapacity)

	return d, nil
}

func (d *Distribution) KB() float64 { return d.kB }

func (d *Distribution) Energies() []float64 {
	return append([]float64(nil), d.energies...)
}

func (d *Distribution) Degeneracies() []float64 {
	return append([]float64(nil), d.degeneracies...)
}

func (d *Distribution) Units() (Units, bool) {
	if d.units == nil {
		return Units{}, false
	}
	return *d.units, true
}

func (d *Distribution) Filename() string { return d.filename }

// Levels yields the level indices 0..n-1.
func (d *Distribution) Levels() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range d.energies {
			if !yield(i) {
				return
			}
		}
	}
}

// NumLevels returns the number of levels and the number of states
// (sum of degeneracies).
func (d *Distribution) NumLevels() (int, float64) {
	return len(d.energies), floats.Sum(d.degeneracies)
}
