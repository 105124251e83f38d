package thermo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Beta returns 1/(k_B T). At T = 0 the result is +Inf; the quantities below
// never call it there.
func (d *Distribution) Beta(T float64) float64 {
	return d.beta.Get(T)
}

// BoltzmannFactors returns g_i exp(-beta E_i) for every level.
func (d *Distribution) BoltzmannFactors(T float64) []float64 {
	return append([]float64(nil), d.factors.Get(T)...)
}

// BoltzmannFactor returns the Boltzmann factor of level i.
func (d *Distribution) BoltzmannFactor(i int, T float64) float64 {
	return d.factors.Get(T)[i]
}

// PartitionFunction returns Z, the sum of the Boltzmann factors. It is 0 for
// an empty distribution.
func (d *Distribution) PartitionFunction(T float64) float64 {
	return d.z.Get(T)
}

// OccupationProbabilities returns p_i for every level. At T = 0, and when Z
// underflows to exactly 0, every level but the ground state is empty. The
// probabilities stay finite when Z itself overflows to +Inf.
func (d *Distribution) OccupationProbabilities(T float64) []float64 {
	return append([]float64(nil), d.ps.Get(T)...)
}

// Probability returns the occupation probability of level i.
func (d *Distribution) Probability(i int, T float64) float64 {
	return d.ps.Get(T)[i]
}

// InternalEnergy returns <E>.
func (d *Distribution) InternalEnergy(T float64) float64 {
	return d.energy.Get(T)
}

// Entropy returns the Gibbs entropy -k_B sum p_i ln p_i.
func (d *Distribution) Entropy(T float64) float64 {
	return d.entropy.Get(T)
}

// HeatCapacity returns C_V = beta (<E^2> - <E>^2) / T.
// At T = 0 it returns 0, the limit of C_V as T -> 0+ for a discrete spectrum.
func (d *Distribution) HeatCapacity(T float64) float64 {
	return d.heatCapacity.Get(T)
}

func (d *Distribution) energySq(T float64) float64 {
	return d.energySqExp.Get(T)
}

func (d *Distribution) computeBeta(T float64) float64 {
	return 1 / (d.kB * T)
}

func (d *Distribution) computeBoltzmannFactors(T float64) []float64 {
	beta := d.Beta(T)
	out := make([]float64, len(d.energies))
	for i, e := range d.energies {
		out[i] = d.degeneracies[i] * math.Exp(-beta*e)
	}
	return out
}

func (d *Distribution) computePartitionFunction(T float64) float64 {
	return floats.Sum(d.factors.Get(T))
}

func (d *Distribution) computeOccupationProbabilities(T float64) []float64 {
	if T == 0 {
		return groundState(len(d.energies))
	}

	z := d.PartitionFunction(T)
	if z == 0 {
		// Every factor underflowed; the system is in the ground state.
		return groundState(len(d.energies))
	}

	// Weights relative to the ground state stay finite when g_i exp(-beta E_i)
	// overflows, and give the same ratios otherwise.
	beta := d.Beta(T)
	e0 := d.energies[0]
	ps := make([]float64, len(d.energies))
	for i, e := range d.energies {
		ps[i] = d.degeneracies[i] * math.Exp(-beta*(e-e0))
	}
	sum := floats.Sum(ps)
	if sum == 0 {
		return groundState(len(d.energies))
	}
	floats.Scale(1/sum, ps)
	return ps
}

// groundState is the zero-temperature occupation vector [1, 0, 0, ...].
func groundState(n int) []float64 {
	ps := make([]float64, n)
	if n > 0 {
		ps[0] = 1
	}
	return ps
}

func (d *Distribution) computeInternalEnergy(T float64) float64 {
	return floats.Dot(d.energies, d.ps.Get(T))
}

// computeEnergySq is <E^2>, not <E>^2.
func (d *Distribution) computeEnergySq(T float64) float64 {
	return floats.Dot(d.energiesSq, d.ps.Get(T))
}

func (d *Distribution) computeEntropy(T float64) float64 {
	sum := 0.0
	for _, p := range d.ps.Get(T) {
		// 0 ln 0 = 0 by convention.
		if p > 0 {
			sum += p * math.Log(p)
		}
	}
	if sum == 0 {
		return 0
	}
	return -d.kB * sum
}

func (d *Distribution) computeHeatCapacity(T float64) float64 {
	if T == 0 {
		return 0
	}
	u := d.InternalEnergy(T)
	return d.Beta(T) * (d.energySq(T) - u*u) / T
}
