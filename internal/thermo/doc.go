// Package thermo computes equilibrium properties of a system of discrete
// energy levels in the canonical ensemble.
//
// A [Distribution] holds the levels (energy E_i, degeneracy g_i) and the
// Boltzmann constant k_B. From these it derives, for any temperature T >= 0:
//
//   - [Distribution.BoltzmannFactors]: g_i exp(-E_i / k_B T)
//   - [Distribution.PartitionFunction]: Z = sum of the factors
//   - [Distribution.OccupationProbabilities]: p_i = g_i exp(-E_i / k_B T) / Z
//   - [Distribution.InternalEnergy]: <E>
//   - [Distribution.Entropy]: -k_B sum p_i ln p_i
//   - [Distribution.HeatCapacity]: (<E^2> - <E>^2) / (k_B T^2)
//
// # Example
//
//	d, err := thermo.New(0.695031, []float64{0, 100, 250}, []float64{1, 3, 5},
//	    thermo.WithUnits(thermo.Units{Energy: "cm^-1", Temperature: "K"}))
//	if err != nil {
//	    return err
//	}
//	u := d.InternalEnergy(300)
//
// # Zero Temperature
//
// At T = 0, and at temperatures low enough that every Boltzmann factor
// underflows, the occupation probabilities are the ground-state vector
// [1, 0, 0, ...] instead of 0/0.
//
// # Thread Safety
//
// Distribution values are immutable after [New] and every query is cached
// behind a mutex, so a Distribution may be shared between goroutines.
package thermo
