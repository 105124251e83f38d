package thermo

import (
	"errors"
	"fmt"
)

// Construction errors. A Distribution is either fully valid or not created.
var (
	// ErrInvalidParameter indicates a non-positive k_B or mismatched
	// energy/degeneracy lengths.
	ErrInvalidParameter = errors.New("thermo: invalid parameter")

	// ErrNonIncreasingEnergies indicates a pair of adjacent energies that is
	// not strictly increasing.
	ErrNonIncreasingEnergies = errors.New("thermo: energies not strictly increasing")
)

// ParameterError names the offending constructor parameter.
type ParameterError struct {
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("thermo: invalid %s: %s", e.Param, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// NonIncreasingError reports the adjacent pair energies[Index] >= energies[Index+1].
type NonIncreasingError struct {
	Index int
	Lower float64
	Upper float64
}

func (e *NonIncreasingError) Error() string {
	return fmt.Sprintf("thermo: energies not strictly increasing at level %d: %g >= %g", e.Index, e.Lower, e.Upper)
}

func (e *NonIncreasingError) Unwrap() error {
	return ErrNonIncreasingEnergies
}
