package micromech

import "gonum.org/v1/gonum/floats"

// DefaultGridPoints is the number of through-thickness samples used for plotting
const DefaultGridPoints = 100

// ThicknessGrid returns n evenly spaced positions on [-h/2, h/2].
// Both endpoints are exact.
func ThicknessGrid(h float64, n int) ([]float64, error) {
	if err := requirePositive("plate thickness h", h); err != nil {
		return nil, err
	}
	return Linspace(-h/2, h/2, n)
}

// Linspace returns n evenly spaced values on [lo, hi]
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, &DomainError{Param: "grid points", Value: float64(n), Reason: "need at least 2"}
	}
	grid := floats.Span(make([]float64, n), lo, hi)
	// Span computes the last point as lo + step*(n-1), which can miss hi by an ulp
	grid[n-1] = hi
	return grid, nil
}
