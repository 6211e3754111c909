package riskstat

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of x.
//
// The mean of nothing is undefined: an empty x fails with ErrInsufficientData.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("cannot compute mean of an empty series: %w", ErrInsufficientData)
	}
	return stat.Mean(x, nil), nil
}

// Variance returns the sample variance of x, with Bessel's correction (N-1 denominator).
//
// It requires at least two observations, and fails with ErrInsufficientData otherwise.
func Variance(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, fmt.Errorf("cannot compute variance of %d observation(s), need at least 2: %w", len(x), ErrInsufficientData)
	}
	return stat.Variance(x, nil), nil
}

// Covariance returns the sample covariance of x and y, with a N-1 denominator.
//
// x and y must have the same length (ErrDimensionMismatch) and hold at least
// two observations (ErrInsufficientData).
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("cannot compute covariance of series of length %d and %d: %w", len(x), len(y), ErrDimensionMismatch)
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("cannot compute covariance of %d observation(s), need at least 2: %w", len(x), ErrInsufficientData)
	}
	return stat.Covariance(x, y, nil), nil
}
