package riskstat

import (
	"fmt"
	"math"
)

// PortfolioSummary holds the aggregate statistics of a weighted portfolio.
type PortfolioSummary struct {
	Return   float64 // expected log return per period
	Variance float64
	StdDev   float64
	// Clamped is true when rounding produced a negative variance that was
	// replaced by 0 before taking the square root.
	Clamped bool
}

// PortfolioReturn returns the expected return of a portfolio: Σ wᵢ·mean(returnsᵢ).
func PortfolioReturn(returns [][]float64, w Weights) (float64, error) {
	if len(returns) != len(w) {
		return 0, fmt.Errorf("got %d weights for %d series: %w", len(w), len(returns), ErrDimensionMismatch)
	}
	var r float64
	for i, series := range returns {
		m, err := Mean(series)
		if err != nil {
			return 0, fmt.Errorf("cannot compute mean of series #%d: %w", i+1, err)
		}
		r += w[i] * m
	}
	return r, nil
}

// PortfolioVariance returns the variance of a portfolio: Σᵢ Σⱼ wᵢ·wⱼ·Cov(i,j).
//
// When the covariance matrix is also needed, build it with
// NewCovarianceMatrix and use QuadForm instead, so that each covariance is
// computed once.
func PortfolioVariance(returns [][]float64, w Weights) (float64, error) {
	if len(returns) != len(w) {
		return 0, fmt.Errorf("got %d weights for %d series: %w", len(w), len(returns), ErrDimensionMismatch)
	}
	cov, err := NewCovarianceMatrix(nil, returns)
	if err != nil {
		return 0, err
	}
	return cov.QuadForm(w)
}

// PortfolioStdDev returns the square root of 'variance'.
//
// A negative variance can only come from floating point cancellation, it is
// clamped to 0 and reported with clamped=true.
func PortfolioStdDev(variance float64) (stddev float64, clamped bool) {
	if variance < 0 {
		return 0, true
	}
	return math.Sqrt(variance), false
}
