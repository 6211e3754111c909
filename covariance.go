package riskstat

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// CovarianceMatrix is the symmetric matrix of sample covariances between the
// return series of a set of instruments.
//
// Its diagonal holds each instrument's variance.
type CovarianceMatrix struct {
	names []string
	sym   *mat.SymDense
}

// NewCovarianceMatrix computes the covariance matrix of 'returns'.
//
// 'names' labels the rows and columns; it can be nil, otherwise it must have
// one name per series. Each of the N(N+1)/2 distinct pairs is computed once
// and mirrored across the diagonal.
func NewCovarianceMatrix(names []string, returns [][]float64) (*CovarianceMatrix, error) {
	n := len(returns)
	if n == 0 {
		return nil, fmt.Errorf("cannot compute a covariance matrix without series: %w", ErrInsufficientData)
	}
	if names != nil && len(names) != n {
		return nil, fmt.Errorf("got %d names for %d series: %w", len(names), n, ErrDimensionMismatch)
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c, err := Covariance(returns[i], returns[j])
			if err != nil {
				return nil, fmt.Errorf("cannot compute covariance(%s, %s): %w", label(names, i), label(names, j), err)
			}
			sym.SetSym(i, j, c)
		}
	}
	return &CovarianceMatrix{names: slices.Clone(names), sym: sym}, nil
}

// label returns the name of the i-th series, or its 1-based position.
func label(names []string, i int) string {
	if names == nil {
		return fmt.Sprintf("#%d", i+1)
	}
	return names[i]
}

// Len returns the number of instruments.
func (c *CovarianceMatrix) Len() int { return c.sym.SymmetricDim() }

// At returns the covariance between instruments i and j.
func (c *CovarianceMatrix) At(i, j int) float64 { return c.sym.At(i, j) }

// Variance returns the variance of the i-th instrument.
func (c *CovarianceMatrix) Variance(i int) float64 { return c.sym.At(i, i) }

// Name returns the label of the i-th instrument.
func (c *CovarianceMatrix) Name(i int) string { return label(c.names, i) }

// Rows returns a copy of the matrix as a slice of rows.
func (c *CovarianceMatrix) Rows() [][]float64 {
	n := c.Len()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = c.sym.At(i, j)
		}
	}
	return rows
}

// QuadForm returns wᵗΣw, the variance of a portfolio holding the instruments
// with weights w.
//
// Weights are used as is, they are not normalized.
func (c *CovarianceMatrix) QuadForm(w Weights) (float64, error) {
	n := c.Len()
	if len(w) != n {
		return 0, fmt.Errorf("got %d weights for %d instruments: %w", len(w), n, ErrDimensionMismatch)
	}
	v := mat.NewVecDense(n, slices.Clone(w))
	return mat.Inner(v, c.sym, v), nil
}
