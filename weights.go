package riskstat

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

// Weights is the share of a portfolio held in each instrument, in the
// instrument order.
//
// Weights are not required to sum to 1 and are never normalized: the
// portfolio formulas use them as given.
type Weights []float64

// EqualWeights returns n weights of 1/n.
func EqualWeights(n int) Weights {
	w := make(Weights, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

// Sum returns the sum of the weights.
func (w Weights) Sum() float64 { return floats.Sum(w) }

// IsConvex reports whether the weights sum to 1 within tolerance.
func (w Weights) IsConvex(tolerance float64) bool {
	return math.Abs(w.Sum()-1) <= tolerance
}

// ParseWeights parses a weight list for the instruments 'names'.
//
// The list is either positional: "0.5,0.3,0.2", one weight per instrument in
// order, or named: "AAA=0.5,BBB=0.3,CCC=0.2", where every instrument must
// appear exactly once. An empty list means equal weights.
func ParseWeights(s string, names []string) (Weights, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("cannot weight an empty set of instruments: %w", ErrInsufficientData)
		}
		return EqualWeights(len(names)), nil
	}

	items := strings.Split(s, ",")
	if !strings.Contains(s, "=") {
		if len(items) != len(names) {
			return nil, fmt.Errorf("got %d weights for %d instruments: %w", len(items), len(names), ErrDimensionMismatch)
		}
		w := make(Weights, len(items))
		for i, item := range items {
			x, err := parseWeight(item)
			if err != nil {
				return nil, err
			}
			w[i] = x
		}
		return w, nil
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	w := make(Weights, len(names))
	seen := make([]bool, len(names))
	for _, item := range items {
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("weight %q: want <name>=<weight>: %w", item, ErrMalformedInput)
		}
		name = strings.TrimSpace(name)
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("weight for unknown instrument %q: %w", name, ErrMalformedInput)
		}
		if seen[i] {
			return nil, fmt.Errorf("instrument %q is weighted twice: %w", name, ErrMalformedInput)
		}
		x, err := parseWeight(value)
		if err != nil {
			return nil, err
		}
		w[i], seen[i] = x, true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("missing weight for instrument %q: %w", names[i], ErrDimensionMismatch)
		}
	}
	return w, nil
}

func parseWeight(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", s, ErrMalformedInput)
	}
	return d.InexactFloat64(), nil
}
