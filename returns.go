package riskstat

import (
	"fmt"
	"math"
)

// LogReturns converts a price series into its log returns.
//
// Element i is ln(prices[i+1]/prices[i]), so the result is one shorter than
// prices. A series of zero or one price has no transition and yields an
// empty series, not an error.
//
// Every price must be a strictly positive finite number, ErrDomain is
// returned otherwise.
func LogReturns(prices []float64) ([]float64, error) {
	for i, p := range prices {
		if !(p > 0) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("price #%d is %v, log returns need strictly positive prices: %w", i+1, p, ErrDomain)
		}
	}
	if len(prices) < 2 {
		return []float64{}, nil
	}
	// the ratio of two finite prices can overflow, their logs cannot.
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = math.Log(prices[i]) - math.Log(prices[i-1])
	}
	return returns, nil
}
