package riskstat

import "errors"

// Errors reported by the package. They are always wrapped with some context,
// use errors.Is to test for them.
var (
	// ErrMalformedInput is returned when a price table is not a rectangular
	// table of numbers with a named column per instrument.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInsufficientData is returned when a statistic is requested on too
	// few observations: no value for a mean, less than two for a variance
	// or a covariance.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDomain is returned when a value is outside of the domain of the
	// computation, like a non positive price for a log return.
	ErrDomain = errors.New("domain error")

	// ErrDimensionMismatch is returned when two sequences that must be
	// aligned have different lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
