// Package riskstat computes mean-variance statistics of a basket of
// securities from their historical prices.
//
// The computation is a short pipeline:
//   - Return Transform: each price series is turned into its log returns
//     with [LogReturns].
//   - Statistics Estimators: [Mean], [Variance] and [Covariance] of the log
//     returns, using sample (N-1) estimators.
//   - Portfolio Aggregation: the expected return of a weighted portfolio is
//     the weighted sum of the means, its variance is the quadratic form
//     wᵗΣw over the [CovarianceMatrix].
//
// [DecodePriceTable] reads prices from CSV, and an [Analyzer] runs the whole
// pipeline into a [Report].
//
// Every function fails fast: too few observations, a non positive price or
// mismatched lengths are reported as errors (see [ErrInsufficientData],
// [ErrDomain], [ErrDimensionMismatch] and [ErrMalformedInput]) rather than
// replaced by a default value.
//
// This package serves as the foundational logic for the `prisk` command-line
// tool.
package riskstat
