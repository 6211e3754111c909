package riskstat

import (
	"fmt"

	"github.com/etnz/riskstat/date"
	"github.com/rs/zerolog"
)

// WeightTolerance is how far from 1 the sum of the weights can be before the
// analyzer warns about it.
const WeightTolerance = 1e-9

// AssetStats holds the statistics of the log returns of a single instrument.
type AssetStats struct {
	Name         string
	Observations int // number of log returns
	Mean         float64
	Variance     float64
}

// Report is the result of the analysis of a price table.
type Report struct {
	Period     date.Range // zero unless every row label is a date
	Rows       int        // number of prices per instrument
	Assets     []AssetStats
	Covariance *CovarianceMatrix
	Weights    Weights
	Portfolio  PortfolioSummary
}

// HasPeriod reports whether the report covers a known range of dates.
func (r *Report) HasPeriod() bool { return !r.Period.From.IsZero() }

// Analyzer runs the whole pipeline: log returns, per instrument statistics,
// covariance matrix and portfolio aggregation.
type Analyzer struct {
	log zerolog.Logger
}

// NewAnalyzer creates a new analyzer logging into 'log'.
func NewAnalyzer(log zerolog.Logger) *Analyzer {
	return &Analyzer{log: log.With().Str("component", "analyzer").Logger()}
}

// Returns validates the table and computes the log returns of every
// instrument, in column order.
func (a *Analyzer) Returns(t *PriceTable) ([][]float64, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	returns := make([][]float64, len(t.Instruments))
	for i, in := range t.Instruments {
		r, err := LogReturns(in.Prices)
		if err != nil {
			return nil, fmt.Errorf("instrument %q: %w", in.Name, err)
		}
		returns[i] = r
	}
	a.log.Debug().
		Int("instruments", len(returns)).
		Int("rows", t.Rows()).
		Msg("Computed log returns")
	return returns, nil
}

// Analyze computes the full report for table 't' and weights 'w'.
//
// A nil 'w' means equal weights. Weights are not normalized, a sum away from
// 1 is only logged. Nothing is returned unless every statistic could be
// computed.
func (a *Analyzer) Analyze(t *PriceTable, w Weights) (*Report, error) {
	returns, err := a.Returns(t)
	if err != nil {
		return nil, err
	}
	names := t.Names()

	if w == nil {
		w = EqualWeights(len(names))
	}
	if len(w) != len(names) {
		return nil, fmt.Errorf("got %d weights for %d instruments: %w", len(w), len(names), ErrDimensionMismatch)
	}
	if !w.IsConvex(WeightTolerance) {
		a.log.Warn().
			Float64("sum", w.Sum()).
			Msg("Weights do not sum to 1, using them as is")
	}

	assets := make([]AssetStats, len(names))
	for i, series := range returns {
		mean, err := Mean(series)
		if err != nil {
			return nil, fmt.Errorf("instrument %q: %w", names[i], err)
		}
		variance, err := Variance(series)
		if err != nil {
			return nil, fmt.Errorf("instrument %q: %w", names[i], err)
		}
		assets[i] = AssetStats{Name: names[i], Observations: len(series), Mean: mean, Variance: variance}
	}

	cov, err := NewCovarianceMatrix(names, returns)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Int("size", cov.Len()).Msg("Built covariance matrix")

	ret, err := PortfolioReturn(returns, w)
	if err != nil {
		return nil, err
	}
	variance, err := cov.QuadForm(w)
	if err != nil {
		return nil, err
	}
	stddev, clamped := PortfolioStdDev(variance)
	if clamped {
		a.log.Warn().
			Float64("variance", variance).
			Msg("Negative portfolio variance from rounding, clamped to 0")
	}

	report := &Report{
		Rows:       t.Rows(),
		Assets:     assets,
		Covariance: cov,
		Weights:    w,
		Portfolio:  PortfolioSummary{Return: ret, Variance: variance, StdDev: stddev, Clamped: clamped},
	}
	event := a.log.Info()
	if period, ok := t.Period(); ok {
		report.Period = period
		event = event.Stringer("period", period)
	}
	event.
		Int("instruments", len(assets)).
		Float64("return", ret).
		Float64("stddev", stddev).
		Msg("Analyzed portfolio")
	return report, nil
}
