package riskstat

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/etnz/riskstat/date"
)

// objectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type objectWriter struct {
	bytes.Buffer
	err error
}

// Append adds key:value to the object, value being encoded with json.Marshal.
// The first error is kept and reported by MarshalJSON.
func (w *objectWriter) Append(key string, value any) *objectWriter {
	if w.err != nil {
		return w
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return w
	}
	if w.Len() > 0 {
		w.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.Write(k)
	w.WriteByte(':')
	w.Write(v)
	return w
}

// Flag appends key:true when b is set, and nothing otherwise.
func (w *objectWriter) Flag(key string, b bool) *objectWriter {
	if !b {
		return w
	}
	return w.Append(key, true)
}

// Period appends the bounds of r and its length in days, when r is known.
func (w *objectWriter) Period(r date.Range) *objectWriter {
	if r.From.IsZero() {
		return w
	}
	return w.Append("from", r.From).Append("to", r.To).Append("days", r.Days())
}

// MarshalJSON returns the object written so far.
func (w *objectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return append(append([]byte{'{'}, w.Bytes()...), '}'), nil
}

func (a AssetStats) MarshalJSON() ([]byte, error) {
	var w objectWriter
	return w.Append("name", a.Name).
		Append("observations", a.Observations).
		Append("mean", a.Mean).
		Append("variance", a.Variance).
		MarshalJSON()
}

func (c *CovarianceMatrix) MarshalJSON() ([]byte, error) {
	names := make([]string, c.Len())
	for i := range names {
		names[i] = c.Name(i)
	}
	var w objectWriter
	return w.Append("names", names).Append("matrix", c.Rows()).MarshalJSON()
}

func (p PortfolioSummary) MarshalJSON() ([]byte, error) {
	var w objectWriter
	return w.Append("return", p.Return).
		Append("variance", p.Variance).
		Append("stddev", p.StdDev).
		Flag("clamped", p.Clamped).
		MarshalJSON()
}

// MarshalJSON encodes the report with a stable field order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var w objectWriter
	return w.Period(r.Period).
		Append("rows", r.Rows).
		Append("assets", r.Assets).
		Append("covariance", r.Covariance).
		Append("weights", r.Weights).
		Append("portfolio", r.Portfolio).
		MarshalJSON()
}

var (
	_ json.Marshaler = (*Report)(nil)
	_ json.Marshaler = (*CovarianceMatrix)(nil)
)
