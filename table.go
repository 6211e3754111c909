package riskstat

import (
	"fmt"

	"github.com/etnz/riskstat/date"
)

// Instrument is a named price series.
type Instrument struct {
	Name   string
	Prices []float64 // one price per row of the table, oldest first
}

// PriceTable is a rectangular table of prices: one row per time step, one
// column per instrument. Rows are aligned: the same index is the same date
// for every instrument.
type PriceTable struct {
	Labels      []string // row labels (usually dates), optional
	Instruments []Instrument
}

// Names returns the instrument names, in column order.
func (t *PriceTable) Names() []string {
	names := make([]string, len(t.Instruments))
	for i, in := range t.Instruments {
		names[i] = in.Name
	}
	return names
}

// Rows returns the number of rows in the table.
func (t *PriceTable) Rows() int {
	if len(t.Instruments) == 0 {
		return len(t.Labels)
	}
	return len(t.Instruments[0].Prices)
}

// Validate checks the shape of the table: at least one named instrument,
// unique names, at least one row and the same number of rows in every
// column. It does not check the price values, that is the job of LogReturns.
func (t *PriceTable) Validate() error {
	if len(t.Instruments) == 0 {
		return fmt.Errorf("no instrument in table: %w", ErrMalformedInput)
	}
	rows := t.Rows()
	if rows == 0 {
		return fmt.Errorf("empty price history: %w", ErrMalformedInput)
	}
	if t.Labels != nil && len(t.Labels) != rows {
		return fmt.Errorf("got %d row labels for %d rows: %w", len(t.Labels), rows, ErrMalformedInput)
	}
	seen := make(map[string]bool, len(t.Instruments))
	for i, in := range t.Instruments {
		if in.Name == "" {
			return fmt.Errorf("instrument in column %d has no name: %w", i+1, ErrMalformedInput)
		}
		if seen[in.Name] {
			return fmt.Errorf("duplicate instrument %q: %w", in.Name, ErrMalformedInput)
		}
		seen[in.Name] = true
		if len(in.Prices) != rows {
			return fmt.Errorf("instrument %q has %d prices, want %d: %w", in.Name, len(in.Prices), rows, ErrMalformedInput)
		}
	}
	return nil
}

// Period returns the range of dates covered by the table, if every row label
// is a date.
func (t *PriceTable) Period() (r date.Range, ok bool) {
	if len(t.Labels) == 0 {
		return r, false
	}
	for i, l := range t.Labels {
		on, err := date.Parse(l)
		if err != nil {
			return date.Range{}, false
		}
		if i == 0 || on.Before(r.From) {
			r.From = on
		}
		if i == 0 || on.After(r.To) {
			r.To = on
		}
	}
	return r, true
}
