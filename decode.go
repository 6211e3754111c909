package riskstat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains the price table import format.

// DecodePriceTable reads a price table from 'r' in CSV format.
//
// The first record is the header: the first column is the row label (usually
// a date) and is otherwise ignored, the other columns name the instruments.
// Every following record holds the label and one decimal price per
// instrument.
//
// Any deviation from that shape fails with ErrMalformedInput and the line
// number. Prices are not checked for positivity here.
func DecodePriceTable(r io.Reader) (*PriceTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked below, with a better message
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file, want a header line: %w", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %v: %w", err, ErrMalformedInput)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header %q has no instrument column: %w", strings.Join(header, ","), ErrMalformedInput)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	t := &PriceTable{
		Labels:      make([]string, 0),
		Instruments: make([]Instrument, len(header)-1),
	}
	for i, name := range header[1:] {
		t.Instruments[i].Name = strings.TrimSpace(name)
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read prices: %v: %w", err, ErrMalformedInput)
		}
		line, _ := cr.FieldPos(0)
		if len(record) != len(header) {
			return nil, fmt.Errorf("line %d: got %d fields, want %d: %w", line, len(record), len(header), ErrMalformedInput)
		}
		t.Labels = append(t.Labels, strings.TrimSpace(record[0]))
		for i, field := range record[1:] {
			price, err := decimal.NewFromString(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid price %q for %q: %w", line, field, t.Instruments[i].Name, ErrMalformedInput)
			}
			p := price.InexactFloat64()
			if math.IsInf(p, 0) || (p == 0 && !price.IsZero()) {
				return nil, fmt.Errorf("line %d: price %q for %q is out of range: %w", line, field, t.Instruments[i].Name, ErrMalformedInput)
			}
			t.Instruments[i].Prices = append(t.Instruments[i].Prices, p)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
