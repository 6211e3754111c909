package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/riskstat"
	md "github.com/nao1215/markdown"
)

// ReturnsMarkdown renders the log returns of every instrument, one row per
// period. labels are the row labels of the price table, the return realized
// between row i and i+1 is labelled with row i+1.
func ReturnsMarkdown(labels, names []string, returns [][]float64, precision int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	num := formatter(precision)

	doc.H1("Log Returns")

	periods := 0
	if len(returns) > 0 {
		periods = len(returns[0])
	}
	if periods == 0 {
		doc.PlainText("No return: at least two prices per stock are needed.")
		return doc.String()
	}

	rows := make([][]string, periods)
	for i := range rows {
		label := fmt.Sprintf("#%d", i+1)
		if i+1 < len(labels) {
			label = labels[i+1]
		}
		row := []string{label}
		for _, series := range returns {
			row = append(row, num(series[i]))
		}
		rows[i] = row
	}
	doc.Table(md.TableSet{
		Header: append([]string{"Date"}, names...),
		Rows:   rows,
	})
	return doc.String()
}

// WeightsMarkdown renders a weight vector.
func WeightsMarkdown(names []string, w riskstat.Weights, precision int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	num := formatter(precision)

	doc.H1("Portfolio Weights")

	rows := make([][]string, len(w))
	for i, x := range w {
		rows[i] = []string{names[i], num(x)}
	}
	doc.Table(md.TableSet{
		Header: []string{"Stock", "Weight"},
		Rows:   rows,
	})
	doc.LF()
	doc.PlainText(fmt.Sprintf("Sum: %s", num(w.Sum())))
	if !w.IsConvex(riskstat.WeightTolerance) {
		doc.PlainText("Weights do not sum to 1, they are used as is.")
	}
	return doc.String()
}
