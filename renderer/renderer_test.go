package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/date"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// sampleReport returns a report with round numbers: returns {1,3} and {4,0}.
func sampleReport(t *testing.T) *riskstat.Report {
	t.Helper()
	cov, err := riskstat.NewCovarianceMatrix([]string{"A", "B"}, [][]float64{{1, 3}, {4, 0}})
	if err != nil {
		t.Fatalf("NewCovarianceMatrix() unexpected error: %v", err)
	}
	return &riskstat.Report{
		Rows: 3,
		Assets: []riskstat.AssetStats{
			{Name: "A", Observations: 2, Mean: 2, Variance: 2},
			{Name: "B", Observations: 2, Mean: 2, Variance: 8},
		},
		Covariance: cov,
		Weights:    riskstat.Weights{0.5, 0.5},
		Portfolio:  riskstat.PortfolioSummary{Return: 2, Variance: 0.5, StdDev: 0.7071067811865476},
	}
}

const wantReport = `# Portfolio Risk Statistics

3 prices per stock.

## Stock Statistics (Log Returns)

| Stock | Weight | Returns | Mean | Variance |
|:------|-------:|--------:|-----:|---------:|
| A | 0.5 | 2 | 2 | 2 |
| B | 0.5 | 2 | 2 | 8 |

## Covariance Matrix

| | A | B |
|:--|--:|--:|
| **A** | 2 | -4 |
| **B** | -4 | 8 |

## Portfolio

| Metric | Value |
|:-------|------:|
| Expected Return | 2 |
| Risk (Variance) | 0.5 |
| Risk (Std Dev) | 0.707107 |

Weights sum to 1.
`

func TestRenderReport(t *testing.T) {
	got := RenderReport(sampleReport(t), ReportRenderOptions{})
	if got != wantReport {
		t.Errorf("output mismatch:\n--- want\n%s\n+++ got\n%s", wantReport, got)
	}
}

func TestRenderReport_Period(t *testing.T) {
	r := sampleReport(t)
	r.Period = date.Range{From: date.New(2025, 1, 2), To: date.New(2025, 1, 6)}
	got := RenderReport(r, ReportRenderOptions{})
	if want := "From 2025-01-02 to 2025-01-06: 3 prices per stock.\n"; !strings.Contains(got, want) {
		t.Errorf("RenderReport() = %q, want it to contain %q", got, want)
	}
}

func TestRenderReport_Precision(t *testing.T) {
	got := RenderReport(sampleReport(t), ReportRenderOptions{Precision: 2})
	if want := "| Risk (Std Dev) | 0.71 |"; !strings.Contains(got, want) {
		t.Errorf("RenderReport() = %q, want it to contain %q", got, want)
	}
}

func TestRenderReport_Clamped(t *testing.T) {
	r := sampleReport(t)
	r.Portfolio = riskstat.PortfolioSummary{Return: 2, Variance: -1e-19, StdDev: 0, Clamped: true}
	got := RenderReport(r, ReportRenderOptions{})
	if want := "> Warning: the variance is negative because of rounding"; !strings.Contains(got, want) {
		t.Errorf("RenderReport() = %q, want it to contain %q", got, want)
	}
}

func TestRenderReport_SkipCovariance(t *testing.T) {
	got := RenderReport(sampleReport(t), ReportRenderOptions{SkipCovariance: true})
	if strings.Contains(got, "Covariance Matrix") {
		t.Errorf("RenderReport() with SkipCovariance rendered the matrix:\n%s", got)
	}
	if !strings.Contains(got, "## Portfolio") {
		t.Errorf("RenderReport() with SkipCovariance lost the portfolio section:\n%s", got)
	}
}

func TestRenderCovariance(t *testing.T) {
	got := RenderCovariance(sampleReport(t), ReportRenderOptions{})
	want := "## Covariance Matrix\n\n| | A | B |\n|:--|--:|--:|\n| **A** | 2 | -4 |\n| **B** | -4 | 8 |\n"
	if got != want {
		t.Errorf("RenderCovariance() = %q, want %q", got, want)
	}
}

// outline parses markdown and returns its headings and number of tables.
func outline(t *testing.T, doc string) (headings []string, tables int) {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTable:
			tables++
		case ast.KindHeading:
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(src))
				}
			}
			headings = append(headings, b.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return headings, tables
}

func TestRenderReport_Markdown(t *testing.T) {
	table, err := riskstat.DecodePriceTable(strings.NewReader("Date,AAA,BBB,CCC\n2025-01-02,100,50,10\n2025-01-03,101,51,11\n2025-01-06,102,49,10.5\n2025-01-07,99,52,10.7\n"))
	if err != nil {
		t.Fatalf("DecodePriceTable() unexpected error: %v", err)
	}
	report, err := riskstat.NewAnalyzer(zerolog.Nop()).Analyze(table, nil)
	if err != nil {
		t.Fatalf("Analyze() unexpected error: %v", err)
	}

	headings, tables := outline(t, RenderReport(report, ReportRenderOptions{}))

	want := []string{"Portfolio Risk Statistics", "Stock Statistics (Log Returns)", "Covariance Matrix", "Portfolio"}
	if strings.Join(headings, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", headings, want)
	}
	if tables != 3 {
		t.Errorf("got %d tables, want 3", tables)
	}
}

func TestReturnsMarkdown(t *testing.T) {
	got := ReturnsMarkdown(
		[]string{"2025-01-02", "2025-01-03", "2025-01-06"},
		[]string{"AAA", "BBB"},
		[][]float64{{0.01, -0.02}, {0.5, 0.25}},
		0,
	)
	for _, want := range []string{"# Log Returns", "AAA", "BBB", "2025-01-03", "2025-01-06", "0.01", "-0.02", "0.25"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReturnsMarkdown() = %q, want it to contain %q", got, want)
		}
	}
	if strings.Contains(got, "2025-01-02") {
		t.Errorf("ReturnsMarkdown() = %q, the first date has no return", got)
	}
}

func TestReturnsMarkdown_NoReturn(t *testing.T) {
	got := ReturnsMarkdown([]string{"2025-01-02"}, []string{"AAA"}, [][]float64{{}}, 0)
	if want := "No return"; !strings.Contains(got, want) {
		t.Errorf("ReturnsMarkdown() = %q, want it to contain %q", got, want)
	}
}

func TestWeightsMarkdown(t *testing.T) {
	got := WeightsMarkdown([]string{"AAA", "BBB"}, riskstat.Weights{0.25, 0.75}, 0)
	for _, want := range []string{"# Portfolio Weights", "AAA", "0.25", "0.75", "Sum: 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("WeightsMarkdown() = %q, want it to contain %q", got, want)
		}
	}
	if strings.Contains(got, "do not sum to 1") {
		t.Errorf("WeightsMarkdown() = %q, warned on convex weights", got)
	}

	got = WeightsMarkdown([]string{"AAA", "BBB"}, riskstat.Weights{1, 1}, 0)
	if want := "Weights do not sum to 1"; !strings.Contains(got, want) {
		t.Errorf("WeightsMarkdown() = %q, want it to contain %q", got, want)
	}
}
