package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	json           bool
	skipCovariance bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display stock and portfolio statistics of log returns" }
func (*statsCmd) Usage() string {
	return `prisk [-prices-file <file>] [-w <weights>] stats [-json] [-no-cov]

  Displays, for each stock, the mean and variance of its log returns, the
  covariance matrix of the stocks, and the expected return, variance and
  standard deviation of the weighted portfolio.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
	f.BoolVar(&c.skipCovariance, "no-cov", false, "do not print the covariance matrix")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, w, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}

	report, err := riskstat.NewAnalyzer(Logger()).Analyze(table, w)
	if err != nil {
		fmt.Fprintf(stderr, "Error analyzing %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}

	if c.json {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderReport(report, renderer.ReportRenderOptions{
		Precision:      *precision,
		SkipCovariance: c.skipCovariance,
	}))
	return subcommands.ExitSuccess
}
