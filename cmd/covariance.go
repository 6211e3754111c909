package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
)

type covarianceCmd struct{}

func (*covarianceCmd) Name() string     { return "covariance" }
func (*covarianceCmd) Synopsis() string { return "display the covariance matrix of the stocks" }
func (*covarianceCmd) Usage() string {
	return `prisk [-prices-file <file>] covariance

  Displays the sample covariance matrix of the log returns of the stocks.
  The diagonal holds the variance of each stock.
`
}

func (c *covarianceCmd) SetFlags(f *flag.FlagSet) {}

func (c *covarianceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := DecodePriceTable()
	if err != nil {
		fmt.Fprintf(stderr, "Error decoding prices %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}

	returns, err := riskstat.NewAnalyzer(Logger()).Returns(table)
	if err != nil {
		fmt.Fprintf(stderr, "Error computing returns: %v\n", err)
		return subcommands.ExitFailure
	}
	cov, err := riskstat.NewCovarianceMatrix(table.Names(), returns)
	if err != nil {
		fmt.Fprintf(stderr, "Error computing covariance matrix: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderCovariance(&riskstat.Report{Covariance: cov}, renderer.ReportRenderOptions{Precision: *precision}))
	return subcommands.ExitSuccess
}
