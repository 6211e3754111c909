package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/riskstat"
	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
)

type returnsCmd struct{}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display the log returns of each stock" }
func (*returnsCmd) Usage() string {
	return `prisk [-prices-file <file>] returns

  Displays the log return ln(p[t]/p[t-1]) of every stock for every date but the first.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.ReturnsMarkdown(table.Labels, table.Names(), returns, *precision))
	return subcommands.ExitSuccess
}
