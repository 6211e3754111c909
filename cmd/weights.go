package cmd

import (
	"context"
	"flag"

	"github.com/etnz/riskstat/renderer"
	"github.com/google/subcommands"
)

type weightsCmd struct{}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "display the portfolio weights" }
func (*weightsCmd) Usage() string {
	return `prisk [-prices-file <file>] [-w <weights>] weights

  Displays the weight of each stock, as resolved from -w, and their sum.
  Weights are used as is: they are not normalized to sum to 1.
`
}

func (c *weightsCmd) SetFlags(f *flag.FlagSet) {}

func (c *weightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, w, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.WeightsMarkdown(table.Names(), w, *precision))
	return subcommands.ExitSuccess
}
