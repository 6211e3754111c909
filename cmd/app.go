// Package cmd implements the CLI application computing portfolio risk statistics.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/riskstat"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Environment variables providing defaults for the global flags.
const (
	EnvPricesFile = "PRISK_PRICES_FILE"
	EnvWeights    = "PRISK_WEIGHTS"
	EnvPrecision  = "PRISK_PRECISION"
	EnvVerbose    = "PRISK_VERBOSE"
	EnvPlain      = "PRISK_PLAIN"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	pricesFile = flag.String("prices-file", "stock_prices.csv", "Path to the CSV price file: a header 'Date,Stock1,Stock2,...' then one row of prices per date.")
	weights    = flag.String("w", "", "Portfolio weights, positional '0.5,0.5' or named 'AAA=0.5,BBB=0.5'. Defaults to equal weights.")
	precision  = flag.Int("precision", 6, "Number of significant digits in reports.")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")
	verbose    = flag.Bool("v", false, "Log debug information on stderr.")
)

// envFlags maps the global flags to the environment variable setting their default.
var envFlags = map[string]string{
	"prices-file": EnvPricesFile,
	"w":           EnvWeights,
	"precision":   EnvPrecision,
	"plain":       EnvPlain,
	"v":           EnvVerbose,
}

// stdout and stderr are variables so that tests can capture the output.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&statsCmd{},
	&returnsCmd{},
	&covarianceCmd{},
	&weightsCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		group := "statistics"
		if cmd.Name() == "topic" {
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// ApplyEnv sets the flags of 'fs' from their environment variable, if any.
// It must be called before parsing the command line, so that flags still win.
func ApplyEnv(fs *flag.FlagSet) error {
	for name, key := range envFlags {
		v, ok := os.LookupEnv(key)
		if !ok || fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}
	}
	return nil
}

// Logger returns the application logger, writing to stderr.
func Logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: *plain}).
		Level(level).
		With().Timestamp().
		Logger()
}

// DecodePriceTable decodes the price table from the app prices file.
func DecodePriceTable() (*riskstat.PriceTable, error) {
	f, err := os.Open(*pricesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return riskstat.DecodePriceTable(f)
}

// ParseWeights resolves the app weights for the instruments of 't'.
func ParseWeights(t *riskstat.PriceTable) (riskstat.Weights, error) {
	return riskstat.ParseWeights(*weights, t.Names())
}

// load decodes the price table and the weights, reporting errors on stderr.
func load() (*riskstat.PriceTable, riskstat.Weights, subcommands.ExitStatus) {
	table, err := DecodePriceTable()
	if err != nil {
		fmt.Fprintf(stderr, "Error decoding prices %q: %v\n", *pricesFile, err)
		return nil, nil, subcommands.ExitFailure
	}
	w, err := ParseWeights(table)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing weights %q: %v\n", *weights, err)
		return nil, nil, subcommands.ExitUsageError
	}
	return table, w, subcommands.ExitSuccess
}

// printMarkdown prints markdown on stdout, rendered for the terminal unless -plain is set.
func printMarkdown(doc string) {
	if *plain {
		fmt.Fprint(stdout, doc)
		return
	}
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// fall back to the raw markdown, it is readable.
		fmt.Fprint(stdout, doc)
		return
	}
	fmt.Fprint(stdout, out)
}
