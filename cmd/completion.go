package cmd

import (
	"flag"

	"github.com/etnz/riskstat/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(Commands))
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		flags := make(map[string]complete.Predictor)
		fs.VisitAll(func(f *flag.Flag) { flags[f.Name] = predict.Nothing })
		sub[c.Name()] = &complete.Command{Flags: flags}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		sub["topic"].Args = predict.Set(topics)
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"prices-file": predict.Files("*.csv"),
			"w":           predict.Something,
			"precision":   predict.Set{"2", "4", "6", "8", "10"},
			"plain":       predict.Nothing,
			"v":           predict.Nothing,
		},
	}
}
