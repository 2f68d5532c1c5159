package cmd

import (
	"flag"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// fileFlags are flags whose value is a JSON file.
var fileFlags = map[string]bool{
	"store-file": true,
	"quotes":     true,
}

// Complete handles shell completion requests for the commands registered in
// commander, for the program 'name'. It returns only when the process is not a
// completion request.
func Complete(name string, commander *subcommands.Commander) {
	completion(commander).Complete(name)
}

// completion builds the completion tree of the commander: its global flags, and each
// command with its own flags.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	commander.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = flagPredictor(f.Name)
	})
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f.Name)
		})
		switch c.Name() {
		case "import":
			sub.Args = predict.Files("*.json")
		case "report":
			sub.Args = complete.PredictFunc(predictQuotes)
		case "topic":
			sub.Args = complete.PredictFunc(predictTopics)
		}
		root.Sub[c.Name()] = sub
	})
	return root
}

func flagPredictor(name string) complete.Predictor {
	switch {
	case name == "s":
		return complete.PredictFunc(predictSymbols)
	case fileFlags[name]:
		return predict.Files("*.json")
	case name == "v" || name == "accumulate":
		return predict.Nothing
	}
	return predict.Something
}

// predictSymbols lists the symbols in the store, or nothing if it cannot be read.
func predictSymbols(prefix string) []string {
	store, err := stocks.Load(*storeFile, *currency)
	if err != nil {
		return nil
	}
	var symbols []string
	for s := range store.Symbols() {
		symbols = append(symbols, s)
	}
	return symbols
}

// predictQuotes lists "SYMBOL=" for every symbol in the store.
func predictQuotes(prefix string) []string {
	symbols := predictSymbols(prefix)
	for i, s := range symbols {
		symbols[i] = s + "="
	}
	return symbols
}

func predictTopics(prefix string) []string {
	topics, err := docs.All()
	if err != nil {
		return nil
	}
	return append(topics, "*")
}
