package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
//
// Install it with `COMP_INSTALL=1 fms`.
func completion() *complete.Command {
	csvFiles := predict.Files("*.csv")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"env-file":  predict.Files("*"),
			"data-file": predict.Files("*.db"),
			"currency":  predict.Set{"USD", "EUR", "GBP", "CHF"},
		},
		Sub: map[string]*complete.Command{
			"menu": {Args: csvFiles},
			"list": {Flags: map[string]complete.Predictor{
				"plain": predict.Nothing,
				"md":    predict.Nothing,
			}},
			"add":    {Flags: map[string]complete.Predictor{"csv": predict.Something}},
			"remove": {Args: predict.Something},
			"spend":  {Args: predict.Something},
			"import": {
				Flags: map[string]complete.Predictor{"f": predict.Nothing},
				Args:  csvFiles,
			},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"csv", "jsonl"},
				"o":      predict.Files("*"),
			}},
			"topic":    {Args: predict.Set{"budget", "import", "menu", "snapshot"}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
