package cmd

import (
	"github.com/etnz/inwestomat"
	"github.com/etnz/inwestomat/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the inw command line.
func Completion() *complete.Command {
	currencies := make(predict.Set, 0, len(inwestomat.Currencies))
	for _, c := range inwestomat.Currencies {
		currencies = append(currencies, string(c))
	}
	ledgers := predict.Files("*.csv")

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"binance": {
				Flags: map[string]complete.Predictor{"o": ledgers},
				Args:  predict.Files("*.xlsx"),
			},
			"xtb": {
				Flags: map[string]complete.Predictor{"c": currencies, "o": ledgers},
				Args:  predict.Files("*.csv"),
			},
			"fmt": {
				Flags: map[string]complete.Predictor{"o": ledgers},
				Args:  ledgers,
			},
			"summary": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  ledgers,
			},
			"topic": {
				Args: topics(),
			},
			"help":     {},
			"commands": {},
			"flags":    {},
		},
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
	}
}

// topics predicts documentation topic names.
func topics() predict.Set {
	names, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(predict.Set{"*", docs.Readme}, names...)
}
