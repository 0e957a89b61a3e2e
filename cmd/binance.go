package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/inwestomat/binance"
	"github.com/google/subcommands"
)

type binanceCmd struct {
	cfg    *Config
	output string
}

func (*binanceCmd) Name() string     { return "binance" }
func (*binanceCmd) Synopsis() string { return "convert a Binance trade history into a ledger" }
func (*binanceCmd) Usage() string {
	return `inw binance [-o <ledger.csv>] <trades.xlsx>

  Converts the spot trade history exported from Binance (xlsx) into Inwestomat
  ledger rows. Every trade becomes a SELL of the given asset and a BUY of the
  received one, both valued in PLN at the Binance price of the trade second.
`
}

func (c *binanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *binanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one trade history file is required")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	file, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trade history: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	client := binance.NewClient(c.cfg.Binance.URL, c.cfg.Binance.RPS)
	data, n, err := encode(binance.Convert(ctx, binance.ReadTransactions(file), client.Price))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %q: %v\n", input, err)
		return subcommands.ExitFailure
	}
	if err := writeOutput(c.output, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("%d ledger rows written from %s", n, input)
	return subcommands.ExitSuccess
}
