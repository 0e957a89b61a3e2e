package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/inwestomat"
	"github.com/etnz/inwestomat/nbp"
	"github.com/etnz/inwestomat/xtb"
	"github.com/google/subcommands"
)

type xtbCmd struct {
	cfg      *Config
	currency string
	output   string
}

func (*xtbCmd) Name() string     { return "xtb" }
func (*xtbCmd) Synopsis() string { return "convert an XTB cash operations history into a ledger" }
func (*xtbCmd) Usage() string {
	return `inw xtb [-c <currency>] [-o <ledger.csv>] <cash_operations.csv>

  Converts the cash operations exported from an XTB account (semicolon
  separated) into Inwestomat ledger rows. For an account not in PLN, every
  operation is mirrored on the account currency, valued at the NBP rate of
  the previous business day.
`
}

func (c *xtbCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", c.cfg.Currency, "Account currency: PLN, USD, EUR, GBP or CHF.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *xtbCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one cash operations file is required")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	currency, err := inwestomat.ParseCurrency(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	file, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cash operations: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	rates := nbp.NewClient(c.cfg.NBP.URL)
	data, n, err := encode(xtb.Convert(ctx, xtb.ReadTransactions(file), currency, rates.Rate))
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
