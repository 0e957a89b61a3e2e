package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/inwestomat"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates, merges and formats ledger files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `inw fmt [-o <ledger.csv>] <ledger.csv>...

  Validates and merges ledger files. This command reads all rows, sorts them
  by date (rows of the same date keep their order) and writes them back with
  minimal numbers and CRLF line endings.

Usage Examples:
# Merges the Binance and XTB ledgers into a single one.
$ inw fmt -o all.csv binance.csv xtb.csv
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to the standard output.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ledger file is required")
		fmt.Fprint(os.Stderr, p.Usage())
		return subcommands.ExitUsageError
	}

	var txs []inwestomat.Transaction
	for _, name := range f.Args() {
		ledger, err := decodeLedgerFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		txs = append(txs, ledger...)
	}
	slices.SortStableFunc(txs, func(a, b inwestomat.Transaction) int { return a.Date.Compare(b.Date) })

	var buf bytes.Buffer
	if err := inwestomat.EncodeLedger(&buf, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeOutput(p.output, buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// decodeLedgerFile reads all rows of the ledger file name.
func decodeLedgerFile(name string) ([]inwestomat.Transaction, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger: %w", err)
	}
	defer file.Close()

	txs, err := inwestomat.DecodeLedger(file)
	if err != nil {
		return nil, fmt.Errorf("error decoding ledger %q: %w", name, err)
	}
	return txs, nil
}
