package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inwestomat"
	"github.com/etnz/inwestomat/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	raw bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of a ledger file" }
func (*summaryCmd) Usage() string {
	return `inw summary [-raw] <ledger.csv>

  Displays the number of rows, the PLN totals and the fees of a ledger,
  by transaction type and by ticker.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the markdown report without rendering it.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ledger file is required")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	txs, err := decodeLedgerFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	doc := renderer.SummaryMarkdown(inwestomat.NewSummary(txs))
	if c.raw {
		fmt.Fprint(stdout, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
