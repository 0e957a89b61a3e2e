// Package cmd implements the CLI application converting broker exports into
// an Inwestomat ledger.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inwestomat"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// stdout is where ledgers and reports go when no output file is given.
var stdout io.Writer = os.Stdout

// Register the subcommands, with flag defaults taken from cfg.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *Config) {
	c.Register(&binanceCmd{cfg: cfg}, "convert")
	c.Register(&xtbCmd{cfg: cfg}, "convert")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&summaryCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
}

// encode converts every transaction in txs into ledger rows.
//
// Nothing is returned unless all transactions converted.
func encode(txs iter.Seq2[inwestomat.Transaction, error]) ([]byte, int, error) {
	var buf bytes.Buffer
	enc := inwestomat.NewEncoder(&buf)
	n := 0
	for tx, err := range txs {
		if err != nil {
			return nil, 0, err
		}
		if err := enc.Encode(tx); err != nil {
			return nil, 0, err
		}
		n++
	}
	if err := enc.Flush(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), n, nil
}

// writeOutput writes data to the file name, or to stdout if name is empty or "-".
func writeOutput(name string, data []byte) error {
	if name == "" || name == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("error writing %q: %w", name, err)
	}
	return nil
}

// printMarkdown renders md for the terminal, or prints it as is when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
