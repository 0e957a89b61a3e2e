// Package renderer renders reports as markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/inwestomat"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a ledger summary.
func SummaryMarkdown(s *inwestomat.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger Summary")
	if s.Rows == 0 {
		doc.PlainText("The ledger is empty.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d rows from %s to %s.", s.Rows,
		s.First.In(inwestomat.Timezone).Format(inwestomat.DateTimeFormat),
		s.Last.In(inwestomat.Timezone).Format(inwestomat.DateTimeFormat)))

	doc.H2("By Type")
	doc.Table(tallyTable("Type", s.ByType))

	doc.H2("By Ticker")
	doc.Table(tallyTable("Ticker", s.ByTicker))

	return doc.String()
}

func tallyTable(key string, tallies []inwestomat.Tally) md.TableSet {
	table := md.TableSet{
		Header: []string{key, "Rows", "Total PLN", "Fees PLN"},
	}
	for _, t := range tallies {
		table.Rows = append(table.Rows, []string{
			t.Key,
			fmt.Sprint(t.Rows),
			inwestomat.PLN.Format(t.Total),
			inwestomat.PLN.Format(t.Fees),
		})
	}
	return table
}
