package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/shopspring/decimal"
)

func TestSummaryMarkdown(t *testing.T) {
	at := time.Date(2024, time.May, 5, 0, 34, 9, 0, time.UTC)
	total := decimal.RequireFromString("44.6027904")
	s := &inwestomat.Summary{
		Rows:  2,
		First: at,
		Last:  at.Add(48 * time.Hour),
		ByType: []inwestomat.Tally{
			{Key: "Zakup", Rows: 1, Total: total, Fees: decimal.RequireFromString("0.0446027904")},
			{Key: "Sprzedaż", Rows: 1, Total: total},
		},
		ByTicker: []inwestomat.Tally{
			{Key: "CURRENCY:ADAPLN", Rows: 1, Total: total},
			{Key: "CURRENCY:BTCPLN", Rows: 1, Total: total},
		},
	}
	got := SummaryMarkdown(s)
	for _, want := range []string{
		"# Ledger Summary",
		"2 rows from 2024-05-05 02:34:09 to 2024-05-07 02:34:09.",
		"## By Type",
		"Zakup",
		"Sprzedaż",
		inwestomat.PLN.Format(total),
		"## By Ticker",
		"CURRENCY:BTCPLN",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	got := SummaryMarkdown(inwestomat.NewSummary(nil))
	if !strings.Contains(got, "The ledger is empty.") {
		t.Errorf("SummaryMarkdown() = %q, want an empty ledger message", got)
	}
}

func TestSummaryMarkdown_TableRows(t *testing.T) {
	at := time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)
	s := inwestomat.NewSummary([]inwestomat.Transaction{{
		Date: at, Ticker: "Gotówka", Currency: inwestomat.PLN, Type: inwestomat.Deposit,
		Amount: inwestomat.One(), Price: inwestomat.One(), PLNRate: inwestomat.One(), NominalPrice: inwestomat.One(),
		TotalPLN: decimal.NewFromInt(405),
	}})
	got := SummaryMarkdown(s)
	for _, key := range []string{"Wpłata środków", "Gotówka"} {
		found := false
		for _, line := range strings.Split(got, "\n") {
			if strings.Contains(line, key) && strings.HasPrefix(strings.TrimSpace(line), "|") {
				found = true
			}
		}
		if !found {
			t.Errorf("SummaryMarkdown() has no table row for %q:\n%s", key, got)
		}
	}
}
