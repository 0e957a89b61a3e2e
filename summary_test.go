package inwestomat

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewSummary(t *testing.T) {
	txs := sampleLedger()
	got := NewSummary(txs)

	if got.Rows != len(txs) {
		t.Errorf("Rows = %d, want %d", got.Rows, len(txs))
	}
	for _, tx := range txs {
		if tx.Date.Before(got.First) || tx.Date.After(got.Last) {
			t.Errorf("row on %v is outside [%v, %v]", tx.Date, got.First, got.Last)
		}
	}

	var rows int
	for i, tally := range got.ByType {
		rows += tally.Rows
		if i > 0 {
			prev, _ := ParseTxType(got.ByType[i-1].Key)
			cur, _ := ParseTxType(tally.Key)
			if indexOf(prev) > indexOf(cur) {
				t.Errorf("ByType is not in TxTypes order: %q before %q", prev, cur)
			}
		}
	}
	if rows != len(txs) {
		t.Errorf("ByType counts %d rows, want %d", rows, len(txs))
	}
	for i := 1; i < len(got.ByTicker); i++ {
		if got.ByTicker[i-1].Key >= got.ByTicker[i].Key {
			t.Errorf("ByTicker is not sorted: %q before %q", got.ByTicker[i-1].Key, got.ByTicker[i].Key)
		}
	}
}

func indexOf(typ TxType) int {
	for i, t := range TxTypes {
		if t == typ {
			return i
		}
	}
	return -1
}

func TestNewSummary_Totals(t *testing.T) {
	at := time.Date(2024, time.May, 5, 0, 34, 9, 0, time.UTC)
	txs := []Transaction{
		{Date: at, Ticker: "CURRENCY:BTCPLN", Type: Sell, TotalPLN: d("44.6027904"), Fee: d("0")},
		{Date: at, Ticker: "CURRENCY:ADAPLN", Type: Buy, TotalPLN: d("44.6027904"), Fee: d("0.0446027904")},
		{Date: at.Add(time.Hour), Ticker: "CURRENCY:ADAPLN", Type: Buy, TotalPLN: d("10"), Fee: d("0.01")},
	}
	got := NewSummary(txs)
	want := &Summary{
		Rows:  3,
		First: at,
		Last:  at.Add(time.Hour),
		ByType: []Tally{
			{Key: "Zakup", Rows: 2, Total: d("54.6027904"), Fees: d("0.0546027904")},
			{Key: "Sprzedaż", Rows: 1, Total: d("44.6027904"), Fees: d("0")},
		},
		ByTicker: []Tally{
			{Key: "CURRENCY:ADAPLN", Rows: 2, Total: d("54.6027904"), Fees: d("0.0546027904")},
			{Key: "CURRENCY:BTCPLN", Rows: 1, Total: d("44.6027904"), Fees: d("0")},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSummary_Empty(t *testing.T) {
	got := NewSummary(nil)
	if got.Rows != 0 || len(got.ByType) != 0 || len(got.ByTicker) != 0 || !got.First.IsZero() {
		t.Errorf("NewSummary(nil) = %+v, want an empty summary", got)
	}
}
