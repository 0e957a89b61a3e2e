package inwestomat

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Summary is an overview of a ledger.
type Summary struct {
	Rows        int
	First, Last time.Time // First and Last are the dates of the oldest and the newest rows.
	ByType      []Tally   // ByType follows the order of TxTypes.
	ByTicker    []Tally   // ByTicker is sorted by ticker.
}

// Tally accumulates the rows of a group of transactions.
type Tally struct {
	Key   string
	Rows  int
	Total decimal.Decimal // Total is the sum of the rows' PLN totals.
	Fees  decimal.Decimal
}

func (t *Tally) add(tx Transaction) {
	t.Rows++
	t.Total = t.Total.Add(tx.TotalPLN)
	t.Fees = t.Fees.Add(tx.Fee)
}

// NewSummary returns the summary of txs.
func NewSummary(txs []Transaction) *Summary {
	s := &Summary{Rows: len(txs)}
	byType := make(map[TxType]*Tally)
	byTicker := make(map[Ticker]*Tally)
	for _, tx := range txs {
		if s.First.IsZero() || tx.Date.Before(s.First) {
			s.First = tx.Date
		}
		if tx.Date.After(s.Last) {
			s.Last = tx.Date
		}
		if byType[tx.Type] == nil {
			byType[tx.Type] = &Tally{Key: tx.Type.Label()}
		}
		byType[tx.Type].add(tx)
		if byTicker[tx.Ticker] == nil {
			byTicker[tx.Ticker] = &Tally{Key: string(tx.Ticker)}
		}
		byTicker[tx.Ticker].add(tx)
	}

	for _, typ := range TxTypes {
		if t, ok := byType[typ]; ok {
			s.ByType = append(s.ByType, *t)
		}
	}
	for _, t := range byTicker {
		s.ByTicker = append(s.ByTicker, *t)
	}
	slices.SortFunc(s.ByTicker, func(a, b Tally) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return s
}
