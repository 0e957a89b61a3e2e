// Package binance converts Binance spot trade history into ledger transactions.
//
// Binance trades exchange one crypto asset for another, so the ledger sees each
// trade as two transactions: the SELL of the asset given away and the BUY of
// the asset received, both valued in PLN at the time of the trade.
package binance

import (
	"errors"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownSide is returned for a trade that is neither a BUY nor a SELL.
	ErrUnknownSide = errors.New("unknown trade side")
	// ErrUnknownQuoteAsset is returned for a market whose quote asset is not known.
	ErrUnknownQuoteAsset = errors.New("unknown quote asset")
	// ErrNoPrice is returned when Binance has no price for a market at a given instant.
	ErrNoPrice = errors.New("no price")
	// ErrPrecondition is returned when a price is requested for an instant
	// that is not in UTC or not truncated to the second.
	ErrPrecondition = errors.New("invalid price instant")
)

// Tx is a single trade from the Binance trade history.
type Tx struct {
	Date    time.Time         // Date is in UTC, to the second.
	Market  inwestomat.Market // Market traded, e.g ADA priced in BTC.
	Type    inwestomat.TxType // Type is Buy or Sell, from the Base point of view.
	Amount  decimal.Decimal   // Amount of Base.
	Price   decimal.Decimal   // Price of one Base in Quote.
	Total   decimal.Decimal   // Total is the Quote amount.
	Fee     decimal.Decimal
	FeeCoin inwestomat.Ticker
}
