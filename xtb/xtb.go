// Package xtb converts XTB cash operations history into ledger transactions.
//
// An XTB account is denominated in a single currency. Every cash operation
// becomes an asset (or cash) transaction and, when the account is not in PLN,
// a mirrored transaction on the account currency itself, both valued in PLN
// at the NBP rate of the previous business day.
package xtb

import (
	"errors"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownType is returned for a cash operation type that is not supported.
	ErrUnknownType = errors.New("unknown operation type")
	// ErrComment is returned when a trade comment does not describe the trade.
	ErrComment = errors.New("unrecognized trade comment")
	// ErrUnknownCountry is returned for a symbol without a known country code.
	ErrUnknownCountry = errors.New("unknown country")
)

// Tx is a cash operation from XTB history.
//
// It is one of BuySell, DepositWithdraw, DividendInterest or Costs.
type Tx interface {
	header() Header
}

// Header holds the fields common to all cash operations.
type Header struct {
	ID             string
	Time           time.Time       // Time is in the fixed UTC+2 timezone XTB uses.
	CurrencyAmount decimal.Decimal // CurrencyAmount is the signed cash change, in the account currency.
}

func (h Header) header() Header { return h }

// BuySell is a stock or ETF trade.
type BuySell struct {
	Header
	Type        inwestomat.TxType // Type is Buy or Sell.
	Symbol      string
	AssetAmount decimal.Decimal
	Price       decimal.Decimal
}

// DepositWithdraw is a cash transfer to or from the account.
type DepositWithdraw struct {
	Header
	Type inwestomat.TxType // Type is Deposit or Withdraw.
}

// DividendInterest is a dividend when Symbol is set, an interest on free funds otherwise.
type DividendInterest struct {
	Header
	Symbol string
}

// Costs is a tax on a dividend when Symbol is set, on interests otherwise.
type Costs struct {
	Header
	Symbol string
}
