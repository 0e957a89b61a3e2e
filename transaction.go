package inwestomat

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger row.
//
// Conversion rules build them once and never modify them afterwards.
type Transaction struct {
	Date         time.Time
	Ticker       Ticker
	Currency     Currency
	Type         TxType
	Amount       decimal.Decimal // Amount is the quantity of Ticker moved.
	Price        decimal.Decimal // Price is the unit price, in Currency.
	PLNRate      decimal.Decimal // PLNRate is the PLN value of one unit of Currency, 1 for PLN.
	NominalPrice decimal.Decimal // NominalPrice is unused by conversions and always 1.
	TotalPLN     decimal.Decimal // TotalPLN is the transaction value in PLN.
	Fee          decimal.Decimal // Fee is expressed in PLN.
	Comment      string
}

// one is the value of every unit price, rate and nominal price that does not carry information.
var one = decimal.NewFromInt(1)

// One returns the decimal 1.
func One() decimal.Decimal { return one }

// Equal reports whether t and o describe the same row: same instant and
// exactly equal amounts.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date.Equal(o.Date) &&
		t.Ticker == o.Ticker &&
		t.Currency == o.Currency &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Price.Equal(o.Price) &&
		t.PLNRate.Equal(o.PLNRate) &&
		t.NominalPrice.Equal(o.NominalPrice) &&
		t.TotalPLN.Equal(o.TotalPLN) &&
		t.Fee.Equal(o.Fee) &&
		t.Comment == o.Comment
}

// String returns a compact, human readable form of t.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s x %s %s (%s PLN)",
		t.Date.In(Timezone).Format(DateTimeFormat), t.Type, t.Ticker, t.Amount, t.Price, t.Currency, t.TotalPLN)
}
