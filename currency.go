package inwestomat

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Ticker is a security or currency symbol, as understood by the ledger.
type Ticker string

// Market is a tradable pair of assets, the Base being priced in the Quote.
type Market struct {
	Base  Ticker
	Quote Ticker
}

// String returns the market as exchanges spell it, e.g. "ADABTC".
func (m Market) String() string { return string(m.Base) + string(m.Quote) }

// Currency is the currency an account is denominated in.
type Currency string

// Supported account currencies. PLN is the domestic currency: all totals are
// expressed in it.
const (
	PLN Currency = "PLN"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
)

// Currencies lists the supported currencies, domestic first.
var Currencies = []Currency{PLN, USD, EUR, GBP, CHF}

// ParseCurrency returns the supported currency for code, case insensitive.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	for _, known := range Currencies {
		if c == known {
			return c, c.validate()
		}
	}
	return "", fmt.Errorf("unsupported currency %q, want one of %v", code, Currencies)
}

// validate checks c against the ISO 4217 table.
func (c Currency) validate() error {
	if money.GetCurrency(string(c)) == nil {
		return fmt.Errorf("currency %q is not an ISO 4217 code", string(c))
	}
	return nil
}

// IsDomestic reports whether c is the domestic currency.
func (c Currency) IsDomestic() bool { return c == PLN }

// Ticker returns the ledger ticker used when the currency itself is the
// subject of a transaction (cash held in that currency).
func (c Currency) Ticker() Ticker {
	if c.IsDomestic() {
		return "Gotówka"
	}
	return Ticker("Waluty_" + string(c))
}

// Format renders amount with the currency's symbol and usual number of
// decimals, for human consumption only.
func (c Currency) Format(amount decimal.Decimal) string {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		return amount.String() + " " + string(c)
	}
	dec := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
