package inwestomat

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/inwestomat/date"
	"github.com/shopspring/decimal"
)

// PriceFunc returns the price of one market.Base expressed in market.Quote at
// the given instant.
type PriceFunc func(ctx context.Context, market Market, at time.Time) (decimal.Decimal, error)

// RateFunc returns the PLN value of one unit of currency, as applicable to
// transactions made on day.
type RateFunc func(ctx context.Context, currency Currency, day date.Date) (decimal.Decimal, error)

// Rate returns the PLN rate of currency for day.
//
// PLN is always worth exactly 1 and lookup is not called for it.
func Rate(ctx context.Context, lookup RateFunc, currency Currency, day date.Date) (decimal.Decimal, error) {
	if currency.IsDomestic() {
		return one, nil
	}
	rate, err := lookup(ctx, currency, day)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot get %s rate on %s: %w", currency, day, err)
	}
	return rate, nil
}
