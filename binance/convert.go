package binance

import (
	"context"
	"fmt"
	"iter"
	"log"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/shopspring/decimal"
)

// CryptoTicker returns the ledger ticker of a crypto asset: the ledger treats
// each asset priced in PLN as its own instrument.
func CryptoTicker(t inwestomat.Ticker) inwestomat.Ticker {
	if t == inwestomat.Ticker(inwestomat.PLN) {
		return inwestomat.PLN.Ticker()
	}
	return inwestomat.Ticker("CURRENCY:" + string(t) + "PLN")
}

// FindPLNPrices returns the PLN price of both assets of market at a given instant.
//
// Only the quote asset is looked up, the base asset is derived from the
// trade's unitPrice, which Binance expresses in quote asset.
func FindPLNPrices(ctx context.Context, price inwestomat.PriceFunc, market inwestomat.Market, unitPrice decimal.Decimal, at time.Time) (map[inwestomat.Ticker]decimal.Decimal, error) {
	quotePLN := inwestomat.One()
	if market.Quote != inwestomat.Ticker(inwestomat.PLN) {
		var err error
		quotePLN, err = price(ctx, inwestomat.Market{Base: market.Quote, Quote: inwestomat.Ticker(inwestomat.PLN)}, at)
		if err != nil {
			return nil, fmt.Errorf("cannot price %s in PLN on %s: %w", market.Quote, at, err)
		}
	}
	return map[inwestomat.Ticker]decimal.Decimal{
		market.Base:  unitPrice.Mul(quotePLN),
		market.Quote: quotePLN,
	}, nil
}

// SplitTx converts a trade into its SELL and BUY legs, in that order, using
// plnPrices for the PLN price of both assets.
//
// The fee is accounted for only when it was paid in the asset received: it is
// then taken out of the BUY amount and reported as the BUY fee. A fee paid in
// any other asset is ignored.
func SplitTx(tx Tx, plnPrices map[inwestomat.Ticker]decimal.Decimal) ([]inwestomat.Transaction, error) {
	var buyTicker, sellTicker inwestomat.Ticker
	var buyAmount, sellAmount decimal.Decimal
	switch tx.Type {
	case inwestomat.Buy:
		buyTicker, sellTicker = tx.Market.Base, tx.Market.Quote
		buyAmount, sellAmount = tx.Amount, tx.Total
	case inwestomat.Sell:
		sellTicker, buyTicker = tx.Market.Base, tx.Market.Quote
		sellAmount, buyAmount = tx.Amount, tx.Total
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSide, tx.Type)
	}

	sellPrice, ok := plnPrices[sellTicker]
	if !ok {
		return nil, fmt.Errorf("missing PLN price for %s", sellTicker)
	}
	buyPrice, ok := plnPrices[buyTicker]
	if !ok {
		return nil, fmt.Errorf("missing PLN price for %s", buyTicker)
	}

	sellTotal := sellAmount.Mul(sellPrice)
	buyTotal := buyAmount.Mul(buyPrice)

	sellFee, buyFee := decimal.Zero, decimal.Zero
	if tx.FeeCoin == buyTicker {
		buyAmount = buyAmount.Sub(tx.Fee)
		buyFee = tx.Fee.Mul(buyPrice)
	}

	sell := inwestomat.Transaction{
		Date:         tx.Date,
		Ticker:       CryptoTicker(sellTicker),
		Currency:     inwestomat.PLN,
		Type:         inwestomat.Sell,
		Amount:       sellAmount,
		Price:        sellPrice,
		PLNRate:      inwestomat.One(),
		NominalPrice: inwestomat.One(),
		TotalPLN:     sellTotal,
		Fee:          sellFee,
	}
	buy := inwestomat.Transaction{
		Date:         tx.Date,
		Ticker:       CryptoTicker(buyTicker),
		Currency:     inwestomat.PLN,
		Type:         inwestomat.Buy,
		Amount:       buyAmount,
		Price:        buyPrice,
		PLNRate:      inwestomat.One(),
		NominalPrice: inwestomat.One(),
		TotalPLN:     buyTotal,
		Fee:          buyFee,
	}
	return []inwestomat.Transaction{sell, buy}, nil
}

// Convert returns the ledger transactions of every trade in txs, pricing them with price.
//
// The sequence stops at the first error.
func Convert(ctx context.Context, txs iter.Seq2[Tx, error], price inwestomat.PriceFunc) iter.Seq2[inwestomat.Transaction, error] {
	return func(yield func(inwestomat.Transaction, error) bool) {
		for tx, err := range txs {
			if err != nil {
				yield(inwestomat.Transaction{}, err)
				return
			}
			prices, err := FindPLNPrices(ctx, price, tx.Market, tx.Price, tx.Date)
			if err != nil {
				yield(inwestomat.Transaction{}, err)
				return
			}
			legs, err := SplitTx(tx, prices)
			if err != nil {
				yield(inwestomat.Transaction{}, err)
				return
			}
			log.Printf("%s %s %s %s: %d legs", tx.Date.Format(time.DateTime), tx.Type, tx.Amount, tx.Market, len(legs))
			for _, leg := range legs {
				if !yield(leg, nil) {
					return
				}
			}
		}
	}
}
