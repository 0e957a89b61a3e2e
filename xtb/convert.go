package xtb

import (
	"context"
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/etnz/inwestomat"
	"github.com/etnz/inwestomat/date"
	"github.com/shopspring/decimal"
)

// markets maps XTB country codes to ledger market prefixes.
var markets = map[string]string{
	"PL": "WSE",
	"UK": "LON",
}

// ConvertTicker converts an XTB symbol like "CDR.PL" to its ledger ticker "WSE:CDR".
func ConvertTicker(symbol string) (inwestomat.Ticker, error) {
	code, country, found := strings.Cut(symbol, ".")
	if !found {
		return "", fmt.Errorf("%w in symbol %q: missing country code", ErrUnknownCountry, symbol)
	}
	prefix, ok := markets[country]
	if !ok {
		return "", fmt.Errorf("%w %q in symbol %q", ErrUnknownCountry, country, symbol)
	}
	return inwestomat.Ticker(prefix + ":" + code), nil
}

// ConvertTx converts a cash operation of an account in currency, using
// plnRate as the PLN value of one unit of currency.
//
// It returns the asset transaction, followed by the currency transaction
// unless the account is in PLN.
func ConvertTx(tx Tx, currency inwestomat.Currency, plnRate decimal.Decimal) ([]inwestomat.Transaction, error) {
	h := tx.header()
	cash := h.CurrencyAmount.Abs()
	totalPLN := cash.Mul(plnRate)

	var asset inwestomat.Transaction
	var currencyType inwestomat.TxType
	switch tx := tx.(type) {
	case BuySell:
		if !tx.Type.IsTrade() {
			return nil, fmt.Errorf("invalid trade type %s for operation %s", tx.Type, h.ID)
		}
		ticker, err := ConvertTicker(tx.Symbol)
		if err != nil {
			return nil, err
		}
		asset = newTx(h, ticker, currency, plnRate, tx.Type, tx.AssetAmount, tx.Price, totalPLN)
		currencyType = tx.Type.Opposite()

	case DepositWithdraw:
		switch tx.Type {
		case inwestomat.Deposit:
			currencyType = inwestomat.Buy
		case inwestomat.Withdraw:
			currencyType = inwestomat.Sell
		default:
			return nil, fmt.Errorf("invalid cash movement type %s for operation %s", tx.Type, h.ID)
		}
		asset = newCashTx(h, tx.Type, inwestomat.One(), totalPLN)

	case DividendInterest:
		totalPLN = h.CurrencyAmount.Mul(plnRate)
		var err error
		if asset, err = newSymbolTx(h, tx.Symbol, currency, plnRate, inwestomat.DividendInterest, totalPLN); err != nil {
			return nil, err
		}
		currencyType = inwestomat.Buy

	case Costs:
		var err error
		if asset, err = newSymbolTx(h, tx.Symbol, currency, plnRate, inwestomat.Costs, totalPLN); err != nil {
			return nil, err
		}
		currencyType = inwestomat.Sell

	default:
		panic(fmt.Sprintf("unexpected operation type %T", tx))
	}

	if currency.IsDomestic() {
		return []inwestomat.Transaction{asset}, nil
	}
	return []inwestomat.Transaction{
		asset,
		newTx(h, currency.Ticker(), currency, plnRate, currencyType, cash, inwestomat.One(), asset.TotalPLN),
	}, nil
}

// newTx returns a transaction for the operation h.
func newTx(h Header, ticker inwestomat.Ticker, currency inwestomat.Currency, plnRate decimal.Decimal, typ inwestomat.TxType, amount, price, totalPLN decimal.Decimal) inwestomat.Transaction {
	return inwestomat.Transaction{
		Date:         h.Time,
		Ticker:       ticker,
		Currency:     currency,
		Type:         typ,
		Amount:       amount,
		Price:        price,
		PLNRate:      plnRate,
		NominalPrice: inwestomat.One(),
		TotalPLN:     totalPLN,
		Fee:          decimal.Zero,
		Comment:      "ID:" + h.ID,
	}
}

// newCashTx returns a transaction on PLN cash: the ledger only reads its total.
func newCashTx(h Header, typ inwestomat.TxType, plnRate, totalPLN decimal.Decimal) inwestomat.Transaction {
	return newTx(h, inwestomat.PLN.Ticker(), inwestomat.PLN, plnRate, typ, inwestomat.One(), inwestomat.One(), totalPLN)
}

// newSymbolTx returns a transaction on the security symbol, or on PLN cash if there is none.
func newSymbolTx(h Header, symbol string, currency inwestomat.Currency, plnRate decimal.Decimal, typ inwestomat.TxType, totalPLN decimal.Decimal) (inwestomat.Transaction, error) {
	if symbol == "" {
		return newCashTx(h, typ, plnRate, totalPLN), nil
	}
	ticker, err := ConvertTicker(symbol)
	if err != nil {
		return inwestomat.Transaction{}, err
	}
	return newTx(h, ticker, currency, plnRate, typ, inwestomat.One(), inwestomat.One(), totalPLN), nil
}

// Convert returns the ledger transactions of every operation in txs, for an
// account in currency, resolving PLN rates with rate.
//
// The sequence stops at the first error.
func Convert(ctx context.Context, txs iter.Seq2[Tx, error], currency inwestomat.Currency, rate inwestomat.RateFunc) iter.Seq2[inwestomat.Transaction, error] {
	return func(yield func(inwestomat.Transaction, error) bool) {
		for tx, err := range txs {
			if err != nil {
				yield(inwestomat.Transaction{}, err)
				return
			}
			h := tx.header()
			plnRate, err := inwestomat.Rate(ctx, rate, currency, date.Of(h.Time.In(inwestomat.Timezone)))
			if err != nil {
				yield(inwestomat.Transaction{}, fmt.Errorf("operation %s: %w", h.ID, err))
				return
			}
			legs, err := ConvertTx(tx, currency, plnRate)
			if err != nil {
				yield(inwestomat.Transaction{}, fmt.Errorf("operation %s: %w", h.ID, err))
				return
			}
			log.Printf("operation %s %T %s %s: %d transactions", h.ID, tx, h.CurrencyAmount, currency, len(legs))
			for _, leg := range legs {
				if !yield(leg, nil) {
					return
				}
			}
		}
	}
}
