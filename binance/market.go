package binance

import (
	"fmt"
	"strings"

	"github.com/etnz/inwestomat"
)

// QuoteAssets is a list of quote assets, by decreasing priority.
type QuoteAssets []inwestomat.Ticker

// DefaultQuoteAssets are the quote assets of Binance spot markets.
//
// The order matters: it is the order suffixes are tried in when splitting a market.
var DefaultQuoteAssets = QuoteAssets{
	"USDT", "BTC", "TRY", "FDUSD", "USDC", "ETH", "BNB", "EUR", "TUSD", "BRL", "JPY",
	"DAI", "UAH", "PLN", "RON", "ZAR", "MXN", "ARS", "XRP", "TRX", "DOGE", "CZK", "IDRT",
}

// Split splits a market symbol like "ADABTC" into its base and quote assets.
//
// The first quote asset of q that is a suffix of symbol wins.
func (q QuoteAssets) Split(symbol string) (inwestomat.Market, error) {
	for _, quote := range q {
		base, found := strings.CutSuffix(symbol, string(quote))
		if found && base != "" {
			return inwestomat.Market{Base: inwestomat.Ticker(base), Quote: quote}, nil
		}
	}
	return inwestomat.Market{}, fmt.Errorf("%w in market %q", ErrUnknownQuoteAsset, symbol)
}
