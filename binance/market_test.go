package binance

import (
	"errors"
	"testing"

	"github.com/etnz/inwestomat"
)

func TestDefaultQuoteAssets_Split(t *testing.T) {
	tests := []struct {
		symbol string
		want   inwestomat.Market
	}{
		{"ADABTC", inwestomat.Market{Base: "ADA", Quote: "BTC"}},
		{"BTCUSDT", inwestomat.Market{Base: "BTC", Quote: "USDT"}},
		{"ETHFDUSD", inwestomat.Market{Base: "ETH", Quote: "FDUSD"}},
		{"BTCPLN", inwestomat.Market{Base: "BTC", Quote: "PLN"}},
		{"SHIBDOGE", inwestomat.Market{Base: "SHIB", Quote: "DOGE"}},
		{"BTCIDRT", inwestomat.Market{Base: "BTC", Quote: "IDRT"}},
		{"ETHUSDT", inwestomat.Market{Base: "ETH", Quote: "USDT"}},
		{"BTCTUSD", inwestomat.Market{Base: "BTC", Quote: "TUSD"}},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := DefaultQuoteAssets.Split(tt.symbol)
			if err != nil {
				t.Fatalf("Split(%q) unexpected error: %v", tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("Split(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		})
	}
}

// TestQuoteAssets_SplitPriority checks that ambiguous suffixes are resolved by list order.
func TestQuoteAssets_SplitPriority(t *testing.T) {
	tests := []struct {
		name   string
		quotes QuoteAssets
		want   inwestomat.Market
	}{
		{"long first", QuoteAssets{"USDT", "DT", "T"}, inwestomat.Market{Base: "BTC", Quote: "USDT"}},
		{"short first", QuoteAssets{"T", "USDT"}, inwestomat.Market{Base: "BTCUSD", Quote: "T"}},
		{"middle first", QuoteAssets{"DT", "USDT"}, inwestomat.Market{Base: "BTCUS", Quote: "DT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 20 { // no map iteration involved, the answer never changes.
				got, err := tt.quotes.Split("BTCUSDT")
				if err != nil {
					t.Fatalf("Split() unexpected error: %v", err)
				}
				if got != tt.want {
					t.Fatalf("Split() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestQuoteAssets_SplitErrors(t *testing.T) {
	for _, symbol := range []string{"ADAGBP", "BTC", "", "XYZ"} {
		if _, err := DefaultQuoteAssets.Split(symbol); !errors.Is(err, ErrUnknownQuoteAsset) {
			t.Errorf("Split(%q) error = %v, want %v", symbol, err, ErrUnknownQuoteAsset)
		}
	}
}
