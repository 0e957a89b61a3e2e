package binance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/inwestomat"
)

func TestClient_Price(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/klines" {
			t.Errorf("path = %q, want /api/v3/klines", r.URL.Path)
		}
		q := r.URL.Query()
		want := map[string]string{
			"symbol":    "BTCPLN",
			"interval":  "1s",
			"startTime": "1714558648000",
			"endTime":   "1714558648001",
		}
		for k, v := range want {
			if got := q.Get(k); got != v {
				t.Errorf("query %s = %q, want %q", k, got, v)
			}
		}
		fmt.Fprint(w, `[[1714558648000,"233158.00000000","233158.00000000","233158.00000000","233158.00000000","0.00000000",1714558648999,"0.00000000",0,"0.00000000","0.00000000","0"]]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	price, err := client.Price(context.Background(), inwestomat.Market{Base: "BTC", Quote: "PLN"}, time.Date(2024, time.May, 1, 10, 17, 28, 0, time.UTC))
	if err != nil {
		t.Fatalf("Price() unexpected error: %v", err)
	}
	if !price.Equal(d("233158")) {
		t.Errorf("Price() = %v, want 233158", price)
	}
}

func TestClient_PriceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 10).Price(context.Background(), inwestomat.Market{Base: "ADA", Quote: "PLN"}, time.Date(2024, time.May, 1, 10, 17, 28, 0, time.UTC))
	if !errors.Is(err, ErrNoPrice) {
		t.Errorf("Price() error = %v, want %v", err, ErrNoPrice)
	}
}

func TestClient_PriceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 0).Price(context.Background(), inwestomat.Market{Base: "XXX", Quote: "PLN"}, time.Date(2024, time.May, 1, 10, 17, 28, 0, time.UTC))
	if err == nil {
		t.Fatal("Price() expected an error, got none")
	}
	if errors.Is(err, ErrNoPrice) {
		t.Errorf("Price() error = %v, a failed request is not a missing price", err)
	}
}

func TestClient_PricePreconditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request must be sent for an invalid instant")
	}))
	defer server.Close()
	client := NewClient(server.URL, 0)
	market := inwestomat.Market{Base: "BTC", Quote: "PLN"}

	tests := []struct {
		name string
		at   time.Time
	}{
		{"not utc", time.Date(2024, time.May, 1, 12, 17, 28, 0, inwestomat.Timezone)},
		{"local", time.Date(2024, time.May, 1, 10, 17, 28, 0, time.Local)},
		{"sub second", time.Date(2024, time.May, 1, 10, 17, 28, 500, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.at.Location() == time.UTC && tt.at.Nanosecond() == 0 {
				t.Skip("time.Local is UTC on this machine")
			}
			if _, err := client.Price(context.Background(), market, tt.at); !errors.Is(err, ErrPrecondition) {
				t.Errorf("Price() error = %v, want %v", err, ErrPrecondition)
			}
		})
	}
}
