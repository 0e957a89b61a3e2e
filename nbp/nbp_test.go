package nbp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/etnz/inwestomat/date"
	"github.com/shopspring/decimal"
)

func TestClient_Rate(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if want := "/api/exchangerates/rates/a/usd/2024-03-07/2024-03-11/"; r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		fmt.Fprint(w, `{"table":"A","currency":"dolar amerykański","code":"USD","rates":[`+
			`{"no":"047/A/NBP/2024","effectiveDate":"2024-03-07","mid":3.9611},`+
			`{"no":"048/A/NBP/2024","effectiveDate":"2024-03-08","mid":3.9432},`+
			`{"no":"049/A/NBP/2024","effectiveDate":"2024-03-11","mid":3.9382}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	day := date.New(2024, time.March, 12)
	for range 3 {
		rate, err := client.Rate(context.Background(), inwestomat.USD, day)
		if err != nil {
			t.Fatalf("Rate() unexpected error: %v", err)
		}
		if want := decimal.RequireFromString("3.9382"); !rate.Equal(want) {
			t.Errorf("Rate() = %v, want %v", rate, want)
		}
	}
	if requests != 1 {
		t.Errorf("server received %d requests, want 1", requests)
	}
}

func TestClient_RateNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "404 NotFound - Not Found - Brak danych", http.StatusNotFound)
		}},
		{"empty", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"table":"A","code":"EUR","rates":[]}`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()
			_, err := NewClient(server.URL).Rate(context.Background(), inwestomat.EUR, date.New(2024, time.January, 2))
			if !errors.Is(err, ErrNoRate) {
				t.Errorf("Rate() error = %v, want %v", err, ErrNoRate)
			}
		})
	}
}

func TestClient_RateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "400 BadRequest", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Rate(context.Background(), inwestomat.GBP, date.New(2024, time.January, 2))
	if err == nil {
		t.Fatal("Rate() expected an error, got none")
	}
	if errors.Is(err, ErrNoRate) {
		t.Errorf("Rate() error = %v, a failed request is not a missing rate", err)
	}
}

func TestClient_RateIsARateFunc(t *testing.T) {
	var _ inwestomat.RateFunc = NewClient(DefaultURL).Rate
}
