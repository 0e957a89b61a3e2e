// Package nbp reads the daily average exchange rates published by the
// National Bank of Poland (table A).
//
// A transaction made on a given day is valued at the rate of the last
// business day before it, which is what Rate returns.
package nbp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/inwestomat"
	"github.com/etnz/inwestomat/date"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// DefaultURL is the NBP public API.
const DefaultURL = "https://api.nbp.pl"

// Lookback is the number of days before a transaction searched for a published rate.
const Lookback = 5

// ErrNoRate is returned when no rate was published in the lookback window.
var ErrNoRate = errors.New("no rate published")

// Client reads exchange rates from the NBP API.
//
// Answers are kept in memory for the lifetime of the client.
type Client struct {
	url    string
	client *http.Client
	rates  *cache.Cache
}

// NewClient returns a client for the NBP API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		url:    strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
		rates:  cache.New(cache.NoExpiration, 0),
	}
}

// Rate returns the PLN value of one unit of currency for a transaction made on day.
//
// It is the mid rate of the last table published in the Lookback days before day.
func (c *Client) Rate(ctx context.Context, currency inwestomat.Currency, day date.Date) (decimal.Decimal, error) {
	key := string(currency) + " " + day.String()
	if v, found := c.rates.Get(key); found {
		return v.(decimal.Decimal), nil
	}

	from, to := day.Add(-Lookback), day.Add(-1)
	addr := fmt.Sprintf("%s/api/exchangerates/rates/a/%s/%s/%s/?format=json", c.url, strings.ToLower(string(currency)), from, to)
	// {"table":"A","code":"USD","rates":[{"no":"049/A/NBP/2024","effectiveDate":"2024-03-11","mid":3.9432}, ...]}
	jobj, err := jwget(ctx, c.client, addr)
	if errors.Is(err, errNotFound) {
		return decimal.Decimal{}, fmt.Errorf("%w for %s between %s and %s", ErrNoRate, currency, from, to)
	}
	if err != nil {
		return decimal.Decimal{}, err
	}
	mids, err := jsonpath.Get("$.rates[*].mid", jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s rates: %w", currency, err)
	}
	list, _ := mids.([]any)
	if len(list) == 0 {
		return decimal.Decimal{}, fmt.Errorf("%w for %s between %s and %s", ErrNoRate, currency, from, to)
	}
	rate, err := jdecimal(list[len(list)-1])
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s rate: %w", currency, err)
	}

	c.rates.Set(key, rate, cache.NoExpiration)
	return rate, nil
}
