package binance

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/etnz/inwestomat"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// DefaultURL is the Binance public API.
const DefaultURL = "https://api.binance.com"

// Client reads historical prices from the Binance public API.
type Client struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient returns a client for the Binance API at baseURL, sending at most
// rps requests per second. A non positive rps disables the limit.
func NewClient(baseURL string, rps float64) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		url:     baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Price returns the price of market.Base in market.Quote at instant at.
//
// The price is the close of the one second kline starting at at, which must be
// in UTC and truncated to the second.
func (c *Client) Price(ctx context.Context, market inwestomat.Market, at time.Time) (decimal.Decimal, error) {
	if at.Location() != time.UTC {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is not in UTC", ErrPrecondition, at)
	}
	if at.Nanosecond() != 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %s has a fraction of second", ErrPrecondition, at)
	}

	start := at.UnixMilli()
	query := url.Values{}
	query.Set("symbol", market.String())
	query.Set("interval", "1s")
	query.Set("startTime", strconv.FormatInt(start, 10))
	query.Set("endTime", strconv.FormatInt(start+1, 10))
	addr := c.url + "/api/v3/klines?" + query.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Decimal{}, err
	}
	// [[openTime, "open", "high", "low", "close", "volume", closeTime, ...]]
	klines, err := jwget(ctx, c.client, addr)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot get %s klines: %w", market, err)
	}
	if list, ok := klines.([]any); !ok || len(list) == 0 {
		return decimal.Decimal{}, fmt.Errorf("%w for %s on %s", ErrNoPrice, market, at.Format(time.DateTime))
	}
	price, err := jdecimal("$[0][4]", klines)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s kline: %w", market, err)
	}
	return price, nil
}
