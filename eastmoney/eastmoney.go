// Package eastmoney fetches A-share stock lists and historical daily quotes
// from the Eastmoney push2 quote API.
//
// The API is unauthenticated but throttles aggressive clients, so every
// outbound request goes through a mandatory minimum delay measured from the
// end of the previous request, whatever the endpoint.
package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quantdl/ashare"
)

// Production endpoints.
const (
	defaultListURL  = "https://82.push2.eastmoney.com/api/qt/clist/get"
	defaultKlineURL = "https://push2his.eastmoney.com/api/qt/stock/kline/get"
	defaultQuoteURL = "https://push2.eastmoney.com/api/qt/stock/get"
)

// ut is the public client token the quote API expects on every request.
const ut = "fa5fd1943c7b386f172d6893dbfba10b"

// DefaultMinDelay is the default spacing between two outbound requests.
const DefaultMinDelay = 5 * time.Second

// Client talks to the Eastmoney quote API, one request at a time.
// The zero value is not usable; use New.
type Client struct {
	HTTP     *http.Client
	MinDelay time.Duration

	ListURL  string
	KlineURL string
	QuoteURL string

	last  time.Time // end of the previous request
	now   func() time.Time
	sleep func(time.Duration)
}

// New returns a Client with production endpoints and the default request spacing.
func New() *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: 30 * time.Second},
		MinDelay: DefaultMinDelay,
		ListURL:  defaultListURL,
		KlineURL: defaultKlineURL,
		QuoteURL: defaultQuoteURL,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// throttle blocks until MinDelay has passed since the end of the previous
// request. The first request of a run goes out immediately.
func (c *Client) throttle() {
	if c.last.IsZero() {
		return
	}
	if wait := c.MinDelay - c.now().Sub(c.last); wait > 0 {
		c.sleep(wait)
	}
}

// getJSON performs one throttled GET and unmarshals the JSON response body
// into data. Transport failures and non-OK statuses wrap
// ashare.ErrRemoteUnavailable; an unparseable body wraps
// ashare.ErrMalformedResponse.
func (c *Client) getJSON(ctx context.Context, addr string, data any) error {
	c.throttle()
	defer func() { c.last = c.now() }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %q: %v: %w", addr, err, ashare.ErrRemoteUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v: %w", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status, ashare.ErrRemoteUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read response body: %v: %w", err, ashare.ErrRemoteUnavailable)
	}
	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("cannot unmarshal response: %v: %w", err, ashare.ErrMalformedResponse)
	}
	return nil
}

// secid returns the API's exchange-qualified identifier for a stock:
// "1.<code>" for Shanghai, "0.<code>" for Shenzhen.
func secid(s ashare.Stock) string {
	if s.Exchange == ashare.SSE {
		return "1." + s.Code
	}
	return "0." + s.Code
}
