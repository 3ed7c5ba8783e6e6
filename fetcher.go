package ashare

import (
	"context"
	"errors"
)

// Error kinds a remote fetch can fail with. Providers wrap these so callers
// can classify failures with errors.Is without depending on transport details.
var (
	// ErrRemoteUnavailable covers network failures and non-OK HTTP statuses.
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	// ErrNotFound means the remote service has no data for the requested code
	// (delisted or unknown).
	ErrNotFound = errors.New("code not found")
	// ErrMalformedResponse means the response arrived but could not be parsed.
	ErrMalformedResponse = errors.New("malformed response")
)

// Fetcher is the contract the download pipeline has with a remote quote
// service. Each call performs exactly one network round trip, preceded by the
// provider's mandatory inter-request delay. A failed call is surfaced as-is;
// retrying is the caller's decision.
type Fetcher interface {
	// FetchList returns the full list of tradable stocks.
	FetchList(ctx context.Context) ([]Stock, error)

	// FetchSeries returns the daily historical series of one stock over
	// [from, to], oldest first.
	FetchSeries(ctx context.Context, stock Stock, from, to Date) ([]Candle, error)
}
