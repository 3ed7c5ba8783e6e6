package ashare

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Default date range of the downloaded history.
var (
	DefaultFrom = NewDate(2010, time.January, 1)
	DefaultTo   = NewDate(2020, time.December, 31)
)

// Downloader drives one end-to-end download run: resolve the stock list,
// load the ledger, then fetch and persist every stock not yet done.
type Downloader struct {
	Fetcher Fetcher
	Dataset string // directory holding the cache, the ledger and per-stock files
	From    Date   // first day of the requested history (DefaultFrom if zero)
	To      Date   // last day of the requested history (DefaultTo if zero)
	Limit   int    // stop after this many successes in one run; 0 means no limit
	Logf    func(format string, v ...any)
}

// RunReport summarizes one run.
type RunReport struct {
	Total     int // stocks in the resolved list
	Skipped   int // already in the ledger (or before the start index)
	Succeeded int // downloaded and recorded this run
	Failed    int // fetch or write failures this run, retried on the next run
}

// Run executes the pipeline. forceUpdate refreshes the stock list cache from
// the remote service; startIndex is the 0-based position in the resolved list
// to start from. Per-stock failures are logged and skipped; the returned
// error is non-nil only for fatal conditions (no list obtainable, start index
// out of range, unusable dataset directory).
func (d *Downloader) Run(ctx context.Context, forceUpdate bool, startIndex int) (RunReport, error) {
	var report RunReport
	logf := d.Logf
	if logf == nil {
		logf = log.Printf
	}
	from, to := d.From, d.To
	if from.IsZero() {
		from = DefaultFrom
	}
	if to.IsZero() {
		to = DefaultTo
	}

	if err := os.MkdirAll(d.Dataset, 0755); err != nil {
		return report, fmt.Errorf("cannot create dataset directory: %w", err)
	}

	list, err := ResolveStockList(filepath.Join(d.Dataset, ListCacheFile), forceUpdate, func() ([]Stock, error) {
		return d.Fetcher.FetchList(ctx)
	})
	if err != nil {
		return report, err
	}
	report.Total = len(list.Stocks)

	// Reject an out-of-range start index before any download work. Index 0 on
	// an empty list is a trivially complete run, not an error.
	if startIndex < 0 || (startIndex >= len(list.Stocks) && startIndex != 0) {
		return report, fmt.Errorf("start index %d out of range [0,%d)", startIndex, len(list.Stocks))
	}
	report.Skipped += startIndex

	ledger, err := OpenLedger(filepath.Join(d.Dataset, LedgerFile))
	if err != nil {
		return report, err
	}
	defer ledger.Close()

	logf("downloading %d stocks (start index %d, %d already done)", len(list.Stocks)-startIndex, startIndex, ledger.Len())

	for i, stock := range list.Stocks[startIndex:] {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if ledger.Done(stock.Code) {
			report.Skipped++
			continue
		}

		candles, err := d.Fetcher.FetchSeries(ctx, stock, from, to)
		if err == nil && len(candles) == 0 {
			err = fmt.Errorf("empty series: %w", ErrNotFound)
		}
		if err == nil {
			err = WriteSeries(SeriesPath(d.Dataset, stock.Code), candles)
		}
		if err != nil {
			// Not recorded in the ledger: the next run retries this stock.
			logf("stock %s failed: %v", stock.Code, err)
			report.Failed++
			continue
		}

		if err := ledger.RecordSuccess(stock.Code); err != nil {
			return report, err
		}
		report.Succeeded++
		logf("stock %s done (%d rows, %d/%d)", stock.Code, len(candles), startIndex+i+1, len(list.Stocks))

		if d.Limit > 0 && report.Succeeded >= d.Limit {
			logf("limit of %d successful downloads reached, stopping", d.Limit)
			break
		}
	}

	logf("run complete: %d succeeded, %d failed, %d skipped of %d", report.Succeeded, report.Failed, report.Skipped, report.Total)
	return report, nil
}
