package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantdl/ashare"
)

type fetchCmd struct {
	forceUpdate bool
	startIndex  int
	from        string
	to          string
	limit       int
}

func (*fetchCmd) Name() string { return "fetch" }
func (*fetchCmd) Synopsis() string {
	return "downloads the historical series of every stock not yet done"
}
func (*fetchCmd) Usage() string {
	return `asd fetch [-force-update] [-start-index N] [-from DATE] [-to DATE] [-limit N]

Downloads the daily historical series of every stock in the list, one CSV
file per stock, skipping stocks already recorded in the success ledger.
The run is resumable: interrupt it at any point and the next invocation
picks up where it left off. A stock whose fetch fails is logged, skipped,
and retried on the next run.

Usage Examples:
# One-off full download into ./dataset.
$ asd fetch

# Refresh the stock list first, then resume from position 1200.
$ asd fetch -force-update -start-index 1200
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.forceUpdate, "force-update", false, "Refresh the stock list from the quote service even if a cache exists.")
	f.IntVar(&c.startIndex, "start-index", 0, "0-based position in the stock list to start from.")
	f.StringVar(&c.from, "from", ashare.DefaultFrom.String(), "First day of the requested history.")
	f.StringVar(&c.to, "to", ashare.DefaultTo.String(), "Last day of the requested history.")
	f.IntVar(&c.limit, "limit", 0, "Stop after this many successful downloads. 0 means no limit.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := ashare.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := ashare.ParseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -to: %v\n", err)
		return subcommands.ExitUsageError
	}
	if to.Before(from) {
		fmt.Fprintf(os.Stderr, "Error: -to %s is before -from %s\n", to, from)
		return subcommands.ExitUsageError
	}

	d := &ashare.Downloader{
		Fetcher: newClient(),
		Dataset: *datasetDir,
		From:    from,
		To:      to,
		Limit:   c.limit,
	}

	report, err := d.Run(ctx, c.forceUpdate, c.startIndex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Per-stock failures are not fatal: they stay out of the ledger and the
	// next run retries them.
	fmt.Printf("%d succeeded, %d failed, %d skipped of %d stocks\n", report.Succeeded, report.Failed, report.Skipped, report.Total)
	return subcommands.ExitSuccess
}
