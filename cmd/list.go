package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/quantdl/ashare"
)

type listCmd struct {
	forceUpdate bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "prints the resolved stock list" }
func (*listCmd) Usage() string {
	return `asd list [-force-update]

Prints the working stock list, one stock per line, in the order that
fetch's -start-index refers to. Uses the local cache when present;
-force-update refetches the list and overwrites the cache.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.forceUpdate, "force-update", false, "Refresh the stock list from the quote service even if a cache exists.")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.MkdirAll(*datasetDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create dataset directory: %v\n", err)
		return subcommands.ExitFailure
	}

	client := newClient()
	path := filepath.Join(*datasetDir, ashare.ListCacheFile)
	list, err := ashare.ResolveStockList(path, c.forceUpdate, func() ([]ashare.Stock, error) {
		return client.FetchList(ctx)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for i, s := range list.Stocks {
		fmt.Printf("%d\t%s\t%s\t%s\n", i, s.Code, s.Exchange, s.Name)
	}
	fmt.Printf("%d stocks\n", len(list.Stocks))
	return subcommands.ExitSuccess
}
