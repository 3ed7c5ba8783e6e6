package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/quantdl/ashare"
)

type enrichCmd struct{}

func (*enrichCmd) Name() string { return "enrich" }
func (*enrichCmd) Synopsis() string {
	return "fetches industry and share-structure profiles for downloaded stocks"
}
func (*enrichCmd) Usage() string {
	return `asd enrich

For every downloaded series file <code>.csv in the dataset, fetches the
stock's profile (industry, share structure, listing date) and writes it
to a <code>.info.csv sidecar. Stocks that already have a sidecar are
skipped, so the command is incremental like fetch.
`
}

func (c *enrichCmd) SetFlags(f *flag.FlagSet) {}

func (c *enrichCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files, err := filepath.Glob(filepath.Join(*datasetDir, "*.csv"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot scan dataset directory: %v\n", err)
		return subcommands.ExitFailure
	}

	client := newClient()
	var done, failed, skipped int
	for _, file := range files {
		name := filepath.Base(file)
		if name == ashare.ListCacheFile || name == ashare.LedgerFile || strings.HasSuffix(name, ".info.csv") {
			continue
		}
		code := strings.TrimSuffix(name, ".csv")

		sidecar := ashare.ProfilePath(*datasetDir, code)
		if _, err := os.Stat(sidecar); err == nil {
			skipped++
			continue
		}

		profile, err := client.FetchProfile(ctx, ashare.NewStock(code, ""))
		if err == nil {
			err = profile.Save(sidecar)
		}
		if err != nil {
			log.Printf("profile %s failed: %v", code, err)
			failed++
			continue
		}
		log.Printf("profile %s done (%s)", code, profile.Industry)
		done++
	}

	fmt.Printf("%d profiles fetched, %d failed, %d already present\n", done, failed, skipped)
	return subcommands.ExitSuccess
}
