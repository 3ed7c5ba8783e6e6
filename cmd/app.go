// Package cmd implements the CLI application to download A-share historical data.
package cmd

import (
	"flag"
	"log"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/quantdl/ashare/eastmoney"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fetchCmd{}, "download")
	c.Register(&listCmd{}, "download")
	c.Register(&enrichCmd{}, "download")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// config holds environment-level defaults (ASHARE_DATASET, ASHARE_MIN_DELAY),
// each overridable per invocation with the matching flag.
type config struct {
	Dataset  string        `default:"dataset"`
	MinDelay time.Duration `split_words:"true" default:"5s"`
}

var cfg = loadConfig()

func loadConfig() config {
	// Optional .env in the working directory; absence is fine. Loaded here so
	// it is in place before envconfig reads the environment.
	_ = godotenv.Load()

	var c config
	if err := envconfig.Process("ashare", &c); err != nil {
		log.Printf("warning: invalid environment configuration: %v", err)
		c = config{Dataset: "dataset", MinDelay: eastmoney.DefaultMinDelay}
	}
	return c
}

var datasetDir = flag.String("dataset", cfg.Dataset, "Path to the dataset directory holding the list cache, the ledger and per-stock files")
var minDelay = flag.Duration("min-delay", cfg.MinDelay, "Minimum delay between two requests to the quote service")

// newClient returns the quote API client configured for this invocation.
func newClient() *eastmoney.Client {
	c := eastmoney.New()
	c.MinDelay = *minDelay
	return c
}
