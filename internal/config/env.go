package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Options are runtime settings read from the environment (TAXFOLIO_*
// variables, with a .env file picked up by the CLI entrypoints).
type Options struct {
	// TaxAnchor is "anchor-window" or "anchor-fiscal-year"; see the
	// aggregation engine for semantics.
	TaxAnchor string `envconfig:"TAX_ANCHOR" default:"anchor-window"`

	// SkipInvalid switches aggregation to skip-and-continue semantics.
	SkipInvalid bool `envconfig:"SKIP_INVALID" default:"false"`

	// Format is the default report format (console, json, csv).
	Format string `envconfig:"FORMAT" default:"console"`
}

// LoadOptions reads options from the environment.
func LoadOptions() (Options, error) {
	var opts Options
	if err := envconfig.Process("taxfolio", &opts); err != nil {
		return Options{}, fmt.Errorf("failed to read environment options: %w", err)
	}
	return opts, nil
}
