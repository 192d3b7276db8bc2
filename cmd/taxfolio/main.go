package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hmillward/taxfolio/internal/calculation"
	"github.com/hmillward/taxfolio/internal/compare"
	"github.com/hmillward/taxfolio/internal/config"
	"github.com/hmillward/taxfolio/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxfolio %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "taxfolio",
	Short: "Freelancer revenue, expense and tax reporting",
	Long:  "Aggregates invoices and expenses over fiscal or ad-hoc windows and estimates the tax liability per UK-style progressive bands.",
}

func newEngine(books *config.Books, opts config.Options) *calculation.Engine {
	engine := calculation.NewEngine(books.Bands(), books.BaselineIncome)
	engine.Anchor = calculation.TaxAnchor(opts.TaxAnchor)
	engine.SkipInvalid = opts.SkipInvalid
	return engine
}

var reportCmd = &cobra.Command{
	Use:   "report [books-file]",
	Short: "Aggregate one reporting window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.LoadOptions()
		if err != nil {
			return err
		}
		books, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		windowArg, _ := cmd.Flags().GetString("window")
		filter, _ := cmd.Flags().GetString("filter")
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = opts.Format
		}

		engine := newEngine(books, opts)
		spec, err := compare.ResolveWindowSpec(engine.Calendar, windowArg, time.Now())
		if err != nil {
			return err
		}

		log.Debug().
			Str("window", spec.Name).
			Int("invoices", len(books.Invoices)).
			Int("expenses", len(books.Expenses)).
			Msg("aggregating")

		summary, err := engine.Aggregate(books.Invoices, books.Expenses, spec.Window, filter)
		if err != nil {
			return err
		}
		return output.GenerateReport(os.Stdout, summary, format)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [books-file]",
	Short: "Aggregate several windows side by side",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.LoadOptions()
		if err != nil {
			return err
		}
		books, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		windowArgs, _ := cmd.Flags().GetStringSlice("windows")
		filter, _ := cmd.Flags().GetString("filter")

		engine := newEngine(books, opts)
		now := time.Now()
		specs := make([]compare.WindowSpec, 0, len(windowArgs))
		for _, arg := range windowArgs {
			spec, err := compare.ResolveWindowSpec(engine.Calendar, arg, now)
			if err != nil {
				return err
			}
			specs = append(specs, spec)
		}

		results := compare.NewCompareEngine(engine).Compare(books.Invoices, books.Expenses, specs, filter)
		fmt.Fprint(os.Stdout, (&compare.TableFormatter{}).Format(results))
		return nil
	},
}

func main() {
	// A local .env can hold TAXFOLIO_* options; absence is fine.
	_ = godotenv.Load()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("TAXFOLIO_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	reportCmd.Flags().String("window", "this-fy", "reporting window: a fiscal-year label (2023/2024), this-fy, last-fy, mtd, or trailing:N")
	reportCmd.Flags().String("filter", "", "case-insensitive text filter on expense name/description/category")
	reportCmd.Flags().String("format", "", "output format: console, json or csv")

	compareCmd.Flags().StringSlice("windows", []string{"this-fy", "last-fy"}, "comma-separated list of windows to compare")
	compareCmd.Flags().String("filter", "", "case-insensitive text filter on expense name/description/category")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
