// Command freedays prints holiday facts for a country and year.
//
// Usage:
//
//	freedays remaining --country Mar --year 2025
//	freedays weekend Thu Fri
//	freedays is-holiday 2025-11-18
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rabitt1ove/freedays"
	"github.com/rabitt1ove/freedays/internal/config"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	country string
	year    int
	asJSON  bool

	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
}

func setupLogger(verbose bool, logCfg *config.LoggingConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if verbose {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.DisableStacktrace = true
	}
	// Results go to stdout; keep logs off it.
	zapConfig.OutputPaths = []string{"stderr"}

	// Set log level from config
	if !verbose && logCfg != nil && logCfg.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logCfg.Level)); err == nil {
			zapConfig.Level = zap.NewAtomicLevelAt(level)
		}
	}

	return zapConfig.Build()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "freedays",
		Short:         "Holiday facts for a country and year",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				var err error
				a.logger, err = setupLogger(a.verbose, nil)
				return err
			}

			var err error
			a.cfg, err = config.Load(a.cfgFile)
			if err != nil {
				return err
			}

			a.logger, err = setupLogger(a.verbose, &a.cfg.Logging)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("country") {
				a.cfg.Country = a.country
			}
			if cmd.Flags().Changed("year") {
				a.cfg.Year = a.year
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", os.Getenv("FREEDAYS_CONFIG"), "config file path (or set FREEDAYS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.country, "country", "", "country code (overrides config)")
	rootCmd.PersistentFlags().IntVar(&a.year, "year", 0, "year, 0 for the current year (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print results as JSON")

	rootCmd.AddCommand(remainingCmd(a))
	rootCmd.AddCommand(passedCmd(a))
	rootCmd.AddCommand(weekendCmd(a))
	rootCmd.AddCommand(workingCmd(a))
	rootCmd.AddCommand(nextCmd(a))
	rootCmd.AddCommand(allCmd(a))
	rootCmd.AddCommand(countCmd(a))
	rootCmd.AddCommand(isHolidayCmd(a))
	rootCmd.AddCommand(countriesCmd(a))

	return rootCmd
}

// calculator builds a Calculator from the loaded config.
func (a *app) calculator() (*freedays.Calculator, error) {
	table, err := a.cfg.Table()
	if err != nil {
		return nil, err
	}
	opts := []freedays.Option{
		freedays.WithTable(table),
		freedays.WithClock(a.now),
		freedays.WithLogger(a.logger),
	}
	if a.cfg.Year != 0 {
		opts = append(opts, freedays.WithYear(a.cfg.Year))
	}
	return freedays.New(a.cfg.Country, opts...)
}

func run(args []string, stdout, stderr io.Writer, now func() time.Time) error {
	a := &app{now: now}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, time.Now); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
