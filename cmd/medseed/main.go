// medseed populates the medapp MongoDB database with synthetic records.
// One subcommand per entity type plus an indexes subcommand:
//
//	medseed patients -n 200
//	medseed doctors --verbose
//	medseed indexes
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medapp/medseed/internal/config"
	"github.com/medapp/medseed/internal/platform/db"
	"github.com/medapp/medseed/internal/progress"
	"github.com/medapp/medseed/internal/seed"
	"github.com/medapp/medseed/internal/synth"
)

func main() {
	root := &cobra.Command{
		Use:          "medseed",
		Short:        "Populate the medapp database with synthetic records",
		SilenceUsage: true,
	}
	for _, es := range synth.Specs() {
		root.AddCommand(generateCmd(es))
	}
	root.AddCommand(indexesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().Timestamp().
		Logger()
}

func generateCmd(es seed.EntitySpec) *cobra.Command {
	var (
		number  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   es.Plural,
		Short: fmt.Sprintf("Generate random %s", es.Plural),
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(verbose)

			if number < 1 {
				return fmt.Errorf("%w: --number must be a positive integer, got %d",
					seed.ErrInvalidCount, number)
			}

			cfg, err := config.Load()
			if err != nil {
				logger.Error().Err(err).Msg("invalid configuration")
				return err
			}

			opts := seed.RunOptions{
				Count:     number,
				BatchSize: cfg.BatchSize,
			}

			if es.StoresCredential {
				hash, err := synth.HashPassword(cfg.SeedPassword)
				if err != nil {
					logger.Fatal().Err(err).Msg("cannot hash the seed credential")
				}
				opts.PasswordHash = hash
			}

			bar := progress.New(number, es.Plural)
			defer bar.Finish()
			opts.Observe = bar.Observe

			open := func(ctx context.Context) (seed.Storage, error) {
				return db.Connect(ctx, cfg, logger)
			}

			_, err = seed.Run(cmd.Context(), logger, open, es, opts)
			return err
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", es.DefaultCount,
		fmt.Sprintf("number of %s to generate", es.Plural))
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func indexesCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "indexes",
		Short: "Create the indexes every medapp collection relies on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(verbose)

			cfg, err := config.Load()
			if err != nil {
				logger.Error().Err(err).Msg("invalid configuration")
				return err
			}

			store, err := db.Connect(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error().Err(err).Msg("storage unavailable")
				return err
			}
			defer store.Close(cmd.Context())

			if err := store.EnsureIndexes(cmd.Context(), seed.IndexDefs()); err != nil {
				logger.Error().Err(err).Msg("index creation failed")
				return err
			}

			logger.Info().Msg("all indexes created successfully")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
