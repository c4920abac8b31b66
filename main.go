package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stay_loader/config"
	"stay_loader/console"
	"stay_loader/db"
	"stay_loader/errs"
	"stay_loader/logging"
	"stay_loader/pipeline"
	"stay_loader/source"
	"stay_loader/synth"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "stay_loader",
		Short:         "Load de-identified hospital stays into a PostgreSQL star schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(teardownCmd())
	rootCmd.AddCommand(namepoolCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger for a command.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Out: os.Stderr})
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Rebuild the star schema from the stay file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateBuild(); err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBMaxConns, log)
			if err != nil {
				return err
			}
			defer store.Close()

			builder := pipeline.NewBuilder(store, log, nil)
			res, buildErr := builder.Build(ctx, pipeline.Options{
				Input:     cfg.Input,
				Names:     cfg.Names,
				Export:    cfg.Export,
				Seed:      cfg.Seed,
				Hospitals: cfg.HospitalPool,
			})

			if cfg.MetricsFile != "" {
				if err := builder.Metrics().WriteTextfile(cfg.MetricsFile); err != nil {
					log.Warn().Err(err).Str("path", cfg.MetricsFile).Msg("metrics not written")
				}
			}
			if buildErr != nil {
				return buildErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Done in %s\n", res.Elapsed.Round(time.Millisecond))
			fmt.Fprintf(out, "  Build ID:        %s\n", res.BuildID)
			fmt.Fprintf(out, "  Rows read:       %d\n", res.Rows)
			fmt.Fprintf(out, "  Stays loaded:    %d\n", res.Stays)
			for _, table := range db.Tables {
				if n, ok := res.Dimensions[table]; ok {
					fmt.Fprintf(out, "  %-16s %d\n", table+":", n)
				}
			}
			fmt.Fprintf(out, "  Date warnings:   %d\n", res.Warnings)
			if cfg.Export != "" {
				fmt.Fprintf(out, "  Exported:        %d rows to %s\n", res.Exported, cfg.Export)
			}
			return nil
		},
	}
}

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run SQL against the star schema interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateStore(); err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBMaxConns, log)
			if err != nil {
				return err
			}
			defer store.Close()

			session, err := console.NewSession(ctx, store.Pool(), cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			defer session.Close()

			if stmt, _ := cmd.Flags().GetString("command"); stmt != "" {
				return session.Run(ctx, strings.NewReader(stmt+"\n"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), `End statements with ";" or a blank line. \q to quit.`)
			return session.Run(ctx, cmd.InOrStdin())
		},
	}
	cmd.Flags().StringP("command", "c", "", "Run a single statement and exit")
	return cmd
}

func teardownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teardown",
		Short: "Drop every star schema table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateStore(); err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := db.Open(ctx, cfg.DatabaseURL, cfg.DBMaxConns, log)
			if err != nil {
				return err
			}
			defer store.Close()

			return store.Teardown(ctx)
		},
	}
}

func namepoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namepool",
		Short: "Generate a synthetic name pool CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			size, _ := cmd.Flags().GetInt("size")
			if size < 1 {
				return errs.Configurationf("size must be positive, got %d", size)
			}
			path := cfg.Names
			if path == "" {
				return errs.Configurationf("names is required (--names or %s_NAMES)", config.EnvPrefix)
			}

			if err := source.WriteNamePool(path, synth.GenerateNamePool(cfg.Seed, size)); err != nil {
				return err
			}
			log.Info().Str("path", path).Int("entries", size).Uint64("seed", cfg.Seed).Msg("name pool written")
			return nil
		},
	}
	cmd.Flags().Int("size", 1000, "Number of name pool entries")
	return cmd
}
