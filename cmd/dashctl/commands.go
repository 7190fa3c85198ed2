package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dashboard/internal/config"
	"dashboard/internal/conversion"
	"dashboard/internal/provider"
	"dashboard/internal/rates"
)

type commandConfig struct {
	source rates.Source
	store  conversion.Store
	logger *zap.SugaredLogger
	closer func() error

	debug bool
	mode  string
}

// setup fills whatever a test has not injected from the service configuration.
func (c *commandConfig) setup() error {
	if c.logger == nil {
		logger, err := newLogger(c.debug)
		if err != nil {
			return err
		}
		c.logger = logger
	}
	if c.source != nil && c.store != nil {
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if c.mode != "" {
		cfg.Rates.Mode = c.mode
	}

	if c.source == nil {
		src, err := provider.New(provider.Options{
			Mode:       provider.Mode(cfg.Rates.Mode),
			ProxyURL:   cfg.Rates.ProxyURL,
			TargetURL:  cfg.Rates.TargetURL,
			TimeoutSec: cfg.Rates.TimeoutSec,
		})
		if err != nil {
			return err
		}
		c.source = src
	}

	if c.store == nil {
		if cfg.Redis.Addr == "" {
			c.store = conversion.NewMemoryStore()
			return nil
		}
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		c.store = conversion.NewRedisStore(rdb, cfg.Redis.RateKey)
		c.closer = rdb.Close
	}
	return nil
}

func (c *commandConfig) teardown() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if c.closer != nil {
		_ = c.closer()
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return l.Sugar(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func newRootCmd(config *commandConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dashctl",
		Short:        "Dashboard exchange rates tool",
		Version:      "v1.0.0",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.teardown()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&config.debug, "debug", "d", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&config.mode, "mode", "", "Rates page source: proxy or direct")

	rootCmd.AddCommand(ratesCommand(config), convertCommand(config))
	return rootCmd
}

// tableRenderer prints the rates panel as aligned text.
type tableRenderer struct {
	out io.Writer
}

func (r tableRenderer) RenderRates(table rates.Table, origin rates.Origin) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "origin\t%s\n", origin)
	for _, c := range rates.Currencies {
		price := table[c]
		if price == "" {
			price = rates.Unavailable
		}
		fmt.Fprintf(w, "%s\t%s\n", c, price)
	}
	_ = w.Flush()
}

func ratesCommand(config *commandConfig) *cobra.Command {
	var watch time.Duration

	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Fetch the exchange rates once and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher := rates.NewFetcher(config.source, config.store, nil, config.logger)
			out := tableRenderer{out: cmd.OutOrStdout()}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			fetcher.FetchRates(ctx, out)
			if watch <= 0 {
				return nil
			}

			ticker := time.NewTicker(watch)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					fetcher.FetchRates(ctx, out)
				case <-ctx.Done():
					return nil
				}
			}
		},
	}

	ratesCmd.Flags().DurationVarP(&watch, "watch", "w", 0, "Fetch again at this interval until interrupted")
	return ratesCmd
}

func convertCommand(config *commandConfig) *cobra.Command {
	var fetch bool

	convertCmd := &cobra.Command{
		Use:   "convert AMOUNT",
		Short: "Convert a USD amount to AFN with the last published rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := conversion.ParseAmount(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if fetch {
				rates.NewFetcher(config.source, config.store, nil, config.logger).
					FetchRates(ctx, tableRenderer{out: io.Discard})
			}

			res, err := conversion.NewConverter(config.store).Convert(ctx, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s USD = %s AFN (rate %s)\n", res.Amount, res.Result.StringFixed(2), res.Rate)
			return nil
		},
	}

	convertCmd.Flags().BoolVarP(&fetch, "fetch", "f", false, "Fetch the rates first to publish a fresh rate")
	return convertCmd
}
