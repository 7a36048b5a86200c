package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bornholm/loanseed/internal/catalog"
	"github.com/bornholm/loanseed/internal/config"
	"github.com/bornholm/loanseed/internal/setup"
	"github.com/bornholm/loanseed/internal/slogx"
	"github.com/pkg/errors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	go func() {
		<-sig
		slog.WarnContext(ctx, "interrupted, aborting seed run")
		cancel()
	}()

	if err := run(ctx, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes a seed pass. Logs go to stderr; stdout only receives the
// summary line, printed once the seed transaction has committed.
func run(ctx context.Context, stdout io.Writer, stderr io.Writer) error {
	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slogx.Error(errors.WithStack(err)))
		return errors.WithStack(err)
	}

	logger := slog.New(slogx.ContextHandler{
		Handler: slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level:     conf.Logger.Level,
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)

	slog.DebugContext(ctx, "using configuration", slog.Any("config", conf))

	inserted, err := setup.SeedFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not seed store", slogx.Error(errors.WithStack(err)))

		if err := setup.WriteMetricsFromConfig(ctx, conf); err != nil {
			slog.WarnContext(ctx, "could not write metrics", slogx.Error(errors.WithStack(err)))
		}

		return errors.WithStack(err)
	}

	// The rows are committed at this point: later failures are only reported.

	if conf.Seed.Enabled {
		logStoreState(ctx, conf)
	}

	if err := setup.WriteMetricsFromConfig(ctx, conf); err != nil {
		slog.WarnContext(ctx, "could not write metrics", slogx.Error(errors.WithStack(err)))
	}

	if _, err := fmt.Fprintln(stdout, catalog.Summary(inserted)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func logStoreState(ctx context.Context, conf *config.Config) {
	loans, err := setup.NewLoanRepositoryFromConfig(ctx, conf)
	if err != nil {
		slog.WarnContext(ctx, "could not setup loan repository", slogx.Error(errors.WithStack(err)))
		return
	}

	total, err := loans.Count(ctx)
	if err != nil {
		slog.WarnContext(ctx, "could not count loans", slogx.Error(errors.WithStack(err)))
		return
	}

	slog.InfoContext(ctx, "store state", slog.Int64("loans", total))
}
