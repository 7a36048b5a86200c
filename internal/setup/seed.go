package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/loanseed/internal/catalog"
	"github.com/bornholm/loanseed/internal/config"
	"github.com/pkg/errors"
)

// SeedFromConfig seeds the default loan catalog and returns the number of
// inserted rows.
func SeedFromConfig(ctx context.Context, conf *config.Config) (int, error) {
	if !conf.Seed.Enabled {
		slog.InfoContext(ctx, "seeding disabled by configuration")
		return 0, nil
	}

	repo, err := NewSeedRepositoryFromConfig(ctx, conf)
	if err != nil {
		return 0, errors.Wrap(err, "could not configure seed repository")
	}

	m, err := getMetricsFromConfig(ctx, conf)
	if err != nil {
		return 0, errors.Wrap(err, "could not configure metrics")
	}

	seeder := catalog.NewSeeder(repo, catalog.Default(), catalog.WithRecorder(m))

	inserted, err := seeder.Run(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "could not execute store seeding")
	}

	return inserted, nil
}
