package setup

import (
	"context"

	"github.com/bornholm/loanseed/internal/config"
	"github.com/bornholm/loanseed/internal/metrics"
	"github.com/pkg/errors"
)

var getMetricsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*metrics.Metrics, error) {
	return metrics.New(), nil
})

// WriteMetricsFromConfig exports the collected metrics when a textfile path
// is configured.
func WriteMetricsFromConfig(ctx context.Context, conf *config.Config) error {
	if conf.Metrics.Textfile == "" {
		return nil
	}

	m, err := getMetricsFromConfig(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := ensureBaseDirectory(conf.Metrics.Textfile); err != nil {
		return errors.WithStack(err)
	}

	if err := m.WriteTextfile(conf.Metrics.Textfile); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
