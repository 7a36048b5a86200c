package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Seed    Seed    `envPrefix:"SEED_"`
	Metrics Metrics `envPrefix:"METRICS_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "LOANSEED_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
