package setup

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/bornholm/loanseed/internal/config"
	"github.com/pkg/errors"
)

func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once    sync.Once
		service T
		onceErr error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			srv, err := factory(ctx, conf)
			if err != nil {
				onceErr = errors.WithStack(err)
				return
			}

			service = srv
		})
		if onceErr != nil {
			return *new(T), onceErr
		}

		return service, nil
	}
}

func ensureBaseDirectory(filePath string) error {
	baseDir := filepath.Dir(filePath)
	if err := ensureDirectory(baseDir); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func ensureDirectory(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return errors.Wrapf(err, "could not ensure directory '%s'", dirPath)
	}

	return nil
}
