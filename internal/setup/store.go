package setup

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bornholm/loanseed/internal/config"
	"github.com/bornholm/loanseed/internal/store"
	"github.com/bornholm/loanseed/internal/store/repository/loan"
	"github.com/bornholm/loanseed/internal/store/repository/seed"
	"github.com/pkg/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*store.Store, error) {
	dsn := conf.Storage.Database.DSN

	if !isMemoryDSN(dsn) {
		if err := ensureBaseDirectory(dsn); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	dialector := sqlite.Open(dsn)

	var logLevel logger.LogLevel
	switch {
	case conf.Logger.Level <= slog.LevelDebug:
		logLevel = logger.Info
	case conf.Logger.Level == slog.LevelWarn:
		logLevel = logger.Warn
	default:
		logLevel = logger.Error
	}

	// Standard output is reserved for the run summary.
	gormLogger := logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=30000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return store.New(db), nil
})

func NewLoanRepositoryFromConfig(ctx context.Context, conf *config.Config) (*loan.Repository, error) {
	st, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return loan.NewRepository(st), nil
}

func NewSeedRepositoryFromConfig(ctx context.Context, conf *config.Config) (*seed.Repository, error) {
	st, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return seed.NewRepository(st), nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}
