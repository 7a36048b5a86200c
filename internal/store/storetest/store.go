package storetest

import (
	"path/filepath"
	"testing"

	"github.com/bornholm/loanseed/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewStore returns a store backed by a fresh SQLite database living in the
// test temporary directory.
func NewStore(t testing.TB) *store.Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "store.sqlite")

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	return store.New(db)
}
