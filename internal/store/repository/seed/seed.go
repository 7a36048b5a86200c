package seed

import (
	"context"
	"time"

	"github.com/bornholm/loanseed/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ExecFunc runs inside the seeder transaction and returns the number of
// rows it inserted.
type ExecFunc func(ctx context.Context, db *gorm.DB) (int, error)

type Seeder struct {
	name string
	exec ExecFunc
}

func New(name string, exec ExecFunc) *Seeder {
	return &Seeder{
		name: name,
		exec: exec,
	}
}

// Seed executes the given seeders in order, each one in its own transaction,
// and returns the number of inserted rows per seeder name. The first failing
// seeder aborts the remaining ones.
func (r *Repository) Seed(ctx context.Context, seeders ...*Seeder) (map[string]int, error) {
	results := make(map[string]int, len(seeders))

	for _, s := range seeders {
		var inserted int

		err := r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
			n, err := s.exec(ctx, db)
			if err != nil {
				return errors.WithStack(err)
			}

			run := store.NewSeedRun(s.name, n, time.Now())

			if err := db.Create(run).Error; err != nil {
				return errors.WithStack(err)
			}

			inserted = n

			return nil
		}, store.RetryableCodes...)
		if err != nil {
			return nil, errors.Wrapf(err, "could not execute seeder '%s'", s.name)
		}

		results[s.name] = inserted
	}

	return results, nil
}

// Runs returns the recorded executions of the named seeder, most recent first.
func (r *Repository) Runs(ctx context.Context, name string) ([]*store.SeedRun, error) {
	var runs []*store.SeedRun
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("name = ?", name).Order("executed_at DESC").Find(&runs).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
