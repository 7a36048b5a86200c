package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bornholm/loanseed/internal/slogx"
	"github.com/bornholm/loanseed/internal/store/repository/loan"
	"github.com/bornholm/loanseed/internal/store/repository/seed"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const SeederName = "loans"

// Stats describes the outcome of a committed seed run.
type Stats struct {
	Inserted         int
	SkippedExisting  int
	SkippedMissingID int
}

type Recorder interface {
	RecordSeed(stats Stats, err error)
}

type Seeder struct {
	repo     *seed.Repository
	records  []Record
	recorder Recorder
	logger   *slog.Logger
}

type OptionFunc func(s *Seeder)

func WithRecorder(recorder Recorder) OptionFunc {
	return func(s *Seeder) {
		s.recorder = recorder
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(s *Seeder) {
		s.logger = logger
	}
}

func NewSeeder(repo *seed.Repository, records []Record, funcs ...OptionFunc) *Seeder {
	s := &Seeder{
		repo:    repo,
		records: records,
		logger:  slog.Default(),
	}

	for _, fn := range funcs {
		fn(s)
	}

	return s
}

// Run inserts every catalog record missing from the store, in catalog order,
// within a single transaction. Existing rows are left untouched. It returns
// the number of inserted rows.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("seeder", SeederName))

	var stats Stats

	_, err := s.repo.Seed(ctx, seed.New(SeederName, func(ctx context.Context, db *gorm.DB) (int, error) {
		// Reset on every attempt: a retried transaction starts over.
		stats = Stats{}

		for _, r := range s.records {
			if !r.HasID() {
				s.logger.WarnContext(ctx, "skipping catalog record without identifier", slog.String("borrowerID", r.BorrowerID))
				stats.SkippedMissingID++
				continue
			}

			exists, err := loan.Exists(db, r.ID)
			if err != nil {
				return 0, errors.Wrapf(err, "could not look up loan '%s'", r.ID)
			}

			if exists {
				s.logger.DebugContext(ctx, "loan already exists, skipping", slog.String("loanID", r.ID.String()))
				stats.SkippedExisting++
				continue
			}

			if err := loan.Insert(db, r.Loan()); err != nil {
				return 0, errors.Wrapf(err, "could not insert loan '%s'", r.ID)
			}

			s.logger.DebugContext(ctx, "loan inserted", slog.String("loanID", r.ID.String()))
			stats.Inserted++
		}

		return stats.Inserted, nil
	}))
	if err != nil {
		s.record(Stats{}, err)
		return 0, errors.WithStack(err)
	}

	s.record(stats, nil)

	s.logger.InfoContext(ctx, "seed run committed",
		slog.Int("inserted", stats.Inserted),
		slog.Int("skippedExisting", stats.SkippedExisting),
		slog.Int("skippedMissingID", stats.SkippedMissingID),
	)

	return stats.Inserted, nil
}

func (s *Seeder) record(stats Stats, err error) {
	if s.recorder == nil {
		return
	}

	s.recorder.RecordSeed(stats, err)
}

// Summary returns the status line reported once a run completes.
func Summary(inserted int) string {
	return fmt.Sprintf("Seed complete. Inserted %d rows.", inserted)
}
