package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bornholm/loanseed/internal/slogx"
	"github.com/bornholm/loanseed/internal/store"
	"github.com/bornholm/loanseed/internal/store/repository/loan"
	"github.com/bornholm/loanseed/internal/store/repository/seed"
	"github.com/bornholm/loanseed/internal/store/storetest"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type recordedSeed struct {
	stats Stats
	err   error
}

type fakeRecorder struct {
	calls []recordedSeed
}

func (r *fakeRecorder) RecordSeed(stats Stats, err error) {
	r.calls = append(r.calls, recordedSeed{stats: stats, err: err})
}

type testEnv struct {
	loans    *loan.Repository
	seeds    *seed.Repository
	recorder *fakeRecorder
	logger   *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := storetest.NewStore(t)

	return &testEnv{
		loans:    loan.NewRepository(st),
		seeds:    seed.NewRepository(st),
		recorder: &fakeRecorder{},
		logger:   slogx.NewTestLogger(t),
	}
}

func (e *testEnv) seeder(records []Record) *Seeder {
	return NewSeeder(e.seeds, records, WithRecorder(e.recorder), WithLogger(e.logger))
}

func TestSeederIdempotence(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	inserted, err := env.seeder(Default()).Run(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 5, inserted; e != g {
		t.Errorf("first run: expected '%v' inserted rows, got '%v'", e, g)
	}

	inserted, err = env.seeder(Default()).Run(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, inserted; e != g {
		t.Errorf("second run: expected '%v' inserted rows, got '%v'", e, g)
	}

	count, err := env.loans.Count(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(5), count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}

	runs, err := env.seeds.Runs(ctx, SeederName)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(runs); e != g {
		t.Errorf("len(runs): expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(env.recorder.calls); e != g {
		t.Fatalf("len(recorder.calls): expected '%v', got '%v'", e, g)
	}

	if e, g := (Stats{SkippedExisting: 5}), env.recorder.calls[1].stats; e != g {
		t.Errorf("second run stats: expected '%+v', got '%+v'", e, g)
	}
}

func TestSeederSelectiveInsertion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	existingID := uuid.MustParse("00000000-0000-0000-0000-000000000003")
	term := 24

	existing := &store.Loan{
		ID:              existingID,
		BorrowerID:      "usr_someone_else",
		Amount:          decimal.RequireFromString("1.50"),
		Currency:        "EUR",
		Status:          store.LoanStatusRepaid,
		TermMonths:      &term,
		InterestRateAPR: decimal.NewNullDecimal(decimal.RequireFromString("3.25")),
	}

	if err := env.loans.Create(ctx, existing); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	inserted, err := env.seeder(Default()).Run(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 4, inserted; e != g {
		t.Errorf("inserted: expected '%v', got '%v'", e, g)
	}

	found, err := env.loans.GetByID(ctx, existingID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "usr_someone_else", found.BorrowerID; e != g {
		t.Errorf("found.BorrowerID: expected '%v', got '%v'", e, g)
	}

	if !found.Amount.Equal(decimal.RequireFromString("1.50")) {
		t.Errorf("found.Amount: expected '1.50', got '%v'", found.Amount)
	}

	if e, g := "EUR", found.Currency; e != g {
		t.Errorf("found.Currency: expected '%v', got '%v'", e, g)
	}

	if e, g := store.LoanStatusRepaid, found.Status; e != g {
		t.Errorf("found.Status: expected '%v', got '%v'", e, g)
	}

	if found.TermMonths == nil || *found.TermMonths != 24 {
		t.Errorf("found.TermMonths: expected '24', got '%v'", found.TermMonths)
	}

	if !found.InterestRateAPR.Decimal.Equal(decimal.RequireFromString("3.25")) {
		t.Errorf("found.InterestRateAPR: expected '3.25', got '%v'", found.InterestRateAPR.Decimal)
	}

	if e, g := (Stats{Inserted: 4, SkippedExisting: 1}), env.recorder.calls[0].stats; e != g {
		t.Errorf("stats: expected '%+v', got '%+v'", e, g)
	}
}

func TestSeederFieldFidelity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.seeder(Default()).Run(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := env.loans.GetByID(ctx, uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "usr_kenya_001", found.BorrowerID; e != g {
		t.Errorf("found.BorrowerID: expected '%v', got '%v'", e, g)
	}

	if !found.Amount.Equal(decimal.RequireFromString("12500.00")) {
		t.Errorf("found.Amount: expected '12500.00', got '%v'", found.Amount)
	}

	if e, g := "KES", found.Currency; e != g {
		t.Errorf("found.Currency: expected '%v', got '%v'", e, g)
	}

	if e, g := store.LoanStatusPending, found.Status; e != g {
		t.Errorf("found.Status: expected '%v', got '%v'", e, g)
	}

	if found.TermMonths == nil || *found.TermMonths != 6 {
		t.Errorf("found.TermMonths: expected '6', got '%v'", found.TermMonths)
	}

	if !found.InterestRateAPR.Valid || !found.InterestRateAPR.Decimal.Equal(decimal.RequireFromString("28.00")) {
		t.Errorf("found.InterestRateAPR: expected '28.00', got '%v'", found.InterestRateAPR)
	}
}

func TestSeederEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	inserted, err := env.seeder(nil).Run(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, inserted; e != g {
		t.Errorf("inserted: expected '%v', got '%v'", e, g)
	}

	if e, g := "Seed complete. Inserted 0 rows.", Summary(inserted); e != g {
		t.Errorf("Summary(): expected '%v', got '%v'", e, g)
	}
}

func TestSeederSkipsRecordsWithoutID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	records := Default()
	records[1].ID = uuid.Nil

	inserted, err := env.seeder(records).Run(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 4, inserted; e != g {
		t.Errorf("inserted: expected '%v', got '%v'", e, g)
	}

	count, err := env.loans.Count(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(4), count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}

	if e, g := (Stats{Inserted: 4, SkippedMissingID: 1}), env.recorder.calls[0].stats; e != g {
		t.Errorf("stats: expected '%+v', got '%+v'", e, g)
	}
}

func TestSeederFailureIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	records := Default()
	records[3].Currency = "DONG"

	inserted, err := env.seeder(records).Run(ctx)
	if err == nil {
		t.Fatal("expected the run to fail on the invalid currency")
	}

	if e, g := 0, inserted; e != g {
		t.Errorf("inserted: expected '%v', got '%v'", e, g)
	}

	count, err := env.loans.Count(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if count != 0 {
		t.Errorf("expected every staged insertion to be rolled back, found %d loans", count)
	}

	if e, g := 1, len(env.recorder.calls); e != g {
		t.Fatalf("len(recorder.calls): expected '%v', got '%v'", e, g)
	}

	if env.recorder.calls[0].err == nil {
		t.Errorf("expected the failure to be recorded")
	}
}

func TestDefaultCatalogIsNotShared(t *testing.T) {
	first := Default()
	first[0].BorrowerID = "mutated"
	*first[0].TermMonths = 99

	second := Default()

	if e, g := "usr_kenya_001", second[0].BorrowerID; e != g {
		t.Errorf("second[0].BorrowerID: expected '%v', got '%v'", e, g)
	}

	if e, g := 6, *second[0].TermMonths; e != g {
		t.Errorf("second[0].TermMonths: expected '%v', got '%v'", e, g)
	}
}

func TestDefaultCatalogIdentifiersAreUnique(t *testing.T) {
	records := Default()

	if e, g := 5, len(records); e != g {
		t.Fatalf("len(records): expected '%v', got '%v'", e, g)
	}

	seen := make(map[uuid.UUID]struct{}, len(records))
	for _, r := range records {
		if !r.HasID() {
			t.Errorf("record for '%s' has no identifier", r.BorrowerID)
		}

		if _, exists := seen[r.ID]; exists {
			t.Errorf("duplicate identifier '%s'", r.ID)
		}

		seen[r.ID] = struct{}{}
	}
}
