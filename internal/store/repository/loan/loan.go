package loan

import (
	"context"

	"github.com/bornholm/loanseed/internal/store"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Lookup retrieves a loan by its primary key using the given session,
// typically an ongoing transaction.
func Lookup(db *gorm.DB, id uuid.UUID) (*store.Loan, error) {
	var loan store.Loan
	if err := db.Where("id = ?", id).Take(&loan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return &loan, nil
}

// Exists reports whether a loan with the given primary key is visible to the
// given session.
func Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	if err := db.Model(&store.Loan{}).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// Insert stages the given loan for insertion using the given session.
func Insert(db *gorm.DB, loan *store.Loan) error {
	if err := db.Create(loan).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Create creates a new loan
func (r *Repository) Create(ctx context.Context, loan *store.Loan) error {
	return r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		return Insert(db, loan)
	})
}

// GetByID retrieves a loan by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*store.Loan, error) {
	var loan *store.Loan
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		l, err := Lookup(db, id)
		if err != nil {
			return errors.WithStack(err)
		}

		loan = l

		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Exists reports whether a loan with the given ID is stored
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		e, err := Exists(db, id)
		if err != nil {
			return errors.WithStack(err)
		}

		exists = e

		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// List retrieves all loans ordered by ID
func (r *Repository) List(ctx context.Context) ([]*store.Loan, error) {
	var loans []*store.Loan
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("id ASC").Find(&loans).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loans, nil
}

// Count returns the total number of loans
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&store.Loan{}).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
