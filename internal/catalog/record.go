package catalog

import (
	"github.com/bornholm/loanseed/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a literal loan entry of a seed catalog. A record with a nil ID
// is never inserted.
type Record struct {
	ID              uuid.UUID
	BorrowerID      string
	Amount          decimal.Decimal
	Currency        string
	Status          store.LoanStatus
	TermMonths      *int
	InterestRateAPR decimal.NullDecimal
}

func (r Record) HasID() bool {
	return r.ID != uuid.Nil
}

func (r Record) Loan() *store.Loan {
	loan := &store.Loan{
		ID:              r.ID,
		BorrowerID:      r.BorrowerID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Status:          r.Status,
		InterestRateAPR: r.InterestRateAPR,
	}

	if r.TermMonths != nil {
		term := *r.TermMonths
		loan.TermMonths = &term
	}

	return loan
}
