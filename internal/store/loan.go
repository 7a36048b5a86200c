package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Decimal columns are stored as text: SQLite numeric affinity would round
// them to 64-bit floats.
type Loan struct {
	ID uuid.UUID `gorm:"type:uuid;primarykey"`

	BorrowerID string          `gorm:"index;not null"`
	Amount     decimal.Decimal `gorm:"type:text;not null"`
	Currency   string          `gorm:"size:3;not null;check:length(currency) = 3"`
	Status     LoanStatus      `gorm:"index;not null"`

	TermMonths      *int                // Nullable
	InterestRateAPR decimal.NullDecimal `gorm:"column:interest_rate_apr;type:text"` // Nullable

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoanStatus is stored as-is: the known values below are not enforced.
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusApproved  LoanStatus = "approved"
	LoanStatusRejected  LoanStatus = "rejected"
	LoanStatusDisbursed LoanStatus = "disbursed"
	LoanStatusRepaid    LoanStatus = "repaid"
)
