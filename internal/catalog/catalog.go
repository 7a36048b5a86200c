package catalog

import (
	"github.com/bornholm/loanseed/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default returns the sample loans seeded into a fresh database. A new slice
// is built on every call.
func Default() []Record {
	return []Record{
		{
			ID:              uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			BorrowerID:      "usr_kenya_001",
			Amount:          decimal.RequireFromString("12500.00"),
			Currency:        "KES",
			Status:          store.LoanStatusPending,
			TermMonths:      months(6),
			InterestRateAPR: rate("28.00"),
		},
		{
			ID:              uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			BorrowerID:      "usr_india_002",
			Amount:          decimal.RequireFromString("50000.00"),
			Currency:        "INR",
			Status:          store.LoanStatusApproved,
			TermMonths:      months(12),
			InterestRateAPR: rate("24.00"),
		},
		{
			ID:              uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			BorrowerID:      "usr_nigeria_003",
			Amount:          decimal.RequireFromString("32000.00"),
			Currency:        "NGN",
			Status:          store.LoanStatusRejected,
			TermMonths:      months(9),
			InterestRateAPR: rate("30.00"),
		},
		{
			ID:              uuid.MustParse("00000000-0000-0000-0000-000000000004"),
			BorrowerID:      "usr_vietnam_004",
			Amount:          decimal.RequireFromString("8400.00"),
			Currency:        "VND",
			Status:          store.LoanStatusDisbursed,
			TermMonths:      months(4),
			InterestRateAPR: rate("26.00"),
		},
		{
			ID:              uuid.MustParse("00000000-0000-0000-0000-000000000005"),
			BorrowerID:      "usr_philippines_005",
			Amount:          decimal.RequireFromString("21000.00"),
			Currency:        "PHP",
			Status:          store.LoanStatusRepaid,
			TermMonths:      months(6),
			InterestRateAPR: rate("22.00"),
		},
	}
}

func months(n int) *int {
	return &n
}

func rate(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}
