package store

import (
	"time"

	"github.com/rs/xid"
)

type SeedRun struct {
	ID         string `gorm:"primarykey"`
	Name       string `gorm:"index"`
	Inserted   int
	ExecutedAt time.Time `gorm:"index"`
}

func NewSeedRun(name string, inserted int, executedAt time.Time) *SeedRun {
	return &SeedRun{
		ID:         xid.New().String(),
		Name:       name,
		Inserted:   inserted,
		ExecutedAt: executedAt,
	}
}
