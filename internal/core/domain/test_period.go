package domain

import (
	"time"

	"github.com/google/uuid"
)

type TestPeriod struct {
	ID        uuid.UUID
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Grade     int
	CreatedBy uuid.UUID
	CreatedAt time.Time
	DeletedAt *time.Time
}

func (p TestPeriod) IsDeleted() bool {
	return p.DeletedAt != nil
}

type CreateTestPeriodInput struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Grade     int
}

type TestPeriodFilter struct {
	Grade   *int
	Deleted bool
}
