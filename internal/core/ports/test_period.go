package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
)

type TestPeriodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.TestPeriod, error)
	List(ctx context.Context, filter domain.TestPeriodFilter) ([]domain.TestPeriod, error)
	Create(ctx context.Context, period domain.TestPeriod) error
	SetDeletedAt(ctx context.Context, id uuid.UUID, deletedAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TestPeriodService interface {
	List(ctx context.Context, filter domain.TestPeriodFilter) ([]domain.TestPeriod, error)
	Create(ctx context.Context, caller domain.Identity, input domain.CreateTestPeriodInput) (domain.TestPeriod, error)
	SoftDelete(ctx context.Context, caller domain.Identity, id uuid.UUID) error
	Restore(ctx context.Context, caller domain.Identity, id uuid.UUID) error
	HardDelete(ctx context.Context, caller domain.Identity, id uuid.UUID) error
}
