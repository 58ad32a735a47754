package ports

import (
	"context"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/stats"
)

type StatsService interface {
	Summary(ctx context.Context, caller domain.Identity, studentID uuid.UUID, periodIDs []uuid.UUID) (stats.Summary, error)
	Subjects(ctx context.Context, caller domain.Identity, studentID uuid.UUID, periodIDs []uuid.UUID) ([]stats.SubjectStats, error)
	Dashboard(ctx context.Context, caller domain.Identity, studentID uuid.UUID) (stats.DailyDashboard, error)
}
