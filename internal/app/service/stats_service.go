package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
	"studyplanner/internal/core/stats"
)

type StatsService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
	location       *time.Location
}

// NewStatsService builds the service. Calendar days for the dashboard are taken in location.
func NewStatsService(taskRepository ports.TaskRepository, now func() time.Time, location *time.Location) *StatsService {
	if location == nil {
		location = time.Local
	}
	return &StatsService{taskRepository: taskRepository, now: now, location: location}
}

func (s *StatsService) Summary(
	ctx context.Context,
	caller domain.Identity,
	studentID uuid.UUID,
	periodIDs []uuid.UUID,
) (stats.Summary, error) {
	tasks, err := s.fetch(ctx, caller, studentID, periodIDs)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(tasks, s.now()), nil
}

func (s *StatsService) Subjects(
	ctx context.Context,
	caller domain.Identity,
	studentID uuid.UUID,
	periodIDs []uuid.UUID,
) ([]stats.SubjectStats, error) {
	tasks, err := s.fetch(ctx, caller, studentID, periodIDs)
	if err != nil {
		return nil, err
	}
	return stats.BySubject(tasks), nil
}

func (s *StatsService) Dashboard(ctx context.Context, caller domain.Identity, studentID uuid.UUID) (stats.DailyDashboard, error) {
	tasks, err := s.fetch(ctx, caller, studentID, nil)
	if err != nil {
		return stats.DailyDashboard{}, err
	}
	return stats.Dashboard(tasks, s.now().In(s.location)), nil
}

func (s *StatsService) fetch(
	ctx context.Context,
	caller domain.Identity,
	studentID uuid.UUID,
	periodIDs []uuid.UUID,
) ([]domain.Task, error) {
	if !caller.CanViewStudent(studentID) {
		return nil, domain.ErrForbidden
	}
	tasks, err := s.taskRepository.ListByAssignee(ctx, studentID, periodIDs)
	if err != nil {
		return nil, err
	}
	// Re-apply the scope on top of the store filter.
	return stats.FilterTasks(tasks, stats.Scope{AssignedTo: studentID, PeriodIDs: periodIDs}), nil
}

var _ ports.StatsService = (*StatsService)(nil)
