package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyplanner/internal/app/service"
	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/stats"
)

func TestStatsService_Summary_OwnStudent(t *testing.T) {
	caller := student()
	periodID := uuid.New()
	otherPeriod := uuid.New()
	yesterday := fixedNow.Add(-24 * time.Hour)

	repo := new(taskRepositoryMock)
	repo.On("ListByAssignee", mock.Anything, caller.UserID, []uuid.UUID{periodID}).Return([]domain.Task{
		{ID: uuid.New(), AssignedTo: caller.UserID, TestPeriodID: &periodID, Status: domain.TaskStatusCompleted, TaskType: domain.TaskTypeSingle},
		{ID: uuid.New(), AssignedTo: caller.UserID, TestPeriodID: &periodID, Status: domain.TaskStatusInProgress, TaskType: domain.TaskTypeSingle, DueDate: &yesterday},
		{ID: uuid.New(), AssignedTo: caller.UserID, TestPeriodID: &otherPeriod, Status: domain.TaskStatusCompleted, TaskType: domain.TaskTypeSingle},
	}, nil).Once()

	svc := service.NewStatsService(repo, clock, time.UTC)
	summary, err := svc.Summary(context.Background(), caller, caller.UserID, []uuid.UUID{periodID})

	require.NoError(t, err)
	require.Equal(t, stats.Summary{
		Total:          2,
		Completed:      1,
		InProgress:     1,
		Overdue:        1,
		CompletionRate: 50,
	}, summary)
	repo.AssertExpectations(t)
}

func TestStatsService_Summary_StudentCannotReadOtherStudent(t *testing.T) {
	repo := new(taskRepositoryMock)
	svc := service.NewStatsService(repo, clock, time.UTC)

	_, err := svc.Summary(context.Background(), student(), uuid.New(), nil)

	require.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "ListByAssignee", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatsService_Subjects_TeacherReadsAnyStudent(t *testing.T) {
	studentID := uuid.New()

	repo := new(taskRepositoryMock)
	repo.On("ListByAssignee", mock.Anything, studentID, mock.Anything).Return([]domain.Task{
		{AssignedTo: studentID, Subject: "math", Status: domain.TaskStatusCompleted, TaskType: domain.TaskTypeSingle},
		{AssignedTo: studentID, Subject: "math", Status: domain.TaskStatusNotStarted, TaskType: domain.TaskTypeSingle},
		{AssignedTo: studentID, Subject: "math", Status: domain.TaskStatusNotStarted, TaskType: domain.TaskTypeParent},
	}, nil).Once()

	svc := service.NewStatsService(repo, clock, time.UTC)
	got, err := svc.Subjects(context.Background(), teacher(), studentID, nil)

	require.NoError(t, err)
	require.Equal(t, []stats.SubjectStats{{Subject: "math", Total: 2, Completed: 1, CompletionRate: 50}}, got)
	repo.AssertExpectations(t)
}

func TestStatsService_Dashboard_UsesConfiguredLocation(t *testing.T) {
	caller := student()
	tokyo := time.FixedZone("JST", 9*60*60)
	// Midnight in Tokyo on 2026-03-10 is still 2026-03-09 in UTC.
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, tokyo)
	tasks := []domain.Task{
		{ID: uuid.New(), AssignedTo: caller.UserID, Status: domain.TaskStatusNotStarted, TaskType: domain.TaskTypeSingle, DueDate: &due},
	}

	repo := new(taskRepositoryMock)
	repo.On("ListByAssignee", mock.Anything, caller.UserID, mock.Anything).Return(tasks, nil).Twice()

	dashboard, err := service.NewStatsService(repo, clock, tokyo).Dashboard(context.Background(), caller, caller.UserID)
	require.NoError(t, err)
	require.Len(t, dashboard.TodayTasks, 1)
	require.Len(t, dashboard.IncompleteTasks, 1)
	require.Equal(t, stats.DailyStatistics{Total: 1, CompletionRate: 0}, dashboard.Statistics)

	dashboard, err = service.NewStatsService(repo, clock, time.UTC).Dashboard(context.Background(), caller, caller.UserID)
	require.NoError(t, err)
	require.Empty(t, dashboard.TodayTasks)
	repo.AssertExpectations(t)
}

func TestStatsService_PropagatesRepositoryError(t *testing.T) {
	caller := student()
	repo := new(taskRepositoryMock)
	repo.On("ListByAssignee", mock.Anything, caller.UserID, mock.Anything).Return(nil, errors.New("db is down")).Once()

	_, err := service.NewStatsService(repo, clock, time.UTC).Summary(context.Background(), caller, caller.UserID, nil)

	require.EqualError(t, err, "db is down")
	repo.AssertExpectations(t)
}
