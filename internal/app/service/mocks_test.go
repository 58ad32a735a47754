package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"studyplanner/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListByAssignee(ctx context.Context, studentID uuid.UUID, periodIDs []uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, studentID, periodIDs)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, tasks []domain.Task) error {
	return m.Called(ctx, tasks).Error(0)
}

func (m *taskRepositoryMock) UpdateStatus(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type testPeriodRepositoryMock struct {
	mock.Mock
}

func (m *testPeriodRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (domain.TestPeriod, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TestPeriod), args.Error(1)
}

func (m *testPeriodRepositoryMock) List(ctx context.Context, filter domain.TestPeriodFilter) ([]domain.TestPeriod, error) {
	args := m.Called(ctx, filter)

	var periods []domain.TestPeriod
	if value := args.Get(0); value != nil {
		periods = value.([]domain.TestPeriod)
	}
	return periods, args.Error(1)
}

func (m *testPeriodRepositoryMock) Create(ctx context.Context, period domain.TestPeriod) error {
	return m.Called(ctx, period).Error(0)
}

func (m *testPeriodRepositoryMock) SetDeletedAt(ctx context.Context, id uuid.UUID, deletedAt *time.Time) error {
	return m.Called(ctx, id, deletedAt).Error(0)
}

func (m *testPeriodRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type profileRepositoryMock struct {
	mock.Mock
}

func (m *profileRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func (m *profileRepositoryMock) ListStudentsByGrade(ctx context.Context, grade int) ([]domain.UserProfile, error) {
	args := m.Called(ctx, grade)

	var profiles []domain.UserProfile
	if value := args.Get(0); value != nil {
		profiles = value.([]domain.UserProfile)
	}
	return profiles, args.Error(1)
}

type tokenVerifierMock struct {
	mock.Mock
}

func (m *tokenVerifierMock) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

var fixedNow = time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func teacher() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Role: domain.RoleTeacher}
}

func student() domain.Identity {
	return domain.Identity{UserID: uuid.New(), Role: domain.RoleStudent}
}
