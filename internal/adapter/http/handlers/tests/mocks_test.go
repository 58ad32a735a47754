package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/stats"
	"studyplanner/pkg/apierrors"
	"studyplanner/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, caller domain.Identity, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, caller, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, caller domain.Identity, input domain.CreateTaskInput) ([]domain.Task, error) {
	args := m.Called(ctx, caller, input)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTaskStatus(
	ctx context.Context,
	caller domain.Identity,
	taskID uuid.UUID,
	input domain.UpdateTaskStatusInput,
) (domain.Task, error) {
	args := m.Called(ctx, caller, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, caller domain.Identity, taskID uuid.UUID) error {
	return m.Called(ctx, caller, taskID).Error(0)
}

type statsServiceMock struct {
	mock.Mock
}

func (m *statsServiceMock) Summary(
	ctx context.Context,
	caller domain.Identity,
	studentID uuid.UUID,
	periodIDs []uuid.UUID,
) (stats.Summary, error) {
	args := m.Called(ctx, caller, studentID, periodIDs)
	return args.Get(0).(stats.Summary), args.Error(1)
}

func (m *statsServiceMock) Subjects(
	ctx context.Context,
	caller domain.Identity,
	studentID uuid.UUID,
	periodIDs []uuid.UUID,
) ([]stats.SubjectStats, error) {
	args := m.Called(ctx, caller, studentID, periodIDs)

	var groups []stats.SubjectStats
	if value := args.Get(0); value != nil {
		groups = value.([]stats.SubjectStats)
	}
	return groups, args.Error(1)
}

func (m *statsServiceMock) Dashboard(ctx context.Context, caller domain.Identity, studentID uuid.UUID) (stats.DailyDashboard, error) {
	args := m.Called(ctx, caller, studentID)
	return args.Get(0).(stats.DailyDashboard), args.Error(1)
}

type testPeriodServiceMock struct {
	mock.Mock
}

func (m *testPeriodServiceMock) List(ctx context.Context, filter domain.TestPeriodFilter) ([]domain.TestPeriod, error) {
	args := m.Called(ctx, filter)

	var periods []domain.TestPeriod
	if value := args.Get(0); value != nil {
		periods = value.([]domain.TestPeriod)
	}
	return periods, args.Error(1)
}

func (m *testPeriodServiceMock) Create(
	ctx context.Context,
	caller domain.Identity,
	input domain.CreateTestPeriodInput,
) (domain.TestPeriod, error) {
	args := m.Called(ctx, caller, input)
	return args.Get(0).(domain.TestPeriod), args.Error(1)
}

func (m *testPeriodServiceMock) SoftDelete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *testPeriodServiceMock) Restore(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *testPeriodServiceMock) HardDelete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	return m.Called(ctx, caller, id).Error(0)
}

type profileServiceMock struct {
	mock.Mock
}

func (m *profileServiceMock) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Identity), args.Error(1)
}

func (m *profileServiceMock) Me(ctx context.Context, caller domain.Identity) (domain.UserProfile, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func (m *profileServiceMock) ListStudents(ctx context.Context, caller domain.Identity, grade int) ([]domain.UserProfile, error) {
	args := m.Called(ctx, caller, grade)

	var profiles []domain.UserProfile
	if value := args.Get(0); value != nil {
		profiles = value.([]domain.UserProfile)
	}
	return profiles, args.Error(1)
}

var (
	teacherIdentity = domain.Identity{UserID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Role: domain.RoleTeacher}
	studentIdentity = domain.Identity{UserID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Role: domain.RoleStudent}
)

// newRouter mounts one handler behind the language middleware, authenticated as caller.
func newRouter(method, path string, caller domain.Identity, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Handle(method, path, middleware.LanguageMiddleware(), middleware.SetIdentity(caller), handler)
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, code, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}

