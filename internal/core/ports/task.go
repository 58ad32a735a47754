package ports

import (
	"context"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
)

type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Task, error)
	// ListByAssignee returns the student's tasks, restricted to periodIDs when non-empty.
	ListByAssignee(ctx context.Context, studentID uuid.UUID, periodIDs []uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, tasks []domain.Task) error
	UpdateStatus(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskService interface {
	ListTasks(ctx context.Context, caller domain.Identity, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, caller domain.Identity, input domain.CreateTaskInput) ([]domain.Task, error)
	UpdateTaskStatus(ctx context.Context, caller domain.Identity, taskID uuid.UUID, input domain.UpdateTaskStatusInput) (domain.Task, error)
	DeleteTask(ctx context.Context, caller domain.Identity, taskID uuid.UUID) error
}
