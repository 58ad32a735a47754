package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskType string

const (
	TaskTypeSingle  TaskType = "single"
	TaskTypeParent  TaskType = "parent"
	TaskTypeSubtask TaskType = "subtask"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeSingle, TaskTypeParent, TaskTypeSubtask:
		return true
	}
	return false
}

type Task struct {
	ID               uuid.UUID
	Title            string
	Subject          string
	Status           TaskStatus
	TaskType         TaskType
	ParentTaskID     *uuid.UUID
	DueDate          *time.Time
	AssignedTo       uuid.UUID
	TestPeriodID     *uuid.UUID
	CompletedAt      *time.Time
	EstimatedMinutes *int
	ActualMinutes    *int
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ApplyStatus sets the status and keeps completed_at in step with it.
// Transition order is not enforced.
func (t *Task) ApplyStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status == TaskStatusCompleted {
		if t.CompletedAt == nil {
			completedAt := now
			t.CompletedAt = &completedAt
		}
		return
	}
	t.CompletedAt = nil
}

type CreateTaskInput struct {
	Title            string
	Subject          string
	TaskType         TaskType
	ParentTaskID     *uuid.UUID
	DueDate          *time.Time
	AssignedTo       *uuid.UUID
	TestPeriodID     uuid.UUID
	EstimatedMinutes *int
}

type UpdateTaskStatusInput struct {
	Status        TaskStatus
	ActualMinutes *int
}

type TaskFilter struct {
	StudentID uuid.UUID
	PeriodIDs []uuid.UUID
}
