package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

type TaskService struct {
	taskRepository       ports.TaskRepository
	testPeriodRepository ports.TestPeriodRepository
	profileRepository    ports.ProfileRepository
	now                  func() time.Time
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	testPeriodRepository ports.TestPeriodRepository,
	profileRepository ports.ProfileRepository,
	now func() time.Time,
) *TaskService {
	return &TaskService{
		taskRepository:       taskRepository,
		testPeriodRepository: testPeriodRepository,
		profileRepository:    profileRepository,
		now:                  now,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, caller domain.Identity, filter domain.TaskFilter) ([]domain.Task, error) {
	studentID := filter.StudentID
	if studentID == uuid.Nil {
		studentID = caller.UserID
	}
	if !caller.CanViewStudent(studentID) {
		return nil, domain.ErrForbidden
	}
	return s.taskRepository.ListByAssignee(ctx, studentID, filter.PeriodIDs)
}

// CreateTask creates one task per assignee. Without an explicit assignee a subtask
// follows its parent and any other task goes to every student of the period's grade.
func (s *TaskService) CreateTask(ctx context.Context, caller domain.Identity, input domain.CreateTaskInput) ([]domain.Task, error) {
	if !caller.CanManageTasks() {
		return nil, domain.ErrForbidden
	}

	period, err := s.testPeriodRepository.FindByID(ctx, input.TestPeriodID)
	if err != nil {
		return nil, err
	}
	if period.IsDeleted() {
		return nil, domain.ErrTestPeriodDeleted
	}

	taskType := input.TaskType
	if taskType == "" {
		taskType = domain.TaskTypeSingle
	}

	var parent *domain.Task
	if taskType == domain.TaskTypeSubtask {
		if input.ParentTaskID == nil {
			return nil, domain.ErrParentTaskNotFound
		}
		found, err := s.taskRepository.FindByID(ctx, *input.ParentTaskID)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return nil, domain.ErrParentTaskNotFound
			}
			return nil, err
		}
		parent = &found
	}

	assignees, err := s.resolveAssignees(ctx, input.AssignedTo, parent, period)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tasks := make([]domain.Task, 0, len(assignees))
	for _, assignee := range assignees {
		periodID := period.ID
		task := domain.Task{
			ID:               uuid.New(),
			Title:            input.Title,
			Subject:          input.Subject,
			Status:           domain.TaskStatusNotStarted,
			TaskType:         taskType,
			DueDate:          input.DueDate,
			AssignedTo:       assignee,
			TestPeriodID:     &periodID,
			EstimatedMinutes: input.EstimatedMinutes,
			CreatedBy:        caller.UserID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if parent != nil {
			parentID := parent.ID
			task.ParentTaskID = &parentID
		}
		tasks = append(tasks, task)
	}

	if err := s.taskRepository.Create(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) resolveAssignees(
	ctx context.Context,
	assignedTo *uuid.UUID,
	parent *domain.Task,
	period domain.TestPeriod,
) ([]uuid.UUID, error) {
	if assignedTo != nil {
		if _, err := s.profileRepository.FindByID(ctx, *assignedTo); err != nil {
			return nil, err
		}
		return []uuid.UUID{*assignedTo}, nil
	}
	if parent != nil {
		return []uuid.UUID{parent.AssignedTo}, nil
	}

	students, err := s.profileRepository.ListStudentsByGrade(ctx, period.Grade)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, domain.ErrNoStudentsInGrade
	}
	ids := make([]uuid.UUID, 0, len(students))
	for _, student := range students {
		ids = append(ids, student.ID)
	}
	return ids, nil
}

func (s *TaskService) UpdateTaskStatus(
	ctx context.Context,
	caller domain.Identity,
	taskID uuid.UUID,
	input domain.UpdateTaskStatusInput,
) (domain.Task, error) {
	if !input.Status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !caller.CanUpdateTask(task) {
		return domain.Task{}, domain.ErrForbidden
	}

	now := s.now()
	task.ApplyStatus(input.Status, now)
	if input.ActualMinutes != nil {
		task.ActualMinutes = input.ActualMinutes
	}
	task.UpdatedAt = now

	if err := s.taskRepository.UpdateStatus(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, caller domain.Identity, taskID uuid.UUID) error {
	if !caller.CanManageTasks() {
		return domain.ErrForbidden
	}
	if _, err := s.taskRepository.FindByID(ctx, taskID); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
