package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

var (
	ErrInvalidTaskPayload       = errors.New("invalid task payload")
	ErrInvalidTestPeriodPayload = errors.New("invalid test period payload")
)

// ParseDueDate accepts RFC 3339 timestamps or plain dates. A plain date is due at
// the last second of that day in loc.
func ParseDueDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(24*time.Hour - time.Second), nil
}

func BuildCreateTaskInput(req dto.CreateTaskRequest, loc *time.Location) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	periodID, err := uuid.Parse(req.TestPeriodID)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:            title,
		TaskType:         domain.TaskTypeSingle,
		TestPeriodID:     periodID,
		EstimatedMinutes: req.EstimatedMinutes,
	}

	if req.Subject != nil {
		input.Subject = strings.TrimSpace(*req.Subject)
	}

	if req.TaskType != nil {
		input.TaskType = domain.TaskType(*req.TaskType)
		if !input.TaskType.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	if req.ParentTaskID != nil {
		parentID, err := uuid.Parse(*req.ParentTaskID)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.ParentTaskID = &parentID
	}
	if input.TaskType == domain.TaskTypeSubtask && input.ParentTaskID == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if input.TaskType != domain.TaskTypeSubtask && input.ParentTaskID != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.AssignedTo = &assignee
	}

	if req.DueDate != nil {
		dueDate, err := ParseDueDate(*req.DueDate, loc)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &dueDate
	}

	return input, nil
}

func BuildUpdateTaskStatusInput(req dto.UpdateTaskStatusRequest) (domain.UpdateTaskStatusInput, error) {
	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		return domain.UpdateTaskStatusInput{}, ErrInvalidTaskPayload
	}
	return domain.UpdateTaskStatusInput{Status: status, ActualMinutes: req.ActualMinutes}, nil
}

func BuildCreateTestPeriodInput(req dto.CreateTestPeriodRequest) (domain.CreateTestPeriodInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTestPeriodInput{}, ErrInvalidTestPeriodPayload
	}
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return domain.CreateTestPeriodInput{}, ErrInvalidTestPeriodPayload
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return domain.CreateTestPeriodInput{}, ErrInvalidTestPeriodPayload
	}
	return domain.CreateTestPeriodInput{Title: title, StartDate: start, EndDate: end, Grade: req.Grade}, nil
}
