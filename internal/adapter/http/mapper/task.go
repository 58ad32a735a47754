package mapper

import (
	"time"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:               task.ID.String(),
		Title:            task.Title,
		Status:           string(task.Status),
		TaskType:         string(task.TaskType),
		AssignedTo:       task.AssignedTo.String(),
		EstimatedMinutes: task.EstimatedMinutes,
		ActualMinutes:    task.ActualMinutes,
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Subject != "" {
		value := task.Subject
		item.Subject = &value
	}

	if task.ParentTaskID != nil {
		value := task.ParentTaskID.String()
		item.ParentTaskID = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	if task.TestPeriodID != nil {
		value := task.TestPeriodID.String()
		item.TestPeriodID = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	return item
}
