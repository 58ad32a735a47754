// Package stats aggregates a student's tasks into completion statistics.
//
// Every function here is pure: callers fetch the tasks and inject the reference
// time, so the same input always yields the same output.
package stats

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
)

// UnclassifiedSubject is the bucket for tasks without a subject.
const UnclassifiedSubject = "unclassified"

type Summary struct {
	Total          int
	Completed      int
	InProgress     int
	NotStarted     int
	Overdue        int
	CompletionRate int
}

type SubjectStats struct {
	Subject        string
	Total          int
	Completed      int
	CompletionRate int
}

type DailyStatistics struct {
	Total          int
	Completed      int
	CompletionRate int
}

type DailyDashboard struct {
	TodayTasks      []domain.Task
	IncompleteTasks []domain.Task
	Statistics      DailyStatistics
}

// Scope narrows a task collection to one assignee and a set of test periods.
// Zero values disable the corresponding filter.
type Scope struct {
	AssignedTo uuid.UUID
	PeriodIDs  []uuid.UUID
}

func FilterTasks(tasks []domain.Task, scope Scope) []domain.Task {
	periods := make(map[uuid.UUID]struct{}, len(scope.PeriodIDs))
	for _, id := range scope.PeriodIDs {
		periods[id] = struct{}{}
	}

	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if scope.AssignedTo != uuid.Nil && task.AssignedTo != scope.AssignedTo {
			continue
		}
		if len(periods) > 0 {
			if task.TestPeriodID == nil {
				continue
			}
			if _, ok := periods[*task.TestPeriodID]; !ok {
				continue
			}
		}
		filtered = append(filtered, task)
	}
	return filtered
}

// Actionable drops parent tasks, which only group subtasks.
func Actionable(tasks []domain.Task) []domain.Task {
	actionable := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.TaskType == domain.TaskTypeParent {
			continue
		}
		actionable = append(actionable, task)
	}
	return actionable
}

func Summarize(tasks []domain.Task, now time.Time) Summary {
	var summary Summary
	for _, task := range Actionable(tasks) {
		summary.Total++
		switch task.Status {
		case domain.TaskStatusCompleted:
			summary.Completed++
		case domain.TaskStatusInProgress:
			summary.InProgress++
		case domain.TaskStatusNotStarted:
			summary.NotStarted++
		}
		if IsOverdue(task, now) {
			summary.Overdue++
		}
	}
	summary.CompletionRate = CompletionRate(summary.Completed, summary.Total)
	return summary
}

// BySubject groups actionable tasks by subject in first-seen order.
func BySubject(tasks []domain.Task) []SubjectStats {
	index := make(map[string]int)
	groups := make([]SubjectStats, 0)
	for _, task := range Actionable(tasks) {
		subject := subjectKey(task.Subject)
		i, ok := index[subject]
		if !ok {
			i = len(groups)
			index[subject] = i
			groups = append(groups, SubjectStats{Subject: subject})
		}
		groups[i].Total++
		if task.Status == domain.TaskStatusCompleted {
			groups[i].Completed++
		}
	}
	for i := range groups {
		groups[i].CompletionRate = CompletionRate(groups[i].Completed, groups[i].Total)
	}
	return groups
}

// Dashboard builds the single-day view. Today is the calendar day of now in now's
// location; parent tasks appear in the lists but not in the statistics.
func Dashboard(tasks []domain.Task, now time.Time) DailyDashboard {
	dashboard := DailyDashboard{
		TodayTasks:      make([]domain.Task, 0),
		IncompleteTasks: make([]domain.Task, 0),
	}
	for _, task := range tasks {
		if IsDueOn(task, now) {
			dashboard.TodayTasks = append(dashboard.TodayTasks, task)
		}
		if task.Status != domain.TaskStatusCompleted {
			dashboard.IncompleteTasks = append(dashboard.IncompleteTasks, task)
		}
	}

	summary := Summarize(tasks, now)
	dashboard.Statistics = DailyStatistics{
		Total:          summary.Total,
		Completed:      summary.Completed,
		CompletionRate: summary.CompletionRate,
	}
	return dashboard
}

func IsOverdue(task domain.Task, now time.Time) bool {
	if !hasDueDate(task) || task.Status == domain.TaskStatusCompleted {
		return false
	}
	return task.DueDate.Before(now)
}

// IsDueOn compares calendar dates only, in day's location.
func IsDueOn(task domain.Task, day time.Time) bool {
	if !hasDueDate(task) {
		return false
	}
	dy, dm, dd := task.DueDate.In(day.Location()).Date()
	y, m, d := day.Date()
	return dy == y && dm == m && dd == d
}

// CompletionRate is round-half-up percentage of completed over total, 0 for no tasks.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

func hasDueDate(task domain.Task) bool {
	return task.DueDate != nil && !task.DueDate.IsZero()
}

func subjectKey(subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return UnclassifiedSubject
	}
	return subject
}
