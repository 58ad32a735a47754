package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const taskColumns = `
  id, title, subject, status, task_type, parent_task_id, due_date, assigned_to,
  test_period_id, completed_at, estimated_minutes, actual_minutes, created_by,
  created_at, updated_at`

const findTaskByIDQuery = `SELECT` + taskColumns + ` FROM tasks WHERE id = ?`

const listTasksByAssigneeQuery = `SELECT` + taskColumns + `
FROM tasks
WHERE assigned_to = ?
ORDER BY due_date IS NULL, due_date, created_at`

const listTasksByAssigneeAndPeriodsQuery = `SELECT` + taskColumns + `
FROM tasks
WHERE assigned_to = ? AND test_period_id IN (?)
ORDER BY due_date IS NULL, due_date, created_at`

const insertTaskQuery = `
INSERT INTO tasks (` + taskColumns + `)
VALUES (
  :id, :title, :subject, :status, :task_type, :parent_task_id, :due_date, :assigned_to,
  :test_period_id, :completed_at, :estimated_minutes, :actual_minutes, :created_by,
  :created_at, :updated_at
)`

const updateTaskStatusQuery = `
UPDATE tasks
SET status = ?, completed_at = ?, actual_minutes = ?, updated_at = ?
WHERE id = ?`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID               uuid.UUID      `db:"id"`
	Title            string         `db:"title"`
	Subject          sql.NullString `db:"subject"`
	Status           string         `db:"status"`
	TaskType         string         `db:"task_type"`
	ParentTaskID     uuid.NullUUID  `db:"parent_task_id"`
	DueDate          sql.NullTime   `db:"due_date"`
	AssignedTo       uuid.UUID      `db:"assigned_to"`
	TestPeriodID     uuid.NullUUID  `db:"test_period_id"`
	CompletedAt      sql.NullTime   `db:"completed_at"`
	EstimatedMinutes sql.NullInt64  `db:"estimated_minutes"`
	ActualMinutes    sql.NullInt64  `db:"actual_minutes"`
	CreatedBy        uuid.UUID      `db:"created_by"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("find task %s: %w", id, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, studentID uuid.UUID, periodIDs []uuid.UUID) ([]domain.Task, error) {
	query := listTasksByAssigneeQuery
	args := []any{studentID}
	if len(periodIDs) > 0 {
		ids := make([]string, 0, len(periodIDs))
		for _, id := range periodIDs {
			ids = append(ids, id.String())
		}
		expanded, expandedArgs, err := sqlx.In(listTasksByAssigneeAndPeriodsQuery, studentID, ids)
		if err != nil {
			return nil, fmt.Errorf("expand period filter: %w", err)
		}
		query = r.db.Rebind(expanded)
		args = expandedArgs
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks for %s: %w", studentID, err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, tasks []domain.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin task insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, task := range tasks {
		if _, err := tx.NamedExecContext(ctx, insertTaskQuery, mapDomainTaskToTaskRow(task)); err != nil {
			return fmt.Errorf("insert task %s: %w", task.ID, err)
		}
	}
	return tx.Commit()
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, task domain.Task) error {
	row := mapDomainTaskToTaskRow(task)
	if _, err := r.db.ExecContext(ctx, updateTaskStatusQuery, row.Status, row.CompletedAt, row.ActualMinutes, row.UpdatedAt, row.ID); err != nil {
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		Title:      row.Title,
		Subject:    row.Subject.String,
		Status:     domain.TaskStatus(row.Status),
		TaskType:   domain.TaskType(row.TaskType),
		AssignedTo: row.AssignedTo,
		CreatedBy:  row.CreatedBy,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.ParentTaskID.Valid {
		value := row.ParentTaskID.UUID
		task.ParentTaskID = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.TestPeriodID.Valid {
		value := row.TestPeriodID.UUID
		task.TestPeriodID = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	task.EstimatedMinutes = nullIntPtr(row.EstimatedMinutes)
	task.ActualMinutes = nullIntPtr(row.ActualMinutes)

	return task
}

func mapDomainTaskToTaskRow(task domain.Task) taskRow {
	row := taskRow{
		ID:         task.ID,
		Title:      task.Title,
		Subject:    sql.NullString{String: task.Subject, Valid: task.Subject != ""},
		Status:     string(task.Status),
		TaskType:   string(task.TaskType),
		AssignedTo: task.AssignedTo,
		CreatedBy:  task.CreatedBy,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}

	if task.ParentTaskID != nil {
		row.ParentTaskID = uuid.NullUUID{UUID: *task.ParentTaskID, Valid: true}
	}
	if task.DueDate != nil {
		row.DueDate = sql.NullTime{Time: *task.DueDate, Valid: true}
	}
	if task.TestPeriodID != nil {
		row.TestPeriodID = uuid.NullUUID{UUID: *task.TestPeriodID, Valid: true}
	}
	if task.CompletedAt != nil {
		row.CompletedAt = sql.NullTime{Time: *task.CompletedAt, Valid: true}
	}
	if task.EstimatedMinutes != nil {
		row.EstimatedMinutes = sql.NullInt64{Int64: int64(*task.EstimatedMinutes), Valid: true}
	}
	if task.ActualMinutes != nil {
		row.ActualMinutes = sql.NullInt64{Int64: int64(*task.ActualMinutes), Valid: true}
	}

	return row
}

func nullIntPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

// requireAffected maps an update that matched no row to notFound.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
