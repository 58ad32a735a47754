package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const testPeriodColumns = `id, title, start_date, end_date, grade, created_by, created_at, deleted_at`

type TestPeriodRepository struct {
	db *sqlx.DB
}

type testPeriodRow struct {
	ID        uuid.UUID    `db:"id"`
	Title     string       `db:"title"`
	StartDate time.Time    `db:"start_date"`
	EndDate   time.Time    `db:"end_date"`
	Grade     int          `db:"grade"`
	CreatedBy uuid.UUID    `db:"created_by"`
	CreatedAt time.Time    `db:"created_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

var _ ports.TestPeriodRepository = (*TestPeriodRepository)(nil)

func NewTestPeriodRepository(db *sqlx.DB) *TestPeriodRepository {
	return &TestPeriodRepository{db: db}
}

func (r *TestPeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.TestPeriod, error) {
	var row testPeriodRow
	query := "SELECT " + testPeriodColumns + " FROM test_periods WHERE id = ?"
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TestPeriod{}, domain.ErrTestPeriodNotFound
		}
		return domain.TestPeriod{}, fmt.Errorf("find test period %s: %w", id, err)
	}
	return mapTestPeriodRow(row), nil
}

// List returns active periods, or only soft-deleted ones when filter.Deleted is set.
func (r *TestPeriodRepository) List(ctx context.Context, filter domain.TestPeriodFilter) ([]domain.TestPeriod, error) {
	conditions := []string{"deleted_at IS NULL"}
	if filter.Deleted {
		conditions[0] = "deleted_at IS NOT NULL"
	}
	args := make([]any, 0, 1)
	if filter.Grade != nil {
		conditions = append(conditions, "grade = ?")
		args = append(args, *filter.Grade)
	}

	query := "SELECT " + testPeriodColumns + " FROM test_periods WHERE " +
		strings.Join(conditions, " AND ") + " ORDER BY start_date, title"

	var rows []testPeriodRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list test periods: %w", err)
	}

	periods := make([]domain.TestPeriod, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, mapTestPeriodRow(row))
	}
	return periods, nil
}

func (r *TestPeriodRepository) Create(ctx context.Context, period domain.TestPeriod) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO test_periods ("+testPeriodColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, NULL)",
		period.ID,
		period.Title,
		period.StartDate.Format(time.DateOnly),
		period.EndDate.Format(time.DateOnly),
		period.Grade,
		period.CreatedBy,
		period.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert test period: %w", err)
	}
	return nil
}

func (r *TestPeriodRepository) SetDeletedAt(ctx context.Context, id uuid.UUID, deletedAt *time.Time) error {
	value := sql.NullTime{}
	if deletedAt != nil {
		value = sql.NullTime{Time: *deletedAt, Valid: true}
	}
	if _, err := r.db.ExecContext(ctx, "UPDATE test_periods SET deleted_at = ? WHERE id = ?", value, id); err != nil {
		return fmt.Errorf("update test period %s: %w", id, err)
	}
	return nil
}

func (r *TestPeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM test_periods WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete test period %s: %w", id, err)
	}
	return requireAffected(result, domain.ErrTestPeriodNotFound)
}

func mapTestPeriodRow(row testPeriodRow) domain.TestPeriod {
	period := domain.TestPeriod{
		ID:        row.ID,
		Title:     row.Title,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		Grade:     row.Grade,
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt,
	}
	if row.DeletedAt.Valid {
		value := row.DeletedAt.Time
		period.DeletedAt = &value
	}
	return period
}
