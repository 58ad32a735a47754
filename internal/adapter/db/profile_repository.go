package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const profileColumns = `id, role, grade, display_name, student_number`

type ProfileRepository struct {
	db *sqlx.DB
}

type profileRow struct {
	ID            uuid.UUID     `db:"id"`
	Role          string        `db:"role"`
	Grade         sql.NullInt64 `db:"grade"`
	DisplayName   string        `db:"display_name"`
	StudentNumber sql.NullInt64 `db:"student_number"`
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error) {
	var row profileRow
	if err := r.db.GetContext(ctx, &row, "SELECT "+profileColumns+" FROM profiles WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserProfile{}, domain.ErrProfileNotFound
		}
		return domain.UserProfile{}, fmt.Errorf("find profile %s: %w", id, err)
	}
	return mapProfileRow(row), nil
}

func (r *ProfileRepository) ListStudentsByGrade(ctx context.Context, grade int) ([]domain.UserProfile, error) {
	var rows []profileRow
	query := "SELECT " + profileColumns + " FROM profiles WHERE role = ? AND grade = ? " +
		"ORDER BY student_number IS NULL, student_number, display_name"
	if err := r.db.SelectContext(ctx, &rows, query, string(domain.RoleStudent), grade); err != nil {
		return nil, fmt.Errorf("list students of grade %d: %w", grade, err)
	}

	profiles := make([]domain.UserProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, mapProfileRow(row))
	}
	return profiles, nil
}

func mapProfileRow(row profileRow) domain.UserProfile {
	return domain.UserProfile{
		ID:            row.ID,
		Role:          domain.Role(row.Role),
		Grade:         nullIntPtr(row.Grade),
		DisplayName:   row.DisplayName,
		StudentNumber: nullIntPtr(row.StudentNumber),
	}
}
