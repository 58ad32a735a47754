package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

type TestPeriodService struct {
	testPeriodRepository ports.TestPeriodRepository
	now                  func() time.Time
}

func NewTestPeriodService(testPeriodRepository ports.TestPeriodRepository, now func() time.Time) *TestPeriodService {
	return &TestPeriodService{testPeriodRepository: testPeriodRepository, now: now}
}

func (s *TestPeriodService) List(ctx context.Context, filter domain.TestPeriodFilter) ([]domain.TestPeriod, error) {
	return s.testPeriodRepository.List(ctx, filter)
}

func (s *TestPeriodService) Create(
	ctx context.Context,
	caller domain.Identity,
	input domain.CreateTestPeriodInput,
) (domain.TestPeriod, error) {
	if !caller.IsTeacher() {
		return domain.TestPeriod{}, domain.ErrForbidden
	}
	if input.EndDate.Before(input.StartDate) {
		return domain.TestPeriod{}, domain.ErrInvalidDateRange
	}

	period := domain.TestPeriod{
		ID:        uuid.New(),
		Title:     input.Title,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Grade:     input.Grade,
		CreatedBy: caller.UserID,
		CreatedAt: s.now(),
	}
	if err := s.testPeriodRepository.Create(ctx, period); err != nil {
		return domain.TestPeriod{}, err
	}
	return period, nil
}

func (s *TestPeriodService) SoftDelete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	period, err := s.findForTeacher(ctx, caller, id)
	if err != nil {
		return err
	}
	if period.IsDeleted() {
		return nil
	}
	deletedAt := s.now()
	return s.testPeriodRepository.SetDeletedAt(ctx, id, &deletedAt)
}

func (s *TestPeriodService) Restore(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	period, err := s.findForTeacher(ctx, caller, id)
	if err != nil {
		return err
	}
	if !period.IsDeleted() {
		return nil
	}
	return s.testPeriodRepository.SetDeletedAt(ctx, id, nil)
}

// HardDelete removes a soft-deleted period for good. Tasks pointing at the period
// are left untouched.
func (s *TestPeriodService) HardDelete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	period, err := s.findForTeacher(ctx, caller, id)
	if err != nil {
		return err
	}
	if !period.IsDeleted() {
		return domain.ErrTestPeriodActive
	}
	return s.testPeriodRepository.Delete(ctx, id)
}

func (s *TestPeriodService) findForTeacher(ctx context.Context, caller domain.Identity, id uuid.UUID) (domain.TestPeriod, error) {
	if !caller.IsTeacher() {
		return domain.TestPeriod{}, domain.ErrForbidden
	}
	return s.testPeriodRepository.FindByID(ctx, id)
}

var _ ports.TestPeriodService = (*TestPeriodService)(nil)
