package service

import (
	"context"
	"errors"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

type ProfileService struct {
	verifier          ports.TokenVerifier
	profileRepository ports.ProfileRepository
}

func NewProfileService(verifier ports.TokenVerifier, profileRepository ports.ProfileRepository) *ProfileService {
	return &ProfileService{verifier: verifier, profileRepository: profileRepository}
}

// Resolve turns a bearer token into the caller identity. A valid token without a
// profile is treated as unauthenticated.
func (s *ProfileService) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	userID, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return domain.Identity{}, err
	}
	profile, err := s.profileRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Identity{}, domain.ErrUnauthenticated
		}
		return domain.Identity{}, err
	}
	return domain.NewIdentity(profile), nil
}

func (s *ProfileService) Me(ctx context.Context, caller domain.Identity) (domain.UserProfile, error) {
	return s.profileRepository.FindByID(ctx, caller.UserID)
}

func (s *ProfileService) ListStudents(ctx context.Context, caller domain.Identity, grade int) ([]domain.UserProfile, error) {
	if !caller.IsTeacher() {
		return nil, domain.ErrForbidden
	}
	return s.profileRepository.ListStudentsByGrade(ctx, grade)
}

var _ ports.ProfileService = (*ProfileService)(nil)
