package ports

import (
	"context"

	"github.com/google/uuid"

	"studyplanner/internal/core/domain"
)

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error)
	ListStudentsByGrade(ctx context.Context, grade int) ([]domain.UserProfile, error)
}

type ProfileService interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
	Me(ctx context.Context, caller domain.Identity) (domain.UserProfile, error)
	ListStudents(ctx context.Context, caller domain.Identity, grade int) ([]domain.UserProfile, error)
}
