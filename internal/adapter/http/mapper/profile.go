package mapper

import (
	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

func ToProfileItems(profiles []domain.UserProfile) []dto.ProfileItem {
	items := make([]dto.ProfileItem, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, ToProfileItem(profile))
	}
	return items
}

func ToProfileItem(profile domain.UserProfile) dto.ProfileItem {
	return dto.ProfileItem{
		ID:            profile.ID.String(),
		Role:          string(profile.Role),
		Grade:         profile.Grade,
		DisplayName:   profile.DisplayName,
		StudentNumber: profile.StudentNumber,
	}
}
