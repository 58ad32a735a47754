package mapper

import (
	"time"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/domain"
)

func ToTestPeriodItems(periods []domain.TestPeriod) []dto.TestPeriodItem {
	items := make([]dto.TestPeriodItem, 0, len(periods))
	for _, period := range periods {
		items = append(items, ToTestPeriodItem(period))
	}
	return items
}

func ToTestPeriodItem(period domain.TestPeriod) dto.TestPeriodItem {
	item := dto.TestPeriodItem{
		ID:        period.ID.String(),
		Title:     period.Title,
		StartDate: period.StartDate.Format(time.DateOnly),
		EndDate:   period.EndDate.Format(time.DateOnly),
		Grade:     period.Grade,
		CreatedBy: period.CreatedBy.String(),
		CreatedAt: period.CreatedAt.Format(time.RFC3339),
	}
	if period.DeletedAt != nil {
		value := period.DeletedAt.Format(time.RFC3339)
		item.DeletedAt = &value
	}
	return item
}
