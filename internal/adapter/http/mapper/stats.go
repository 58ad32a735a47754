package mapper

import (
	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/core/stats"
)

func ToStatsSummary(summary stats.Summary) dto.StatsSummary {
	return dto.StatsSummary{
		Total:          summary.Total,
		Completed:      summary.Completed,
		InProgress:     summary.InProgress,
		NotStarted:     summary.NotStarted,
		Overdue:        summary.Overdue,
		CompletionRate: summary.CompletionRate,
	}
}

func ToSubjectStats(groups []stats.SubjectStats) []dto.SubjectStats {
	items := make([]dto.SubjectStats, 0, len(groups))
	for _, group := range groups {
		items = append(items, dto.SubjectStats{
			Subject:        group.Subject,
			Total:          group.Total,
			Completed:      group.Completed,
			CompletionRate: group.CompletionRate,
		})
	}
	return items
}

func ToDashboard(dashboard stats.DailyDashboard) dto.Dashboard {
	return dto.Dashboard{
		TodayTasks:      ToTaskItems(dashboard.TodayTasks),
		IncompleteTasks: ToTaskItems(dashboard.IncompleteTasks),
		Statistics: dto.DailyStatistics{
			Total:          dashboard.Statistics.Total,
			Completed:      dashboard.Statistics.Completed,
			CompletionRate: dashboard.Statistics.CompletionRate,
		},
	}
}
