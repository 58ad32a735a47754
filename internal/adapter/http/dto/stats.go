package dto

// Stats payloads keep the camelCase keys the dashboard client reads.

type StatsSummary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"inProgress"`
	NotStarted     int `json:"notStarted"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completionRate"`
}

type SubjectStats struct {
	Subject        string `json:"subject"`
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	CompletionRate int    `json:"completionRate"`
}

type DailyStatistics struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completionRate"`
}

type Dashboard struct {
	TodayTasks      []TaskItem      `json:"todayTasks"`
	IncompleteTasks []TaskItem      `json:"incompleteTasks"`
	Statistics      DailyStatistics `json:"statistics"`
}
