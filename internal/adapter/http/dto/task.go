package dto

type TaskItem struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Subject          *string `json:"subject"`
	Status           string  `json:"status"`
	TaskType         string  `json:"task_type"`
	ParentTaskID     *string `json:"parent_task_id,omitempty"`
	DueDate          *string `json:"due_date"`
	AssignedTo       string  `json:"assigned_to"`
	TestPeriodID     *string `json:"test_period_id,omitempty"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	EstimatedMinutes *int    `json:"estimated_minutes,omitempty"`
	ActualMinutes    *int    `json:"actual_minutes,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// CreateTaskRequest assigns to every student of the period's grade when assigned_to is omitted.
type CreateTaskRequest struct {
	Title            string  `json:"title" binding:"required,max=255"`
	Subject          *string `json:"subject" binding:"omitempty,max=64"`
	TaskType         *string `json:"task_type" binding:"omitempty,task_type"`
	ParentTaskID     *string `json:"parent_task_id" binding:"omitempty,uuid"`
	DueDate          *string `json:"due_date" binding:"omitempty,due_date"`
	AssignedTo       *string `json:"assigned_to" binding:"omitempty,uuid"`
	TestPeriodID     string  `json:"test_period_id" binding:"required,uuid"`
	EstimatedMinutes *int    `json:"estimated_minutes" binding:"omitempty,gte=0,lte=1440"`
}

type UpdateTaskStatusRequest struct {
	Status        string `json:"status" binding:"required,task_status"`
	ActualMinutes *int   `json:"actual_minutes" binding:"omitempty,gte=0,lte=1440"`
}
