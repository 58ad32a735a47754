package dto

type TestPeriodItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Grade     int     `json:"grade"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
	DeletedAt *string `json:"deleted_at,omitempty"`
}

type CreateTestPeriodRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Grade     int    `json:"grade" binding:"required,gte=1,lte=12"`
}
