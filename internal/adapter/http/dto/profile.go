package dto

type ProfileItem struct {
	ID            string `json:"id"`
	Role          string `json:"role"`
	Grade         *int   `json:"grade,omitempty"`
	DisplayName   string `json:"display_name"`
	StudentNumber *int   `json:"student_number,omitempty"`
}
