package domain

import "github.com/google/uuid"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

type UserProfile struct {
	ID            uuid.UUID
	Role          Role
	Grade         *int
	DisplayName   string
	StudentNumber *int
}

// Identity is the caller resolved from a bearer token and its profile.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func NewIdentity(profile UserProfile) Identity {
	return Identity{UserID: profile.ID, Role: profile.Role}
}

func (i Identity) IsTeacher() bool {
	return i.Role == RoleTeacher
}

// CanViewStudent reports whether the caller may read the tasks and stats of studentID.
func (i Identity) CanViewStudent(studentID uuid.UUID) bool {
	return i.IsTeacher() || i.UserID == studentID
}

func (i Identity) CanManageTasks() bool {
	return i.IsTeacher()
}

// CanUpdateTask reports whether the caller may change the status of task.
func (i Identity) CanUpdateTask(task Task) bool {
	return i.IsTeacher() || i.UserID == task.AssignedTo
}
