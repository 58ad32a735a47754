package apierrors

const (
	MsgUnauthorized             = "unauthorized"
	MsgForbidden                = "forbidden"
	MsgMissingStudentID         = "missingStudentID"
	MsgInvalidStudentID         = "invalidStudentID"
	MsgInvalidTaskID            = "invalidTaskID"
	MsgInvalidTestPeriodID      = "invalidTestPeriodID"
	MsgInvalidGrade             = "invalidGrade"
	MsgInvalidTaskPayload       = "invalidTaskPayload"
	MsgInvalidTestPeriodPayload = "invalidTestPeriodPayload"
	MsgTaskNotFound             = "taskNotFound"
	MsgParentTaskNotFound       = "parentTaskNotFound"
	MsgTestPeriodNotFound       = "testPeriodNotFound"
	MsgTestPeriodDeleted        = "testPeriodDeleted"
	MsgTestPeriodActive         = "testPeriodActive"
	MsgProfileNotFound          = "profileNotFound"
	MsgNoStudentsInGrade        = "noStudentsInGrade"
	MsgFailListTask             = "errorListTask"
	MsgFailCreateTask           = "failCreateTask"
	MsgFailUpdateTask           = "failUpdateTask"
	MsgFailDeleteTask           = "failDeleteTask"
	MsgFailStats                = "failStats"
	MsgFailListTestPeriods      = "failListTestPeriods"
	MsgFailSaveTestPeriod       = "failSaveTestPeriod"
	MsgFailProfile              = "failProfile"
)
