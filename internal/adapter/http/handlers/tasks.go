package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/adapter/http/mapper"
	"studyplanner/internal/adapter/http/validation"
	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
	location    *time.Location
}

// NewTaskHandler builds the handler. Plain due dates are read in location.
func NewTaskHandler(taskService ports.TaskService, location *time.Location) *TaskHandler {
	if location == nil {
		location = time.Local
	}
	return &TaskHandler{taskService: taskService, location: location}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	studentID, ok := parseStudentID(c, caller, false)
	if !ok {
		return
	}
	periodIDs, ok := parsePeriodIDs(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), caller, domain.TaskFilter{
		StudentID: studentID,
		PeriodIDs: periodIDs,
	})
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListTask, "failed to list tasks", zap.Stringer("student_id", studentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}
	input, err := validation.BuildCreateTaskInput(req, h.location)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	tasks, err := h.taskService.CreateTask(c.Request.Context(), caller, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateTask, "failed to create task",
			zap.Stringer("test_period_id", input.TestPeriodID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}
	input, err := validation.BuildUpdateTaskStatusInput(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), caller, taskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to update task status", zap.Stringer("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), caller, taskID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.Stringer("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}
