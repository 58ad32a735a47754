package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/mapper"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/apierrors"
)

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	studentID, ok := parseStudentID(c, caller, true)
	if !ok {
		return
	}
	periodIDs, ok := parsePeriodIDs(c)
	if !ok {
		return
	}

	summary, err := h.statsService.Summary(c.Request.Context(), caller, studentID, periodIDs)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailStats, "failed to compute summary", zap.Stringer("student_id", studentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatsSummary(summary))
}

func (h *StatsHandler) Subjects(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	studentID, ok := parseStudentID(c, caller, true)
	if !ok {
		return
	}
	periodIDs, ok := parsePeriodIDs(c)
	if !ok {
		return
	}

	groups, err := h.statsService.Subjects(c.Request.Context(), caller, studentID, periodIDs)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailStats, "failed to compute subject stats", zap.Stringer("student_id", studentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubjectStats(groups))
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	studentID, ok := parseStudentID(c, caller, false)
	if !ok {
		return
	}

	dashboard, err := h.statsService.Dashboard(c.Request.Context(), caller, studentID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailStats, "failed to build dashboard", zap.Stringer("student_id", studentID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboard(dashboard))
}
