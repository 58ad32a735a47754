package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/dto"
	"studyplanner/internal/adapter/http/mapper"
	"studyplanner/internal/adapter/http/validation"
	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/apierrors"
)

type TestPeriodHandler struct {
	testPeriodService ports.TestPeriodService
}

func NewTestPeriodHandler(testPeriodService ports.TestPeriodService) *TestPeriodHandler {
	return &TestPeriodHandler{testPeriodService: testPeriodService}
}

func (h *TestPeriodHandler) ListTestPeriods(c *gin.Context) {
	var filter domain.TestPeriodFilter

	if raw := strings.TrimSpace(c.Query("grade")); raw != "" {
		grade, err := strconv.Atoi(raw)
		if err != nil || grade < 1 {
			abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidGrade)
			return
		}
		filter.Grade = &grade
	}
	if raw := strings.TrimSpace(c.Query("deleted")); raw != "" {
		deleted, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTestPeriodPayload)
			return
		}
		filter.Deleted = deleted
	}

	periods, err := h.testPeriodService.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListTestPeriods, "failed to list test periods")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTestPeriodItems(periods))
}

func (h *TestPeriodHandler) CreateTestPeriod(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateTestPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTestPeriodPayload)
		return
	}
	input, err := validation.BuildCreateTestPeriodInput(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTestPeriodPayload)
		return
	}

	period, err := h.testPeriodService.Create(c.Request.Context(), caller, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailSaveTestPeriod, "failed to create test period")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTestPeriodItem(period))
}

func (h *TestPeriodHandler) SoftDeleteTestPeriod(c *gin.Context) {
	h.mutate(c, h.testPeriodService.SoftDelete, "failed to soft delete test period")
}

func (h *TestPeriodHandler) RestoreTestPeriod(c *gin.Context) {
	h.mutate(c, h.testPeriodService.Restore, "failed to restore test period")
}

func (h *TestPeriodHandler) HardDeleteTestPeriod(c *gin.Context) {
	h.mutate(c, h.testPeriodService.HardDelete, "failed to delete test period")
}

type periodMutation func(ctx context.Context, caller domain.Identity, id uuid.UUID) error

func (h *TestPeriodHandler) mutate(c *gin.Context, apply periodMutation, logMsg string) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	periodID, ok := parseIDParam(c, apierrors.MsgInvalidTestPeriodID)
	if !ok {
		return
	}

	if err := apply(c.Request.Context(), caller, periodID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailSaveTestPeriod, logMsg, zap.Stringer("test_period_id", periodID))
		return
	}

	c.Status(http.StatusNoContent)
}
