package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/mapper"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/apierrors"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Me(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailProfile, "failed to load profile", zap.Stringer("user_id", caller.UserID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfileItem(profile))
}

func (h *ProfileHandler) ListStudents(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	grade, err := strconv.Atoi(c.Query("grade"))
	if err != nil || grade < 1 {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidGrade)
		return
	}

	students, err := h.profileService.ListStudents(c.Request.Context(), caller, grade)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailProfile, "failed to list students", zap.Int("grade", grade))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfileItems(students))
}
