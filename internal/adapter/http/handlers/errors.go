package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/middleware"
	"studyplanner/internal/core/domain"
	"studyplanner/pkg/apierrors"
)

var domainErrors = []apierrors.Mapping{
	{Err: domain.ErrUnauthenticated, Code: http.StatusUnauthorized, MsgKey: apierrors.MsgUnauthorized},
	{Err: domain.ErrForbidden, Code: http.StatusForbidden, MsgKey: apierrors.MsgForbidden},
	{Err: domain.ErrTaskNotFound, Code: http.StatusNotFound, MsgKey: apierrors.MsgTaskNotFound},
	{Err: domain.ErrParentTaskNotFound, Code: http.StatusNotFound, MsgKey: apierrors.MsgParentTaskNotFound},
	{Err: domain.ErrTestPeriodNotFound, Code: http.StatusNotFound, MsgKey: apierrors.MsgTestPeriodNotFound},
	{Err: domain.ErrProfileNotFound, Code: http.StatusNotFound, MsgKey: apierrors.MsgProfileNotFound},
	{Err: domain.ErrTestPeriodDeleted, Code: http.StatusConflict, MsgKey: apierrors.MsgTestPeriodDeleted},
	{Err: domain.ErrTestPeriodActive, Code: http.StatusConflict, MsgKey: apierrors.MsgTestPeriodActive},
	{Err: domain.ErrNoStudentsInGrade, Code: http.StatusUnprocessableEntity, MsgKey: apierrors.MsgNoStudentsInGrade},
	{Err: domain.ErrInvalidStatus, Code: http.StatusBadRequest, MsgKey: apierrors.MsgInvalidTaskPayload},
	{Err: domain.ErrInvalidDateRange, Code: http.StatusBadRequest, MsgKey: apierrors.MsgInvalidTestPeriodPayload},
}

func abortWithError(c *gin.Context, code int, msgKey string) {
	c.AbortWithStatusJSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}

// writeServiceError answers with the mapped domain error, or logs logMsg and
// responds 500 with failKey.
func writeServiceError(c *gin.Context, err error, failKey, logMsg string, fields ...zap.Field) {
	if mapping, ok := apierrors.Match(err, domainErrors); ok {
		abortWithError(c, mapping.Code, mapping.MsgKey)
		return
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	abortWithError(c, http.StatusInternalServerError, failKey)
}

func callerIdentity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, apierrors.MsgUnauthorized)
		return domain.Identity{}, false
	}
	return identity, true
}

func parseIDParam(c *gin.Context, msgKey string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, msgKey)
		return uuid.Nil, false
	}
	return id, true
}

// parseStudentID reads ?student_id. When it is absent the caller is used unless
// required is set.
func parseStudentID(c *gin.Context, caller domain.Identity, required bool) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query("student_id"))
	if raw == "" {
		if required {
			abortWithError(c, http.StatusBadRequest, apierrors.MsgMissingStudentID)
			return uuid.Nil, false
		}
		return caller.UserID, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidStudentID)
		return uuid.Nil, false
	}
	return id, true
}

// parsePeriodIDs accepts repeated and comma separated test_period_id values.
func parsePeriodIDs(c *gin.Context) ([]uuid.UUID, bool) {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, value := range c.QueryArray("test_period_id") {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				abortWithError(c, http.StatusBadRequest, apierrors.MsgInvalidTestPeriodID)
				return nil, false
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, true
}
