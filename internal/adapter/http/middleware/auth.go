package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
	"studyplanner/pkg/apierrors"
)

const identityKey = "identity"

// Authenticate resolves the bearer token into a domain.Identity and aborts with 401
// when the token or its profile cannot be resolved.
func Authenticate(profiles ports.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		identity, err := profiles.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				zap.L().Debug("rejected bearer token", zap.Error(err))
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
				)
				return
			}

			zap.L().Error("failed to resolve caller identity", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailProfile, lang),
			)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

// SetIdentity is used by tests that mount handlers without Authenticate.
func SetIdentity(identity domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, identity)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	token := strings.Trim(fields[1], `"'`)
	return token, token != ""
}
