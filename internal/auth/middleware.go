package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cnlearn/cnlearn/internal/apperr"
)

// ContextUserKey is the gin context key under which the middleware stores
// the resolved *UserOut.
const ContextUserKey = "current_user"

// Middleware authenticates requests via the Authorization header. A
// missing or non-bearer header is a 401; a token that fails verification
// is a 403, matching the distinction between "no credentials" and "bad
// credentials".
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		user, err := service.CurrentUser(tokenString)
		if err != nil {
			switch apperr.KindOf(err) {
			case apperr.KindInvalidCredentials:
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": err.Error()})
			case apperr.KindNotFound:
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			}
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the authenticated user stored by Middleware, or
// nil when the request was not authenticated.
func UserFromContext(c *gin.Context) *UserOut {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*UserOut)
	if !ok {
		return nil
	}
	return user
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
