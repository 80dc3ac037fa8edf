package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yash932/Backend-Node/utils"
)

// Context keys set by the gates for downstream handlers.
const (
	UserIDKey  = "user_id"
	IsAdminKey = "is_admin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Role comparison is case-insensitive for both gates.
func isAdminRole(role string) bool {
	return strings.EqualFold(role, "admin")
}

// RequireAdmin rejects requests without a valid token for an admin user.
// On success the user's id is stored in the request context.
func RequireAdmin(tm *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.String(http.StatusForbidden, "No token provided.")
			c.Abort()
			return
		}

		claims, err := tm.Parse(token)
		if err != nil {
			logrus.WithError(err).Warn("token verification error")
			c.String(http.StatusInternalServerError, "Failed to authenticate token.")
			c.Abort()
			return
		}
		logrus.WithFields(logrus.Fields{"id": claims.ID, "email": claims.Email, "role": claims.Role}).Debug("decoded token")

		if !isAdminRole(claims.Role) {
			c.String(http.StatusForbidden, "Access denied. Admins only.")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.ID)
		c.Next()
	}
}

// RequireUser rejects requests without a valid token but accepts any role.
// The user's id and an admin flag are stored in the request context.
func RequireUser(tm *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.String(http.StatusForbidden, "No token provided.")
			c.Abort()
			return
		}

		claims, err := tm.Parse(token)
		if err != nil {
			logrus.WithError(err).Warn("token verification error")
			c.String(http.StatusInternalServerError, "Failed to authenticate token.")
			c.Abort()
			return
		}
		logrus.WithFields(logrus.Fields{"id": claims.ID, "email": claims.Email, "role": claims.Role}).Debug("decoded token")

		c.Set(UserIDKey, claims.ID)
		c.Set(IsAdminKey, isAdminRole(claims.Role))
		c.Next()
	}
}
