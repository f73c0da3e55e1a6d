package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourbase/models"
	"tourbase/services/user"
	"tourbase/utils"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID = "userID"
	CtxEmail  = "userEmail"
	CtxRole   = "userRole"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthUserMiddleware validates the bearer token and requires it to still be
// allowlisted (i.e. not signed out).
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if !user.IsTokenActive(c.Request.Context(), tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked, please sign in again"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Set("authToken", tokenString)
		c.Next()
	}
}

// JWTAuthAdminMiddleware additionally requires the admin role. It must run
// after JWTAuthUserMiddleware.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CtxRole)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
