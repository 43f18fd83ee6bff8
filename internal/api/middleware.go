package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context key for the authenticated user
const ContextUserKey = "currentUser"

// Fixed messages for the authentication and role gates.
const (
	msgTokenMissing     = "Token is missing"
	msgTokenInvalid     = "Token is invalid"
	msgUnauthorizedRole = "User role not authorized for this action"
)

// AuthMiddleware creates a Gin middleware that authenticates the
// session cookie and loads the identified user into the context. It is
// the prerequisite gate in front of every authenticated operation.
func AuthMiddleware(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abortWithError(c, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			// Signature failure, expiry, and a deleted user all look
			// the same to the caller.
			abortWithError(c, http.StatusUnauthorized, msgTokenInvalid)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RoleMiddleware creates middleware to check that the authenticated
// user has one of the allowed roles. Must run AFTER AuthMiddleware.
// A wrong role is Unauthorized, matching the error taxonomy, not 403.
func RoleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := currentUser(c)
		if err != nil {
			// This should not happen if AuthMiddleware ran correctly
			abortWithError(c, http.StatusInternalServerError, "User not found in context")
			return
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusUnauthorized, msgUnauthorizedRole)
	}
}

// Helper to return JSON error response and abort the request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// currentUser returns the authenticated user set by AuthMiddleware.
func currentUser(c *gin.Context) (*domain.User, error) {
	raw, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	user, ok := raw.(*domain.User)
	if !ok {
		return nil, errors.New("invalid user type in context")
	}
	return user, nil
}
