package middleware

import (
	"strings"

	infraRepo "github.com/clinicbook/receipts-api/internal/infrastructure/repository"
	"github.com/clinicbook/receipts-api/internal/presentation/http/dto/response"
	"github.com/clinicbook/receipts-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a JWT authentication middleware. Besides populating
// the Gin context it stamps the owner ID onto the request context so every
// repository query is row-scoped to the caller.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		ctx := infraRepo.WithOwner(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin creates a middleware that requires the admin role. Admin
// requests also skip the owner scope so cross-user listings work.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != "admin" {
			response.Forbidden(c, "Administrator access required")
			c.Abort()
			return
		}

		ctx := infraRepo.WithSkipOwnerScope(c.Request.Context(), true)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
