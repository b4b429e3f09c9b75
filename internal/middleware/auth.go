package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/services"
)

// TokenParser validates an admin access token
type TokenParser interface {
	ParseToken(token string) (*services.Claims, error)
}

// RequireAdmin validates the bearer token of back-office requests
func RequireAdmin(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			unauthorized(c, "Authorization header must be in format: Bearer <token>")
			return
		}

		claims, err := parser.ParseToken(tokenParts[1])
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)
		c.Next()
	}
}

// GetAdmin returns the authenticated admin stored by RequireAdmin
func GetAdmin(c *gin.Context) services.Actor {
	return services.Actor{
		ID:    c.GetString(AdminIDKey),
		Email: c.GetString(AdminEmailKey),
	}
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}
