package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alled0/databaseProject/internal/pkg/jwt"
	"github.com/alled0/databaseProject/internal/pkg/response"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// JWTAuth rejects requests without a valid Bearer token and stores the
// caller's identity in the context for downstream handlers.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, response.KindUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, response.KindUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.KindUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.AccountID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
