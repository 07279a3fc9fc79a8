package middlewares

import (
	"strings"

	"retail-api/utils/apperror"
	"retail-api/utils/common"
	"retail-api/utils/response"
	"retail-api/utils/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires "Authorization: Bearer <token>" and stores the
// token subject on the context.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, apperror.Unauthorized("Access token required"))
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			response.Error(c, apperror.Unauthorized("Invalid authorization header"))
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			response.Error(c, apperror.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(common.UserIDKey, claims.ID)
		c.Set(common.UserEmailKey, claims.Email)
		c.Next()
	}
}
