package common

import (
	"strconv"

	"retail-api/utils/apperror"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "email"
)

// GetUserID returns the authenticated user's id, nil on public routes.
func GetUserID(c *gin.Context) *uint {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return nil
	}
	if id, ok := value.(uint); ok {
		return &id
	}
	return nil
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}

// ParamID parses a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("Invalid ID")
	}
	return uint(id), nil
}
