package controllers

import (
	"errors"
	"strings"

	"retail-api/utils/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes the body into dest. Failed binding rules answer with the
// operation-level message, malformed bodies with "Invalid request body".
func bindJSON(c *gin.Context, dest interface{}, operation string) error {
	err := c.ShouldBindJSON(dest)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperror.Validation("Invalid request body")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Tag() == "required" {
			return apperror.Validation("Missing required fields for " + operation)
		}
		fields = append(fields, fe.Field())
	}
	return apperror.Validation("Invalid " + strings.Join(fields, ", ") + " for " + operation)
}
