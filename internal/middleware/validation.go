package middleware

import (
	"lingua-progress/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedProgressIDKey  = "validated_progress_id"
	ValidatedContentTypeKey = "validated_content_type"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateUpdateIsCorrect validates the id path parameter and type query
// parameter and stores the parsed values in Locals.
func (vm *ValidationMiddleware) ValidateUpdateIsCorrect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, contentType, errs := vm.validator.ValidateUpdateIsCorrect(c.Params("id"), c.Query("type"))
		if len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedProgressIDKey, id)
		c.Locals(ValidatedContentTypeKey, contentType)
		return c.Next()
	}
}
