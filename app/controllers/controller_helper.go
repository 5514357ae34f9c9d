package controllers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/models"
)

// respondError maps domain errors to HTTP responses. Validation problems are
// the caller's fault, duplicates conflict, quota failures are a payment
// concern, unknown IDs are not found. Everything else is a server error.
func respondError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_failed",
			"field":   verr.Field,
			"message": verr.Message,
		})
	case errors.As(err, &fieldErrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation_failed",
			"message": fieldErrs.Error(),
		})
	case errors.Is(err, models.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "duplicate",
			"message": "A record with these values already exists",
		})
	case errors.Is(err, models.ErrQuotaExceeded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "quota_exceeded",
			"message": "Tenant quota exceeded",
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "Record not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal_server_error",
			"message": "Unexpected error",
		})
	}
}

// parseIDParam reads a numeric :id style route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// pagination reads offset/limit query parameters with sane bounds.
func pagination(c *fiber.Ctx) (offset, limit int) {
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit = c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return offset, limit
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "bad_request",
		"message": message,
	})
}
