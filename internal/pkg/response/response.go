package response

import (
	"github.com/gofiber/fiber/v2"

	"novalibrary/internal/pkg/validate"
)

// envelope builds the standard response body: success flag, optional
// message, and the payload keys merged at the top level.
func envelope(success bool, message string, data fiber.Map) fiber.Map {
	body := fiber.Map{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return body
}

// Success sends a 200 response.
func Success(c *fiber.Ctx, message string, data fiber.Map) error {
	return c.JSON(envelope(true, message, data))
}

// Created sends a 201 response.
func Created(c *fiber.Ctx, message string, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(envelope(true, message, data))
}

// Error sends an error response with the given status code.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(envelope(false, message, nil))
}

// ValidationFailed sends the 400 validation envelope with field errors.
func ValidationFailed(c *fiber.Ctx, errs []validate.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

// BadRequest sends a 400 bad request response.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 internal server error response.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
