package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"formapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const internalErrorMessage = "An unexpected error occurred."

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "INVALID_BODY", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// internalError records err for the access log and answers with a generic 500.
func internalError(c *fiber.Ctx, err error) error {
	c.Locals(middleware.ErrorLocalKey, err.Error())
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", internalErrorMessage)
}

// notFound answers 404 with an empty body.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Send(nil)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Only 5xx statuses carry the internal cause into the access log.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch {
		case status == fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case status == fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case status == fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case status < fiber.StatusInternalServerError:
			return writeError(c, status, "CLIENT_ERROR", utils.StatusMessage(status))
		default:
			c.Locals(middleware.ErrorLocalKey, err.Error())
			return writeError(c, status, "INTERNAL_ERROR", internalErrorMessage)
		}
	}
}
