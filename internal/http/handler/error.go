package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hashnotes/internal/http/middleware"
)

// errorPayload defines the JSON error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes an error response without leaking internal errors.
// Browsers get the error page; clients preferring JSON get errorPayload.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "NOT_FOUND", "CONTENT_TOO_LONG")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	rid := middleware.RequestIDFromCtx(c)
	c.Status(status)

	if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
		return c.JSON(errorPayload{
			RequestID: rid,
			Error: errorEnvelope{
				Code:    code,
				Message: message,
			},
		})
	}

	err := c.Render("error", fiber.Map{
		"Title":     message,
		"Status":    status,
		"Code":      code,
		"Message":   message,
		"RequestID": rid,
	})
	if err != nil {
		return c.Type("txt").SendString(message)
	}
	return nil
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "note not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "CONTENT_TOO_LONG", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
