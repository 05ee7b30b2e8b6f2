package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"go.uber.org/zap"
)

const UserIDKey = "user_id"

func GetUserID(c *fiber.Ctx) int64 {
	userID, _ := c.Locals(UserIDKey).(int64)
	return userID
}

// BearerToken returns the token of an "Authorization: Bearer" header, or "".
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// StatusFor maps service error kinds to HTTP status codes.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case service.IsValidation(err):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		message = "internal server error"
		if errors.Is(err, service.ErrNoVariations) {
			message = service.ErrNoVariations.Error()
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ErrorHandler is the app-wide fallback for errors returned by handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return errorResponse(c, err)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, &service.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return int64(id), nil
}

func bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &service.ValidationError{Message: "invalid request body"}
	}
	return nil
}
