package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"error": APIError{Code: code, Message: message},
	}
}

func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"data": data,
	}
}

// ErrorHandlerMiddleware recovers panics and converts unhandled errors into a
// consistent JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
			}
		}()

		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
