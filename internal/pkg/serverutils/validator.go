package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct tags and converts the first violation into a
// 400 fiber error so the error handler renders it.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "validation failed on field "+errs[0].Field())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
