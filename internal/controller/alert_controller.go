package controller

import (
	"errors"

	"abcresearch-be/internal/pkg/serverutils"
	"abcresearch-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAlertController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	MarkAllRead(ctx *fiber.Ctx) error
}

type alertController struct {
	service service.IAlertService
}

func NewAlertController(service service.IAlertService) IAlertController {
	return &alertController{service: service}
}

func (c *alertController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/alerts")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Put(":id/read", c.MarkRead)
	h.Put("/read-all", c.MarkAllRead)
}

func (c *alertController) GetAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *alertController) MarkRead(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid alert id")
	}

	if err := c.service.MarkRead(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"read": true}))
}

func (c *alertController) MarkAllRead(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	if err := c.service.MarkAllRead(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"read": true}))
}
