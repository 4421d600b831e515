package controller

import (
	"errors"
	"strings"

	"abcresearch-be/internal/pkg/serverutils"
	"abcresearch-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IExtractionController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type extractionController struct {
	service service.IExtractionService
}

func NewExtractionController(service service.IExtractionService) IExtractionController {
	return &extractionController{service: service}
}

func (c *extractionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/extractions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Submit)
	h.Get(":id", c.Show)
}

func (c *extractionController) Submit(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file upload")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return fiber.NewError(fiber.StatusBadRequest, "only PDF uploads are supported")
	}

	res, err := c.service.Submit(ctx.Context(), userId, fileHeader)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse(res))
}

func (c *extractionController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid job id")
	}

	res, err := c.service.GetJob(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *extractionController) GetAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.ListJobs(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}
