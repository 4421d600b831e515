package controller

import (
	"errors"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/pkg/serverutils"
	"abcresearch-be/internal/service"
	"abcresearch-be/pkg/discovery"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Discover(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	SaveToProject(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{service: service}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/discover", c.Discover)
	h.Get("/history", c.History)
	h.Post("/save-to-project", c.SaveToProject)
}

func (c *searchController) Discover(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.DiscoverySearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Discover(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, discovery.ErrEmptyQuery) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *searchController) History(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *searchController) SaveToProject(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.SaveSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SaveToProject(ctx.Context(), userId, &req); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) || errors.Is(err, service.ErrSearchNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"saved": true}))
}
