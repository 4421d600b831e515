package controller

import (
	"errors"

	"abcresearch-be/internal/dto"
	"abcresearch-be/internal/pkg/serverutils"
	"abcresearch-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWatchlistController interface {
	RegisterRoutes(r fiber.Router)
	CreateFeed(ctx *fiber.Ctx) error
	DeleteFeed(ctx *fiber.Ctx) error
	GetFeeds(ctx *fiber.Ctx) error
	GetFeedItems(ctx *fiber.Ctx) error
	SetFeedActive(ctx *fiber.Ctx) error
}

type watchlistController struct {
	service service.IWatchlistService
}

func NewWatchlistController(service service.IWatchlistService) IWatchlistController {
	return &watchlistController{service: service}
}

func (c *watchlistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/watchlist")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/feeds", c.GetFeeds)
	h.Post("/feeds", c.CreateFeed)
	h.Delete("/feeds/:id", c.DeleteFeed)
	h.Get("/feeds/:id/items", c.GetFeedItems)
	h.Put("/feeds/:id/active", c.SetFeedActive)
}

func (c *watchlistController) CreateFeed(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CreateWatchFeedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateFeed(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *watchlistController) DeleteFeed(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feed id")
	}

	if err := c.service.DeleteFeed(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrFeedNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"deleted": true}))
}

func (c *watchlistController) GetFeeds(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.GetFeeds(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *watchlistController) GetFeedItems(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feed id")
	}

	res, err := c.service.GetFeedItems(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrFeedNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *watchlistController) SetFeedActive(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feed id")
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.SetFeedActive(ctx.Context(), userId, id, req.Active); err != nil {
		if errors.Is(err, service.ErrFeedNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"active": req.Active}))
}
