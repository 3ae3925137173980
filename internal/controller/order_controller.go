package controller

import (
	"stylehub-be/internal/pkg/serverutils"
	"stylehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	ListOrders(ctx *fiber.Ctx) error
	GetOrder(ctx *fiber.Ctx) error
	EstimateCancellation(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService        service.IOrderService
	cancellationService service.ICancellationService
}

func NewOrderController(orderService service.IOrderService, cancellationService service.ICancellationService) IOrderController {
	return &orderController{
		orderService:        orderService,
		cancellationService: cancellationService,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/orders", serverutils.JwtMiddleware)
	h.Get("/", c.ListOrders)
	h.Get("/:id", c.GetOrder)
	h.Get("/:id/cancellation-estimate", c.EstimateCancellation)
}

func (c *orderController) ListOrders(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	res, err := c.orderService.ListOrders(ctx.Context(), userID, page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Orders fetched", res))
}

func (c *orderController) GetOrder(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orderID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	res, err := c.orderService.GetOrder(ctx.Context(), userID, orderID)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Order fetched", res))
}

func (c *orderController) EstimateCancellation(ctx *fiber.Ctx) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	orderID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	res, err := c.cancellationService.Estimate(ctx.Context(), userID, orderID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Cancellation estimate", res))
}
