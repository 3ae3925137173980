package controller

import (
	"stylehub-be/internal/dto"
	"stylehub-be/internal/pkg/serverutils"
	"stylehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	GetDashboardStats(ctx *fiber.Ctx) error

	GetAllUsers(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error

	GetCancellations(ctx *fiber.Ctx) error
	ApproveCancellation(ctx *fiber.Ctx) error
	RejectCancellation(ctx *fiber.Ctx) error
	ProcessCancellation(ctx *fiber.Ctx) error

	GetPolicy(ctx *fiber.Ctx) error
	UpdatePolicy(ctx *fiber.Ctx) error

	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service     service.IAdminService
	authService service.IAuthService
}

func NewAdminController(service service.IAdminService, authService service.IAuthService) IAdminController {
	return &adminController{
		service:     service,
		authService: authService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	h.Post("/login", c.Login)

	h.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)

	h.Get("/dashboard", c.GetDashboardStats)

	h.Get("/users", c.GetAllUsers)
	h.Put("/users/:id/status", c.UpdateUserStatus)
	h.Delete("/users/:id", c.DeleteUser)

	h.Get("/cancellations", c.GetCancellations)
	h.Post("/cancellations/:id/approve", c.ApproveCancellation)
	h.Post("/cancellations/:id/reject", c.RejectCancellation)
	h.Post("/cancellations/:id/process", c.ProcessCancellation)

	h.Get("/policy", c.GetPolicy)
	h.Put("/policy", c.UpdatePolicy)

	h.Get("/logs", c.GetLogs)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.authService.LoginAdmin(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats fetched", res))
}

func (c *adminController) GetAllUsers(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	role := ctx.Query("role")

	res, total, err := c.service.GetAllUsers(ctx.Context(), page, limit, role)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Users fetched",
		"data":    res,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	userID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.AdminUpdateUserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.UpdateUserStatus(ctx.Context(), userID, req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User status updated", res))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	userID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	if err := c.service.DeleteUser(ctx.Context(), userID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}

func (c *adminController) GetCancellations(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	status := ctx.Query("status")

	res, err := c.service.GetCancellations(ctx.Context(), page, limit, status)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Cancellation requests fetched", res))
}

func (c *adminController) ApproveCancellation(ctx *fiber.Ctx) error {
	cancellationID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cancellation id")
	}

	var req dto.AdminApproveCancellationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.ApproveCancellation(ctx.Context(), cancellationID, req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Cancellation approved", res))
}

func (c *adminController) RejectCancellation(ctx *fiber.Ctx) error {
	cancellationID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cancellation id")
	}

	var req dto.AdminRejectCancellationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.RejectCancellation(ctx.Context(), cancellationID, req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Cancellation rejected", res))
}

func (c *adminController) ProcessCancellation(ctx *fiber.Ctx) error {
	cancellationID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cancellation id")
	}

	res, err := c.service.ProcessCancellation(ctx.Context(), cancellationID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Refund processed", res))
}

func (c *adminController) GetPolicy(ctx *fiber.Ctx) error {
	res, err := c.service.GetPolicy(ctx.Context())
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No cancellation policy configured"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Policy fetched", res))
}

func (c *adminController) UpdatePolicy(ctx *fiber.Ctx) error {
	adminID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.UpdatePolicy(ctx.Context(), adminID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Policy updated", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var query dto.AdminLogQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.GetSystemLogs(ctx.Context(), query.Level, query.Limit, query.Offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs fetched", res))
}
