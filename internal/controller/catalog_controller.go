package controller

import (
	"stylehub-be/internal/dto"
	"stylehub-be/internal/pkg/serverutils"
	"stylehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListCategories(ctx *fiber.Ctx) error
	ListProducts(ctx *fiber.Ctx) error
	GetProduct(ctx *fiber.Ctx) error
	ListBundles(ctx *fiber.Ctx) error
	GetBundle(ctx *fiber.Ctx) error
	Suggest(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/categories", c.ListCategories)

	products := r.Group("/products")
	products.Get("/", c.ListProducts)
	products.Get("/suggestions", c.Suggest)
	products.Get("/:slug", c.GetProduct)

	bundles := r.Group("/bundles")
	bundles.Get("/", c.ListBundles)
	bundles.Get("/:slug", c.GetBundle)
}

func (c *catalogController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.service.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories fetched", res))
}

func (c *catalogController) ListProducts(ctx *fiber.Ctx) error {
	var query dto.ProductListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, total, err := c.service.ListProducts(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Products fetched",
		"data":    res,
		"total":   total,
		"page":    query.Page,
		"limit":   query.Limit,
	})
}

func (c *catalogController) GetProduct(ctx *fiber.Ctx) error {
	res, err := c.service.GetProductBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Product fetched", res))
}

func (c *catalogController) ListBundles(ctx *fiber.Ctx) error {
	res, err := c.service.ListBundles(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bundles fetched", res))
}

func (c *catalogController) GetBundle(ctx *fiber.Ctx) error {
	res, err := c.service.GetBundleBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Bundle fetched", res))
}

func (c *catalogController) Suggest(ctx *fiber.Ctx) error {
	res, err := c.service.Suggest(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Suggestions fetched", res))
}
