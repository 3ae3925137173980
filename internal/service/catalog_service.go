package service

import (
	"context"
	"errors"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"
	"stylehub-be/pkg/search"
)

type ICatalogService interface {
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	ListProducts(ctx context.Context, query *dto.ProductListQuery) ([]*dto.ProductResponse, int64, error)
	GetProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)
	ListBundles(ctx context.Context) ([]*dto.BundleResponse, error)
	GetBundleBySlug(ctx context.Context, slug string) (*dto.BundleResponse, error)
	Suggest(ctx context.Context, term string) (*dto.SuggestionResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	suggester  *search.Suggester
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, suggester *search.Suggester) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		suggester:  suggester,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	var res []*dto.CategoryResponse
	for _, c := range categories {
		res = append(res, &dto.CategoryResponse{
			Id:          c.Id,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
		})
	}
	return res, nil
}

func (s *catalogService) ListProducts(ctx context.Context, query *dto.ProductListQuery) ([]*dto.ProductResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filterSpecs := []specification.Specification{specification.ActiveOnly{}}
	if query.Category != "" {
		filterSpecs = append(filterSpecs, specification.ByCategorySlug{Slug: query.Category})
	}
	if query.Brand != "" {
		filterSpecs = append(filterSpecs, specification.Filter("brand", query.Brand))
	}
	if query.Search != "" {
		filterSpecs = append(filterSpecs, specification.NameSearch{Term: query.Search})
	}

	total, err := uow.ProductRepository().Count(ctx, filterSpecs...)
	if err != nil {
		return nil, 0, err
	}

	listSpecs := append(filterSpecs,
		sortSpec(query.Sort),
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	products, err := uow.ProductRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, 0, err
	}

	var res []*dto.ProductResponse
	for _, p := range products {
		res = append(res, mapProductResponse(p))
	}
	return res, total, nil
}

func sortSpec(sort string) specification.Specification {
	switch sort {
	case "price_asc":
		return specification.OrderBy{Field: "price"}
	case "price_desc":
		return specification.OrderBy{Field: "price", Desc: true}
	case "best_selling":
		return specification.OrderBy{Field: "sales_count", Desc: true}
	default:
		return specification.OrderBy{Field: "created_at", Desc: true}
	}
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.Filter("slug", slug), specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product not found")
	}
	return mapProductResponse(product), nil
}

func (s *catalogService) ListBundles(ctx context.Context) ([]*dto.BundleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bundles, err := uow.BundleRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var res []*dto.BundleResponse
	for _, b := range bundles {
		res = append(res, mapBundleResponse(b))
	}
	return res, nil
}

func (s *catalogService) GetBundleBySlug(ctx context.Context, slug string) (*dto.BundleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bundle, err := uow.BundleRepository().FindOneWithItems(ctx, specification.Filter("slug", slug), specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, errors.New("bundle not found")
	}
	return mapBundleResponse(bundle), nil
}

func (s *catalogService) Suggest(ctx context.Context, term string) (*dto.SuggestionResponse, error) {
	suggestions, err := s.suggester.Suggest(ctx, term, 0)
	if err != nil {
		return nil, err
	}
	return &dto.SuggestionResponse{
		Query:       term,
		Suggestions: suggestions,
	}, nil
}

func mapProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:          p.Id,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		ImageURL:    p.ImageURL,
		SalesCount:  p.SalesCount,
		CreatedAt:   p.CreatedAt,
	}
}

func mapBundleResponse(b *entity.Bundle) *dto.BundleResponse {
	res := &dto.BundleResponse{
		Id:          b.Id,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
		ImageURL:    b.ImageURL,
	}
	for _, item := range b.Items {
		res.Items = append(res.Items, dto.BundleItemResponse{
			ProductId: item.ProductId,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
		})
	}
	return res
}
