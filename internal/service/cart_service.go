package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICartService interface {
	AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	GetCart(ctx context.Context, userId uuid.UUID) (*dto.CartResponse, error)
	UpdateItem(ctx context.Context, userId, itemId uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, userId, itemId uuid.UUID) (*dto.CartResponse, error)
}

type cartService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCartService(uowFactory unitofwork.RepositoryFactory) ICartService {
	return &cartService{uowFactory: uowFactory}
}

func (s *cartService) AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	switch entity.CartItemKind(req.Kind) {
	case entity.CartItemProduct:
		if req.ProductId == nil {
			return nil, errors.New("product_id is required for product items")
		}
		product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: *req.ProductId}, specification.ActiveOnly{})
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, errors.New("product not found")
		}
		if product.Stock < req.Quantity {
			return nil, fmt.Errorf("insufficient stock: %d available", product.Stock)
		}
		if req.Size != "" && !containsString(product.Sizes, req.Size) {
			return nil, fmt.Errorf("size %s not available for this product", req.Size)
		}
	case entity.CartItemBundle:
		if req.BundleId == nil {
			return nil, errors.New("bundle_id is required for bundle items")
		}
		bundle, err := uow.BundleRepository().FindOne(ctx, specification.ByID{ID: *req.BundleId}, specification.ActiveOnly{})
		if err != nil {
			return nil, err
		}
		if bundle == nil {
			return nil, errors.New("bundle not found")
		}
		if bundle.Stock < req.Quantity {
			return nil, fmt.Errorf("insufficient stock: %d available", bundle.Stock)
		}
	default:
		return nil, errors.New("unknown cart item kind")
	}

	existing, err := s.findMatchingLine(ctx, uow, userId, req)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Quantity += req.Quantity
		if err := uow.CartRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		now := time.Now()
		item := &entity.CartItem{
			Id:        uuid.New(),
			UserId:    userId,
			Kind:      entity.CartItemKind(req.Kind),
			ProductId: req.ProductId,
			BundleId:  req.BundleId,
			Size:      req.Size,
			Quantity:  req.Quantity,
			Selected:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.CartRepository().Create(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.GetCart(ctx, userId)
}

// findMatchingLine locates an existing cart line for the same catalog item
// and size, so repeat adds merge instead of duplicating rows.
func (s *cartService) findMatchingLine(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req *dto.AddCartItemRequest) (*entity.CartItem, error) {
	specs := []specification.Specification{
		specification.Filter("user_id", userId),
		specification.Filter("kind", req.Kind),
	}
	if req.ProductId != nil {
		specs = append(specs, specification.Filter("product_id", *req.ProductId), specification.Filter("size", req.Size))
	}
	if req.BundleId != nil {
		specs = append(specs, specification.Filter("bundle_id", *req.BundleId))
	}
	return uow.CartRepository().FindOne(ctx, specs...)
}

func (s *cartService) GetCart(ctx context.Context, userId uuid.UUID) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.CartRepository().FindAllWithDetails(ctx,
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CartResponse{Items: []dto.CartItemResponse{}}
	for _, item := range items {
		line := dto.CartItemResponse{
			Id:        item.Id,
			Kind:      string(item.Kind),
			Size:      item.Size,
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
			Selected:  item.Selected,
		}
		if item.Kind == entity.CartItemBundle && item.Bundle != nil {
			line.Name = item.Bundle.Name
			line.ImageURL = item.Bundle.ImageURL
		} else if item.Product != nil {
			line.Name = item.Product.Name
			line.ImageURL = item.Product.ImageURL
		}

		res.Items = append(res.Items, line)
		res.ItemCount += item.Quantity
		if item.Selected {
			res.SelectedTotal += item.Subtotal()
		}
	}
	return res, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userId, itemId uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.CartRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.Filter("user_id", userId),
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("cart item not found")
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Selected != nil {
		item.Selected = *req.Selected
	}

	if err := uow.CartRepository().Update(ctx, item); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userId)
}

func (s *cartService) RemoveItem(ctx context.Context, userId, itemId uuid.UUID) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.CartRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.Filter("user_id", userId),
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("cart item not found")
	}

	if err := uow.CartRepository().Delete(ctx, item.Id); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userId)
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
