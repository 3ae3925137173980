package service

import (
	"context"
	"errors"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IOrderService interface {
	ListOrders(ctx context.Context, userId uuid.UUID, page, limit int) ([]*dto.OrderResponse, error)
	GetOrder(ctx context.Context, userId, orderId uuid.UUID) (*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory) IOrderService {
	return &orderService{uowFactory: uowFactory}
}

func (s *orderService) ListOrders(ctx context.Context, userId uuid.UUID, page, limit int) ([]*dto.OrderResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "placed_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	var res []*dto.OrderResponse
	for _, o := range orders {
		res = append(res, mapOrderResponse(o))
	}
	return res, nil
}

func (s *orderService) GetOrder(ctx context.Context, userId, orderId uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOneWithItems(ctx,
		specification.ByID{ID: orderId},
		specification.Filter("user_id", userId),
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order not found")
	}
	return mapOrderResponse(order), nil
}

func mapOrderResponse(o *entity.Order) *dto.OrderResponse {
	res := &dto.OrderResponse{
		Id:              o.Id,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		Subtotal:        o.Subtotal,
		ShippingFee:     o.ShippingFee,
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		PlacedAt:        o.PlacedAt,
		PaidAt:          o.PaidAt,
	}
	for _, item := range o.Items {
		res.Items = append(res.Items, dto.OrderItemResponse{
			Name:      item.Name,
			Kind:      string(item.Kind),
			Size:      item.Size,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return res
}
