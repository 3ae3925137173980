package implementation

import (
	"context"

	"stylehub-be/internal/entity"
	"stylehub-be/internal/model"
	"stylehub-be/internal/repository/contract"
	"stylehub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

func (r *orderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	m := &model.Order{
		Id:              order.Id,
		UserId:          order.UserId,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		SnapToken:       order.SnapToken,
		SnapRedirectURL: order.SnapRedirectURL,
		Subtotal:        order.Subtotal,
		ShippingFee:     order.ShippingFee,
		Total:           order.Total,
		ShippingAddress: order.ShippingAddress,
		PlacedAt:        order.PlacedAt,
		PaidAt:          order.PaidAt,
	}
	for _, item := range order.Items {
		m.Items = append(m.Items, model.OrderItem{
			Id:        item.Id,
			Kind:      string(item.Kind),
			ProductId: item.ProductId,
			BundleId:  item.BundleId,
			Name:      item.Name,
			Size:      item.Size,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *orderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	var m model.Order
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&m), nil
}

func (r *orderRepositoryImpl) FindOneWithItems(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	var m model.Order
	query := r.db.WithContext(ctx).Preload("Items").Preload("User")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&m), nil
}

func (r *orderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var ms []*model.Order
	query := r.db.WithContext(ctx).Preload("Items")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	var orders []*entity.Order
	for _, m := range ms {
		orders = append(orders, r.mapToEntity(m))
	}
	return orders, nil
}

func (r *orderRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepositoryImpl) UpdatePayment(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.Id).
		Updates(map[string]interface{}{
			"status":            order.Status,
			"payment_status":    order.PaymentStatus,
			"snap_token":        order.SnapToken,
			"snap_redirect_url": order.SnapRedirectURL,
			"paid_at":           order.PaidAt,
		}).Error
}

func (r *orderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Order{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *orderRepositoryImpl) SumTotal(ctx context.Context, specs ...specification.Specification) (float64, error) {
	var total *float64
	query := r.db.WithContext(ctx).Model(&model.Order{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Select("SUM(total)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *orderRepositoryImpl) mapToEntity(m *model.Order) *entity.Order {
	order := &entity.Order{
		Id:              m.Id,
		UserId:          m.UserId,
		Status:          m.Status,
		PaymentMethod:   m.PaymentMethod,
		PaymentStatus:   m.PaymentStatus,
		SnapToken:       m.SnapToken,
		SnapRedirectURL: m.SnapRedirectURL,
		Subtotal:        m.Subtotal,
		ShippingFee:     m.ShippingFee,
		Total:           m.Total,
		ShippingAddress: m.ShippingAddress,
		PlacedAt:        m.PlacedAt,
		PaidAt:          m.PaidAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		User: entity.User{
			Id:       m.User.Id,
			Email:    m.User.Email,
			FullName: m.User.FullName,
		},
	}
	for _, item := range m.Items {
		order.Items = append(order.Items, entity.OrderItem{
			Id:        item.Id,
			OrderId:   item.OrderId,
			Kind:      entity.CartItemKind(item.Kind),
			ProductId: item.ProductId,
			BundleId:  item.BundleId,
			Name:      item.Name,
			Size:      item.Size,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return order
}
