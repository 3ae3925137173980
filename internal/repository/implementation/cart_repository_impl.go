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

type cartRepositoryImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) contract.CartRepository {
	return &cartRepositoryImpl{db: db}
}

func (r *cartRepositoryImpl) Create(ctx context.Context, item *entity.CartItem) error {
	m := &model.CartItem{
		Id:        item.Id,
		UserId:    item.UserId,
		Kind:      string(item.Kind),
		ProductId: item.ProductId,
		BundleId:  item.BundleId,
		Size:      item.Size,
		Quantity:  item.Quantity,
		Selected:  item.Selected,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *cartRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CartItem, error) {
	var m model.CartItem
	query := r.db.WithContext(ctx).Preload("Product").Preload("Bundle")
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

func (r *cartRepositoryImpl) FindAllWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.CartItem, error) {
	var ms []*model.CartItem
	query := r.db.WithContext(ctx).Preload("Product").Preload("Bundle")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	var items []*entity.CartItem
	for _, m := range ms {
		items = append(items, r.mapToEntity(m))
	}
	return items, nil
}

func (r *cartRepositoryImpl) Update(ctx context.Context, item *entity.CartItem) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", item.Id).
		Updates(map[string]interface{}{
			"quantity": item.Quantity,
			"selected": item.Selected,
		}).Error
}

func (r *cartRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, id).Error
}

func (r *cartRepositoryImpl) DeleteSelectedByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND selected = ?", userId, true).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepositoryImpl) mapToEntity(m *model.CartItem) *entity.CartItem {
	item := &entity.CartItem{
		Id:        m.Id,
		UserId:    m.UserId,
		Kind:      entity.CartItemKind(m.Kind),
		ProductId: m.ProductId,
		BundleId:  m.BundleId,
		Size:      m.Size,
		Quantity:  m.Quantity,
		Selected:  m.Selected,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Product != nil {
		item.Product = mapProduct(m.Product)
	}
	if m.Bundle != nil {
		item.Bundle = mapBundle(m.Bundle)
	}
	return item
}
