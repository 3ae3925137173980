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

// --- Categories ---

type categoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

func (r *categoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	m := &model.Category{
		Id:          category.Id,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *categoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var m model.Category
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
	return mapCategory(&m), nil
}

func (r *categoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var ms []*model.Category
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	var out []*entity.Category
	for _, m := range ms {
		out = append(out, mapCategory(m))
	}
	return out, nil
}

func mapCategory(m *model.Category) *entity.Category {
	return &entity.Category{
		Id:          m.Id,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// --- Products ---

type productRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &productRepositoryImpl{db: db}
}

func (r *productRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := &model.Product{
		Id:          product.Id,
		CategoryId:  product.CategoryId,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Brand:       product.Brand,
		Price:       product.Price,
		Stock:       product.Stock,
		Sizes:       product.Sizes,
		Colors:      product.Colors,
		ImageURL:    product.ImageURL,
		IsActive:    product.IsActive,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *productRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var m model.Product
	query := r.db.WithContext(ctx).Preload("Category")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return mapProduct(&m), nil
}

func (r *productRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var ms []*model.Product
	query := r.db.WithContext(ctx).Preload("Category")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, m := range ms {
		out = append(out, mapProduct(m))
	}
	return out, nil
}

func (r *productRepositoryImpl) SearchNames(ctx context.Context, term string, limit int) ([]string, error) {
	var names []string
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("is_active = ? AND (name ILIKE ? OR brand ILIKE ?)", true, pattern, pattern).
		Order("sales_count DESC").
		Limit(limit).
		Distinct().
		Pluck("name", &names).Error
	return names, err
}

func (r *productRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.Id).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"brand":       product.Brand,
			"price":       product.Price,
			"stock":       product.Stock,
			"image_url":   product.ImageURL,
			"is_active":   product.IsActive,
		}).Error
}

func (r *productRepositoryImpl) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productRepositoryImpl) IncrementSales(ctx context.Context, id uuid.UUID, qty int) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("sales_count", gorm.Expr("sales_count + ?", qty)).Error
}

func (r *productRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Product{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	err := query.Count(&count).Error
	return count, err
}

func mapProduct(m *model.Product) *entity.Product {
	return &entity.Product{
		Id:          m.Id,
		CategoryId:  m.CategoryId,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Brand:       m.Brand,
		Price:       m.Price,
		Stock:       m.Stock,
		Sizes:       m.Sizes,
		Colors:      m.Colors,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		SalesCount:  m.SalesCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Category: entity.Category{
			Id:   m.Category.Id,
			Name: m.Category.Name,
			Slug: m.Category.Slug,
		},
	}
}

// --- Bundles ---

type bundleRepositoryImpl struct {
	db *gorm.DB
}

func NewBundleRepository(db *gorm.DB) contract.BundleRepository {
	return &bundleRepositoryImpl{db: db}
}

func (r *bundleRepositoryImpl) Create(ctx context.Context, bundle *entity.Bundle) error {
	m := &model.Bundle{
		Id:          bundle.Id,
		Name:        bundle.Name,
		Slug:        bundle.Slug,
		Description: bundle.Description,
		Price:       bundle.Price,
		Stock:       bundle.Stock,
		ImageURL:    bundle.ImageURL,
		IsActive:    bundle.IsActive,
	}
	for _, item := range bundle.Items {
		m.Items = append(m.Items, model.BundleItem{
			Id:        item.Id,
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
		})
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *bundleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bundle, error) {
	var m model.Bundle
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
	return mapBundle(&m), nil
}

func (r *bundleRepositoryImpl) FindOneWithItems(ctx context.Context, specs ...specification.Specification) (*entity.Bundle, error) {
	var m model.Bundle
	query := r.db.WithContext(ctx).Preload("Items").Preload("Items.Product")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return mapBundle(&m), nil
}

func (r *bundleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bundle, error) {
	var ms []*model.Bundle
	query := r.db.WithContext(ctx).Preload("Items").Preload("Items.Product")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	var out []*entity.Bundle
	for _, m := range ms {
		out = append(out, mapBundle(m))
	}
	return out, nil
}

func (r *bundleRepositoryImpl) Update(ctx context.Context, bundle *entity.Bundle) error {
	return r.db.WithContext(ctx).Model(&model.Bundle{}).
		Where("id = ?", bundle.Id).
		Updates(map[string]interface{}{
			"name":        bundle.Name,
			"description": bundle.Description,
			"price":       bundle.Price,
			"stock":       bundle.Stock,
			"image_url":   bundle.ImageURL,
			"is_active":   bundle.IsActive,
		}).Error
}

func (r *bundleRepositoryImpl) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Bundle{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).Error
}

func mapBundle(m *model.Bundle) *entity.Bundle {
	b := &entity.Bundle{
		Id:          m.Id,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, item := range m.Items {
		b.Items = append(b.Items, entity.BundleItem{
			Id:        item.Id,
			BundleId:  item.BundleId,
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
			Product: entity.Product{
				Id:    item.Product.Id,
				Name:  item.Product.Name,
				Price: item.Product.Price,
			},
		})
	}
	return b
}
