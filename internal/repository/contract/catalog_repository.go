package contract

import (
	"context"

	"stylehub-be/internal/entity"
	"stylehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	// SearchNames returns distinct product/brand names matching the prefix,
	// feeding the storefront suggestion box.
	SearchNames(ctx context.Context, term string, limit int) ([]string, error)
	Update(ctx context.Context, product *entity.Product) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
	IncrementSales(ctx context.Context, id uuid.UUID, qty int) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type BundleRepository interface {
	Create(ctx context.Context, bundle *entity.Bundle) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bundle, error)
	FindOneWithItems(ctx context.Context, specs ...specification.Specification) (*entity.Bundle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bundle, error)
	Update(ctx context.Context, bundle *entity.Bundle) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
