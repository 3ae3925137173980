package contract

import (
	"context"

	"stylehub-be/internal/entity"
	"stylehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CartItem, error)
	// FindAllWithDetails preloads the referenced product/bundle so prices can
	// be resolved without extra queries.
	FindAllWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.CartItem, error)
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteSelectedByUserId(ctx context.Context, userId uuid.UUID) error
}
