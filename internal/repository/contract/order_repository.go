package contract

import (
	"context"

	"stylehub-be/internal/entity"
	"stylehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindOneWithItems(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdatePayment(ctx context.Context, order *entity.Order) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumTotal(ctx context.Context, specs ...specification.Specification) (float64, error)
}
