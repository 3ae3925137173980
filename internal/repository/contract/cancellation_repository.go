package contract

import (
	"context"

	"stylehub-be/internal/entity"
	"stylehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CancellationRepository defines operations for order cancellation requests.
type CancellationRepository interface {
	Create(ctx context.Context, request *entity.CancellationRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CancellationRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRequest, error)
	FindAllWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRequest, error)
	// HasActiveForOrder reports whether a PENDING request already exists for
	// the order.
	HasActiveForOrder(ctx context.Context, orderId uuid.UUID) (bool, error)
	Update(ctx context.Context, request *entity.CancellationRequest) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumRefundAmount(ctx context.Context, specs ...specification.Specification) (float64, error)
}
