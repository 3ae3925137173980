package dashboard

import (
	"context"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"
)

// Aggregator computes admin dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats retrieves the dashboard headline numbers
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AdminDashboardResponse, error) {
	totalUsers, err := uow.UserRepository().Count(ctx, specification.Filter("role", string(entity.UserRoleCustomer)))
	if err != nil {
		return nil, err
	}

	totalOrders, err := uow.OrderRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	paidOrders, err := uow.OrderRepository().Count(ctx, specification.Filter("payment_status", entity.PaymentStatusPaid))
	if err != nil {
		return nil, err
	}

	revenue, err := uow.OrderRepository().SumTotal(ctx, specification.Filter("payment_status", entity.PaymentStatusPaid))
	if err != nil {
		return nil, err
	}

	pendingCancellations, err := uow.CancellationRepository().Count(ctx,
		specification.Filter("status", string(entity.CancellationStatusPending)))
	if err != nil {
		return nil, err
	}

	refunded, err := uow.CancellationRepository().SumRefundAmount(ctx,
		specification.Filter("status", string(entity.CancellationStatusProcessed)))
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		TotalUsers:           totalUsers,
		TotalOrders:          totalOrders,
		PaidOrders:           paidOrders,
		Revenue:              revenue,
		PendingCancellations: pendingCancellations,
		RefundedAmount:       refunded,
	}, nil
}
