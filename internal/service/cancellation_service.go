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
	adminEvents "stylehub-be/pkg/admin/events"
	"stylehub-be/pkg/admin/policy"
	"stylehub-be/pkg/refund"

	"github.com/google/uuid"
)

type ICancellationService interface {
	Estimate(ctx context.Context, userId, orderId uuid.UUID) (*dto.CancellationEstimateResponse, error)
	Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitCancellationRequest) (*dto.SubmitCancellationResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.UserCancellationListResponse, error)
}

type cancellationService struct {
	uowFactory    unitofwork.RepositoryFactory
	policyManager *policy.Manager
	publisher     adminEvents.Publisher
}

func NewCancellationService(uowFactory unitofwork.RepositoryFactory, policyManager *policy.Manager, publisher adminEvents.Publisher) ICancellationService {
	return &cancellationService{
		uowFactory:    uowFactory,
		policyManager: policyManager,
		publisher:     publisher,
	}
}

// Estimate shows the buyer what a cancellation would refund right now. The
// figure is informational; approval recomputes it.
func (s *cancellationService) Estimate(ctx context.Context, userId, orderId uuid.UUID) (*dto.CancellationEstimateResponse, error) {
	order, storePolicy, err := s.loadOrderAndPolicy(ctx, userId, orderId)
	if err != nil {
		return nil, err
	}

	res := &dto.CancellationEstimateResponse{OrderId: orderId}
	if !refund.IsCancellable(storePolicy.ToRefundPolicy(), order.Status) {
		return res, nil
	}

	now := time.Now()
	pct, err := refund.ComputeRefundPercentage(storePolicy.ToRefundPolicy(), order.PlacedAt, now, order.PaymentMethod)
	if err != nil {
		return nil, err
	}
	amount, err := refund.ComputeRefundAmount(order.Total, pct)
	if err != nil {
		return nil, err
	}

	hoursElapsed := now.Sub(order.PlacedAt).Hours()
	res.Cancellable = true
	res.RefundPercentage = pct
	res.RefundAmount = amount
	res.HoursElapsed = hoursElapsed
	res.RuleDescription = matchedRuleDescription(storePolicy.TimeBasedRules, hoursElapsed)
	return res, nil
}

// Submit files a PENDING request. One active request per order; a second
// submission while one is pending is rejected.
func (s *cancellationService) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitCancellationRequest) (*dto.SubmitCancellationResponse, error) {
	if req.Reason == entity.ReasonOther && req.AdditionalReason == "" {
		return nil, errors.New("additional reason is required when reason is Other")
	}

	order, storePolicy, err := s.loadOrderAndPolicy(ctx, userId, req.OrderId)
	if err != nil {
		return nil, err
	}

	if !refund.IsCancellable(storePolicy.ToRefundPolicy(), order.Status) {
		return nil, fmt.Errorf("order in status %s cannot be cancelled", order.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	active, err := uow.CancellationRepository().HasActiveForOrder(ctx, req.OrderId)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, errors.New("a cancellation request for this order is already pending")
	}

	now := time.Now()
	pct, err := refund.ComputeRefundPercentage(storePolicy.ToRefundPolicy(), order.PlacedAt, now, order.PaymentMethod)
	if err != nil {
		return nil, err
	}
	amount, err := refund.ComputeRefundAmount(order.Total, pct)
	if err != nil {
		return nil, err
	}

	request := &entity.CancellationRequest{
		ID:                        uuid.New(),
		OrderID:                   req.OrderId,
		UserID:                    userId,
		Reason:                    req.Reason,
		AdditionalReason:          req.AdditionalReason,
		Status:                    entity.CancellationStatusPending,
		EstimatedRefundPercentage: pct,
		EstimatedRefundAmount:     amount,
	}

	if err := uow.CancellationRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	s.publisher.PublishCancellationRequested(ctx, request.ID, req.OrderId, userId, req.Reason, amount)

	return &dto.SubmitCancellationResponse{
		CancellationId:    request.ID.String(),
		Status:            string(request.Status),
		EstimatedRefund:   amount,
		ResponseTimeHours: storePolicy.ResponseTimeHours,
		Message:           fmt.Sprintf("Your request was received. We will respond within %d hours.", storePolicy.ResponseTimeHours),
	}, nil
}

func (s *cancellationService) ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.UserCancellationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.CancellationRepository().FindAll(ctx,
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var res []*dto.UserCancellationListResponse
	for _, r := range requests {
		item := &dto.UserCancellationListResponse{
			Id:              r.ID,
			OrderId:         r.OrderID,
			Reason:          r.Reason,
			Status:          string(r.Status),
			EstimatedRefund: r.EstimatedRefundAmount,
			CreatedAt:       r.CreatedAt,
		}
		if r.AdminResponse != nil {
			respondedAt := r.AdminResponse.RespondedAt
			amount := r.AdminResponse.RefundAmount
			item.RespondedAt = &respondedAt
			item.AdminNotes = r.AdminResponse.Notes
			if r.Status != entity.CancellationStatusRejected {
				item.RefundAmount = &amount
			}
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *cancellationService) loadOrderAndPolicy(ctx context.Context, userId, orderId uuid.UUID) (*entity.Order, *entity.CancellationPolicy, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderId},
		specification.Filter("user_id", userId),
	)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, errors.New("order not found")
	}

	storePolicy, err := s.policyManager.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	if storePolicy == nil {
		return nil, nil, errors.New("no cancellation policy configured")
	}
	return order, storePolicy, nil
}

func matchedRuleDescription(rules []refund.TimeBasedRule, hoursElapsed float64) string {
	for _, rule := range rules {
		if hoursElapsed <= rule.TimeFrameHoursUpperBound {
			return rule.Description
		}
	}
	return ""
}
