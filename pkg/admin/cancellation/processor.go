package cancellation

import (
	"context"
	"fmt"
	"time"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/pkg/mailer"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"
	adminEvents "stylehub-be/pkg/admin/events"
	"stylehub-be/pkg/admin/policy"
	"stylehub-be/pkg/refund"

	"github.com/google/uuid"
)

// ApproveResult contains approval operation results
type ApproveResult struct {
	CancellationId   uuid.UUID
	RefundPercentage float64
	RefundAmount     float64
	RespondedAt      time.Time
}

// RejectResult contains rejection operation results
type RejectResult struct {
	CancellationId uuid.UUID
	RespondedAt    time.Time
}

// ProcessResult contains refund-issued operation results
type ProcessResult struct {
	CancellationId uuid.UUID
	RefundAmount   float64
	ProcessedAt    time.Time
}

// Processor handles the admin cancellation workflow. Approval recomputes the
// refund from the current policy at decision time; the buyer's submission
// estimate is never trusted.
type Processor struct {
	logger        logger.ILogger
	publisher     adminEvents.Publisher
	emailService  mailer.IEmailService
	policyManager *policy.Manager

	// flatOverridePercent >= 0 replaces the policy-computed percentage at
	// approval time. -1 leaves the policy authoritative.
	flatOverridePercent float64
}

// NewProcessor creates a new cancellation processor
func NewProcessor(logger logger.ILogger, publisher adminEvents.Publisher, emailService mailer.IEmailService, policyManager *policy.Manager, flatOverridePercent float64) *Processor {
	return &Processor{
		logger:              logger,
		publisher:           publisher,
		emailService:        emailService,
		policyManager:       policyManager,
		flatOverridePercent: flatOverridePercent,
	}
}

// GetAll retrieves paginated cancellation requests with optional status filter
func (p *Processor) GetAll(ctx context.Context, uow unitofwork.UnitOfWork, page, limit int, status string) ([]*entity.CancellationRequest, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var specs []specification.Specification
	if status != "" {
		specs = append(specs, specification.Filter("status", status))
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	return uow.CancellationRepository().FindAllWithDetails(ctx, specs...)
}

// Approve approves a pending request. The refund is recomputed against the
// current policy and the order is moved to CANCELLED in the same transaction.
func (p *Processor) Approve(ctx context.Context, uow unitofwork.UnitOfWork, cancellationId uuid.UUID, req dto.AdminApproveCancellationRequest) (*ApproveResult, error) {
	request, err := uow.CancellationRepository().FindOne(ctx, specification.ByID{ID: cancellationId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("cancellation request not found")
	}
	if err := request.Transition(entity.CancellationStatusApproved); err != nil {
		return nil, err
	}

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: request.OrderID})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order not found for cancellation request")
	}

	storePolicy, err := p.policyManager.Get(ctx)
	if err != nil {
		return nil, err
	}
	if storePolicy == nil {
		return nil, fmt.Errorf("no cancellation policy configured")
	}

	now := time.Now()
	pct, err := refund.ComputeRefundPercentage(storePolicy.ToRefundPolicy(), order.PlacedAt, now, order.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if p.flatOverridePercent >= 0 && p.flatOverridePercent != pct {
		p.logger.Warn("CANCELLATION", "Flat refund override replaces policy percentage", map[string]interface{}{
			"cancellationId":  cancellationId.String(),
			"policyPercent":   pct,
			"overridePercent": p.flatOverridePercent,
		})
		pct = p.flatOverridePercent
	}

	amount, err := refund.ComputeRefundAmount(order.Total, pct)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	request.AdminResponse = &entity.AdminResponse{
		RespondedAt:      now,
		Notes:            req.AdminNotes,
		RefundPercentage: pct,
		RefundAmount:     amount,
	}
	if err := uow.CancellationRepository().Update(ctx, request); err != nil {
		return nil, err
	}
	if err := uow.OrderRepository().UpdateStatus(ctx, order.Id, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	p.logger.Info("CANCELLATION", "Approved cancellation request", map[string]interface{}{
		"cancellationId":   cancellationId.String(),
		"orderId":          request.OrderID.String(),
		"refundPercentage": pct,
		"refundAmount":     amount,
	})

	p.publisher.PublishCancellationApproved(ctx, cancellationId, request.OrderID, request.UserID, pct, amount)

	p.notifyDecision(ctx, uow, request.UserID, request.OrderID, "approved", req.AdminNotes, amount)

	return &ApproveResult{
		CancellationId:   cancellationId,
		RefundPercentage: pct,
		RefundAmount:     amount,
		RespondedAt:      now,
	}, nil
}

// Reject rejects a pending request. The order keeps its current status.
func (p *Processor) Reject(ctx context.Context, uow unitofwork.UnitOfWork, cancellationId uuid.UUID, req dto.AdminRejectCancellationRequest) (*RejectResult, error) {
	request, err := uow.CancellationRepository().FindOne(ctx, specification.ByID{ID: cancellationId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("cancellation request not found")
	}
	if err := request.Transition(entity.CancellationStatusRejected); err != nil {
		return nil, err
	}

	now := time.Now()
	request.AdminResponse = &entity.AdminResponse{
		RespondedAt: now,
		Notes:       req.AdminNotes,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CancellationRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	p.logger.Info("CANCELLATION", "Rejected cancellation request", map[string]interface{}{
		"cancellationId": cancellationId.String(),
		"orderId":        request.OrderID.String(),
		"adminNotes":     req.AdminNotes,
	})

	p.publisher.PublishCancellationRejected(ctx, cancellationId, request.OrderID, request.UserID, req.AdminNotes)

	p.notifyDecision(ctx, uow, request.UserID, request.OrderID, "rejected", req.AdminNotes, 0)

	return &RejectResult{
		CancellationId: cancellationId,
		RespondedAt:    now,
	}, nil
}

// Process marks an approved request as refund-issued. Terminal.
func (p *Processor) Process(ctx context.Context, uow unitofwork.UnitOfWork, cancellationId uuid.UUID) (*ProcessResult, error) {
	request, err := uow.CancellationRepository().FindOne(ctx, specification.ByID{ID: cancellationId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("cancellation request not found")
	}
	if err := request.Transition(entity.CancellationStatusProcessed); err != nil {
		return nil, err
	}
	if request.AdminResponse == nil {
		return nil, fmt.Errorf("approved request has no refund figures")
	}

	if err := uow.CancellationRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	now := time.Now()
	refundAmount := request.AdminResponse.RefundAmount

	p.logger.Info("CANCELLATION", "Processed refund for cancellation request", map[string]interface{}{
		"cancellationId": cancellationId.String(),
		"orderId":        request.OrderID.String(),
		"refundAmount":   refundAmount,
	})

	p.publisher.PublishCancellationProcessed(ctx, cancellationId, request.OrderID, request.UserID, refundAmount)

	return &ProcessResult{
		CancellationId: cancellationId,
		RefundAmount:   refundAmount,
		ProcessedAt:    now,
	}, nil
}

func (p *Processor) notifyDecision(ctx context.Context, uow unitofwork.UnitOfWork, userId, orderId uuid.UUID, decision, notes string, refundAmount float64) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return
	}
	go func(email string) {
		if mailErr := p.emailService.SendCancellationDecision(email, orderId.String(), decision, notes, refundAmount); mailErr != nil {
			p.logger.Error("CANCELLATION", "Failed to send decision email", map[string]interface{}{
				"orderId": orderId.String(),
				"error":   mailErr.Error(),
			})
		}
	}(user.Email)
}
