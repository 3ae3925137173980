package events

import (
	"context"
	"time"

	"stylehub-be/internal/pkg/logger"
	pkgEvents "stylehub-be/pkg/events"
	pktNats "stylehub-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for storefront and admin operations
type Publisher interface {
	PublishUserRegistered(ctx context.Context, userId uuid.UUID, email, fullName, source string)
	PublishOrderPaid(ctx context.Context, orderId, userId uuid.UUID, total float64, paymentMethod string)
	PublishCancellationRequested(ctx context.Context, cancellationId, orderId, userId uuid.UUID, reason string, estimatedRefund float64)
	PublishCancellationApproved(ctx context.Context, cancellationId, orderId, userId uuid.UUID, refundPercentage, refundAmount float64)
	PublishCancellationRejected(ctx context.Context, cancellationId, orderId, userId uuid.UUID, notes string)
	PublishCancellationProcessed(ctx context.Context, cancellationId, orderId, userId uuid.UUID, refundAmount float64)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishUserRegistered emits USER_REGISTERED event
func (p *NatsPublisher) PublishUserRegistered(ctx context.Context, userId uuid.UUID, email, fullName, source string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "USER_REGISTERED",
		Data: map[string]interface{}{
			"user_id":   userId,
			"email":     email,
			"full_name": fullName,
			"source":    source,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish USER_REGISTERED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishOrderPaid emits ORDER_PAID event
func (p *NatsPublisher) PublishOrderPaid(ctx context.Context, orderId, userId uuid.UUID, total float64, paymentMethod string) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "ORDER_PAID",
		Data: map[string]interface{}{
			"order_id":       orderId,
			"user_id":        userId,
			"total":          total,
			"payment_method": paymentMethod,
			"entity_type":    "order",
			"entity_id":      orderId.String(),
			"occurred_at":    now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish ORDER_PAID event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishCancellationRequested emits CANCELLATION_REQUESTED event
func (p *NatsPublisher) PublishCancellationRequested(ctx context.Context, cancellationId, orderId, userId uuid.UUID, reason string, estimatedRefund float64) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "CANCELLATION_REQUESTED",
		Data: map[string]interface{}{
			"cancellation_id":  cancellationId,
			"order_id":         orderId,
			"user_id":          userId,
			"reason":           reason,
			"estimated_refund": estimatedRefund,
			"entity_type":      "cancellation",
			"entity_id":        cancellationId.String(),
			"occurred_at":      now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish CANCELLATION_REQUESTED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishCancellationApproved emits CANCELLATION_APPROVED event
func (p *NatsPublisher) PublishCancellationApproved(ctx context.Context, cancellationId, orderId, userId uuid.UUID, refundPercentage, refundAmount float64) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "CANCELLATION_APPROVED",
		Data: map[string]interface{}{
			"cancellation_id":   cancellationId,
			"order_id":          orderId,
			"user_id":           userId,
			"refund_percentage": refundPercentage,
			"refund_amount":     refundAmount,
			"entity_type":       "cancellation",
			"entity_id":         cancellationId.String(),
			"occurred_at":       now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish CANCELLATION_APPROVED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishCancellationRejected emits CANCELLATION_REJECTED event
func (p *NatsPublisher) PublishCancellationRejected(ctx context.Context, cancellationId, orderId, userId uuid.UUID, notes string) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "CANCELLATION_REJECTED",
		Data: map[string]interface{}{
			"cancellation_id": cancellationId,
			"order_id":        orderId,
			"user_id":         userId,
			"notes":           notes,
			"entity_type":     "cancellation",
			"entity_id":       cancellationId.String(),
			"occurred_at":     now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish CANCELLATION_REJECTED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishCancellationProcessed emits CANCELLATION_PROCESSED event
func (p *NatsPublisher) PublishCancellationProcessed(ctx context.Context, cancellationId, orderId, userId uuid.UUID, refundAmount float64) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "CANCELLATION_PROCESSED",
		Data: map[string]interface{}{
			"cancellation_id": cancellationId,
			"order_id":        orderId,
			"user_id":         userId,
			"refund_amount":   refundAmount,
			"entity_type":     "cancellation",
			"entity_id":       cancellationId.String(),
			"occurred_at":     now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish CANCELLATION_PROCESSED event", map[string]interface{}{"error": err.Error()})
	}
}
