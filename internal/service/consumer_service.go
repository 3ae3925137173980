package service

import (
	"context"
	"encoding/json"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/pkg/mailer"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the order-paid topic: it reserves stock, bumps sales
// counters and sends the confirmation email. Runs after payment settles (or
// immediately for COD orders).
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.OrderPaidMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal order paid message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become valid, do not retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOneWithItems(ctx, specification.ByID{ID: payload.OrderId})
	if err != nil {
		cs.logger.Error("CONSUMER", "Failed to load paid order", map[string]interface{}{
			"orderId": payload.OrderId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if order == nil {
		cs.logger.Warn("CONSUMER", "Paid order not found", map[string]interface{}{
			"orderId": payload.OrderId.String(),
		})
		msg.Ack()
		return
	}

	if err := uow.Begin(ctx); err != nil {
		msg.Nack()
		return
	}
	committed := false
	defer func() {
		if !committed {
			uow.Rollback()
		}
	}()

	for _, item := range order.Items {
		if item.Kind == entity.CartItemBundle && item.BundleId != nil {
			if err := uow.BundleRepository().AdjustStock(ctx, *item.BundleId, -item.Quantity); err != nil {
				cs.logger.Error("CONSUMER", "Failed to adjust bundle stock", map[string]interface{}{
					"orderId":  order.Id.String(),
					"bundleId": item.BundleId.String(),
					"error":    err.Error(),
				})
				msg.Nack()
				return
			}
			continue
		}
		if item.ProductId == nil {
			continue
		}
		if err := uow.ProductRepository().AdjustStock(ctx, *item.ProductId, -item.Quantity); err != nil {
			cs.logger.Error("CONSUMER", "Failed to adjust product stock", map[string]interface{}{
				"orderId":   order.Id.String(),
				"productId": item.ProductId.String(),
				"error":     err.Error(),
			})
			msg.Nack()
			return
		}
		if err := uow.ProductRepository().IncrementSales(ctx, *item.ProductId, item.Quantity); err != nil {
			cs.logger.Error("CONSUMER", "Failed to increment sales counter", map[string]interface{}{
				"orderId":   order.Id.String(),
				"productId": item.ProductId.String(),
				"error":     err.Error(),
			})
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		msg.Nack()
		return
	}
	committed = true

	cs.logger.Info("CONSUMER", "Stock reserved for paid order", map[string]interface{}{
		"orderId":   order.Id.String(),
		"itemCount": len(order.Items),
	})

	if order.User.Email != "" {
		go func(email, orderId string, total float64) {
			if mailErr := cs.emailService.SendOrderConfirmation(email, orderId, total); mailErr != nil {
				cs.logger.Error("CONSUMER", "Failed to send order confirmation", map[string]interface{}{
					"orderId": orderId,
					"error":   mailErr.Error(),
				})
			}
		}(order.User.Email, order.Id.String(), order.Total)
	}

	msg.Ack()
}
