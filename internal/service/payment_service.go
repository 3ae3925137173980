package service

import (
	"context"
	"crypto/sha512"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stylehub-be/internal/config"
	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"
	adminEvents "stylehub-be/pkg/admin/events"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

const shippingFlatFee = 15.0

type IPaymentService interface {
	Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
}

type paymentService struct {
	uowFactory       unitofwork.RepositoryFactory
	cfg              *config.Config
	logger           logger.ILogger
	publisherService IPublisherService
	eventPublisher   adminEvents.Publisher
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	cfg *config.Config,
	logger logger.ILogger,
	publisherService IPublisherService,
	eventPublisher adminEvents.Publisher,
) IPaymentService {
	return &paymentService{
		uowFactory:       uowFactory,
		cfg:              cfg,
		logger:           logger,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// Checkout converts the selected cart lines into an order. COD orders are
// confirmed immediately; every other method gets a Midtrans Snap token and
// stays PENDING until the webhook settles it.
func (s *paymentService) Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	lines, err := uow.CartRepository().FindAllWithDetails(ctx,
		specification.Filter("user_id", userId),
		specification.Filter("selected", true),
	)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("no items selected for checkout")
	}

	orderId := uuid.New()
	now := time.Now()
	order := &entity.Order{
		Id:              orderId,
		UserId:          userId,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
		ShippingFee:     shippingFlatFee,
		ShippingAddress: req.ShippingAddress,
		PlacedAt:        now,
	}

	var midtransItems []midtrans.ItemDetails
	for _, line := range lines {
		unitPrice := line.UnitPrice()
		if unitPrice <= 0 {
			return nil, fmt.Errorf("cart line %s references an unavailable item", line.Id)
		}
		if err := s.checkLineStock(line); err != nil {
			return nil, err
		}

		name := lineName(line)
		order.Items = append(order.Items, entity.OrderItem{
			Id:        uuid.New(),
			OrderId:   orderId,
			Kind:      line.Kind,
			ProductId: line.ProductId,
			BundleId:  line.BundleId,
			Name:      name,
			Size:      line.Size,
			UnitPrice: unitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
		order.Subtotal += line.Subtotal()

		midtransItems = append(midtransItems, midtrans.ItemDetails{
			ID:    order.Items[len(order.Items)-1].Id.String(),
			Price: int64(unitPrice),
			Qty:   int32(line.Quantity),
			Name:  name,
		})
	}
	order.Total = order.Subtotal + order.ShippingFee

	if req.PaymentMethod == entity.PaymentMethodCOD {
		// COD is settled at delivery; the order is confirmed right away.
		order.Status = entity.OrderStatusProcessing
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}
	if err := uow.CartRepository().DeleteSelectedByUserId(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("PAYMENT", "Order placed", map[string]interface{}{
		"orderId":       orderId.String(),
		"userId":        userId.String(),
		"paymentMethod": req.PaymentMethod,
		"total":         order.Total,
	})

	res := &dto.CheckoutResponse{
		OrderId: orderId,
		Status:  order.Status,
		Total:   order.Total,
	}

	if req.PaymentMethod == entity.PaymentMethodCOD {
		// Stock reservation and the confirmation email run async.
		s.publishOrderPaid(ctx, orderId)
		return res, nil
	}

	snapResp, err := s.createSnapTransaction(order, user, midtransItems)
	if err != nil {
		return nil, err
	}

	order.SnapToken = snapResp.Token
	order.SnapRedirectURL = snapResp.RedirectURL
	if err := uow.OrderRepository().UpdatePayment(ctx, order); err != nil {
		return nil, err
	}

	res.SnapToken = snapResp.Token
	res.RedirectURL = snapResp.RedirectURL
	return res, nil
}

func (s *paymentService) checkLineStock(line *entity.CartItem) error {
	if line.Kind == entity.CartItemBundle {
		if line.Bundle == nil {
			return errors.New("bundle no longer available")
		}
		if line.Bundle.Stock < line.Quantity {
			return fmt.Errorf("insufficient stock for %s: %d available", line.Bundle.Name, line.Bundle.Stock)
		}
		return nil
	}
	if line.Product == nil {
		return errors.New("product no longer available")
	}
	if line.Product.Stock < line.Quantity {
		return fmt.Errorf("insufficient stock for %s: %d available", line.Product.Name, line.Product.Stock)
	}
	return nil
}

func lineName(line *entity.CartItem) string {
	if line.Kind == entity.CartItemBundle && line.Bundle != nil {
		return line.Bundle.Name
	}
	if line.Product != nil {
		return line.Product.Name
	}
	return "Unknown item"
}

func (s *paymentService) createSnapTransaction(order *entity.Order, user *entity.User, items []midtrans.ItemDetails) (*snap.Response, error) {
	var sClient snap.Client
	env := midtrans.Sandbox
	if s.cfg.Payment.MidtransEnv == "production" {
		env = midtrans.Production
	}
	sClient.New(s.cfg.Payment.MidtransServerKey, env)

	items = append(items, midtrans.ItemDetails{
		ID:    "SHIPPING",
		Price: int64(order.ShippingFee),
		Qty:   1,
		Name:  "Shipping",
	})

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.Id.String(),
			GrossAmt: int64(order.Total),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/orders?payment=success", s.cfg.App.ClientURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items:           &items,
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}
	return snapResp, nil
}

// HandleNotification processes the Midtrans payment webhook. The signature is
// SHA512(order_id + status_code + gross_amount + server_key).
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	serverKey := s.cfg.Payment.MidtransServerKey
	if serverKey == "" {
		s.logger.Error("WEBHOOK", "Midtrans server key not configured", nil)
		return fmt.Errorf("server configuration error")
	}

	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("WEBHOOK", "Signature mismatch", map[string]interface{}{
			"orderId": req.OrderId,
		})
		return fmt.Errorf("invalid signature")
	}

	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return fmt.Errorf("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}

	var newStatus, newPaymentStatus string
	switch req.TransactionStatus {
	case "capture", "settlement":
		newStatus = entity.OrderStatusPaid
		newPaymentStatus = entity.PaymentStatusPaid
	case "deny", "cancel", "expire":
		newStatus = entity.OrderStatusPending
		newPaymentStatus = entity.PaymentStatusFailed
	case "pending":
		return nil
	default:
		s.logger.Warn("WEBHOOK", "Unknown transaction status", map[string]interface{}{
			"orderId": req.OrderId,
			"status":  req.TransactionStatus,
		})
		return nil
	}

	// Settlement webhooks are retried by Midtrans; a repeat delivery is a
	// no-op.
	if order.Status == newStatus && order.PaymentStatus == newPaymentStatus {
		return nil
	}

	s.logger.Info("WEBHOOK", "Payment status transition", map[string]interface{}{
		"orderId":    req.OrderId,
		"fromStatus": order.Status,
		"toStatus":   newStatus,
	})

	order.Status = newStatus
	order.PaymentStatus = newPaymentStatus
	if newPaymentStatus == entity.PaymentStatusPaid {
		now := time.Now()
		order.PaidAt = &now
	}

	if err := uow.OrderRepository().UpdatePayment(ctx, order); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if newPaymentStatus == entity.PaymentStatusPaid {
		s.publishOrderPaid(ctx, orderId)
		s.eventPublisher.PublishOrderPaid(ctx, orderId, order.UserId, order.Total, order.PaymentMethod)
	}
	return nil
}

func (s *paymentService) publishOrderPaid(ctx context.Context, orderId uuid.UUID) {
	payload, err := json.Marshal(dto.OrderPaidMessage{OrderId: orderId})
	if err != nil {
		s.logger.Error("PAYMENT", "Failed to marshal order paid message", map[string]interface{}{
			"orderId": orderId.String(),
			"error":   err.Error(),
		})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Error("PAYMENT", "Failed to publish order paid message", map[string]interface{}{
			"orderId": orderId.String(),
			"error":   err.Error(),
		})
	}
}
