package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. Uppercase codes match what the storefront client and the
// cancellation policy's status restrictions use on the wire.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusPaid       = "PAID"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// Payment statuses.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusFailed  = "FAILED"
)

// Payment method codes. COD is settled at delivery time, everything else goes
// through the Midtrans Snap flow.
const (
	PaymentMethodCOD          = "COD"
	PaymentMethodCreditCard   = "CREDIT_CARD"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodEwallet      = "EWALLET"
)

type Order struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Status          string
	PaymentMethod   string
	PaymentStatus   string
	SnapToken       string
	SnapRedirectURL string
	Subtotal        float64
	ShippingFee     float64
	Total           float64
	ShippingAddress string
	PlacedAt        time.Time
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User  User
	Items []OrderItem
}

type OrderItem struct {
	Id        uuid.UUID
	OrderId   uuid.UUID
	Kind      CartItemKind
	ProductId *uuid.UUID
	BundleId  *uuid.UUID
	Name      string
	Size      string
	UnitPrice float64
	Quantity  int
	Subtotal  float64
}

// ValidOrderStatuses returns all order status codes.
func ValidOrderStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// ValidPaymentMethods returns all payment method codes.
func ValidPaymentMethods() []string {
	return []string{
		PaymentMethodCOD,
		PaymentMethodCreditCard,
		PaymentMethodBankTransfer,
		PaymentMethodEwallet,
	}
}
