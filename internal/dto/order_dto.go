package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=COD CREDIT_CARD BANK_TRANSFER EWALLET"`
	ShippingAddress string `json:"shipping_address" validate:"required,min=10"`
}

type CheckoutResponse struct {
	OrderId     uuid.UUID `json:"order_id"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	SnapToken   string    `json:"snap_token,omitempty"`
	RedirectURL string    `json:"redirect_url,omitempty"`
}

type OrderItemResponse struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Size      string  `json:"size,omitempty"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type OrderResponse struct {
	Id              uuid.UUID           `json:"id"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	Subtotal        float64             `json:"subtotal"`
	ShippingFee     float64             `json:"shipping_fee"`
	Total           float64             `json:"total"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	PlacedAt        time.Time           `json:"placed_at"`
	PaidAt          *time.Time          `json:"paid_at,omitempty"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// MidtransWebhookRequest is the payment notification payload posted by
// Midtrans after a transaction status change.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

// OrderPaidMessage is the watermill payload published when a payment settles.
type OrderPaidMessage struct {
	OrderId uuid.UUID `json:"order_id"`
}
