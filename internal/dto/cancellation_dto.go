package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Buyer-Side Cancellation ---

// CancellationEstimateResponse is the buyer-facing estimate shown before
// submitting a request. Informational: the authoritative figures are
// recomputed at approval time.
type CancellationEstimateResponse struct {
	OrderId          uuid.UUID `json:"order_id"`
	Cancellable      bool      `json:"cancellable"`
	RefundPercentage float64   `json:"refund_percentage,omitempty"`
	RefundAmount     float64   `json:"refund_amount,omitempty"`
	HoursElapsed     float64   `json:"hours_elapsed,omitempty"`
	RuleDescription  string    `json:"rule_description,omitempty"`
}

type SubmitCancellationRequest struct {
	OrderId          uuid.UUID `json:"order_id" validate:"required"`
	Reason           string    `json:"reason" validate:"required"`
	AdditionalReason string    `json:"additional_reason,omitempty"`
}

type SubmitCancellationResponse struct {
	CancellationId    string  `json:"cancellation_id"`
	Status            string  `json:"status"`
	EstimatedRefund   float64 `json:"estimated_refund"`
	ResponseTimeHours int     `json:"response_time_hours"`
	Message           string  `json:"message"`
}

type UserCancellationListResponse struct {
	Id               uuid.UUID  `json:"id"`
	OrderId          uuid.UUID  `json:"order_id"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	EstimatedRefund  float64    `json:"estimated_refund"`
	RefundAmount     *float64   `json:"refund_amount,omitempty"`
	AdminNotes       string     `json:"admin_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}

// --- Admin-Side Cancellation Management ---

type AdminCancellationListResponse struct {
	Id               uuid.UUID                  `json:"id"`
	User             AdminCancellationUserInfo  `json:"user"`
	Order            AdminCancellationOrderInfo `json:"order"`
	Reason           string                     `json:"reason"`
	AdditionalReason string                     `json:"additional_reason,omitempty"`
	Status           string                     `json:"status"`
	AdminNotes       string                     `json:"admin_notes,omitempty"`
	RefundPercentage *float64                   `json:"refund_percentage,omitempty"`
	RefundAmount     *float64                   `json:"refund_amount,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	RespondedAt      *time.Time                 `json:"responded_at,omitempty"`
}

type AdminCancellationUserInfo struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

type AdminCancellationOrderInfo struct {
	Id            uuid.UUID `json:"id"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	PlacedAt      time.Time `json:"placed_at"`
}

type AdminApproveCancellationRequest struct {
	AdminNotes string `json:"admin_notes,omitempty"`
}

type AdminApproveCancellationResponse struct {
	CancellationId   string    `json:"cancellation_id"`
	Status           string    `json:"status"`
	RefundPercentage float64   `json:"refund_percentage"`
	RefundAmount     float64   `json:"refund_amount"`
	RespondedAt      time.Time `json:"responded_at"`
}

type AdminRejectCancellationRequest struct {
	AdminNotes string `json:"admin_notes,omitempty"`
}

type AdminRejectCancellationResponse struct {
	CancellationId string    `json:"cancellation_id"`
	Status         string    `json:"status"`
	RespondedAt    time.Time `json:"responded_at"`
}

type AdminProcessCancellationResponse struct {
	CancellationId string    `json:"cancellation_id"`
	Status         string    `json:"status"`
	ProcessedAt    time.Time `json:"processed_at"`
}
