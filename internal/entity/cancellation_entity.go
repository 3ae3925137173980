package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CancellationStatus is the lifecycle state of a cancellation request.
type CancellationStatus string

const (
	CancellationStatusPending   CancellationStatus = "PENDING"
	CancellationStatusApproved  CancellationStatus = "APPROVED"
	CancellationStatusRejected  CancellationStatus = "REJECTED"
	CancellationStatusProcessed CancellationStatus = "PROCESSED"
)

// ReasonOther requires the buyer to supply AdditionalReason.
const ReasonOther = "Other"

// CancellationRequest is a buyer's request to cancel an order. At most one
// PENDING request exists per order; the submission service enforces that.
//
// Lifecycle: PENDING -> APPROVED or REJECTED by an admin, APPROVED ->
// PROCESSED once the refund is actually issued. REJECTED and PROCESSED are
// terminal.
type CancellationRequest struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	UserID           uuid.UUID
	Reason           string
	AdditionalReason string
	Status           CancellationStatus
	// Estimate shown to the buyer at submission time. Informational only:
	// the authoritative figures are recomputed at approval and stored on
	// AdminResponse.
	EstimatedRefundPercentage float64
	EstimatedRefundAmount     float64
	AdminResponse             *AdminResponse
	CreatedAt                 time.Time
	UpdatedAt                 time.Time

	Order Order
	User  User
}

// AdminResponse records the admin decision and the refund figures computed at
// approval time.
type AdminResponse struct {
	RespondedAt      time.Time
	Notes            string
	RefundPercentage float64
	RefundAmount     float64
}

// CanTransitionTo reports whether the request may move to the given status.
func (c CancellationRequest) CanTransitionTo(next CancellationStatus) bool {
	switch c.Status {
	case CancellationStatusPending:
		return next == CancellationStatusApproved || next == CancellationStatusRejected
	case CancellationStatusApproved:
		return next == CancellationStatusProcessed
	default:
		return false
	}
}

// Transition moves the request to the given status, rejecting transitions the
// state machine does not allow.
func (c *CancellationRequest) Transition(next CancellationStatus) error {
	if !c.CanTransitionTo(next) {
		return fmt.Errorf("cancellation %s: illegal transition %s -> %s", c.ID, c.Status, next)
	}
	c.Status = next
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (c CancellationRequest) IsTerminal() bool {
	return c.Status == CancellationStatusRejected || c.Status == CancellationStatusProcessed
}
