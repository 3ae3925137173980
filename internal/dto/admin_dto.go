package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserListResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

type AdminDashboardResponse struct {
	TotalUsers           int64   `json:"total_users"`
	TotalOrders          int64   `json:"total_orders"`
	PaidOrders           int64   `json:"paid_orders"`
	Revenue              float64 `json:"revenue"`
	PendingCancellations int64   `json:"pending_cancellations"`
	RefundedAmount       float64 `json:"refunded_amount"`
}

type AdminLogQuery struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
