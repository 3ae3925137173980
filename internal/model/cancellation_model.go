package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancellationRequest GORM model for order cancellation requests.
type CancellationRequest struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason           string    `gorm:"type:varchar(100);not null"`
	AdditionalReason string    `gorm:"type:text"`
	Status           string    `gorm:"type:varchar(50);default:'PENDING';index"` // PENDING, APPROVED, REJECTED, PROCESSED

	EstimatedRefundPercentage float64 `gorm:"type:decimal(5,2)"`
	EstimatedRefundAmount     float64 `gorm:"type:decimal(12,2)"`

	// Admin response fields, set when the request leaves PENDING.
	RespondedAt      *time.Time
	AdminNotes       string   `gorm:"type:text"`
	RefundPercentage *float64 `gorm:"type:decimal(5,2)"`
	RefundAmount     *float64 `gorm:"type:decimal(12,2)"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relations
	Order Order `gorm:"foreignKey:OrderID"`
	User  User  `gorm:"foreignKey:UserID"`
}

func (CancellationRequest) TableName() string {
	return "cancellation_requests"
}
