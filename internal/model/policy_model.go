package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CancellationPolicy holds the singleton store policy. Rule collections are
// stored as jsonb so the admin console can reorder time-based rules and the
// stored order is exactly the evaluation order.
type CancellationPolicy struct {
	Id                      uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DefaultRefundPercentage float64                     `gorm:"type:decimal(5,2);not null"`
	ResponseTimeHours       int                         `gorm:"not null;default:48"`
	IsActive                bool                        `gorm:"default:true"`
	TimeBasedRules          datatypes.JSON              `gorm:"type:jsonb"`
	PaymentMethodRules      datatypes.JSONMap           `gorm:"type:jsonb"`
	OrderStatusRestrictions datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	UpdatedBy               *uuid.UUID                  `gorm:"type:uuid"`
	CreatedAt               time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt               time.Time                   `gorm:"autoUpdateTime"`
}

func (CancellationPolicy) TableName() string {
	return "cancellation_policies"
}
