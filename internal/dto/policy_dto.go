package dto

import "time"

// TimeBasedRuleDTO mirrors the stored rule shape. Field names follow the wire
// contract the storefront already speaks.
type TimeBasedRuleDTO struct {
	TimeFrameHours   float64 `json:"timeFrameHours" validate:"min=0"`
	RefundPercentage float64 `json:"refundPercentage" validate:"min=0,max=100"`
	Description      string  `json:"description,omitempty"`
}

type PolicyResponse struct {
	DefaultRefundPercentage float64            `json:"defaultRefundPercentage"`
	ResponseTimeHours       int                `json:"responseTimeHours"`
	IsActive                bool               `json:"isActive"`
	TimeBasedRules          []TimeBasedRuleDTO `json:"timeBasedRules"`
	PaymentMethodRules      map[string]float64 `json:"paymentMethodRules"`
	OrderStatusRestrictions []string           `json:"orderStatusRestrictions"`
	UpdatedAt               time.Time          `json:"updatedAt"`
}

// UpdatePolicyRequest replaces the whole policy. DefaultRefundPercentage is a
// pointer so an absent field is rejected instead of silently reading as 0.
type UpdatePolicyRequest struct {
	DefaultRefundPercentage *float64           `json:"defaultRefundPercentage" validate:"required"`
	ResponseTimeHours       int                `json:"responseTimeHours" validate:"required,min=1"`
	IsActive                *bool              `json:"isActive" validate:"required"`
	TimeBasedRules          []TimeBasedRuleDTO `json:"timeBasedRules" validate:"dive"`
	PaymentMethodRules      map[string]float64 `json:"paymentMethodRules,omitempty"`
	OrderStatusRestrictions []string           `json:"orderStatusRestrictions,omitempty"`
}
