package entity

import (
	"time"

	"stylehub-be/pkg/refund"

	"github.com/google/uuid"
)

// CancellationPolicy is the singleton, admin-editable store policy. The rule
// fields mirror pkg/refund.Policy; ToRefundPolicy bridges the two so the
// evaluator stays free of persistence concerns.
type CancellationPolicy struct {
	Id                      uuid.UUID
	DefaultRefundPercentage float64
	ResponseTimeHours       int
	IsActive                bool
	TimeBasedRules          []refund.TimeBasedRule
	PaymentMethodRules      map[string]float64
	OrderStatusRestrictions []string
	UpdatedBy               *uuid.UUID
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ToRefundPolicy converts the stored record into the evaluator's value type.
func (p CancellationPolicy) ToRefundPolicy() refund.Policy {
	return refund.Policy{
		DefaultRefundPercentage: p.DefaultRefundPercentage,
		ResponseTimeHours:       p.ResponseTimeHours,
		IsActive:                p.IsActive,
		TimeBasedRules:          p.TimeBasedRules,
		PaymentMethodRules:      p.PaymentMethodRules,
		OrderStatusRestrictions: p.OrderStatusRestrictions,
	}
}
