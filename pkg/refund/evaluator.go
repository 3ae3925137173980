// Package refund evaluates the store cancellation policy for a specific order.
//
// Everything in this package is pure: no clock reads, no storage, no network.
// Callers pass the policy and both timestamps in, so the buyer-facing estimate
// and the admin approval recomputation are guaranteed to agree on identical
// inputs.
package refund

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Evaluation error taxonomy. All are non-retriable and raised synchronously;
// compare with errors.Is.
var (
	ErrInvalidPolicy    = errors.New("invalid cancellation policy")
	ErrInvalidTimeRange = errors.New("evaluation time precedes order placement")
	ErrInvalidAmount    = errors.New("order total must not be negative")
)

// TimeBasedRule maps "hours since order placement" to a refund percentage.
// A rule matches when elapsed hours are less than or equal to its upper bound
// (the boundary is inclusive).
type TimeBasedRule struct {
	TimeFrameHoursUpperBound float64 `json:"timeFrameHours"`
	RefundPercentage         float64 `json:"refundPercentage"`
	Description              string  `json:"description,omitempty"`
}

// Policy is the administrator-editable cancellation policy, one per store.
//
// TimeBasedRules is an ordered slice on purpose: rules are scanned in list
// order and the first match wins, so reordering rules in the admin console
// deterministically changes evaluation outcome.
type Policy struct {
	DefaultRefundPercentage float64
	ResponseTimeHours       int
	IsActive                bool
	TimeBasedRules          []TimeBasedRule
	PaymentMethodRules      map[string]float64
	OrderStatusRestrictions []string
}

// Validate checks that every percentage the policy carries is within [0,100].
// Malformed policies are rejected here, at the boundary, instead of being
// trusted during evaluation.
func (p Policy) Validate() error {
	if p.DefaultRefundPercentage < 0 || p.DefaultRefundPercentage > 100 {
		return fmt.Errorf("%w: default refund percentage %.2f out of [0,100]", ErrInvalidPolicy, p.DefaultRefundPercentage)
	}
	for i, rule := range p.TimeBasedRules {
		if rule.RefundPercentage < 0 || rule.RefundPercentage > 100 {
			return fmt.Errorf("%w: time rule %d percentage %.2f out of [0,100]", ErrInvalidPolicy, i, rule.RefundPercentage)
		}
		if rule.TimeFrameHoursUpperBound < 0 {
			return fmt.Errorf("%w: time rule %d has negative hour bound", ErrInvalidPolicy, i)
		}
	}
	for method, pct := range p.PaymentMethodRules {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: payment method %s percentage %.2f out of [0,100]", ErrInvalidPolicy, method, pct)
		}
	}
	return nil
}

// IsRestrictedStatus reports whether the given order status is excluded from
// cancellation by the policy.
func (p Policy) IsRestrictedStatus(orderStatus string) bool {
	for _, s := range p.OrderStatusRestrictions {
		if s == orderStatus {
			return true
		}
	}
	return false
}

// ComputeRefundPercentage resolves the refund percentage an order qualifies
// for. Precedence: first matching time-based rule, then payment-method rule,
// then the policy default. Time-based rules win over payment-method rules.
//
// paymentMethod may be empty when the order's method is unknown.
func ComputeRefundPercentage(policy Policy, orderPlacedAt, now time.Time, paymentMethod string) (float64, error) {
	if err := policy.Validate(); err != nil {
		return 0, err
	}
	if now.Before(orderPlacedAt) {
		return 0, fmt.Errorf("%w: now=%s placedAt=%s", ErrInvalidTimeRange,
			now.Format(time.RFC3339), orderPlacedAt.Format(time.RFC3339))
	}

	hoursElapsed := now.Sub(orderPlacedAt).Hours()

	// First match wins. The list order is part of the contract.
	for _, rule := range policy.TimeBasedRules {
		if hoursElapsed <= rule.TimeFrameHoursUpperBound {
			return rule.RefundPercentage, nil
		}
	}

	if paymentMethod != "" {
		if pct, ok := policy.PaymentMethodRules[paymentMethod]; ok {
			return pct, nil
		}
	}

	return policy.DefaultRefundPercentage, nil
}

// ComputeRefundAmount converts a refund percentage into a currency amount,
// rounded half-up to 2 decimal places. The result is always within
// [0, orderTotal].
func ComputeRefundAmount(orderTotal, refundPercentage float64) (float64, error) {
	if orderTotal < 0 {
		return 0, fmt.Errorf("%w: got %.2f", ErrInvalidAmount, orderTotal)
	}
	if refundPercentage < 0 || refundPercentage > 100 {
		return 0, fmt.Errorf("%w: refund percentage %.2f out of [0,100]", ErrInvalidPolicy, refundPercentage)
	}

	amount := math.Floor(orderTotal*refundPercentage/100*100+0.5) / 100
	// Half-up rounding of a sub-cent total at 100% can land above the total.
	if amount > orderTotal {
		amount = orderTotal
	}
	return amount, nil
}

// IsCancellable is the sole gate consulted before offering a cancellation
// form: false when the policy is inactive or the order status is restricted.
func IsCancellable(policy Policy, orderStatus string) bool {
	if !policy.IsActive {
		return false
	}
	return !policy.IsRestrictedStatus(orderStatus)
}
