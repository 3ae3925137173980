package policy

import (
	"context"
	"testing"

	"stylehub-be/internal/dto"
	"stylehub-be/pkg/refund"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *dto.UpdatePolicyRequest {
	pct := 25.0
	active := true
	return &dto.UpdatePolicyRequest{
		DefaultRefundPercentage: &pct,
		ResponseTimeHours:       48,
		IsActive:                &active,
		TimeBasedRules: []dto.TimeBasedRuleDTO{
			{TimeFrameHours: 24, RefundPercentage: 90},
		},
		PaymentMethodRules:      map[string]float64{"COD": 100},
		OrderStatusRestrictions: []string{"SHIPPED", "DELIVERED"},
	}
}

// Rejection paths run entirely before any repository access, so a manager
// without a factory exercises them.
func TestUpdateRejectsInvalidInput(t *testing.T) {
	m := NewManager(nil, nil)
	adminId := uuid.New()

	t.Run("unknown order status", func(t *testing.T) {
		req := validRequest()
		req.OrderStatusRestrictions = []string{"SHIPPED", "TELEPORTED"}

		_, err := m.Update(context.Background(), adminId, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TELEPORTED")
	})

	t.Run("unknown payment method", func(t *testing.T) {
		req := validRequest()
		req.PaymentMethodRules = map[string]float64{"BARTER": 50}

		_, err := m.Update(context.Background(), adminId, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BARTER")
	})

	t.Run("default percentage out of range", func(t *testing.T) {
		req := validRequest()
		bad := 150.0
		req.DefaultRefundPercentage = &bad

		_, err := m.Update(context.Background(), adminId, req)
		assert.ErrorIs(t, err, refund.ErrInvalidPolicy)
	})

	t.Run("time rule percentage out of range", func(t *testing.T) {
		req := validRequest()
		req.TimeBasedRules = []dto.TimeBasedRuleDTO{
			{TimeFrameHours: 24, RefundPercentage: 101},
		}

		_, err := m.Update(context.Background(), adminId, req)
		assert.ErrorIs(t, err, refund.ErrInvalidPolicy)
	})

	t.Run("payment rule percentage out of range", func(t *testing.T) {
		req := validRequest()
		req.PaymentMethodRules = map[string]float64{"COD": -1}

		_, err := m.Update(context.Background(), adminId, req)
		assert.ErrorIs(t, err, refund.ErrInvalidPolicy)
	})
}
