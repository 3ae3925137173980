package refund

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return Policy{
		DefaultRefundPercentage: 7,
		ResponseTimeHours:       48,
		IsActive:                true,
		TimeBasedRules: []TimeBasedRule{
			{TimeFrameHoursUpperBound: 24, RefundPercentage: 90, Description: "Within 24 hours"},
			{TimeFrameHoursUpperBound: 48, RefundPercentage: 75, Description: "Within 48 hours"},
		},
		PaymentMethodRules:      map[string]float64{"COD": 50},
		OrderStatusRestrictions: []string{"DELIVERED", "CANCELLED"},
	}
}

func TestComputeRefundPercentage(t *testing.T) {
	placedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		policy        Policy
		elapsed       time.Duration
		paymentMethod string
		want          float64
		wantErr       error
	}{
		{
			name:    "first time rule wins",
			policy:  testPolicy(),
			elapsed: 10 * time.Hour,
			want:    90,
		},
		{
			name:    "second time rule wins",
			policy:  testPolicy(),
			elapsed: 30 * time.Hour,
			want:    75,
		},
		{
			name:    "no time rule matches falls back to default",
			policy:  testPolicy(),
			elapsed: 100 * time.Hour,
			want:    7,
		},
		{
			name:          "time rule beats payment method rule",
			policy:        testPolicy(),
			elapsed:       20 * time.Hour,
			paymentMethod: "COD",
			want:          90,
		},
		{
			name:          "payment method rule after time rules expire",
			policy:        testPolicy(),
			elapsed:       100 * time.Hour,
			paymentMethod: "COD",
			want:          50,
		},
		{
			name:          "unknown payment method falls back to default",
			policy:        testPolicy(),
			elapsed:       100 * time.Hour,
			paymentMethod: "CREDIT_CARD",
			want:          7,
		},
		{
			name:    "boundary elapsed time is inclusive",
			policy:  testPolicy(),
			elapsed: 24 * time.Hour,
			want:    90,
		},
		{
			name:    "just past boundary moves to next rule",
			policy:  testPolicy(),
			elapsed: 24*time.Hour + time.Minute,
			want:    75,
		},
		{
			name:    "zero elapsed time matches first rule",
			policy:  testPolicy(),
			elapsed: 0,
			want:    90,
		},
		{
			name: "rule list order is significant",
			policy: Policy{
				DefaultRefundPercentage: 5,
				IsActive:                true,
				TimeBasedRules: []TimeBasedRule{
					{TimeFrameHoursUpperBound: 48, RefundPercentage: 75},
					{TimeFrameHoursUpperBound: 24, RefundPercentage: 90},
				},
			},
			elapsed: 10 * time.Hour,
			// Both bounds cover 10h; the first listed rule wins, not the tightest.
			want: 75,
		},
		{
			name: "no rules at all uses default",
			policy: Policy{
				DefaultRefundPercentage: 33,
				IsActive:                true,
			},
			elapsed: time.Hour,
			want:    33,
		},
		{
			name: "default percentage over 100 rejected",
			policy: Policy{
				DefaultRefundPercentage: 120,
				IsActive:                true,
			},
			elapsed: time.Hour,
			wantErr: ErrInvalidPolicy,
		},
		{
			name: "negative default percentage rejected",
			policy: Policy{
				DefaultRefundPercentage: -1,
				IsActive:                true,
			},
			elapsed: time.Hour,
			wantErr: ErrInvalidPolicy,
		},
		{
			name: "time rule percentage out of range rejected",
			policy: Policy{
				DefaultRefundPercentage: 10,
				IsActive:                true,
				TimeBasedRules: []TimeBasedRule{
					{TimeFrameHoursUpperBound: 24, RefundPercentage: 101},
				},
			},
			elapsed: time.Hour,
			wantErr: ErrInvalidPolicy,
		},
		{
			name: "payment rule percentage out of range rejected",
			policy: Policy{
				DefaultRefundPercentage: 10,
				IsActive:                true,
				PaymentMethodRules:      map[string]float64{"COD": -5},
			},
			elapsed: time.Hour,
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "now before order placement rejected",
			policy:  testPolicy(),
			elapsed: -time.Hour,
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRefundPercentage(tt.policy, placedAt, placedAt.Add(tt.elapsed), tt.paymentMethod)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)

			// Pure function: a second call with identical inputs returns the same value.
			again, err := ComputeRefundPercentage(tt.policy, placedAt, placedAt.Add(tt.elapsed), tt.paymentMethod)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestComputeRefundPercentageFractionalHours(t *testing.T) {
	policy := Policy{
		DefaultRefundPercentage: 10,
		IsActive:                true,
		TimeBasedRules: []TimeBasedRule{
			{TimeFrameHoursUpperBound: 0.5, RefundPercentage: 100},
		},
	}
	placedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	got, err := ComputeRefundPercentage(policy, placedAt, placedAt.Add(29*time.Minute), "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = ComputeRefundPercentage(policy, placedAt, placedAt.Add(31*time.Minute), "")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestComputeRefundAmount(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		pct     float64
		want    float64
		wantErr error
	}{
		{name: "plain percentage", total: 2000, pct: 90, want: 1800},
		{name: "full refund", total: 149.99, pct: 100, want: 149.99},
		{name: "zero percentage", total: 500, pct: 0, want: 0},
		{name: "zero total", total: 0, pct: 75, want: 0},
		{name: "half-up rounding", total: 33.33, pct: 50, want: 16.67},
		{name: "rounds exactly at half cent", total: 0.99, pct: 50, want: 0.5},
		{name: "negative total rejected", total: -1, pct: 50, wantErr: ErrInvalidAmount},
		{name: "percentage above 100 rejected", total: 100, pct: 100.1, wantErr: ErrInvalidPolicy},
		{name: "negative percentage rejected", total: 100, pct: -0.1, wantErr: ErrInvalidPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRefundAmount(tt.total, tt.pct)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, tt.total)
		})
	}
}

func TestComputeRefundAmountNeverExceedsTotal(t *testing.T) {
	// Sub-cent totals would round above themselves at 100% without the clamp.
	got, err := ComputeRefundAmount(10.005, 100)
	require.NoError(t, err)
	assert.LessOrEqual(t, got, 10.005)
}

func TestIsCancellable(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		status string
		want   bool
	}{
		{
			name:   "active policy unrestricted status",
			policy: testPolicy(),
			status: "PAID",
			want:   true,
		},
		{
			name:   "restricted status",
			policy: testPolicy(),
			status: "DELIVERED",
			want:   false,
		},
		{
			name: "restricted status even with everything else permissive",
			policy: Policy{
				DefaultRefundPercentage: 100,
				IsActive:                true,
				OrderStatusRestrictions: []string{"DELIVERED"},
			},
			status: "DELIVERED",
			want:   false,
		},
		{
			name: "inactive policy blocks unrestricted status",
			policy: Policy{
				DefaultRefundPercentage: 50,
				IsActive:                false,
			},
			status: "PAID",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCancellable(tt.policy, tt.status))
		})
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Order of 2000.00 placed 20 hours ago, paid with COD. The 24h/90% time
	// rule wins over the COD payment rule: 90% of 2000.00 is 1800.00.
	policy := Policy{
		DefaultRefundPercentage: 7,
		IsActive:                true,
		TimeBasedRules: []TimeBasedRule{
			{TimeFrameHoursUpperBound: 24, RefundPercentage: 90},
		},
		PaymentMethodRules: map[string]float64{"COD": 50},
	}
	placedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	now := placedAt.Add(20 * time.Hour)

	pct, err := ComputeRefundPercentage(policy, placedAt, now, "COD")
	require.NoError(t, err)
	assert.Equal(t, 90.0, pct)

	amount, err := ComputeRefundAmount(2000.00, pct)
	require.NoError(t, err)
	assert.Equal(t, 1800.00, amount)
}
