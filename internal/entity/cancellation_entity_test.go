package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancellationTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    CancellationStatus
		to      CancellationStatus
		allowed bool
	}{
		{name: "pending to approved", from: CancellationStatusPending, to: CancellationStatusApproved, allowed: true},
		{name: "pending to rejected", from: CancellationStatusPending, to: CancellationStatusRejected, allowed: true},
		{name: "pending straight to processed", from: CancellationStatusPending, to: CancellationStatusProcessed, allowed: false},
		{name: "approved to processed", from: CancellationStatusApproved, to: CancellationStatusProcessed, allowed: true},
		{name: "approved back to pending", from: CancellationStatusApproved, to: CancellationStatusPending, allowed: false},
		{name: "approved to rejected", from: CancellationStatusApproved, to: CancellationStatusRejected, allowed: false},
		{name: "rejected is terminal", from: CancellationStatusRejected, to: CancellationStatusApproved, allowed: false},
		{name: "processed is terminal", from: CancellationStatusProcessed, to: CancellationStatusPending, allowed: false},
		{name: "self transition not allowed", from: CancellationStatusPending, to: CancellationStatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CancellationRequest{ID: uuid.New(), Status: tt.from}
			assert.Equal(t, tt.allowed, req.CanTransitionTo(tt.to))

			err := req.Transition(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, req.Status)
			} else {
				require.Error(t, err)
				// Failed transitions leave the status untouched.
				assert.Equal(t, tt.from, req.Status)
			}
		})
	}
}

func TestCancellationIsTerminal(t *testing.T) {
	assert.False(t, CancellationRequest{Status: CancellationStatusPending}.IsTerminal())
	assert.False(t, CancellationRequest{Status: CancellationStatusApproved}.IsTerminal())
	assert.True(t, CancellationRequest{Status: CancellationStatusRejected}.IsTerminal())
	assert.True(t, CancellationRequest{Status: CancellationStatusProcessed}.IsTerminal())
}

func TestCancellationFullLifecycle(t *testing.T) {
	req := CancellationRequest{ID: uuid.New(), Status: CancellationStatusPending}

	require.NoError(t, req.Transition(CancellationStatusApproved))
	require.NoError(t, req.Transition(CancellationStatusProcessed))
	assert.True(t, req.IsTerminal())

	// Nothing moves out of a terminal state.
	for _, next := range []CancellationStatus{
		CancellationStatusPending,
		CancellationStatusApproved,
		CancellationStatusRejected,
		CancellationStatusProcessed,
	} {
		assert.Error(t, req.Transition(next))
	}
}
