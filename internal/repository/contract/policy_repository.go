package contract

import (
	"context"

	"stylehub-be/internal/entity"
)

// PolicyRepository manages the singleton cancellation policy record.
type PolicyRepository interface {
	// Get returns the current policy, or nil when none has been configured.
	Get(ctx context.Context) (*entity.CancellationPolicy, error)
	// Save upserts the singleton record.
	Save(ctx context.Context, policy *entity.CancellationPolicy) error
}
