package policy

import (
	"context"
	"fmt"
	"time"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/repository/unitofwork"
	"stylehub-be/pkg/refund"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const policyCacheKey = "cancellation_policy"

// Manager is the single read/write path for the store cancellation policy.
// Reads are cached; every write replaces the whole policy and drops the cache
// so buyer-facing estimates never see a stale rule set.
type Manager struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	logger     logger.ILogger
}

func NewManager(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) *Manager {
	return &Manager{
		uowFactory: uowFactory,
		cache:      cache.New(5*time.Minute, 10*time.Minute),
		logger:     logger,
	}
}

// Get returns the current policy, hitting the database only on cache miss.
// Returns nil when no policy has been configured yet.
func (m *Manager) Get(ctx context.Context) (*entity.CancellationPolicy, error) {
	if cached, found := m.cache.Get(policyCacheKey); found {
		return cached.(*entity.CancellationPolicy), nil
	}

	uow := m.uowFactory.NewUnitOfWork(ctx)
	policy, err := uow.PolicyRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if policy != nil {
		m.cache.Set(policyCacheKey, policy, cache.DefaultExpiration)
	}
	return policy, nil
}

// Update validates and replaces the policy. The rule list order in the
// request is preserved verbatim; it is the evaluation order.
func (m *Manager) Update(ctx context.Context, adminId uuid.UUID, req *dto.UpdatePolicyRequest) (*entity.CancellationPolicy, error) {
	rules := make([]refund.TimeBasedRule, 0, len(req.TimeBasedRules))
	for _, r := range req.TimeBasedRules {
		rules = append(rules, refund.TimeBasedRule{
			TimeFrameHoursUpperBound: r.TimeFrameHours,
			RefundPercentage:         r.RefundPercentage,
			Description:              r.Description,
		})
	}

	for _, status := range req.OrderStatusRestrictions {
		if !isKnownOrderStatus(status) {
			return nil, fmt.Errorf("unknown order status in restrictions: %s", status)
		}
	}
	for method := range req.PaymentMethodRules {
		if !isKnownPaymentMethod(method) {
			return nil, fmt.Errorf("unknown payment method in rules: %s", method)
		}
	}

	candidate := refund.Policy{
		DefaultRefundPercentage: *req.DefaultRefundPercentage,
		ResponseTimeHours:       req.ResponseTimeHours,
		IsActive:                *req.IsActive,
		TimeBasedRules:          rules,
		PaymentMethodRules:      req.PaymentMethodRules,
		OrderStatusRestrictions: req.OrderStatusRestrictions,
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	uow := m.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.PolicyRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	policy := &entity.CancellationPolicy{
		DefaultRefundPercentage: candidate.DefaultRefundPercentage,
		ResponseTimeHours:       candidate.ResponseTimeHours,
		IsActive:                candidate.IsActive,
		TimeBasedRules:          rules,
		PaymentMethodRules:      req.PaymentMethodRules,
		OrderStatusRestrictions: req.OrderStatusRestrictions,
		UpdatedBy:               &adminId,
	}
	if existing != nil {
		policy.Id = existing.Id
	} else {
		policy.Id = uuid.New()
	}

	if err := uow.PolicyRepository().Save(ctx, policy); err != nil {
		return nil, err
	}

	m.cache.Delete(policyCacheKey)

	m.logger.Info("POLICY", "Cancellation policy updated", map[string]interface{}{
		"adminId":        adminId.String(),
		"isActive":       policy.IsActive,
		"defaultPercent": policy.DefaultRefundPercentage,
		"timeRuleCount":  len(policy.TimeBasedRules),
	})

	return policy, nil
}

func isKnownOrderStatus(status string) bool {
	for _, s := range entity.ValidOrderStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

func isKnownPaymentMethod(method string) bool {
	for _, m := range entity.ValidPaymentMethods() {
		if m == method {
			return true
		}
	}
	return false
}
