package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"stylehub-be/internal/entity"
	"stylehub-be/internal/model"
	"stylehub-be/internal/repository/contract"
	"stylehub-be/pkg/refund"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type policyRepositoryImpl struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) contract.PolicyRepository {
	return &policyRepositoryImpl{db: db}
}

func (r *policyRepositoryImpl) Get(ctx context.Context) (*entity.CancellationPolicy, error) {
	var m model.CancellationPolicy
	// Singleton record: there is at most one row.
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&m)
}

func (r *policyRepositoryImpl) Save(ctx context.Context, policy *entity.CancellationPolicy) error {
	rulesJSON, err := json.Marshal(policy.TimeBasedRules)
	if err != nil {
		return fmt.Errorf("failed to marshal time-based rules: %w", err)
	}

	methodRules := datatypes.JSONMap{}
	for method, pct := range policy.PaymentMethodRules {
		methodRules[method] = pct
	}

	m := &model.CancellationPolicy{
		Id:                      policy.Id,
		DefaultRefundPercentage: policy.DefaultRefundPercentage,
		ResponseTimeHours:       policy.ResponseTimeHours,
		IsActive:                policy.IsActive,
		TimeBasedRules:          datatypes.JSON(rulesJSON),
		PaymentMethodRules:      methodRules,
		OrderStatusRestrictions: datatypes.NewJSONSlice(policy.OrderStatusRestrictions),
		UpdatedBy:               policy.UpdatedBy,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(m).Error
}

func (r *policyRepositoryImpl) mapToEntity(m *model.CancellationPolicy) (*entity.CancellationPolicy, error) {
	var rules []refund.TimeBasedRule
	if len(m.TimeBasedRules) > 0 {
		if err := json.Unmarshal(m.TimeBasedRules, &rules); err != nil {
			return nil, fmt.Errorf("corrupt time-based rules: %w", err)
		}
	}

	methodRules := make(map[string]float64, len(m.PaymentMethodRules))
	for method, v := range m.PaymentMethodRules {
		pct, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("corrupt payment method rule for %s", method)
		}
		methodRules[method] = pct
	}

	return &entity.CancellationPolicy{
		Id:                      m.Id,
		DefaultRefundPercentage: m.DefaultRefundPercentage,
		ResponseTimeHours:       m.ResponseTimeHours,
		IsActive:                m.IsActive,
		TimeBasedRules:          rules,
		PaymentMethodRules:      methodRules,
		OrderStatusRestrictions: []string(m.OrderStatusRestrictions),
		UpdatedBy:               m.UpdatedBy,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}, nil
}
