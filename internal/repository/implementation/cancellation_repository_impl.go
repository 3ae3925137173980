package implementation

import (
	"context"

	"stylehub-be/internal/entity"
	"stylehub-be/internal/model"
	"stylehub-be/internal/repository/contract"
	"stylehub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cancellationRepositoryImpl struct {
	db *gorm.DB
}

func NewCancellationRepository(db *gorm.DB) contract.CancellationRepository {
	return &cancellationRepositoryImpl{db: db}
}

func (r *cancellationRepositoryImpl) Create(ctx context.Context, request *entity.CancellationRequest) error {
	m := r.mapToModel(request)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *cancellationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CancellationRequest, error) {
	var m model.CancellationRequest
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&m), nil
}

func (r *cancellationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRequest, error) {
	var ms []*model.CancellationRequest
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	var requests []*entity.CancellationRequest
	for _, m := range ms {
		requests = append(requests, r.mapToEntity(m))
	}
	return requests, nil
}

func (r *cancellationRepositoryImpl) FindAllWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRequest, error) {
	var ms []*model.CancellationRequest
	query := r.db.WithContext(ctx).Preload("Order").Preload("User")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	var requests []*entity.CancellationRequest
	for _, m := range ms {
		requests = append(requests, r.mapToEntity(m))
	}
	return requests, nil
}

func (r *cancellationRepositoryImpl) HasActiveForOrder(ctx context.Context, orderId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CancellationRequest{}).
		Where("order_id = ? AND status = ?", orderId, string(entity.CancellationStatusPending)).
		Count(&count).Error
	return count > 0, err
}

func (r *cancellationRepositoryImpl) Update(ctx context.Context, request *entity.CancellationRequest) error {
	updates := map[string]interface{}{
		"status": string(request.Status),
	}
	if request.AdminResponse != nil {
		updates["responded_at"] = request.AdminResponse.RespondedAt
		updates["admin_notes"] = request.AdminResponse.Notes
		updates["refund_percentage"] = request.AdminResponse.RefundPercentage
		updates["refund_amount"] = request.AdminResponse.RefundAmount
	}
	return r.db.WithContext(ctx).Model(&model.CancellationRequest{}).
		Where("id = ?", request.ID).
		Updates(updates).Error
}

func (r *cancellationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.CancellationRequest{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *cancellationRepositoryImpl) SumRefundAmount(ctx context.Context, specs ...specification.Specification) (float64, error) {
	var sum *float64
	query := r.db.WithContext(ctx).Model(&model.CancellationRequest{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Select("SUM(refund_amount)").Scan(&sum).Error; err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *cancellationRepositoryImpl) mapToModel(e *entity.CancellationRequest) *model.CancellationRequest {
	m := &model.CancellationRequest{
		ID:                        e.ID,
		OrderID:                   e.OrderID,
		UserID:                    e.UserID,
		Reason:                    e.Reason,
		AdditionalReason:          e.AdditionalReason,
		Status:                    string(e.Status),
		EstimatedRefundPercentage: e.EstimatedRefundPercentage,
		EstimatedRefundAmount:     e.EstimatedRefundAmount,
	}
	if e.AdminResponse != nil {
		respondedAt := e.AdminResponse.RespondedAt
		pct := e.AdminResponse.RefundPercentage
		amount := e.AdminResponse.RefundAmount
		m.RespondedAt = &respondedAt
		m.AdminNotes = e.AdminResponse.Notes
		m.RefundPercentage = &pct
		m.RefundAmount = &amount
	}
	return m
}

func (r *cancellationRepositoryImpl) mapToEntity(m *model.CancellationRequest) *entity.CancellationRequest {
	e := &entity.CancellationRequest{
		ID:                        m.ID,
		OrderID:                   m.OrderID,
		UserID:                    m.UserID,
		Reason:                    m.Reason,
		AdditionalReason:          m.AdditionalReason,
		Status:                    entity.CancellationStatus(m.Status),
		EstimatedRefundPercentage: m.EstimatedRefundPercentage,
		EstimatedRefundAmount:     m.EstimatedRefundAmount,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
	if m.RespondedAt != nil {
		e.AdminResponse = &entity.AdminResponse{
			RespondedAt: *m.RespondedAt,
			Notes:       m.AdminNotes,
		}
		if m.RefundPercentage != nil {
			e.AdminResponse.RefundPercentage = *m.RefundPercentage
		}
		if m.RefundAmount != nil {
			e.AdminResponse.RefundAmount = *m.RefundAmount
		}
	}
	if m.Order.Id != uuid.Nil {
		e.Order = entity.Order{
			Id:            m.Order.Id,
			UserId:        m.Order.UserId,
			Status:        m.Order.Status,
			PaymentMethod: m.Order.PaymentMethod,
			Total:         m.Order.Total,
			PlacedAt:      m.Order.PlacedAt,
		}
	}
	if m.User.Id != uuid.Nil {
		e.User = entity.User{
			Id:       m.User.Id,
			Email:    m.User.Email,
			FullName: m.User.FullName,
		}
	}
	return e
}
