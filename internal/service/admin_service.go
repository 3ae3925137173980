package service

import (
	"context"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/repository/unitofwork"
	"stylehub-be/pkg/admin/cancellation"
	"stylehub-be/pkg/admin/dashboard"
	"stylehub-be/pkg/admin/policy"
	"stylehub-be/pkg/admin/user"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetDashboardStats(ctx context.Context) (*dto.AdminDashboardResponse, error)

	// User Management
	GetAllUsers(ctx context.Context, page, limit int, role string) ([]*dto.AdminUserListResponse, int64, error)
	UpdateUserStatus(ctx context.Context, userId uuid.UUID, req dto.AdminUpdateUserStatusRequest) (*dto.AdminUserListResponse, error)
	DeleteUser(ctx context.Context, userId uuid.UUID) error

	// Cancellation Management
	GetCancellations(ctx context.Context, page, limit int, status string) ([]*dto.AdminCancellationListResponse, error)
	ApproveCancellation(ctx context.Context, cancellationId uuid.UUID, req dto.AdminApproveCancellationRequest) (*dto.AdminApproveCancellationResponse, error)
	RejectCancellation(ctx context.Context, cancellationId uuid.UUID, req dto.AdminRejectCancellationRequest) (*dto.AdminRejectCancellationResponse, error)
	ProcessCancellation(ctx context.Context, cancellationId uuid.UUID) (*dto.AdminProcessCancellationResponse, error)

	// Policy Management
	GetPolicy(ctx context.Context) (*dto.PolicyResponse, error)
	UpdatePolicy(ctx context.Context, adminId uuid.UUID, req *dto.UpdatePolicyRequest) (*dto.PolicyResponse, error)

	// Logs
	GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger

	userManager           *user.Manager
	cancellationProcessor *cancellation.Processor
	policyManager         *policy.Manager
	dashboardAggregator   *dashboard.Aggregator
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	userManager *user.Manager,
	cancellationProcessor *cancellation.Processor,
	policyManager *policy.Manager,
	dashboardAggregator *dashboard.Aggregator,
) IAdminService {
	return &adminService{
		uowFactory:            uowFactory,
		logger:                logger,
		userManager:           userManager,
		cancellationProcessor: cancellationProcessor,
		policyManager:         policyManager,
		dashboardAggregator:   dashboardAggregator,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboardAggregator.GetStats(ctx, uow)
}

func (s *adminService) GetAllUsers(ctx context.Context, page, limit int, role string) ([]*dto.AdminUserListResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, total, err := s.userManager.FindAll(ctx, uow, page, limit, role)
	if err != nil {
		return nil, 0, err
	}

	res := make([]*dto.AdminUserListResponse, 0, len(users))
	for _, u := range users {
		res = append(res, mapAdminUserResponse(u))
	}
	return res, total, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userId uuid.UUID, req dto.AdminUpdateUserStatusRequest) (*dto.AdminUserListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updated, err := s.userManager.UpdateStatus(ctx, uow, userId, req)
	if err != nil {
		return nil, err
	}
	return mapAdminUserResponse(updated), nil
}

func (s *adminService) DeleteUser(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.userManager.Delete(ctx, uow, userId)
}

func (s *adminService) GetCancellations(ctx context.Context, page, limit int, status string) ([]*dto.AdminCancellationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	requests, err := s.cancellationProcessor.GetAll(ctx, uow, page, limit, status)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminCancellationListResponse, 0, len(requests))
	for _, r := range requests {
		item := &dto.AdminCancellationListResponse{
			Id: r.ID,
			User: dto.AdminCancellationUserInfo{
				Id:       r.User.Id,
				Email:    r.User.Email,
				FullName: r.User.FullName,
			},
			Order: dto.AdminCancellationOrderInfo{
				Id:            r.Order.Id,
				Total:         r.Order.Total,
				Status:        string(r.Order.Status),
				PaymentMethod: string(r.Order.PaymentMethod),
				PlacedAt:      r.Order.PlacedAt,
			},
			Reason:           r.Reason,
			AdditionalReason: r.AdditionalReason,
			Status:           string(r.Status),
			CreatedAt:        r.CreatedAt,
		}
		if r.AdminResponse != nil {
			respondedAt := r.AdminResponse.RespondedAt
			item.AdminNotes = r.AdminResponse.Notes
			item.RespondedAt = &respondedAt
			if r.Status != entity.CancellationStatusRejected {
				pct := r.AdminResponse.RefundPercentage
				amount := r.AdminResponse.RefundAmount
				item.RefundPercentage = &pct
				item.RefundAmount = &amount
			}
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *adminService) ApproveCancellation(ctx context.Context, cancellationId uuid.UUID, req dto.AdminApproveCancellationRequest) (*dto.AdminApproveCancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	result, err := s.cancellationProcessor.Approve(ctx, uow, cancellationId, req)
	if err != nil {
		return nil, err
	}
	return &dto.AdminApproveCancellationResponse{
		CancellationId:   result.CancellationId.String(),
		Status:           string(entity.CancellationStatusApproved),
		RefundPercentage: result.RefundPercentage,
		RefundAmount:     result.RefundAmount,
		RespondedAt:      result.RespondedAt,
	}, nil
}

func (s *adminService) RejectCancellation(ctx context.Context, cancellationId uuid.UUID, req dto.AdminRejectCancellationRequest) (*dto.AdminRejectCancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	result, err := s.cancellationProcessor.Reject(ctx, uow, cancellationId, req)
	if err != nil {
		return nil, err
	}
	return &dto.AdminRejectCancellationResponse{
		CancellationId: result.CancellationId.String(),
		Status:         string(entity.CancellationStatusRejected),
		RespondedAt:    result.RespondedAt,
	}, nil
}

func (s *adminService) ProcessCancellation(ctx context.Context, cancellationId uuid.UUID) (*dto.AdminProcessCancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	result, err := s.cancellationProcessor.Process(ctx, uow, cancellationId)
	if err != nil {
		return nil, err
	}
	return &dto.AdminProcessCancellationResponse{
		CancellationId: result.CancellationId.String(),
		Status:         string(entity.CancellationStatusProcessed),
		ProcessedAt:    result.ProcessedAt,
	}, nil
}

func (s *adminService) GetPolicy(ctx context.Context) (*dto.PolicyResponse, error) {
	storePolicy, err := s.policyManager.Get(ctx)
	if err != nil {
		return nil, err
	}
	if storePolicy == nil {
		return nil, nil
	}
	return mapPolicyResponse(storePolicy), nil
}

func (s *adminService) UpdatePolicy(ctx context.Context, adminId uuid.UUID, req *dto.UpdatePolicyRequest) (*dto.PolicyResponse, error) {
	updated, err := s.policyManager.Update(ctx, adminId, req)
	if err != nil {
		return nil, err
	}
	return mapPolicyResponse(updated), nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit < 1 {
		limit = 50
	}
	return s.logger.GetLogs(level, limit, offset)
}

func mapAdminUserResponse(u *entity.User) *dto.AdminUserListResponse {
	return &dto.AdminUserListResponse{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

func mapPolicyResponse(p *entity.CancellationPolicy) *dto.PolicyResponse {
	rules := make([]dto.TimeBasedRuleDTO, 0, len(p.TimeBasedRules))
	for _, r := range p.TimeBasedRules {
		rules = append(rules, dto.TimeBasedRuleDTO{
			TimeFrameHours:   r.TimeFrameHoursUpperBound,
			RefundPercentage: r.RefundPercentage,
			Description:      r.Description,
		})
	}
	return &dto.PolicyResponse{
		DefaultRefundPercentage: p.DefaultRefundPercentage,
		ResponseTimeHours:       p.ResponseTimeHours,
		IsActive:                p.IsActive,
		TimeBasedRules:          rules,
		PaymentMethodRules:      p.PaymentMethodRules,
		OrderStatusRestrictions: p.OrderStatusRestrictions,
		UpdatedAt:               p.UpdatedAt,
	}
}
