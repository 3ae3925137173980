package user

import (
	"context"
	"fmt"

	"stylehub-be/internal/dto"
	"stylehub-be/internal/entity"
	"stylehub-be/internal/pkg/logger"
	"stylehub-be/internal/repository/specification"
	"stylehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles user-related admin operations
type Manager struct {
	logger logger.ILogger
}

// NewManager creates a new user manager
func NewManager(logger logger.ILogger) *Manager {
	return &Manager{
		logger: logger,
	}
}

// FindAll retrieves users with pagination and optional role filter
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, page, limit int, role string) ([]*entity.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var filterSpecs []specification.Specification
	if role != "" {
		filterSpecs = append(filterSpecs, specification.Filter("role", role))
	}

	total, err := uow.UserRepository().Count(ctx, filterSpecs...)
	if err != nil {
		return nil, 0, err
	}

	listSpecs := append(filterSpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	users, err := uow.UserRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateStatus suspends or reactivates a customer account
func (m *Manager) UpdateStatus(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req dto.AdminUpdateUserStatusRequest) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return nil, fmt.Errorf("cannot change status of an admin account")
	}

	user.Status = entity.UserStatus(req.Status)
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	m.logger.Info("ADMIN", "Updated user status", map[string]interface{}{
		"userId": userId.String(),
		"status": req.Status,
	})

	return user, nil
}

// Delete removes a user account
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return fmt.Errorf("cannot delete an admin account")
	}

	m.logger.Info("ADMIN", "Deleted user", map[string]interface{}{
		"userId": userId.String(),
	})

	return uow.UserRepository().Delete(ctx, userId)
}
