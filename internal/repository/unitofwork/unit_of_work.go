package unitofwork

import (
	"context"

	"stylehub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CategoryRepository() contract.CategoryRepository
	ProductRepository() contract.ProductRepository
	BundleRepository() contract.BundleRepository
	CartRepository() contract.CartRepository
	OrderRepository() contract.OrderRepository
	PolicyRepository() contract.PolicyRepository
	CancellationRepository() contract.CancellationRepository
}
