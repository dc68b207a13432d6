package repository

import (
	"context"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
)

type OrderRepository interface {
	// Create persists the order together with its lines in one
	// transaction and assigns the new id.
	Create(ctx context.Context, order *domain.Order) error
	// FindByID returns (nil, nil) when the order does not exist.
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error)
	FindByStatusIn(ctx context.Context, statuses []domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error
}
