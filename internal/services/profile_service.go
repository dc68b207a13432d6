package services

import (
	"context"
	"errors"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/repository"
	"github.com/shopspring/decimal"
)

var ErrCustomerNotFound = errors.New("customer not found")

// ProfileView is the read-optimized profile the API serves: identity,
// flattened address and the order statistics block.
type ProfileView struct {
	domain.CustomerProfile
	Statistics domain.CustomerStatistics `json:"statistics"`
}

type ProfileService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

func NewProfileService(orders repository.OrderRepository, customers repository.CustomerRepository) *ProfileService {
	return &ProfileService{
		orders:    orders,
		customers: customers,
	}
}

// GetStatistics aggregates the customer's whole order history. All values
// are zero and FirstOrderAt is nil when the customer has no orders.
func (s *ProfileService) GetStatistics(ctx context.Context, customerID uint64) (*domain.CustomerStatistics, error) {
	orders, err := s.orders.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	stats := domain.CustomerStatistics{
		TotalOrders:     len(orders),
		TotalSpent:      decimal.Zero,
		AveragePerOrder: decimal.Zero,
	}

	for _, o := range orders {
		if o.Status == domain.StatusPending || o.Status == domain.StatusInProcess {
			stats.ActiveOrders++
		}
		if o.Special {
			stats.SpecialOrders++
		}
		stats.TotalSpent = stats.TotalSpent.Add(o.Total)
		if stats.FirstOrderAt == nil || o.PlacedAt.Before(*stats.FirstOrderAt) {
			placedAt := o.PlacedAt
			stats.FirstOrderAt = &placedAt
		}
	}

	if stats.TotalOrders > 0 {
		stats.AveragePerOrder = stats.TotalSpent.DivRound(decimal.NewFromInt(int64(stats.TotalOrders)), 2)
	}

	return &stats, nil
}

// GetProfile assembles the flat profile view plus statistics.
func (s *ProfileService) GetProfile(ctx context.Context, customerID uint64) (*ProfileView, error) {
	profile, err := s.customers.FindProfileByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrCustomerNotFound
	}

	stats, err := s.GetStatistics(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		CustomerProfile: *profile,
		Statistics:      *stats,
	}, nil
}
