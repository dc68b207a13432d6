package mocks

import (
	"context"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/infra"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

type MockCustomerRepository struct {
	mock.Mock
}

type MockCatalogClient struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatusIn(ctx context.Context, statuses []domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindProfileByID(ctx context.Context, id uint64) (*domain.CustomerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerProfile), args.Error(1)
}

func (m *MockCatalogClient) FindProductsByIDs(ctx context.Context, ids []uint64) (map[uint64]infra.ProductInfo, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]infra.ProductInfo), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
