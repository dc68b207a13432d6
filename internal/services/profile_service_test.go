package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileServiceWithMocks() (*ProfileService, *mocks.MockOrderRepository, *mocks.MockCustomerRepository) {
	mockOrders := new(mocks.MockOrderRepository)
	mockCustomers := new(mocks.MockCustomerRepository)
	return NewProfileService(mockOrders, mockCustomers), mockOrders, mockCustomers
}

func TestProfileService_GetStatistics(t *testing.T) {
	first := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	second := time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC)
	third := time.Date(2025, 6, 21, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setupMocks func(*mocks.MockOrderRepository)
		expected   domain.CustomerStatistics
	}{
		{
			name: "mixed history",
			setupMocks: func(mockOrders *mocks.MockOrderRepository) {
				orders := []domain.Order{
					CreateMockOrder(3, TestCustomerID, decimal.RequireFromString("35.00"), domain.StatusPending, third),
					CreateMockOrder(2, TestCustomerID, decimal.RequireFromString("20.00"), domain.StatusCancelled, second),
					CreateMockOrder(1, TestCustomerID, decimal.RequireFromString("17.50"), domain.StatusInProcess, first),
				}
				orders[1].Special = true
				mockOrders.On("FindByCustomer", mock.Anything, TestCustomerID).Return(orders, nil)
			},
			expected: domain.CustomerStatistics{
				TotalOrders:     3,
				ActiveOrders:    2,
				SpecialOrders:   1,
				TotalSpent:      decimal.RequireFromString("72.50"),
				AveragePerOrder: decimal.RequireFromString("24.17"),
				FirstOrderAt:    &first,
			},
		},
		{
			name: "empty history",
			setupMocks: func(mockOrders *mocks.MockOrderRepository) {
				mockOrders.On("FindByCustomer", mock.Anything, TestCustomerID).Return([]domain.Order{}, nil)
			},
			expected: domain.CustomerStatistics{
				TotalOrders:     0,
				ActiveOrders:    0,
				SpecialOrders:   0,
				TotalSpent:      decimal.Zero,
				AveragePerOrder: decimal.Zero,
				FirstOrderAt:    nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockOrders, _ := newProfileServiceWithMocks()
			tt.setupMocks(mockOrders)

			stats, err := service.GetStatistics(context.Background(), TestCustomerID)

			assert.NoError(t, err)
			assert.NotNil(t, stats)
			assert.Equal(t, tt.expected.TotalOrders, stats.TotalOrders)
			assert.Equal(t, tt.expected.ActiveOrders, stats.ActiveOrders)
			assert.Equal(t, tt.expected.SpecialOrders, stats.SpecialOrders)
			assert.True(t, tt.expected.TotalSpent.Equal(stats.TotalSpent),
				"expected total spent %s, got %s", tt.expected.TotalSpent, stats.TotalSpent)
			assert.True(t, tt.expected.AveragePerOrder.Equal(stats.AveragePerOrder),
				"expected average %s, got %s", tt.expected.AveragePerOrder, stats.AveragePerOrder)
			if tt.expected.FirstOrderAt == nil {
				assert.Nil(t, stats.FirstOrderAt)
			} else {
				assert.NotNil(t, stats.FirstOrderAt)
				assert.True(t, tt.expected.FirstOrderAt.Equal(*stats.FirstOrderAt))
			}

			mockOrders.AssertExpectations(t)
		})
	}
}

func TestProfileService_GetStatistics_RepositoryError(t *testing.T) {
	service, mockOrders, _ := newProfileServiceWithMocks()
	mockOrders.On("FindByCustomer", mock.Anything, TestCustomerID).Return(nil, errors.New("database error"))

	stats, err := service.GetStatistics(context.Background(), TestCustomerID)

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestProfileService_GetProfile(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockCustomerRepository)
		expectedError error
	}{
		{
			name: "profile with address and statistics",
			setupMocks: func(mockOrders *mocks.MockOrderRepository, mockCustomers *mocks.MockCustomerRepository) {
				mockCustomers.On("FindProfileByID", mock.Anything, TestCustomerID).Return(&domain.CustomerProfile{
					CustomerID:  TestCustomerID,
					FirstName:   "Ana",
					LastName:    "Garcia",
					Email:       "ana@example.com",
					Street:      "Av. Reforma",
					CityName:    "Guadalajara",
					StateName:   "Jalisco",
					CountryName: "Mexico",
				}, nil)
				mockOrders.On("FindByCustomer", mock.Anything, TestCustomerID).Return([]domain.Order{
					CreateMockOrder(1, TestCustomerID, decimal.RequireFromString("35.00"), domain.StatusPending, time.Now()),
				}, nil)
			},
		},
		{
			name: "unknown customer",
			setupMocks: func(mockOrders *mocks.MockOrderRepository, mockCustomers *mocks.MockCustomerRepository) {
				mockCustomers.On("FindProfileByID", mock.Anything, TestCustomerID).Return(nil, nil)
			},
			expectedError: ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockOrders, mockCustomers := newProfileServiceWithMocks()
			tt.setupMocks(mockOrders, mockCustomers)

			profile, err := service.GetProfile(context.Background(), TestCustomerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, profile)
				mockOrders.AssertNotCalled(t, "FindByCustomer", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, profile)
				assert.Equal(t, TestCustomerID, profile.CustomerID)
				assert.Equal(t, "Guadalajara", profile.CityName)
				assert.Equal(t, 1, profile.Statistics.TotalOrders)
			}

			mockCustomers.AssertExpectations(t)
			mockOrders.AssertExpectations(t)
		})
	}
}
