package services

import (
	"time"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/infra"
	"github.com/shopspring/decimal"
)

func CreateMockOrder(id, customerID uint64, total decimal.Decimal, status domain.OrderStatus, placedAt time.Time) domain.Order {
	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		Total:      total,
		Status:     status,
		PlacedAt:   placedAt,
	}
}

func CreateMockProduct(id uint64, name string, price string) infra.ProductInfo {
	return infra.ProductInfo{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

const (
	TestCustomerID = uint64(7)
	TestOrderID    = uint64(1)
)
