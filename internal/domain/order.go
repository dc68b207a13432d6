package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusInProcess OrderStatus = "InProcess"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// ParseOrderStatus maps a raw string onto the closed status set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusInProcess, StatusCompleted, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// legalTransitions is the explicit transition table. Completed and Cancelled
// are terminal; writing the current status again is always allowed.
var legalTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusInProcess, StatusCompleted, StatusCancelled},
	StatusInProcess: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID                  uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID          uint64          `json:"customerId" gorm:"not null;index"`
	Customer            *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	PlacedAt            time.Time       `json:"placedAt" gorm:"not null;index"`
	Status              OrderStatus     `json:"status" gorm:"type:enum('Pending','InProcess','Completed','Cancelled');default:'Pending'"`
	Total               decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Notes               string          `json:"notes,omitempty"`
	Special             bool            `json:"isSpecial" gorm:"not null;default:false"`
	SpecialDeliveryDate *time.Time      `json:"specialDeliveryDate,omitempty"`
	Lines               []OrderLine     `json:"lines" gorm:"foreignKey:OrderID"`
}

type OrderLine struct {
	ID        uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `json:"orderId" gorm:"not null;index"`
	ProductID uint64          `json:"productId" gorm:"not null;index"`
	Quantity  int64           `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`

	// ProductName is filled from the catalog on read paths, never stored.
	ProductName string `json:"productName,omitempty" gorm:"-"`
}

// Subtotal is quantity times the price snapshot taken at creation.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// MinSpecialNoticeDays is the advance notice a special order must give,
// compared on calendar dates only.
const MinSpecialNoticeDays = 3

// CancellationWindow bounds how long after placement a customer may still
// cancel a Pending or InProcess order.
const CancellationWindow = 24 * time.Hour
