package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected OrderStatus
		ok       bool
	}{
		{"Pending", StatusPending, true},
		{"InProcess", StatusInProcess, true},
		{"Completed", StatusCompleted, true},
		{"Cancelled", StatusCancelled, true},
		{"pending", "", false},
		{"Shipped", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, ok := ParseOrderStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to in process", StatusPending, StatusInProcess, true},
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"in process to completed", StatusInProcess, StatusCompleted, true},
		{"in process to cancelled", StatusInProcess, StatusCancelled, true},
		{"in process back to pending", StatusInProcess, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusInProcess, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled stays cancelled", StatusCancelled, StatusCancelled, true},
		{"same status is a no-op", StatusPending, StatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderLine_Subtotal(t *testing.T) {
	line := OrderLine{
		ProductID: 1,
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("5.50"),
	}

	assert.True(t, decimal.RequireFromString("16.50").Equal(line.Subtotal()))
}
