package http

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderLineRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

type RegisterOrderRequest struct {
	Lines               []OrderLineRequest `json:"lines" binding:"dive"`
	Notes               string             `json:"notes"`
	IsSpecial           bool               `json:"isSpecial"`
	SpecialDeliveryDate *time.Time         `json:"specialDeliveryDate"`
}

type RegisterOrderResponse struct {
	Success             bool            `json:"success"`
	OrderID             uint64          `json:"orderId"`
	Total               decimal.Decimal `json:"total"`
	PlacedAt            time.Time       `json:"placedAt"`
	IsSpecial           bool            `json:"isSpecial"`
	SpecialDeliveryDate *time.Time      `json:"specialDeliveryDate,omitempty"`
	Message             string          `json:"message"`
}
