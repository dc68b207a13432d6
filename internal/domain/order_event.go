package domain

import "time"

// OrderNotification is the envelope broadcast after an order is created.
// Delivery is best effort; nothing in the order flow waits on it.
type OrderNotification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	OrderID     uint64    `json:"orderId"`
	PublishedAt time.Time `json:"publishedAt"`
}
