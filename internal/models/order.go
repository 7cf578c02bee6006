package models

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidOrder is returned when an order cannot be dispatched because it
// lacks a usable identifier.
var ErrInvalidOrder = errors.New("order id is required")

// Order is the payload whose confirmation gets dispatched. Only the
// identifier participates in message construction; the remaining fields carry
// context for logging.
type Order struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Validate reports whether the order carries a non-empty identifier.
func (o Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrInvalidOrder
	}
	return nil
}

// Notification records a successfully dispatched confirmation. The dispatcher
// returns one per call so callers and logs can correlate deliveries.
type Notification struct {
	DispatchID string    `json:"dispatch_id"`
	OrderID    string    `json:"order_id"`
	Channel    string    `json:"channel"`
	Message    string    `json:"message"`
	SentAt     time.Time `json:"sent_at"`
}
