package ordering

import (
	"github.com/playbase/backend/internal/domain/shared"
)

// Event type names for the ordering context
const (
	EventOrderCreated       = "ordering.order.created"
	EventOrderStatusChanged = "ordering.order.status_changed"
)

// OrderCreatedEvent is raised when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	UserID   string
	Type     string
	Language shared.Language
}

// NewOrderCreatedEvent creates an OrderCreatedEvent for the given order
func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCreated, o.ID),
		UserID:          o.UserID.String(),
		Type:            o.Type.String(),
		Language:        o.Language,
	}
}

// OrderStatusChangedEvent is raised on every order status transition
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string
	From        Status
	To          Status
	Language    shared.Language
}

// NewOrderStatusChangedEvent creates an OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, from, to Status) OrderStatusChangedEvent {
	return OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderStatusChanged, o.ID),
		OrderNumber:     o.OrderNumber,
		From:            from,
		To:              to,
		Language:        o.Language,
	}
}
