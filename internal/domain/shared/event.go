package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is raised by aggregates when something business-relevant happens.
// Events are collected on the aggregate and dispatched by the application layer
// after the owning transaction has committed.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

// BaseDomainEvent provides common fields for domain events
type BaseDomainEvent struct {
	ID          uuid.UUID
	Type        string
	AggregateId uuid.UUID
	Timestamp   time.Time
}

// NewBaseDomainEvent creates a new base domain event
func NewBaseDomainEvent(eventType string, aggregateID uuid.UUID) BaseDomainEvent {
	return BaseDomainEvent{
		ID:          uuid.New(),
		Type:        eventType,
		AggregateId: aggregateID,
		Timestamp:   time.Now(),
	}
}

// EventID returns the unique event ID
func (e BaseDomainEvent) EventID() uuid.UUID {
	return e.ID
}

// EventType returns the event type name
func (e BaseDomainEvent) EventType() string {
	return e.Type
}

// AggregateID returns the ID of the aggregate that raised the event
func (e BaseDomainEvent) AggregateID() uuid.UUID {
	return e.AggregateId
}

// OccurredAt returns when the event occurred
func (e BaseDomainEvent) OccurredAt() time.Time {
	return e.Timestamp
}
