package repair

import (
	"github.com/playbase/backend/internal/domain/shared"
)

// Event type names for the repair context
const (
	EventRepairCreated       = "repair.created"
	EventRepairStatusChanged = "repair.status_changed"
)

// RepairCreatedEvent is raised when a new repair request is created
type RepairCreatedEvent struct {
	shared.BaseDomainEvent
	UserID       string
	DeviceType   string
	Urgency      Urgency
	IsEasyMailIn bool
	Language     shared.Language
}

// NewRepairCreatedEvent creates a RepairCreatedEvent for the given repair
func NewRepairCreatedEvent(r *Repair) RepairCreatedEvent {
	return RepairCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRepairCreated, r.ID),
		UserID:          r.UserID.String(),
		DeviceType:      r.DeviceType,
		Urgency:         r.Urgency,
		IsEasyMailIn:    r.IsEasyMailIn,
		Language:        r.Language,
	}
}

// RepairStatusChangedEvent is raised on every repair status transition
type RepairStatusChangedEvent struct {
	shared.BaseDomainEvent
	RepairNumber string
	From         Status
	To           Status
	Language     shared.Language
}

// NewRepairStatusChangedEvent creates a RepairStatusChangedEvent
func NewRepairStatusChangedEvent(r *Repair, from, to Status) RepairStatusChangedEvent {
	return RepairStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRepairStatusChanged, r.ID),
		RepairNumber:    r.RepairNumber,
		From:            from,
		To:              to,
		Language:        r.Language,
	}
}
