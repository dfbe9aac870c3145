package repair

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// RepairNumberPrefix is the human-readable repair number prefix
const RepairNumberPrefix = "PR"

// MinIssueDescriptionLength is the minimum accepted issue description length
const MinIssueDescriptionLength = 10

// FormatRepairNumber builds a human-readable repair number, e.g. PR-2026-007
func FormatRepairNumber(year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", RepairNumberPrefix, year, seq)
}

// Urgency represents how urgent a repair request is
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
	UrgencyUrgent Urgency = "URGENT"
)

// IsValid checks if the urgency is known
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// String returns the string representation of Urgency
func (u Urgency) String() string {
	return string(u)
}

// Status represents the status of a repair request
type Status string

const (
	StatusPending        Status = "PENDING"
	StatusReceived       Status = "RECEIVED"
	StatusDiagnosing     Status = "DIAGNOSING"
	StatusInProgress     Status = "IN_PROGRESS"
	StatusCompleted      Status = "COMPLETED"
	StatusReadyForPickup Status = "READY_FOR_PICKUP"
	StatusCancelled      Status = "CANCELLED"
)

// IsValid checks if the status is a valid repair Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReceived, StatusDiagnosing, StatusInProgress,
		StatusCompleted, StatusReadyForPickup, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusReceived || target == StatusCancelled
	case StatusReceived:
		return target == StatusDiagnosing || target == StatusCancelled
	case StatusDiagnosing:
		return target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		return target == StatusCompleted || target == StatusCancelled
	case StatusCompleted:
		return target == StatusReadyForPickup
	case StatusReadyForPickup, StatusCancelled:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true for terminal statuses
func (s Status) IsTerminal() bool {
	return s == StatusReadyForPickup || s == StatusCancelled
}

// Repair is the device-repair request aggregate root
type Repair struct {
	shared.OwnedAggregateRoot
	RepairNumber       string
	DeviceType         string
	DeviceModel        string
	IssueDescription   string
	Urgency            Urgency
	Status             Status
	IsEasyMailIn       bool
	EstimatedValue     *decimal.Decimal
	AssignedTechnician *uuid.UUID
	ShippingAddress    valueobject.Address
	Language           shared.Language
	CompletedAt        *time.Time
	CancelledAt        *time.Time
}

// NewRepair creates a new pending repair request. The repair number is
// assigned by the repository when the aggregate is persisted.
func NewRepair(userID uuid.UUID, deviceType, deviceModel, issueDescription string, urgency Urgency, isEasyMailIn bool, address valueobject.Address, language shared.Language) (*Repair, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Repair user ID cannot be empty")
	}
	if strings.TrimSpace(deviceType) == "" {
		return nil, shared.NewDomainError("INVALID_DEVICE_TYPE", "Device type cannot be empty")
	}
	if len(strings.TrimSpace(issueDescription)) < MinIssueDescriptionLength {
		return nil, shared.NewDomainError("INVALID_ISSUE_DESCRIPTION",
			fmt.Sprintf("Issue description must be at least %d characters", MinIssueDescriptionLength))
	}
	if urgency == "" {
		urgency = UrgencyMedium
	}
	if !urgency.IsValid() {
		return nil, shared.NewDomainError("INVALID_URGENCY", fmt.Sprintf("Unknown urgency %q", urgency))
	}
	if !language.IsValid() {
		language = shared.LanguageAlbanian
	}

	r := &Repair{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		DeviceType:         strings.TrimSpace(deviceType),
		DeviceModel:        strings.TrimSpace(deviceModel),
		IssueDescription:   strings.TrimSpace(issueDescription),
		Urgency:            urgency,
		Status:             StatusPending,
		IsEasyMailIn:       isEasyMailIn,
		ShippingAddress:    address,
		Language:           language,
	}

	r.AddDomainEvent(NewRepairCreatedEvent(r))

	return r, nil
}

// AssignNumber assigns the allocated repair number. It may only be set once;
// the repository calls this inside the creation transaction.
func (r *Repair) AssignNumber(number string) error {
	if r.RepairNumber != "" {
		return shared.NewDomainError("INVALID_STATE", "Repair number has already been assigned")
	}
	if number == "" {
		return shared.NewDomainError("INVALID_REPAIR_NUMBER", "Repair number cannot be empty")
	}
	r.RepairNumber = number
	return nil
}

// AssignTechnician assigns a technician to the repair. Not allowed once the
// repair has reached a terminal state.
func (r *Repair) AssignTechnician(technicianID uuid.UUID) error {
	if technicianID == uuid.Nil {
		return shared.NewDomainError("INVALID_TECHNICIAN", "Technician ID cannot be empty")
	}
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot assign a technician to a closed repair")
	}
	r.AssignedTechnician = &technicianID
	r.UpdatedAt = time.Now()
	return nil
}

// SetEstimatedValue records the estimated device value
func (r *Repair) SetEstimatedValue(value valueobject.Money) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Estimated value cannot be negative")
	}
	amount := value.Amount()
	r.EstimatedValue = &amount
	r.UpdatedAt = time.Now()
	return nil
}

// TransitionTo moves the repair to a new status following the lifecycle
// graph. Every transition must be recorded as a timeline entry by the caller
// in the same transaction.
func (r *Repair) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown repair status %q", target))
	}
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot transition repair from %s to %s", r.Status, target))
	}

	from := r.Status
	now := time.Now()
	r.Status = target
	r.UpdatedAt = now

	switch target {
	case StatusCompleted:
		r.CompletedAt = &now
	case StatusCancelled:
		r.CancelledAt = &now
	}

	r.AddDomainEvent(NewRepairStatusChangedEvent(r, from, target))

	return nil
}

// IsTerminal returns true if the repair is closed
func (r *Repair) IsTerminal() bool {
	return r.Status.IsTerminal()
}
