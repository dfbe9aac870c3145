package repair

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/timeline"
)

// Repository is the persistence port for the repair aggregate.
//
// CreateAggregate and UpdateStatus are transactional: the repair row and its
// timeline entries become visible together or not at all. Number allocation
// happens inside the creation transaction against a locked counter row.
type Repository interface {
	// CreateAggregate persists a new repair with its initial timeline
	// entries in one transaction, allocating the repair number from the
	// counter row.
	CreateAggregate(ctx context.Context, r *Repair, entries []*timeline.Entry) error

	// UpdateStatus persists a status transition together with its timeline
	// entry in one transaction, using the aggregate version for optimistic
	// locking.
	UpdateStatus(ctx context.Context, r *Repair, entry *timeline.Entry) error

	// Save persists non-lifecycle mutations (technician assignment,
	// estimated value) with optimistic locking.
	Save(ctx context.Context, r *Repair) error

	FindByID(ctx context.Context, id uuid.UUID) (*Repair, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Repair, error)
	FindByNumber(ctx context.Context, repairNumber string) (*Repair, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Repair, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Repair, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error)

	// Aggregation queries used by the analytics dashboard
	CountByStatus(ctx context.Context, status Status, from, to time.Time) (int64, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
}
