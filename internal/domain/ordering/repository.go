package ordering

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/timeline"
	"github.com/shopspring/decimal"
)

// Repository is the persistence port for the order aggregate.
//
// CreateAggregate and UpdateStatus are transactional: the order row, its
// lines, invoice and timeline entries become visible together or not at all.
// Number allocation happens inside the creation transaction against a locked
// counter row, so order numbers are unique and gapless even under concurrent
// creation.
type Repository interface {
	// CreateAggregate persists a new order with its items, invoice and
	// initial timeline entries in one transaction, allocating the order
	// number (and the derived invoice number) from the counter row.
	CreateAggregate(ctx context.Context, order *Order, invoice *Invoice, entries []*timeline.Entry) error

	// UpdateStatus persists a status transition together with its timeline
	// entry in one transaction, using the aggregate version for optimistic
	// locking.
	UpdateStatus(ctx context.Context, order *Order, entry *timeline.Entry) error

	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error)

	// InvoiceForOrder returns the invoice created with the order
	InvoiceForOrder(ctx context.Context, orderID uuid.UUID) (*Invoice, error)

	// Aggregation queries used by the analytics dashboard
	CountByStatus(ctx context.Context, status Status, from, to time.Time) (int64, error)
	CountByType(ctx context.Context, orderType OrderType, from, to time.Time) (int64, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
}
