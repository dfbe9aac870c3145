package timeline

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides read access to timeline entries. Writes happen through
// the owning aggregate's repository so that status changes and their audit
// entries commit in one transaction.
type Repository interface {
	// ListForOwner returns all entries for an owner, newest first
	ListForOwner(ctx context.Context, ownerType OwnerType, ownerID uuid.UUID) ([]Entry, error)
	// ListVisibleForOwner returns customer-visible entries for an owner, newest first
	ListVisibleForOwner(ctx context.Context, ownerType OwnerType, ownerID uuid.UUID) ([]Entry, error)
}
