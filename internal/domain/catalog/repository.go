package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
)

// ProductRepository is the persistence port for catalog products
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConfigRepository is the persistence port for saved configurations
type ConfigRepository interface {
	Create(ctx context.Context, config *SavedConfig) error
	FindByID(ctx context.Context, id uuid.UUID) (*SavedConfig, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*SavedConfig, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, kind ConfigKind) ([]SavedConfig, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
