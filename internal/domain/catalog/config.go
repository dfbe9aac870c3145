package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ConfigKind distinguishes the two configurator wizards
type ConfigKind string

const (
	ConfigKindPC  ConfigKind = "PC"
	ConfigKindPS5 ConfigKind = "PS5"
)

// SavedConfig is a customer-saved configurator result: a custom PC build or
// a customized PS5 controller. Components holds the wizard selection as JSON;
// the total price is computed from the selected component prices at save time.
type SavedConfig struct {
	shared.OwnedAggregateRoot
	Kind       ConfigKind
	Name       string
	Components string
	TotalPrice decimal.Decimal
}

// NewSavedConfig creates a saved configuration for a user
func NewSavedConfig(userID uuid.UUID, kind ConfigKind, name, components string, totalPrice valueobject.Money) (*SavedConfig, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Configuration user ID cannot be empty")
	}
	if kind != ConfigKindPC && kind != ConfigKindPS5 {
		return nil, shared.NewDomainError("INVALID_KIND", "Configuration kind must be PC or PS5")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Configuration name cannot be empty")
	}
	if components == "" {
		return nil, shared.NewDomainError("INVALID_COMPONENTS", "Configuration components cannot be empty")
	}
	if totalPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Configuration price cannot be negative")
	}

	return &SavedConfig{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Kind:               kind,
		Name:               name,
		Components:         components,
		TotalPrice:         totalPrice.Amount(),
	}, nil
}

// Rename changes the saved configuration name
func (c *SavedConfig) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Configuration name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// GetTotalPriceMoney returns the total price as Money
func (c *SavedConfig) GetTotalPriceMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(c.TotalPrice)
}
