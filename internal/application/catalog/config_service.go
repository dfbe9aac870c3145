package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/catalog"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
)

// ConfigService handles saved PC build and PS5 controller configurations
type ConfigService struct {
	configRepo catalog.ConfigRepository
}

// NewConfigService creates a new ConfigService
func NewConfigService(configRepo catalog.ConfigRepository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

// Save stores a configurator result for the user
func (s *ConfigService) Save(ctx context.Context, userID uuid.UUID, req SaveConfigRequest) (*ConfigResponse, error) {
	cfg, err := catalog.NewSavedConfig(userID, catalog.ConfigKind(req.Kind), req.Name, req.Components, valueobject.NewMoneyEUR(req.TotalPrice))
	if err != nil {
		return nil, err
	}

	if err := s.configRepo.Create(ctx, cfg); err != nil {
		return nil, err
	}

	resp := ToConfigResponse(cfg)
	return &resp, nil
}

// Get returns one of the user's saved configurations
func (s *ConfigService) Get(ctx context.Context, userID, id uuid.UUID) (*ConfigResponse, error) {
	cfg, err := s.configRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToConfigResponse(cfg)
	return &resp, nil
}

// List returns the user's saved configurations of one kind
func (s *ConfigService) List(ctx context.Context, userID uuid.UUID, kind string) ([]ConfigResponse, error) {
	configs, err := s.configRepo.FindAllForUser(ctx, userID, catalog.ConfigKind(kind))
	if err != nil {
		return nil, err
	}

	items := make([]ConfigResponse, 0, len(configs))
	for i := range configs {
		items = append(items, ToConfigResponse(&configs[i]))
	}
	return items, nil
}

// Delete removes one of the user's saved configurations
func (s *ConfigService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.configRepo.Delete(ctx, userID, id)
}
