package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/catalog"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormConfigRepository implements catalog.ConfigRepository using GORM
type GormConfigRepository struct {
	db *gorm.DB
}

// NewGormConfigRepository creates a new GormConfigRepository
func NewGormConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

// Create persists a new saved configuration
func (r *GormConfigRepository) Create(ctx context.Context, config *catalog.SavedConfig) error {
	return r.db.WithContext(ctx).Create(models.SavedConfigModelFromDomain(config)).Error
}

// FindByID finds a saved configuration by ID
func (r *GormConfigRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SavedConfig, error) {
	var model models.SavedConfigModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUser finds a saved configuration by ID scoped to its owner
func (r *GormConfigRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*catalog.SavedConfig, error) {
	var model models.SavedConfigModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForUser finds a user's saved configurations of a kind, newest first
func (r *GormConfigRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, kind catalog.ConfigKind) ([]catalog.SavedConfig, error) {
	var modelList []models.SavedConfigModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, err
	}
	configs := make([]catalog.SavedConfig, len(modelList))
	for i := range modelList {
		configs[i] = *modelList[i].ToDomain()
	}
	return configs, nil
}

// Delete removes a user's saved configuration
func (r *GormConfigRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SavedConfigModel{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormConfigRepository implements catalog.ConfigRepository
var _ catalog.ConfigRepository = (*GormConfigRepository)(nil)
