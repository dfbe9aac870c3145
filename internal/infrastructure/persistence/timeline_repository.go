package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/timeline"
	"github.com/playbase/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTimelineRepository implements timeline.Repository using GORM. It is
// read-only: entries are written by the order and repair repositories inside
// their own transactions.
type GormTimelineRepository struct {
	db *gorm.DB
}

// NewGormTimelineRepository creates a new GormTimelineRepository
func NewGormTimelineRepository(db *gorm.DB) *GormTimelineRepository {
	return &GormTimelineRepository{db: db}
}

// ListForOwner returns all entries for an owner, newest first
func (r *GormTimelineRepository) ListForOwner(ctx context.Context, ownerType timeline.OwnerType, ownerID uuid.UUID) ([]timeline.Entry, error) {
	return r.list(ctx, ownerType, ownerID, false)
}

// ListVisibleForOwner returns customer-visible entries for an owner, newest first
func (r *GormTimelineRepository) ListVisibleForOwner(ctx context.Context, ownerType timeline.OwnerType, ownerID uuid.UUID) ([]timeline.Entry, error) {
	return r.list(ctx, ownerType, ownerID, true)
}

func (r *GormTimelineRepository) list(ctx context.Context, ownerType timeline.OwnerType, ownerID uuid.UUID, visibleOnly bool) ([]timeline.Entry, error) {
	query := r.db.WithContext(ctx).
		Model(&models.TimelineEntryModel{}).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID)
	if visibleOnly {
		query = query.Where("is_visible = ?", true)
	}

	var modelList []models.TimelineEntryModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, err
	}

	entries := make([]timeline.Entry, len(modelList))
	for i := range modelList {
		entries[i] = *modelList[i].ToDomain()
	}
	return entries, nil
}

// Ensure GormTimelineRepository implements timeline.Repository
var _ timeline.Repository = (*GormTimelineRepository)(nil)
