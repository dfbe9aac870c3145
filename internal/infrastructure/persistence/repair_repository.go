package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/timeline"
	"github.com/playbase/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRepairRepository implements repair.Repository using GORM
type GormRepairRepository struct {
	db *gorm.DB
}

// NewGormRepairRepository creates a new GormRepairRepository
func NewGormRepairRepository(db *gorm.DB) *GormRepairRepository {
	return &GormRepairRepository{db: db}
}

// CreateAggregate persists a new repair with its initial timeline entries in
// one transaction, allocating the repair number from the locked counter row.
func (r *GormRepairRepository) CreateAggregate(ctx context.Context, rep *repair.Repair, entries []*timeline.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := time.Now().Year()
		seq, err := nextSequence(tx, sequenceScopeRepair, year)
		if err != nil {
			return err
		}
		if err := rep.AssignNumber(repair.FormatRepairNumber(year, seq)); err != nil {
			return err
		}

		if err := tx.Create(models.RepairModelFromDomain(rep)).Error; err != nil {
			return err
		}
		for _, entry := range entries {
			if err := tx.Create(models.TimelineEntryModelFromDomain(entry)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateStatus persists a status transition together with its timeline entry
// in one transaction, using the aggregate version for optimistic locking.
func (r *GormRepairRepository) UpdateStatus(ctx context.Context, rep *repair.Repair, entry *timeline.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentVersion := rep.Version
		now := time.Now()

		result := tx.Model(&models.RepairModel{}).
			Where("id = ? AND version = ?", rep.ID, currentVersion).
			Updates(map[string]interface{}{
				"status":       rep.Status,
				"completed_at": rep.CompletedAt,
				"cancelled_at": rep.CancelledAt,
				"version":      currentVersion + 1,
				"updated_at":   now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The repair has been modified by another user")
		}
		rep.Version = currentVersion + 1
		rep.UpdatedAt = now

		return tx.Create(models.TimelineEntryModelFromDomain(entry)).Error
	})
}

// Save persists non-lifecycle mutations with optimistic locking
func (r *GormRepairRepository) Save(ctx context.Context, rep *repair.Repair) error {
	currentVersion := rep.Version
	now := time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.RepairModel{}).
		Where("id = ? AND version = ?", rep.ID, currentVersion).
		Updates(map[string]interface{}{
			"urgency":             rep.Urgency,
			"estimated_value":     rep.EstimatedValue,
			"assigned_technician": rep.AssignedTechnician,
			"version":             currentVersion + 1,
			"updated_at":          now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENT_MODIFICATION", "The repair has been modified by another user")
	}
	rep.Version = currentVersion + 1
	rep.UpdatedAt = now
	return nil
}

// FindByID finds a repair by its ID
func (r *GormRepairRepository) FindByID(ctx context.Context, id uuid.UUID) (*repair.Repair, error) {
	var model models.RepairModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUser finds a repair by ID scoped to its owner
func (r *GormRepairRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*repair.Repair, error) {
	var model models.RepairModel
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

// FindByNumber finds a repair by its human-readable number
func (r *GormRepairRepository) FindByNumber(ctx context.Context, repairNumber string) (*repair.Repair, error) {
	var model models.RepairModel
	if err := r.db.WithContext(ctx).
		Where("repair_number = ?", repairNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all repairs with filtering
func (r *GormRepairRepository) FindAll(ctx context.Context, filter shared.Filter) ([]repair.Repair, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RepairModel{}), filter)
	return r.findRepairs(query)
}

// FindAllForUser finds all repairs of a user with filtering
func (r *GormRepairRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]repair.Repair, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.RepairModel{}).Where("user_id = ?", userID),
		filter,
	)
	return r.findRepairs(query)
}

func (r *GormRepairRepository) findRepairs(query *gorm.DB) ([]repair.Repair, error) {
	var modelList []models.RepairModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}
	repairs := make([]repair.Repair, len(modelList))
	for i := range modelList {
		repairs[i] = *modelList[i].ToDomain()
	}
	return repairs, nil
}

// Count counts repairs matching the filter
func (r *GormRepairRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.RepairModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForUser counts a user's repairs matching the filter
func (r *GormRepairRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.RepairModel{}).Where("user_id = ?", userID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts repairs in a status created within the period
func (r *GormRepairRepository) CountByStatus(ctx context.Context, status repair.Status, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RepairModel{}).
		Where("status = ? AND created_at >= ? AND created_at <= ?", status, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBetween counts repairs created within the period
func (r *GormRepairRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RepairModel{}).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormRepairRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, RepairSortFields, "created_at")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormRepairRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("repair_number ILIKE ? OR device_type ILIKE ? OR device_model ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "urgency":
			query = query.Where("urgency = ?", value)
		case "is_easy_mail_in":
			query = query.Where("is_easy_mail_in = ?", value)
		case "assigned_technician":
			query = query.Where("assigned_technician = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormRepairRepository implements repair.Repository
var _ repair.Repository = (*GormRepairRepository)(nil)
