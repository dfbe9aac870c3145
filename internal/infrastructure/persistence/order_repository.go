package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/timeline"
	"github.com/playbase/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateAggregate persists a new order with its items, invoice and initial
// timeline entries in one transaction. The order number is allocated from the
// locked counter row inside the transaction, and the invoice number is derived
// from it, so a rollback releases everything together.
func (r *GormOrderRepository) CreateAggregate(ctx context.Context, order *ordering.Order, invoice *ordering.Invoice, entries []*timeline.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := time.Now().Year()
		seq, err := nextSequence(tx, sequenceScopeOrder, year)
		if err != nil {
			return err
		}
		if err := order.AssignNumber(ordering.FormatOrderNumber(year, seq)); err != nil {
			return err
		}
		if err := invoice.AssignNumber(order.OrderNumber); err != nil {
			return err
		}

		if err := tx.Create(models.OrderModelFromDomain(order)).Error; err != nil {
			return err
		}
		if err := tx.Create(models.InvoiceModelFromDomain(invoice)).Error; err != nil {
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
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, order *ordering.Order, entry *timeline.Entry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentVersion := order.Version
		now := time.Now()

		result := tx.Model(&models.OrderModel{}).
			Where("id = ? AND version = ?", order.ID, currentVersion).
			Updates(map[string]interface{}{
				"status":       order.Status,
				"shipped_at":   order.ShippedAt,
				"delivered_at": order.DeliveredAt,
				"cancelled_at": order.CancelledAt,
				"version":      currentVersion + 1,
				"updated_at":   now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The order has been modified by another user")
		}
		order.Version = currentVersion + 1
		order.UpdatedAt = now

		return tx.Create(models.TimelineEntryModelFromDomain(entry)).Error
	})
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUser finds an order by ID scoped to its owner
func (r *GormOrderRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds an order by its human-readable number
func (r *GormOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all orders with filtering
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	return r.findOrders(query)
}

// FindAllForUser finds all orders of a user with filtering
func (r *GormOrderRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("user_id = ?", userID),
		filter,
	)
	return r.findOrders(query)
}

func (r *GormOrderRepository) findOrders(query *gorm.DB) ([]ordering.Order, error) {
	var modelList []models.OrderModel
	if err := query.Preload("Items").Find(&modelList).Error; err != nil {
		return nil, err
	}
	orders := make([]ordering.Order, len(modelList))
	for i := range modelList {
		orders[i] = *modelList[i].ToDomain()
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForUser counts a user's orders matching the filter
func (r *GormOrderRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("user_id = ?", userID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// InvoiceForOrder returns the invoice created with the order
func (r *GormOrderRepository) InvoiceForOrder(ctx context.Context, orderID uuid.UUID) (*ordering.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// CountByStatus counts orders in a status created within the period
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status ordering.Status, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("status = ? AND created_at >= ? AND created_at <= ?", status, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByType counts orders of a type created within the period
func (r *GormOrderRepository) CountByType(ctx context.Context, orderType ordering.OrderType, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("type = ? AND created_at >= ? AND created_at <= ?", orderType, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RevenueBetween sums order totals for the period. Only shipped and delivered
// orders count as revenue.
func (r *GormOrderRepository) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status IN ? AND created_at >= ? AND created_at <= ?",
			[]ordering.Status{ordering.StatusShipped, ordering.StatusDelivered}, from, to).
		Scan(&revenue).Error; err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

// CountBetween counts orders created within the period
func (r *GormOrderRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
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

// Ensure GormOrderRepository implements ordering.Repository
var _ ordering.Repository = (*GormOrderRepository)(nil)
