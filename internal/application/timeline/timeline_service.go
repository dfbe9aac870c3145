package timeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/timeline"
)

// EntryResponse represents a timeline entry in API responses, localized to
// the requested language.
type EntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Icon        string    `json:"icon,omitempty"`
	IsVisible   bool      `json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
}

// TimelineService serves order and repair timelines with ownership checks.
// Customers only see visible entries on their own aggregates; admins see
// every entry.
type TimelineService struct {
	timelineRepo timeline.Repository
	orderRepo    ordering.Repository
	repairRepo   repair.Repository
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(timelineRepo timeline.Repository, orderRepo ordering.Repository, repairRepo repair.Repository) *TimelineService {
	return &TimelineService{
		timelineRepo: timelineRepo,
		orderRepo:    orderRepo,
		repairRepo:   repairRepo,
	}
}

// ForOrder returns the timeline of an order, oldest entry last
func (s *TimelineService) ForOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID, lang string) ([]EntryResponse, error) {
	if isAdmin {
		if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID); err != nil {
			return nil, err
		}
	}
	return s.list(ctx, timeline.OwnerOrder, orderID, isAdmin, lang)
}

// ForRepair returns the timeline of a repair, oldest entry last
func (s *TimelineService) ForRepair(ctx context.Context, userID uuid.UUID, isAdmin bool, repairID uuid.UUID, lang string) ([]EntryResponse, error) {
	if isAdmin {
		if _, err := s.repairRepo.FindByID(ctx, repairID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.repairRepo.FindByIDForUser(ctx, userID, repairID); err != nil {
			return nil, err
		}
	}
	return s.list(ctx, timeline.OwnerRepair, repairID, isAdmin, lang)
}

func (s *TimelineService) list(ctx context.Context, ownerType timeline.OwnerType, ownerID uuid.UUID, isAdmin bool, lang string) ([]EntryResponse, error) {
	var (
		entries []timeline.Entry
		err     error
	)
	if isAdmin {
		entries, err = s.timelineRepo.ListForOwner(ctx, ownerType, ownerID)
	} else {
		entries, err = s.timelineRepo.ListVisibleForOwner(ctx, ownerType, ownerID)
	}
	if err != nil {
		return nil, err
	}

	language := shared.NormalizeLanguage(lang)
	items := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		items = append(items, EntryResponse{
			ID:          e.ID,
			Title:       e.TitleFor(language),
			Description: e.DescriptionFor(language),
			Status:      e.Status,
			Icon:        e.Icon,
			IsVisible:   e.IsVisible,
			CreatedAt:   e.CreatedAt,
		})
	}
	return items, nil
}
