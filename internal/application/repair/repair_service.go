package repair

import (
	"context"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/identity"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/playbase/backend/internal/domain/timeline"
	"go.uber.org/zap"
)

// Notifier delivers customer-facing repair notifications. Failures are logged
// and never fail the operation that triggered them.
type Notifier interface {
	RepairCreated(ctx context.Context, user *identity.User, r *repair.Repair) error
	RepairStatusChanged(ctx context.Context, user *identity.User, r *repair.Repair, from, to repair.Status) error
}

// AdminNotifier alerts staff about new repair requests so urgent devices get
// picked up quickly.
type AdminNotifier interface {
	RepairRequested(ctx context.Context, user *identity.User, r *repair.Repair) error
}

// RepairService handles repair business operations
type RepairService struct {
	repairRepo    repair.Repository
	userRepo      identity.Repository
	notifier      Notifier
	adminNotifier AdminNotifier
	logger        *zap.Logger
}

// NewRepairService creates a new RepairService
func NewRepairService(
	repairRepo repair.Repository,
	userRepo identity.Repository,
	notifier Notifier,
	adminNotifier AdminNotifier,
	logger *zap.Logger,
) *RepairService {
	return &RepairService{
		repairRepo:    repairRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		adminNotifier: adminNotifier,
		logger:        logger,
	}
}

// Create opens a new repair request. The repair and its initial timeline
// entries are persisted in one transaction; mail-in repairs get an extra
// entry announcing the shipping box. Notifications go out after the commit.
func (s *RepairService) Create(ctx context.Context, userID uuid.UUID, req CreateRepairRequest) (*RepairResponse, error) {
	var address valueobject.Address
	if req.Address != nil {
		addr, err := valueobject.NewAddress(req.Address.FullName, req.Address.Street, req.Address.City, req.Address.PostalCode, req.Address.Country, req.Address.Phone)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
		}
		address = addr
	}
	if req.IsEasyMailIn && address.IsZero() {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Mail-in repairs require a shipping address for the box")
	}

	r, err := repair.NewRepair(userID, req.DeviceType, req.DeviceModel, req.IssueDescription,
		repair.Urgency(req.Urgency), req.IsEasyMailIn, address, shared.NormalizeLanguage(req.Language))
	if err != nil {
		return nil, err
	}

	entry, err := repair.TimelineEntryFor(r, repair.StatusPending)
	if err != nil {
		return nil, err
	}
	entries := []*timeline.Entry{entry}

	if r.IsEasyMailIn {
		mailEntry, err := repair.EasyMailInTimelineEntry(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, mailEntry)
	}

	if err := s.repairRepo.CreateAggregate(ctx, r, entries); err != nil {
		return nil, err
	}
	r.ClearDomainEvents()

	s.notifyCreated(ctx, r)

	resp := ToRepairResponse(r)
	return &resp, nil
}

// Get returns a single repair. Clients only see their own repairs.
func (s *RepairService) Get(ctx context.Context, userID uuid.UUID, isAdmin bool, repairID uuid.UUID) (*RepairResponse, error) {
	r, err := s.findRepair(ctx, userID, isAdmin, repairID)
	if err != nil {
		return nil, err
	}
	resp := ToRepairResponse(r)
	return &resp, nil
}

// GetByNumber returns a single repair looked up by its repair number
func (s *RepairService) GetByNumber(ctx context.Context, userID uuid.UUID, isAdmin bool, repairNumber string) (*RepairResponse, error) {
	r, err := s.repairRepo.FindByNumber(ctx, repairNumber)
	if err != nil {
		return nil, err
	}
	if !isAdmin && r.UserID != userID {
		return nil, shared.ErrNotFound
	}
	resp := ToRepairResponse(r)
	return &resp, nil
}

// List returns a page of repairs with the total count. Clients only see
// their own repairs.
func (s *RepairService) List(ctx context.Context, userID uuid.UUID, isAdmin bool, filter RepairListFilter) ([]RepairListResponse, int64, error) {
	f := toSharedFilter(filter)

	var (
		repairs []repair.Repair
		total   int64
		err     error
	)
	if isAdmin {
		repairs, err = s.repairRepo.FindAll(ctx, f)
		if err == nil {
			total, err = s.repairRepo.Count(ctx, f)
		}
	} else {
		repairs, err = s.repairRepo.FindAllForUser(ctx, userID, f)
		if err == nil {
			total, err = s.repairRepo.CountForUser(ctx, userID, f)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	items := make([]RepairListResponse, 0, len(repairs))
	for i := range repairs {
		items = append(items, ToRepairListResponse(&repairs[i]))
	}
	return items, total, nil
}

// UpdateStatus transitions a repair to a new status (admin only). The status
// change and its timeline entry are persisted in one transaction.
func (s *RepairService) UpdateStatus(ctx context.Context, adminID, repairID uuid.UUID, req UpdateRepairStatusRequest) (*RepairResponse, error) {
	r, err := s.repairRepo.FindByID(ctx, repairID)
	if err != nil {
		return nil, err
	}

	from := r.Status
	target := repair.Status(req.Status)
	if err := r.TransitionTo(target); err != nil {
		return nil, err
	}

	entry, err := repair.TimelineEntryFor(r, target)
	if err != nil {
		return nil, err
	}
	entry.SetCreatedBy(adminID)

	if err := s.repairRepo.UpdateStatus(ctx, r, entry); err != nil {
		return nil, err
	}
	r.ClearDomainEvents()

	s.notifyStatusChanged(ctx, r, from, target)

	resp := ToRepairResponse(r)
	return &resp, nil
}

// AssignTechnician assigns a technician to the repair (admin only)
func (s *RepairService) AssignTechnician(ctx context.Context, repairID uuid.UUID, req AssignTechnicianRequest) (*RepairResponse, error) {
	r, err := s.repairRepo.FindByID(ctx, repairID)
	if err != nil {
		return nil, err
	}
	if err := r.AssignTechnician(req.TechnicianID); err != nil {
		return nil, err
	}
	if err := s.repairRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	resp := ToRepairResponse(r)
	return &resp, nil
}

// SetEstimatedValue records the estimated device value (admin only)
func (s *RepairService) SetEstimatedValue(ctx context.Context, repairID uuid.UUID, req SetEstimatedValueRequest) (*RepairResponse, error) {
	r, err := s.repairRepo.FindByID(ctx, repairID)
	if err != nil {
		return nil, err
	}
	if err := r.SetEstimatedValue(valueobject.NewMoneyEUR(req.Value)); err != nil {
		return nil, err
	}
	if err := s.repairRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	resp := ToRepairResponse(r)
	return &resp, nil
}

func (s *RepairService) findRepair(ctx context.Context, userID uuid.UUID, isAdmin bool, repairID uuid.UUID) (*repair.Repair, error) {
	if isAdmin {
		return s.repairRepo.FindByID(ctx, repairID)
	}
	return s.repairRepo.FindByIDForUser(ctx, userID, repairID)
}

func (s *RepairService) notifyCreated(ctx context.Context, r *repair.Repair) {
	user, err := s.userRepo.FindByID(ctx, r.UserID)
	if err != nil {
		s.logger.Warn("repair notification skipped, user lookup failed",
			zap.String("repair_number", r.RepairNumber), zap.Error(err))
		return
	}
	if s.notifier != nil {
		if err := s.notifier.RepairCreated(ctx, user, r); err != nil {
			s.logger.Warn("repair confirmation notification failed",
				zap.String("repair_number", r.RepairNumber), zap.Error(err))
		}
	}
	if s.adminNotifier != nil {
		if err := s.adminNotifier.RepairRequested(ctx, user, r); err != nil {
			s.logger.Warn("repair admin alert failed",
				zap.String("repair_number", r.RepairNumber), zap.Error(err))
		}
	}
}

func (s *RepairService) notifyStatusChanged(ctx context.Context, r *repair.Repair, from, to repair.Status) {
	if s.notifier == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, r.UserID)
	if err != nil {
		s.logger.Warn("status notification skipped, user lookup failed",
			zap.String("repair_number", r.RepairNumber), zap.Error(err))
		return
	}
	if err := s.notifier.RepairStatusChanged(ctx, user, r, from, to); err != nil {
		s.logger.Warn("status change notification failed",
			zap.String("repair_number", r.RepairNumber), zap.Error(err))
	}
}

func toSharedFilter(filter RepairListFilter) shared.Filter {
	f := shared.NewFilter()
	f.Page = filter.Page
	f.PageSize = filter.PageSize
	f.OrderBy = filter.OrderBy
	f.OrderDir = filter.OrderDir
	f.Search = filter.Search
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.Urgency != "" {
		f.Filters["urgency"] = filter.Urgency
	}
	if filter.IsEasyMailIn != nil {
		f.Filters["is_easy_mail_in"] = *filter.IsEasyMailIn
	}
	f.Normalize()
	return f
}
