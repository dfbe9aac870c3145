package repair

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/identity"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/playbase/backend/internal/domain/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepairRepository is a mock implementation of repair.Repository
type MockRepairRepository struct {
	mock.Mock
}

func (m *MockRepairRepository) CreateAggregate(ctx context.Context, r *repair.Repair, entries []*timeline.Entry) error {
	args := m.Called(ctx, r, entries)
	return args.Error(0)
}

func (m *MockRepairRepository) UpdateStatus(ctx context.Context, r *repair.Repair, entry *timeline.Entry) error {
	args := m.Called(ctx, r, entry)
	return args.Error(0)
}

func (m *MockRepairRepository) Save(ctx context.Context, r *repair.Repair) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepairRepository) FindByID(ctx context.Context, id uuid.UUID) (*repair.Repair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repair.Repair), args.Error(1)
}

func (m *MockRepairRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*repair.Repair, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repair.Repair), args.Error(1)
}

func (m *MockRepairRepository) FindByNumber(ctx context.Context, repairNumber string) (*repair.Repair, error) {
	args := m.Called(ctx, repairNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repair.Repair), args.Error(1)
}

func (m *MockRepairRepository) FindAll(ctx context.Context, filter shared.Filter) ([]repair.Repair, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]repair.Repair), args.Error(1)
}

func (m *MockRepairRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]repair.Repair, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]repair.Repair), args.Error(1)
}

func (m *MockRepairRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepairRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepairRepository) CountByStatus(ctx context.Context, status repair.Status, from, to time.Time) (int64, error) {
	args := m.Called(ctx, status, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepairRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) RepairCreated(ctx context.Context, user *identity.User, r *repair.Repair) error {
	args := m.Called(ctx, user, r)
	return args.Error(0)
}

func (m *MockNotifier) RepairStatusChanged(ctx context.Context, user *identity.User, r *repair.Repair, from, to repair.Status) error {
	args := m.Called(ctx, user, r, from, to)
	return args.Error(0)
}

// MockAdminNotifier is a mock implementation of AdminNotifier
type MockAdminNotifier struct {
	mock.Mock
}

func (m *MockAdminNotifier) RepairRequested(ctx context.Context, user *identity.User, r *repair.Repair) error {
	args := m.Called(ctx, user, r)
	return args.Error(0)
}

type repairServiceMocks struct {
	repairRepo    *MockRepairRepository
	userRepo      *MockUserRepository
	notifier      *MockNotifier
	adminNotifier *MockAdminNotifier
}

func newRepairService(t *testing.T) (*RepairService, *repairServiceMocks) {
	t.Helper()
	m := &repairServiceMocks{
		repairRepo:    new(MockRepairRepository),
		userRepo:      new(MockUserRepository),
		notifier:      new(MockNotifier),
		adminNotifier: new(MockAdminNotifier),
	}
	svc := NewRepairService(m.repairRepo, m.userRepo, m.notifier, m.adminNotifier, zap.NewNop())
	return svc, m
}

func testUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Elira Kraja", "elira@example.com", "hash", identity.RoleClient)
	require.NoError(t, err)
	return user
}

func validAddress() *AddressRequest {
	return &AddressRequest{
		FullName: "Elira Kraja",
		Street:   "Bulevardi Zogu I 5",
		City:     "Shkoder",
		Country:  "AL",
	}
}

func TestRepairServiceCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates repair with initial timeline entry", func(t *testing.T) {
		svc, m := newRepairService(t)

		m.repairRepo.On("CreateAggregate", ctx, mock.AnythingOfType("*repair.Repair"), mock.MatchedBy(func(entries []*timeline.Entry) bool {
			return len(entries) == 1 && entries[0].Status == "PENDING"
		})).Return(nil)
		m.userRepo.On("FindByID", ctx, userID).Return(testUser(t), nil)
		m.notifier.On("RepairCreated", ctx, mock.Anything, mock.Anything).Return(nil)
		m.adminNotifier.On("RepairRequested", ctx, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Create(ctx, userID, CreateRepairRequest{
			DeviceType:       "PS5 Controller",
			DeviceModel:      "DualSense",
			IssueDescription: "Left stick is drifting badly",
			Urgency:          "HIGH",
		})
		require.NoError(t, err)

		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "HIGH", resp.Urgency)
		m.repairRepo.AssertExpectations(t)
		m.adminNotifier.AssertExpectations(t)
	})

	t.Run("mail-in repair gets the extra shipping entry", func(t *testing.T) {
		svc, m := newRepairService(t)

		m.repairRepo.On("CreateAggregate", ctx, mock.AnythingOfType("*repair.Repair"), mock.MatchedBy(func(entries []*timeline.Entry) bool {
			return len(entries) == 2 && entries[1].Icon == "mail"
		})).Return(nil)
		m.userRepo.On("FindByID", ctx, userID).Return(testUser(t), nil)
		m.notifier.On("RepairCreated", ctx, mock.Anything, mock.Anything).Return(nil)
		m.adminNotifier.On("RepairRequested", ctx, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Create(ctx, userID, CreateRepairRequest{
			DeviceType:       "Laptop",
			DeviceModel:      "MacBook Air",
			IssueDescription: "Battery drains within an hour",
			IsEasyMailIn:     true,
			Address:          validAddress(),
		})
		require.NoError(t, err)
		assert.True(t, resp.IsEasyMailIn)
		m.repairRepo.AssertExpectations(t)
	})

	t.Run("mail-in repair requires an address", func(t *testing.T) {
		svc, m := newRepairService(t)

		_, err := svc.Create(ctx, userID, CreateRepairRequest{
			DeviceType:       "Laptop",
			IssueDescription: "Battery drains within an hour",
			IsEasyMailIn:     true,
		})
		require.Error(t, err)
		m.repairRepo.AssertNotCalled(t, "CreateAggregate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("short issue description is rejected", func(t *testing.T) {
		svc, _ := newRepairService(t)

		_, err := svc.Create(ctx, userID, CreateRepairRequest{
			DeviceType:       "Laptop",
			IssueDescription: "broken",
		})
		assert.Error(t, err)
	})

	t.Run("admin alert failure does not fail the request", func(t *testing.T) {
		svc, m := newRepairService(t)

		m.repairRepo.On("CreateAggregate", ctx, mock.Anything, mock.Anything).Return(nil)
		m.userRepo.On("FindByID", ctx, userID).Return(testUser(t), nil)
		m.notifier.On("RepairCreated", ctx, mock.Anything, mock.Anything).Return(nil)
		m.adminNotifier.On("RepairRequested", ctx, mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := svc.Create(ctx, userID, CreateRepairRequest{
			DeviceType:       "Console",
			IssueDescription: "Console overheats after ten minutes",
		})
		assert.NoError(t, err)
	})
}

func TestRepairServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	openRepair := func(t *testing.T) *repair.Repair {
		t.Helper()
		r, err := repair.NewRepair(uuid.New(), "PS5 Controller", "DualSense", "Left stick is drifting badly", repair.UrgencyMedium, false, validAddressValue(t), shared.LanguageEnglish)
		require.NoError(t, err)
		require.NoError(t, r.AssignNumber("PR-2026-004"))
		r.ClearDomainEvents()
		return r
	}

	t.Run("valid transition persists status and timeline together", func(t *testing.T) {
		svc, m := newRepairService(t)
		r := openRepair(t)

		m.repairRepo.On("FindByID", ctx, r.ID).Return(r, nil)
		m.repairRepo.On("UpdateStatus", ctx, r, mock.MatchedBy(func(e *timeline.Entry) bool {
			return e.Status == "RECEIVED" && e.CreatedBy != nil && *e.CreatedBy == adminID
		})).Return(nil)
		m.userRepo.On("FindByID", ctx, r.UserID).Return(testUser(t), nil)
		m.notifier.On("RepairStatusChanged", ctx, mock.Anything, r, repair.StatusPending, repair.StatusReceived).Return(nil)

		resp, err := svc.UpdateStatus(ctx, adminID, r.ID, UpdateRepairStatusRequest{Status: "RECEIVED"})
		require.NoError(t, err)
		assert.Equal(t, "RECEIVED", resp.Status)
		m.repairRepo.AssertExpectations(t)
	})

	t.Run("stage skipping is rejected before any write", func(t *testing.T) {
		svc, m := newRepairService(t)
		r := openRepair(t)
		m.repairRepo.On("FindByID", ctx, r.ID).Return(r, nil)

		_, err := svc.UpdateStatus(ctx, adminID, r.ID, UpdateRepairStatusRequest{Status: "COMPLETED"})
		require.Error(t, err)
		m.repairRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRepairServiceAssignments(t *testing.T) {
	ctx := context.Background()

	t.Run("assign technician saves with lock", func(t *testing.T) {
		svc, m := newRepairService(t)
		r, err := repair.NewRepair(uuid.New(), "Laptop", "XPS 15", "Screen flickers on battery power", repair.UrgencyLow, false, validAddressValue(t), shared.LanguageEnglish)
		require.NoError(t, err)

		techID := uuid.New()
		m.repairRepo.On("FindByID", ctx, r.ID).Return(r, nil)
		m.repairRepo.On("Save", ctx, r).Return(nil)

		resp, err := svc.AssignTechnician(ctx, r.ID, AssignTechnicianRequest{TechnicianID: techID})
		require.NoError(t, err)
		require.NotNil(t, resp.AssignedTechnician)
		assert.Equal(t, techID, *resp.AssignedTechnician)
	})
}

func TestRepairServiceQueries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("client listing is scoped to the user", func(t *testing.T) {
		svc, m := newRepairService(t)
		m.repairRepo.On("FindAllForUser", ctx, userID, mock.AnythingOfType("shared.Filter")).Return([]repair.Repair{}, nil)
		m.repairRepo.On("CountForUser", ctx, userID, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		_, _, err := svc.List(ctx, userID, false, RepairListFilter{})
		require.NoError(t, err)
		m.repairRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("mail-in flag reaches the repository filter", func(t *testing.T) {
		svc, m := newRepairService(t)
		mailIn := true
		hasMailInFlag := mock.MatchedBy(func(f shared.Filter) bool {
			v, ok := f.Filters["is_easy_mail_in"]
			return ok && v == true
		})
		m.repairRepo.On("FindAll", ctx, hasMailInFlag).Return([]repair.Repair{}, nil)
		m.repairRepo.On("Count", ctx, hasMailInFlag).Return(int64(0), nil)

		_, _, err := svc.List(ctx, userID, true, RepairListFilter{IsEasyMailIn: &mailIn})
		require.NoError(t, err)
		m.repairRepo.AssertExpectations(t)
	})

	t.Run("client cannot read someone else's repair by number", func(t *testing.T) {
		svc, m := newRepairService(t)
		r, err := repair.NewRepair(uuid.New(), "Console", "PS5", "Console overheats after ten minutes", repair.UrgencyMedium, false, validAddressValue(t), shared.LanguageEnglish)
		require.NoError(t, err)
		require.NoError(t, r.AssignNumber("PR-2026-008"))

		m.repairRepo.On("FindByNumber", ctx, "PR-2026-008").Return(r, nil)

		_, err = svc.GetByNumber(ctx, userID, false, "PR-2026-008")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func validAddressValue(t *testing.T) valueobject.Address {
	t.Helper()
	a := validAddress()
	addr, err := valueobject.NewAddress(a.FullName, a.Street, a.City, a.PostalCode, a.Country, a.Phone)
	require.NoError(t, err)
	return addr
}
