package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/catalog"
	"github.com/playbase/backend/internal/domain/identity"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/playbase/backend/internal/domain/timeline"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of ordering.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateAggregate(ctx context.Context, order *ordering.Order, invoice *ordering.Invoice, entries []*timeline.Entry) error {
	args := m.Called(ctx, order, invoice, entries)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, order *ordering.Order, entry *timeline.Entry) error {
	args := m.Called(ctx, order, entry)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*ordering.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) InvoiceForOrder(ctx context.Context, orderID uuid.UUID) (*ordering.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Invoice), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status ordering.Status, from, to time.Time) (int64, error) {
	args := m.Called(ctx, status, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByType(ctx context.Context, orderType ordering.OrderType, from, to time.Time) (int64, error) {
	args := m.Called(ctx, orderType, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockOrderRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConfigRepository is a mock implementation of catalog.ConfigRepository
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Create(ctx context.Context, config *catalog.SavedConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockConfigRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SavedConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SavedConfig), args.Error(1)
}

func (m *MockConfigRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*catalog.SavedConfig, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SavedConfig), args.Error(1)
}

func (m *MockConfigRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, kind catalog.ConfigKind) ([]catalog.SavedConfig, error) {
	args := m.Called(ctx, userID, kind)
	return args.Get(0).([]catalog.SavedConfig), args.Error(1)
}

func (m *MockConfigRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
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

func (m *MockNotifier) OrderCreated(ctx context.Context, user *identity.User, order *ordering.Order, invoice *ordering.Invoice) error {
	args := m.Called(ctx, user, order, invoice)
	return args.Error(0)
}

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, user *identity.User, order *ordering.Order, from, to ordering.Status) error {
	args := m.Called(ctx, user, order, from, to)
	return args.Error(0)
}

type orderServiceMocks struct {
	orderRepo   *MockOrderRepository
	productRepo *MockProductRepository
	configRepo  *MockConfigRepository
	userRepo    *MockUserRepository
	notifier    *MockNotifier
}

func newOrderService(t *testing.T) (*OrderService, *orderServiceMocks) {
	t.Helper()
	m := &orderServiceMocks{
		orderRepo:   new(MockOrderRepository),
		productRepo: new(MockProductRepository),
		configRepo:  new(MockConfigRepository),
		userRepo:    new(MockUserRepository),
		notifier:    new(MockNotifier),
	}
	svc := NewOrderService(m.orderRepo, m.productRepo, m.configRepo, m.userRepo, m.notifier, valueobject.ZeroEUR(), zap.NewNop())
	return svc, m
}

func validAddressRequest() AddressRequest {
	return AddressRequest{
		FullName: "Arber Hoxha",
		Street:   "Rruga e Durresit 12",
		City:     "Tirana",
		Country:  "AL",
	}
}

func testUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Arber Hoxha", "arber@example.com", "hash", identity.RoleClient)
	require.NoError(t, err)
	return user
}

func testProduct(t *testing.T, price float64, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("RTX 4070", "RTX 4070", catalog.CategoryComponents, valueobject.NewMoneyEURFromFloat(price), stock)
	require.NoError(t, err)
	return p
}

func TestOrderServiceCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("product order is priced from the catalog", func(t *testing.T) {
		svc, m := newOrderService(t)
		product := testProduct(t, 100, 10)

		m.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		m.productRepo.On("Save", ctx, product).Return(nil)
		m.orderRepo.On("CreateAggregate", ctx, mock.AnythingOfType("*ordering.Order"), mock.AnythingOfType("*ordering.Invoice"), mock.AnythingOfType("[]*timeline.Entry")).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*ordering.Order)
				invoice := args.Get(2).(*ordering.Invoice)
				require.NoError(t, order.AssignNumber("PB-2026-001"))
				require.NoError(t, invoice.AssignNumber(order.OrderNumber))
			}).
			Return(nil)
		m.userRepo.On("FindByID", ctx, userID).Return(testUser(t), nil)
		m.notifier.On("OrderCreated", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "PRODUCT",
			Items:   []OrderItemRequest{{ProductID: &product.ID, Quantity: 2}},
			Address: validAddressRequest(),
		})
		require.NoError(t, err)

		assert.Equal(t, "PB-2026-001", resp.OrderNumber)
		assert.Equal(t, "PENDING", resp.Status)
		assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("200")))
		assert.True(t, resp.Tax.Equal(decimal.RequireFromString("40")))
		assert.True(t, resp.Total.Equal(decimal.RequireFromString("240")))
		m.orderRepo.AssertExpectations(t)
		m.notifier.AssertExpectations(t)
	})

	t.Run("insufficient stock is rejected", func(t *testing.T) {
		svc, m := newOrderService(t)
		product := testProduct(t, 100, 1)
		m.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "PRODUCT",
			Items:   []OrderItemRequest{{ProductID: &product.ID, Quantity: 3}},
			Address: validAddressRequest(),
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "OUT_OF_STOCK", domainErr.Code)
		m.orderRepo.AssertNotCalled(t, "CreateAggregate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("inactive product is rejected", func(t *testing.T) {
		svc, m := newOrderService(t)
		product := testProduct(t, 100, 10)
		product.Deactivate()
		m.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "PRODUCT",
			Items:   []OrderItemRequest{{ProductID: &product.ID, Quantity: 1}},
			Address: validAddressRequest(),
		})
		assert.Error(t, err)
	})

	t.Run("pc build order is priced from the saved configuration", func(t *testing.T) {
		svc, m := newOrderService(t)
		cfg, err := catalog.NewSavedConfig(userID, catalog.ConfigKindPC, "My Rig", `{"cpu":"7800X3D"}`, valueobject.NewMoneyEURFromFloat(1500))
		require.NoError(t, err)

		m.configRepo.On("FindByIDForUser", ctx, userID, cfg.ID).Return(cfg, nil)
		m.orderRepo.On("CreateAggregate", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.userRepo.On("FindByID", ctx, userID).Return(testUser(t), nil)
		m.notifier.On("OrderCreated", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "PC_BUILD",
			Items:   []OrderItemRequest{{PCConfigID: &cfg.ID, Quantity: 1}},
			Address: validAddressRequest(),
		})
		require.NoError(t, err)

		assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("1500")))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "My Rig", resp.Items[0].Name)
	})

	t.Run("another user's configuration is not usable", func(t *testing.T) {
		svc, m := newOrderService(t)
		cfgID := uuid.New()
		m.configRepo.On("FindByIDForUser", ctx, userID, cfgID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "PC_BUILD",
			Items:   []OrderItemRequest{{PCConfigID: &cfgID, Quantity: 1}},
			Address: validAddressRequest(),
		})
		assert.Error(t, err)
	})

	t.Run("gift card order uses the requested amount", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orderRepo.On("CreateAggregate", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.userRepo.On("FindByID", ctx, userID).Return(testUser(t), nil)
		m.notifier.On("OrderCreated", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		amount := decimal.NewFromInt(50)
		resp, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "GIFT_CARD",
			Items:   []OrderItemRequest{{GiftCardAmount: &amount, Quantity: 1}},
			Address: validAddressRequest(),
		})
		require.NoError(t, err)
		assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("50")))
	})

	t.Run("negative gift card amount is rejected", func(t *testing.T) {
		svc, _ := newOrderService(t)
		amount := decimal.NewFromInt(-10)

		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "GIFT_CARD",
			Items:   []OrderItemRequest{{GiftCardAmount: &amount, Quantity: 1}},
			Address: validAddressRequest(),
		})
		assert.Error(t, err)
	})

	t.Run("notification failure does not fail the order", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orderRepo.On("CreateAggregate", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.userRepo.On("FindByID", ctx, userID).Return(testUser(t), nil)
		m.notifier.On("OrderCreated", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		amount := decimal.NewFromInt(25)
		_, err := svc.Create(ctx, userID, CreateOrderRequest{
			Type:    "GIFT_CARD",
			Items:   []OrderItemRequest{{GiftCardAmount: &amount, Quantity: 1}},
			Address: validAddressRequest(),
		})
		assert.NoError(t, err)
	})
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	placedOrder := func(t *testing.T) *ordering.Order {
		t.Helper()
		addr, err := toAddress(validAddressRequest())
		require.NoError(t, err)
		order, err := ordering.NewOrder(uuid.New(), ordering.OrderTypeProduct, addr, "", shared.LanguageEnglish)
		require.NoError(t, err)
		require.NoError(t, order.AssignNumber("PB-2026-009"))
		order.ClearDomainEvents()
		return order
	}

	t.Run("valid transition persists status and timeline together", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := placedOrder(t)

		m.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		m.orderRepo.On("UpdateStatus", ctx, order, mock.MatchedBy(func(e *timeline.Entry) bool {
			return e.Status == "CONFIRMED" && e.OwnerID == order.ID && e.CreatedBy != nil && *e.CreatedBy == adminID
		})).Return(nil)
		m.userRepo.On("FindByID", ctx, order.UserID).Return(testUser(t), nil)
		m.notifier.On("OrderStatusChanged", ctx, mock.Anything, order, ordering.StatusPending, ordering.StatusConfirmed).Return(nil)

		resp, err := svc.UpdateStatus(ctx, adminID, order.ID, UpdateOrderStatusRequest{Status: "CONFIRMED"})
		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", resp.Status)
		m.orderRepo.AssertExpectations(t)
	})

	t.Run("invalid transition does not touch the repository", func(t *testing.T) {
		svc, m := newOrderService(t)
		order := placedOrder(t)
		m.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := svc.UpdateStatus(ctx, adminID, order.ID, UpdateOrderStatusRequest{Status: "DELIVERED"})
		require.Error(t, err)
		m.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrderServiceQueries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("client reads own order", func(t *testing.T) {
		svc, m := newOrderService(t)
		addr, err := toAddress(validAddressRequest())
		require.NoError(t, err)
		order, err := ordering.NewOrder(userID, ordering.OrderTypeProduct, addr, "", shared.LanguageEnglish)
		require.NoError(t, err)

		m.orderRepo.On("FindByIDForUser", ctx, userID, order.ID).Return(order, nil)

		resp, err := svc.Get(ctx, userID, false, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, resp.ID)
	})

	t.Run("admin listing uses the unscoped finder", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orderRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]ordering.Order{}, nil)
		m.orderRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		_, total, err := svc.List(ctx, userID, true, OrderListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		m.orderRepo.AssertNotCalled(t, "FindAllForUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("client listing is scoped to the user", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.orderRepo.On("FindAllForUser", ctx, userID, mock.AnythingOfType("shared.Filter")).Return([]ordering.Order{}, nil)
		m.orderRepo.On("CountForUser", ctx, userID, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		_, _, err := svc.List(ctx, userID, false, OrderListFilter{})
		require.NoError(t, err)
		m.orderRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("client cannot read someone else's order by number", func(t *testing.T) {
		svc, m := newOrderService(t)
		addr, err := toAddress(validAddressRequest())
		require.NoError(t, err)
		order, err := ordering.NewOrder(uuid.New(), ordering.OrderTypeProduct, addr, "", shared.LanguageEnglish)
		require.NoError(t, err)
		require.NoError(t, order.AssignNumber("PB-2026-011"))

		m.orderRepo.On("FindByNumber", ctx, "PB-2026-011").Return(order, nil)

		_, err = svc.GetByNumber(ctx, userID, false, "PB-2026-011")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
