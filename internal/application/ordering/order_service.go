package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/catalog"
	"github.com/playbase/backend/internal/domain/identity"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/playbase/backend/internal/domain/timeline"
	"go.uber.org/zap"
)

// Notifier delivers customer-facing order notifications. Failures are logged
// and never fail the operation that triggered them.
type Notifier interface {
	OrderCreated(ctx context.Context, user *identity.User, order *ordering.Order, invoice *ordering.Invoice) error
	OrderStatusChanged(ctx context.Context, user *identity.User, order *ordering.Order, from, to ordering.Status) error
}

// OrderService handles order business operations
type OrderService struct {
	orderRepo   ordering.Repository
	productRepo catalog.ProductRepository
	configRepo  catalog.ConfigRepository
	userRepo    identity.Repository
	notifier    Notifier
	shippingFee valueobject.Money
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.Repository,
	productRepo catalog.ProductRepository,
	configRepo catalog.ConfigRepository,
	userRepo identity.Repository,
	notifier Notifier,
	shippingFee valueobject.Money,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		configRepo:  configRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		shippingFee: shippingFee,
		logger:      logger,
	}
}

// Create places a new order. The order, its lines, the invoice and the first
// timeline entry are persisted in one transaction; the order number comes from
// the yearly counter inside that transaction. Notifications go out after the
// commit and never fail the request.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	address, err := toAddress(req.Address)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}

	order, err := ordering.NewOrder(userID, ordering.OrderType(req.Type), address, req.Notes, toLanguage(req.Language))
	if err != nil {
		return nil, err
	}

	for i := range req.Items {
		if err := s.addItem(ctx, order, &req.Items[i]); err != nil {
			return nil, err
		}
	}

	if err := order.SetShipping(s.shippingFee); err != nil {
		return nil, err
	}

	invoice, err := ordering.NewInvoiceForOrder(order)
	if err != nil {
		return nil, err
	}

	entry, err := ordering.TimelineEntryFor(order, ordering.StatusPending)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.CreateAggregate(ctx, order, invoice, []*timeline.Entry{entry}); err != nil {
		return nil, err
	}
	order.ClearDomainEvents()

	s.reserveStock(ctx, order)
	s.notifyCreated(ctx, order, invoice)

	resp := ToOrderResponse(order)
	return &resp, nil
}

// addItem resolves one requested line against the catalog and adds it to the
// order. Prices never come from the client.
func (s *OrderService) addItem(ctx context.Context, order *ordering.Order, item *OrderItemRequest) error {
	switch {
	case item.ProductID != nil:
		product, err := s.productRepo.FindByID(ctx, *item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_ITEM", "Product not found")
			}
			return err
		}
		if !product.IsActive {
			return shared.NewDomainError("INVALID_ITEM", "Product is not available")
		}
		if product.Stock < item.Quantity {
			return shared.NewDomainError("OUT_OF_STOCK", fmt.Sprintf("Only %d of %q in stock", product.Stock, product.Name))
		}
		_, err = order.AddItem(item.ProductID, nil, nil, product.NameFor(order.Language), item.Quantity, product.GetPriceMoney(), item.Customizations)
		return err

	case item.PCConfigID != nil:
		cfg, err := s.findConfig(ctx, order.UserID, *item.PCConfigID, catalog.ConfigKindPC)
		if err != nil {
			return err
		}
		_, err = order.AddItem(nil, item.PCConfigID, nil, cfg.Name, item.Quantity, cfg.GetTotalPriceMoney(), item.Customizations)
		return err

	case item.PS5ConfigID != nil:
		cfg, err := s.findConfig(ctx, order.UserID, *item.PS5ConfigID, catalog.ConfigKindPS5)
		if err != nil {
			return err
		}
		_, err = order.AddItem(nil, nil, item.PS5ConfigID, cfg.Name, item.Quantity, cfg.GetTotalPriceMoney(), item.Customizations)
		return err

	case item.GiftCardAmount != nil:
		amount := valueobject.NewMoneyEUR(*item.GiftCardAmount)
		if !amount.IsPositive() {
			return shared.NewDomainError("INVALID_ITEM", "Gift card amount must be positive")
		}
		name := fmt.Sprintf("Gift Card %s EUR", amount.StringFixed(2))
		_, err := order.AddItem(nil, nil, nil, name, item.Quantity, amount, item.Customizations)
		return err

	default:
		return shared.NewDomainError("INVALID_ITEM", "Order item must reference a product, a configuration or a gift card amount")
	}
}

func (s *OrderService) findConfig(ctx context.Context, userID, id uuid.UUID, kind catalog.ConfigKind) (*catalog.SavedConfig, error) {
	cfg, err := s.configRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_ITEM", "Configuration not found")
		}
		return nil, err
	}
	if cfg.Kind != kind {
		return nil, shared.NewDomainError("INVALID_ITEM", fmt.Sprintf("Configuration is not a %s configuration", kind))
	}
	return cfg, nil
}

// Get returns a single order. Clients only see their own orders; admins see
// everything.
func (s *OrderService) Get(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.findOrder(ctx, userID, isAdmin, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetByNumber returns a single order looked up by its order number
func (s *OrderService) GetByNumber(ctx context.Context, userID uuid.UUID, isAdmin bool, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, shared.ErrNotFound
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetInvoice returns the invoice for an order
func (s *OrderService) GetInvoice(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*InvoiceResponse, error) {
	if _, err := s.findOrder(ctx, userID, isAdmin, orderID); err != nil {
		return nil, err
	}
	invoice, err := s.orderRepo.InvoiceForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List returns a page of orders with the total count. Clients only see their
// own orders.
func (s *OrderService) List(ctx context.Context, userID uuid.UUID, isAdmin bool, filter OrderListFilter) ([]OrderListResponse, int64, error) {
	f := toSharedFilter(filter)

	var (
		orders []ordering.Order
		total  int64
		err    error
	)
	if isAdmin {
		orders, err = s.orderRepo.FindAll(ctx, f)
		if err == nil {
			total, err = s.orderRepo.Count(ctx, f)
		}
	} else {
		orders, err = s.orderRepo.FindAllForUser(ctx, userID, f)
		if err == nil {
			total, err = s.orderRepo.CountForUser(ctx, userID, f)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	items := make([]OrderListResponse, 0, len(orders))
	for i := range orders {
		items = append(items, ToOrderListResponse(&orders[i]))
	}
	return items, total, nil
}

// UpdateStatus transitions an order to a new status (admin only). The status
// change and its timeline entry are persisted in one transaction.
func (s *OrderService) UpdateStatus(ctx context.Context, adminID, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	target := ordering.Status(req.Status)
	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}

	entry, err := ordering.TimelineEntryFor(order, target)
	if err != nil {
		return nil, err
	}
	entry.SetCreatedBy(adminID)

	if err := s.orderRepo.UpdateStatus(ctx, order, entry); err != nil {
		return nil, err
	}
	order.ClearDomainEvents()

	s.notifyStatusChanged(ctx, order, from, target)

	resp := ToOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) findOrder(ctx context.Context, userID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*ordering.Order, error) {
	if isAdmin {
		return s.orderRepo.FindByID(ctx, orderID)
	}
	return s.orderRepo.FindByIDForUser(ctx, userID, orderID)
}

// reserveStock decrements catalog stock for product lines after the order is
// committed. Failures are logged; the order stands either way.
func (s *OrderService) reserveStock(ctx context.Context, order *ordering.Order) {
	for i := range order.Items {
		item := &order.Items[i]
		if item.ProductID == nil {
			continue
		}
		product, err := s.productRepo.FindByID(ctx, *item.ProductID)
		if err != nil {
			s.logger.Warn("stock reservation lookup failed",
				zap.String("order_number", order.OrderNumber),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
			continue
		}
		if err := product.AdjustStock(-item.Quantity); err != nil {
			s.logger.Warn("stock went negative, clamping skipped",
				zap.String("order_number", order.OrderNumber),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
			continue
		}
		if err := s.productRepo.Save(ctx, product); err != nil {
			s.logger.Warn("stock reservation save failed",
				zap.String("order_number", order.OrderNumber),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
		}
	}
}

func (s *OrderService) notifyCreated(ctx context.Context, order *ordering.Order, invoice *ordering.Invoice) {
	if s.notifier == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn("order notification skipped, user lookup failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		return
	}
	if err := s.notifier.OrderCreated(ctx, user, order, invoice); err != nil {
		s.logger.Warn("order confirmation notification failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}
}

func (s *OrderService) notifyStatusChanged(ctx context.Context, order *ordering.Order, from, to ordering.Status) {
	if s.notifier == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn("status notification skipped, user lookup failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		return
	}
	if err := s.notifier.OrderStatusChanged(ctx, user, order, from, to); err != nil {
		s.logger.Warn("status change notification failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}
}

func toAddress(req AddressRequest) (valueobject.Address, error) {
	return valueobject.NewAddress(req.FullName, req.Street, req.City, req.PostalCode, req.Country, req.Phone)
}

func toLanguage(code string) shared.Language {
	return shared.NormalizeLanguage(code)
}

func toSharedFilter(filter OrderListFilter) shared.Filter {
	f := shared.NewFilter()
	f.Page = filter.Page
	f.PageSize = filter.PageSize
	f.OrderBy = filter.OrderBy
	f.OrderDir = filter.OrderDir
	f.Search = filter.Search
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		f.Filters["type"] = filter.Type
	}
	f.Normalize()
	return f
}
