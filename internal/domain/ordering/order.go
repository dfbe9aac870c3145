package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderNumberPrefix is the human-readable order number prefix
const OrderNumberPrefix = "PB"

// vatRate is the flat VAT applied to the order subtotal (20%)
var vatRate = decimal.New(20, -2)

// FormatOrderNumber builds a human-readable order number, e.g. PB-2026-042.
// The sequence is zero-padded to three digits and grows past that unbounded.
func FormatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", OrderNumberPrefix, year, seq)
}

// OrderType represents what kind of purchase an order is
type OrderType string

const (
	OrderTypePCBuild       OrderType = "PC_BUILD"
	OrderTypePS5Controller OrderType = "PS5_CONTROLLER"
	OrderTypeProduct       OrderType = "PRODUCT"
	OrderTypeGiftCard      OrderType = "GIFT_CARD"
)

// IsValid checks if the type is a known OrderType
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypePCBuild, OrderTypePS5Controller, OrderTypeProduct, OrderTypeGiftCard:
		return true
	}
	return false
}

// String returns the string representation of OrderType
func (t OrderType) String() string {
	return string(t)
}

// Status represents the status of an order
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// IsValid checks if the status is a valid order Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true for terminal statuses
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// OrderItem is one line of an order. It snapshots the price at order time and
// is immutable after the order is placed.
type OrderItem struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	ProductID      *uuid.UUID
	PCConfigID     *uuid.UUID
	PS5ConfigID    *uuid.UUID
	Name           string
	Quantity       int
	UnitPrice      decimal.Decimal
	Customizations string
	CreatedAt      time.Time
}

// NewOrderItem creates a new order line. Exactly one of productID, pcConfigID
// and ps5ConfigID may be set; a gift card line carries none.
func NewOrderItem(orderID uuid.UUID, productID, pcConfigID, ps5ConfigID *uuid.UUID, name string, quantity int, unitPrice valueobject.Money, customizations string) (*OrderItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Order item name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	refs := 0
	for _, ref := range []*uuid.UUID{productID, pcConfigID, ps5ConfigID} {
		if ref != nil {
			refs++
		}
	}
	if refs > 1 {
		return nil, shared.NewDomainError("INVALID_ITEM_REF", "Order item can reference at most one product or configuration")
	}

	return &OrderItem{
		ID:             uuid.New(),
		OrderID:        orderID,
		ProductID:      productID,
		PCConfigID:     pcConfigID,
		PS5ConfigID:    ps5ConfigID,
		Name:           name,
		Quantity:       quantity,
		UnitPrice:      unitPrice.Amount(),
		Customizations: customizations,
		CreatedAt:      time.Now(),
	}, nil
}

// LineTotal returns quantity times unit price
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the customer purchase aggregate root. It is created PENDING with
// its lines, invoice and first timeline entry in one transaction, and is only
// ever transitioned to CANCELLED, never deleted.
type Order struct {
	shared.OwnedAggregateRoot
	OrderNumber     string
	Type            OrderType
	Status          Status
	Items           []OrderItem
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	ShippingAddress valueobject.Address
	Notes           string
	Language        shared.Language
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
}

// NewOrder creates a new pending order for a user. Items are added with
// AddItem before the order is placed; the order number is assigned by the
// repository when the aggregate is persisted.
func NewOrder(userID uuid.UUID, orderType OrderType, address valueobject.Address, notes string, language shared.Language) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Order user ID cannot be empty")
	}
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", fmt.Sprintf("Unknown order type %q", orderType))
	}
	if !language.IsValid() {
		language = shared.LanguageAlbanian
	}

	order := &Order{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Type:               orderType,
		Status:             StatusPending,
		Items:              make([]OrderItem, 0),
		Subtotal:           decimal.Zero,
		Tax:                decimal.Zero,
		Shipping:           decimal.Zero,
		Total:              decimal.Zero,
		ShippingAddress:    address,
		Notes:              notes,
		Language:           language,
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a line to the order. Only allowed before the order is placed
// (lines are immutable once the order number has been assigned).
func (o *Order) AddItem(productID, pcConfigID, ps5ConfigID *uuid.UUID, name string, quantity int, unitPrice valueobject.Money, customizations string) (*OrderItem, error) {
	if o.OrderNumber != "" {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a placed order")
	}

	item, err := NewOrderItem(o.ID, productID, pcConfigID, ps5ConfigID, name, quantity, unitPrice, customizations)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return item, nil
}

// AssignNumber assigns the allocated order number. It may only be set once;
// the repository calls this inside the creation transaction.
func (o *Order) AssignNumber(number string) error {
	if o.OrderNumber != "" {
		return shared.NewDomainError("INVALID_STATE", "Order number has already been assigned")
	}
	if number == "" {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	o.OrderNumber = number
	return nil
}

// TransitionTo moves the order to a new status following the lifecycle graph.
// Every transition must be recorded as a timeline entry by the caller in the
// same transaction.
func (o *Order) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}

	from := o.Status
	now := time.Now()
	o.Status = target
	o.UpdatedAt = now

	switch target {
	case StatusShipped:
		o.ShippedAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
	case StatusCancelled:
		o.CancelledAt = &now
	}

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from, target))

	return nil
}

// recalculateTotals is the single pricing rule for orders:
// subtotal is the sum of line totals, tax is a flat 20% VAT on the subtotal
// rounded to cents, total is subtotal + tax + shipping.
func (o *Order) recalculateTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.Subtotal = subtotal
	o.Tax = subtotal.Mul(vatRate).Round(2)
	o.Total = o.Subtotal.Add(o.Tax).Add(o.Shipping)
}

// SetShipping sets the shipping cost. Only allowed before the order is placed.
func (o *Order) SetShipping(shipping valueobject.Money) error {
	if o.OrderNumber != "" {
		return shared.NewDomainError("INVALID_STATE", "Cannot change shipping on a placed order")
	}
	if shipping.IsNegative() {
		return shared.NewDomainError("INVALID_SHIPPING", "Shipping cost cannot be negative")
	}
	o.Shipping = shipping.Amount()
	o.recalculateTotals()
	return nil
}

// ItemCount returns the number of lines in the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// IsTerminal returns true if the order is delivered or cancelled
func (o *Order) IsTerminal() bool {
	return o.Status.IsTerminal()
}

// GetSubtotalMoney returns the subtotal as Money
func (o *Order) GetSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.Subtotal)
}

// GetTaxMoney returns the tax as Money
func (o *Order) GetTaxMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.Tax)
}

// GetTotalMoney returns the total as Money
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(o.Total)
}
