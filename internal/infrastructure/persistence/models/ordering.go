package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	OwnedAggregateModel
	OrderNumber     string              `gorm:"type:varchar(30);not null;uniqueIndex"`
	Type            ordering.OrderType  `gorm:"type:varchar(20);not null;index"`
	Status          ordering.Status     `gorm:"type:varchar(20);not null;index"`
	Items           []OrderItemModel    `gorm:"foreignKey:OrderID"`
	Subtotal        decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	Tax             decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	Shipping        decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	Total           decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	ShippingAddress valueobject.Address `gorm:"type:jsonb"`
	Notes           string              `gorm:"type:text"`
	Language        shared.Language     `gorm:"type:varchar(2);not null;default:'sq'"`
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *ordering.Order {
	items := make([]ordering.OrderItem, len(m.Items))
	for i := range m.Items {
		items[i] = *m.Items[i].ToDomain()
	}
	return &ordering.Order{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		OrderNumber:        m.OrderNumber,
		Type:               m.Type,
		Status:             m.Status,
		Items:              items,
		Subtotal:           m.Subtotal,
		Tax:                m.Tax,
		Shipping:           m.Shipping,
		Total:              m.Total,
		ShippingAddress:    m.ShippingAddress,
		Notes:              m.Notes,
		Language:           m.Language,
		ShippedAt:          m.ShippedAt,
		DeliveredAt:        m.DeliveredAt,
		CancelledAt:        m.CancelledAt,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.FromDomainOwnedAggregateRoot(o.OwnedAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.Type = o.Type
	m.Status = o.Status
	m.Subtotal = o.Subtotal
	m.Tax = o.Tax
	m.Shipping = o.Shipping
	m.Total = o.Total
	m.ShippingAddress = o.ShippingAddress
	m.Notes = o.Notes
	m.Language = o.Language
	m.ShippedAt = o.ShippedAt
	m.DeliveredAt = o.DeliveredAt
	m.CancelledAt = o.CancelledAt

	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(&o.Items[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for an order line.
type OrderItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      *uuid.UUID      `gorm:"type:uuid;index"`
	PCConfigID     *uuid.UUID      `gorm:"type:uuid"`
	PS5ConfigID    *uuid.UUID      `gorm:"type:uuid"`
	Name           string          `gorm:"type:varchar(200);not null"`
	Quantity       int             `gorm:"not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Customizations string          `gorm:"type:jsonb"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() *ordering.OrderItem {
	return &ordering.OrderItem{
		ID:             m.ID,
		OrderID:        m.OrderID,
		ProductID:      m.ProductID,
		PCConfigID:     m.PCConfigID,
		PS5ConfigID:    m.PS5ConfigID,
		Name:           m.Name,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		Customizations: m.Customizations,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain OrderItem
func (m *OrderItemModel) FromDomain(i *ordering.OrderItem) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.ProductID = i.ProductID
	m.PCConfigID = i.PCConfigID
	m.PS5ConfigID = i.PS5ConfigID
	m.Name = i.Name
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.Customizations = i.Customizations
	m.CreatedAt = i.CreatedAt
}

// InvoiceModel is the persistence model for the Invoice entity.
type InvoiceModel struct {
	BaseModel
	OrderID       uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex"`
	InvoiceNumber string                 `gorm:"type:varchar(40);not null;uniqueIndex"`
	Subtotal      decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	Tax           decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	Total         decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	Status        ordering.InvoiceStatus `gorm:"type:varchar(20);not null"`
	DueDate       time.Time              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *ordering.Invoice {
	return &ordering.Invoice{
		BaseEntity:    m.BaseModel.ToDomain(),
		OrderID:       m.OrderID,
		InvoiceNumber: m.InvoiceNumber,
		Subtotal:      m.Subtotal,
		Tax:           m.Tax,
		Total:         m.Total,
		Status:        m.Status,
		DueDate:       m.DueDate,
	}
}

// FromDomain populates the persistence model from a domain Invoice
func (m *InvoiceModel) FromDomain(i *ordering.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.OrderID = i.OrderID
	m.InvoiceNumber = i.InvoiceNumber
	m.Subtotal = i.Subtotal
	m.Tax = i.Tax
	m.Total = i.Total
	m.Status = i.Status
	m.DueDate = i.DueDate
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(i *ordering.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}
