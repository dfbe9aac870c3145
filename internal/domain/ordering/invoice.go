package ordering

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceDueDays is the payment window granted on new invoices
const InvoiceDueDays = 7

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid:
		return true
	}
	return false
}

// Invoice is created 1:1 with an order, in the same transaction, mirroring
// the order's amounts.
type Invoice struct {
	shared.BaseEntity
	OrderID       uuid.UUID
	InvoiceNumber string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        InvoiceStatus
	DueDate       time.Time
}

// NewInvoiceForOrder creates the draft invoice for a new order. The invoice
// number is derived from the order number once that is assigned.
func NewInvoiceForOrder(order *Order) (*Invoice, error) {
	if order == nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Invoice requires an order")
	}

	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    order.ID,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Total:      order.Total,
		Status:     InvoiceStatusDraft,
		DueDate:    time.Now().AddDate(0, 0, InvoiceDueDays),
	}, nil
}

// AssignNumber derives the invoice number from the assigned order number.
// It may only be set once; the repository calls this inside the creation
// transaction after the order number has been allocated.
func (i *Invoice) AssignNumber(orderNumber string) error {
	if i.InvoiceNumber != "" {
		return shared.NewDomainError("INVALID_STATE", "Invoice number has already been assigned")
	}
	if orderNumber == "" {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	i.InvoiceNumber = fmt.Sprintf("INV-%s", orderNumber)
	return nil
}

// MarkPending moves a draft invoice to pending payment
func (i *Invoice) MarkPending() error {
	if i.Status != InvoiceStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft invoices can be marked pending")
	}
	i.Status = InvoiceStatusPending
	i.UpdatedAt = time.Now()
	return nil
}

// MarkPaid marks the invoice as paid
func (i *Invoice) MarkPaid() error {
	if i.Status == InvoiceStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Invoice is already paid")
	}
	i.Status = InvoiceStatusPaid
	i.UpdatedAt = time.Now()
	return nil
}

// IsOverdue returns true if the invoice is unpaid past its due date
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status != InvoiceStatusPaid && now.After(i.DueDate)
}
