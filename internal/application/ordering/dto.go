package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/ordering"
	"github.com/playbase/backend/internal/domain/timeline"
	"github.com/shopspring/decimal"
)

// AddressRequest represents a shipping address in requests
type AddressRequest struct {
	FullName   string `json:"full_name" binding:"required,min=1,max=200"`
	Street     string `json:"street" binding:"required,min=1,max=300"`
	City       string `json:"city" binding:"required,min=1,max=100"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	Country    string `json:"country" binding:"max=2"`
	Phone      string `json:"phone" binding:"max=30"`
}

// OrderItemRequest represents one requested order line. Prices are always
// resolved server-side: product lines from the catalog, configuration lines
// from the saved configuration, gift card lines from the requested amount.
type OrderItemRequest struct {
	ProductID      *uuid.UUID       `json:"product_id"`
	PCConfigID     *uuid.UUID       `json:"pc_config_id"`
	PS5ConfigID    *uuid.UUID       `json:"ps5_config_id"`
	Quantity       int              `json:"quantity" binding:"required,min=1"`
	GiftCardAmount *decimal.Decimal `json:"gift_card_amount"`
	Customizations string           `json:"customizations" binding:"max=2000"`
}

// CreateOrderRequest represents a request to place a new order
type CreateOrderRequest struct {
	Type     string             `json:"type" binding:"required,oneof=PC_BUILD PS5_CONTROLLER PRODUCT GIFT_CARD"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Address  AddressRequest     `json:"address" binding:"required"`
	Notes    string             `json:"notes" binding:"max=2000"`
	Language string             `json:"language" binding:"omitempty,oneof=sq en"`
}

// UpdateOrderStatusRequest represents an admin status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED PROCESSING SHIPPED DELIVERED CANCELLED"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED PROCESSING SHIPPED DELIVERED CANCELLED"`
	Type     string `form:"type" binding:"omitempty,oneof=PC_BUILD PS5_CONTROLLER PRODUCT GIFT_CARD"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      *uuid.UUID      `json:"product_id,omitempty"`
	PCConfigID     *uuid.UUID      `json:"pc_config_id,omitempty"`
	PS5ConfigID    *uuid.UUID      `json:"ps5_config_id,omitempty"`
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
	Customizations string          `json:"customizations,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     string              `json:"order_number"`
	UserID          uuid.UUID           `json:"user_id"`
	Type            string              `json:"type"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Tax             decimal.Decimal     `json:"tax"`
	Shipping        decimal.Decimal     `json:"shipping"`
	Total           decimal.Decimal     `json:"total"`
	Currency        string              `json:"currency"`
	ShippingAddress AddressRequest      `json:"shipping_address"`
	Notes           string              `json:"notes,omitempty"`
	Language        string              `json:"language"`
	ShippedAt       *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Version         int                 `json:"version"`
}

// OrderListResponse represents a list item for orders
type OrderListResponse struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	ItemCount   int             `json:"item_count"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	DueDate       time.Time       `json:"due_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, OrderItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			PCConfigID:     item.PCConfigID,
			PS5ConfigID:    item.PS5ConfigID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			LineTotal:      item.LineTotal(),
			Customizations: item.Customizations,
		})
	}

	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Type:        o.Type.String(),
		Status:      o.Status.String(),
		Items:       items,
		Subtotal:    o.Subtotal,
		Tax:         o.Tax,
		Shipping:    o.Shipping,
		Total:       o.Total,
		Currency:    string(o.GetTotalMoney().Currency()),
		ShippingAddress: AddressRequest{
			FullName:   o.ShippingAddress.FullName,
			Street:     o.ShippingAddress.Street,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
			Phone:      o.ShippingAddress.Phone,
		},
		Notes:       o.Notes,
		Language:    string(o.Language),
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
		CancelledAt: o.CancelledAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Version:     o.Version,
	}
}

// ToOrderListResponse converts a domain Order to OrderListResponse
func ToOrderListResponse(o *ordering.Order) OrderListResponse {
	return OrderListResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Type:        o.Type.String(),
		Status:      o.Status.String(),
		ItemCount:   o.ItemCount(),
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
	}
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *ordering.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		OrderID:       inv.OrderID,
		InvoiceNumber: inv.InvoiceNumber,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Status:        string(inv.Status),
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
	}
}

// TimelineEntryResponse represents a timeline entry in API responses,
// localized to the requested language.
type TimelineEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Icon        string    `json:"icon,omitempty"`
	IsVisible   bool      `json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToTimelineEntryResponse converts a timeline entry, localized
func ToTimelineEntryResponse(e *timeline.Entry, lang string) TimelineEntryResponse {
	l := toLanguage(lang)
	return TimelineEntryResponse{
		ID:          e.ID,
		Title:       e.TitleFor(l),
		Description: e.DescriptionFor(l),
		Status:      e.Status,
		Icon:        e.Icon,
		IsVisible:   e.IsVisible,
		CreatedAt:   e.CreatedAt,
	}
}
