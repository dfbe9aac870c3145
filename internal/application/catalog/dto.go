package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/catalog"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	NameSq        string          `json:"name_sq" binding:"max=200"`
	Description   string          `json:"description" binding:"max=5000"`
	DescriptionSq string          `json:"description_sq" binding:"max=5000"`
	Category      string          `json:"category" binding:"required,oneof=COMPONENTS PERIPHERALS CONSOLES GIFT_CARDS ACCOUNTS"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Stock         int             `json:"stock" binding:"min=0"`
	ImageURL      string          `json:"image_url" binding:"omitempty,url,max=500"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	NameSq        *string          `json:"name_sq" binding:"omitempty,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=5000"`
	DescriptionSq *string          `json:"description_sq" binding:"omitempty,max=5000"`
	Price         *decimal.Decimal `json:"price"`
	ImageURL      *string          `json:"image_url" binding:"omitempty,url,max=500"`
	IsActive      *bool            `json:"is_active"`
}

// AdjustStockRequest represents a stock adjustment
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Category   string `form:"category" binding:"omitempty,oneof=COMPONENTS PERIPHERALS CONSOLES GIFT_CARDS ACCOUNTS"`
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses. Name and description
// are localized to the requested language; the raw bilingual fields are
// included for admin editing.
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	NameSq        string          `json:"name_sq"`
	Description   string          `json:"description,omitempty"`
	DescriptionSq string          `json:"description_sq,omitempty"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// SaveConfigRequest represents a request to save a configurator result
type SaveConfigRequest struct {
	Kind       string          `json:"kind" binding:"required,oneof=PC PS5"`
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	Components string          `json:"components" binding:"required"`
	TotalPrice decimal.Decimal `json:"total_price" binding:"required"`
}

// ConfigResponse represents a saved configuration in API responses
type ConfigResponse struct {
	ID         uuid.UUID       `json:"id"`
	Kind       string          `json:"kind"`
	Name       string          `json:"name"`
	Components string          `json:"components"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		NameSq:        p.NameSq,
		Description:   p.Description,
		DescriptionSq: p.DescriptionSq,
		Category:      string(p.Category),
		Price:         p.Price,
		Stock:         p.Stock,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ToConfigResponse converts a domain SavedConfig to ConfigResponse
func ToConfigResponse(c *catalog.SavedConfig) ConfigResponse {
	return ConfigResponse{
		ID:         c.ID,
		Kind:       string(c.Kind),
		Name:       c.Name,
		Components: c.Components,
		TotalPrice: c.TotalPrice,
		CreatedAt:  c.CreatedAt,
	}
}

func toSharedFilter(filter ProductListFilter) shared.Filter {
	f := shared.NewFilter()
	f.Page = filter.Page
	f.PageSize = filter.PageSize
	f.OrderBy = filter.OrderBy
	f.OrderDir = filter.OrderDir
	f.Search = filter.Search
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	if filter.ActiveOnly {
		f.Filters["is_active"] = true
	}
	f.Normalize()
	return f
}
