package catalog

import (
	"strings"
	"time"

	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Category groups products in the storefront
type Category string

const (
	CategoryComponents  Category = "COMPONENTS"
	CategoryPeripherals Category = "PERIPHERALS"
	CategoryConsoles    Category = "CONSOLES"
	CategoryGiftCards   Category = "GIFT_CARDS"
	CategoryAccounts    Category = "ACCOUNTS"
)

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryComponents, CategoryPeripherals, CategoryConsoles, CategoryGiftCards, CategoryAccounts:
		return true
	}
	return false
}

// Product is a sellable catalog item with bilingual naming
type Product struct {
	shared.BaseAggregateRoot
	Name          string
	NameSq        string
	Description   string
	DescriptionSq string
	Category      Category
	Price         decimal.Decimal
	Stock         int
	ImageURL      string
	IsActive      bool
}

// NewProduct creates a new active product
func NewProduct(name, nameSq string, category Category, price valueobject.Money, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	if nameSq == "" {
		nameSq = name
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		NameSq:            nameSq,
		Category:          category,
		Price:             price.Amount(),
		Stock:             stock,
		IsActive:          true,
	}, nil
}

// NameFor returns the product name in the requested language
func (p *Product) NameFor(lang shared.Language) string {
	if lang == shared.LanguageAlbanian && p.NameSq != "" {
		return p.NameSq
	}
	return p.Name
}

// SetDescription sets the bilingual descriptions
func (p *Product) SetDescription(description, descriptionSq string) {
	p.Description = description
	p.DescriptionSq = descriptionSq
	p.UpdatedAt = time.Now()
}

// SetPrice updates the product price
func (p *Product) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	p.Price = price.Amount()
	p.UpdatedAt = time.Now()
	return nil
}

// AdjustStock changes the stock level by delta, refusing to go negative
func (p *Product) AdjustStock(delta int) error {
	if p.Stock+delta < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Product stock cannot go negative")
	}
	p.Stock += delta
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

// Activate shows the product in the storefront
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

// GetPriceMoney returns the price as Money
func (p *Product) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(p.Price)
}
