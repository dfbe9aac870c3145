package models

import (
	"github.com/playbase/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product aggregate root.
type ProductModel struct {
	AggregateModel
	Name          string           `gorm:"type:varchar(200);not null"`
	NameSq        string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	DescriptionSq string           `gorm:"type:text"`
	Category      catalog.Category `gorm:"type:varchar(20);not null;index"`
	Price         decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Stock         int              `gorm:"not null;default:0"`
	ImageURL      string           `gorm:"type:varchar(500)"`
	IsActive      bool             `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		NameSq:            m.NameSq,
		Description:       m.Description,
		DescriptionSq:     m.DescriptionSq,
		Category:          m.Category,
		Price:             m.Price,
		Stock:             m.Stock,
		ImageURL:          m.ImageURL,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.NameSq = p.NameSq
	m.Description = p.Description
	m.DescriptionSq = p.DescriptionSq
	m.Category = p.Category
	m.Price = p.Price
	m.Stock = p.Stock
	m.ImageURL = p.ImageURL
	m.IsActive = p.IsActive
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// SavedConfigModel is the persistence model for a saved configurator result.
type SavedConfigModel struct {
	OwnedAggregateModel
	Kind       catalog.ConfigKind `gorm:"type:varchar(5);not null;index"`
	Name       string             `gorm:"type:varchar(100);not null"`
	Components string             `gorm:"type:jsonb;not null"`
	TotalPrice decimal.Decimal    `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (SavedConfigModel) TableName() string {
	return "saved_configs"
}

// ToDomain converts the persistence model to a domain SavedConfig
func (m *SavedConfigModel) ToDomain() *catalog.SavedConfig {
	return &catalog.SavedConfig{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Kind:               m.Kind,
		Name:               m.Name,
		Components:         m.Components,
		TotalPrice:         m.TotalPrice,
	}
}

// FromDomain populates the persistence model from a domain SavedConfig
func (m *SavedConfigModel) FromDomain(c *catalog.SavedConfig) {
	m.FromDomainOwnedAggregateRoot(c.OwnedAggregateRoot)
	m.Kind = c.Kind
	m.Name = c.Name
	m.Components = c.Components
	m.TotalPrice = c.TotalPrice
}

// SavedConfigModelFromDomain creates a new persistence model from a domain SavedConfig
func SavedConfigModelFromDomain(c *catalog.SavedConfig) *SavedConfigModel {
	m := &SavedConfigModel{}
	m.FromDomain(c)
	return m
}
