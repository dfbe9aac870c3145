package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/repair"
	"github.com/playbase/backend/internal/domain/shared"
	"github.com/playbase/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// RepairModel is the persistence model for the Repair aggregate root.
type RepairModel struct {
	OwnedAggregateModel
	RepairNumber       string              `gorm:"type:varchar(30);not null;uniqueIndex"`
	DeviceType         string              `gorm:"type:varchar(100);not null"`
	DeviceModel        string              `gorm:"type:varchar(100)"`
	IssueDescription   string              `gorm:"type:text;not null"`
	Urgency            repair.Urgency      `gorm:"type:varchar(10);not null"`
	Status             repair.Status       `gorm:"type:varchar(20);not null;index"`
	IsEasyMailIn       bool                `gorm:"not null;default:false"`
	EstimatedValue     *decimal.Decimal    `gorm:"type:decimal(12,2)"`
	AssignedTechnician *uuid.UUID          `gorm:"type:uuid;index"`
	ShippingAddress    valueobject.Address `gorm:"type:jsonb"`
	Language           shared.Language     `gorm:"type:varchar(2);not null;default:'sq'"`
	CompletedAt        *time.Time
	CancelledAt        *time.Time
}

// TableName returns the table name for GORM
func (RepairModel) TableName() string {
	return "repairs"
}

// ToDomain converts the persistence model to a domain Repair aggregate.
func (m *RepairModel) ToDomain() *repair.Repair {
	return &repair.Repair{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		RepairNumber:       m.RepairNumber,
		DeviceType:         m.DeviceType,
		DeviceModel:        m.DeviceModel,
		IssueDescription:   m.IssueDescription,
		Urgency:            m.Urgency,
		Status:             m.Status,
		IsEasyMailIn:       m.IsEasyMailIn,
		EstimatedValue:     m.EstimatedValue,
		AssignedTechnician: m.AssignedTechnician,
		ShippingAddress:    m.ShippingAddress,
		Language:           m.Language,
		CompletedAt:        m.CompletedAt,
		CancelledAt:        m.CancelledAt,
	}
}

// FromDomain populates the persistence model from a domain Repair aggregate.
func (m *RepairModel) FromDomain(r *repair.Repair) {
	m.FromDomainOwnedAggregateRoot(r.OwnedAggregateRoot)
	m.RepairNumber = r.RepairNumber
	m.DeviceType = r.DeviceType
	m.DeviceModel = r.DeviceModel
	m.IssueDescription = r.IssueDescription
	m.Urgency = r.Urgency
	m.Status = r.Status
	m.IsEasyMailIn = r.IsEasyMailIn
	m.EstimatedValue = r.EstimatedValue
	m.AssignedTechnician = r.AssignedTechnician
	m.ShippingAddress = r.ShippingAddress
	m.Language = r.Language
	m.CompletedAt = r.CompletedAt
	m.CancelledAt = r.CancelledAt
}

// RepairModelFromDomain creates a new persistence model from a domain Repair
func RepairModelFromDomain(r *repair.Repair) *RepairModel {
	m := &RepairModel{}
	m.FromDomain(r)
	return m
}
