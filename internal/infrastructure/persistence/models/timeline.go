package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/timeline"
)

// TimelineEntryModel is the persistence model for a timeline entry. Entries
// are append-only: the table has no updated_at and rows are never modified.
type TimelineEntryModel struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key"`
	OwnerType     timeline.OwnerType `gorm:"type:varchar(10);not null;index:idx_timeline_owner,priority:1"`
	OwnerID       uuid.UUID          `gorm:"type:uuid;not null;index:idx_timeline_owner,priority:2"`
	Title         string             `gorm:"type:varchar(200);not null"`
	TitleSq       string             `gorm:"type:varchar(200);not null"`
	Description   string             `gorm:"type:text"`
	DescriptionSq string             `gorm:"type:text"`
	Status        string             `gorm:"type:varchar(20)"`
	Icon          string             `gorm:"type:varchar(30)"`
	IsVisible     bool               `gorm:"not null;default:true"`
	CreatedBy     *uuid.UUID         `gorm:"type:uuid"`
	CreatedAt     time.Time          `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TimelineEntryModel) TableName() string {
	return "timeline_entries"
}

// ToDomain converts the persistence model to a domain Entry
func (m *TimelineEntryModel) ToDomain() *timeline.Entry {
	return &timeline.Entry{
		ID:            m.ID,
		OwnerType:     m.OwnerType,
		OwnerID:       m.OwnerID,
		Title:         m.Title,
		TitleSq:       m.TitleSq,
		Description:   m.Description,
		DescriptionSq: m.DescriptionSq,
		Status:        m.Status,
		Icon:          m.Icon,
		IsVisible:     m.IsVisible,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Entry
func (m *TimelineEntryModel) FromDomain(e *timeline.Entry) {
	m.ID = e.ID
	m.OwnerType = e.OwnerType
	m.OwnerID = e.OwnerID
	m.Title = e.Title
	m.TitleSq = e.TitleSq
	m.Description = e.Description
	m.DescriptionSq = e.DescriptionSq
	m.Status = e.Status
	m.Icon = e.Icon
	m.IsVisible = e.IsVisible
	m.CreatedBy = e.CreatedBy
	m.CreatedAt = e.CreatedAt
}

// TimelineEntryModelFromDomain creates a new persistence model from a domain Entry
func TimelineEntryModelFromDomain(e *timeline.Entry) *TimelineEntryModel {
	m := &TimelineEntryModel{}
	m.FromDomain(e)
	return m
}
