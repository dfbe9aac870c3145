package timeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/shared"
)

// OwnerType identifies the kind of aggregate a timeline entry belongs to
type OwnerType string

const (
	OwnerOrder  OwnerType = "ORDER"
	OwnerRepair OwnerType = "REPAIR"
)

// IsValid checks if the owner type is known
func (t OwnerType) IsValid() bool {
	return t == OwnerOrder || t == OwnerRepair
}

// Entry is an append-only status/audit record attached to exactly one order
// or repair. Entries are never edited or deleted; customers see only entries
// flagged visible, admins see everything.
type Entry struct {
	ID            uuid.UUID
	OwnerType     OwnerType
	OwnerID       uuid.UUID
	Title         string
	TitleSq       string
	Description   string
	DescriptionSq string
	Status        string
	Icon          string
	IsVisible     bool
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
}

// NewEntry creates a new timeline entry for the given owner
func NewEntry(ownerType OwnerType, ownerID uuid.UUID, title, titleSq, description, descriptionSq, status, icon string) (*Entry, error) {
	if !ownerType.IsValid() {
		return nil, shared.NewDomainError("INVALID_OWNER_TYPE", "Timeline owner type must be ORDER or REPAIR")
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Timeline owner ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Timeline entry title cannot be empty")
	}
	if titleSq == "" {
		titleSq = title
	}
	if descriptionSq == "" {
		descriptionSq = description
	}

	return &Entry{
		ID:            uuid.New(),
		OwnerType:     ownerType,
		OwnerID:       ownerID,
		Title:         title,
		TitleSq:       titleSq,
		Description:   description,
		DescriptionSq: descriptionSq,
		Status:        status,
		Icon:          icon,
		IsVisible:     true,
		CreatedAt:     time.Now(),
	}, nil
}

// SetCreatedBy records the user who caused this entry
func (e *Entry) SetCreatedBy(userID uuid.UUID) {
	e.CreatedBy = &userID
}

// Hide marks the entry as internal (not shown to customers)
func (e *Entry) Hide() {
	e.IsVisible = false
}

// TitleFor returns the title in the requested language
func (e *Entry) TitleFor(lang shared.Language) string {
	if lang == shared.LanguageAlbanian {
		return e.TitleSq
	}
	return e.Title
}

// DescriptionFor returns the description in the requested language
func (e *Entry) DescriptionFor(lang shared.Language) string {
	if lang == shared.LanguageAlbanian {
		return e.DescriptionSq
	}
	return e.Description
}
