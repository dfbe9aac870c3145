package repair

import (
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/repair"
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

// CreateRepairRequest represents a request to open a repair
type CreateRepairRequest struct {
	DeviceType       string          `json:"device_type" binding:"required,min=1,max=100"`
	DeviceModel      string          `json:"device_model" binding:"max=100"`
	IssueDescription string          `json:"issue_description" binding:"required,min=10,max=5000"`
	Urgency          string          `json:"urgency" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	IsEasyMailIn     bool            `json:"is_easy_mail_in"`
	Address          *AddressRequest `json:"address"`
	Language         string          `json:"language" binding:"omitempty,oneof=sq en"`
}

// UpdateRepairStatusRequest represents an admin status transition
type UpdateRepairStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING RECEIVED DIAGNOSING IN_PROGRESS COMPLETED READY_FOR_PICKUP CANCELLED"`
}

// AssignTechnicianRequest represents a technician assignment
type AssignTechnicianRequest struct {
	TechnicianID uuid.UUID `json:"technician_id" binding:"required"`
}

// SetEstimatedValueRequest represents an estimated device value update
type SetEstimatedValueRequest struct {
	Value decimal.Decimal `json:"value" binding:"required"`
}

// RepairListFilter represents filter options for repair lists
type RepairListFilter struct {
	Status       string `form:"status" binding:"omitempty,oneof=PENDING RECEIVED DIAGNOSING IN_PROGRESS COMPLETED READY_FOR_PICKUP CANCELLED"`
	Urgency      string `form:"urgency" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	IsEasyMailIn *bool  `form:"is_easy_mail_in"`
	Search       string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// RepairResponse represents a repair in API responses
type RepairResponse struct {
	ID                 uuid.UUID        `json:"id"`
	RepairNumber       string           `json:"repair_number"`
	UserID             uuid.UUID        `json:"user_id"`
	DeviceType         string           `json:"device_type"`
	DeviceModel        string           `json:"device_model,omitempty"`
	IssueDescription   string           `json:"issue_description"`
	Urgency            string           `json:"urgency"`
	Status             string           `json:"status"`
	IsEasyMailIn       bool             `json:"is_easy_mail_in"`
	EstimatedValue     *decimal.Decimal `json:"estimated_value,omitempty"`
	AssignedTechnician *uuid.UUID       `json:"assigned_technician,omitempty"`
	ShippingAddress    *AddressRequest  `json:"shipping_address,omitempty"`
	Language           string           `json:"language"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	Version            int              `json:"version"`
}

// RepairListResponse represents a list item for repairs
type RepairListResponse struct {
	ID           uuid.UUID `json:"id"`
	RepairNumber string    `json:"repair_number"`
	DeviceType   string    `json:"device_type"`
	Urgency      string    `json:"urgency"`
	Status       string    `json:"status"`
	IsEasyMailIn bool      `json:"is_easy_mail_in"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToRepairResponse converts a domain Repair to RepairResponse
func ToRepairResponse(r *repair.Repair) RepairResponse {
	resp := RepairResponse{
		ID:                 r.ID,
		RepairNumber:       r.RepairNumber,
		UserID:             r.UserID,
		DeviceType:         r.DeviceType,
		DeviceModel:        r.DeviceModel,
		IssueDescription:   r.IssueDescription,
		Urgency:            r.Urgency.String(),
		Status:             r.Status.String(),
		IsEasyMailIn:       r.IsEasyMailIn,
		EstimatedValue:     r.EstimatedValue,
		AssignedTechnician: r.AssignedTechnician,
		Language:           string(r.Language),
		CompletedAt:        r.CompletedAt,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		Version:            r.Version,
	}
	if !r.ShippingAddress.IsZero() {
		resp.ShippingAddress = &AddressRequest{
			FullName:   r.ShippingAddress.FullName,
			Street:     r.ShippingAddress.Street,
			City:       r.ShippingAddress.City,
			PostalCode: r.ShippingAddress.PostalCode,
			Country:    r.ShippingAddress.Country,
			Phone:      r.ShippingAddress.Phone,
		}
	}
	return resp
}

// ToRepairListResponse converts a domain Repair to RepairListResponse
func ToRepairListResponse(r *repair.Repair) RepairListResponse {
	return RepairListResponse{
		ID:           r.ID,
		RepairNumber: r.RepairNumber,
		DeviceType:   r.DeviceType,
		Urgency:      r.Urgency.String(),
		Status:       r.Status.String(),
		IsEasyMailIn: r.IsEasyMailIn,
		CreatedAt:    r.CreatedAt,
	}
}
