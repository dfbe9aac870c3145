package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is empty or not whitelisted.
// Sort fields are interpolated into the ORDER BY clause, so anything not in
// the whitelist must never reach the query.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"status":       true,
	"type":         true,
	"subtotal":     true,
	"total":        true,
	"shipped_at":   true,
	"delivered_at": true,
}

// RepairSortFields contains allowed sort fields for repairs
var RepairSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"repair_number":   true,
	"device_type":     true,
	"status":          true,
	"urgency":         true,
	"is_easy_mail_in": true,
	"estimated_value": true,
	"completed_at":    true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"name_sq":    true,
	"category":   true,
	"price":      true,
	"stock":      true,
	"is_active":  true,
}
