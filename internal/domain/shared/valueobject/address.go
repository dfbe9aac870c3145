package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Address is a value object representing a shipping address.
// It is serialized as a JSON column on the owning aggregate.
type Address struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// NewAddress creates a validated shipping address
func NewAddress(fullName, street, city, postalCode, country, phone string) (Address, error) {
	a := Address{
		FullName:   strings.TrimSpace(fullName),
		Street:     strings.TrimSpace(street),
		City:       strings.TrimSpace(city),
		PostalCode: strings.TrimSpace(postalCode),
		Country:    strings.TrimSpace(country),
		Phone:      strings.TrimSpace(phone),
	}
	if a.FullName == "" {
		return Address{}, errors.New("address full name cannot be empty")
	}
	if a.Street == "" {
		return Address{}, errors.New("address street cannot be empty")
	}
	if a.City == "" {
		return Address{}, errors.New("address city cannot be empty")
	}
	if a.Country == "" {
		a.Country = "AL"
	}
	return a, nil
}

// IsZero returns true if the address is unset
func (a Address) IsZero() bool {
	return a.FullName == "" && a.Street == "" && a.City == ""
}

// String returns a single-line representation of the address
func (a Address) String() string {
	parts := []string{a.FullName, a.Street, a.City}
	if a.PostalCode != "" {
		parts = append(parts, a.PostalCode)
	}
	parts = append(parts, a.Country)
	return strings.Join(parts, ", ")
}

// Value implements driver.Valuer, storing the address as JSON
func (a Address) Value() (driver.Value, error) {
	if a.IsZero() {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner, reading the address from a JSON column
func (a *Address) Scan(value any) error {
	if value == nil {
		*a = Address{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Address", value)
	}
	return json.Unmarshal(data, a)
}
