package domain

import (
	"fmt"
	"strings"
)

type Address struct {
	Name       string `json:"name" form:"name"`
	Phone      string `json:"phone" form:"phone"`
	Email      string `json:"email" form:"email"`
	Address    string `json:"address" form:"address"`
	City       string `json:"city" form:"city"`
	PostalCode string `json:"postalCode" form:"postalCode"`
}

// MissingFieldsError lists the form fields left blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Normalize trims every field.
func (a Address) Normalize() Address {
	return Address{
		Name:       strings.TrimSpace(a.Name),
		Phone:      strings.TrimSpace(a.Phone),
		Email:      strings.TrimSpace(a.Email),
		Address:    strings.TrimSpace(a.Address),
		City:       strings.TrimSpace(a.City),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// Validate requires every field to be non-blank.
func (a Address) Validate() error {
	a = a.Normalize()
	var missing []string
	for _, f := range []struct{ name, v string }{
		{"name", a.Name},
		{"phone", a.Phone},
		{"email", a.Email},
		{"address", a.Address},
		{"city", a.City},
		{"postalCode", a.PostalCode},
	} {
		if f.v == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}
