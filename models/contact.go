package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	MiddleName   string     `json:"middle_name"`
	LastName     string     `json:"last_name"`
	Company      string     `json:"company"`
	Job          string     `json:"job"`
	ContactType  string     `json:"contact_type"`
	PhoneType    string     `json:"phone_type"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Website      string     `json:"website"`
	AddressLine1 string     `json:"address_line_1"`
	AddressLine2 string     `json:"address_line_2"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	ZipCode      string     `json:"zip_code"`
	Country      string     `json:"country"`
	Notes        string     `json:"notes"`
	IsActive     bool       `json:"is_active"`
	CreatedByID  string     `json:"created_by_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// FullName joins the non-empty name parts with single spaces
func (c *Contact) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

type CreateContactRequest struct {
	FirstName    string `json:"first_name" validate:"omitempty,max=255"`
	MiddleName   string `json:"middle_name" validate:"omitempty,max=255"`
	LastName     string `json:"last_name" validate:"omitempty,max=255"`
	Company      string `json:"company" validate:"omitempty,max=255"`
	Job          string `json:"job" validate:"omitempty,max=255"`
	ContactType  string `json:"contact_type" validate:"required,max=64"`
	PhoneType    string `json:"phone_type" validate:"required,max=64"`
	Phone        string `json:"phone" validate:"omitempty,max=64"`
	Email        string `json:"email" validate:"omitempty,email"`
	Website      string `json:"website" validate:"omitempty,url"`
	AddressLine1 string `json:"address_line_1" validate:"omitempty,max=255"`
	AddressLine2 string `json:"address_line_2" validate:"omitempty,max=255"`
	City         string `json:"city" validate:"omitempty,max=255"`
	State        string `json:"state" validate:"omitempty,max=255"`
	ZipCode      string `json:"zip_code" validate:"omitempty,max=32"`
	Country      string `json:"country" validate:"omitempty,max=255"`
	Notes        string `json:"notes"`
}

// UpdateContactRequest uses pointers so absent fields are left untouched
type UpdateContactRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,max=255"`
	MiddleName   *string `json:"middle_name" validate:"omitempty,max=255"`
	LastName     *string `json:"last_name" validate:"omitempty,max=255"`
	Company      *string `json:"company" validate:"omitempty,max=255"`
	Job          *string `json:"job" validate:"omitempty,max=255"`
	ContactType  *string `json:"contact_type" validate:"omitempty,max=64"`
	PhoneType    *string `json:"phone_type" validate:"omitempty,max=64"`
	Phone        *string `json:"phone" validate:"omitempty,max=64"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Website      *string `json:"website" validate:"omitempty,url"`
	AddressLine1 *string `json:"address_line_1" validate:"omitempty,max=255"`
	AddressLine2 *string `json:"address_line_2" validate:"omitempty,max=255"`
	City         *string `json:"city" validate:"omitempty,max=255"`
	State        *string `json:"state" validate:"omitempty,max=255"`
	ZipCode      *string `json:"zip_code" validate:"omitempty,max=32"`
	Country      *string `json:"country" validate:"omitempty,max=255"`
	Notes        *string `json:"notes"`
	IsActive     *bool   `json:"is_active"`
}

type BatchCreateContactsRequest struct {
	Contacts []CreateContactRequest `json:"contacts" validate:"required,min=1,dive"`
	FileName string                 `json:"file_name" validate:"omitempty,max=255"`
}

type SearchRequest struct {
	Filters map[string]any `json:"filters" validate:"required"`
}
