package domain

import "time"

// Reader is a registered library member.
type Reader struct {
	ID         int64      `json:"id" db:"id"`
	LastName   string     `json:"last_name" db:"last_name"`
	FirstName  string     `json:"first_name" db:"first_name"`
	MiddleName *string    `json:"middle_name,omitempty" db:"middle_name"`
	BirthDate  *time.Time `json:"birth_date,omitempty" db:"birth_date"`

	CategoryID int64 `json:"category_id" db:"category_id"`

	Phone   *string `json:"phone,omitempty" db:"phone"`
	Email   *string `json:"email,omitempty" db:"email"`
	Address *string `json:"address,omitempty" db:"address"`

	DocumentType       *string    `json:"document_type,omitempty" db:"document_type"`
	DocumentNumber     *string    `json:"document_number,omitempty" db:"document_number"`
	DocumentIssuedBy   *string    `json:"document_issued_by,omitempty" db:"document_issued_by"`
	DocumentIssuedDate *time.Time `json:"document_issued_date,omitempty" db:"document_issued_date"`

	RegistrationDate time.Time  `json:"registration_date" db:"registration_date"`
	CardExpiryDate   *time.Time `json:"card_expiry_date,omitempty" db:"card_expiry_date"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	Notes            *string    `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

type CreateReaderRequest struct {
	LastName           string     `json:"last_name" validate:"required,max=100"`
	FirstName          string     `json:"first_name" validate:"required,max=100"`
	MiddleName         *string    `json:"middle_name" validate:"omitempty,max=100"`
	BirthDate          *time.Time `json:"birth_date"`
	CategoryID         int64      `json:"category_id" validate:"required,gt=0"`
	Phone              *string    `json:"phone" validate:"omitempty,max=20"`
	Email              *string    `json:"email" validate:"omitempty,email,max=100"`
	Address            *string    `json:"address"`
	DocumentType       *string    `json:"document_type" validate:"omitempty,max=50"`
	DocumentNumber     *string    `json:"document_number" validate:"omitempty,max=50"`
	DocumentIssuedBy   *string    `json:"document_issued_by"`
	DocumentIssuedDate *time.Time `json:"document_issued_date"`
	CardExpiryDate     *time.Time `json:"card_expiry_date"`
	Notes              *string    `json:"notes"`
}

// UpdateReaderRequest enumerates every patchable reader field. Absent fields
// stay untouched; unknown fields are rejected at decode time.
type UpdateReaderRequest struct {
	LastName           *string    `json:"last_name" validate:"omitempty,max=100"`
	FirstName          *string    `json:"first_name" validate:"omitempty,max=100"`
	MiddleName         *string    `json:"middle_name" validate:"omitempty,max=100"`
	BirthDate          *time.Time `json:"birth_date"`
	CategoryID         *int64     `json:"category_id" validate:"omitempty,gt=0"`
	Phone              *string    `json:"phone" validate:"omitempty,max=20"`
	Email              *string    `json:"email" validate:"omitempty,email,max=100"`
	Address            *string    `json:"address"`
	DocumentType       *string    `json:"document_type" validate:"omitempty,max=50"`
	DocumentNumber     *string    `json:"document_number" validate:"omitempty,max=50"`
	DocumentIssuedBy   *string    `json:"document_issued_by"`
	DocumentIssuedDate *time.Time `json:"document_issued_date"`
	CardExpiryDate     *time.Time `json:"card_expiry_date"`
	IsActive           *bool      `json:"is_active"`
	Notes              *string    `json:"notes"`
}

// ReaderSearchFilter mirrors the /search/readers query parameters.
type ReaderSearchFilter struct {
	LastName  string
	FirstName string
	Phone     string
	Email     string
	IsActive  *bool
}

type ReaderSearchResponse struct {
	Found   int       `json:"found"`
	Readers []*Reader `json:"readers"`
}
