package domain

// Book copy status codes
const (
	BookStatusAvailable  = "AVAILABLE"
	BookStatusLoaned     = "LOANED"
	BookStatusReserved   = "RESERVED"
	BookStatusLost       = "LOST"
	BookStatusDamaged    = "DAMAGED"
	BookStatusWrittenOff = "WRITTEN_OFF"
)

// Loan status codes
const (
	LoanStatusActive   = "ACTIVE"
	LoanStatusReturned = "RETURNED"
	LoanStatusOverdue  = "OVERDUE"
	LoanStatusLost     = "LOST"
)

// Payment operation type codes
const (
	OperationMembership  = "MEMBERSHIP"
	OperationFine        = "FINE"
	OperationDamage      = "DAMAGE"
	OperationCopy        = "COPY"
	OperationReservation = "RESERVATION"
)

// EditionType classifies publications (book, journal, newspaper, ...).
type EditionType struct {
	ID            int64   `json:"id" db:"id"`
	Code          string  `json:"code" db:"code"`
	Name          string  `json:"name" db:"name"`
	Description   *string `json:"description,omitempty" db:"description"`
	GostReference *string `json:"gost_reference,omitempty" db:"gost_reference"`
}

// Language is an ISO 639 publication language.
type Language struct {
	ID      int64  `json:"id" db:"id"`
	ISOCode string `json:"iso_code" db:"iso_code"`
	Name    string `json:"name" db:"name"`
}

// Country is an ISO 3166 country.
type Country struct {
	ID      int64  `json:"id" db:"id"`
	ISOCode string `json:"iso_code" db:"iso_code"`
	Name    string `json:"name" db:"name"`
}

type City struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	CountryID int64  `json:"country_id" db:"country_id"`
}

type Publisher struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	CityID  *int64  `json:"city_id,omitempty" db:"city_id"`
	Address *string `json:"address,omitempty" db:"address"`
	Website *string `json:"website,omitempty" db:"website"`
}

// ReaderCategory is the policy bucket a reader belongs to. LoanLimit caps
// concurrently open loans, LoanPeriod is the default lending period in days.
type ReaderCategory struct {
	ID              int64  `json:"id" db:"id"`
	Code            string `json:"code" db:"code"`
	Name            string `json:"name" db:"name"`
	LoanLimit       int    `json:"loan_limit" db:"loan_limit"`
	LoanPeriod      int    `json:"loan_period" db:"loan_period"`
	HasRemoteAccess bool   `json:"has_remote_access" db:"has_remote_access"`
}

type BookStatus struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}

type LoanStatus struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}

type OperationType struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}

// DTOs for requests

type EditionTypeRequest struct {
	Code          string  `json:"code" validate:"required,max=20"`
	Name          string  `json:"name" validate:"required,max=100"`
	Description   *string `json:"description"`
	GostReference *string `json:"gost_reference" validate:"omitempty,max=50"`
}

type LanguageRequest struct {
	ISOCode string `json:"iso_code" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=50"`
}

type CountryRequest struct {
	ISOCode string `json:"iso_code" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=100"`
}

type CityRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	CountryID int64  `json:"country_id" validate:"required,gt=0"`
}

type PublisherRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	CityID  *int64  `json:"city_id" validate:"omitempty,gt=0"`
	Address *string `json:"address"`
	Website *string `json:"website" validate:"omitempty,max=200"`
}

type ReaderCategoryRequest struct {
	Code            string `json:"code" validate:"required,max=20"`
	Name            string `json:"name" validate:"required,max=100"`
	LoanLimit       int    `json:"loan_limit" validate:"required,gt=0"`
	LoanPeriod      int    `json:"loan_period" validate:"required,gt=0"`
	HasRemoteAccess bool   `json:"has_remote_access"`
}

type CodeNameRequest struct {
	Code string `json:"code" validate:"required,max=20"`
	Name string `json:"name" validate:"required,max=100"`
}
