package domain

import "time"

// Reservation status values
const (
	ReservationStatusActive    = "active"
	ReservationStatusFulfilled = "fulfilled"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusExpired   = "expired"
)

// Reservation queues a reader for a book. Priority is carried as data but
// does not block renewals.
type Reservation struct {
	ID              int64      `json:"id" db:"id"`
	BookID          int64      `json:"book_id" db:"book_id"`
	ReaderID        int64      `json:"reader_id" db:"reader_id"`
	ReservationDate time.Time  `json:"reservation_date" db:"reservation_date"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty" db:"expiration_date"`
	Status          string     `json:"status" db:"status"`
	Priority        *int       `json:"priority,omitempty" db:"priority"`
	Notes           *string    `json:"notes,omitempty" db:"notes"`
}

type CreateReservationRequest struct {
	BookID         int64      `json:"book_id" validate:"required,gt=0"`
	ReaderID       int64      `json:"reader_id" validate:"required,gt=0"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Priority       *int       `json:"priority" validate:"omitempty,gte=1"`
	Notes          *string    `json:"notes"`
}

type UpdateReservationRequest struct {
	ExpirationDate *time.Time `json:"expiration_date"`
	Status         *string    `json:"status" validate:"omitempty,oneof=active fulfilled cancelled expired"`
	Priority       *int       `json:"priority" validate:"omitempty,gte=1"`
	Notes          *string    `json:"notes"`
}
