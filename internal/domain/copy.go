package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookCopy is one physical or electronic unit of a Book. Its current status
// must reflect at most one open loan at any time; the LOANED/AVAILABLE
// transition is owned by the loan lifecycle, write-off is administrative.
type BookCopy struct {
	ID                int64            `json:"id" db:"id"`
	BookID            int64            `json:"book_id" db:"book_id"`
	InventoryNumber   string           `json:"inventory_number" db:"inventory_number"`
	Barcode           *string          `json:"barcode,omitempty" db:"barcode"`
	CopyNumber        int              `json:"copy_number" db:"copy_number"`
	AcquisitionDate   time.Time        `json:"acquisition_date" db:"acquisition_date"`
	AcquisitionSource *string          `json:"acquisition_source,omitempty" db:"acquisition_source"`
	Price             *decimal.Decimal `json:"price,omitempty" db:"price"`
	Location          *string          `json:"location,omitempty" db:"location"`
	CurrentStatusID   int64            `json:"current_status_id" db:"current_status_id"`
	ConditionNotes    *string          `json:"condition_notes,omitempty" db:"condition_notes"`
	WriteOffDate      *time.Time       `json:"write_off_date,omitempty" db:"write_off_date"`
	WriteOffReason    *string          `json:"write_off_reason,omitempty" db:"write_off_reason"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
}

type CreateBookCopyRequest struct {
	BookID            int64            `json:"book_id" validate:"required,gt=0"`
	InventoryNumber   string           `json:"inventory_number" validate:"required,max=50"`
	Barcode           *string          `json:"barcode" validate:"omitempty,max=100"`
	CopyNumber        int              `json:"copy_number" validate:"omitempty,gte=1"`
	AcquisitionDate   *time.Time       `json:"acquisition_date"`
	AcquisitionSource *string          `json:"acquisition_source" validate:"omitempty,max=200"`
	Price             *decimal.Decimal `json:"price"`
	Location          *string          `json:"location" validate:"omitempty,max=100"`
	ConditionNotes    *string          `json:"condition_notes"`
}

type UpdateBookCopyRequest struct {
	Barcode           *string          `json:"barcode" validate:"omitempty,max=100"`
	CopyNumber        *int             `json:"copy_number" validate:"omitempty,gte=1"`
	AcquisitionSource *string          `json:"acquisition_source" validate:"omitempty,max=200"`
	Price             *decimal.Decimal `json:"price"`
	Location          *string          `json:"location" validate:"omitempty,max=100"`
	ConditionNotes    *string          `json:"condition_notes"`
}

// WriteOffCopyRequest removes a copy from circulation administratively.
type WriteOffCopyRequest struct {
	Reason       string     `json:"reason" validate:"required"`
	WriteOffDate *time.Time `json:"write_off_date"`
}
