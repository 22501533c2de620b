package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one financial operation by a reader (membership fee, fine,
// damage compensation, ...), optionally tied to a loan.
type Payment struct {
	ID              int64           `json:"id" db:"id"`
	ReaderID        int64           `json:"reader_id" db:"reader_id"`
	OperationTypeID int64           `json:"operation_type_id" db:"operation_type_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate     time.Time       `json:"payment_date" db:"payment_date"`
	PaymentMethod   *string         `json:"payment_method,omitempty" db:"payment_method"`
	TransactionID   *string         `json:"transaction_id,omitempty" db:"transaction_id"`
	Description     *string         `json:"description,omitempty" db:"description"`
	RelatedLoanID   *int64          `json:"related_loan_id,omitempty" db:"related_loan_id"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

type CreatePaymentRequest struct {
	ReaderID        int64           `json:"reader_id" validate:"required,gt=0"`
	OperationTypeID int64           `json:"operation_type_id" validate:"required,gt=0"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	PaymentDate     *time.Time      `json:"payment_date"`
	PaymentMethod   *string         `json:"payment_method" validate:"omitempty,max=50"`
	TransactionID   *string         `json:"transaction_id" validate:"omitempty,max=100"`
	Description     *string         `json:"description"`
	RelatedLoanID   *int64          `json:"related_loan_id" validate:"omitempty,gt=0"`
}

type UpdatePaymentRequest struct {
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
	Description   *string `json:"description"`
}

// PayFineRequest settles the fine on a loan.
type PayFineRequest struct {
	PaymentMethod *string    `json:"payment_method" validate:"omitempty,max=50"`
	PaymentDate   *time.Time `json:"payment_date"`
}
