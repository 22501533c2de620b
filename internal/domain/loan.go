package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/utils"
)

// Loan is one lending transaction of a BookCopy to a Reader.
//
// Lifecycle: created ACTIVE, closed by return (RETURNED) or loss (LOST);
// both closed states are terminal. Overdue-ness is a computed predicate,
// never persisted.
type Loan struct {
	ID          int64  `json:"id" db:"id"`
	BookCopyID  int64  `json:"book_copy_id" db:"book_copy_id"`
	ReaderID    int64  `json:"reader_id" db:"reader_id"`
	LibrarianID *int64 `json:"librarian_id,omitempty" db:"librarian_id"`

	LoanDate   time.Time  `json:"loan_date" db:"loan_date"`
	DueDate    time.Time  `json:"due_date" db:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty" db:"return_date"`

	StatusID int64 `json:"status_id" db:"status_id"`

	RenewalCount    int        `json:"renewal_count" db:"renewal_count"`
	LastRenewalDate *time.Time `json:"last_renewal_date,omitempty" db:"last_renewal_date"`

	FineAmount      decimal.Decimal `json:"fine_amount" db:"fine_amount"`
	FinePaid        bool            `json:"fine_paid" db:"fine_paid"`
	FinePaymentDate *time.Time      `json:"fine_payment_date,omitempty" db:"fine_payment_date"`

	Notes *string `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// IsClosed reports whether the loan has reached a terminal state.
func (l *Loan) IsClosed() bool {
	return l.ReturnDate != nil
}

// IsOverdue reports whether the loan is past due and still open as of the
// given date. Display-only: OVERDUE is never written to storage.
func (l *Loan) IsOverdue(asOf time.Time) bool {
	return l.ReturnDate == nil && utils.IsDateOverdue(l.DueDate, asOf)
}

// FinePolicy holds the fine parameters. Loaded once from configuration and
// passed into the loan service at construction.
type FinePolicy struct {
	PerDay     decimal.Decimal
	GraceDays  int
	MaxDays    int
	MaxFine    decimal.Decimal
	LostCharge decimal.Decimal
}

// DefaultFinePolicy mirrors the stock parameters: 10.00 per day after a
// 3-day grace period, billed for at most 30 days and capped at 300.00.
func DefaultFinePolicy() FinePolicy {
	return FinePolicy{
		PerDay:     decimal.NewFromFloat(10.0),
		GraceDays:  3,
		MaxDays:    30,
		MaxFine:    decimal.NewFromFloat(300.0),
		LostCharge: decimal.NewFromFloat(300.0),
	}
}

// Calculate returns the overdue fine for a loan due on dueDate and evaluated
// at evaluatedAt (the return date, or today for a still-open loan).
// The result is always >= 0 and <= MaxFine.
func (p FinePolicy) Calculate(dueDate, evaluatedAt time.Time) decimal.Decimal {
	if !utils.IsDateOverdue(dueDate, evaluatedAt) {
		return decimal.Zero
	}

	daysLate := utils.DaysBetween(dueDate, evaluatedAt) - p.GraceDays
	if daysLate < 0 {
		daysLate = 0
	}
	if daysLate > p.MaxDays {
		daysLate = p.MaxDays
	}

	fine := p.PerDay.Mul(decimal.NewFromInt(int64(daysLate)))
	return utils.MinDecimal(fine, p.MaxFine)
}

// FineAt evaluates the fine for this loan as of the given date, using the
// actual return date when the loan is already closed.
func (l *Loan) FineAt(p FinePolicy, asOf time.Time) decimal.Decimal {
	evaluatedAt := asOf
	if l.ReturnDate != nil {
		evaluatedAt = *l.ReturnDate
	}
	return p.Calculate(l.DueDate, evaluatedAt)
}

// DTOs for requests and responses

type CreateLoanRequest struct {
	BookCopyID  int64      `json:"book_copy_id" validate:"required,gt=0"`
	ReaderID    int64      `json:"reader_id" validate:"required,gt=0"`
	LibrarianID *int64     `json:"librarian_id" validate:"omitempty,gt=0"`
	LoanDate    *time.Time `json:"loan_date"`
	DueDate     *time.Time `json:"due_date"`
	Notes       *string    `json:"notes"`
}

type RenewLoanRequest struct {
	DueDate *time.Time `json:"due_date"`
}

type ReturnLoanRequest struct {
	ReturnDate *time.Time `json:"return_date"`
}

type MarkLostRequest struct {
	Notes *string `json:"notes"`
}

// UpdateLoanRequest patches the annotation fields only; lifecycle fields move
// through the dedicated renew/return/lost/fine operations.
type UpdateLoanRequest struct {
	LibrarianID *int64  `json:"librarian_id" validate:"omitempty,gt=0"`
	Notes       *string `json:"notes"`
}

// LoanFilter narrows loan listings.
type LoanFilter struct {
	ReaderID   *int64
	BookCopyID *int64
	Open       *bool
	Overdue    bool
}

type FineQuoteResponse struct {
	LoanID      int64           `json:"loan_id"`
	DueDate     time.Time       `json:"due_date"`
	EvaluatedAt time.Time       `json:"evaluated_at"`
	Overdue     bool            `json:"overdue"`
	FineAmount  decimal.Decimal `json:"fine_amount"`
}
