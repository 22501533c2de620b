package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotFound          = errors.New("entity not found")
	ErrCopyNotAvailable  = errors.New("book copy is not available for lending")
	ErrLoanLimitExceeded = errors.New("reader has reached the loan limit")
	ErrLoanNotActive     = errors.New("loan is not active")
	ErrLoanAlreadyClosed = errors.New("loan is already closed")
	ErrReaderInactive    = errors.New("reader is not active")
	ErrNoFineDue         = errors.New("loan has no outstanding fine")
	ErrFineAlreadyPaid   = errors.New("fine is already paid")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeCopyNotAvailable  = "COPY_NOT_AVAILABLE"
	ErrCodeLoanLimitExceeded = "LOAN_LIMIT_EXCEEDED"
	ErrCodeLoanNotActive     = "LOAN_NOT_ACTIVE"
	ErrCodeLoanAlreadyClosed = "LOAN_ALREADY_CLOSED"
	ErrCodeReaderInactive    = "READER_INACTIVE"
	ErrCodeNoFineDue         = "NO_FINE_DUE"
	ErrCodeFineAlreadyPaid   = "FINE_ALREADY_PAID"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeCacheError        = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapNotFound(entity string, id int64) *BusinessError {
	return NewBusinessError(
		ErrCodeNotFound,
		fmt.Sprintf("%s with ID %d not found", entity, id),
		ErrNotFound,
	)
}

func WrapCopyNotAvailable(copyID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeCopyNotAvailable,
		fmt.Sprintf("Book copy %d is not available for lending", copyID),
		ErrCopyNotAvailable,
	)
}

func WrapLoanLimitExceeded(readerID int64, limit int) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanLimitExceeded,
		fmt.Sprintf("Reader %d has reached the loan limit of %d", readerID, limit),
		ErrLoanLimitExceeded,
	)
}

func WrapLoanNotActive(loanID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanNotActive,
		fmt.Sprintf("Loan %d is not active", loanID),
		ErrLoanNotActive,
	)
}

func WrapLoanAlreadyClosed(loanID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanAlreadyClosed,
		fmt.Sprintf("Loan %d is already closed", loanID),
		ErrLoanAlreadyClosed,
	)
}

func WrapReaderInactive(readerID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeReaderInactive,
		fmt.Sprintf("Reader %d is not active", readerID),
		ErrReaderInactive,
	)
}

func WrapNoFineDue(loanID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeNoFineDue,
		fmt.Sprintf("Loan %d has no outstanding fine", loanID),
		ErrNoFineDue,
	)
}

func WrapFineAlreadyPaid(loanID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeFineAlreadyPaid,
		fmt.Sprintf("Fine for loan %d is already paid", loanID),
		ErrFineAlreadyPaid,
	)
}

func WrapValidationError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeValidation,
		"request validation failed",
		err,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
