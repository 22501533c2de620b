package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/repository"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/utils"
)

// LoanService owns the circulation workflow: loan lifecycle, fines, payments
// and reservations.
type LoanService struct {
	LoanRepo        repository.LoanRepository
	CopyRepo        repository.CopyRepository
	ReaderRepo      repository.ReaderRepository
	PaymentRepo     repository.PaymentRepository
	ReservationRepo repository.ReservationRepository
	LookupRepo      repository.LookupRepository

	policy domain.FinePolicy
	now    func() time.Time
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	copyRepo repository.CopyRepository,
	readerRepo repository.ReaderRepository,
	paymentRepo repository.PaymentRepository,
	reservationRepo repository.ReservationRepository,
	lookupRepo repository.LookupRepository,
	policy domain.FinePolicy,
) *LoanService {
	return &LoanService{
		LoanRepo:        loanRepo,
		CopyRepo:        copyRepo,
		ReaderRepo:      readerRepo,
		PaymentRepo:     paymentRepo,
		ReservationRepo: reservationRepo,
		LookupRepo:      lookupRepo,
		policy:          policy,
		now:             time.Now,
	}
}

// CreateLoan issues a book copy to a reader. The copy claim and the loan
// insert happen in one transaction; when no due date is supplied the reader
// category's loan period fills it in.
func (s *LoanService) CreateLoan(ctx context.Context, request *domain.CreateLoanRequest) (*domain.Loan, error) {
	reader, err := s.ReaderRepo.GetByID(ctx, request.ReaderID)
	if err != nil {
		return nil, wrapGetError(err, "Reader", request.ReaderID)
	}
	if !reader.IsActive {
		return nil, customError.WrapReaderInactive(reader.ID)
	}

	category, err := s.ReaderRepo.GetCategory(ctx, reader.CategoryID)
	if err != nil {
		return nil, wrapGetError(err, "Reader category", reader.CategoryID)
	}

	if _, err = s.CopyRepo.GetByID(ctx, request.BookCopyID); err != nil {
		return nil, wrapGetError(err, "Book copy", request.BookCopyID)
	}

	loanDate := utils.DateOnly(s.now())
	if request.LoanDate != nil {
		loanDate = utils.DateOnly(*request.LoanDate)
	}

	dueDate := utils.AddDays(loanDate, category.LoanPeriod)
	if request.DueDate != nil {
		dueDate = utils.DateOnly(*request.DueDate)
	}
	if dueDate.Before(loanDate) {
		return nil, customError.WrapValidationError(
			fmt.Errorf("due date %s precedes loan date %s",
				dueDate.Format("2006-01-02"), loanDate.Format("2006-01-02")))
	}

	loan := &domain.Loan{
		BookCopyID:  request.BookCopyID,
		ReaderID:    request.ReaderID,
		LibrarianID: request.LibrarianID,
		LoanDate:    loanDate,
		DueDate:     dueDate,
		Notes:       request.Notes,
	}

	if err = s.LoanRepo.CreateActive(ctx, loan, category.LoanLimit); err != nil {
		switch {
		case errors.Is(err, customError.ErrCopyNotAvailable):
			return nil, customError.WrapCopyNotAvailable(request.BookCopyID)
		case errors.Is(err, customError.ErrLoanLimitExceeded):
			return nil, customError.WrapLoanLimitExceeded(reader.ID, category.LoanLimit)
		default:
			return nil, customError.WrapDatabaseError(err)
		}
	}

	return loan, nil
}

// GetLoan retrieves a single loan by ID.
func (s *LoanService) GetLoan(ctx context.Context, id int64) (*domain.Loan, error) {
	loan, err := s.LoanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Loan", id)
	}
	return loan, nil
}

// ListLoans retrieves loans matching the filter. The overdue filter evaluates
// against today's date.
func (s *LoanService) ListLoans(ctx context.Context, filter domain.LoanFilter) ([]*domain.Loan, error) {
	loans, err := s.LoanRepo.List(ctx, filter, utils.DateOnly(s.now()))
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return loans, nil
}

// RenewLoan extends an active loan's due date. Without an explicit due date
// the reader category's loan period counts from the current due date, so a
// renewal before the deadline keeps the full term.
func (s *LoanService) RenewLoan(ctx context.Context, id int64, request *domain.RenewLoanRequest) (*domain.Loan, error) {
	loan, err := s.activeLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	today := utils.DateOnly(s.now())

	var dueDate time.Time
	if request.DueDate != nil {
		dueDate = utils.DateOnly(*request.DueDate)
	} else {
		reader, err := s.ReaderRepo.GetByID(ctx, loan.ReaderID)
		if err != nil {
			return nil, wrapGetError(err, "Reader", loan.ReaderID)
		}
		category, err := s.ReaderRepo.GetCategory(ctx, reader.CategoryID)
		if err != nil {
			return nil, wrapGetError(err, "Reader category", reader.CategoryID)
		}
		dueDate = utils.AddDays(loan.DueDate, category.LoanPeriod)
	}
	if dueDate.Before(utils.DateOnly(loan.LoanDate)) {
		return nil, customError.WrapValidationError(
			fmt.Errorf("due date %s precedes loan date %s",
				dueDate.Format("2006-01-02"), utils.DateOnly(loan.LoanDate).Format("2006-01-02")))
	}

	loan.DueDate = dueDate
	loan.RenewalCount++
	loan.LastRenewalDate = &today

	if err = s.LoanRepo.UpdateRenewal(ctx, loan); err != nil {
		if errors.Is(err, customError.ErrLoanNotActive) {
			return nil, customError.WrapLoanNotActive(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return loan, nil
}

// ReturnLoan closes a loan. The fine is computed from the return date, and
// the copy goes back to AVAILABLE in the same transaction.
func (s *LoanService) ReturnLoan(ctx context.Context, id int64, request *domain.ReturnLoanRequest) (*domain.Loan, error) {
	loan, err := s.activeLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	returnDate := utils.DateOnly(s.now())
	if request.ReturnDate != nil {
		returnDate = utils.DateOnly(*request.ReturnDate)
	}

	loan.ReturnDate = &returnDate
	loan.FineAmount = s.policy.Calculate(loan.DueDate, returnDate)

	if err = s.LoanRepo.Close(ctx, loan); err != nil {
		if errors.Is(err, customError.ErrLoanNotActive) {
			return nil, customError.WrapLoanNotActive(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return loan, nil
}

// MarkLost records a lost copy: loan and copy both move to LOST, and the
// reader owes the accrued overdue fine plus the lost copy charge.
func (s *LoanService) MarkLost(ctx context.Context, id int64, request *domain.MarkLostRequest) (*domain.Loan, error) {
	loan, err := s.activeLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	today := utils.DateOnly(s.now())
	loan.FineAmount = s.policy.Calculate(loan.DueDate, today).Add(s.policy.LostCharge)
	if request.Notes != nil {
		loan.Notes = request.Notes
	}

	if err = s.LoanRepo.MarkLost(ctx, loan); err != nil {
		if errors.Is(err, customError.ErrLoanNotActive) {
			return nil, customError.WrapLoanNotActive(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return loan, nil
}

// QuoteFine evaluates the fine a loan would carry today without touching it.
// For a closed loan the actual return date is the evaluation date.
func (s *LoanService) QuoteFine(ctx context.Context, id int64) (*domain.FineQuoteResponse, error) {
	loan, err := s.LoanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Loan", id)
	}

	evaluatedAt := utils.DateOnly(s.now())
	if loan.ReturnDate != nil {
		evaluatedAt = utils.DateOnly(*loan.ReturnDate)
	}

	return &domain.FineQuoteResponse{
		LoanID:      loan.ID,
		DueDate:     loan.DueDate,
		EvaluatedAt: evaluatedAt,
		Overdue:     utils.IsDateOverdue(loan.DueDate, evaluatedAt),
		FineAmount:  s.policy.Calculate(loan.DueDate, evaluatedAt),
	}, nil
}

// PayFine settles a loan's recorded fine. The payment row and the paid flag
// move together in one transaction.
func (s *LoanService) PayFine(ctx context.Context, id int64, request *domain.PayFineRequest) (*domain.Payment, error) {
	loan, err := s.LoanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Loan", id)
	}
	if loan.FinePaid {
		return nil, customError.WrapFineAlreadyPaid(id)
	}
	if !loan.FineAmount.IsPositive() {
		return nil, customError.WrapNoFineDue(id)
	}

	operationTypeID, err := s.LookupRepo.OperationTypeIDByCode(ctx, domain.OperationFine)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	paymentDate := s.now()
	if request.PaymentDate != nil {
		paymentDate = *request.PaymentDate
	}

	description := fmt.Sprintf("Fine for loan %d", loan.ID)
	payment := &domain.Payment{
		ReaderID:        loan.ReaderID,
		OperationTypeID: operationTypeID,
		Amount:          loan.FineAmount,
		PaymentDate:     paymentDate,
		PaymentMethod:   request.PaymentMethod,
		Description:     &description,
		RelatedLoanID:   &loan.ID,
	}

	if err = s.LoanRepo.SettleFine(ctx, loan, payment); err != nil {
		if errors.Is(err, customError.ErrFineAlreadyPaid) {
			return nil, customError.WrapFineAlreadyPaid(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return payment, nil
}

// UpdateLoan patches the annotation fields only.
func (s *LoanService) UpdateLoan(ctx context.Context, id int64, patch *domain.UpdateLoanRequest) (*domain.Loan, error) {
	if err := s.LoanRepo.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Loan", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return s.GetLoan(ctx, id)
}

// DeleteLoan removes a loan row. The copy status is untouched.
func (s *LoanService) DeleteLoan(ctx context.Context, id int64) error {
	if err := s.LoanRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Loan", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// activeLoan loads a loan and verifies it is in the ACTIVE state. A closed
// loan maps to LOAN_ALREADY_CLOSED, a lost one to LOAN_NOT_ACTIVE.
func (s *LoanService) activeLoan(ctx context.Context, id int64) (*domain.Loan, error) {
	loan, err := s.LoanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Loan", id)
	}
	if loan.IsClosed() {
		return nil, customError.WrapLoanAlreadyClosed(id)
	}

	status, err := s.LookupRepo.GetLoanStatusByID(ctx, loan.StatusID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if status.Code != domain.LoanStatusActive {
		return nil, customError.WrapLoanNotActive(id)
	}

	return loan, nil
}

// CreatePayment records a standalone financial operation.
func (s *LoanService) CreatePayment(ctx context.Context, request *domain.CreatePaymentRequest) (*domain.Payment, error) {
	if _, err := s.ReaderRepo.GetByID(ctx, request.ReaderID); err != nil {
		return nil, wrapGetError(err, "Reader", request.ReaderID)
	}

	paymentDate := s.now()
	if request.PaymentDate != nil {
		paymentDate = *request.PaymentDate
	}

	payment := &domain.Payment{
		ReaderID:        request.ReaderID,
		OperationTypeID: request.OperationTypeID,
		Amount:          request.Amount,
		PaymentDate:     paymentDate,
		PaymentMethod:   request.PaymentMethod,
		TransactionID:   request.TransactionID,
		Description:     request.Description,
		RelatedLoanID:   request.RelatedLoanID,
	}

	if err := s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return payment, nil
}

func (s *LoanService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.PaymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Payment", id)
	}
	return payment, nil
}

func (s *LoanService) ListPayments(ctx context.Context, readerID *int64) ([]*domain.Payment, error) {
	payments, err := s.PaymentRepo.List(ctx, readerID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return payments, nil
}

func (s *LoanService) UpdatePayment(ctx context.Context, id int64, patch *domain.UpdatePaymentRequest) (*domain.Payment, error) {
	if err := s.PaymentRepo.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Payment", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return s.GetPayment(ctx, id)
}

func (s *LoanService) DeletePayment(ctx context.Context, id int64) error {
	if err := s.PaymentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Payment", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// CreateReservation queues a reader for a book.
func (s *LoanService) CreateReservation(ctx context.Context, request *domain.CreateReservationRequest) (*domain.Reservation, error) {
	if _, err := s.ReaderRepo.GetByID(ctx, request.ReaderID); err != nil {
		return nil, wrapGetError(err, "Reader", request.ReaderID)
	}

	reservation := &domain.Reservation{
		BookID:         request.BookID,
		ReaderID:       request.ReaderID,
		ExpirationDate: request.ExpirationDate,
		Status:         domain.ReservationStatusActive,
		Priority:       request.Priority,
		Notes:          request.Notes,
	}

	if err := s.ReservationRepo.Create(ctx, reservation); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return reservation, nil
}

func (s *LoanService) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Reservation", id)
	}
	return reservation, nil
}

func (s *LoanService) ListReservations(ctx context.Context, bookID *int64) ([]*domain.Reservation, error) {
	reservations, err := s.ReservationRepo.List(ctx, bookID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return reservations, nil
}

func (s *LoanService) UpdateReservation(ctx context.Context, id int64, patch *domain.UpdateReservationRequest) (*domain.Reservation, error) {
	if err := s.ReservationRepo.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Reservation", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return s.GetReservation(ctx, id)
}

func (s *LoanService) DeleteReservation(ctx context.Context, id int64) error {
	if err := s.ReservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Reservation", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// wrapGetError maps a repository read error to the business taxonomy.
func wrapGetError(err error, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return customError.WrapNotFound(entity, id)
	}
	return customError.WrapDatabaseError(err)
}
