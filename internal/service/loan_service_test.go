package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/tests/mocks"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type loanServiceMocks struct {
	loans        *mocks.MockLoanRepository
	copies       *mocks.MockCopyRepository
	readers      *mocks.MockReaderRepository
	payments     *mocks.MockPaymentRepository
	reservations *mocks.MockReservationRepository
	lookups      *mocks.MockLookupRepository
}

func newLoanService(today time.Time) (*LoanService, *loanServiceMocks) {
	m := &loanServiceMocks{
		loans:        new(mocks.MockLoanRepository),
		copies:       new(mocks.MockCopyRepository),
		readers:      new(mocks.MockReaderRepository),
		payments:     new(mocks.MockPaymentRepository),
		reservations: new(mocks.MockReservationRepository),
		lookups:      new(mocks.MockLookupRepository),
	}

	s := NewLoanService(m.loans, m.copies, m.readers, m.payments, m.reservations, m.lookups, domain.DefaultFinePolicy())
	s.now = func() time.Time { return today }
	return s, m
}

func activeReader(id, categoryID int64) *domain.Reader {
	return &domain.Reader{ID: id, CategoryID: categoryID, IsActive: true}
}

func studentCategory(id int64) *domain.ReaderCategory {
	return &domain.ReaderCategory{ID: id, Code: "STUDENT", LoanLimit: 5, LoanPeriod: 14}
}

func TestCreateLoan(t *testing.T) {
	today := date(2024, 3, 1)

	t.Run("success with due date from category period", func(t *testing.T) {
		s, m := newLoanService(today)

		m.readers.On("GetByID", mock.Anything, int64(7)).Return(activeReader(7, 2), nil)
		m.readers.On("GetCategory", mock.Anything, int64(2)).Return(studentCategory(2), nil)
		m.copies.On("GetByID", mock.Anything, int64(11)).Return(&domain.BookCopy{ID: 11}, nil)
		m.loans.On("CreateActive", mock.Anything, mock.MatchedBy(func(loan *domain.Loan) bool {
			return loan.BookCopyID == 11 &&
				loan.ReaderID == 7 &&
				loan.LoanDate.Equal(today) &&
				loan.DueDate.Equal(date(2024, 3, 15))
		}), 5).Return(nil)

		loan, err := s.CreateLoan(context.Background(), &domain.CreateLoanRequest{
			BookCopyID: 11,
			ReaderID:   7,
		})

		assert.NoError(t, err)
		assert.NotNil(t, loan)
		m.loans.AssertExpectations(t)
	})

	t.Run("copy not available maps to conflict code", func(t *testing.T) {
		s, m := newLoanService(today)

		m.readers.On("GetByID", mock.Anything, int64(7)).Return(activeReader(7, 2), nil)
		m.readers.On("GetCategory", mock.Anything, int64(2)).Return(studentCategory(2), nil)
		m.copies.On("GetByID", mock.Anything, int64(11)).Return(&domain.BookCopy{ID: 11}, nil)
		m.loans.On("CreateActive", mock.Anything, mock.Anything, 5).
			Return(customError.ErrCopyNotAvailable)

		loan, err := s.CreateLoan(context.Background(), &domain.CreateLoanRequest{
			BookCopyID: 11,
			ReaderID:   7,
		})

		assert.Nil(t, loan)
		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeCopyNotAvailable, bizErr.Code)
	})

	t.Run("loan limit exceeded", func(t *testing.T) {
		s, m := newLoanService(today)

		m.readers.On("GetByID", mock.Anything, int64(7)).Return(activeReader(7, 2), nil)
		m.readers.On("GetCategory", mock.Anything, int64(2)).Return(studentCategory(2), nil)
		m.copies.On("GetByID", mock.Anything, int64(11)).Return(&domain.BookCopy{ID: 11}, nil)
		m.loans.On("CreateActive", mock.Anything, mock.Anything, 5).
			Return(customError.ErrLoanLimitExceeded)

		_, err := s.CreateLoan(context.Background(), &domain.CreateLoanRequest{
			BookCopyID: 11,
			ReaderID:   7,
		})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeLoanLimitExceeded, bizErr.Code)
	})

	t.Run("explicit due date before the loan date is rejected", func(t *testing.T) {
		s, m := newLoanService(today)

		m.readers.On("GetByID", mock.Anything, int64(7)).Return(activeReader(7, 2), nil)
		m.readers.On("GetCategory", mock.Anything, int64(2)).Return(studentCategory(2), nil)
		m.copies.On("GetByID", mock.Anything, int64(11)).Return(&domain.BookCopy{ID: 11}, nil)

		badDue := date(2024, 2, 20)
		_, err := s.CreateLoan(context.Background(), &domain.CreateLoanRequest{
			BookCopyID: 11,
			ReaderID:   7,
			DueDate:    &badDue,
		})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeValidation, bizErr.Code)
		m.loans.AssertNotCalled(t, "CreateActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("inactive reader is rejected before any claim", func(t *testing.T) {
		s, m := newLoanService(today)

		inactive := &domain.Reader{ID: 7, CategoryID: 2, IsActive: false}
		m.readers.On("GetByID", mock.Anything, int64(7)).Return(inactive, nil)

		_, err := s.CreateLoan(context.Background(), &domain.CreateLoanRequest{
			BookCopyID: 11,
			ReaderID:   7,
		})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeReaderInactive, bizErr.Code)
		m.loans.AssertNotCalled(t, "CreateActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown reader maps to not found", func(t *testing.T) {
		s, m := newLoanService(today)

		m.readers.On("GetByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

		_, err := s.CreateLoan(context.Background(), &domain.CreateLoanRequest{
			BookCopyID: 11,
			ReaderID:   99,
		})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeNotFound, bizErr.Code)
	})
}

func TestRenewLoan(t *testing.T) {
	today := date(2024, 3, 10)

	t.Run("renewal extends the current due date by the category period", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{
			ID: 3, ReaderID: 7, StatusID: 1,
			LoanDate: date(2024, 3, 1), DueDate: date(2024, 3, 15),
		}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)
		m.readers.On("GetByID", mock.Anything, int64(7)).Return(activeReader(7, 2), nil)
		m.readers.On("GetCategory", mock.Anything, int64(2)).Return(studentCategory(2), nil)
		m.loans.On("UpdateRenewal", mock.Anything, mock.MatchedBy(func(l *domain.Loan) bool {
			return l.DueDate.Equal(date(2024, 3, 29)) &&
				l.RenewalCount == 1 &&
				l.LastRenewalDate != nil && l.LastRenewalDate.Equal(today)
		})).Return(nil)

		renewed, err := s.RenewLoan(context.Background(), 3, &domain.RenewLoanRequest{})

		assert.NoError(t, err)
		assert.Equal(t, 1, renewed.RenewalCount)
		m.loans.AssertExpectations(t)
	})

	t.Run("early renewal keeps the full term from the due date", func(t *testing.T) {
		// Renewing on day 5 of a 14-day loan must not shorten the term to
		// today+14; the period counts from the current due date.
		s, m := newLoanService(date(2024, 3, 5))

		loan := &domain.Loan{
			ID: 3, ReaderID: 7, StatusID: 1,
			LoanDate: date(2024, 3, 1), DueDate: date(2024, 3, 15),
		}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)
		m.readers.On("GetByID", mock.Anything, int64(7)).Return(activeReader(7, 2), nil)
		m.readers.On("GetCategory", mock.Anything, int64(2)).Return(studentCategory(2), nil)
		m.loans.On("UpdateRenewal", mock.Anything, mock.MatchedBy(func(l *domain.Loan) bool {
			return l.DueDate.Equal(date(2024, 3, 29))
		})).Return(nil)

		renewed, err := s.RenewLoan(context.Background(), 3, &domain.RenewLoanRequest{})

		assert.NoError(t, err)
		assert.True(t, renewed.DueDate.Equal(date(2024, 3, 29)))
		m.loans.AssertExpectations(t)
	})

	t.Run("explicit due date before the loan date is rejected", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{
			ID: 3, ReaderID: 7, StatusID: 1,
			LoanDate: date(2024, 3, 1), DueDate: date(2024, 3, 15),
		}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)

		badDue := date(2024, 2, 20)
		_, err := s.RenewLoan(context.Background(), 3, &domain.RenewLoanRequest{DueDate: &badDue})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeValidation, bizErr.Code)
		m.loans.AssertNotCalled(t, "UpdateRenewal", mock.Anything, mock.Anything)
	})

	t.Run("renewal losing a race to a terminal transition maps to not active", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{
			ID: 3, ReaderID: 7, StatusID: 1,
			LoanDate: date(2024, 3, 1), DueDate: date(2024, 3, 15),
		}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)
		m.readers.On("GetByID", mock.Anything, int64(7)).Return(activeReader(7, 2), nil)
		m.readers.On("GetCategory", mock.Anything, int64(2)).Return(studentCategory(2), nil)
		m.loans.On("UpdateRenewal", mock.Anything, mock.Anything).
			Return(customError.ErrLoanNotActive)

		_, err := s.RenewLoan(context.Background(), 3, &domain.RenewLoanRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeLoanNotActive, bizErr.Code)
	})

	t.Run("closed loan cannot be renewed", func(t *testing.T) {
		s, m := newLoanService(today)

		returned := date(2024, 3, 5)
		loan := &domain.Loan{ID: 3, StatusID: 2, DueDate: date(2024, 3, 15), ReturnDate: &returned}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)

		_, err := s.RenewLoan(context.Background(), 3, &domain.RenewLoanRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeLoanAlreadyClosed, bizErr.Code)
	})

	t.Run("lost loan is not renewable", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, StatusID: 4, DueDate: date(2024, 3, 15)}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(4)).
			Return(&domain.LoanStatus{ID: 4, Code: domain.LoanStatusLost}, nil)

		_, err := s.RenewLoan(context.Background(), 3, &domain.RenewLoanRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeLoanNotActive, bizErr.Code)
	})
}

func TestReturnLoan(t *testing.T) {
	t.Run("late return carries the computed fine", func(t *testing.T) {
		today := date(2024, 1, 5)
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, StatusID: 1, DueDate: date(2024, 1, 1)}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)
		m.loans.On("Close", mock.Anything, mock.MatchedBy(func(l *domain.Loan) bool {
			return l.ReturnDate != nil && l.ReturnDate.Equal(today) &&
				l.FineAmount.Equal(decimal.NewFromInt(10))
		})).Return(nil)

		returned, err := s.ReturnLoan(context.Background(), 3, &domain.ReturnLoanRequest{})

		assert.NoError(t, err)
		assert.NotNil(t, returned.ReturnDate)
		m.loans.AssertExpectations(t)
	})

	t.Run("on-time return carries no fine", func(t *testing.T) {
		today := date(2024, 1, 1)
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, StatusID: 1, DueDate: date(2024, 1, 10)}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)
		m.loans.On("Close", mock.Anything, mock.MatchedBy(func(l *domain.Loan) bool {
			return l.FineAmount.IsZero()
		})).Return(nil)

		_, err := s.ReturnLoan(context.Background(), 3, &domain.ReturnLoanRequest{})
		assert.NoError(t, err)
	})

	t.Run("second return is rejected", func(t *testing.T) {
		today := date(2024, 1, 5)
		s, m := newLoanService(today)

		returnedAt := date(2024, 1, 2)
		loan := &domain.Loan{ID: 3, StatusID: 2, DueDate: date(2024, 1, 10), ReturnDate: &returnedAt}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)

		_, err := s.ReturnLoan(context.Background(), 3, &domain.ReturnLoanRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeLoanAlreadyClosed, bizErr.Code)
		m.loans.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	})

	t.Run("return losing a race to a terminal transition maps to not active", func(t *testing.T) {
		// The loan reads as ACTIVE here, but another request flips it before
		// the UPDATE lands; the repository reports the miss as not active.
		today := date(2024, 1, 5)
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, StatusID: 1, DueDate: date(2024, 1, 10)}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)
		m.loans.On("Close", mock.Anything, mock.Anything).
			Return(customError.ErrLoanNotActive)

		_, err := s.ReturnLoan(context.Background(), 3, &domain.ReturnLoanRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeLoanNotActive, bizErr.Code)
	})
}

func TestMarkLost(t *testing.T) {
	today := date(2024, 1, 8)

	t.Run("lost loan owes accrued fine plus lost charge", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, StatusID: 1, DueDate: date(2024, 1, 1)}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)

		// 4 billable days late (7 minus 3 grace) at 10 each, plus the 300 charge.
		m.loans.On("MarkLost", mock.Anything, mock.MatchedBy(func(l *domain.Loan) bool {
			return l.FineAmount.Equal(decimal.NewFromInt(340))
		})).Return(nil)

		_, err := s.MarkLost(context.Background(), 3, &domain.MarkLostRequest{})
		assert.NoError(t, err)
		m.loans.AssertExpectations(t)
	})

	t.Run("mark lost losing a race to a terminal transition maps to not active", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, StatusID: 1, DueDate: date(2024, 1, 1)}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("GetLoanStatusByID", mock.Anything, int64(1)).
			Return(&domain.LoanStatus{ID: 1, Code: domain.LoanStatusActive}, nil)
		m.loans.On("MarkLost", mock.Anything, mock.Anything).
			Return(customError.ErrLoanNotActive)

		_, err := s.MarkLost(context.Background(), 3, &domain.MarkLostRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeLoanNotActive, bizErr.Code)
	})
}

func TestQuoteFine(t *testing.T) {
	t.Run("closed loan quotes against its return date", func(t *testing.T) {
		today := date(2025, 6, 1)
		s, m := newLoanService(today)

		returnedAt := date(2024, 1, 5)
		loan := &domain.Loan{ID: 3, DueDate: date(2024, 1, 1), ReturnDate: &returnedAt}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)

		quote, err := s.QuoteFine(context.Background(), 3)

		assert.NoError(t, err)
		assert.True(t, quote.Overdue)
		assert.True(t, quote.EvaluatedAt.Equal(returnedAt))
		assert.True(t, quote.FineAmount.Equal(decimal.NewFromInt(10)))
	})

	t.Run("open loan quotes against today", func(t *testing.T) {
		today := date(2024, 1, 2)
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, DueDate: date(2024, 1, 1)}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)

		quote, err := s.QuoteFine(context.Background(), 3)

		assert.NoError(t, err)
		assert.True(t, quote.Overdue)
		assert.True(t, quote.FineAmount.IsZero(), "still inside grace period")
	})
}

func TestPayFine(t *testing.T) {
	today := date(2024, 2, 1)

	t.Run("settles the recorded fine as a FINE payment", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{
			ID: 3, ReaderID: 7,
			DueDate:    date(2024, 1, 1),
			FineAmount: decimal.NewFromInt(120),
		}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)
		m.lookups.On("OperationTypeIDByCode", mock.Anything, domain.OperationFine).Return(int64(42), nil)
		m.loans.On("SettleFine", mock.Anything, loan, mock.MatchedBy(func(p *domain.Payment) bool {
			return p.ReaderID == 7 &&
				p.OperationTypeID == 42 &&
				p.Amount.Equal(decimal.NewFromInt(120)) &&
				p.RelatedLoanID != nil && *p.RelatedLoanID == 3
		})).Return(nil)

		payment, err := s.PayFine(context.Background(), 3, &domain.PayFineRequest{})

		assert.NoError(t, err)
		assert.NotNil(t, payment)
		m.loans.AssertExpectations(t)
	})

	t.Run("already paid fine conflicts", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, FineAmount: decimal.NewFromInt(50), FinePaid: true}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)

		_, err := s.PayFine(context.Background(), 3, &domain.PayFineRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeFineAlreadyPaid, bizErr.Code)
	})

	t.Run("no fine due conflicts", func(t *testing.T) {
		s, m := newLoanService(today)

		loan := &domain.Loan{ID: 3, FineAmount: decimal.Zero}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(loan, nil)

		_, err := s.PayFine(context.Background(), 3, &domain.PayFineRequest{})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeNoFineDue, bizErr.Code)
	})
}
