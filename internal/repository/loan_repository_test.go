package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
)

func newMockLoanRepo(t *testing.T) (LoanRepository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	return NewLoanRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestLoanRepositoryCreateActive(t *testing.T) {
	loanDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("claims the copy and inserts the loan in one transaction", func(t *testing.T) {
		repo, mock := newMockLoanRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM readers WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM loans`).
			WithArgs(int64(7), domain.LoanStatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec(`UPDATE book_copies`).
			WithArgs(int64(11), domain.BookStatusLoaned, domain.BookStatusAvailable).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO loans`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status_id", "created_at"}).
				AddRow(int64(42), int64(1), time.Now()))
		mock.ExpectCommit()

		loan := &domain.Loan{BookCopyID: 11, ReaderID: 7, LoanDate: loanDate, DueDate: dueDate}
		err := repo.CreateActive(context.Background(), loan, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), loan.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent loser sees zero claimed rows and rolls back", func(t *testing.T) {
		// Two creates race for one copy; the UPDATE's AVAILABLE predicate lets
		// only the first match, so the second must surface copy-not-available.
		repo, mock := newMockLoanRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM readers WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM loans`).
			WithArgs(int64(7), domain.LoanStatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`UPDATE book_copies`).
			WithArgs(int64(11), domain.BookStatusLoaned, domain.BookStatusAvailable).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		loan := &domain.Loan{BookCopyID: 11, ReaderID: 7, LoanDate: loanDate, DueDate: dueDate}
		err := repo.CreateActive(context.Background(), loan, 5)

		assert.ErrorIs(t, err, customError.ErrCopyNotAvailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loan limit reached stops before the copy is touched", func(t *testing.T) {
		repo, mock := newMockLoanRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM readers WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM loans`).
			WithArgs(int64(7), domain.LoanStatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectRollback()

		loan := &domain.Loan{BookCopyID: 11, ReaderID: 7, LoanDate: loanDate, DueDate: dueDate}
		err := repo.CreateActive(context.Background(), loan, 5)

		assert.ErrorIs(t, err, customError.ErrLoanLimitExceeded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepositoryClose(t *testing.T) {
	returnedAt := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("closes the loan and releases the copy", func(t *testing.T) {
		repo, mock := newMockLoanRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE loans`).
			WithArgs(int64(3), returnedAt, domain.LoanStatusReturned,
				decimal.NewFromInt(10), domain.LoanStatusActive).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE book_copies`).
			WithArgs(int64(11), domain.BookStatusAvailable, domain.BookStatusLoaned).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		loan := &domain.Loan{
			ID: 3, BookCopyID: 11, ReturnDate: &returnedAt,
			FineAmount: decimal.NewFromInt(10),
		}
		err := repo.Close(context.Background(), loan)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loan already terminal matches no rows", func(t *testing.T) {
		// The UPDATE only matches ACTIVE rows, so a return that lost a race to
		// a mark-lost cannot flip the loan back to RETURNED.
		repo, mock := newMockLoanRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE loans`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		loan := &domain.Loan{ID: 3, BookCopyID: 11, ReturnDate: &returnedAt}
		err := repo.Close(context.Background(), loan)

		assert.ErrorIs(t, err, customError.ErrLoanNotActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepositoryMarkLost(t *testing.T) {
	t.Run("loan already terminal matches no rows", func(t *testing.T) {
		repo, mock := newMockLoanRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE loans`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		loan := &domain.Loan{ID: 3, BookCopyID: 11, FineAmount: decimal.NewFromInt(340)}
		err := repo.MarkLost(context.Background(), loan)

		assert.ErrorIs(t, err, customError.ErrLoanNotActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepositoryUpdateRenewal(t *testing.T) {
	t.Run("loan already terminal matches no rows", func(t *testing.T) {
		repo, mock := newMockLoanRepo(t)

		mock.ExpectExec(`UPDATE loans`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		loan := &domain.Loan{ID: 3, DueDate: time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC)}
		err := repo.UpdateRenewal(context.Background(), loan)

		assert.ErrorIs(t, err, customError.ErrLoanNotActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
