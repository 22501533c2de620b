package repository

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
)

var pgDialect = goqu.Dialect("postgres")

const loanColumns = `
	id, book_copy_id, reader_id, librarian_id, loan_date, due_date, return_date,
	status_id, renewal_count, last_renewal_date, fine_amount, fine_paid,
	fine_payment_date, notes, created_at, updated_at
`

type loanRepository struct {
	db *sqlx.DB
}

func NewLoanRepository(db *sqlx.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) CreateActive(ctx context.Context, loan *domain.Loan, loanLimit int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the reader row so concurrent creates for one reader serialize on
	// the limit check.
	var readerID int64
	lockQuery := `SELECT id FROM readers WHERE id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &readerID, lockQuery, loan.ReaderID); err != nil {
		return err
	}

	// Lost loans keep a NULL return_date but no longer hold a copy, so the
	// limit counts ACTIVE rows only (overdue is a predicate over ACTIVE).
	var openLoans int
	countQuery := `
		SELECT COUNT(*) FROM loans
		WHERE reader_id = $1
		  AND return_date IS NULL
		  AND status_id = (SELECT id FROM loan_statuses WHERE code = $2)
	`
	if err = tx.GetContext(ctx, &openLoans, countQuery, loan.ReaderID, domain.LoanStatusActive); err != nil {
		return err
	}
	if openLoans >= loanLimit {
		return customError.ErrLoanLimitExceeded
	}

	// Conditional claim: only one concurrent create observes the copy as
	// AVAILABLE, the loser sees zero rows.
	claimQuery := `
		UPDATE book_copies
		SET current_status_id = (SELECT id FROM book_statuses WHERE code = $2)
		WHERE id = $1
		  AND current_status_id = (SELECT id FROM book_statuses WHERE code = $3)
	`
	result, err := tx.ExecContext(ctx, claimQuery,
		loan.BookCopyID,
		domain.BookStatusLoaned,
		domain.BookStatusAvailable,
	)
	if err != nil {
		return err
	}
	claimed, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if claimed == 0 {
		return customError.ErrCopyNotAvailable
	}

	insertQuery := `
		INSERT INTO loans (book_copy_id, reader_id, librarian_id, loan_date, due_date,
			status_id, renewal_count, fine_amount, fine_paid, notes, created_at)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT id FROM loan_statuses WHERE code = $6), 0, 0, FALSE, $7, NOW())
		RETURNING id, status_id, created_at
	`
	row := tx.QueryRowxContext(ctx, insertQuery,
		loan.BookCopyID,
		loan.ReaderID,
		loan.LibrarianID,
		loan.LoanDate,
		loan.DueDate,
		domain.LoanStatusActive,
		loan.Notes,
	)
	if err = row.Scan(&loan.ID, &loan.StatusID, &loan.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	var loan domain.Loan
	if err := r.db.GetContext(ctx, &loan, query, id); err != nil {
		return nil, err
	}

	return &loan, nil
}

func (r *loanRepository) List(ctx context.Context, filter domain.LoanFilter, asOf time.Time) ([]*domain.Loan, error) {
	ds := pgDialect.From("loans").Select(
		"id", "book_copy_id", "reader_id", "librarian_id", "loan_date", "due_date",
		"return_date", "status_id", "renewal_count", "last_renewal_date",
		"fine_amount", "fine_paid", "fine_payment_date", "notes", "created_at", "updated_at",
	)

	if filter.ReaderID != nil {
		ds = ds.Where(goqu.C("reader_id").Eq(*filter.ReaderID))
	}
	if filter.BookCopyID != nil {
		ds = ds.Where(goqu.C("book_copy_id").Eq(*filter.BookCopyID))
	}
	if filter.Open != nil {
		if *filter.Open {
			ds = ds.Where(goqu.C("return_date").IsNull())
		} else {
			ds = ds.Where(goqu.C("return_date").IsNotNull())
		}
	}
	if filter.Overdue {
		ds = ds.Where(
			goqu.C("return_date").IsNull(),
			goqu.C("due_date").Lt(asOf),
		)
	}

	query, args, err := ds.Order(goqu.C("loan_date").Desc(), goqu.C("id").Desc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var loans []*domain.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *loanRepository) UpdateRenewal(ctx context.Context, loan *domain.Loan) error {
	// The ACTIVE predicate lives in the UPDATE itself so a renewal racing a
	// return or mark-lost cannot reopen a terminal loan.
	query := `
		UPDATE loans
		SET due_date = $2, renewal_count = $3, last_renewal_date = $4, updated_at = NOW()
		WHERE id = $1
		  AND return_date IS NULL
		  AND status_id = (SELECT id FROM loan_statuses WHERE code = $5)
	`

	result, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.DueDate,
		loan.RenewalCount,
		loan.LastRenewalDate,
		domain.LoanStatusActive,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrLoanNotActive
	}

	return nil
}

func (r *loanRepository) Close(ctx context.Context, loan *domain.Loan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// RETURNED and LOST are terminal: the UPDATE matches only ACTIVE rows, so
	// a return racing a mark-lost cannot flip a lost loan back to returned.
	closeQuery := `
		UPDATE loans
		SET return_date = $2,
			status_id = (SELECT id FROM loan_statuses WHERE code = $3),
			fine_amount = $4,
			updated_at = NOW()
		WHERE id = $1
		  AND return_date IS NULL
		  AND status_id = (SELECT id FROM loan_statuses WHERE code = $5)
	`
	result, err := tx.ExecContext(ctx, closeQuery,
		loan.ID,
		loan.ReturnDate,
		domain.LoanStatusReturned,
		loan.FineAmount,
		domain.LoanStatusActive,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrLoanNotActive
	}

	// Release the copy only from LOANED; a copy flagged LOST or DAMAGED in
	// the meantime keeps its status for the librarian to resolve.
	releaseQuery := `
		UPDATE book_copies
		SET current_status_id = (SELECT id FROM book_statuses WHERE code = $2)
		WHERE id = $1
		  AND current_status_id = (SELECT id FROM book_statuses WHERE code = $3)
	`
	if _, err = tx.ExecContext(ctx, releaseQuery,
		loan.BookCopyID,
		domain.BookStatusAvailable,
		domain.BookStatusLoaned,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *loanRepository) MarkLost(ctx context.Context, loan *domain.Loan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lostQuery := `
		UPDATE loans
		SET status_id = (SELECT id FROM loan_statuses WHERE code = $2),
			fine_amount = $3,
			notes = COALESCE($4, notes),
			updated_at = NOW()
		WHERE id = $1
		  AND return_date IS NULL
		  AND status_id = (SELECT id FROM loan_statuses WHERE code = $5)
	`
	result, err := tx.ExecContext(ctx, lostQuery,
		loan.ID,
		domain.LoanStatusLost,
		loan.FineAmount,
		loan.Notes,
		domain.LoanStatusActive,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrLoanNotActive
	}

	copyQuery := `
		UPDATE book_copies
		SET current_status_id = (SELECT id FROM book_statuses WHERE code = $2)
		WHERE id = $1
	`
	if _, err = tx.ExecContext(ctx, copyQuery, loan.BookCopyID, domain.BookStatusLost); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *loanRepository) SettleFine(ctx context.Context, loan *domain.Loan, payment *domain.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	paymentQuery := `
		INSERT INTO payments (reader_id, operation_type_id, amount, payment_date,
			payment_method, transaction_id, description, related_loan_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`
	row := tx.QueryRowxContext(ctx, paymentQuery,
		payment.ReaderID,
		payment.OperationTypeID,
		payment.Amount,
		payment.PaymentDate,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.Description,
		payment.RelatedLoanID,
	)
	if err = row.Scan(&payment.ID, &payment.CreatedAt); err != nil {
		return err
	}

	settleQuery := `
		UPDATE loans
		SET fine_paid = TRUE, fine_payment_date = $2, updated_at = NOW()
		WHERE id = $1 AND fine_paid = FALSE
	`
	result, err := tx.ExecContext(ctx, settleQuery, loan.ID, payment.PaymentDate)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrFineAlreadyPaid
	}

	return tx.Commit()
}

func (r *loanRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateLoanRequest) error {
	record := goqu.Record{"updated_at": goqu.L("NOW()")}
	if patch.LibrarianID != nil {
		record["librarian_id"] = *patch.LibrarianID
	}
	if patch.Notes != nil {
		record["notes"] = *patch.Notes
	}

	query, args, err := pgDialect.Update("loans").Set(record).
		Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrNotFound
	}

	return nil
}

func (r *loanRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrNotFound
	}

	return nil
}

func (r *loanRepository) CountOpenByReader(ctx context.Context, readerID int64) (int, error) {
	query := `
		SELECT COUNT(*) FROM loans
		WHERE reader_id = $1
		  AND return_date IS NULL
		  AND status_id = (SELECT id FROM loan_statuses WHERE code = $2)
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, readerID, domain.LoanStatusActive); err != nil {
		return 0, err
	}

	return count, nil
}
