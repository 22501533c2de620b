package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
)

const paymentColumns = `
	id, reader_id, operation_type_id, amount, payment_date, payment_method,
	transaction_id, description, related_loan_id, created_at
`

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (reader_id, operation_type_id, amount, payment_date,
			payment_method, transaction_id, description, related_loan_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		payment.ReaderID,
		payment.OperationTypeID,
		payment.Amount,
		payment.PaymentDate,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.Description,
		payment.RelatedLoanID,
	)

	return row.Scan(&payment.ID, &payment.CreatedAt)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment domain.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, readerID *int64) ([]*domain.Payment, error) {
	ds := pgDialect.From("payments").Select(
		"id", "reader_id", "operation_type_id", "amount", "payment_date",
		"payment_method", "transaction_id", "description", "related_loan_id", "created_at",
	)
	if readerID != nil {
		ds = ds.Where(goqu.C("reader_id").Eq(*readerID))
	}

	query, args, err := ds.Order(goqu.C("payment_date").Desc(), goqu.C("id").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var payments []*domain.Payment
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) Patch(ctx context.Context, id int64, patch *domain.UpdatePaymentRequest) error {
	record := goqu.Record{}
	if patch.PaymentMethod != nil {
		record["payment_method"] = *patch.PaymentMethod
	}
	if patch.TransactionID != nil {
		record["transaction_id"] = *patch.TransactionID
	}
	if patch.Description != nil {
		record["description"] = *patch.Description
	}
	if len(record) == 0 {
		return nil
	}

	query, args, err := pgDialect.Update("payments").Set(record).
		Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	return execAffectingOne(ctx, r.db, query, args...)
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM payments WHERE id = $1`, id)
}
