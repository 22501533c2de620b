package repository

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
)

const copyColumns = `
	id, book_id, inventory_number, barcode, copy_number, acquisition_date,
	acquisition_source, price, location, current_status_id, condition_notes,
	write_off_date, write_off_reason, created_at
`

type copyRepository struct {
	db *sqlx.DB
}

func NewCopyRepository(db *sqlx.DB) CopyRepository {
	return &copyRepository{db: db}
}

func (r *copyRepository) Create(ctx context.Context, copy *domain.BookCopy) error {
	query := `
		INSERT INTO book_copies (book_id, inventory_number, barcode, copy_number,
			acquisition_date, acquisition_source, price, location, current_status_id,
			condition_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			(SELECT id FROM book_statuses WHERE code = $9), $10, NOW())
		RETURNING id, current_status_id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		copy.BookID,
		copy.InventoryNumber,
		copy.Barcode,
		copy.CopyNumber,
		copy.AcquisitionDate,
		copy.AcquisitionSource,
		copy.Price,
		copy.Location,
		domain.BookStatusAvailable,
		copy.ConditionNotes,
	)

	return row.Scan(&copy.ID, &copy.CurrentStatusID, &copy.CreatedAt)
}

func (r *copyRepository) GetByID(ctx context.Context, id int64) (*domain.BookCopy, error) {
	query := `SELECT ` + copyColumns + ` FROM book_copies WHERE id = $1`

	var copy domain.BookCopy
	if err := r.db.GetContext(ctx, &copy, query, id); err != nil {
		return nil, err
	}

	return &copy, nil
}

func (r *copyRepository) List(ctx context.Context, bookID *int64) ([]*domain.BookCopy, error) {
	ds := pgDialect.From("book_copies").Select(
		"id", "book_id", "inventory_number", "barcode", "copy_number",
		"acquisition_date", "acquisition_source", "price", "location",
		"current_status_id", "condition_notes", "write_off_date",
		"write_off_reason", "created_at",
	)
	if bookID != nil {
		ds = ds.Where(goqu.C("book_id").Eq(*bookID))
	}

	query, args, err := ds.Order(goqu.C("id").Asc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var copies []*domain.BookCopy
	if err := r.db.SelectContext(ctx, &copies, query, args...); err != nil {
		return nil, err
	}

	return copies, nil
}

func (r *copyRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateBookCopyRequest) error {
	record := goqu.Record{}
	if patch.Barcode != nil {
		record["barcode"] = *patch.Barcode
	}
	if patch.CopyNumber != nil {
		record["copy_number"] = *patch.CopyNumber
	}
	if patch.AcquisitionSource != nil {
		record["acquisition_source"] = *patch.AcquisitionSource
	}
	if patch.Price != nil {
		record["price"] = *patch.Price
	}
	if patch.Location != nil {
		record["location"] = *patch.Location
	}
	if patch.ConditionNotes != nil {
		record["condition_notes"] = *patch.ConditionNotes
	}
	if len(record) == 0 {
		return nil
	}

	query, args, err := pgDialect.Update("book_copies").Set(record).
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

func (r *copyRepository) WriteOff(ctx context.Context, id int64, date time.Time, reason string) error {
	query := `
		UPDATE book_copies
		SET current_status_id = (SELECT id FROM book_statuses WHERE code = $2),
			write_off_date = $3,
			write_off_reason = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, domain.BookStatusWrittenOff, date, reason)
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

func (r *copyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM book_copies WHERE id = $1`, id)
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

func (r *copyRepository) StatusCode(ctx context.Context, id int64) (string, error) {
	query := `
		SELECT bs.code
		FROM book_copies bc
		JOIN book_statuses bs ON bs.id = bc.current_status_id
		WHERE bc.id = $1
	`

	var code string
	if err := r.db.GetContext(ctx, &code, query, id); err != nil {
		return "", err
	}

	return code, nil
}
