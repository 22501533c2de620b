package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
)

const readerColumns = `
	id, last_name, first_name, middle_name, birth_date, category_id, phone, email,
	address, document_type, document_number, document_issued_by, document_issued_date,
	registration_date, card_expiry_date, is_active, notes, created_at, updated_at
`

var readerSelectColumns = []interface{}{
	"id", "last_name", "first_name", "middle_name", "birth_date", "category_id",
	"phone", "email", "address", "document_type", "document_number",
	"document_issued_by", "document_issued_date", "registration_date",
	"card_expiry_date", "is_active", "notes", "created_at", "updated_at",
}

type readerRepository struct {
	db *sqlx.DB
}

func NewReaderRepository(db *sqlx.DB) ReaderRepository {
	return &readerRepository{db: db}
}

func (r *readerRepository) Create(ctx context.Context, reader *domain.Reader) error {
	query := `
		INSERT INTO readers (last_name, first_name, middle_name, birth_date, category_id,
			phone, email, address, document_type, document_number, document_issued_by,
			document_issued_date, registration_date, card_expiry_date, is_active, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, TRUE, $15, NOW())
		RETURNING id, is_active, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		reader.LastName,
		reader.FirstName,
		reader.MiddleName,
		reader.BirthDate,
		reader.CategoryID,
		reader.Phone,
		reader.Email,
		reader.Address,
		reader.DocumentType,
		reader.DocumentNumber,
		reader.DocumentIssuedBy,
		reader.DocumentIssuedDate,
		reader.RegistrationDate,
		reader.CardExpiryDate,
		reader.Notes,
	)

	return row.Scan(&reader.ID, &reader.IsActive, &reader.CreatedAt)
}

func (r *readerRepository) GetByID(ctx context.Context, id int64) (*domain.Reader, error) {
	query := `SELECT ` + readerColumns + ` FROM readers WHERE id = $1`

	var reader domain.Reader
	if err := r.db.GetContext(ctx, &reader, query, id); err != nil {
		return nil, err
	}

	return &reader, nil
}

func (r *readerRepository) List(ctx context.Context) ([]*domain.Reader, error) {
	query := `SELECT ` + readerColumns + ` FROM readers ORDER BY last_name, first_name`

	var readers []*domain.Reader
	if err := r.db.SelectContext(ctx, &readers, query); err != nil {
		return nil, err
	}

	return readers, nil
}

func (r *readerRepository) Search(ctx context.Context, filter domain.ReaderSearchFilter) ([]*domain.Reader, error) {
	ds := pgDialect.From("readers").Select(readerSelectColumns...)

	if filter.LastName != "" {
		ds = ds.Where(goqu.C("last_name").ILike("%" + filter.LastName + "%"))
	}
	if filter.FirstName != "" {
		ds = ds.Where(goqu.C("first_name").ILike("%" + filter.FirstName + "%"))
	}
	if filter.Phone != "" {
		ds = ds.Where(goqu.C("phone").ILike("%" + filter.Phone + "%"))
	}
	if filter.Email != "" {
		ds = ds.Where(goqu.C("email").ILike("%" + filter.Email + "%"))
	}
	if filter.IsActive != nil {
		ds = ds.Where(goqu.C("is_active").Eq(*filter.IsActive))
	}

	query, args, err := ds.Order(goqu.C("last_name").Asc(), goqu.C("first_name").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var readers []*domain.Reader
	if err := r.db.SelectContext(ctx, &readers, query, args...); err != nil {
		return nil, err
	}

	return readers, nil
}

func (r *readerRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateReaderRequest) error {
	record := goqu.Record{"updated_at": goqu.L("NOW()")}
	if patch.LastName != nil {
		record["last_name"] = *patch.LastName
	}
	if patch.FirstName != nil {
		record["first_name"] = *patch.FirstName
	}
	if patch.MiddleName != nil {
		record["middle_name"] = *patch.MiddleName
	}
	if patch.BirthDate != nil {
		record["birth_date"] = *patch.BirthDate
	}
	if patch.CategoryID != nil {
		record["category_id"] = *patch.CategoryID
	}
	if patch.Phone != nil {
		record["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		record["email"] = *patch.Email
	}
	if patch.Address != nil {
		record["address"] = *patch.Address
	}
	if patch.DocumentType != nil {
		record["document_type"] = *patch.DocumentType
	}
	if patch.DocumentNumber != nil {
		record["document_number"] = *patch.DocumentNumber
	}
	if patch.DocumentIssuedBy != nil {
		record["document_issued_by"] = *patch.DocumentIssuedBy
	}
	if patch.DocumentIssuedDate != nil {
		record["document_issued_date"] = *patch.DocumentIssuedDate
	}
	if patch.CardExpiryDate != nil {
		record["card_expiry_date"] = *patch.CardExpiryDate
	}
	if patch.IsActive != nil {
		record["is_active"] = *patch.IsActive
	}
	if patch.Notes != nil {
		record["notes"] = *patch.Notes
	}

	query, args, err := pgDialect.Update("readers").Set(record).
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

func (r *readerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM readers WHERE id = $1`, id)
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

func (r *readerRepository) GetCategory(ctx context.Context, categoryID int64) (*domain.ReaderCategory, error) {
	query := `
		SELECT id, code, name, loan_limit, loan_period, has_remote_access
		FROM reader_categories
		WHERE id = $1
	`

	var category domain.ReaderCategory
	if err := r.db.GetContext(ctx, &category, query, categoryID); err != nil {
		return nil, err
	}

	return &category, nil
}
