package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
)

type lookupRepository struct {
	db *sqlx.DB
}

func NewLookupRepository(db *sqlx.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) CreateEditionType(ctx context.Context, et *domain.EditionType) error {
	query := `
		INSERT INTO edition_types (code, name, description, gost_reference)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRowxContext(ctx, query, et.Code, et.Name, et.Description, et.GostReference).Scan(&et.ID)
}

func (r *lookupRepository) GetEditionTypeByID(ctx context.Context, id int64) (*domain.EditionType, error) {
	var et domain.EditionType
	query := `SELECT id, code, name, description, gost_reference FROM edition_types WHERE id = $1`
	if err := r.db.GetContext(ctx, &et, query, id); err != nil {
		return nil, err
	}
	return &et, nil
}

func (r *lookupRepository) ListEditionTypes(ctx context.Context) ([]*domain.EditionType, error) {
	var items []*domain.EditionType
	query := `SELECT id, code, name, description, gost_reference FROM edition_types ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateEditionType(ctx context.Context, et *domain.EditionType) error {
	query := `
		UPDATE edition_types
		SET code = $2, name = $3, description = $4, gost_reference = $5
		WHERE id = $1
	`
	return execAffectingOne(ctx, r.db, query, et.ID, et.Code, et.Name, et.Description, et.GostReference)
}

func (r *lookupRepository) DeleteEditionType(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM edition_types WHERE id = $1`, id)
}

func (r *lookupRepository) CreateLanguage(ctx context.Context, l *domain.Language) error {
	query := `INSERT INTO languages (iso_code, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowxContext(ctx, query, l.ISOCode, l.Name).Scan(&l.ID)
}

func (r *lookupRepository) GetLanguageByID(ctx context.Context, id int64) (*domain.Language, error) {
	var l domain.Language
	query := `SELECT id, iso_code, name FROM languages WHERE id = $1`
	if err := r.db.GetContext(ctx, &l, query, id); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lookupRepository) ListLanguages(ctx context.Context) ([]*domain.Language, error) {
	var items []*domain.Language
	query := `SELECT id, iso_code, name FROM languages ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateLanguage(ctx context.Context, l *domain.Language) error {
	query := `UPDATE languages SET iso_code = $2, name = $3 WHERE id = $1`
	return execAffectingOne(ctx, r.db, query, l.ID, l.ISOCode, l.Name)
}

func (r *lookupRepository) DeleteLanguage(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM languages WHERE id = $1`, id)
}

func (r *lookupRepository) CreateCountry(ctx context.Context, c *domain.Country) error {
	query := `INSERT INTO countries (iso_code, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowxContext(ctx, query, c.ISOCode, c.Name).Scan(&c.ID)
}

func (r *lookupRepository) GetCountryByID(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	query := `SELECT id, iso_code, name FROM countries WHERE id = $1`
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *lookupRepository) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	var items []*domain.Country
	query := `SELECT id, iso_code, name FROM countries ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateCountry(ctx context.Context, c *domain.Country) error {
	query := `UPDATE countries SET iso_code = $2, name = $3 WHERE id = $1`
	return execAffectingOne(ctx, r.db, query, c.ID, c.ISOCode, c.Name)
}

func (r *lookupRepository) DeleteCountry(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM countries WHERE id = $1`, id)
}

func (r *lookupRepository) CreateCity(ctx context.Context, c *domain.City) error {
	query := `INSERT INTO cities (name, country_id) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowxContext(ctx, query, c.Name, c.CountryID).Scan(&c.ID)
}

func (r *lookupRepository) GetCityByID(ctx context.Context, id int64) (*domain.City, error) {
	var c domain.City
	query := `SELECT id, name, country_id FROM cities WHERE id = $1`
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *lookupRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	var items []*domain.City
	query := `SELECT id, name, country_id FROM cities ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateCity(ctx context.Context, c *domain.City) error {
	query := `UPDATE cities SET name = $2, country_id = $3 WHERE id = $1`
	return execAffectingOne(ctx, r.db, query, c.ID, c.Name, c.CountryID)
}

func (r *lookupRepository) DeleteCity(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM cities WHERE id = $1`, id)
}

func (r *lookupRepository) CreatePublisher(ctx context.Context, p *domain.Publisher) error {
	query := `
		INSERT INTO publishers (name, city_id, address, website)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRowxContext(ctx, query, p.Name, p.CityID, p.Address, p.Website).Scan(&p.ID)
}

func (r *lookupRepository) GetPublisherByID(ctx context.Context, id int64) (*domain.Publisher, error) {
	var p domain.Publisher
	query := `SELECT id, name, city_id, address, website FROM publishers WHERE id = $1`
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *lookupRepository) ListPublishers(ctx context.Context) ([]*domain.Publisher, error) {
	var items []*domain.Publisher
	query := `SELECT id, name, city_id, address, website FROM publishers ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdatePublisher(ctx context.Context, p *domain.Publisher) error {
	query := `
		UPDATE publishers
		SET name = $2, city_id = $3, address = $4, website = $5
		WHERE id = $1
	`
	return execAffectingOne(ctx, r.db, query, p.ID, p.Name, p.CityID, p.Address, p.Website)
}

func (r *lookupRepository) DeletePublisher(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM publishers WHERE id = $1`, id)
}

func (r *lookupRepository) CreateReaderCategory(ctx context.Context, rc *domain.ReaderCategory) error {
	query := `
		INSERT INTO reader_categories (code, name, loan_limit, loan_period, has_remote_access)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRowxContext(ctx, query,
		rc.Code, rc.Name, rc.LoanLimit, rc.LoanPeriod, rc.HasRemoteAccess).Scan(&rc.ID)
}

func (r *lookupRepository) GetReaderCategoryByID(ctx context.Context, id int64) (*domain.ReaderCategory, error) {
	var rc domain.ReaderCategory
	query := `
		SELECT id, code, name, loan_limit, loan_period, has_remote_access
		FROM reader_categories WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &rc, query, id); err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *lookupRepository) ListReaderCategories(ctx context.Context) ([]*domain.ReaderCategory, error) {
	var items []*domain.ReaderCategory
	query := `
		SELECT id, code, name, loan_limit, loan_period, has_remote_access
		FROM reader_categories ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateReaderCategory(ctx context.Context, rc *domain.ReaderCategory) error {
	query := `
		UPDATE reader_categories
		SET code = $2, name = $3, loan_limit = $4, loan_period = $5, has_remote_access = $6
		WHERE id = $1
	`
	return execAffectingOne(ctx, r.db, query,
		rc.ID, rc.Code, rc.Name, rc.LoanLimit, rc.LoanPeriod, rc.HasRemoteAccess)
}

func (r *lookupRepository) DeleteReaderCategory(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM reader_categories WHERE id = $1`, id)
}

func (r *lookupRepository) CreateBookStatus(ctx context.Context, s *domain.BookStatus) error {
	query := `INSERT INTO book_statuses (code, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowxContext(ctx, query, s.Code, s.Name).Scan(&s.ID)
}

func (r *lookupRepository) GetBookStatusByID(ctx context.Context, id int64) (*domain.BookStatus, error) {
	var s domain.BookStatus
	query := `SELECT id, code, name FROM book_statuses WHERE id = $1`
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *lookupRepository) ListBookStatuses(ctx context.Context) ([]*domain.BookStatus, error) {
	var items []*domain.BookStatus
	query := `SELECT id, code, name FROM book_statuses ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateBookStatus(ctx context.Context, s *domain.BookStatus) error {
	query := `UPDATE book_statuses SET code = $2, name = $3 WHERE id = $1`
	return execAffectingOne(ctx, r.db, query, s.ID, s.Code, s.Name)
}

func (r *lookupRepository) DeleteBookStatus(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM book_statuses WHERE id = $1`, id)
}

func (r *lookupRepository) CreateLoanStatus(ctx context.Context, s *domain.LoanStatus) error {
	query := `INSERT INTO loan_statuses (code, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowxContext(ctx, query, s.Code, s.Name).Scan(&s.ID)
}

func (r *lookupRepository) GetLoanStatusByID(ctx context.Context, id int64) (*domain.LoanStatus, error) {
	var s domain.LoanStatus
	query := `SELECT id, code, name FROM loan_statuses WHERE id = $1`
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *lookupRepository) ListLoanStatuses(ctx context.Context) ([]*domain.LoanStatus, error) {
	var items []*domain.LoanStatus
	query := `SELECT id, code, name FROM loan_statuses ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateLoanStatus(ctx context.Context, s *domain.LoanStatus) error {
	query := `UPDATE loan_statuses SET code = $2, name = $3 WHERE id = $1`
	return execAffectingOne(ctx, r.db, query, s.ID, s.Code, s.Name)
}

func (r *lookupRepository) DeleteLoanStatus(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM loan_statuses WHERE id = $1`, id)
}

func (r *lookupRepository) CreateOperationType(ctx context.Context, ot *domain.OperationType) error {
	query := `INSERT INTO operation_types (code, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowxContext(ctx, query, ot.Code, ot.Name).Scan(&ot.ID)
}

func (r *lookupRepository) GetOperationTypeByID(ctx context.Context, id int64) (*domain.OperationType, error) {
	var ot domain.OperationType
	query := `SELECT id, code, name FROM operation_types WHERE id = $1`
	if err := r.db.GetContext(ctx, &ot, query, id); err != nil {
		return nil, err
	}
	return &ot, nil
}

func (r *lookupRepository) ListOperationTypes(ctx context.Context) ([]*domain.OperationType, error) {
	var items []*domain.OperationType
	query := `SELECT id, code, name FROM operation_types ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *lookupRepository) UpdateOperationType(ctx context.Context, ot *domain.OperationType) error {
	query := `UPDATE operation_types SET code = $2, name = $3 WHERE id = $1`
	return execAffectingOne(ctx, r.db, query, ot.ID, ot.Code, ot.Name)
}

func (r *lookupRepository) DeleteOperationType(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM operation_types WHERE id = $1`, id)
}

func (r *lookupRepository) OperationTypeIDByCode(ctx context.Context, code string) (int64, error) {
	var id int64
	query := `SELECT id FROM operation_types WHERE code = $1`
	if err := r.db.GetContext(ctx, &id, query, code); err != nil {
		return 0, err
	}
	return id, nil
}
