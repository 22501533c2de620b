package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
)

const reservationColumns = `
	id, book_id, reader_id, reservation_date, expiration_date, status, priority, notes
`

type reservationRepository struct {
	db *sqlx.DB
}

func NewReservationRepository(db *sqlx.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (book_id, reader_id, reservation_date, expiration_date,
			status, priority, notes)
		VALUES ($1, $2, NOW(), $3, $4, $5, $6)
		RETURNING id, reservation_date
	`

	row := r.db.QueryRowxContext(ctx, query,
		reservation.BookID,
		reservation.ReaderID,
		reservation.ExpirationDate,
		reservation.Status,
		reservation.Priority,
		reservation.Notes,
	)

	return row.Scan(&reservation.ID, &reservation.ReservationDate)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	var reservation domain.Reservation
	if err := r.db.GetContext(ctx, &reservation, query, id); err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (r *reservationRepository) List(ctx context.Context, bookID *int64) ([]*domain.Reservation, error) {
	ds := pgDialect.From("reservations").Select(
		"id", "book_id", "reader_id", "reservation_date", "expiration_date",
		"status", "priority", "notes",
	)
	if bookID != nil {
		ds = ds.Where(goqu.C("book_id").Eq(*bookID))
	}

	query, args, err := ds.Order(goqu.C("reservation_date").Desc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var reservations []*domain.Reservation
	if err := r.db.SelectContext(ctx, &reservations, query, args...); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *reservationRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateReservationRequest) error {
	record := goqu.Record{}
	if patch.ExpirationDate != nil {
		record["expiration_date"] = *patch.ExpirationDate
	}
	if patch.Status != nil {
		record["status"] = *patch.Status
	}
	if patch.Priority != nil {
		record["priority"] = *patch.Priority
	}
	if patch.Notes != nil {
		record["notes"] = *patch.Notes
	}
	if len(record) == 0 {
		return nil
	}

	query, args, err := pgDialect.Update("reservations").Set(record).
		Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	return execAffectingOne(ctx, r.db, query, args...)
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM reservations WHERE id = $1`, id)
}
