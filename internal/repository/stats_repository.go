package repository

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/utils"
)

const visitColumns = `
	id, reader_id, visit_date, visit_time, is_remote, purpose, duration_minutes, created_at
`

const referenceRequestColumns = `
	id, reader_id, request_date, request_type, subject, complexity_level,
	completion_time_minutes, is_completed, librarian_notes
`

const dailyStatisticColumns = `
	id, statistic_date, total_visits, physical_visits, remote_visits, new_readers,
	active_readers, total_loans, book_loans, electronic_loans, overdue_loans,
	total_copies, new_copies, written_off_copies, reference_requests,
	complex_requests, calculated_at
`

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CreateVisit(ctx context.Context, visit *domain.Visit) error {
	query := `
		INSERT INTO visits (reader_id, visit_date, visit_time, is_remote, purpose,
			duration_minutes, created_at)
		VALUES ($1, $2, NOW(), $3, $4, $5, NOW())
		RETURNING id, visit_time, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		visit.ReaderID,
		visit.VisitDate,
		visit.IsRemote,
		visit.Purpose,
		visit.DurationMinutes,
	)

	return row.Scan(&visit.ID, &visit.VisitTime, &visit.CreatedAt)
}

func (r *statsRepository) GetVisitByID(ctx context.Context, id int64) (*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`

	var visit domain.Visit
	if err := r.db.GetContext(ctx, &visit, query, id); err != nil {
		return nil, err
	}

	return &visit, nil
}

func (r *statsRepository) ListVisits(ctx context.Context) ([]*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits ORDER BY visit_time DESC`

	var visits []*domain.Visit
	if err := r.db.SelectContext(ctx, &visits, query); err != nil {
		return nil, err
	}

	return visits, nil
}

func (r *statsRepository) PatchVisit(ctx context.Context, id int64, patch *domain.UpdateVisitRequest) error {
	record := goqu.Record{}
	if patch.IsRemote != nil {
		record["is_remote"] = *patch.IsRemote
	}
	if patch.Purpose != nil {
		record["purpose"] = *patch.Purpose
	}
	if patch.DurationMinutes != nil {
		record["duration_minutes"] = *patch.DurationMinutes
	}
	if len(record) == 0 {
		return nil
	}

	query, args, err := pgDialect.Update("visits").Set(record).
		Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	return execAffectingOne(ctx, r.db, query, args...)
}

func (r *statsRepository) DeleteVisit(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM visits WHERE id = $1`, id)
}

func (r *statsRepository) CreateReferenceRequest(ctx context.Context, request *domain.ReferenceRequest) error {
	query := `
		INSERT INTO reference_requests (reader_id, request_date, request_type, subject,
			complexity_level, is_completed)
		VALUES ($1, NOW(), $2, $3, $4, FALSE)
		RETURNING id, request_date, is_completed
	`

	row := r.db.QueryRowxContext(ctx, query,
		request.ReaderID,
		request.RequestType,
		request.Subject,
		request.ComplexityLevel,
	)

	return row.Scan(&request.ID, &request.RequestDate, &request.IsCompleted)
}

func (r *statsRepository) GetReferenceRequestByID(ctx context.Context, id int64) (*domain.ReferenceRequest, error) {
	query := `SELECT ` + referenceRequestColumns + ` FROM reference_requests WHERE id = $1`

	var request domain.ReferenceRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}

	return &request, nil
}

func (r *statsRepository) ListReferenceRequests(ctx context.Context) ([]*domain.ReferenceRequest, error) {
	query := `SELECT ` + referenceRequestColumns + ` FROM reference_requests ORDER BY request_date DESC`

	var requests []*domain.ReferenceRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *statsRepository) PatchReferenceRequest(ctx context.Context, id int64, patch *domain.UpdateReferenceRequestRequest) error {
	record := goqu.Record{}
	if patch.RequestType != nil {
		record["request_type"] = *patch.RequestType
	}
	if patch.Subject != nil {
		record["subject"] = *patch.Subject
	}
	if patch.ComplexityLevel != nil {
		record["complexity_level"] = *patch.ComplexityLevel
	}
	if patch.CompletionTimeMinutes != nil {
		record["completion_time_minutes"] = *patch.CompletionTimeMinutes
	}
	if patch.IsCompleted != nil {
		record["is_completed"] = *patch.IsCompleted
	}
	if patch.LibrarianNotes != nil {
		record["librarian_notes"] = *patch.LibrarianNotes
	}
	if len(record) == 0 {
		return nil
	}

	query, args, err := pgDialect.Update("reference_requests").Set(record).
		Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	return execAffectingOne(ctx, r.db, query, args...)
}

func (r *statsRepository) DeleteReferenceRequest(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM reference_requests WHERE id = $1`, id)
}

func (r *statsRepository) GetDailyStatisticByID(ctx context.Context, id int64) (*domain.DailyStatistic, error) {
	query := `SELECT ` + dailyStatisticColumns + ` FROM daily_statistics WHERE id = $1`

	var stat domain.DailyStatistic
	if err := r.db.GetContext(ctx, &stat, query, id); err != nil {
		return nil, err
	}

	return &stat, nil
}

func (r *statsRepository) ListDailyStatistics(ctx context.Context, limit int) ([]*domain.DailyStatistic, error) {
	ds := pgDialect.From("daily_statistics").Select(
		"id", "statistic_date", "total_visits", "physical_visits", "remote_visits",
		"new_readers", "active_readers", "total_loans", "book_loans",
		"electronic_loans", "overdue_loans", "total_copies", "new_copies",
		"written_off_copies", "reference_requests", "complex_requests", "calculated_at",
	).Order(goqu.C("statistic_date").Desc())
	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var stats []*domain.DailyStatistic
	if err := r.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *statsRepository) DeleteDailyStatistic(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM daily_statistics WHERE id = $1`, id)
}

func (r *statsRepository) UpsertDailyStatistic(ctx context.Context, stat *domain.DailyStatistic) error {
	query := `
		INSERT INTO daily_statistics (statistic_date, total_visits, physical_visits,
			remote_visits, new_readers, active_readers, total_loans, book_loans,
			electronic_loans, overdue_loans, total_copies, new_copies,
			written_off_copies, reference_requests, complex_requests, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (statistic_date) DO UPDATE SET
			total_visits = EXCLUDED.total_visits,
			physical_visits = EXCLUDED.physical_visits,
			remote_visits = EXCLUDED.remote_visits,
			new_readers = EXCLUDED.new_readers,
			active_readers = EXCLUDED.active_readers,
			total_loans = EXCLUDED.total_loans,
			book_loans = EXCLUDED.book_loans,
			electronic_loans = EXCLUDED.electronic_loans,
			overdue_loans = EXCLUDED.overdue_loans,
			total_copies = EXCLUDED.total_copies,
			new_copies = EXCLUDED.new_copies,
			written_off_copies = EXCLUDED.written_off_copies,
			reference_requests = EXCLUDED.reference_requests,
			complex_requests = EXCLUDED.complex_requests,
			calculated_at = NOW()
		RETURNING id, calculated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		stat.StatisticDate,
		stat.TotalVisits, stat.PhysicalVisits, stat.RemoteVisits,
		stat.NewReaders, stat.ActiveReaders,
		stat.TotalLoans, stat.BookLoans, stat.ElectronicLoans, stat.OverdueLoans,
		stat.TotalCopies, stat.NewCopies, stat.WrittenOffCopies,
		stat.ReferenceRequests, stat.ComplexRequests,
	)

	return row.Scan(&stat.ID, &stat.CalculatedAt)
}

func (r *statsRepository) CalculateDailyStatistic(ctx context.Context, day time.Time) (*domain.DailyStatistic, error) {
	day = utils.DateOnly(day)

	query := `
		SELECT
			(SELECT COUNT(*) FROM visits WHERE visit_date = $1) AS total_visits,
			(SELECT COUNT(*) FROM visits WHERE visit_date = $1 AND NOT is_remote) AS physical_visits,
			(SELECT COUNT(*) FROM visits WHERE visit_date = $1 AND is_remote) AS remote_visits,
			(SELECT COUNT(*) FROM readers WHERE registration_date = $1) AS new_readers,
			(SELECT COUNT(*) FROM readers WHERE is_active) AS active_readers,
			(SELECT COUNT(*) FROM loans WHERE loan_date = $1) AS total_loans,
			(SELECT COUNT(*) FROM loans l
				JOIN book_copies bc ON bc.id = l.book_copy_id
				JOIN books b ON b.id = bc.book_id
				WHERE l.loan_date = $1 AND NOT b.is_electronic) AS book_loans,
			(SELECT COUNT(*) FROM loans l
				JOIN book_copies bc ON bc.id = l.book_copy_id
				JOIN books b ON b.id = bc.book_id
				WHERE l.loan_date = $1 AND b.is_electronic) AS electronic_loans,
			(SELECT COUNT(*) FROM loans WHERE return_date IS NULL AND due_date < $1) AS overdue_loans,
			(SELECT COUNT(*) FROM book_copies) AS total_copies,
			(SELECT COUNT(*) FROM book_copies WHERE acquisition_date = $1) AS new_copies,
			(SELECT COUNT(*) FROM book_copies WHERE write_off_date = $1) AS written_off_copies,
			(SELECT COUNT(*) FROM reference_requests WHERE request_date::date = $1) AS reference_requests,
			(SELECT COUNT(*) FROM reference_requests
				WHERE request_date::date = $1 AND complexity_level = 'complex') AS complex_requests
	`

	var stat domain.DailyStatistic
	if err := r.db.GetContext(ctx, &stat, query, day); err != nil {
		return nil, err
	}
	stat.StatisticDate = day

	return &stat, nil
}

func (r *statsRepository) SummaryCounts(ctx context.Context, today time.Time) (*domain.SummaryCounts, error) {
	today = utils.DateOnly(today)

	query := `
		SELECT
			(SELECT COUNT(*) FROM readers) AS total_readers,
			(SELECT COUNT(*) FROM readers WHERE is_active) AS active_readers,
			(SELECT COUNT(*) FROM books) AS total_books,
			(SELECT COUNT(*) FROM books WHERE is_electronic) AS electronic_books,
			(SELECT COUNT(*) FROM book_copies) AS total_copies,
			(SELECT COUNT(*) FROM authors) AS total_authors,
			(SELECT COUNT(*) FROM loans) AS total_loans,
			(SELECT COUNT(*) FROM loans WHERE return_date IS NULL) AS active_loans,
			(SELECT COUNT(*) FROM loans WHERE return_date IS NULL AND due_date < $1) AS overdue_loans,
			(SELECT COUNT(*) FROM visits WHERE visit_date = $1) AS visits_today,
			(SELECT COUNT(*) FROM reference_requests) AS reference_requests_total,
			(SELECT COUNT(*) FROM reference_requests WHERE is_completed) AS reference_requests_completed
	`

	var counts domain.SummaryCounts
	if err := r.db.GetContext(ctx, &counts, query, today); err != nil {
		return nil, err
	}

	return &counts, nil
}
