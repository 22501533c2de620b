package repository

import (
	"context"
	"time"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
)

// LoanRepository defines the interface for loan data operations.
// The lifecycle methods keep the Loan row and the BookCopy status in one
// transaction so a copy never reflects more than one open loan.
type LoanRepository interface {
	// CreateActive claims the copy (AVAILABLE -> LOANED) and inserts the loan
	// in one transaction. Returns ErrCopyNotAvailable when the claim misses,
	// ErrLoanLimitExceeded when the reader is at loanLimit open loans.
	CreateActive(ctx context.Context, loan *domain.Loan, loanLimit int) error

	// GetByID retrieves a loan by its ID
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)

	// List retrieves loans matching the filter; the overdue filter is the
	// computed predicate (open and due before asOf).
	List(ctx context.Context, filter domain.LoanFilter, asOf time.Time) ([]*domain.Loan, error)

	// UpdateRenewal persists due date, renewal count and last renewal date
	UpdateRenewal(ctx context.Context, loan *domain.Loan) error

	// Close sets return date, status and final fine, and releases the copy
	// (LOANED -> AVAILABLE) in one transaction. A copy flagged LOST or
	// DAMAGED in the meantime keeps its status.
	Close(ctx context.Context, loan *domain.Loan) error

	// MarkLost moves loan and copy to LOST in one transaction
	MarkLost(ctx context.Context, loan *domain.Loan) error

	// SettleFine inserts the fine payment and flags the loan paid in one
	// transaction
	SettleFine(ctx context.Context, loan *domain.Loan, payment *domain.Payment) error

	// Patch applies the enumerated annotation fields
	Patch(ctx context.Context, id int64, patch *domain.UpdateLoanRequest) error

	// Delete removes a loan row (kept for CRUD parity; does not touch the copy)
	Delete(ctx context.Context, id int64) error

	// CountOpenByReader counts a reader's loans without a return date
	CountOpenByReader(ctx context.Context, readerID int64) (int, error)
}

// CopyRepository defines the interface for book copy data operations
type CopyRepository interface {
	Create(ctx context.Context, copy *domain.BookCopy) error
	GetByID(ctx context.Context, id int64) (*domain.BookCopy, error)
	List(ctx context.Context, bookID *int64) ([]*domain.BookCopy, error)
	Patch(ctx context.Context, id int64, patch *domain.UpdateBookCopyRequest) error
	WriteOff(ctx context.Context, id int64, date time.Time, reason string) error
	Delete(ctx context.Context, id int64) error

	// StatusCode resolves the copy's current status to its lookup code
	StatusCode(ctx context.Context, id int64) (string, error)
}

// ReaderRepository defines the interface for reader data operations
type ReaderRepository interface {
	Create(ctx context.Context, reader *domain.Reader) error
	GetByID(ctx context.Context, id int64) (*domain.Reader, error)
	List(ctx context.Context) ([]*domain.Reader, error)
	Search(ctx context.Context, filter domain.ReaderSearchFilter) ([]*domain.Reader, error)
	Patch(ctx context.Context, id int64, patch *domain.UpdateReaderRequest) error
	Delete(ctx context.Context, id int64) error

	// GetCategory resolves a reader category (loan limit, loan period)
	GetCategory(ctx context.Context, categoryID int64) (*domain.ReaderCategory, error)
}

// BookRepository defines the interface for bibliographic data operations
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Search(ctx context.Context, filter domain.BookSearchFilter) ([]*domain.Book, error)
	Patch(ctx context.Context, id int64, patch *domain.UpdateBookRequest) error
	Delete(ctx context.Context, id int64) error

	CreateAuthor(ctx context.Context, author *domain.Author) error
	GetAuthorByID(ctx context.Context, id int64) (*domain.Author, error)
	ListAuthors(ctx context.Context) ([]*domain.Author, error)
	UpdateAuthor(ctx context.Context, author *domain.Author) error
	DeleteAuthor(ctx context.Context, id int64) error

	CreateBookAuthor(ctx context.Context, link *domain.BookAuthor) error
	GetBookAuthorByID(ctx context.Context, id int64) (*domain.BookAuthor, error)
	ListBookAuthors(ctx context.Context) ([]*domain.BookAuthor, error)
	UpdateBookAuthor(ctx context.Context, link *domain.BookAuthor) error
	DeleteBookAuthor(ctx context.Context, id int64) error

	// AuthorBookCounts aggregates per-book copy counts for one author
	AuthorBookCounts(ctx context.Context, authorID int64) ([]*domain.AuthorBookCopies, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context, readerID *int64) ([]*domain.Payment, error)
	Patch(ctx context.Context, id int64, patch *domain.UpdatePaymentRequest) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository defines the interface for reservation data operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, bookID *int64) ([]*domain.Reservation, error)
	Patch(ctx context.Context, id int64, patch *domain.UpdateReservationRequest) error
	Delete(ctx context.Context, id int64) error
}

// StatsRepository defines the interface for visits, reference requests and
// the statistics aggregates
type StatsRepository interface {
	CreateVisit(ctx context.Context, visit *domain.Visit) error
	GetVisitByID(ctx context.Context, id int64) (*domain.Visit, error)
	ListVisits(ctx context.Context) ([]*domain.Visit, error)
	PatchVisit(ctx context.Context, id int64, patch *domain.UpdateVisitRequest) error
	DeleteVisit(ctx context.Context, id int64) error

	CreateReferenceRequest(ctx context.Context, request *domain.ReferenceRequest) error
	GetReferenceRequestByID(ctx context.Context, id int64) (*domain.ReferenceRequest, error)
	ListReferenceRequests(ctx context.Context) ([]*domain.ReferenceRequest, error)
	PatchReferenceRequest(ctx context.Context, id int64, patch *domain.UpdateReferenceRequestRequest) error
	DeleteReferenceRequest(ctx context.Context, id int64) error

	GetDailyStatisticByID(ctx context.Context, id int64) (*domain.DailyStatistic, error)
	ListDailyStatistics(ctx context.Context, limit int) ([]*domain.DailyStatistic, error)
	DeleteDailyStatistic(ctx context.Context, id int64) error

	// UpsertDailyStatistic writes one day's aggregate, replacing any row for
	// the same date (the nightly job reruns safely)
	UpsertDailyStatistic(ctx context.Context, stat *domain.DailyStatistic) error

	// CalculateDailyStatistic aggregates one day's activity from the live tables
	CalculateDailyStatistic(ctx context.Context, day time.Time) (*domain.DailyStatistic, error)

	// SummaryCounts aggregates the live library summary
	SummaryCounts(ctx context.Context, today time.Time) (*domain.SummaryCounts, error)
}

// LookupRepository defines CRUD over the nine reference tables
type LookupRepository interface {
	CreateEditionType(ctx context.Context, et *domain.EditionType) error
	GetEditionTypeByID(ctx context.Context, id int64) (*domain.EditionType, error)
	ListEditionTypes(ctx context.Context) ([]*domain.EditionType, error)
	UpdateEditionType(ctx context.Context, et *domain.EditionType) error
	DeleteEditionType(ctx context.Context, id int64) error

	CreateLanguage(ctx context.Context, l *domain.Language) error
	GetLanguageByID(ctx context.Context, id int64) (*domain.Language, error)
	ListLanguages(ctx context.Context) ([]*domain.Language, error)
	UpdateLanguage(ctx context.Context, l *domain.Language) error
	DeleteLanguage(ctx context.Context, id int64) error

	CreateCountry(ctx context.Context, c *domain.Country) error
	GetCountryByID(ctx context.Context, id int64) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]*domain.Country, error)
	UpdateCountry(ctx context.Context, c *domain.Country) error
	DeleteCountry(ctx context.Context, id int64) error

	CreateCity(ctx context.Context, c *domain.City) error
	GetCityByID(ctx context.Context, id int64) (*domain.City, error)
	ListCities(ctx context.Context) ([]*domain.City, error)
	UpdateCity(ctx context.Context, c *domain.City) error
	DeleteCity(ctx context.Context, id int64) error

	CreatePublisher(ctx context.Context, p *domain.Publisher) error
	GetPublisherByID(ctx context.Context, id int64) (*domain.Publisher, error)
	ListPublishers(ctx context.Context) ([]*domain.Publisher, error)
	UpdatePublisher(ctx context.Context, p *domain.Publisher) error
	DeletePublisher(ctx context.Context, id int64) error

	CreateReaderCategory(ctx context.Context, rc *domain.ReaderCategory) error
	GetReaderCategoryByID(ctx context.Context, id int64) (*domain.ReaderCategory, error)
	ListReaderCategories(ctx context.Context) ([]*domain.ReaderCategory, error)
	UpdateReaderCategory(ctx context.Context, rc *domain.ReaderCategory) error
	DeleteReaderCategory(ctx context.Context, id int64) error

	CreateBookStatus(ctx context.Context, s *domain.BookStatus) error
	GetBookStatusByID(ctx context.Context, id int64) (*domain.BookStatus, error)
	ListBookStatuses(ctx context.Context) ([]*domain.BookStatus, error)
	UpdateBookStatus(ctx context.Context, s *domain.BookStatus) error
	DeleteBookStatus(ctx context.Context, id int64) error

	CreateLoanStatus(ctx context.Context, s *domain.LoanStatus) error
	GetLoanStatusByID(ctx context.Context, id int64) (*domain.LoanStatus, error)
	ListLoanStatuses(ctx context.Context) ([]*domain.LoanStatus, error)
	UpdateLoanStatus(ctx context.Context, s *domain.LoanStatus) error
	DeleteLoanStatus(ctx context.Context, id int64) error

	CreateOperationType(ctx context.Context, ot *domain.OperationType) error
	GetOperationTypeByID(ctx context.Context, id int64) (*domain.OperationType, error)
	ListOperationTypes(ctx context.Context) ([]*domain.OperationType, error)
	UpdateOperationType(ctx context.Context, ot *domain.OperationType) error
	DeleteOperationType(ctx context.Context, id int64) error

	// OperationTypeIDByCode resolves an operation type code (e.g. FINE)
	OperationTypeIDByCode(ctx context.Context, code string) (int64, error)
}
