package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
)

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) CreateActive(ctx context.Context, loan *domain.Loan, loanLimit int) error {
	args := m.Called(ctx, loan, loanLimit)
	return args.Error(0)
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) List(ctx context.Context, filter domain.LoanFilter, asOf time.Time) ([]*domain.Loan, error) {
	args := m.Called(ctx, filter, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) UpdateRenewal(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) Close(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) MarkLost(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) SettleFine(ctx context.Context, loan *domain.Loan, payment *domain.Payment) error {
	args := m.Called(ctx, loan, payment)
	return args.Error(0)
}

func (m *MockLoanRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateLoanRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockLoanRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLoanRepository) CountOpenByReader(ctx context.Context, readerID int64) (int, error) {
	args := m.Called(ctx, readerID)
	return args.Int(0), args.Error(1)
}

type MockCopyRepository struct {
	mock.Mock
}

func (m *MockCopyRepository) Create(ctx context.Context, copy *domain.BookCopy) error {
	args := m.Called(ctx, copy)
	return args.Error(0)
}

func (m *MockCopyRepository) GetByID(ctx context.Context, id int64) (*domain.BookCopy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookCopy), args.Error(1)
}

func (m *MockCopyRepository) List(ctx context.Context, bookID *int64) ([]*domain.BookCopy, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookCopy), args.Error(1)
}

func (m *MockCopyRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateBookCopyRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCopyRepository) WriteOff(ctx context.Context, id int64, date time.Time, reason string) error {
	args := m.Called(ctx, id, date, reason)
	return args.Error(0)
}

func (m *MockCopyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCopyRepository) StatusCode(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type MockReaderRepository struct {
	mock.Mock
}

func (m *MockReaderRepository) Create(ctx context.Context, reader *domain.Reader) error {
	args := m.Called(ctx, reader)
	return args.Error(0)
}

func (m *MockReaderRepository) GetByID(ctx context.Context, id int64) (*domain.Reader, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reader), args.Error(1)
}

func (m *MockReaderRepository) List(ctx context.Context) ([]*domain.Reader, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reader), args.Error(1)
}

func (m *MockReaderRepository) Search(ctx context.Context, filter domain.ReaderSearchFilter) ([]*domain.Reader, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reader), args.Error(1)
}

func (m *MockReaderRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateReaderRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockReaderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReaderRepository) GetCategory(ctx context.Context, categoryID int64) (*domain.ReaderCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReaderCategory), args.Error(1)
}

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Book), args.Error(1)
}

func (m *MockBookRepository) Search(ctx context.Context, filter domain.BookSearchFilter) ([]*domain.Book, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Book), args.Error(1)
}

func (m *MockBookRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateBookRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) CreateAuthor(ctx context.Context, author *domain.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockBookRepository) GetAuthorByID(ctx context.Context, id int64) (*domain.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}

func (m *MockBookRepository) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Author), args.Error(1)
}

func (m *MockBookRepository) UpdateAuthor(ctx context.Context, author *domain.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteAuthor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) CreateBookAuthor(ctx context.Context, link *domain.BookAuthor) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockBookRepository) GetBookAuthorByID(ctx context.Context, id int64) (*domain.BookAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookAuthor), args.Error(1)
}

func (m *MockBookRepository) ListBookAuthors(ctx context.Context) ([]*domain.BookAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookAuthor), args.Error(1)
}

func (m *MockBookRepository) UpdateBookAuthor(ctx context.Context, link *domain.BookAuthor) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteBookAuthor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) AuthorBookCounts(ctx context.Context, authorID int64) ([]*domain.AuthorBookCopies, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AuthorBookCopies), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, readerID *int64) ([]*domain.Payment, error) {
	args := m.Called(ctx, readerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Patch(ctx context.Context, id int64, patch *domain.UpdatePaymentRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) List(ctx context.Context, bookID *int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Patch(ctx context.Context, id int64, patch *domain.UpdateReservationRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CreateVisit(ctx context.Context, visit *domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockStatsRepository) GetVisitByID(ctx context.Context, id int64) (*domain.Visit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockStatsRepository) ListVisits(ctx context.Context) ([]*domain.Visit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Visit), args.Error(1)
}

func (m *MockStatsRepository) PatchVisit(ctx context.Context, id int64, patch *domain.UpdateVisitRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockStatsRepository) DeleteVisit(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatsRepository) CreateReferenceRequest(ctx context.Context, request *domain.ReferenceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockStatsRepository) GetReferenceRequestByID(ctx context.Context, id int64) (*domain.ReferenceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceRequest), args.Error(1)
}

func (m *MockStatsRepository) ListReferenceRequests(ctx context.Context) ([]*domain.ReferenceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReferenceRequest), args.Error(1)
}

func (m *MockStatsRepository) PatchReferenceRequest(ctx context.Context, id int64, patch *domain.UpdateReferenceRequestRequest) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockStatsRepository) DeleteReferenceRequest(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatsRepository) GetDailyStatisticByID(ctx context.Context, id int64) (*domain.DailyStatistic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStatistic), args.Error(1)
}

func (m *MockStatsRepository) ListDailyStatistics(ctx context.Context, limit int) ([]*domain.DailyStatistic, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DailyStatistic), args.Error(1)
}

func (m *MockStatsRepository) DeleteDailyStatistic(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatsRepository) UpsertDailyStatistic(ctx context.Context, stat *domain.DailyStatistic) error {
	args := m.Called(ctx, stat)
	return args.Error(0)
}

func (m *MockStatsRepository) CalculateDailyStatistic(ctx context.Context, day time.Time) (*domain.DailyStatistic, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStatistic), args.Error(1)
}

func (m *MockStatsRepository) SummaryCounts(ctx context.Context, today time.Time) (*domain.SummaryCounts, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryCounts), args.Error(1)
}

type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) CreateEditionType(ctx context.Context, et *domain.EditionType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func (m *MockLookupRepository) GetEditionTypeByID(ctx context.Context, id int64) (*domain.EditionType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EditionType), args.Error(1)
}

func (m *MockLookupRepository) ListEditionTypes(ctx context.Context) ([]*domain.EditionType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EditionType), args.Error(1)
}

func (m *MockLookupRepository) UpdateEditionType(ctx context.Context, et *domain.EditionType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteEditionType(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreateLanguage(ctx context.Context, l *domain.Language) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLookupRepository) GetLanguageByID(ctx context.Context, id int64) (*domain.Language, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}

func (m *MockLookupRepository) ListLanguages(ctx context.Context) ([]*domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Language), args.Error(1)
}

func (m *MockLookupRepository) UpdateLanguage(ctx context.Context, l *domain.Language) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteLanguage(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreateCountry(ctx context.Context, c *domain.Country) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockLookupRepository) GetCountryByID(ctx context.Context, id int64) (*domain.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockLookupRepository) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Country), args.Error(1)
}

func (m *MockLookupRepository) UpdateCountry(ctx context.Context, c *domain.Country) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteCountry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreateCity(ctx context.Context, c *domain.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockLookupRepository) GetCityByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockLookupRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *MockLookupRepository) UpdateCity(ctx context.Context, c *domain.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteCity(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreatePublisher(ctx context.Context, p *domain.Publisher) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLookupRepository) GetPublisherByID(ctx context.Context, id int64) (*domain.Publisher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Publisher), args.Error(1)
}

func (m *MockLookupRepository) ListPublishers(ctx context.Context) ([]*domain.Publisher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Publisher), args.Error(1)
}

func (m *MockLookupRepository) UpdatePublisher(ctx context.Context, p *domain.Publisher) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLookupRepository) DeletePublisher(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreateReaderCategory(ctx context.Context, rc *domain.ReaderCategory) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockLookupRepository) GetReaderCategoryByID(ctx context.Context, id int64) (*domain.ReaderCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReaderCategory), args.Error(1)
}

func (m *MockLookupRepository) ListReaderCategories(ctx context.Context) ([]*domain.ReaderCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReaderCategory), args.Error(1)
}

func (m *MockLookupRepository) UpdateReaderCategory(ctx context.Context, rc *domain.ReaderCategory) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteReaderCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreateBookStatus(ctx context.Context, s *domain.BookStatus) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockLookupRepository) GetBookStatusByID(ctx context.Context, id int64) (*domain.BookStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookStatus), args.Error(1)
}

func (m *MockLookupRepository) ListBookStatuses(ctx context.Context) ([]*domain.BookStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookStatus), args.Error(1)
}

func (m *MockLookupRepository) UpdateBookStatus(ctx context.Context, s *domain.BookStatus) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteBookStatus(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreateLoanStatus(ctx context.Context, s *domain.LoanStatus) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockLookupRepository) GetLoanStatusByID(ctx context.Context, id int64) (*domain.LoanStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanStatus), args.Error(1)
}

func (m *MockLookupRepository) ListLoanStatuses(ctx context.Context) ([]*domain.LoanStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanStatus), args.Error(1)
}

func (m *MockLookupRepository) UpdateLoanStatus(ctx context.Context, s *domain.LoanStatus) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteLoanStatus(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) CreateOperationType(ctx context.Context, ot *domain.OperationType) error {
	args := m.Called(ctx, ot)
	return args.Error(0)
}

func (m *MockLookupRepository) GetOperationTypeByID(ctx context.Context, id int64) (*domain.OperationType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationType), args.Error(1)
}

func (m *MockLookupRepository) ListOperationTypes(ctx context.Context) ([]*domain.OperationType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OperationType), args.Error(1)
}

func (m *MockLookupRepository) UpdateOperationType(ctx context.Context, ot *domain.OperationType) error {
	args := m.Called(ctx, ot)
	return args.Error(0)
}

func (m *MockLookupRepository) DeleteOperationType(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLookupRepository) OperationTypeIDByCode(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}
