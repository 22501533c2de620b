package service

import (
	"context"
	"errors"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/repository"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
)

// ReferenceService owns the nine lookup tables. All of them are plain CRUD;
// the loan lifecycle resolves their codes inside its own SQL.
type ReferenceService struct {
	LookupRepo repository.LookupRepository
}

func NewReferenceService(lookupRepo repository.LookupRepository) *ReferenceService {
	return &ReferenceService{LookupRepo: lookupRepo}
}

func (s *ReferenceService) CreateEditionType(ctx context.Context, request *domain.EditionTypeRequest) (*domain.EditionType, error) {
	et := &domain.EditionType{
		Code:          request.Code,
		Name:          request.Name,
		Description:   request.Description,
		GostReference: request.GostReference,
	}
	if err := s.LookupRepo.CreateEditionType(ctx, et); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return et, nil
}

func (s *ReferenceService) GetEditionType(ctx context.Context, id int64) (*domain.EditionType, error) {
	et, err := s.LookupRepo.GetEditionTypeByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Edition type", id)
	}
	return et, nil
}

func (s *ReferenceService) ListEditionTypes(ctx context.Context) ([]*domain.EditionType, error) {
	items, err := s.LookupRepo.ListEditionTypes(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateEditionType(ctx context.Context, id int64, request *domain.EditionTypeRequest) (*domain.EditionType, error) {
	et := &domain.EditionType{
		ID:            id,
		Code:          request.Code,
		Name:          request.Name,
		Description:   request.Description,
		GostReference: request.GostReference,
	}
	if err := s.LookupRepo.UpdateEditionType(ctx, et); err != nil {
		return nil, wrapUpdateError(err, "Edition type", id)
	}
	return et, nil
}

func (s *ReferenceService) DeleteEditionType(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteEditionType(ctx, id), "Edition type", id)
}

func (s *ReferenceService) CreateLanguage(ctx context.Context, request *domain.LanguageRequest) (*domain.Language, error) {
	l := &domain.Language{ISOCode: request.ISOCode, Name: request.Name}
	if err := s.LookupRepo.CreateLanguage(ctx, l); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return l, nil
}

func (s *ReferenceService) GetLanguage(ctx context.Context, id int64) (*domain.Language, error) {
	l, err := s.LookupRepo.GetLanguageByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Language", id)
	}
	return l, nil
}

func (s *ReferenceService) ListLanguages(ctx context.Context) ([]*domain.Language, error) {
	items, err := s.LookupRepo.ListLanguages(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateLanguage(ctx context.Context, id int64, request *domain.LanguageRequest) (*domain.Language, error) {
	l := &domain.Language{ID: id, ISOCode: request.ISOCode, Name: request.Name}
	if err := s.LookupRepo.UpdateLanguage(ctx, l); err != nil {
		return nil, wrapUpdateError(err, "Language", id)
	}
	return l, nil
}

func (s *ReferenceService) DeleteLanguage(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteLanguage(ctx, id), "Language", id)
}

func (s *ReferenceService) CreateCountry(ctx context.Context, request *domain.CountryRequest) (*domain.Country, error) {
	c := &domain.Country{ISOCode: request.ISOCode, Name: request.Name}
	if err := s.LookupRepo.CreateCountry(ctx, c); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return c, nil
}

func (s *ReferenceService) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	c, err := s.LookupRepo.GetCountryByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Country", id)
	}
	return c, nil
}

func (s *ReferenceService) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	items, err := s.LookupRepo.ListCountries(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateCountry(ctx context.Context, id int64, request *domain.CountryRequest) (*domain.Country, error) {
	c := &domain.Country{ID: id, ISOCode: request.ISOCode, Name: request.Name}
	if err := s.LookupRepo.UpdateCountry(ctx, c); err != nil {
		return nil, wrapUpdateError(err, "Country", id)
	}
	return c, nil
}

func (s *ReferenceService) DeleteCountry(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteCountry(ctx, id), "Country", id)
}

func (s *ReferenceService) CreateCity(ctx context.Context, request *domain.CityRequest) (*domain.City, error) {
	if _, err := s.LookupRepo.GetCountryByID(ctx, request.CountryID); err != nil {
		return nil, wrapGetError(err, "Country", request.CountryID)
	}

	c := &domain.City{Name: request.Name, CountryID: request.CountryID}
	if err := s.LookupRepo.CreateCity(ctx, c); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return c, nil
}

func (s *ReferenceService) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	c, err := s.LookupRepo.GetCityByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "City", id)
	}
	return c, nil
}

func (s *ReferenceService) ListCities(ctx context.Context) ([]*domain.City, error) {
	items, err := s.LookupRepo.ListCities(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateCity(ctx context.Context, id int64, request *domain.CityRequest) (*domain.City, error) {
	c := &domain.City{ID: id, Name: request.Name, CountryID: request.CountryID}
	if err := s.LookupRepo.UpdateCity(ctx, c); err != nil {
		return nil, wrapUpdateError(err, "City", id)
	}
	return c, nil
}

func (s *ReferenceService) DeleteCity(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteCity(ctx, id), "City", id)
}

func (s *ReferenceService) CreatePublisher(ctx context.Context, request *domain.PublisherRequest) (*domain.Publisher, error) {
	p := &domain.Publisher{
		Name:    request.Name,
		CityID:  request.CityID,
		Address: request.Address,
		Website: request.Website,
	}
	if err := s.LookupRepo.CreatePublisher(ctx, p); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return p, nil
}

func (s *ReferenceService) GetPublisher(ctx context.Context, id int64) (*domain.Publisher, error) {
	p, err := s.LookupRepo.GetPublisherByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Publisher", id)
	}
	return p, nil
}

func (s *ReferenceService) ListPublishers(ctx context.Context) ([]*domain.Publisher, error) {
	items, err := s.LookupRepo.ListPublishers(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdatePublisher(ctx context.Context, id int64, request *domain.PublisherRequest) (*domain.Publisher, error) {
	p := &domain.Publisher{
		ID:      id,
		Name:    request.Name,
		CityID:  request.CityID,
		Address: request.Address,
		Website: request.Website,
	}
	if err := s.LookupRepo.UpdatePublisher(ctx, p); err != nil {
		return nil, wrapUpdateError(err, "Publisher", id)
	}
	return p, nil
}

func (s *ReferenceService) DeletePublisher(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeletePublisher(ctx, id), "Publisher", id)
}

func (s *ReferenceService) CreateReaderCategory(ctx context.Context, request *domain.ReaderCategoryRequest) (*domain.ReaderCategory, error) {
	rc := &domain.ReaderCategory{
		Code:            request.Code,
		Name:            request.Name,
		LoanLimit:       request.LoanLimit,
		LoanPeriod:      request.LoanPeriod,
		HasRemoteAccess: request.HasRemoteAccess,
	}
	if err := s.LookupRepo.CreateReaderCategory(ctx, rc); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return rc, nil
}

func (s *ReferenceService) GetReaderCategory(ctx context.Context, id int64) (*domain.ReaderCategory, error) {
	rc, err := s.LookupRepo.GetReaderCategoryByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Reader category", id)
	}
	return rc, nil
}

func (s *ReferenceService) ListReaderCategories(ctx context.Context) ([]*domain.ReaderCategory, error) {
	items, err := s.LookupRepo.ListReaderCategories(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateReaderCategory(ctx context.Context, id int64, request *domain.ReaderCategoryRequest) (*domain.ReaderCategory, error) {
	rc := &domain.ReaderCategory{
		ID:              id,
		Code:            request.Code,
		Name:            request.Name,
		LoanLimit:       request.LoanLimit,
		LoanPeriod:      request.LoanPeriod,
		HasRemoteAccess: request.HasRemoteAccess,
	}
	if err := s.LookupRepo.UpdateReaderCategory(ctx, rc); err != nil {
		return nil, wrapUpdateError(err, "Reader category", id)
	}
	return rc, nil
}

func (s *ReferenceService) DeleteReaderCategory(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteReaderCategory(ctx, id), "Reader category", id)
}

func (s *ReferenceService) CreateBookStatus(ctx context.Context, request *domain.CodeNameRequest) (*domain.BookStatus, error) {
	st := &domain.BookStatus{Code: request.Code, Name: request.Name}
	if err := s.LookupRepo.CreateBookStatus(ctx, st); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return st, nil
}

func (s *ReferenceService) GetBookStatus(ctx context.Context, id int64) (*domain.BookStatus, error) {
	st, err := s.LookupRepo.GetBookStatusByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Book status", id)
	}
	return st, nil
}

func (s *ReferenceService) ListBookStatuses(ctx context.Context) ([]*domain.BookStatus, error) {
	items, err := s.LookupRepo.ListBookStatuses(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateBookStatus(ctx context.Context, id int64, request *domain.CodeNameRequest) (*domain.BookStatus, error) {
	st := &domain.BookStatus{ID: id, Code: request.Code, Name: request.Name}
	if err := s.LookupRepo.UpdateBookStatus(ctx, st); err != nil {
		return nil, wrapUpdateError(err, "Book status", id)
	}
	return st, nil
}

func (s *ReferenceService) DeleteBookStatus(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteBookStatus(ctx, id), "Book status", id)
}

func (s *ReferenceService) CreateLoanStatus(ctx context.Context, request *domain.CodeNameRequest) (*domain.LoanStatus, error) {
	st := &domain.LoanStatus{Code: request.Code, Name: request.Name}
	if err := s.LookupRepo.CreateLoanStatus(ctx, st); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return st, nil
}

func (s *ReferenceService) GetLoanStatus(ctx context.Context, id int64) (*domain.LoanStatus, error) {
	st, err := s.LookupRepo.GetLoanStatusByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Loan status", id)
	}
	return st, nil
}

func (s *ReferenceService) ListLoanStatuses(ctx context.Context) ([]*domain.LoanStatus, error) {
	items, err := s.LookupRepo.ListLoanStatuses(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateLoanStatus(ctx context.Context, id int64, request *domain.CodeNameRequest) (*domain.LoanStatus, error) {
	st := &domain.LoanStatus{ID: id, Code: request.Code, Name: request.Name}
	if err := s.LookupRepo.UpdateLoanStatus(ctx, st); err != nil {
		return nil, wrapUpdateError(err, "Loan status", id)
	}
	return st, nil
}

func (s *ReferenceService) DeleteLoanStatus(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteLoanStatus(ctx, id), "Loan status", id)
}

func (s *ReferenceService) CreateOperationType(ctx context.Context, request *domain.CodeNameRequest) (*domain.OperationType, error) {
	ot := &domain.OperationType{Code: request.Code, Name: request.Name}
	if err := s.LookupRepo.CreateOperationType(ctx, ot); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return ot, nil
}

func (s *ReferenceService) GetOperationType(ctx context.Context, id int64) (*domain.OperationType, error) {
	ot, err := s.LookupRepo.GetOperationTypeByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Operation type", id)
	}
	return ot, nil
}

func (s *ReferenceService) ListOperationTypes(ctx context.Context) ([]*domain.OperationType, error) {
	items, err := s.LookupRepo.ListOperationTypes(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return items, nil
}

func (s *ReferenceService) UpdateOperationType(ctx context.Context, id int64, request *domain.CodeNameRequest) (*domain.OperationType, error) {
	ot := &domain.OperationType{ID: id, Code: request.Code, Name: request.Name}
	if err := s.LookupRepo.UpdateOperationType(ctx, ot); err != nil {
		return nil, wrapUpdateError(err, "Operation type", id)
	}
	return ot, nil
}

func (s *ReferenceService) DeleteOperationType(ctx context.Context, id int64) error {
	return wrapDeleteError(s.LookupRepo.DeleteOperationType(ctx, id), "Operation type", id)
}

func wrapUpdateError(err error, entity string, id int64) error {
	if errors.Is(err, customError.ErrNotFound) {
		return customError.WrapNotFound(entity, id)
	}
	return customError.WrapDatabaseError(err)
}

func wrapDeleteError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, customError.ErrNotFound) {
		return customError.WrapNotFound(entity, id)
	}
	return customError.WrapDatabaseError(err)
}
