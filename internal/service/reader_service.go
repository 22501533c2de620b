package service

import (
	"context"
	"errors"
	"time"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/repository"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/utils"
)

// ReaderService owns reader registration and search.
type ReaderService struct {
	ReaderRepo repository.ReaderRepository

	now func() time.Time
}

func NewReaderService(readerRepo repository.ReaderRepository) *ReaderService {
	return &ReaderService{
		ReaderRepo: readerRepo,
		now:        time.Now,
	}
}

// CreateReader registers a new member. The category must exist; new readers
// start active with today's registration date.
func (s *ReaderService) CreateReader(ctx context.Context, request *domain.CreateReaderRequest) (*domain.Reader, error) {
	if _, err := s.ReaderRepo.GetCategory(ctx, request.CategoryID); err != nil {
		return nil, wrapGetError(err, "Reader category", request.CategoryID)
	}

	reader := &domain.Reader{
		LastName:           request.LastName,
		FirstName:          request.FirstName,
		MiddleName:         request.MiddleName,
		BirthDate:          request.BirthDate,
		CategoryID:         request.CategoryID,
		Phone:              request.Phone,
		Email:              request.Email,
		Address:            request.Address,
		DocumentType:       request.DocumentType,
		DocumentNumber:     request.DocumentNumber,
		DocumentIssuedBy:   request.DocumentIssuedBy,
		DocumentIssuedDate: request.DocumentIssuedDate,
		RegistrationDate:   utils.DateOnly(s.now()),
		CardExpiryDate:     request.CardExpiryDate,
		IsActive:           true,
		Notes:              request.Notes,
	}

	if err := s.ReaderRepo.Create(ctx, reader); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return reader, nil
}

func (s *ReaderService) GetReader(ctx context.Context, id int64) (*domain.Reader, error) {
	reader, err := s.ReaderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Reader", id)
	}
	return reader, nil
}

func (s *ReaderService) ListReaders(ctx context.Context) ([]*domain.Reader, error) {
	readers, err := s.ReaderRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return readers, nil
}

// SearchReaders runs the combined name/phone/email search.
func (s *ReaderService) SearchReaders(ctx context.Context, filter domain.ReaderSearchFilter) (*domain.ReaderSearchResponse, error) {
	readers, err := s.ReaderRepo.Search(ctx, filter)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return &domain.ReaderSearchResponse{Found: len(readers), Readers: readers}, nil
}

func (s *ReaderService) UpdateReader(ctx context.Context, id int64, patch *domain.UpdateReaderRequest) (*domain.Reader, error) {
	if patch.CategoryID != nil {
		if _, err := s.ReaderRepo.GetCategory(ctx, *patch.CategoryID); err != nil {
			return nil, wrapGetError(err, "Reader category", *patch.CategoryID)
		}
	}

	if err := s.ReaderRepo.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Reader", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return s.GetReader(ctx, id)
}

func (s *ReaderService) DeleteReader(ctx context.Context, id int64) error {
	if err := s.ReaderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Reader", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}
