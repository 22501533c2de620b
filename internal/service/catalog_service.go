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

// CatalogService owns the bibliographic surface: books, authors, the
// book-author links and the physical copies.
type CatalogService struct {
	BookRepo repository.BookRepository
	CopyRepo repository.CopyRepository

	now func() time.Time
}

func NewCatalogService(bookRepo repository.BookRepository, copyRepo repository.CopyRepository) *CatalogService {
	return &CatalogService{
		BookRepo: bookRepo,
		CopyRepo: copyRepo,
		now:      time.Now,
	}
}

func (s *CatalogService) CreateBook(ctx context.Context, request *domain.CreateBookRequest) (*domain.Book, error) {
	volumeCopies := request.VolumeCopies
	if volumeCopies == 0 {
		volumeCopies = 1
	}

	book := &domain.Book{
		ISBN:               request.ISBN,
		UDK:                request.UDK,
		BBK:                request.BBK,
		MainTitle:          request.MainTitle,
		ParallelTitle:      request.ParallelTitle,
		AdditionalTitle:    request.AdditionalTitle,
		PublisherID:        request.PublisherID,
		PublicationPlace:   request.PublicationPlace,
		PublicationYear:    request.PublicationYear,
		EditionTypeID:      request.EditionTypeID,
		LanguageID:         request.LanguageID,
		VolumePages:        request.VolumePages,
		VolumeCopies:       volumeCopies,
		Dimensions:         request.Dimensions,
		Weight:             request.Weight,
		Abstract:           request.Abstract,
		Keywords:           request.Keywords,
		TableOfContents:    request.TableOfContents,
		IsElectronic:       request.IsElectronic,
		ElectronicFormat:   request.ElectronicFormat,
		ElectronicURL:      request.ElectronicURL,
		ElectronicFileSize: request.ElectronicFileSize,
	}

	if err := s.BookRepo.Create(ctx, book); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return book, nil
}

func (s *CatalogService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.BookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Book", id)
	}
	return book, nil
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.BookRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return books, nil
}

// SearchBooks runs the combined title/author/ISBN/year search.
func (s *CatalogService) SearchBooks(ctx context.Context, filter domain.BookSearchFilter) (*domain.BookSearchResponse, error) {
	books, err := s.BookRepo.Search(ctx, filter)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return &domain.BookSearchResponse{Found: len(books), Books: books}, nil
}

func (s *CatalogService) UpdateBook(ctx context.Context, id int64, patch *domain.UpdateBookRequest) (*domain.Book, error) {
	if err := s.BookRepo.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Book", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return s.GetBook(ctx, id)
}

func (s *CatalogService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.BookRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Book", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

func (s *CatalogService) CreateAuthor(ctx context.Context, request *domain.AuthorRequest) (*domain.Author, error) {
	author := &domain.Author{
		LastName:   request.LastName,
		FirstName:  request.FirstName,
		MiddleName: request.MiddleName,
		BirthYear:  request.BirthYear,
		DeathYear:  request.DeathYear,
		Biography:  request.Biography,
	}

	if err := s.BookRepo.CreateAuthor(ctx, author); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return author, nil
}

func (s *CatalogService) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := s.BookRepo.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Author", id)
	}
	return author, nil
}

func (s *CatalogService) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	authors, err := s.BookRepo.ListAuthors(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return authors, nil
}

func (s *CatalogService) UpdateAuthor(ctx context.Context, id int64, request *domain.AuthorRequest) (*domain.Author, error) {
	author := &domain.Author{
		ID:         id,
		LastName:   request.LastName,
		FirstName:  request.FirstName,
		MiddleName: request.MiddleName,
		BirthYear:  request.BirthYear,
		DeathYear:  request.DeathYear,
		Biography:  request.Biography,
	}

	if err := s.BookRepo.UpdateAuthor(ctx, author); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Author", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return author, nil
}

func (s *CatalogService) DeleteAuthor(ctx context.Context, id int64) error {
	if err := s.BookRepo.DeleteAuthor(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Author", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// AuthorBooks aggregates an author's books with their copy counts.
func (s *CatalogService) AuthorBooks(ctx context.Context, authorID int64) (*domain.AuthorBooksResponse, error) {
	author, err := s.BookRepo.GetAuthorByID(ctx, authorID)
	if err != nil {
		return nil, wrapGetError(err, "Author", authorID)
	}

	books, err := s.BookRepo.AuthorBookCounts(ctx, authorID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	response := &domain.AuthorBooksResponse{
		Author:     author,
		BooksCount: len(books),
		Books:      books,
	}
	for _, b := range books {
		response.TotalCopies += b.TotalCopies
		response.AvailableCopies += b.AvailableCopies
	}

	return response, nil
}

func (s *CatalogService) CreateBookAuthor(ctx context.Context, request *domain.BookAuthorRequest) (*domain.BookAuthor, error) {
	if _, err := s.BookRepo.GetByID(ctx, request.BookID); err != nil {
		return nil, wrapGetError(err, "Book", request.BookID)
	}
	if _, err := s.BookRepo.GetAuthorByID(ctx, request.AuthorID); err != nil {
		return nil, wrapGetError(err, "Author", request.AuthorID)
	}

	role := request.AuthorRole
	if role == "" {
		role = "author"
	}
	order := request.AuthorOrder
	if order == 0 {
		order = 1
	}

	link := &domain.BookAuthor{
		BookID:      request.BookID,
		AuthorID:    request.AuthorID,
		AuthorRole:  role,
		AuthorOrder: order,
	}

	if err := s.BookRepo.CreateBookAuthor(ctx, link); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return link, nil
}

func (s *CatalogService) GetBookAuthor(ctx context.Context, id int64) (*domain.BookAuthor, error) {
	link, err := s.BookRepo.GetBookAuthorByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Book author link", id)
	}
	return link, nil
}

func (s *CatalogService) ListBookAuthors(ctx context.Context) ([]*domain.BookAuthor, error) {
	links, err := s.BookRepo.ListBookAuthors(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return links, nil
}

func (s *CatalogService) UpdateBookAuthor(ctx context.Context, id int64, request *domain.BookAuthorRequest) (*domain.BookAuthor, error) {
	link := &domain.BookAuthor{
		ID:          id,
		BookID:      request.BookID,
		AuthorID:    request.AuthorID,
		AuthorRole:  request.AuthorRole,
		AuthorOrder: request.AuthorOrder,
	}

	if err := s.BookRepo.UpdateBookAuthor(ctx, link); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Book author link", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return link, nil
}

func (s *CatalogService) DeleteBookAuthor(ctx context.Context, id int64) error {
	if err := s.BookRepo.DeleteBookAuthor(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Book author link", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// CreateCopy registers a new physical or electronic unit. New copies start
// AVAILABLE.
func (s *CatalogService) CreateCopy(ctx context.Context, request *domain.CreateBookCopyRequest) (*domain.BookCopy, error) {
	if _, err := s.BookRepo.GetByID(ctx, request.BookID); err != nil {
		return nil, wrapGetError(err, "Book", request.BookID)
	}

	acquisitionDate := utils.DateOnly(s.now())
	if request.AcquisitionDate != nil {
		acquisitionDate = utils.DateOnly(*request.AcquisitionDate)
	}
	copyNumber := request.CopyNumber
	if copyNumber == 0 {
		copyNumber = 1
	}

	copy := &domain.BookCopy{
		BookID:            request.BookID,
		InventoryNumber:   request.InventoryNumber,
		Barcode:           request.Barcode,
		CopyNumber:        copyNumber,
		AcquisitionDate:   acquisitionDate,
		AcquisitionSource: request.AcquisitionSource,
		Price:             request.Price,
		Location:          request.Location,
		ConditionNotes:    request.ConditionNotes,
	}

	if err := s.CopyRepo.Create(ctx, copy); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return copy, nil
}

func (s *CatalogService) GetCopy(ctx context.Context, id int64) (*domain.BookCopy, error) {
	copy, err := s.CopyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Book copy", id)
	}
	return copy, nil
}

func (s *CatalogService) ListCopies(ctx context.Context, bookID *int64) ([]*domain.BookCopy, error) {
	copies, err := s.CopyRepo.List(ctx, bookID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return copies, nil
}

func (s *CatalogService) UpdateCopy(ctx context.Context, id int64, patch *domain.UpdateBookCopyRequest) (*domain.BookCopy, error) {
	if err := s.CopyRepo.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Book copy", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return s.GetCopy(ctx, id)
}

// WriteOffCopy retires a copy administratively. A copy that is out on loan
// must come back first.
func (s *CatalogService) WriteOffCopy(ctx context.Context, id int64, request *domain.WriteOffCopyRequest) (*domain.BookCopy, error) {
	statusCode, err := s.CopyRepo.StatusCode(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Book copy", id)
	}
	if statusCode == domain.BookStatusLoaned {
		return nil, customError.NewBusinessError(
			customError.ErrCodeCopyNotAvailable,
			"book copy is out on loan and cannot be written off",
			customError.ErrCopyNotAvailable,
		)
	}

	writeOffDate := utils.DateOnly(s.now())
	if request.WriteOffDate != nil {
		writeOffDate = utils.DateOnly(*request.WriteOffDate)
	}

	if err = s.CopyRepo.WriteOff(ctx, id, writeOffDate, request.Reason); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Book copy", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return s.GetCopy(ctx, id)
}

func (s *CatalogService) DeleteCopy(ctx context.Context, id int64) error {
	if err := s.CopyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Book copy", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}
