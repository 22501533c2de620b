package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/tests/mocks"
)

func newCatalogService(today time.Time) (*CatalogService, *mocks.MockBookRepository, *mocks.MockCopyRepository) {
	books := new(mocks.MockBookRepository)
	copies := new(mocks.MockCopyRepository)
	s := NewCatalogService(books, copies)
	s.now = func() time.Time { return today }
	return s, books, copies
}

func TestWriteOffCopy(t *testing.T) {
	today := date(2024, 4, 1)

	t.Run("loaned copy cannot be written off", func(t *testing.T) {
		s, _, copies := newCatalogService(today)

		copies.On("StatusCode", mock.Anything, int64(5)).Return(domain.BookStatusLoaned, nil)

		_, err := s.WriteOffCopy(context.Background(), 5, &domain.WriteOffCopyRequest{Reason: "worn out"})

		var bizErr *customError.BusinessError
		assert.ErrorAs(t, err, &bizErr)
		assert.Equal(t, customError.ErrCodeCopyNotAvailable, bizErr.Code)
		copies.AssertNotCalled(t, "WriteOff", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("available copy is written off dated today", func(t *testing.T) {
		s, _, copies := newCatalogService(today)

		copies.On("StatusCode", mock.Anything, int64(5)).Return(domain.BookStatusAvailable, nil)
		copies.On("WriteOff", mock.Anything, int64(5), today, "worn out").Return(nil)
		copies.On("GetByID", mock.Anything, int64(5)).Return(&domain.BookCopy{ID: 5}, nil)

		copy, err := s.WriteOffCopy(context.Background(), 5, &domain.WriteOffCopyRequest{Reason: "worn out"})

		assert.NoError(t, err)
		assert.NotNil(t, copy)
		copies.AssertExpectations(t)
	})
}

func TestSearchBooks(t *testing.T) {
	s, books, _ := newCatalogService(date(2024, 4, 1))

	filter := domain.BookSearchFilter{Title: "cosmos"}
	books.On("Search", mock.Anything, filter).Return([]*domain.Book{{ID: 1}, {ID: 2}}, nil)

	result, err := s.SearchBooks(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Found)
	assert.Len(t, result.Books, 2)
}

func TestAuthorBooks(t *testing.T) {
	s, books, _ := newCatalogService(date(2024, 4, 1))

	author := &domain.Author{ID: 9, LastName: "Lem"}
	books.On("GetAuthorByID", mock.Anything, int64(9)).Return(author, nil)
	books.On("AuthorBookCounts", mock.Anything, int64(9)).Return([]*domain.AuthorBookCopies{
		{BookID: 1, TotalCopies: 4, AvailableCopies: 1},
		{BookID: 2, TotalCopies: 2, AvailableCopies: 2},
	}, nil)

	result, err := s.AuthorBooks(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.BooksCount)
	assert.Equal(t, 6, result.TotalCopies)
	assert.Equal(t, 3, result.AvailableCopies)
}
