package handler

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/tests/mocks"
)

type loanHandlerMocks struct {
	loans   *mocks.MockLoanRepository
	copies  *mocks.MockCopyRepository
	readers *mocks.MockReaderRepository
	lookups *mocks.MockLookupRepository
}

func newLoanHandler() (*LoanHandler, *loanHandlerMocks) {
	m := &loanHandlerMocks{
		loans:   new(mocks.MockLoanRepository),
		copies:  new(mocks.MockCopyRepository),
		readers: new(mocks.MockReaderRepository),
		lookups: new(mocks.MockLookupRepository),
	}

	svc := service.NewLoanService(
		m.loans, m.copies, m.readers,
		new(mocks.MockPaymentRepository), new(mocks.MockReservationRepository),
		m.lookups, domain.DefaultFinePolicy(),
	)
	return NewLoanHandler(svc), m
}

func TestLoanHandlerCreateLoan(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*loanHandlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "issues the copy and returns the loan",
			body: `{"book_copy_id": 11, "reader_id": 7}`,
			setupMocks: func(m *loanHandlerMocks) {
				m.readers.On("GetByID", mock.Anything, int64(7)).
					Return(&domain.Reader{ID: 7, CategoryID: 2, IsActive: true}, nil)
				m.readers.On("GetCategory", mock.Anything, int64(2)).
					Return(&domain.ReaderCategory{ID: 2, LoanLimit: 5, LoanPeriod: 14}, nil)
				m.copies.On("GetByID", mock.Anything, int64(11)).
					Return(&domain.BookCopy{ID: 11}, nil)
				m.loans.On("CreateActive", mock.Anything, mock.Anything, 5).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"success":true`,
		},
		{
			name:           "rejects malformed JSON",
			body:           `{"book_copy_id": `,
			setupMocks:     func(m *loanHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "rejects unknown fields",
			body:           `{"book_copy_id": 11, "reader_id": 7, "copy_id": 11}`,
			setupMocks:     func(m *loanHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects a missing reader id",
			body:           `{"book_copy_id": 11}`,
			setupMocks:     func(m *loanHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "validation failed",
		},
		{
			name: "copy already on loan is a conflict",
			body: `{"book_copy_id": 11, "reader_id": 7}`,
			setupMocks: func(m *loanHandlerMocks) {
				m.readers.On("GetByID", mock.Anything, int64(7)).
					Return(&domain.Reader{ID: 7, CategoryID: 2, IsActive: true}, nil)
				m.readers.On("GetCategory", mock.Anything, int64(2)).
					Return(&domain.ReaderCategory{ID: 2, LoanLimit: 5, LoanPeriod: 14}, nil)
				m.copies.On("GetByID", mock.Anything, int64(11)).
					Return(&domain.BookCopy{ID: 11}, nil)
				m.loans.On("CreateActive", mock.Anything, mock.Anything, 5).
					Return(customError.ErrCopyNotAvailable)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   customError.ErrCodeCopyNotAvailable,
		},
		{
			name: "inactive reader is unprocessable",
			body: `{"book_copy_id": 11, "reader_id": 7}`,
			setupMocks: func(m *loanHandlerMocks) {
				m.readers.On("GetByID", mock.Anything, int64(7)).
					Return(&domain.Reader{ID: 7, CategoryID: 2, IsActive: false}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   customError.ErrCodeReaderInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newLoanHandler()
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.CreateLoan(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			m.loans.AssertExpectations(t)
		})
	}
}

func TestLoanHandlerGetLoan(t *testing.T) {
	t.Run("unknown loan is a 404", func(t *testing.T) {
		h, m := newLoanHandler()
		m.loans.On("GetByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/99", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		w := httptest.NewRecorder()

		h.GetLoan(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), customError.ErrCodeNotFound)
	})

	t.Run("garbage id is a 400", func(t *testing.T) {
		h, _ := newLoanHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		w := httptest.NewRecorder()

		h.GetLoan(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoanHandlerReturnLoan(t *testing.T) {
	t.Run("returning a closed loan conflicts", func(t *testing.T) {
		h, m := newLoanHandler()

		returnedAt := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		closed := &domain.Loan{ID: 3, StatusID: 2, ReturnDate: &returnedAt}
		m.loans.On("GetByID", mock.Anything, int64(3)).Return(closed, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/3/return", bytes.NewBufferString(`{}`))
		req = mux.SetURLVars(req, map[string]string{"id": "3"})
		w := httptest.NewRecorder()

		h.ReturnLoan(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), customError.ErrCodeLoanAlreadyClosed)
		m.loans.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	})
}
