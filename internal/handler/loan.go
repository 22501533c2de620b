package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/response"
)

// LoanHandler exposes the circulation surface: loans, fines, payments and
// reservations.
type LoanHandler struct {
	service   *service.LoanService
	validator *validator.Validate
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateLoan issues a book copy to a reader
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateLoanRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	loan, err := h.service.CreateLoan(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, loan)
}

// GetLoan returns one loan
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	loan, err := h.service.GetLoan(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, loan)
}

// ListLoans returns loans filtered by reader, copy, open state or overdue
func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	var filter domain.LoanFilter
	var err error

	if filter.ReaderID, err = queryInt64(r, "reader_id"); err != nil {
		response.BadRequest(w, "invalid reader_id", err)
		return
	}
	if filter.BookCopyID, err = queryInt64(r, "book_copy_id"); err != nil {
		response.BadRequest(w, "invalid book_copy_id", err)
		return
	}
	if filter.Open, err = queryBool(r, "open"); err != nil {
		response.BadRequest(w, "invalid open flag", err)
		return
	}
	overdue, err := queryBool(r, "overdue")
	if err != nil {
		response.BadRequest(w, "invalid overdue flag", err)
		return
	}
	filter.Overdue = overdue != nil && *overdue

	loans, err := h.service.ListLoans(r.Context(), filter)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, loans)
}

// RenewLoan extends an active loan's due date
func (h *LoanHandler) RenewLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	var request domain.RenewLoanRequest
	if err = decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	loan, err := h.service.RenewLoan(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, loan)
}

// ReturnLoan closes a loan and computes the final fine
func (h *LoanHandler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	var request domain.ReturnLoanRequest
	if err = decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	loan, err := h.service.ReturnLoan(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, loan)
}

// MarkLost records a lost copy against the loan
func (h *LoanHandler) MarkLost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	var request domain.MarkLostRequest
	if err = decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	loan, err := h.service.MarkLost(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, loan)
}

// QuoteFine evaluates the fine a loan carries today
func (h *LoanHandler) QuoteFine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	quote, err := h.service.QuoteFine(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, quote)
}

// PayFine settles a loan's fine
func (h *LoanHandler) PayFine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	var request domain.PayFineRequest
	if err = decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	payment, err := h.service.PayFine(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, payment)
}

// UpdateLoan patches the annotation fields
func (h *LoanHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	var patch domain.UpdateLoanRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	loan, err := h.service.UpdateLoan(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, loan)
}

// DeleteLoan removes a loan row
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid loan id", err)
		return
	}

	if err = h.service.DeleteLoan(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "loan deleted"})
}

// CreatePayment records a standalone payment
func (h *LoanHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var request domain.CreatePaymentRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, payment)
}

func (h *LoanHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid payment id", err)
		return
	}

	payment, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, payment)
}

func (h *LoanHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	readerID, err := queryInt64(r, "reader_id")
	if err != nil {
		response.BadRequest(w, "invalid reader_id", err)
		return
	}

	payments, err := h.service.ListPayments(r.Context(), readerID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, payments)
}

func (h *LoanHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid payment id", err)
		return
	}

	var patch domain.UpdatePaymentRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	payment, err := h.service.UpdatePayment(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, payment)
}

func (h *LoanHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid payment id", err)
		return
	}

	if err = h.service.DeletePayment(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "payment deleted"})
}

// CreateReservation queues a reader for a book
func (h *LoanHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateReservationRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, reservation)
}

func (h *LoanHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reservation id", err)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, reservation)
}

func (h *LoanHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	bookID, err := queryInt64(r, "book_id")
	if err != nil {
		response.BadRequest(w, "invalid book_id", err)
		return
	}

	reservations, err := h.service.ListReservations(r.Context(), bookID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, reservations)
}

func (h *LoanHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reservation id", err)
		return
	}

	var patch domain.UpdateReservationRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, reservation)
}

func (h *LoanHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reservation id", err)
		return
	}

	if err = h.service.DeleteReservation(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "reservation deleted"})
}
