package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/response"
)

// ReaderHandler exposes reader registration and search.
type ReaderHandler struct {
	service   *service.ReaderService
	validator *validator.Validate
}

func NewReaderHandler(service *service.ReaderService) *ReaderHandler {
	return &ReaderHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *ReaderHandler) CreateReader(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateReaderRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	reader, err := h.service.CreateReader(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, reader)
}

func (h *ReaderHandler) GetReader(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reader id", err)
		return
	}

	reader, err := h.service.GetReader(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, reader)
}

func (h *ReaderHandler) ListReaders(w http.ResponseWriter, r *http.Request) {
	readers, err := h.service.ListReaders(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, readers)
}

// SearchReaders combines name, phone, email and active filters from the
// query string.
func (h *ReaderHandler) SearchReaders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ReaderSearchFilter{
		LastName:  query.Get("last_name"),
		FirstName: query.Get("first_name"),
		Phone:     query.Get("phone"),
		Email:     query.Get("email"),
	}

	var err error
	if filter.IsActive, err = queryBool(r, "is_active"); err != nil {
		response.BadRequest(w, "invalid is_active flag", err)
		return
	}

	result, err := h.service.SearchReaders(r.Context(), filter)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ReaderHandler) UpdateReader(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reader id", err)
		return
	}

	var patch domain.UpdateReaderRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	reader, err := h.service.UpdateReader(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, reader)
}

func (h *ReaderHandler) DeleteReader(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reader id", err)
		return
	}

	if err = h.service.DeleteReader(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "reader deleted"})
}
