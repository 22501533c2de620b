package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/response"
)

// ReferenceHandler exposes CRUD over the nine lookup tables. The methods are
// uniform: decode, validate, delegate.
type ReferenceHandler struct {
	service   *service.ReferenceService
	validator *validator.Validate
}

func NewReferenceHandler(service *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		service:   service,
		validator: validator.New(),
	}
}

// decodeValid decodes and validates a request body in one step.
func (h *ReferenceHandler) decodeValid(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(r, dst); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return false
	}
	return true
}

func (h *ReferenceHandler) CreateEditionType(w http.ResponseWriter, r *http.Request) {
	var request domain.EditionTypeRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateEditionType(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetEditionType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetEditionType(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListEditionTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListEditionTypes(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateEditionType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.EditionTypeRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateEditionType(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteEditionType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteEditionType(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "edition type deleted"})
}

func (h *ReferenceHandler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var request domain.LanguageRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateLanguage(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetLanguage(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListLanguages(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.LanguageRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateLanguage(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteLanguage(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "language deleted"})
}

func (h *ReferenceHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var request domain.CountryRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateCountry(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetCountry(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCountries(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.CountryRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateCountry(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteCountry(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "country deleted"})
}

func (h *ReferenceHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var request domain.CityRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateCity(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetCity(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCities(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.CityRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateCity(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteCity(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "city deleted"})
}

func (h *ReferenceHandler) CreatePublisher(w http.ResponseWriter, r *http.Request) {
	var request domain.PublisherRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreatePublisher(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetPublisher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetPublisher(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPublishers(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdatePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.PublisherRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdatePublisher(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeletePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeletePublisher(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "publisher deleted"})
}

func (h *ReferenceHandler) CreateReaderCategory(w http.ResponseWriter, r *http.Request) {
	var request domain.ReaderCategoryRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateReaderCategory(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetReaderCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetReaderCategory(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListReaderCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListReaderCategories(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateReaderCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.ReaderCategoryRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateReaderCategory(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteReaderCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteReaderCategory(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "reader category deleted"})
}

func (h *ReferenceHandler) CreateBookStatus(w http.ResponseWriter, r *http.Request) {
	var request domain.CodeNameRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateBookStatus(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetBookStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetBookStatus(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListBookStatuses(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListBookStatuses(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateBookStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.CodeNameRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateBookStatus(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteBookStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteBookStatus(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "book status deleted"})
}

func (h *ReferenceHandler) CreateLoanStatus(w http.ResponseWriter, r *http.Request) {
	var request domain.CodeNameRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateLoanStatus(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetLoanStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetLoanStatus(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListLoanStatuses(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListLoanStatuses(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateLoanStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.CodeNameRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateLoanStatus(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteLoanStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteLoanStatus(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "loan status deleted"})
}

func (h *ReferenceHandler) CreateOperationType(w http.ResponseWriter, r *http.Request) {
	var request domain.CodeNameRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.CreateOperationType(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, item)
}

func (h *ReferenceHandler) GetOperationType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	item, err := h.service.GetOperationType(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) ListOperationTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListOperationTypes(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (h *ReferenceHandler) UpdateOperationType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	var request domain.CodeNameRequest
	if !h.decodeValid(w, r, &request) {
		return
	}
	item, err := h.service.UpdateOperationType(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (h *ReferenceHandler) DeleteOperationType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return
	}
	if err = h.service.DeleteOperationType(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "operation type deleted"})
}
