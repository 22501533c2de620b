package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/response"
)

// CatalogHandler exposes books, authors, their links and copies.
type CatalogHandler struct {
	service   *service.CatalogService
	validator *validator.Validate
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *CatalogHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateBookRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	book, err := h.service.CreateBook(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, book)
}

func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid book id", err)
		return
	}

	book, err := h.service.GetBook(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, book)
}

func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, books)
}

// SearchBooks combines title, author, ISBN, year, language and electronic
// filters from the query string.
func (h *CatalogHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.BookSearchFilter{
		Title:      query.Get("title"),
		AuthorName: query.Get("author"),
		ISBN:       query.Get("isbn"),
	}

	var err error
	if filter.Year, err = queryInt(r, "year"); err != nil {
		response.BadRequest(w, "invalid year", err)
		return
	}
	if filter.IsElectronic, err = queryBool(r, "is_electronic"); err != nil {
		response.BadRequest(w, "invalid is_electronic flag", err)
		return
	}
	if filter.LanguageID, err = queryInt64(r, "language_id"); err != nil {
		response.BadRequest(w, "invalid language_id", err)
		return
	}

	result, err := h.service.SearchBooks(r.Context(), filter)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *CatalogHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid book id", err)
		return
	}

	var patch domain.UpdateBookRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	book, err := h.service.UpdateBook(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, book)
}

func (h *CatalogHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid book id", err)
		return
	}

	if err = h.service.DeleteBook(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "book deleted"})
}

func (h *CatalogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var request domain.AuthorRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	author, err := h.service.CreateAuthor(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, author)
}

func (h *CatalogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid author id", err)
		return
	}

	author, err := h.service.GetAuthor(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, author)
}

func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.ListAuthors(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, authors)
}

// AuthorBooks returns an author's books with per-book copy counts
func (h *CatalogHandler) AuthorBooks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid author id", err)
		return
	}

	result, err := h.service.AuthorBooks(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *CatalogHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid author id", err)
		return
	}

	var request domain.AuthorRequest
	if err = decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	author, err := h.service.UpdateAuthor(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, author)
}

func (h *CatalogHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid author id", err)
		return
	}

	if err = h.service.DeleteAuthor(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "author deleted"})
}

func (h *CatalogHandler) CreateBookAuthor(w http.ResponseWriter, r *http.Request) {
	var request domain.BookAuthorRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	link, err := h.service.CreateBookAuthor(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, link)
}

func (h *CatalogHandler) GetBookAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid link id", err)
		return
	}

	link, err := h.service.GetBookAuthor(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, link)
}

func (h *CatalogHandler) ListBookAuthors(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.ListBookAuthors(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, links)
}

func (h *CatalogHandler) UpdateBookAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid link id", err)
		return
	}

	var request domain.BookAuthorRequest
	if err = decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	link, err := h.service.UpdateBookAuthor(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, link)
}

func (h *CatalogHandler) DeleteBookAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid link id", err)
		return
	}

	if err = h.service.DeleteBookAuthor(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "book author link deleted"})
}

func (h *CatalogHandler) CreateCopy(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateBookCopyRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	copy, err := h.service.CreateCopy(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, copy)
}

func (h *CatalogHandler) GetCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid copy id", err)
		return
	}

	copy, err := h.service.GetCopy(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, copy)
}

func (h *CatalogHandler) ListCopies(w http.ResponseWriter, r *http.Request) {
	bookID, err := queryInt64(r, "book_id")
	if err != nil {
		response.BadRequest(w, "invalid book_id", err)
		return
	}

	copies, err := h.service.ListCopies(r.Context(), bookID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, copies)
}

func (h *CatalogHandler) UpdateCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid copy id", err)
		return
	}

	var patch domain.UpdateBookCopyRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	copy, err := h.service.UpdateCopy(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, copy)
}

// WriteOffCopy retires a copy from circulation
func (h *CatalogHandler) WriteOffCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid copy id", err)
		return
	}

	var request domain.WriteOffCopyRequest
	if err = decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	copy, err := h.service.WriteOffCopy(r.Context(), id, &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, copy)
}

func (h *CatalogHandler) DeleteCopy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid copy id", err)
		return
	}

	if err = h.service.DeleteCopy(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "book copy deleted"})
}
