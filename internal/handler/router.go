package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/response"
)

// NewRouter wires all endpoints under /api/v1, with health checks at the
// root.
func NewRouter(
	loanHandler *LoanHandler,
	catalogHandler *CatalogHandler,
	readerHandler *ReaderHandler,
	statsHandler *StatsHandler,
	referenceHandler *ReferenceHandler,
	healthHandler *HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	router.Use(response.RequestIDMiddleware)
	router.Use(response.LoggingMiddleware)
	router.Use(response.CORSMiddleware)

	// Service banner and health checks
	router.HandleFunc("/", rootBanner).Methods("GET")
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// Legacy alias for the library summary
	router.HandleFunc("/api/summary", statsHandler.LibrarySummary).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Loan lifecycle
	api.HandleFunc("/loans", loanHandler.CreateLoan).Methods("POST")
	api.HandleFunc("/loans", loanHandler.ListLoans).Methods("GET")
	api.HandleFunc("/loans/{id:[0-9]+}", loanHandler.GetLoan).Methods("GET")
	api.HandleFunc("/loans/{id:[0-9]+}", loanHandler.UpdateLoan).Methods("PATCH")
	api.HandleFunc("/loans/{id:[0-9]+}", loanHandler.DeleteLoan).Methods("DELETE")
	api.HandleFunc("/loans/{id:[0-9]+}/renew", loanHandler.RenewLoan).Methods("POST")
	api.HandleFunc("/loans/{id:[0-9]+}/return", loanHandler.ReturnLoan).Methods("POST")
	api.HandleFunc("/loans/{id:[0-9]+}/lost", loanHandler.MarkLost).Methods("POST")
	api.HandleFunc("/loans/{id:[0-9]+}/fine", loanHandler.QuoteFine).Methods("GET")
	api.HandleFunc("/loans/{id:[0-9]+}/fine/pay", loanHandler.PayFine).Methods("POST")

	// Payments
	api.HandleFunc("/payments", loanHandler.CreatePayment).Methods("POST")
	api.HandleFunc("/payments", loanHandler.ListPayments).Methods("GET")
	api.HandleFunc("/payments/{id:[0-9]+}", loanHandler.GetPayment).Methods("GET")
	api.HandleFunc("/payments/{id:[0-9]+}", loanHandler.UpdatePayment).Methods("PATCH")
	api.HandleFunc("/payments/{id:[0-9]+}", loanHandler.DeletePayment).Methods("DELETE")

	// Reservations
	api.HandleFunc("/reservations", loanHandler.CreateReservation).Methods("POST")
	api.HandleFunc("/reservations", loanHandler.ListReservations).Methods("GET")
	api.HandleFunc("/reservations/{id:[0-9]+}", loanHandler.GetReservation).Methods("GET")
	api.HandleFunc("/reservations/{id:[0-9]+}", loanHandler.UpdateReservation).Methods("PATCH")
	api.HandleFunc("/reservations/{id:[0-9]+}", loanHandler.DeleteReservation).Methods("DELETE")

	// Books
	api.HandleFunc("/books", catalogHandler.CreateBook).Methods("POST")
	api.HandleFunc("/books", catalogHandler.ListBooks).Methods("GET")
	api.HandleFunc("/books/{id:[0-9]+}", catalogHandler.GetBook).Methods("GET")
	api.HandleFunc("/books/{id:[0-9]+}", catalogHandler.UpdateBook).Methods("PATCH")
	api.HandleFunc("/books/{id:[0-9]+}", catalogHandler.DeleteBook).Methods("DELETE")

	// Authors
	api.HandleFunc("/authors", catalogHandler.CreateAuthor).Methods("POST")
	api.HandleFunc("/authors", catalogHandler.ListAuthors).Methods("GET")
	api.HandleFunc("/authors/{id:[0-9]+}", catalogHandler.GetAuthor).Methods("GET")
	api.HandleFunc("/authors/{id:[0-9]+}", catalogHandler.UpdateAuthor).Methods("PUT")
	api.HandleFunc("/authors/{id:[0-9]+}", catalogHandler.DeleteAuthor).Methods("DELETE")
	api.HandleFunc("/authors/{id:[0-9]+}/books", catalogHandler.AuthorBooks).Methods("GET")

	// Book-author links
	api.HandleFunc("/book-authors", catalogHandler.CreateBookAuthor).Methods("POST")
	api.HandleFunc("/book-authors", catalogHandler.ListBookAuthors).Methods("GET")
	api.HandleFunc("/book-authors/{id:[0-9]+}", catalogHandler.GetBookAuthor).Methods("GET")
	api.HandleFunc("/book-authors/{id:[0-9]+}", catalogHandler.UpdateBookAuthor).Methods("PUT")
	api.HandleFunc("/book-authors/{id:[0-9]+}", catalogHandler.DeleteBookAuthor).Methods("DELETE")

	// Book copies
	api.HandleFunc("/copies", catalogHandler.CreateCopy).Methods("POST")
	api.HandleFunc("/copies", catalogHandler.ListCopies).Methods("GET")
	api.HandleFunc("/copies/{id:[0-9]+}", catalogHandler.GetCopy).Methods("GET")
	api.HandleFunc("/copies/{id:[0-9]+}", catalogHandler.UpdateCopy).Methods("PATCH")
	api.HandleFunc("/copies/{id:[0-9]+}", catalogHandler.DeleteCopy).Methods("DELETE")
	api.HandleFunc("/copies/{id:[0-9]+}/write-off", catalogHandler.WriteOffCopy).Methods("POST")

	// Readers
	api.HandleFunc("/readers", readerHandler.CreateReader).Methods("POST")
	api.HandleFunc("/readers", readerHandler.ListReaders).Methods("GET")
	api.HandleFunc("/readers/{id:[0-9]+}", readerHandler.GetReader).Methods("GET")
	api.HandleFunc("/readers/{id:[0-9]+}", readerHandler.UpdateReader).Methods("PATCH")
	api.HandleFunc("/readers/{id:[0-9]+}", readerHandler.DeleteReader).Methods("DELETE")

	// Search
	api.HandleFunc("/search/books", catalogHandler.SearchBooks).Methods("GET")
	api.HandleFunc("/search/readers", readerHandler.SearchReaders).Methods("GET")

	// Visits
	api.HandleFunc("/visits", statsHandler.CreateVisit).Methods("POST")
	api.HandleFunc("/visits", statsHandler.ListVisits).Methods("GET")
	api.HandleFunc("/visits/{id:[0-9]+}", statsHandler.GetVisit).Methods("GET")
	api.HandleFunc("/visits/{id:[0-9]+}", statsHandler.UpdateVisit).Methods("PATCH")
	api.HandleFunc("/visits/{id:[0-9]+}", statsHandler.DeleteVisit).Methods("DELETE")

	// Reference requests
	api.HandleFunc("/reference-requests", statsHandler.CreateReferenceRequest).Methods("POST")
	api.HandleFunc("/reference-requests", statsHandler.ListReferenceRequests).Methods("GET")
	api.HandleFunc("/reference-requests/{id:[0-9]+}", statsHandler.GetReferenceRequest).Methods("GET")
	api.HandleFunc("/reference-requests/{id:[0-9]+}", statsHandler.UpdateReferenceRequest).Methods("PATCH")
	api.HandleFunc("/reference-requests/{id:[0-9]+}", statsHandler.DeleteReferenceRequest).Methods("DELETE")

	// Statistics
	api.HandleFunc("/statistics/library", statsHandler.LibrarySummary).Methods("GET")
	api.HandleFunc("/statistics/daily", statsHandler.DailySummary).Methods("GET")
	api.HandleFunc("/statistics/daily/recalculate", statsHandler.RecalculateDaily).Methods("POST")
	api.HandleFunc("/statistics/daily/{id:[0-9]+}", statsHandler.GetDailyStatistic).Methods("GET")
	api.HandleFunc("/statistics/daily/{id:[0-9]+}", statsHandler.DeleteDailyStatistic).Methods("DELETE")

	// Reference tables
	api.HandleFunc("/edition-types", referenceHandler.CreateEditionType).Methods("POST")
	api.HandleFunc("/edition-types", referenceHandler.ListEditionTypes).Methods("GET")
	api.HandleFunc("/edition-types/{id:[0-9]+}", referenceHandler.GetEditionType).Methods("GET")
	api.HandleFunc("/edition-types/{id:[0-9]+}", referenceHandler.UpdateEditionType).Methods("PUT")
	api.HandleFunc("/edition-types/{id:[0-9]+}", referenceHandler.DeleteEditionType).Methods("DELETE")

	api.HandleFunc("/languages", referenceHandler.CreateLanguage).Methods("POST")
	api.HandleFunc("/languages", referenceHandler.ListLanguages).Methods("GET")
	api.HandleFunc("/languages/{id:[0-9]+}", referenceHandler.GetLanguage).Methods("GET")
	api.HandleFunc("/languages/{id:[0-9]+}", referenceHandler.UpdateLanguage).Methods("PUT")
	api.HandleFunc("/languages/{id:[0-9]+}", referenceHandler.DeleteLanguage).Methods("DELETE")

	api.HandleFunc("/countries", referenceHandler.CreateCountry).Methods("POST")
	api.HandleFunc("/countries", referenceHandler.ListCountries).Methods("GET")
	api.HandleFunc("/countries/{id:[0-9]+}", referenceHandler.GetCountry).Methods("GET")
	api.HandleFunc("/countries/{id:[0-9]+}", referenceHandler.UpdateCountry).Methods("PUT")
	api.HandleFunc("/countries/{id:[0-9]+}", referenceHandler.DeleteCountry).Methods("DELETE")

	api.HandleFunc("/cities", referenceHandler.CreateCity).Methods("POST")
	api.HandleFunc("/cities", referenceHandler.ListCities).Methods("GET")
	api.HandleFunc("/cities/{id:[0-9]+}", referenceHandler.GetCity).Methods("GET")
	api.HandleFunc("/cities/{id:[0-9]+}", referenceHandler.UpdateCity).Methods("PUT")
	api.HandleFunc("/cities/{id:[0-9]+}", referenceHandler.DeleteCity).Methods("DELETE")

	api.HandleFunc("/publishers", referenceHandler.CreatePublisher).Methods("POST")
	api.HandleFunc("/publishers", referenceHandler.ListPublishers).Methods("GET")
	api.HandleFunc("/publishers/{id:[0-9]+}", referenceHandler.GetPublisher).Methods("GET")
	api.HandleFunc("/publishers/{id:[0-9]+}", referenceHandler.UpdatePublisher).Methods("PUT")
	api.HandleFunc("/publishers/{id:[0-9]+}", referenceHandler.DeletePublisher).Methods("DELETE")

	api.HandleFunc("/reader-categories", referenceHandler.CreateReaderCategory).Methods("POST")
	api.HandleFunc("/reader-categories", referenceHandler.ListReaderCategories).Methods("GET")
	api.HandleFunc("/reader-categories/{id:[0-9]+}", referenceHandler.GetReaderCategory).Methods("GET")
	api.HandleFunc("/reader-categories/{id:[0-9]+}", referenceHandler.UpdateReaderCategory).Methods("PUT")
	api.HandleFunc("/reader-categories/{id:[0-9]+}", referenceHandler.DeleteReaderCategory).Methods("DELETE")

	api.HandleFunc("/book-statuses", referenceHandler.CreateBookStatus).Methods("POST")
	api.HandleFunc("/book-statuses", referenceHandler.ListBookStatuses).Methods("GET")
	api.HandleFunc("/book-statuses/{id:[0-9]+}", referenceHandler.GetBookStatus).Methods("GET")
	api.HandleFunc("/book-statuses/{id:[0-9]+}", referenceHandler.UpdateBookStatus).Methods("PUT")
	api.HandleFunc("/book-statuses/{id:[0-9]+}", referenceHandler.DeleteBookStatus).Methods("DELETE")

	api.HandleFunc("/loan-statuses", referenceHandler.CreateLoanStatus).Methods("POST")
	api.HandleFunc("/loan-statuses", referenceHandler.ListLoanStatuses).Methods("GET")
	api.HandleFunc("/loan-statuses/{id:[0-9]+}", referenceHandler.GetLoanStatus).Methods("GET")
	api.HandleFunc("/loan-statuses/{id:[0-9]+}", referenceHandler.UpdateLoanStatus).Methods("PUT")
	api.HandleFunc("/loan-statuses/{id:[0-9]+}", referenceHandler.DeleteLoanStatus).Methods("DELETE")

	api.HandleFunc("/operation-types", referenceHandler.CreateOperationType).Methods("POST")
	api.HandleFunc("/operation-types", referenceHandler.ListOperationTypes).Methods("GET")
	api.HandleFunc("/operation-types/{id:[0-9]+}", referenceHandler.GetOperationType).Methods("GET")
	api.HandleFunc("/operation-types/{id:[0-9]+}", referenceHandler.UpdateOperationType).Methods("PUT")
	api.HandleFunc("/operation-types/{id:[0-9]+}", referenceHandler.DeleteOperationType).Methods("DELETE")

	return router
}

func rootBanner(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"service": "library-management-api",
		"health":  "/health",
		"api":     "/api/v1",
	})
}
