package handler

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/service"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/response"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/utils"
)

// StatsHandler exposes visits, reference requests and the statistics
// endpoints.
type StatsHandler struct {
	service   *service.StatsService
	validator *validator.Validate
}

func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *StatsHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateVisitRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	visit, err := h.service.CreateVisit(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, visit)
}

func (h *StatsHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid visit id", err)
		return
	}

	visit, err := h.service.GetVisit(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, visit)
}

func (h *StatsHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.ListVisits(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, visits)
}

func (h *StatsHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid visit id", err)
		return
	}

	var patch domain.UpdateVisitRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	visit, err := h.service.UpdateVisit(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, visit)
}

func (h *StatsHandler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid visit id", err)
		return
	}

	if err = h.service.DeleteVisit(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "visit deleted"})
}

func (h *StatsHandler) CreateReferenceRequest(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateReferenceRequestRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	ref, err := h.service.CreateReferenceRequest(r.Context(), &request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, ref)
}

func (h *StatsHandler) GetReferenceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reference request id", err)
		return
	}

	ref, err := h.service.GetReferenceRequest(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, ref)
}

func (h *StatsHandler) ListReferenceRequests(w http.ResponseWriter, r *http.Request) {
	refs, err := h.service.ListReferenceRequests(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, refs)
}

func (h *StatsHandler) UpdateReferenceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reference request id", err)
		return
	}

	var patch domain.UpdateReferenceRequestRequest
	if err = decodeJSON(r, &patch); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err = h.validator.Struct(&patch); err != nil {
		response.BadRequest(w, "validation failed", customError.WrapValidationError(err))
		return
	}

	ref, err := h.service.UpdateReferenceRequest(r.Context(), id, &patch)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, ref)
}

func (h *StatsHandler) DeleteReferenceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid reference request id", err)
		return
	}

	if err = h.service.DeleteReferenceRequest(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "reference request deleted"})
}

// LibrarySummary returns the live library-wide counters
func (h *StatsHandler) LibrarySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.LibrarySummary(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, summary)
}

// DailySummary returns the stored per-day aggregates, newest first. The
// optional days query parameter caps the window (default 7).
func (h *StatsHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		response.BadRequest(w, "invalid days", err)
		return
	}
	limit := 7
	if days != nil {
		limit = *days
	}

	summary, err := h.service.DailySummary(r.Context(), limit)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, summary)
}

// RecalculateDaily recomputes one day's aggregate on demand. Without a date
// query parameter the day that just ended (yesterday) is recalculated.
func (h *StatsHandler) RecalculateDaily(w http.ResponseWriter, r *http.Request) {
	day, err := queryDate(r, "date")
	if err != nil {
		response.BadRequest(w, "invalid date, expected YYYY-MM-DD", err)
		return
	}
	target := utils.AddDays(time.Now(), -1)
	if day != nil {
		target = utils.DateOnly(*day)
	}

	stat, err := h.service.RecalculateDay(r.Context(), target)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, stat)
}

func (h *StatsHandler) GetDailyStatistic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid statistic id", err)
		return
	}

	stat, err := h.service.GetDailyStatistic(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, stat)
}

func (h *StatsHandler) DeleteDailyStatistic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid statistic id", err)
		return
	}

	if err = h.service.DeleteDailyStatistic(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "daily statistic deleted"})
}
