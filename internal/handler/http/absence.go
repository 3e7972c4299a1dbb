package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itops-tools/absence-backend-go/internal/domain/absence"
	"github.com/itops-tools/absence-backend-go/internal/handler/http/response"
	absenceService "github.com/itops-tools/absence-backend-go/internal/service/absence"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService *absenceService.Service
}

func NewAbsenceHandler(svc *absenceService.Service) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: svc}
}

// parseAbsenceFilter reads the shared list/statistics query parameters.
// Malformed month, year and date values are ignored rather than rejected
// so a bad filter degrades to an unfiltered listing.
func parseAbsenceFilter(r *http.Request) absence.Filter {
	filter := absence.Filter{}
	query := r.URL.Query()

	if serviceAccount := query.Get("service_account"); serviceAccount != "" {
		filter.ServiceAccount = &serviceAccount
	}
	if fullname := query.Get("employee_fullname"); fullname != "" {
		filter.EmployeeFullname = &fullname
	}
	if absenceType := query.Get("absence_type"); absenceType != "" {
		filter.AbsenceType = &absenceType
	}
	if month := query.Get("month"); month != "" {
		filter.Month = &month
	}
	if year := query.Get("year"); year != "" {
		filter.Year = &year
	}
	if startDate := query.Get("start_date"); startDate != "" {
		if parsed, err := time.Parse(absence.DateLayout, startDate); err == nil {
			filter.StartDate = &parsed
		}
	}
	if endDate := query.Get("end_date"); endDate != "" {
		if parsed, err := time.Parse(absence.DateLayout, endDate); err == nil {
			filter.EndDate = &parsed
		}
	}

	return filter
}

func absenceIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.absenceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence created successfully", absence.ToResponse(created))
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	absences, err := h.absenceService.List(r.Context(), parseAbsenceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absence.ToResponseList(absences))
}

// Get implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := absenceIDFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid absence ID", nil)
		return
	}

	a, err := h.absenceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absence.ToResponse(a))
}

// Update implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := absenceIDFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid absence ID", nil)
		return
	}

	var req absence.UpdateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.absenceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence updated successfully", absence.ToResponse(updated))
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := absenceIDFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid absence ID", nil)
		return
	}

	deleted, err := h.absenceService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", absence.ToResponse(deleted))
}

// Statistics implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.absenceService.Statistics(r.Context(), parseAbsenceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
