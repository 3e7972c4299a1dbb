package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itops-tools/absence-backend-go/internal/domain/absencetype"
	"github.com/itops-tools/absence-backend-go/internal/handler/http/response"
	absenceTypeService "github.com/itops-tools/absence-backend-go/internal/service/absencetype"
)

type AbsenceTypeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AbsenceTypeHandlerImpl struct {
	typeService *absenceTypeService.Service
}

func NewAbsenceTypeHandler(svc *absenceTypeService.Service) AbsenceTypeHandler {
	return &AbsenceTypeHandlerImpl{typeService: svc}
}

func absenceTypeIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Create implements AbsenceTypeHandler.
func (h *AbsenceTypeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absencetype.CreateAbsenceTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create absence type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.typeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence type created successfully", absencetype.ToResponse(created))
}

// List implements AbsenceTypeHandler.
func (h *AbsenceTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("active_only"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			activeOnly = parsed
		}
	}

	types, err := h.typeService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absencetype.ToResponseList(types))
}

// Get implements AbsenceTypeHandler.
func (h *AbsenceTypeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := absenceTypeIDFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid absence type ID", nil)
		return
	}

	t, err := h.typeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, absencetype.ToResponse(t))
}

// Update implements AbsenceTypeHandler.
func (h *AbsenceTypeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := absenceTypeIDFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid absence type ID", nil)
		return
	}

	var req absencetype.UpdateAbsenceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update absence type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.typeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence type updated successfully", absencetype.ToResponse(updated))
}

// Delete implements AbsenceTypeHandler. Soft delete by default; ?hard=true
// removes the row permanently when no absence references it.
func (h *AbsenceTypeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := absenceTypeIDFromURL(r)
	if !ok {
		response.BadRequest(w, "Invalid absence type ID", nil)
		return
	}

	hard := false
	if raw := r.URL.Query().Get("hard"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			hard = parsed
		}
	}

	if hard {
		if err := h.typeService.HardDelete(r.Context(), id); err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Absence type permanently deleted", nil)
		return
	}

	deactivated, err := h.typeService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence type deactivated successfully", absencetype.ToResponse(deactivated))
}
