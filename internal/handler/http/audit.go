package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/itops-tools/absence-backend-go/internal/domain/audit"
	"github.com/itops-tools/absence-backend-go/internal/handler/http/response"
	auditService "github.com/itops-tools/absence-backend-go/internal/service/audit"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Purge(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService *auditService.Service
}

func NewAuditHandler(svc *auditService.Service) AuditHandler {
	return &AuditHandlerImpl{auditService: svc}
}

func parseAction(raw string) (*audit.Action, bool) {
	if raw == "" {
		return nil, true
	}
	action := audit.Action(strings.ToUpper(raw))
	if !action.IsValid() {
		return nil, false
	}
	return &action, true
}

// List implements AuditHandler. Malformed action and entity_id values are
// ignored rather than rejected, same as the absence list filters; the
// action match is case-insensitive.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := audit.ListFilter{}

	if raw := query.Get("action"); raw != "" {
		if action := audit.Action(strings.ToUpper(raw)); action.IsValid() {
			filter.Action = &action
		}
	}
	if raw := query.Get("entity_id"); raw != "" {
		if entityID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.EntityID = &entityID
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filter.Limit = parsed
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			filter.Offset = parsed
		}
	}

	// Meta reports the effective pagination values, so normalize here
	// the same way the service does before querying.
	filter = filter.Normalized()

	entries, total, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, audit.ToResponseList(entries), &response.Meta{
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		Returned: len(entries),
	})
}

// Get implements AuditHandler.
func (h *AuditHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID", nil)
		return
	}

	entry, err := h.auditService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, audit.ToResponse(entry))
}

// Stats implements AuditHandler.
func (h *AuditHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.auditService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, audit.ToStatsResponse(stats))
}

// Purge implements AuditHandler. Unlike List, a malformed action is
// rejected: silently dropping the filter here would purge the whole
// trail instead of one action's entries.
func (h *AuditHandlerImpl) Purge(w http.ResponseWriter, r *http.Request) {
	action, ok := parseAction(r.URL.Query().Get("action"))
	if !ok {
		response.BadRequest(w, "Invalid action. Allowed values: CREATE, UPDATE, DELETE", nil)
		return
	}

	deleted, err := h.auditService.Purge(r.Context(), action)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Audit logs purged successfully", map[string]int64{
		"deleted": deleted,
	})
}
