package response

import (
	"errors"
	"net/http"

	"github.com/itops-tools/absence-backend-go/internal/domain/absence"
	"github.com/itops-tools/absence-backend-go/internal/domain/absencetype"
	"github.com/itops-tools/absence-backend-go/internal/domain/audit"
	"github.com/itops-tools/absence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error(), validationErrs.ToMap())
		return
	}

	var overlapErr *absence.OverlapError
	if errors.As(err, &overlapErr) {
		BadRequest(w, overlapErr.Error(), overlapErr.Details())
		return
	}

	var inUseErr *absencetype.InUseError
	if errors.As(err, &inUseErr) {
		Conflict(w, inUseErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, absencetype.ErrAbsenceTypeNotFound):
		NotFound(w, "Absence type not found")
	case errors.Is(err, absencetype.ErrNameTaken):
		BadRequest(w, "Absence type with this name already exists", nil)
	case errors.Is(err, audit.ErrEntryNotFound):
		NotFound(w, "Audit log entry not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
