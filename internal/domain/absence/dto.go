package absence

import (
	"time"

	"github.com/itops-tools/absence-backend-go/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	ServiceAccount   string  `json:"service_account"`
	EmployeeFullname *string `json:"employee_fullname,omitempty"`
	AbsenceType      string  `json:"absence_type"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	IsHalfDay        bool    `json:"is_half_day"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	// Service account
	if validator.IsEmpty(r.ServiceAccount) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_account",
			Message: "service_account is required",
		})
	} else if !validator.IsValidServiceAccount(r.ServiceAccount) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_account",
			Message: "service_account must follow format: s.firstname.lastname",
		})
	}

	// Absence type
	if validator.IsEmpty(r.AbsenceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type",
			Message: "absence_type is required",
		})
	}

	// Date range
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date cannot be before start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAbsenceRequest struct {
	EmployeeFullname *string `json:"employee_fullname,omitempty"`
	AbsenceType      *string `json:"absence_type,omitempty"`
	StartDate        *string `json:"start_date,omitempty"`
	EndDate          *string `json:"end_date,omitempty"`
	IsHalfDay        *bool   `json:"is_half_day,omitempty"`
}

func (r *UpdateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	// Absence type
	if r.AbsenceType != nil && validator.IsEmpty(*r.AbsenceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type",
			Message: "absence_type must not be empty",
		})
	}

	// Dates are format-checked individually; the range ordering is only
	// re-validated when both bounds are part of the patch.
	var start, end time.Time
	startOK, endOK := false, false
	if r.StartDate != nil {
		if start, startOK = validator.IsValidDate(*r.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.EndDate != nil {
		if end, endOK = validator.IsValidDate(*r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date cannot be before start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AbsenceResponse is the wire representation of an absence record; it
// doubles as the audit snapshot format.
type AbsenceResponse struct {
	ID               int64   `json:"id"`
	ServiceAccount   string  `json:"service_account"`
	EmployeeFullname *string `json:"employee_fullname"`
	AbsenceType      string  `json:"absence_type"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	IsHalfDay        bool    `json:"is_half_day"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func ToResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:               a.ID,
		ServiceAccount:   a.ServiceAccount,
		EmployeeFullname: a.EmployeeFullname,
		AbsenceType:      a.AbsenceType,
		StartDate:        a.StartDate.Format(DateLayout),
		EndDate:          a.EndDate.Format(DateLayout),
		IsHalfDay:        a.IsHalfDay,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(absences []Absence) []AbsenceResponse {
	responses := make([]AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		responses = append(responses, ToResponse(a))
	}
	return responses
}
