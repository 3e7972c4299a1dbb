package absencetype

import (
	"time"

	"github.com/itops-tools/absence-backend-go/internal/pkg/validator"
)

type CreateAbsenceTypeRequest struct {
	Name     string  `json:"name"`
	NameDE   string  `json:"name_de"`
	NameEN   string  `json:"name_en"`
	Color    *string `json:"color,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *CreateAbsenceTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.NameDE) {
		errs = append(errs, validator.ValidationError{
			Field:   "name_de",
			Message: "name_de is required",
		})
	}
	if validator.IsEmpty(r.NameEN) {
		errs = append(errs, validator.ValidationError{
			Field:   "name_en",
			Message: "name_en is required",
		})
	}
	if r.Color != nil && !validator.IsValidHexColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "Color must be in hex format (#RRGGBB)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAbsenceTypeRequest struct {
	Name     *string `json:"name,omitempty"`
	NameDE   *string `json:"name_de,omitempty"`
	NameEN   *string `json:"name_en,omitempty"`
	Color    *string `json:"color,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAbsenceTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.NameDE != nil && validator.IsEmpty(*r.NameDE) {
		errs = append(errs, validator.ValidationError{
			Field:   "name_de",
			Message: "name_de must not be empty",
		})
	}
	if r.NameEN != nil && validator.IsEmpty(*r.NameEN) {
		errs = append(errs, validator.ValidationError{
			Field:   "name_en",
			Message: "name_en must not be empty",
		})
	}
	if r.Color != nil && !validator.IsValidHexColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "Color must be in hex format (#RRGGBB)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AbsenceTypeResponse is the wire representation of an absence type.
type AbsenceTypeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	NameDE    string `json:"name_de"`
	NameEN    string `json:"name_en"`
	Color     string `json:"color"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToResponse(t AbsenceType) AbsenceTypeResponse {
	return AbsenceTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		NameDE:    t.NameDE,
		NameEN:    t.NameEN,
		Color:     t.Color,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(types []AbsenceType) []AbsenceTypeResponse {
	responses := make([]AbsenceTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, ToResponse(t))
	}
	return responses
}
