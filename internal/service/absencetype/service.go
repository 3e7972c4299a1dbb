package absencetype

import (
	"context"
	"fmt"

	"github.com/itops-tools/absence-backend-go/internal/domain/absence"
	"github.com/itops-tools/absence-backend-go/internal/domain/absencetype"
)

// Service manages the absence type registry.
type Service struct {
	absencetype.Repository
	absenceRepo absence.Repository
}

func NewService(repo absencetype.Repository, absenceRepo absence.Repository) *Service {
	return &Service{
		Repository:  repo,
		absenceRepo: absenceRepo,
	}
}

// Create registers a new absence type. Names are unique across the
// registry, including soft-deleted rows.
func (s *Service) Create(ctx context.Context, req absencetype.CreateAbsenceTypeRequest) (absencetype.AbsenceType, error) {
	if err := req.Validate(); err != nil {
		return absencetype.AbsenceType{}, err
	}

	_, exists, err := s.Repository.GetByName(ctx, req.Name)
	if err != nil {
		return absencetype.AbsenceType{}, fmt.Errorf("failed to check absence type name: %w", err)
	}
	if exists {
		return absencetype.AbsenceType{}, absencetype.ErrNameTaken
	}

	color := absencetype.DefaultColor
	if req.Color != nil && *req.Color != "" {
		color = *req.Color
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := s.Repository.Create(ctx, absencetype.AbsenceType{
		Name:     req.Name,
		NameDE:   req.NameDE,
		NameEN:   req.NameEN,
		Color:    color,
		IsActive: active,
	})
	if err != nil {
		return absencetype.AbsenceType{}, fmt.Errorf("failed to create absence type: %w", err)
	}

	return created, nil
}

// List returns registry entries, optionally restricted to active ones.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]absencetype.AbsenceType, error) {
	types, err := s.Repository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence types: %w", err)
	}
	return types, nil
}

func (s *Service) Get(ctx context.Context, id int64) (absencetype.AbsenceType, error) {
	return s.Repository.GetByID(ctx, id)
}

// Update applies a partial update; renaming onto an existing name is
// rejected.
func (s *Service) Update(ctx context.Context, id int64, req absencetype.UpdateAbsenceTypeRequest) (absencetype.AbsenceType, error) {
	if err := req.Validate(); err != nil {
		return absencetype.AbsenceType{}, err
	}

	current, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return absencetype.AbsenceType{}, err
	}

	if req.Name != nil && *req.Name != current.Name {
		_, exists, err := s.Repository.GetByName(ctx, *req.Name)
		if err != nil {
			return absencetype.AbsenceType{}, fmt.Errorf("failed to check absence type name: %w", err)
		}
		if exists {
			return absencetype.AbsenceType{}, absencetype.ErrNameTaken
		}
	}

	patch := absencetype.Patch{
		Name:     req.Name,
		NameDE:   req.NameDE,
		NameEN:   req.NameEN,
		Color:    req.Color,
		IsActive: req.IsActive,
	}
	if err := s.Repository.Update(ctx, id, patch); err != nil {
		return absencetype.AbsenceType{}, err
	}

	return s.Repository.GetByID(ctx, id)
}

// Delete soft-deletes the type so it no longer validates new absences.
// Existing absence records keep the name.
func (s *Service) Delete(ctx context.Context, id int64) (absencetype.AbsenceType, error) {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return absencetype.AbsenceType{}, err
	}

	inactive := false
	if err := s.Repository.Update(ctx, id, absencetype.Patch{IsActive: &inactive}); err != nil {
		return absencetype.AbsenceType{}, err
	}

	return s.Repository.GetByID(ctx, id)
}

// HardDelete removes the row entirely. It is refused while absence
// records still reference the type by name.
func (s *Service) HardDelete(ctx context.Context, id int64) error {
	current, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	references, err := s.absenceRepo.CountByType(ctx, current.Name)
	if err != nil {
		return fmt.Errorf("failed to count absences for type %q: %w", current.Name, err)
	}
	if references > 0 {
		return &absencetype.InUseError{Name: current.Name, References: references}
	}

	return s.Repository.Delete(ctx, id)
}
