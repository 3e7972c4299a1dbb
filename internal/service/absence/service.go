package absence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/itops-tools/absence-backend-go/internal/domain/absence"
	"github.com/itops-tools/absence-backend-go/internal/domain/absencetype"
	"github.com/itops-tools/absence-backend-go/internal/pkg/database"
	"github.com/itops-tools/absence-backend-go/internal/pkg/validator"
	"github.com/itops-tools/absence-backend-go/internal/repository/postgresql"
	auditService "github.com/itops-tools/absence-backend-go/internal/service/audit"
	"github.com/jackc/pgx/v5"
)

// Service orchestrates validation, overlap checking, persistence and
// audit recording for absence records.
type Service struct {
	db *database.DB
	absence.Repository
	typeRepo absencetype.Repository
	recorder *auditService.Recorder
	scope    absence.OverlapScope
}

func NewService(db *database.DB, absenceRepo absence.Repository, typeRepo absencetype.Repository, recorder *auditService.Recorder, scope absence.OverlapScope) *Service {
	return &Service{
		db:         db,
		Repository: absenceRepo,
		typeRepo:   typeRepo,
		recorder:   recorder,
		scope:      scope,
	}
}

// Create validates the request, checks for overlapping records, persists
// the absence and records a CREATE audit entry, all in one transaction.
func (s *Service) Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.Absence, error) {
	if err := req.Validate(); err != nil {
		return absence.Absence{}, err
	}

	startDate, err := time.Parse(absence.DateLayout, req.StartDate)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse(absence.DateLayout, req.EndDate)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	// A half-day absence always spans a single day.
	if req.IsHalfDay {
		endDate = startDate
	}

	if err := s.validateTypeMembership(ctx, req.AbsenceType); err != nil {
		return absence.Absence{}, err
	}

	var created absence.Absence
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := postgresql.AcquireAbsenceLock(txCtx, s.db, req.ServiceAccount); err != nil {
			return err
		}

		conflict, found, err := s.Repository.FindOverlapping(txCtx, req.ServiceAccount, req.AbsenceType, startDate, endDate, nil, s.scope)
		if err != nil {
			return fmt.Errorf("failed to check overlapping absences: %w", err)
		}
		if found {
			return &absence.OverlapError{
				ConflictingType:  conflict.AbsenceType,
				ConflictingID:    conflict.ID,
				ConflictingStart: conflict.StartDate,
				ConflictingEnd:   conflict.EndDate,
				RequestedStart:   startDate,
				RequestedEnd:     endDate,
			}
		}

		created, err = s.Repository.Create(txCtx, absence.Absence{
			ServiceAccount:   req.ServiceAccount,
			EmployeeFullname: req.EmployeeFullname,
			AbsenceType:      req.AbsenceType,
			StartDate:        startDate,
			EndDate:          endDate,
			IsHalfDay:        req.IsHalfDay,
		})
		if err != nil {
			return fmt.Errorf("failed to create absence: %w", err)
		}

		description := fmt.Sprintf("Created absence for %s (%s)", created.ServiceAccount, created.AbsenceType)
		return s.recorder.RecordCreate(txCtx, absence.EntityType, created.ID, absence.ToResponse(created), description)
	})
	if err != nil {
		return absence.Absence{}, err
	}

	return created, nil
}

// List returns absences matching the filter, newest-modified first.
func (s *Service) List(ctx context.Context, filter absence.Filter) ([]absence.Absence, error) {
	absences, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	return absences, nil
}

func (s *Service) Get(ctx context.Context, id int64) (absence.Absence, error) {
	return s.Repository.GetByID(ctx, id)
}

// Update applies a partial update. Only fields present in the request are
// validated and changed; the overlap check re-runs against the effective
// range whenever type, dates or the half-day flag change.
func (s *Service) Update(ctx context.Context, id int64, req absence.UpdateAbsenceRequest) (absence.Absence, error) {
	if err := req.Validate(); err != nil {
		return absence.Absence{}, err
	}

	if req.AbsenceType != nil {
		if err := s.validateTypeMembership(ctx, *req.AbsenceType); err != nil {
			return absence.Absence{}, err
		}
	}

	var updated absence.Absence
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.Repository.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		patch := absence.Patch{
			EmployeeFullname: req.EmployeeFullname,
			AbsenceType:      req.AbsenceType,
			IsHalfDay:        req.IsHalfDay,
		}

		// Effective values after the patch is applied.
		effectiveType := current.AbsenceType
		effectiveStart := current.StartDate
		effectiveEnd := current.EndDate

		if req.AbsenceType != nil {
			effectiveType = *req.AbsenceType
		}
		if req.StartDate != nil {
			startDate, err := time.Parse(absence.DateLayout, *req.StartDate)
			if err != nil {
				return fmt.Errorf("failed to parse start date: %w", err)
			}
			effectiveStart = startDate
			patch.StartDate = &startDate
		}
		if req.EndDate != nil {
			endDate, err := time.Parse(absence.DateLayout, *req.EndDate)
			if err != nil {
				return fmt.Errorf("failed to parse end date: %w", err)
			}
			effectiveEnd = endDate
			patch.EndDate = &endDate
		}
		if req.IsHalfDay != nil && *req.IsHalfDay {
			effectiveEnd = effectiveStart
			patch.EndDate = &effectiveStart
		}

		// A patch carrying only one bound can invert the stored range;
		// the DTO cannot see that, so the merged range is checked here.
		if effectiveEnd.Before(effectiveStart) {
			return validator.ValidationErrors{{
				Field:   "end_date",
				Message: "End date cannot be before start date",
			}}
		}

		rangeChanged := req.AbsenceType != nil || req.StartDate != nil || req.EndDate != nil || req.IsHalfDay != nil
		if rangeChanged {
			if err := postgresql.AcquireAbsenceLock(txCtx, s.db, current.ServiceAccount); err != nil {
				return err
			}

			conflict, found, err := s.Repository.FindOverlapping(txCtx, current.ServiceAccount, effectiveType, effectiveStart, effectiveEnd, &id, s.scope)
			if err != nil {
				return fmt.Errorf("failed to check overlapping absences: %w", err)
			}
			if found {
				return &absence.OverlapError{
					ConflictingType:  conflict.AbsenceType,
					ConflictingID:    conflict.ID,
					ConflictingStart: conflict.StartDate,
					ConflictingEnd:   conflict.EndDate,
					RequestedStart:   effectiveStart,
					RequestedEnd:     effectiveEnd,
				}
			}
		}

		if err := s.Repository.Update(txCtx, id, patch); err != nil {
			return err
		}

		updated, err = s.Repository.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		description := fmt.Sprintf("Updated absence for %s (%s)", updated.ServiceAccount, updated.AbsenceType)
		return s.recorder.RecordUpdate(txCtx, absence.EntityType, id, absence.ToResponse(current), absence.ToResponse(updated), description)
	})
	if err != nil {
		return absence.Absence{}, err
	}

	return updated, nil
}

// Delete captures the record snapshot, records a DELETE audit entry and
// removes the row, all in one transaction.
func (s *Service) Delete(ctx context.Context, id int64) (absence.Absence, error) {
	var deleted absence.Absence
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.Repository.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		description := fmt.Sprintf("Deleted absence for %s (%s)", current.ServiceAccount, current.AbsenceType)
		if err := s.recorder.RecordDelete(txCtx, absence.EntityType, current.ID, absence.ToResponse(current), description); err != nil {
			return err
		}

		if err := s.Repository.Delete(txCtx, id); err != nil {
			return err
		}

		deleted = current
		return nil
	})
	if err != nil {
		return absence.Absence{}, err
	}

	return deleted, nil
}

// Statistics reduces the filtered record set to total absence days, the
// distinct employee count and per-type day totals.
func (s *Service) Statistics(ctx context.Context, filter absence.Filter) (absence.Statistics, error) {
	absences, err := s.Repository.List(ctx, filter)
	if err != nil {
		return absence.Statistics{}, fmt.Errorf("failed to list absences for statistics: %w", err)
	}

	stats := absence.Statistics{
		ByType: make(map[string]int),
	}
	employees := make(map[string]struct{})
	for _, a := range absences {
		days := a.Days()
		stats.TotalDays += days
		stats.ByType[a.AbsenceType] += days
		employees[a.ServiceAccount] = struct{}{}
	}
	stats.UniqueEmployees = len(employees)

	return stats, nil
}

// validateTypeMembership checks the type against the active rows of the
// absence type registry.
func (s *Service) validateTypeMembership(ctx context.Context, typeName string) error {
	types, err := s.typeRepo.List(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to load absence types: %w", err)
	}

	allowed := make([]string, 0, len(types))
	for _, t := range types {
		allowed = append(allowed, t.Name)
	}
	if !validator.IsInSlice(typeName, allowed) {
		return validator.ValidationErrors{{
			Field:   "absence_type",
			Message: "Invalid absence type. Allowed types: " + strings.Join(allowed, ", "),
		}}
	}
	return nil
}
