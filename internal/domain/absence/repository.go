package absence

import (
	"context"
	"time"
)

// Repository - interface for the employee_absences table
type Repository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	GetByID(ctx context.Context, id int64) (Absence, error)
	List(ctx context.Context, filter Filter) ([]Absence, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error

	// FindOverlapping returns the first existing record for the employee
	// whose inclusive range intersects [start, end]. When scope is
	// OverlapScopeSameType only records of absenceType are considered.
	// excludeID skips one record id (the record being updated).
	FindOverlapping(ctx context.Context, serviceAccount, absenceType string, start, end time.Time, excludeID *int64, scope OverlapScope) (Absence, bool, error)

	// CountByType reports how many records reference an absence-type name.
	CountByType(ctx context.Context, typeName string) (int64, error)
}
