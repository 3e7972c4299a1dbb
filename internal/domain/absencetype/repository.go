package absencetype

import "context"

// Repository - interface for the absence_types table
type Repository interface {
	Create(ctx context.Context, t AbsenceType) (AbsenceType, error)
	GetByID(ctx context.Context, id int64) (AbsenceType, error)
	// GetByName matches active and inactive types alike; the name is
	// unique across both.
	GetByName(ctx context.Context, name string) (AbsenceType, bool, error)
	List(ctx context.Context, activeOnly bool) ([]AbsenceType, error)
	Update(ctx context.Context, id int64, patch Patch) error
	Delete(ctx context.Context, id int64) error
}
