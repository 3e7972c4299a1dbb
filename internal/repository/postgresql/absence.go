package postgresql

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"context"

	"github.com/itops-tools/absence-backend-go/internal/domain/absence"
	"github.com/itops-tools/absence-backend-go/internal/pkg/database"
	"github.com/itops-tools/absence-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.Repository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `id, service_account, employee_fullname, absence_type,
	   start_date, end_date, is_half_day, created_at, updated_at`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	err := row.Scan(
		&a.ID, &a.ServiceAccount, &a.EmployeeFullname, &a.AbsenceType,
		&a.StartDate, &a.EndDate, &a.IsHalfDay, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements absence.Repository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employee_absences (
			service_account, employee_fullname, absence_type,
			start_date, end_date, is_half_day,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ServiceAccount, a.EmployeeFullname, a.AbsenceType,
		a.StartDate, a.EndDate, a.IsHalfDay,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return absence.Absence{}, err
	}

	return a, nil
}

// GetByID implements absence.Repository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + absenceColumns + `
		FROM employee_absences
		WHERE id = $1
	`

	a, err := scanAbsence(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, absence.ErrAbsenceNotFound
		}
		return absence.Absence{}, err
	}

	return a, nil
}

// List implements absence.Repository. Filters compose conjunctively; the
// month window takes precedence over year, and year over explicit
// start/end bounds. Malformed month/year values skip the date filter.
func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.Filter) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.ServiceAccount != nil {
		conditions = append(conditions, fmt.Sprintf("service_account ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.ServiceAccount+"%")
		argIdx++
	}
	if filter.EmployeeFullname != nil {
		conditions = append(conditions, fmt.Sprintf("employee_fullname ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.EmployeeFullname+"%")
		argIdx++
	}
	if filter.AbsenceType != nil {
		conditions = append(conditions, fmt.Sprintf("absence_type = $%d", argIdx))
		args = append(args, *filter.AbsenceType)
		argIdx++
	}

	switch {
	case filter.Month != nil:
		if first, last, ok := validator.MonthBounds(*filter.Month); ok {
			conditions = append(conditions, fmt.Sprintf("start_date <= $%d", argIdx))
			args = append(args, last)
			argIdx++
			conditions = append(conditions, fmt.Sprintf("end_date >= $%d", argIdx))
			args = append(args, first)
			argIdx++
		}
	case filter.Year != nil:
		if first, last, ok := validator.YearBounds(*filter.Year); ok {
			conditions = append(conditions, fmt.Sprintf("start_date <= $%d", argIdx))
			args = append(args, last)
			argIdx++
			conditions = append(conditions, fmt.Sprintf("end_date >= $%d", argIdx))
			args = append(args, first)
			argIdx++
		}
	default:
		if filter.StartDate != nil {
			conditions = append(conditions, fmt.Sprintf("start_date >= $%d", argIdx))
			args = append(args, *filter.StartDate)
			argIdx++
		}
		if filter.EndDate != nil {
			conditions = append(conditions, fmt.Sprintf("end_date <= $%d", argIdx))
			args = append(args, *filter.EndDate)
			argIdx++
		}
	}

	query := `SELECT ` + absenceColumns + ` FROM employee_absences`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY updated_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return absences, nil
}

// Update implements absence.Repository.
func (r *absenceRepositoryImpl) Update(ctx context.Context, id int64, patch absence.Patch) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if patch.EmployeeFullname != nil {
		updates = append(updates, fmt.Sprintf("employee_fullname = $%d", argIdx))
		args = append(args, *patch.EmployeeFullname)
		argIdx++
	}
	if patch.AbsenceType != nil {
		updates = append(updates, fmt.Sprintf("absence_type = $%d", argIdx))
		args = append(args, *patch.AbsenceType)
		argIdx++
	}
	if patch.StartDate != nil {
		updates = append(updates, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *patch.StartDate)
		argIdx++
	}
	if patch.EndDate != nil {
		updates = append(updates, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, *patch.EndDate)
		argIdx++
	}
	if patch.IsHalfDay != nil {
		updates = append(updates, fmt.Sprintf("is_half_day = $%d", argIdx))
		args = append(args, *patch.IsHalfDay)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, id)

	sql := "UPDATE employee_absences SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.ErrAbsenceNotFound
		}
		return fmt.Errorf("failed to update absence with id %d: %w", id, err)
	}
	return nil
}

// Delete implements absence.Repository.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM employee_absences
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

// FindOverlapping implements absence.Repository. Two inclusive ranges
// [a,b] and [c,d] overlap iff a <= d AND c <= b.
func (r *absenceRepositoryImpl) FindOverlapping(ctx context.Context, serviceAccount, absenceType string, start, end time.Time, excludeID *int64, scope absence.OverlapScope) (absence.Absence, bool, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"service_account = $1", "start_date <= $2", "end_date >= $3"}
	args := []interface{}{serviceAccount, end, start}
	argIdx := 4

	if scope == absence.OverlapScopeSameType {
		conditions = append(conditions, fmt.Sprintf("absence_type = $%d", argIdx))
		args = append(args, absenceType)
		argIdx++
	}
	if excludeID != nil {
		conditions = append(conditions, fmt.Sprintf("id != $%d", argIdx))
		args = append(args, *excludeID)
		argIdx++
	}

	query := `SELECT ` + absenceColumns + ` FROM employee_absences WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY id LIMIT 1`

	a, err := scanAbsence(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Absence{}, false, nil
		}
		return absence.Absence{}, false, err
	}

	return a, true, nil
}

// CountByType implements absence.Repository.
func (r *absenceRepositoryImpl) CountByType(ctx context.Context, typeName string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employee_absences WHERE absence_type = $1`, typeName).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
