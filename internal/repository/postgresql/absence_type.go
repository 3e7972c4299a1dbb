package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itops-tools/absence-backend-go/internal/domain/absencetype"
	"github.com/itops-tools/absence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type absenceTypeRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceTypeRepository(db *database.DB) absencetype.Repository {
	return &absenceTypeRepositoryImpl{db: db}
}

const absenceTypeColumns = `id, name, name_de, name_en, color, is_active, created_at, updated_at`

func scanAbsenceType(row pgx.Row) (absencetype.AbsenceType, error) {
	var t absencetype.AbsenceType
	err := row.Scan(
		&t.ID, &t.Name, &t.NameDE, &t.NameEN, &t.Color, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements absencetype.Repository.
func (r *absenceTypeRepositoryImpl) Create(ctx context.Context, t absencetype.AbsenceType) (absencetype.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO absence_types (name, name_de, name_en, color, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.Name, t.NameDE, t.NameEN, t.Color, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return absencetype.AbsenceType{}, err
	}

	return t, nil
}

// GetByID implements absencetype.Repository.
func (r *absenceTypeRepositoryImpl) GetByID(ctx context.Context, id int64) (absencetype.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + absenceTypeColumns + `
		FROM absence_types
		WHERE id = $1
	`

	t, err := scanAbsenceType(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absencetype.AbsenceType{}, absencetype.ErrAbsenceTypeNotFound
		}
		return absencetype.AbsenceType{}, err
	}

	return t, nil
}

// GetByName implements absencetype.Repository.
func (r *absenceTypeRepositoryImpl) GetByName(ctx context.Context, name string) (absencetype.AbsenceType, bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + absenceTypeColumns + `
		FROM absence_types
		WHERE name = $1
	`

	t, err := scanAbsenceType(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absencetype.AbsenceType{}, false, nil
		}
		return absencetype.AbsenceType{}, false, err
	}

	return t, true, nil
}

// List implements absencetype.Repository.
func (r *absenceTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]absencetype.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceTypeColumns + ` FROM absence_types`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []absencetype.AbsenceType
	for rows.Next() {
		t, err := scanAbsenceType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

// Update implements absencetype.Repository.
func (r *absenceTypeRepositoryImpl) Update(ctx context.Context, id int64, patch absencetype.Patch) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if patch.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *patch.Name)
		argIdx++
	}
	if patch.NameDE != nil {
		updates = append(updates, fmt.Sprintf("name_de = $%d", argIdx))
		args = append(args, *patch.NameDE)
		argIdx++
	}
	if patch.NameEN != nil {
		updates = append(updates, fmt.Sprintf("name_en = $%d", argIdx))
		args = append(args, *patch.NameEN)
		argIdx++
	}
	if patch.Color != nil {
		updates = append(updates, fmt.Sprintf("color = $%d", argIdx))
		args = append(args, *patch.Color)
		argIdx++
	}
	if patch.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *patch.IsActive)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, id)

	sql := "UPDATE absence_types SET " + strings.Join(updates, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absencetype.ErrAbsenceTypeNotFound
		}
		return fmt.Errorf("failed to update absence type with id %d: %w", id, err)
	}
	return nil
}

// Delete implements absencetype.Repository.
func (r *absenceTypeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM absence_types
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absencetype.ErrAbsenceTypeNotFound
	}
	return nil
}
