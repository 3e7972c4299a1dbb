package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/itops-tools/absence-backend-go/internal/domain/audit"
	"github.com/itops-tools/absence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type auditLogRepositoryImpl struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) audit.Repository {
	return &auditLogRepositoryImpl{db: db}
}

const auditLogColumns = `id, action, entity_type, entity_id, actor, old_values, new_values, created_at, description`

func scanAuditEntry(row pgx.Row) (audit.Entry, error) {
	var e audit.Entry
	err := row.Scan(
		&e.ID, &e.Action, &e.EntityType, &e.EntityID, &e.Actor,
		&e.OldValues, &e.NewValues, &e.CreatedAt, &e.Description,
	)
	return e, err
}

// Append implements audit.Repository.
func (r *auditLogRepositoryImpl) Append(ctx context.Context, entry audit.Entry) (audit.Entry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO audit_logs (action, entity_type, entity_id, actor, old_values, new_values, created_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.Action, entry.EntityType, entry.EntityID, entry.Actor,
		entry.OldValues, entry.NewValues, entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return audit.Entry{}, err
	}

	return entry, nil
}

// GetByID implements audit.Repository.
func (r *auditLogRepositoryImpl) GetByID(ctx context.Context, id int64) (audit.Entry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + auditLogColumns + `
		FROM audit_logs
		WHERE id = $1
	`

	e, err := scanAuditEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return audit.Entry{}, audit.ErrEntryNotFound
		}
		return audit.Entry{}, err
	}

	return e, nil
}

// List implements audit.Repository.
func (r *auditLogRepositoryImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.Action != nil {
		conditions = append(conditions, fmt.Sprintf("action = $%d", argIdx))
		args = append(args, *filter.Action)
		argIdx++
	}
	if filter.EntityID != nil {
		conditions = append(conditions, fmt.Sprintf("entity_id = $%d", argIdx))
		args = append(args, *filter.EntityID)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM audit_logs"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + auditLogColumns + ` FROM audit_logs` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// CountByAction implements audit.Repository.
func (r *auditLogRepositoryImpl) CountByAction(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT action, COUNT(*) FROM audit_logs GROUP BY action`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var action string
		var count int64
		if err := rows.Scan(&action, &count); err != nil {
			return nil, err
		}
		counts[action] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Latest implements audit.Repository.
func (r *auditLogRepositoryImpl) Latest(ctx context.Context) (*audit.Entry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + auditLogColumns + `
		FROM audit_logs
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	e, err := scanAuditEntry(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &e, nil
}

// Purge implements audit.Repository.
func (r *auditLogRepositoryImpl) Purge(ctx context.Context, action *audit.Action) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM audit_logs`
	args := make([]interface{}, 0)
	if action != nil {
		query += ` WHERE action = $1`
		args = append(args, *action)
	}

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}
