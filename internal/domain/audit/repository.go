package audit

import "context"

// Repository - interface for the audit_logs table. Entries are only ever
// appended; Purge is the administrative bulk delete.
type Repository interface {
	Append(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id int64) (Entry, error)
	// List returns a page of entries newest-first together with the total
	// count matching the filter.
	List(ctx context.Context, filter ListFilter) ([]Entry, int64, error)
	CountByAction(ctx context.Context) (map[string]int64, error)
	Latest(ctx context.Context) (*Entry, error)
	Purge(ctx context.Context, action *Action) (int64, error)
}
