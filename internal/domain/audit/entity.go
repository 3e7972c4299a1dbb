package audit

import (
	"encoding/json"
	"time"
)

// Action is the kind of mutation an audit entry records.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// IsValid reports whether the action is one of the known kinds.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Entry is an immutable audit log record. OldValues is absent for
// CREATE, NewValues is absent for DELETE.
type Entry struct {
	ID          int64
	Action      Action
	EntityType  string
	EntityID    *int64
	Actor       string
	OldValues   json.RawMessage
	NewValues   json.RawMessage
	CreatedAt   time.Time
	Description *string
}

const (
	// DefaultListLimit and MaxListLimit bound audit log pagination.
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// ListFilter narrows and paginates audit log queries.
type ListFilter struct {
	Action   *Action
	EntityID *int64
	Limit    int
	Offset   int
}

// Normalized returns a copy of the filter with the limit defaulted and
// capped and the offset made non-negative. Handlers report these
// effective values in the response meta, so they must apply the same
// normalization the query side does.
func (f ListFilter) Normalized() ListFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Stats summarizes the audit log.
type Stats struct {
	TotalLogs int64
	ByAction  map[string]int64
	LatestLog *Entry
}
