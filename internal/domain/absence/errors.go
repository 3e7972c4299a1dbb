package absence

import (
	"errors"
	"fmt"
	"time"
)

var ErrAbsenceNotFound = errors.New("Absence not found")

// OverlapError reports a date-range collision with an existing absence
// record. The Error string keeps the machine-parseable
// OVERLAP_ERROR|type|id|start|end|start|end format the frontend splits on.
type OverlapError struct {
	ConflictingType  string
	ConflictingID    int64
	ConflictingStart time.Time
	ConflictingEnd   time.Time
	RequestedStart   time.Time
	RequestedEnd     time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("OVERLAP_ERROR|%s|%d|%s|%s|%s|%s",
		e.ConflictingType,
		e.ConflictingID,
		e.ConflictingStart.Format(DateLayout),
		e.ConflictingEnd.Format(DateLayout),
		e.RequestedStart.Format(DateLayout),
		e.RequestedEnd.Format(DateLayout),
	)
}

// Details returns the conflict as a field map for the error envelope.
func (e *OverlapError) Details() map[string]string {
	return map[string]string{
		"conflicting_type":  e.ConflictingType,
		"conflicting_id":    fmt.Sprintf("%d", e.ConflictingID),
		"conflicting_start": e.ConflictingStart.Format(DateLayout),
		"conflicting_end":   e.ConflictingEnd.Format(DateLayout),
		"requested_start":   e.RequestedStart.Format(DateLayout),
		"requested_end":     e.RequestedEnd.Format(DateLayout),
	}
}
