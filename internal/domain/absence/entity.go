package absence

import "time"

// DateLayout is the wire format for absence dates.
const DateLayout = "2006-01-02"

// EntityType tags audit entries written for absence records.
const EntityType = "EmployeeAbsence"

// OverlapScope selects which existing records the overlap check considers.
type OverlapScope string

const (
	// OverlapScopeAny forbids any intersecting range for the employee,
	// regardless of absence type.
	OverlapScopeAny OverlapScope = "any"
	// OverlapScopeSameType only forbids intersecting ranges of the same
	// absence type.
	OverlapScopeSameType OverlapScope = "same_type"
)

// Absence entity
type Absence struct {
	ID               int64
	ServiceAccount   string
	EmployeeFullname *string
	AbsenceType      string
	StartDate        time.Time
	EndDate          time.Time
	IsHalfDay        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Days returns the number of absence days the record contributes. A
// half-day record always counts as a single day.
func (a Absence) Days() int {
	if a.IsHalfDay {
		return 1
	}
	return DaysInclusive(a.StartDate, a.EndDate)
}

// DaysInclusive counts calendar days in the inclusive range [start, end].
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Patch holds the fields of a partial update. Only non-nil fields are
// applied.
type Patch struct {
	EmployeeFullname *string
	AbsenceType      *string
	StartDate        *time.Time
	EndDate          *time.Time
	IsHalfDay        *bool
}

// Filter composes conjunctive list/statistics filters. Month takes
// precedence over Year, which takes precedence over the explicit
// StartDate/EndDate bounds.
type Filter struct {
	ServiceAccount   *string
	EmployeeFullname *string
	AbsenceType      *string
	Month            *string
	Year             *string
	StartDate        *time.Time
	EndDate          *time.Time
}

// Statistics aggregates absence days over a filtered record set.
type Statistics struct {
	TotalDays       int            `json:"total_days"`
	UniqueEmployees int            `json:"unique_employees"`
	ByType          map[string]int `json:"by_type"`
}
