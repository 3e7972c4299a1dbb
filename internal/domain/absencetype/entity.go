package absencetype

import "time"

// DefaultColor is assigned when a new type does not specify one.
const DefaultColor = "#3B82F6"

// AbsenceType entity - reference data for the absence registry
type AbsenceType struct {
	ID        int64
	Name      string
	NameDE    string
	NameEN    string
	Color     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch holds the fields of a partial update. Only non-nil fields are
// applied.
type Patch struct {
	Name     *string
	NameDE   *string
	NameEN   *string
	Color    *string
	IsActive *bool
}
