package absencetype

import (
	"errors"
	"fmt"
)

var (
	ErrAbsenceTypeNotFound = errors.New("Absence type not found")
	ErrNameTaken           = errors.New("Absence type with this name already exists")
)

// InUseError blocks a hard delete while absence records still reference
// the type's name.
type InUseError struct {
	Name       string
	References int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("Cannot delete absence type %q because it is used in %d absence record(s). Use soft delete instead.", e.Name, e.References)
}
