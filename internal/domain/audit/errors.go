package audit

import "errors"

var ErrEntryNotFound = errors.New("Audit log not found")
