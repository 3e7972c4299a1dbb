package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Service account validation: "s." prefix followed by at least two name
// segments, e.g. "s.john.doe".
func IsValidServiceAccount(account string) bool {
	if IsEmpty(account) {
		return false
	}
	if !strings.HasPrefix(account, "s.") {
		return false
	}
	return len(strings.Split(account, ".")) >= 3
}

// Hex color validation (#RRGGBB)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func IsValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// MonthBounds parses a "YYYY-MM" month filter and returns the first and
// last calendar day of that month.
func MonthBounds(monthStr string) (time.Time, time.Time, bool) {
	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, true
}

// YearBounds parses a "YYYY" year filter and returns Jan 1 and Dec 31 of
// that year.
func YearBounds(yearStr string) (time.Time, time.Time, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, false
	}
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return first, last, true
}
