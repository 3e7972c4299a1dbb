package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidServiceAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    bool
	}{
		{"valid two segments", "s.john.doe", true},
		{"valid three segments", "s.anna.maria.schmidt", true},
		{"missing prefix", "john.doe", false},
		{"wrong prefix", "x.john.doe", false},
		{"single segment", "s.john", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidServiceAccount(tt.account))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("15.03.2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidHexColor(t *testing.T) {
	assert.True(t, IsValidHexColor("#3B82F6"))
	assert.True(t, IsValidHexColor("#abcdef"))
	assert.False(t, IsValidHexColor("3B82F6"))
	assert.False(t, IsValidHexColor("#3B82F"))
	assert.False(t, IsValidHexColor("#3B82F6AA"))
	assert.False(t, IsValidHexColor("#GGGGGG"))
}

func TestMonthBounds(t *testing.T) {
	first, last, ok := MonthBounds("2026-02")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), last)

	// Leap year
	first, last, ok = MonthBounds("2028-02")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), last)

	_, _, ok = MonthBounds("2026-2")
	assert.False(t, ok)

	_, _, ok = MonthBounds("garbage")
	assert.False(t, ok)
}

func TestYearBounds(t *testing.T) {
	first, last, ok := YearBounds("2026")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), last)

	_, _, ok = YearBounds("26")
	assert.True(t, ok)

	_, _, ok = YearBounds("not-a-year")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date must be a valid date (YYYY-MM-DD)"},
		{Field: "service_account", Message: "service_account is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "service_account is required", m["service_account"])
	assert.Contains(t, errs.Error(), "start_date")
	assert.Contains(t, errs.Error(), "service_account")
}
