package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "identical ranges",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 3, 1), bEnd: date(2026, 3, 5),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 3, 4), bEnd: date(2026, 3, 10),
			want: true,
		},
		{
			name:   "contained range",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 31),
			bStart: date(2026, 3, 10), bEnd: date(2026, 3, 12),
			want: true,
		},
		{
			name:   "shared boundary day",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 3, 5), bEnd: date(2026, 3, 8),
			want: true,
		},
		{
			name:   "adjacent days do not overlap",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 3, 6), bEnd: date(2026, 3, 8),
			want: false,
		},
		{
			name:   "disjoint ranges",
			aStart: date(2026, 3, 1), aEnd: date(2026, 3, 5),
			bStart: date(2026, 4, 1), bEnd: date(2026, 4, 5),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Symmetric predicate
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(date(2026, 3, 1), date(2026, 3, 1)))
	assert.Equal(t, 5, DaysInclusive(date(2026, 3, 1), date(2026, 3, 5)))
	assert.Equal(t, 31, DaysInclusive(date(2026, 3, 1), date(2026, 3, 31)))
	// Spans a month boundary
	assert.Equal(t, 4, DaysInclusive(date(2026, 2, 27), date(2026, 3, 2)))
}

func TestDays(t *testing.T) {
	full := Absence{StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 5)}
	assert.Equal(t, 5, full.Days())

	half := Absence{StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 1), IsHalfDay: true}
	assert.Equal(t, 1, half.Days())
}
