package absence

import (
	"testing"

	"github.com/itops-tools/absence-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAbsenceRequestValidate(t *testing.T) {
	valid := CreateAbsenceRequest{
		ServiceAccount: "s.john.doe",
		AbsenceType:    "Urlaub",
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-05",
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing service account", func(t *testing.T) {
		req := valid
		req.ServiceAccount = ""
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "service_account")
	})

	t.Run("malformed service account", func(t *testing.T) {
		req := valid
		req.ServiceAccount = "john.doe"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap()["service_account"], "s.firstname.lastname")
	})

	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.StartDate = "2026-03-05"
		req.EndDate = "2026-03-01"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "End date cannot be before start date", errs.ToMap()["end_date"])
	})

	t.Run("malformed dates", func(t *testing.T) {
		req := valid
		req.StartDate = "01.03.2026"
		req.EndDate = "not-a-date"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "start_date")
		assert.Contains(t, errs.ToMap(), "end_date")
	})

	t.Run("single day range is valid", func(t *testing.T) {
		req := valid
		req.StartDate = "2026-03-01"
		req.EndDate = "2026-03-01"
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateAbsenceRequestValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		req := UpdateAbsenceRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("single date change is valid", func(t *testing.T) {
		req := UpdateAbsenceRequest{StartDate: strPtr("2026-03-02")}
		assert.NoError(t, req.Validate())
	})

	t.Run("ordering checked when both dates present", func(t *testing.T) {
		req := UpdateAbsenceRequest{
			StartDate: strPtr("2026-03-05"),
			EndDate:   strPtr("2026-03-01"),
		}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "End date cannot be before start date", errs.ToMap()["end_date"])
	})

	t.Run("empty absence type rejected", func(t *testing.T) {
		req := UpdateAbsenceRequest{AbsenceType: strPtr("  ")}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "absence_type")
	})
}

func TestOverlapErrorFormat(t *testing.T) {
	err := &OverlapError{
		ConflictingType:  "Urlaub",
		ConflictingID:    42,
		ConflictingStart: date(2026, 3, 1),
		ConflictingEnd:   date(2026, 3, 5),
		RequestedStart:   date(2026, 3, 4),
		RequestedEnd:     date(2026, 3, 10),
	}

	assert.Equal(t, "OVERLAP_ERROR|Urlaub|42|2026-03-01|2026-03-05|2026-03-04|2026-03-10", err.Error())

	details := err.Details()
	assert.Equal(t, "Urlaub", details["conflicting_type"])
	assert.Equal(t, "42", details["conflicting_id"])
	assert.Equal(t, "2026-03-01", details["conflicting_start"])
	assert.Equal(t, "2026-03-10", details["requested_end"])
}
