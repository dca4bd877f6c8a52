package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/domain"
)

// validForm returns a TripForm that passes all validation rules against
// today(). Callers override individual fields to trigger specific errors.
func validForm(t *testing.T) domain.TripForm {
	t.Helper()
	return domain.TripForm{
		Title:       "Summer in Europe",
		Destination: "Paris",
		StartDate:   mustDate(t, "2099-01-01"),
		EndDate:     mustDate(t, "2099-01-05"),
	}
}

func today(t *testing.T) domain.Date {
	t.Helper()
	return mustDate(t, "2025-09-01")
}

// ---- individual rules ------------------------------------------------------

func TestValidateTripForm_Valid(t *testing.T) {
	errs := domain.ValidateTripForm(validForm(t), today(t))

	assert.Empty(t, errs)
}

func TestValidateTripForm_MissingTitle(t *testing.T) {
	form := validForm(t)
	form.Title = "   " // whitespace-only is treated as empty

	errs := domain.ValidateTripForm(form, today(t))

	// Exactly one error, keyed by the failing field.
	assert.Equal(t, domain.FieldErrors{"title": "Trip title is required"}, errs)
}

func TestValidateTripForm_MissingDestination(t *testing.T) {
	form := validForm(t)
	form.Destination = ""

	errs := domain.ValidateTripForm(form, today(t))

	assert.Equal(t, domain.FieldErrors{"destination": "Destination is required"}, errs)
}

func TestValidateTripForm_MissingDates(t *testing.T) {
	form := validForm(t)
	form.StartDate = domain.Date{}
	form.EndDate = domain.Date{}

	errs := domain.ValidateTripForm(form, today(t))

	assert.Equal(t, "Start date is required", errs["start_date"])
	assert.Equal(t, "End date is required", errs["end_date"])
	assert.Len(t, errs, 2)
}

func TestValidateTripForm_EndBeforeStart(t *testing.T) {
	form := validForm(t)
	form.StartDate = mustDate(t, "2099-01-05")
	form.EndDate = mustDate(t, "2099-01-01")

	errs := domain.ValidateTripForm(form, today(t))

	// The ordering error is reported on end_date, per the original form UX.
	assert.Equal(t, domain.FieldErrors{"end_date": "End date must be after start date"}, errs)
}

func TestValidateTripForm_StartInPast(t *testing.T) {
	form := validForm(t)
	form.StartDate = mustDate(t, "2025-08-31")
	form.EndDate = mustDate(t, "2099-01-01")

	errs := domain.ValidateTripForm(form, today(t))

	assert.Equal(t, domain.FieldErrors{"start_date": "Start date cannot be in the past"}, errs)
}

func TestValidateTripForm_StartTodayIsAllowed(t *testing.T) {
	form := validForm(t)
	form.StartDate = today(t)
	form.EndDate = today(t).AddDays(3)

	errs := domain.ValidateTripForm(form, today(t))

	// The past-date boundary is strictly-less-than: today itself is fine.
	assert.Empty(t, errs)
}

func TestValidateTripForm_SameDayTripIsAllowed(t *testing.T) {
	form := validForm(t)
	form.EndDate = form.StartDate

	errs := domain.ValidateTripForm(form, today(t))

	assert.Empty(t, errs)
}

// ---- multiple simultaneous failures ----------------------------------------

func TestValidateTripForm_ReportsAllProblemsAtOnce(t *testing.T) {
	errs := domain.ValidateTripForm(domain.TripForm{}, today(t))

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "destination")
	assert.Contains(t, errs, "start_date")
	assert.Contains(t, errs, "end_date")
}

// ---- ValidationError -------------------------------------------------------

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := domain.NewValidationError(domain.FieldErrors{"title": "Trip title is required"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidationError_FieldsExtractable(t *testing.T) {
	var wrapped error = domain.NewValidationError(domain.FieldErrors{
		"end_date": "End date must be after start date",
	})

	var ve *domain.ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "End date must be after start date", ve.Fields["end_date"])
}

func TestValidationError_StableMessage(t *testing.T) {
	err := domain.NewValidationError(domain.FieldErrors{
		"title":       "Trip title is required",
		"destination": "Destination is required",
	})

	// Fields are joined in sorted order so the message is deterministic.
	assert.Equal(t, "validation error: destination: Destination is required; title: Trip title is required", err.Error())
}
