package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/domain"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

// ---- InclusiveDays ---------------------------------------------------------

func TestInclusiveDays_SameDayIsOne(t *testing.T) {
	d := mustDate(t, "2024-03-01")

	assert.Equal(t, 1, domain.InclusiveDays(d, d))
}

func TestInclusiveDays_CountsBothEndpoints(t *testing.T) {
	start := mustDate(t, "2024-03-01")
	end := mustDate(t, "2024-03-05")

	assert.Equal(t, 5, domain.InclusiveDays(start, end))
}

func TestInclusiveDays_Symmetric(t *testing.T) {
	a := mustDate(t, "2024-03-01")
	b := mustDate(t, "2024-04-17")

	assert.Equal(t, domain.InclusiveDays(a, b), domain.InclusiveDays(b, a))
}

func TestInclusiveDays_AcrossYearBoundary(t *testing.T) {
	start := mustDate(t, "2024-12-30")
	end := mustDate(t, "2025-01-02")

	assert.Equal(t, 4, domain.InclusiveDays(start, end))
}

func TestInclusiveDays_AcrossLeapDay(t *testing.T) {
	start := mustDate(t, "2024-02-28")
	end := mustDate(t, "2024-03-01")

	// 2024 is a leap year: Feb 28, Feb 29, Mar 1.
	assert.Equal(t, 3, domain.InclusiveDays(start, end))
}

// ---- DayLabel --------------------------------------------------------------

func TestDayLabel_DayOneIsStartItself(t *testing.T) {
	start := mustDate(t, "2024-03-01")

	assert.Equal(t, "Friday, Mar 1", domain.DayLabel(start, 1))
}

func TestDayLabel_RollsIntoNextMonth(t *testing.T) {
	start := mustDate(t, "2024-03-01")

	// Day 32 of a trip starting March 1 is April 1.
	assert.Equal(t, "Monday, Apr 1", domain.DayLabel(start, 32))
}

func TestDayLabel_RollsIntoNextYear(t *testing.T) {
	start := mustDate(t, "2024-12-31")

	assert.Equal(t, "Wednesday, Jan 1", domain.DayLabel(start, 2))
}

// ---- FormatLong ------------------------------------------------------------

func TestFormatLong(t *testing.T) {
	assert.Equal(t, "March 1, 2024", domain.FormatLong(mustDate(t, "2024-03-01")))
	assert.Equal(t, "", domain.FormatLong(domain.Date{}))
}

// ---- parsing and formatting ------------------------------------------------

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := domain.ParseDate("2024-03-05")

	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2024, time.March, 5), d)
	assert.Equal(t, "2024-03-05", d.String())
}

func TestParseDate_EmptyIsZero(t *testing.T) {
	d, err := domain.ParseDate("")

	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestParseDate_Malformed(t *testing.T) {
	_, err := domain.ParseDate("03/01/2024")

	require.Error(t, err)
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		When domain.Date `json:"when"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"when":"2024-03-01"}`), &p))
	assert.Equal(t, domain.NewDate(2024, time.March, 1), p.When)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2024-03-01"}`, string(out))
}

func TestDate_JSONEmptyString(t *testing.T) {
	type payload struct {
		When domain.Date `json:"when"`
	}

	// An untouched date input submits "" — that must decode to the zero Date
	// so the validator can report "required" rather than the decoder erroring.
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"when":""}`), &p))
	assert.True(t, p.When.IsZero())
}

func TestDate_AddDays(t *testing.T) {
	d := mustDate(t, "2024-01-31")

	assert.Equal(t, mustDate(t, "2024-02-01"), d.AddDays(1))
	assert.Equal(t, mustDate(t, "2024-01-30"), d.AddDays(-1))
}
