package domain

import "strings"

// TripForm is a trip draft as submitted for saving: the scalar fields the user
// fills in before the trip is allowed into the persisted collection.
type TripForm struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	Notes       string `json:"notes"`
}

// ValidateTripForm is the gatekeeper run immediately before a trip draft may
// be persisted. It returns one message per failing field; an empty map means
// the draft is valid.
//
// The caller supplies today's date rather than the validator reading the
// clock, which keeps the function pure and the tests deterministic.
// A start date equal to today is allowed — only strictly-past dates are
// rejected.
func ValidateTripForm(form TripForm, today Date) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(form.Title) == "" {
		errs["title"] = "Trip title is required"
	}
	if strings.TrimSpace(form.Destination) == "" {
		errs["destination"] = "Destination is required"
	}
	if form.StartDate.IsZero() {
		errs["start_date"] = "Start date is required"
	}
	if form.EndDate.IsZero() {
		errs["end_date"] = "End date is required"
	}
	if !form.StartDate.IsZero() && !form.EndDate.IsZero() && form.StartDate.After(form.EndDate) {
		errs["end_date"] = "End date must be after start date"
	}
	if !form.StartDate.IsZero() && form.StartDate.Before(today) {
		errs["start_date"] = "Start date cannot be in the past"
	}

	return errs
}
