// Package domain contains the core data types and pure calendar logic for the
// trip planner. This package has zero external dependencies and is imported by
// every other internal package (itinerary, repo, service, handler).
package domain

import "time"

// Trip represents a single planned journey.
// A trip is the top-level aggregate; itinerary items belong to a trip and are
// only ever persisted as part of it.
type Trip struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	StartDate   Date            `json:"start_date"`
	EndDate     Date            `json:"end_date"`
	Notes       string          `json:"notes,omitempty"`
	Itinerary   []ItineraryItem `json:"itinerary"`
	CreatedAt   time.Time       `json:"created_at"` // fixed at creation, never changed on edit
}

// TotalDays returns the inclusive length of the trip in days.
// A trip starting and ending on the same date is 1 day long.
func (t Trip) TotalDays() int {
	return InclusiveDays(t.StartDate, t.EndDate)
}

// ItineraryItem is a single activity within a trip, pinned to a day number.
// Day is a 1-based index into the trip's inclusive date range.
type ItineraryItem struct {
	ID          string `json:"id"`
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time,omitempty"` // optional clock time, free-form string
}
