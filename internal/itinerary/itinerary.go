// Package itinerary implements the day-indexed view over a trip's activity
// list: filtering items by day number and adding, patching, or removing a
// single item.
//
// Every function is pure — inputs are never mutated and results are fresh
// slices — so callers can treat collections as immutable values and state
// updates stay referentially predictable.
package itinerary

import (
	"fmt"
	"strings"

	"tripplanner/internal/domain"
)

// ItemDraft carries the user-entered fields for a new itinerary item.
// The id is not part of the draft; Add assigns one.
type ItemDraft struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// ItemPatch is a partial update for an existing item. Nil fields are left
// untouched, so callers only send what changed.
type ItemPatch struct {
	Day         *int    `json:"day"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Time        *string `json:"time"`
}

// ItemsForDay returns the items whose Day equals day, preserving their
// relative order in the input — same-day items are never re-sorted by time.
// The result is always a non-nil slice; a day with no items (including a day
// outside the trip's range, zero, or negative) yields an empty one.
func ItemsForDay(items []domain.ItineraryItem, day int) []domain.ItineraryItem {
	out := []domain.ItineraryItem{}
	for _, item := range items {
		if item.Day == day {
			out = append(out, item)
		}
	}
	return out
}

// Add appends a new item built from draft, with an id from newID.
// Returns domain.ErrValidation when the draft title is empty or
// whitespace-only. The draft's day number is not range-checked here — the
// service layer rejects out-of-range days before drafts reach a stored trip.
func Add(items []domain.ItineraryItem, draft ItemDraft, newID func() string) ([]domain.ItineraryItem, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("itinerary.Add: %w: activity title is required", domain.ErrValidation)
	}

	out := make([]domain.ItineraryItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, domain.ItineraryItem{
		ID:          newID(),
		Day:         draft.Day,
		Title:       draft.Title,
		Description: draft.Description,
		Time:        draft.Time,
	}), nil
}

// Update merges patch onto the item matching id and returns the new
// collection. Only non-nil patch fields change; a patched title must still be
// non-blank. Returns domain.ErrNotFound when no item has that id.
func Update(items []domain.ItineraryItem, id string, patch ItemPatch) ([]domain.ItineraryItem, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("itinerary.Update: %w: activity title is required", domain.ErrValidation)
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return nil, fmt.Errorf("itinerary.Update: item %s: %w", id, domain.ErrNotFound)
	}

	out := make([]domain.ItineraryItem, len(items))
	copy(out, items)

	item := &out[idx]
	if patch.Day != nil {
		item.Day = *patch.Day
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Time != nil {
		item.Time = *patch.Time
	}
	return out, nil
}

// Remove returns the collection without the item matching id.
// Removing an absent id is a no-op, not an error — the operation is
// idempotent, so removing twice equals removing once.
func Remove(items []domain.ItineraryItem, id string) []domain.ItineraryItem {
	out := []domain.ItineraryItem{}
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// indexOf returns the position of the item with the given id, or -1.
func indexOf(items []domain.ItineraryItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
