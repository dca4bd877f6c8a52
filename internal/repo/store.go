// Package repo contains the persistence layer for the trip planner.
// The whole trip collection lives in a single durable slot under a fixed
// application key, mirroring the storage model the planner UI was built
// around. Nothing above this package knows which backend holds the slot.
package repo

import (
	"context"

	"tripplanner/internal/domain"
)

// SlotKey is the fixed application-specific key the trip collection is
// stored under.
const SlotKey = "travel-planner-trips"

// TripStore persists the full trip collection as one document.
//
// Load returns the stored collection, or an empty (non-nil) slice when nothing
// has been saved yet. Save replaces the whole collection. The store is
// single-writer, last-write-wins — callers always read, modify a copy, and
// write back; no partial updates and no locking discipline.
//
// The service layer depends on this interface, not a concrete implementation,
// so the core logic is testable without any storage backend.
type TripStore interface {
	Load(ctx context.Context) ([]domain.Trip, error)
	Save(ctx context.Context, trips []domain.Trip) error
}
