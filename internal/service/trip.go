// Package service contains the business logic for the trip planner.
// Services validate drafts, enforce the trip lifecycle, and orchestrate the
// store. No storage code lives here — services depend on the repo.TripStore
// interface, not an implementation.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tripplanner/internal/domain"
	"tripplanner/internal/itinerary"
	"tripplanner/internal/repo"
)

// TripService implements the trip lifecycle over the stored collection.
// A draft is validated, then either inserted or used to replace the trip with
// the same id; itinerary items are edited only through their owning trip.
//
// Every mutation loads the collection, applies a pure transformation, and
// saves the result — the store is single-writer, last-write-wins.
type TripService struct {
	store repo.TripStore
	newID func() string
	now   func() time.Time
}

// Option configures a TripService.
type Option func(*TripService)

// WithIDFunc replaces the id generator. The default is uuid.NewString.
// Tests inject a deterministic generator here.
func WithIDFunc(f func() string) Option {
	return func(s *TripService) { s.newID = f }
}

// WithClock replaces the wall clock used for CreatedAt stamps and the
// "start date cannot be in the past" check. The default is time.Now.
func WithClock(f func() time.Time) Option {
	return func(s *TripService) { s.now = f }
}

// NewTripService constructs a TripService backed by the provided store.
func NewTripService(store repo.TripStore, opts ...Option) *TripService {
	s := &TripService{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns the current calendar date for validation purposes.
func (s *TripService) today() domain.Date {
	return domain.DateOf(s.now())
}

// List returns all stored trips in stored (insertion) order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// GetByID returns a single trip by id.
// Returns domain.ErrNotFound if no trip with that id is stored.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trips, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	idx := indexOf(trips, id)
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: trip %s: %w", id, domain.ErrNotFound)
	}
	return trips[idx], nil
}

// Create validates the draft and appends a new trip to the stored collection.
// The id and CreatedAt stamp are assigned here and never change afterwards.
// Returns a *domain.ValidationError when the draft fails the form rules.
func (s *TripService) Create(ctx context.Context, form domain.TripForm) (domain.Trip, error) {
	if errs := domain.ValidateTripForm(form, s.today()); len(errs) > 0 {
		return domain.Trip{}, domain.NewValidationError(errs)
	}

	trips, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip := domain.Trip{
		ID:          s.newID(),
		Title:       form.Title,
		Destination: form.Destination,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Notes:       form.Notes,
		Itinerary:   []domain.ItineraryItem{},
		CreatedAt:   s.now().UTC(),
	}

	if err := s.store.Save(ctx, append(trips, trip)); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Update validates the draft and replaces the stored trip with the same id.
// The trip's id, CreatedAt stamp, and itinerary are preserved — itinerary
// items are edited through AddItem/UpdateItem/RemoveItem, not here.
// Returns domain.ErrNotFound if no trip with that id is stored.
func (s *TripService) Update(ctx context.Context, id string, form domain.TripForm) (domain.Trip, error) {
	if errs := domain.ValidateTripForm(form, s.today()); len(errs) > 0 {
		return domain.Trip{}, domain.NewValidationError(errs)
	}

	trips, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	idx := indexOf(trips, id)
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: trip %s: %w", id, domain.ErrNotFound)
	}

	updated := trips[idx]
	updated.Title = form.Title
	updated.Destination = form.Destination
	updated.StartDate = form.StartDate
	updated.EndDate = form.EndDate
	updated.Notes = form.Notes
	trips[idx] = updated

	if err := s.store.Save(ctx, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip from the stored collection.
// Returns domain.ErrNotFound if no trip with that id is stored.
func (s *TripService) Delete(ctx context.Context, id string) error {
	trips, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	idx := indexOf(trips, id)
	if idx < 0 {
		return fmt.Errorf("service.TripService.Delete: trip %s: %w", id, domain.ErrNotFound)
	}

	remaining := append(trips[:idx:idx], trips[idx+1:]...)
	if err := s.store.Save(ctx, remaining); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddItem appends a new activity to the trip's itinerary.
// The draft's day number must fall inside the trip's date range — out-of-range
// days are rejected with a field error rather than silently stored and never
// displayed. Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) AddItem(ctx context.Context, tripID string, draft itinerary.ItemDraft) (domain.Trip, error) {
	return s.editItinerary(ctx, tripID, "AddItem", func(trip domain.Trip) ([]domain.ItineraryItem, error) {
		if err := checkDayRange(draft.Day, trip.TotalDays()); err != nil {
			return nil, err
		}
		return itinerary.Add(trip.Itinerary, draft, s.newID)
	})
}

// UpdateItem applies a partial patch to one itinerary item of the trip.
// A patched day number is range-checked like AddItem's. Returns
// domain.ErrNotFound if the trip or the item does not exist.
func (s *TripService) UpdateItem(ctx context.Context, tripID, itemID string, patch itinerary.ItemPatch) (domain.Trip, error) {
	return s.editItinerary(ctx, tripID, "UpdateItem", func(trip domain.Trip) ([]domain.ItineraryItem, error) {
		if patch.Day != nil {
			if err := checkDayRange(*patch.Day, trip.TotalDays()); err != nil {
				return nil, err
			}
		}
		return itinerary.Update(trip.Itinerary, itemID, patch)
	})
}

// RemoveItem removes one itinerary item from the trip. Removing an id the
// trip does not carry is a no-op; the trip itself must exist.
func (s *TripService) RemoveItem(ctx context.Context, tripID, itemID string) (domain.Trip, error) {
	return s.editItinerary(ctx, tripID, "RemoveItem", func(trip domain.Trip) ([]domain.ItineraryItem, error) {
		return itinerary.Remove(trip.Itinerary, itemID), nil
	})
}

// DaySchedule is one day of a trip as rendered by the planner: the 1-based
// day number, its calendar date and label, and that day's activities in
// insertion order.
type DaySchedule struct {
	Day   int                    `json:"day"`
	Date  domain.Date            `json:"date"`
	Label string                 `json:"label"`
	Items []domain.ItineraryItem `json:"items"`
}

// DayView returns one DaySchedule per day of the trip, covering the full
// inclusive date range. Days without activities appear with an empty item
// list, so the caller renders the complete span.
func (s *TripService) DayView(ctx context.Context, tripID string) ([]DaySchedule, error) {
	trip, err := s.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.DayView: %w", err)
	}

	total := trip.TotalDays()
	view := make([]DaySchedule, 0, total)
	for day := 1; day <= total; day++ {
		view = append(view, DaySchedule{
			Day:   day,
			Date:  trip.StartDate.AddDays(day - 1),
			Label: domain.DayLabel(trip.StartDate, day),
			Items: itinerary.ItemsForDay(trip.Itinerary, day),
		})
	}
	return view, nil
}

// editItinerary loads the owning trip, applies edit to its itinerary, and
// saves the collection with the trip replaced.
func (s *TripService) editItinerary(ctx context.Context, tripID, op string, edit func(domain.Trip) ([]domain.ItineraryItem, error)) (domain.Trip, error) {
	trips, err := s.store.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	idx := indexOf(trips, tripID)
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: trip %s: %w", op, tripID, domain.ErrNotFound)
	}

	items, err := edit(trips[idx])
	if err != nil {
		return domain.Trip{}, err
	}

	updated := trips[idx]
	updated.Itinerary = items
	trips[idx] = updated

	if err := s.store.Save(ctx, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	return updated, nil
}

// checkDayRange rejects day numbers outside [1, totalDays] with a field error
// on "day".
func checkDayRange(day, totalDays int) error {
	if day < 1 || day > totalDays {
		return domain.NewValidationError(domain.FieldErrors{
			"day": fmt.Sprintf("Day must be between 1 and %d", totalDays),
		})
	}
	return nil
}

// indexOf returns the position of the trip with the given id, or -1.
func indexOf(trips []domain.Trip, id string) int {
	for i, t := range trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}
