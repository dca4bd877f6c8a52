// Package handler implements the HTTP surface of the trip planner.
// Handlers are methods on Server, split into domain-specific files (health.go,
// trip.go, itinerary.go) but all sharing the same struct so they can access
// its dependencies. Handlers decode and encode; all business rules live in
// the service layer.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"tripplanner/internal/domain"
	"tripplanner/internal/itinerary"
	"tripplanner/internal/service"
)

// TripServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service or store layers.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	Create(ctx context.Context, form domain.TripForm) (domain.Trip, error)
	Update(ctx context.Context, id string, form domain.TripForm) (domain.Trip, error)
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, tripID string, draft itinerary.ItemDraft) (domain.Trip, error)
	UpdateItem(ctx context.Context, tripID, itemID string, patch itinerary.ItemPatch) (domain.Trip, error)
	RemoveItem(ctx context.Context, tripID, itemID string) (domain.Trip, error)
	DayView(ctx context.Context, tripID string) ([]service.DaySchedule, error)
}

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	trips TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer) *Server {
	return &Server{trips: trips}
}

// Routes returns a router with every API endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/days", s.GetTripDays)

			r.Post("/itinerary", s.AddItineraryItem)
			r.Patch("/itinerary/{itemID}", s.UpdateItineraryItem)
			r.Delete("/itinerary/{itemID}", s.RemoveItineraryItem)
		})
	})

	return r
}
