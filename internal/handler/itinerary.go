package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripplanner/internal/itinerary"
)

// AddItineraryItem handles POST /trips/{tripID}/itinerary.
// Responds with the full updated trip so the client can replace its state in
// one step.
func (s *Server) AddItineraryItem(w http.ResponseWriter, r *http.Request) {
	var draft itinerary.ItemDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	trip, err := s.trips.AddItem(r.Context(), chi.URLParam(r, "tripID"), draft)
	if err != nil {
		serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// UpdateItineraryItem handles PATCH /trips/{tripID}/itinerary/{itemID}.
// The body is a partial patch: absent fields stay untouched.
func (s *Server) UpdateItineraryItem(w http.ResponseWriter, r *http.Request) {
	var patch itinerary.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	trip, err := s.trips.UpdateItem(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"), patch)
	if err != nil {
		serviceError(w, r, err, "trip or itinerary item not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// RemoveItineraryItem handles DELETE /trips/{tripID}/itinerary/{itemID}.
// Removing an item the trip does not carry is a no-op and still succeeds;
// only a missing trip is 404.
func (s *Server) RemoveItineraryItem(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveItem(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"))
	if err != nil {
		serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// GetTripDays handles GET /trips/{tripID}/days.
// Returns one entry per day of the trip's inclusive date range, each with its
// label and that day's activities.
func (s *Server) GetTripDays(w http.ResponseWriter, r *http.Request) {
	view, err := s.trips.DayView(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}
