package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripplanner/internal/domain"
)

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		serviceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeTripForm(w, r)
	if !ok {
		return
	}

	created, err := s.trips.Create(r.Context(), form)
	if err != nil {
		serviceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeTripForm(w, r)
	if !ok {
		return
	}

	updated, err := s.trips.Update(r.Context(), chi.URLParam(r, "tripID"), form)
	if err != nil {
		serviceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		serviceError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeTripForm reads a TripForm from the request body, answering 400 itself
// when the body is missing or malformed. Missing or empty fields are fine here
// — the validator reports those as 422 field errors.
func decodeTripForm(w http.ResponseWriter, r *http.Request) (domain.TripForm, bool) {
	var form domain.TripForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return domain.TripForm{}, false
	}
	return form, true
}
