package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

type addActivitiesRequest struct {
	Attractions []domain.Attraction `json:"attractions"`
}

// dayTarget parses the {id} and {day} path parameters shared by every edit route.
func dayTarget(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return uuid.Nil, 0, false
	}
	day, ok := pathInt(w, r, "day")
	if !ok {
		return uuid.Nil, 0, false
	}
	return id, day, true
}

// AddActivities handles POST /itineraries/{id}/days/{day}/activities.
func (s *Server) AddActivities(w http.ResponseWriter, r *http.Request) {
	id, day, ok := dayTarget(w, r)
	if !ok {
		return
	}
	var body addActivitiesRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	trip, err := s.itineraries.AddAttractions(r.Context(), id, day, body.Attractions)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ReplaceActivity handles PUT /itineraries/{id}/days/{day}/activities/{index}.
func (s *Server) ReplaceActivity(w http.ResponseWriter, r *http.Request) {
	id, day, ok := dayTarget(w, r)
	if !ok {
		return
	}
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	var body domain.Attraction
	if !decodeJSON(w, r, &body) {
		return
	}

	trip, err := s.itineraries.ReplaceAttraction(r.Context(), id, day, index, body)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// RemoveActivity handles DELETE /itineraries/{id}/days/{day}/activities/{index}.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	id, day, ok := dayTarget(w, r)
	if !ok {
		return
	}
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}

	trip, err := s.itineraries.RemoveActivity(r.Context(), id, day, index)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// RemoveAttraction handles DELETE /itineraries/{id}/days/{day}/attractions/{attractionID}.
func (s *Server) RemoveAttraction(w http.ResponseWriter, r *http.Request) {
	id, day, ok := dayTarget(w, r)
	if !ok {
		return
	}

	trip, err := s.itineraries.RemoveAttraction(r.Context(), id, day, pathString(r, "attractionID"))
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ReplaceHotel handles PUT /itineraries/{id}/days/{day}/hotel.
func (s *Server) ReplaceHotel(w http.ResponseWriter, r *http.Request) {
	id, day, ok := dayTarget(w, r)
	if !ok {
		return
	}
	var body domain.Hotel
	if !decodeJSON(w, r, &body) {
		return
	}

	trip, err := s.itineraries.ReplaceHotel(r.Context(), id, day, body)
	if err != nil {
		s.fail(w, r, err, "itinerary not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
